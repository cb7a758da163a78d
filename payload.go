package encroissant

// BestMovePayload is one finalized principal variation, ready for a
// downstream consumer. It is derived from a parsed engine line by replaying
// the line's UCI tokens against the starting position.
type BestMovePayload struct {
	// Engine tags the payload with the identity of its producer — the
	// caller label from the request, or the engine path when no label
	// was given.
	Engine string `json:"engine"`

	// Depth is the search depth this variation was reported at.
	Depth int `json:"depth"`

	// Score is the canonical evaluation (first-player perspective).
	Score Score `json:"score"`

	// SANMoves is the variation in standard algebraic notation.
	SANMoves []string `json:"sanMoves"`

	// UCIMoves is the same variation in protocol-native long algebraic
	// notation, index-aligned with SANMoves.
	UCIMoves []string `json:"uciMoves"`

	// MultiPV is the 1-based rank of this variation within the batch.
	MultiPV int `json:"multipv"`

	// NPS is the engine's reported nodes-per-second at this depth.
	NPS int `json:"nps"`
}
