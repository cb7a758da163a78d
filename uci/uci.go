// Package uci implements the engine side of the wire: parsing the
// `info` lines a UCI engine streams during search, and encoding the
// handful of commands a session writes to its stdin.
//
// A [Parser] turns one raw output line into a [SearchInfo] or reports
// [ErrSkipLine] for the many lines a session does not care about
// (handshake acknowledgements, option confirmations, `info string`
// telemetry). Malformed lines are an error value, never a panic —
// engine output is not trusted input.
package uci

import (
	"errors"

	encroissant "github.com/sleeplessghost/en-croissant"
)

// ErrSkipLine signals that a line does not carry search information and
// should be silently discarded. It is not a failure.
var ErrSkipLine = errors.New("uci: skip line")

// SearchInfo is one parsed `info` line: a single principal variation at a
// single depth. Score is already canonical (first-player perspective).
type SearchInfo struct {
	// Depth is the reported search depth.
	Depth int

	// Score is the canonical evaluation for this variation.
	Score encroissant.Score

	// MultiPV is the 1-based rank of this variation.
	MultiPV int

	// NPS is the engine's reported nodes-per-second.
	NPS int

	// PV is the variation as protocol-native move tokens, in order.
	PV []string
}
