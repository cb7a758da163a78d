// Package position adapts the legal-move rules engine for analysis
// sessions: given a starting FEN and a sequence of protocol move tokens,
// it produces the same sequence in standard algebraic notation, or fails
// if any token is illegal in context.
package position

import (
	"fmt"

	"github.com/notnil/chess"
)

// Position is an immutable starting position. Replays operate on copies;
// one Position serves a whole session.
type Position struct {
	pos *chess.Position
}

// FromFEN parses a Forsyth-Edwards notation string.
func FromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("position: parse %q: %w", fen, err)
	}
	return &Position{pos: chess.NewGame(opt).Position()}, nil
}

// BlackToMove reports whether the second player is to move. Evaluations
// reported by the engine are relative to the side to move; callers use
// this once per session to fix the canonical perspective.
func (p *Position) BlackToMove() bool {
	return p.pos.Turn() == chess.Black
}

// SANLine replays uciMoves in order against a copy of the position and
// returns the standard-notation form of each move. An illegal token fails
// the whole conversion; nothing partial is returned.
func (p *Position) SANLine(uciMoves []string) ([]string, error) {
	cur := p.pos
	san := make([]string, 0, len(uciMoves))
	for i, token := range uciMoves {
		decoded, err := chess.UCINotation{}.Decode(cur, token)
		if err != nil {
			return nil, fmt.Errorf("position: move %d %q: %w", i+1, token, err)
		}
		// Decode only parses squares; legality (and the tags SAN needs
		// for check and capture suffixes) comes from the move list.
		move := matchValid(cur, decoded)
		if move == nil {
			return nil, fmt.Errorf("position: move %d %q is not legal here", i+1, token)
		}
		san = append(san, chess.AlgebraicNotation{}.Encode(cur, move))
		cur = cur.Update(move)
	}
	return san, nil
}

func matchValid(pos *chess.Position, m *chess.Move) *chess.Move {
	for _, valid := range pos.ValidMoves() {
		if valid.S1() == m.S1() && valid.S2() == m.S2() && valid.Promo() == m.Promo() {
			return valid
		}
	}
	return nil
}
