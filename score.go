package encroissant

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ScoreType discriminates the two evaluation units an engine reports.
type ScoreType string

const (
	// ScoreCentipawn is a positional evaluation in hundredths of a pawn.
	ScoreCentipawn ScoreType = "cp"

	// ScoreMate is a forced checkmate in N moves.
	ScoreMate ScoreType = "mate"
)

// Score is a single engine evaluation.
//
// The sign is always canonical: positive favors the first player (White) at
// the analyzed position, regardless of which side is to move deeper in the
// principal variation. Normalization happens once per session, not per line.
type Score struct {
	Type  ScoreType
	Value int
}

// Centipawn returns a centipawn score.
func Centipawn(v int) Score {
	return Score{Type: ScoreCentipawn, Value: v}
}

// MateIn returns a mate-in-N score.
func MateIn(n int) Score {
	return Score{Type: ScoreMate, Value: n}
}

// Negate returns the score from the opposite perspective.
func (s Score) Negate() Score {
	return Score{Type: s.Type, Value: -s.Value}
}

// String renders the score in conventional short form: "+0.35", "-1.20",
// "#3", "#-5".
func (s Score) String() string {
	if s.Type == ScoreMate {
		return "#" + strconv.Itoa(s.Value)
	}
	cp := s.Value
	sign := "+"
	if cp < 0 {
		sign = "-"
		cp = -cp
	}
	return fmt.Sprintf("%s%d.%02d", sign, cp/100, cp%100)
}

// MarshalJSON encodes the score as a single-key object, {"cp":50} or
// {"mate":-3}, matching the wire shape consumers already expect.
func (s Score) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case ScoreCentipawn, ScoreMate:
		return json.Marshal(map[string]int{string(s.Type): s.Value})
	default:
		return nil, fmt.Errorf("encroissant: unknown score type %q", s.Type)
	}
}

// UnmarshalJSON decodes the single-key object form produced by MarshalJSON.
func (s *Score) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("encroissant: score must have exactly one of cp, mate")
	}
	for k, v := range raw {
		switch ScoreType(k) {
		case ScoreCentipawn, ScoreMate:
			s.Type = ScoreType(k)
			s.Value = v
		default:
			return fmt.Errorf("encroissant: unknown score type %q", k)
		}
	}
	return nil
}
