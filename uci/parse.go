package uci

import (
	"fmt"
	"strconv"
	"strings"

	encroissant "github.com/sleeplessghost/en-croissant"
)

// Parser parses engine `info` lines for one session.
//
// The perspective is fixed at construction: UCI engines report scores
// relative to the side to move, so a session analyzing a position with
// Black to move negates every score once, here, rather than leaving the
// flip to each consumer.
type Parser struct {
	negate bool
}

// NewParser returns a parser for a session whose starting position has
// blackToMove as the side to move.
func NewParser(blackToMove bool) *Parser {
	return &Parser{negate: blackToMove}
}

// ParseInfo parses one raw engine output line.
//
// A line qualifies only if it starts with the `info` marker and carries a
// `pv` token; anything else returns [ErrSkipLine]. A qualifying line with
// a missing or non-numeric required field returns a descriptive error —
// callers discard the line and keep the session running.
//
// Example input:
//
//	info depth 18 seldepth 24 multipv 1 score cp 32 nodes 999 nps 123456 time 8 pv e2e4 e7e5
func (p *Parser) ParseInfo(line string) (SearchInfo, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "info" {
		return SearchInfo{}, ErrSkipLine
	}

	var (
		info                                   SearchInfo
		hasDepth, hasScore, hasMultiPV, hasNPS bool
	)

	for i := 1; i < len(fields); i++ {
		var err error
		switch fields[i] {
		case "depth":
			info.Depth, err = intField(fields, i+1, "depth")
			hasDepth = true
		case "score":
			info.Score, err = scoreField(fields, i+1)
			hasScore = true
			i += 2
		case "multipv":
			info.MultiPV, err = intField(fields, i+1, "multipv")
			if err == nil && info.MultiPV < 1 {
				err = fmt.Errorf("uci: multipv index %d is not positive", info.MultiPV)
			}
			hasMultiPV = true
		case "nps":
			info.NPS, err = intField(fields, i+1, "nps")
			hasNPS = true
		case "pv":
			info.PV = pvTokens(fields[i+1:])
			i = len(fields)
		}
		if err != nil {
			return SearchInfo{}, err
		}
	}

	if info.PV == nil {
		// Depth-only progress lines ("info depth 30 currmove d2d4 ...")
		// carry no variation and are not search info.
		return SearchInfo{}, ErrSkipLine
	}
	switch {
	case !hasDepth:
		return SearchInfo{}, fmt.Errorf("uci: info line missing depth")
	case !hasScore:
		return SearchInfo{}, fmt.Errorf("uci: info line missing score")
	case !hasMultiPV:
		return SearchInfo{}, fmt.Errorf("uci: info line missing multipv")
	case !hasNPS:
		return SearchInfo{}, fmt.Errorf("uci: info line missing nps")
	case len(info.PV) == 0:
		return SearchInfo{}, fmt.Errorf("uci: info line has empty pv")
	}

	if p.negate {
		info.Score = info.Score.Negate()
	}
	return info, nil
}

// intField parses fields[i] as a non-negative integer for the named token.
// Depth, multipv and nps are all counts; a negative value means the line is
// garbled, not a valid measurement.
func intField(fields []string, i int, name string) (int, error) {
	if i >= len(fields) {
		return 0, fmt.Errorf("uci: %s token has no value", name)
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, fmt.Errorf("uci: %s value %q is not an integer", name, fields[i])
	}
	if n < 0 {
		return 0, fmt.Errorf("uci: %s value %d is negative", name, n)
	}
	return n, nil
}

// scoreField parses the two tokens after "score": a cp/mate tag and a
// signed integer.
func scoreField(fields []string, i int) (encroissant.Score, error) {
	if i+1 >= len(fields) {
		return encroissant.Score{}, fmt.Errorf("uci: score token is truncated")
	}
	v, err := strconv.Atoi(fields[i+1])
	if err != nil {
		return encroissant.Score{}, fmt.Errorf("uci: score value %q is not an integer", fields[i+1])
	}
	switch fields[i] {
	case "cp":
		return encroissant.Centipawn(v), nil
	case "mate":
		return encroissant.MateIn(v), nil
	default:
		return encroissant.Score{}, fmt.Errorf("uci: unknown score kind %q", fields[i])
	}
}

// pvTokens collects move tokens up to end-of-line or the first token that
// introduces auxiliary info (a currmove marker).
func pvTokens(fields []string) []string {
	pv := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "currmove") {
			break
		}
		pv = append(pv, f)
	}
	return pv
}
