package uci

import (
	"errors"
	"testing"
)

func FuzzParseInfo(f *testing.F) {
	f.Add("info depth 18 seldepth 24 multipv 1 score cp 32 nodes 999 nps 1500000 time 664 pv e2e4 e7e5")
	f.Add("info depth 21 multipv 2 score mate -4 nps 420000 pv h7h8q currmovenumber 3")
	f.Add("info string NNUE evaluation")
	f.Add("bestmove e2e4 ponder e7e5")
	f.Add("info depth score multipv nps pv")
	f.Add("")

	white := NewParser(false)
	black := NewParser(true)

	f.Fuzz(func(t *testing.T, line string) {
		// Malformed engine output must never panic; it yields either a
		// SearchInfo, a skip, or a parse error.
		info, err := white.ParseInfo(line)
		if err != nil {
			if !errors.Is(err, ErrSkipLine) && err.Error() == "" {
				t.Error("parse error with empty message")
			}
			return
		}
		if len(info.PV) == 0 {
			t.Errorf("accepted line %q with empty pv", line)
		}
		if info.Depth < 0 || info.NPS < 0 || info.MultiPV < 1 {
			t.Errorf("accepted out-of-domain fields from %q: %+v", line, info)
		}

		// Perspective flip touches only the score sign.
		flipped, err := black.ParseInfo(line)
		if err != nil {
			t.Fatalf("black parser failed on line white accepted: %v", err)
		}
		if flipped.Score != info.Score.Negate() {
			t.Errorf("score %v did not flip to %v", info.Score, flipped.Score)
		}
	})
}
