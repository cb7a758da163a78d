package encroissant

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func validRequest() AnalysisRequest {
	return AnalysisRequest{
		Engine:  "stockfish",
		FEN:     startFEN,
		Depth:   20,
		Lines:   3,
		Threads: 2,
		Caller:  "board-tab-1",
	}
}

func TestAnalysisRequestValidate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	tests := []struct {
		name   string
		mutate func(*AnalysisRequest)
	}{
		{"empty engine", func(r *AnalysisRequest) { r.Engine = "" }},
		{"empty fen", func(r *AnalysisRequest) { r.FEN = "" }},
		{"zero depth", func(r *AnalysisRequest) { r.Depth = 0 }},
		{"negative depth", func(r *AnalysisRequest) { r.Depth = -3 }},
		{"zero lines", func(r *AnalysisRequest) { r.Lines = 0 }},
		{"too many lines", func(r *AnalysisRequest) { r.Lines = MaxLines + 1 }},
		{"zero threads", func(r *AnalysisRequest) { r.Threads = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestAnalysisRequestValidateLineBounds(t *testing.T) {
	for lines := 1; lines <= MaxLines; lines++ {
		req := validRequest()
		req.Lines = lines
		assert.NoError(t, req.Validate())
	}
}

func TestExitCode(t *testing.T) {
	wrapped := fmt.Errorf("session: %w", &ExitError{Code: 2})
	code, ok := ExitCode(wrapped)
	require.True(t, ok)
	assert.Equal(t, 2, code)

	_, ok = ExitCode(errors.New("plain"))
	assert.False(t, ok)

	_, ok = ExitCode(nil)
	assert.False(t, ok)
}

func TestExitErrorPreservesChain(t *testing.T) {
	inner := &exec.ExitError{}
	err := &ExitError{Code: 1, Err: fmt.Errorf("wait: %w", inner)}

	var ee *exec.ExitError
	assert.True(t, errors.As(err, &ee))
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "encroissant: engine exit status 3", (&ExitError{Code: 3}).Error())
	assert.Equal(t, "boom", (&ExitError{Code: 1, Err: errors.New("boom")}).Error())
}
