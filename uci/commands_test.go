package uci

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandWriterSequence(t *testing.T) {
	var buf bytes.Buffer
	w := NewCommandWriter(&buf)

	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	require.NoError(t, w.Position(fen))
	require.NoError(t, w.Threads(4))
	require.NoError(t, w.MultiPV(3))
	require.NoError(t, w.GoDepth(25))

	want := "position fen " + fen + "\n" +
		"setoption name Threads value 4\n" +
		"setoption name multipv value 3\n" +
		"go depth 25\n"
	assert.Equal(t, want, buf.String())
}

func TestCommandWriterStop(t *testing.T) {
	var buf bytes.Buffer
	w := NewCommandWriter(&buf)

	require.NoError(t, w.Stop())
	assert.Equal(t, "stop\n", buf.String())
}

// brokenWriter fails every write, like a closed stdin pipe.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCommandWriterWriteFailure(t *testing.T) {
	w := NewCommandWriter(brokenWriter{})

	err := w.GoDepth(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go depth 10")
}
