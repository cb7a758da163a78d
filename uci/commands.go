package uci

import (
	"bufio"
	"fmt"
	"io"
)

// CommandWriter writes newline-terminated UCI commands to an engine's
// stdin. Every command is flushed immediately; a write error means the
// pipe is broken and the engine is unusable.
//
// CommandWriter is not safe for concurrent use. A session's loop is the
// only writer for the session's lifetime.
type CommandWriter struct {
	w *bufio.Writer
}

// NewCommandWriter wraps w, typically an engine process's stdin pipe.
func NewCommandWriter(w io.Writer) *CommandWriter {
	return &CommandWriter{w: bufio.NewWriter(w)}
}

// Position sets the position to analyze from a FEN string.
func (c *CommandWriter) Position(fen string) error {
	return c.send("position fen " + fen)
}

// Threads sets the engine's search thread count.
func (c *CommandWriter) Threads(n int) error {
	return c.send(fmt.Sprintf("setoption name Threads value %d", n))
}

// MultiPV sets the number of principal variations the engine reports.
func (c *CommandWriter) MultiPV(n int) error {
	return c.send(fmt.Sprintf("setoption name multipv value %d", n))
}

// GoDepth starts a depth-limited search.
func (c *CommandWriter) GoDepth(depth int) error {
	return c.send(fmt.Sprintf("go depth %d", depth))
}

// Stop asks the engine to end the current search.
func (c *CommandWriter) Stop() error {
	return c.send("stop")
}

func (c *CommandWriter) send(cmd string) error {
	if _, err := c.w.WriteString(cmd + "\n"); err != nil {
		return fmt.Errorf("uci: write %q: %w", cmd, err)
	}
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("uci: flush %q: %w", cmd, err)
	}
	return nil
}
