package analysis

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"

	encroissant "github.com/sleeplessghost/en-croissant"
	"github.com/sleeplessghost/en-croissant/position"
	"github.com/sleeplessghost/en-croissant/uci"
)

// Session is a running analysis. Result batches flow through the Results
// channel; Stop requests cancellation; Wait blocks until the session ends.
//
// State is owned by the single run goroutine. The exported methods only
// touch channels and the stop Once, so they are safe from any goroutine.
type Session struct {
	id        string
	engineTag string
	log       zerolog.Logger

	cmd   *exec.Cmd
	stdin io.Closer
	cmds  *uci.CommandWriter

	parser *uci.Parser
	pos    *position.Position
	agg    *aggregator

	results chan []encroissant.BestMovePayload

	stop     chan struct{}
	stopOnce sync.Once

	done       chan struct{} // closed exactly once by finish()
	finishOnce sync.Once
	termErr    error // set by finish(), read after done closes

	pumpDone  chan struct{} // closed when the stdout pump returns
	drainDone chan struct{} // closed when the stderr drain returns
	exit      chan error    // buffered(1), fed by the reaper

	scanBuf int
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Results returns the channel of emitted batches. Each element is one
// coherent snapshot: the requested number of variations, all at one
// depth, ordered by multipv index. The channel is closed when the session
// ends.
func (s *Session) Results() <-chan []encroissant.BestMovePayload {
	return s.results
}

// Stop requests cancellation. The first call makes the session write one
// stop command to the engine and terminate; further calls, and calls
// after the session has already ended, are no-ops.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Wait blocks until the session ends. Cancellation and end-of-stream are
// both normal completion (nil); a stdout read failure is returned as an
// error. Spawn and configuration failures never reach Wait — they are
// returned by [Engine.Start].
func (s *Session) Wait() error {
	<-s.done
	return s.termErr
}

// Err returns the terminal error, or nil while the session is running or
// after clean completion.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.termErr
	default:
		return nil
	}
}

// ProcessExit returns a channel that receives the engine process's exit
// result once: nil for status zero, an [encroissant.ExitError] otherwise.
// Purely diagnostic; session semantics do not depend on it.
func (s *Session) ProcessExit() <-chan error {
	return s.exit
}

// run is the session loop: it multiplexes decoded output lines against
// the cancellation signal until one of them ends the session.
func (s *Session) run(ctx context.Context, stdout io.Reader) {
	lines := make(chan string, 64)
	scanErr := make(chan error, 1)
	go s.pump(stdout, lines, scanErr)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return
		case <-s.stop:
			s.shutdown()
			return
		case line, ok := <-lines:
			if !ok {
				// Engine closed its output: normal completion unless
				// the scanner itself failed.
				err := <-scanErr
				if err != nil {
					s.log.Warn().Err(err).Msg("engine output read failed")
				} else {
					s.log.Info().Msg("engine output ended")
				}
				s.finish(err)
				return
			}
			s.handleLine(ctx, line)
		}
	}
}

// handleLine feeds one raw line through the parser and aggregator and
// emits on a gate pass. Per-line failures are logged and dropped; they
// never end the session.
func (s *Session) handleLine(ctx context.Context, line string) {
	info, err := s.parser.ParseInfo(line)
	if errors.Is(err, uci.ErrSkipLine) {
		if line == "readyok" {
			s.log.Debug().Msg("engine ready")
		}
		return
	}
	if err != nil {
		s.log.Debug().Err(err).Str("line", line).Msg("discarding malformed engine line")
		return
	}

	batch, ok := s.agg.add(info)
	if !ok {
		return
	}

	payloads, err := s.convert(batch)
	if err != nil {
		s.log.Warn().Err(err).Int("depth", batch[0].Depth).Msg("dropping emission")
		return
	}

	select {
	case s.results <- payloads:
		s.agg.emitted()
		s.log.Debug().
			Int("depth", payloads[0].Depth).
			Int("lines", len(payloads)).
			Msg("emitted best moves")
	case <-s.stop:
		// Cancellation observed while the consumer is backed up; the
		// loop handles it on the next iteration.
	case <-ctx.Done():
	}
}

// convert replays each batch entry's move tokens against the starting
// position. One illegal token drops the whole batch — no partial
// emissions.
func (s *Session) convert(batch []uci.SearchInfo) ([]encroissant.BestMovePayload, error) {
	payloads := make([]encroissant.BestMovePayload, 0, len(batch))
	for _, info := range batch {
		san, err := s.pos.SANLine(info.PV)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, encroissant.BestMovePayload{
			Engine:   s.engineTag,
			Depth:    info.Depth,
			Score:    info.Score,
			SANMoves: san,
			UCIMoves: info.PV,
			MultiPV:  info.MultiPV,
			NPS:      info.NPS,
		})
	}
	return payloads, nil
}

// shutdown performs the cancellation path: one best-effort stop command,
// then stdin close so the engine sees EOF and exits on its own schedule.
// No timeout is imposed; the reaper observes the exit asynchronously.
func (s *Session) shutdown() {
	if err := s.cmds.Stop(); err != nil {
		s.log.Debug().Err(err).Msg("stop command not delivered")
	}
	if err := s.stdin.Close(); err != nil {
		s.log.Debug().Err(err).Msg("stdin close failed")
	}
	s.log.Info().Msg("analysis cancelled")
	s.finish(nil)
}

// finish sets the terminal error and closes results+done. Called exactly
// once.
func (s *Session) finish(err error) {
	s.finishOnce.Do(func() {
		s.termErr = err
		close(s.results)
		close(s.done)
	})
}

// pump reads stdout line by line and feeds the session loop. It returns
// when the stream ends or when the session finishes first; on stream end
// it reports the scanner error (nil for plain EOF) before closing lines.
func (s *Session) pump(stdout io.Reader, lines chan<- string, scanErr chan<- error) {
	defer close(s.pumpDone)

	scanner := bufio.NewScanner(stdout)
	initCap := min(4096, s.scanBuf)
	scanner.Buffer(make([]byte, 0, initCap), s.scanBuf)

	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-s.done:
			return
		}
	}
	scanErr <- scanner.Err()
	close(lines)
}

// drainStderr keeps the engine's stderr pipe from filling up and gives
// its chatter a home in the log.
func (s *Session) drainStderr(stderr io.Reader) {
	defer close(s.drainDone)

	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		s.log.Debug().Str("stderr", scanner.Text()).Msg("engine stderr")
	}
}

// reap waits for both pipe readers to finish, then collects the process
// exit status. Non-zero exit is a structured diagnostic event, nothing
// more — it cannot change what the session already emitted.
func (s *Session) reap() {
	<-s.pumpDone
	<-s.drainDone

	err := wrapExitError(s.cmd.Wait())
	if err != nil {
		s.log.Error().Err(err).Msg("engine exited abnormally")
	} else {
		s.log.Debug().Msg("engine exited")
	}
	s.exit <- err
	close(s.exit)
}

// wrapExitError converts a non-zero *exec.ExitError to
// *encroissant.ExitError. nil → nil, non-ExitError → passthrough, code 0
// → nil. Preserves the error chain via ExitError.Unwrap.
func wrapExitError(err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return err
	}
	code := ee.ExitCode()
	if code == 0 {
		return nil
	}
	return &encroissant.ExitError{Code: code, Err: err}
}
