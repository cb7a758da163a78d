package analysis

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/google/uuid"

	encroissant "github.com/sleeplessghost/en-croissant"
	"github.com/sleeplessghost/en-croissant/position"
	"github.com/sleeplessghost/en-croissant/uci"
)

// Engine starts analysis sessions. One Engine may start any number of
// sessions, concurrently or sequentially; sessions share nothing but the
// Engine's configuration.
type Engine struct {
	opts EngineOptions
}

// NewEngine creates an Engine. Use EngineOption functions to customize
// thresholds, buffers, logging, and binary resolution.
func NewEngine(opts ...EngineOption) *Engine {
	return &Engine{opts: resolveEngineOptions(opts...)}
}

// Start spawns the engine process, configures it, begins the search, and
// returns a running Session.
//
// Failures here are fatal to the session and never retried: an invalid
// request ([encroissant.ErrInvalidRequest]), an unresolvable or
// unspawnable binary ([encroissant.ErrUnavailable]), or a configuration
// write on a broken pipe ([encroissant.ErrConfigure]).
//
// Canceling ctx after Start returns is equivalent to calling
// [Session.Stop].
func (e *Engine) Start(ctx context.Context, req encroissant.AnalysisRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pos, err := position.FromFEN(req.FEN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", encroissant.ErrInvalidRequest, err)
	}

	binary, err := e.opts.Resolver(req.Engine, req.RelativeToAppData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", encroissant.ErrUnavailable, req.Engine, err)
	}

	cmd, stdin, stdout, stderr, err := spawnCmd(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", encroissant.ErrUnavailable, binary, err)
	}

	cmds := uci.NewCommandWriter(stdin)
	if err := configure(cmds, req); err != nil {
		// The pipe is broken; reclaim the child before reporting.
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, fmt.Errorf("%w: %w", encroissant.ErrConfigure, err)
	}

	sess := &Session{
		id:        uuid.NewString(),
		engineTag: engineTag(req),
		cmd:       cmd,
		stdin:     stdin,
		cmds:      cmds,
		parser:    uci.NewParser(pos.BlackToMove()),
		pos:       pos,
		agg:       newAggregator(req.Lines, e.opts.MinDepth, e.opts.Debounce, e.opts.Clock),
		results:   make(chan []encroissant.BestMovePayload, e.opts.ResultBuffer),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		pumpDone:  make(chan struct{}),
		drainDone: make(chan struct{}),
		exit:      make(chan error, 1),
		scanBuf:   e.opts.ScannerBuffer,
	}
	sess.log = e.opts.Logger.With().
		Str("session", sess.id).
		Str("engine", binary).
		Str("caller", req.Caller).
		Logger()

	sess.log.Info().
		Str("fen", req.FEN).
		Int("depth", req.Depth).
		Int("lines", req.Lines).
		Int("threads", req.Threads).
		Msg("analysis started")

	go sess.run(ctx, stdout)
	go sess.drainStderr(stderr)
	go sess.reap()

	return sess, nil
}

// configure writes the session's command sequence: position, thread
// count, line count, then the depth-limited search start. Order matters;
// the first failed write aborts.
func configure(cmds *uci.CommandWriter, req encroissant.AnalysisRequest) error {
	if err := cmds.Position(req.FEN); err != nil {
		return err
	}
	if err := cmds.Threads(req.Threads); err != nil {
		return err
	}
	if err := cmds.MultiPV(req.Lines); err != nil {
		return err
	}
	return cmds.GoDepth(req.Depth)
}

// spawnCmd builds and starts the engine command with all three standard
// streams captured.
func spawnCmd(binary string) (*exec.Cmd, io.WriteCloser, io.ReadCloser, io.ReadCloser, error) {
	cmd := exec.Command(binary)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, nil, nil, err
	}
	return cmd, stdin, stdout, stderr, nil
}

// engineTag picks the identity stamped on emitted payloads.
func engineTag(req encroissant.AnalysisRequest) string {
	if req.Caller != "" {
		return req.Caller
	}
	return req.Engine
}
