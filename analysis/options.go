package analysis

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	encroissant "github.com/sleeplessghost/en-croissant"
)

// Default engine configuration values.
const (
	defaultMinDepth      = 10
	defaultDebounce      = 300 * time.Millisecond
	defaultResultBuffer  = 16
	defaultScannerBuffer = 1 << 20 // 1 MB
)

// Resolver locates an engine binary. relative mirrors
// [encroissant.AnalysisRequest.RelativeToAppData]: when true, name should be
// resolved against the application's data directory, which only the
// embedding application knows about.
type Resolver func(name string, relative bool) (string, error)

// lookPathResolver is the default Resolver: plain search-path lookup, no
// app-data convention.
func lookPathResolver(name string, relative bool) (string, error) {
	if relative {
		return "", fmt.Errorf("%w: no resolver configured for app-data-relative path %q",
			encroissant.ErrUnavailable, name)
	}
	return exec.LookPath(name)
}

// EngineOptions holds resolved construction-time configuration for an
// Engine. Use NewEngine with EngineOption functions to customize.
type EngineOptions struct {
	// MinDepth is the smallest depth a batch may be emitted at.
	MinDepth int

	// Debounce is the minimum interval between emissions.
	Debounce time.Duration

	// ResultBuffer is the channel buffer size for result batches.
	ResultBuffer int

	// ScannerBuffer is the maximum line size in bytes for the stdout scanner.
	ScannerBuffer int

	// Logger receives session lifecycle and diagnostic events.
	Logger zerolog.Logger

	// Resolver locates the engine binary named in a request.
	Resolver Resolver

	// Clock supplies the time for the debounce gate.
	Clock func() time.Time
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*EngineOptions)

// WithMinDepth sets the smallest depth a batch may be emitted at.
// Values <= 0 are ignored.
func WithMinDepth(depth int) EngineOption {
	return func(o *EngineOptions) {
		if depth > 0 {
			o.MinDepth = depth
		}
	}
}

// WithDebounce sets the minimum interval between emissions.
// Values <= 0 are ignored.
func WithDebounce(d time.Duration) EngineOption {
	return func(o *EngineOptions) {
		if d > 0 {
			o.Debounce = d
		}
	}
}

// WithResultBuffer sets the channel buffer size for result batches.
// Values <= 0 are ignored.
func WithResultBuffer(size int) EngineOption {
	return func(o *EngineOptions) {
		if size > 0 {
			o.ResultBuffer = size
		}
	}
}

// WithScannerBuffer sets the maximum line size in bytes for the stdout
// scanner. Values <= 0 are ignored.
func WithScannerBuffer(size int) EngineOption {
	return func(o *EngineOptions) {
		if size > 0 {
			o.ScannerBuffer = size
		}
	}
}

// WithLogger sets the logger for session and diagnostic events.
// The default discards everything.
func WithLogger(log zerolog.Logger) EngineOption {
	return func(o *EngineOptions) {
		o.Logger = log
	}
}

// WithResolver sets the binary resolver. Nil values are ignored.
func WithResolver(r Resolver) EngineOption {
	return func(o *EngineOptions) {
		if r != nil {
			o.Resolver = r
		}
	}
}

// WithClock sets the clock used by the debounce gate. Nil values are
// ignored. Intended for tests.
func WithClock(clock func() time.Time) EngineOption {
	return func(o *EngineOptions) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

func resolveEngineOptions(opts ...EngineOption) EngineOptions {
	o := EngineOptions{
		MinDepth:      defaultMinDepth,
		Debounce:      defaultDebounce,
		ResultBuffer:  defaultResultBuffer,
		ScannerBuffer: defaultScannerBuffer,
		Logger:        zerolog.Nop(),
		Resolver:      lookPathResolver,
		Clock:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
