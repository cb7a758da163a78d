package encroissant

import "fmt"

// MaxLines is the largest number of simultaneous principal variations a
// session may request.
const MaxLines = 5

// AnalysisRequest holds the inputs for one analysis session.
//
// AnalysisRequest is a value type — it carries configuration only, no
// runtime state. A session is created per request and never reused.
type AnalysisRequest struct {
	// Engine is the engine executable's path or bare name.
	Engine string `json:"engine"`

	// RelativeToAppData asks the configured resolver to locate Engine
	// relative to the application data directory instead of the search
	// path. Resolution itself is the caller's collaborator; see
	// analysis.WithResolver.
	RelativeToAppData bool `json:"relative,omitempty"`

	// FEN is the starting position in Forsyth-Edwards notation.
	FEN string `json:"fen"`

	// Depth is the maximum search depth for the session.
	Depth int `json:"depth"`

	// Lines is the number of principal variations to analyze, 1 to MaxLines.
	Lines int `json:"numberLines"`

	// Threads is the engine thread count.
	Threads int `json:"numberThreads"`

	// Caller identifies who asked, and tags every emitted payload.
	Caller string `json:"caller,omitempty"`
}

// Validate checks the request preconditions. A nil return does not imply
// the FEN parses or the binary exists — those are checked at session start.
func (r AnalysisRequest) Validate() error {
	if r.Engine == "" {
		return fmt.Errorf("%w: engine path is empty", ErrInvalidRequest)
	}
	if r.FEN == "" {
		return fmt.Errorf("%w: starting position is empty", ErrInvalidRequest)
	}
	if r.Depth <= 0 {
		return fmt.Errorf("%w: depth %d must be positive", ErrInvalidRequest, r.Depth)
	}
	if r.Lines < 1 || r.Lines > MaxLines {
		return fmt.Errorf("%w: line count %d outside [1,%d]", ErrInvalidRequest, r.Lines, MaxLines)
	}
	if r.Threads <= 0 {
		return fmt.Errorf("%w: thread count %d must be positive", ErrInvalidRequest, r.Threads)
	}
	return nil
}
