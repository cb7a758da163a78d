// Package analysis owns the engine session lifecycle.
//
// An [Engine] holds construction-time configuration (emission thresholds,
// buffers, logger, binary resolver). [Engine.Start] validates a request,
// spawns the engine process, writes the position/option/go command
// sequence, and returns a [Session] handle whose Results channel carries
// one ordered batch of payloads per emission.
//
// One goroutine per session multiplexes two event sources — the next
// decoded output line and the cancellation signal — and is the only
// reader of the process's stdout and the only writer of its stdin. Two
// further goroutines exist purely for diagnostics: a stderr drain and a
// reaper that observes process exit; neither can affect emission
// behavior.
//
// Callers must either drain [Session.Results] to completion or call
// [Session.Stop] to release the subprocess.
package analysis
