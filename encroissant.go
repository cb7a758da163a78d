// Package encroissant provides the shared vocabulary for chess engine
// analysis sessions.
//
// encroissant drives a single UCI engine process through its line-oriented
// text protocol, turns streamed `info` lines into structured, perspective-
// normalized evaluations, batches simultaneous principal variations, and
// surfaces coherent snapshots to a consumer at a bounded rate.
//
// # Core Types
//
//   - [Score] — a centipawn or mate-in-N evaluation, always from the first
//     player's perspective at the analyzed position
//   - [BestMovePayload] — one finalized principal variation with SAN and UCI
//     move sequences
//   - [AnalysisRequest] — the inputs for one analysis session
//
// # Packages
//
// The root package defines types only. Package position adapts the
// legal-move rules engine, package uci implements the wire protocol
// (parsing and command encoding), and package analysis owns the session
// lifecycle: process spawn, the multiplexed read/cancel loop, aggregation,
// and emission.
//
// # Quick Start
//
//	engine := analysis.NewEngine()
//	sess, err := engine.Start(ctx, encroissant.AnalysisRequest{
//	    Engine:  "stockfish",
//	    FEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
//	    Depth:   20,
//	    Lines:   3,
//	    Threads: 4,
//	})
//	if err != nil { log.Fatal(err) }
//	for batch := range sess.Results() {
//	    render(batch)
//	}
package encroissant
