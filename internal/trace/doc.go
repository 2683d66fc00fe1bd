// Package trace provides a tracing subsystem for bignum sessions.
//
// The trace package records how each input word moves through the decimal
// codec, the int64 codec and the addition engine, to help diagnose slow or
// surprising conversions.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	bignum session --trace=- --trace-level=word
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only failed operations
//   - LevelSession: Session boundaries
//   - LevelWord: One span per input word
//   - LevelOp: Everything including individual codec operations
//
// # Context Propagation
//
// Tracers are propagated via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeWord, "word", parentID)
//	defer span.End("")
package trace
