// Package errors provides structured error types for the assimp binding.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the file path involved, the native importer message
// when there is one, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseOpen, errors.KindHandler).
//		Path("models/duck.dae").
//		Detail("stream rejected").
//		Cause(io.ErrUnexpectedEOF).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidScene("duck.dae", "File is too small")
//	err := errors.OutOfBounds(errors.PhaseScene, "mesh", 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only, so a bare &Error{Phase, Kind} works as
// a sentinel.
package errors
