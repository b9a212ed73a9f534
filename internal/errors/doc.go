// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// sequencing, simulator invariants, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method where they carry a cause so that
// errors.Is() and errors.As() work across the chain.
package apperrors
