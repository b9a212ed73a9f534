package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorTimeout   = 2   // Indicates the run timed out.
	ExitErrorVerify    = 3   // Indicates the partition self-check found a defect.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorInvariant = 5   // Indicates an internal invariant was violated.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// PreconditionError reports that an operation was invoked out of sequence,
// e.g. generating partitions of N before the cache holds every smaller
// coin count. It is a programming error, never a transient condition.
type PreconditionError struct {
	// Operation names the call that was rejected.
	Operation string
	// Coins is the coin count the call was made for.
	Coins int
	// Missing is the first coin count whose prerequisite data is absent.
	Missing int
}

// Error returns a formatted message describing the violated precondition.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s(%d): precondition violated, cache has no entry for %d coins", e.Operation, e.Coins, e.Missing)
}

// InvariantError reports that a computation broke an invariant the design
// guarantees, such as the simulator exceeding its move ceiling without
// finding a repeated position. It wraps an optional cause.
type InvariantError struct {
	// Operation names the computation that failed.
	Operation string
	// Detail describes what was observed.
	Detail string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted message describing the broken invariant.
func (e *InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: invariant violated: %s: %v", e.Operation, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: invariant violated: %s", e.Operation, e.Detail)
}

// Unwrap returns the wrapped cause.
func (e *InvariantError) Unwrap() error { return e.Cause }

// VerificationError reports that the partition self-check found generated
// lists that disagree with an independent source.
type VerificationError struct {
	// Failed lists the coin counts that did not verify.
	Failed []int
}

// Error returns a formatted message listing the failed coin counts.
func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for coin counts %v", e.Failed)
}

// TimeoutError represents a run timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
