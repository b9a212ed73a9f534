package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape sequences used when printing errors.
// A nil provider prints without colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// ExitCodeFor maps an error onto the application exit code without
// printing anything.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		cfgErr       ConfigError
		validation   ValidationError
		timeout      TimeoutError
		precondition *PreconditionError
		invariant    *InvariantError
		verification *VerificationError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeout):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &validation):
		return ExitErrorConfig
	case errors.As(err, &verification):
		return ExitErrorVerify
	case errors.As(err, &precondition), errors.As(err, &invariant):
		return ExitErrorInvariant
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError prints a short, colorized description of err to out and
// returns the matching exit code. A nil err returns ExitSuccess and prints
// nothing.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}
	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sRun timed out after %s: %v%s\n", colors.Yellow(), duration, err, colors.Reset())
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sRun canceled after %s.%s\n", colors.Yellow(), duration, colors.Reset())
	case ExitErrorVerify:
		fmt.Fprintf(out, "%sSelf-check failed: %v%s\n", colors.Red(), err, colors.Reset())
	case ExitErrorInvariant:
		fmt.Fprintf(out, "%sInternal error: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
