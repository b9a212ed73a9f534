// Package config parses command-line flags and PILEGAME_ environment
// variables into an AppConfig and validates it.
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	apperrors "github.com/agbru/pilegame/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "PILEGAME_"

	// DefaultMaxCoins is the default highest coin count explored.
	DefaultMaxCoins = 36
	// MaxCoinsLimit bounds --max-coins. p(48) is 147,273 partitions, each
	// played to a repeat.
	MaxCoinsLimit = 48
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 10 * time.Minute
	// DefaultSamples is the number of random partitions drawn per coin count
	// by the self-check.
	DefaultSamples = 100000
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags and environment variables.
type AppConfig struct {
	// MaxCoins is the highest coin count explored.
	MaxCoins int
	// Workers is the size of the worker pool.
	Workers int
	// MaxMoves is the simulator ceiling. Zero selects game.DefaultMaxMoves.
	MaxMoves int
	// Timeout bounds the whole run. It is checked between batches.
	Timeout time.Duration
	// Quiet prints one line per coin count and suppresses progress output.
	Quiet bool
	// Verbose enables debug logging and memory statistics.
	Verbose bool
	// OutputFile, if set, receives the report.
	OutputFile string
	// TUI launches the interactive dashboard.
	TUI bool
	// Verify runs the partition self-check instead of the exploration.
	Verify bool
	// Samples is the number of random partitions per coin count in verify
	// mode.
	Samples int
	// Seed seeds the self-check. Zero selects a time-based seed.
	Seed int64
	// MetricsAddr, if set, serves Prometheus metrics during the run.
	MetricsAddr string
	// LogLevel is the zerolog level name.
	LogLevel string
	// NoColor disables ANSI colors.
	NoColor bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// Validate checks the configuration for semantic errors.
//
// Returns:
//   - error: An apperrors.ConfigError describing the first problem, or nil.
func (c AppConfig) Validate() error {
	switch {
	case c.MaxCoins < 1 || c.MaxCoins > MaxCoinsLimit:
		return apperrors.NewConfigError("max-coins must be between 1 and %d, got %d", MaxCoinsLimit, c.MaxCoins)
	case c.Workers < 1:
		return apperrors.NewConfigError("workers must be at least 1, got %d", c.Workers)
	case c.MaxMoves < 0:
		return apperrors.NewConfigError("max-moves must not be negative, got %d", c.MaxMoves)
	case c.Timeout <= 0:
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	case c.Samples < 1:
		return apperrors.NewConfigError("samples must be at least 1, got %d", c.Samples)
	case c.Quiet && c.TUI:
		return apperrors.NewConfigError("--quiet and --tui are mutually exclusive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// PILEGAME_ environment overrides to every flag not given explicitly, and
// validates the result.
//
// Parameters:
//   - programName: The name of the program, used in usage messages.
//   - args: The command-line arguments without the program name.
//   - errorWriter: The writer for usage and parse error messages.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h/--help, a parse error, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Explores the pile game over every partition of 1..N coins and reports")
		fmt.Fprintln(errorWriter, "the longest run and longest cycle per coin count.")
		fmt.Fprintln(errorWriter)
		fmt.Fprintln(errorWriter, "Options:")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery option can also be set through %s<NAME>, e.g. %sMAX_COINS=20.\n", EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	fs.IntVar(&config.MaxCoins, "max-coins", DefaultMaxCoins, "Highest coin count to explore.")
	fs.IntVar(&config.MaxCoins, "n", DefaultMaxCoins, "Highest coin count to explore (shorthand).")
	fs.IntVar(&config.Workers, "workers", EstimateWorkerCount(), "Number of worker goroutines.")
	fs.IntVar(&config.MaxMoves, "max-moves", 0, "Simulator move ceiling (0 = built-in default).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time for the whole run.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print one line per coin count.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&config.Verify, "verify", false, "Run the partition generator self-check and exit.")
	fs.IntVar(&config.Samples, "samples", DefaultSamples, "Random partitions per coin count for --verify.")
	fs.Int64Var(&config.Seed, "seed", 0, "Seed for --verify (0 = time based).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Print version information (shorthand).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if config.ShowVersion {
		return config, nil
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// EstimateWorkerCount returns the default pool size: one worker per logical
// CPU the Go scheduler may use.
func EstimateWorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if cpus := runtime.NumCPU(); cpus < n {
		n = cpus
	}
	if n < 1 {
		return 1
	}
	return n
}
