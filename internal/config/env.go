package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride maps one PILEGAME_ variable onto the flag(s) it shadows.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// Field setters for the override table. Values that fail to parse leave the
// field untouched.

func intField(field func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*field(c) = n
		}
	}
}

func boolField(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}
}

func stringField(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

// envOverrides lists every supported variable, without the prefix.
var envOverrides = []envOverride{
	{"MAX_COINS", []string{"max-coins", "n"}, intField(func(c *AppConfig) *int { return &c.MaxCoins })},
	{"WORKERS", []string{"workers"}, intField(func(c *AppConfig) *int { return &c.Workers })},
	{"MAX_MOVES", []string{"max-moves"}, intField(func(c *AppConfig) *int { return &c.MaxMoves })},
	{"SAMPLES", []string{"samples"}, intField(func(c *AppConfig) *int { return &c.Samples })},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			c.Seed = n
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			c.Timeout = d
		}
	}},
	{"OUTPUT", []string{"output", "o"}, stringField(func(c *AppConfig) *string { return &c.OutputFile })},
	{"METRICS_ADDR", []string{"metrics-addr"}, stringField(func(c *AppConfig) *string { return &c.MetricsAddr })},
	{"LOG_LEVEL", []string{"log-level"}, stringField(func(c *AppConfig) *string { return &c.LogLevel })},
	{"VERBOSE", []string{"verbose", "v"}, boolField(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"quiet", "q"}, boolField(func(c *AppConfig) *bool { return &c.Quiet })},
	{"TUI", []string{"tui"}, boolField(func(c *AppConfig) *bool { return &c.TUI })},
	{"VERIFY", []string{"verify"}, boolField(func(c *AppConfig) *bool { return &c.Verify })},
	{"NO_COLOR", []string{"no-color"}, boolField(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively, and
// returns fallback for anything else.
func parseBoolEnv(val string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyEnvOverrides fills every field whose flags were not given from its
// PILEGAME_ variable. Priority is flags, then environment, then defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	set := setFlags(fs)
	for _, o := range envOverrides {
		given := false
		for _, name := range o.flags {
			given = given || set[name]
		}
		if given {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
