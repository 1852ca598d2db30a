// Package config provides the default run configuration of the translator
// and its environment overrides.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sarchlab/ippcode/api"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/isa"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel = "IPPCODE_LOG_LEVEL"
	EnvIndent   = "IPPCODE_INDENT"
)

// Config holds the settings of one translator run.
type Config struct {
	Header   string
	Indent   string
	LogLevel slog.Level
}

// Default returns the standard IPPcode24 configuration.
func Default() Config {
	return Config{
		Header:   api.DefaultHeader,
		Indent:   "\t",
		LogLevel: slog.LevelInfo,
	}
}

// FromEnv starts from Default and applies the environment variables found
// by lookup. Invalid values wrap core.ErrUsage.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := ParseLevel(v)
		if err != nil {
			return c, err
		}
		c.LogLevel = level
	}

	if v, ok := lookup(EnvIndent); ok {
		indent, err := ParseIndent(v)
		if err != nil {
			return c, err
		}
		c.Indent = indent
	}

	return c, nil
}

// ParseLevel accepts trace, debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %s=%q is not a log level", core.ErrUsage, EnvLogLevel, s)
}

// ParseIndent accepts "tab", "none" or a number of spaces from 0 to 8.
func ParseIndent(s string) (string, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "tab":
		return "\t", nil
	case "none":
		return "", nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 8 {
		return "", fmt.Errorf("%w: %s=%q is not tab, none or 0-8", core.ErrUsage, EnvIndent, s)
	}

	return strings.Repeat(" ", n), nil
}

// DriverBuilder returns a driver builder for IPPcode24 set up from c.
func (c Config) DriverBuilder() api.DriverBuilder {
	return api.NewDriverBuilder().
		WithISA(isa.IPPcode24).
		WithHeader(c.Header).
		WithIndent(c.Indent)
}

// Logger creates a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}
