package erronaut

import (
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/erronaut/theme"
)

const defaultEnvPrefix = "ERRONAUT_"

// ConsoleFromEnvOption customizes ConsoleFromEnv behavior.
type ConsoleFromEnvOption func(*consoleFromEnvConfig)

type consoleFromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by
// ConsoleFromEnv.
func WithEnvPrefix(prefix string) ConsoleFromEnvOption {
	return func(cfg *consoleFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds ConsoleFromEnv with explicit Options values.
func WithEnvOptions(opts Options) ConsoleFromEnvOption {
	return func(cfg *consoleFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds ConsoleFromEnv with a default output writer.
func WithEnvWriter(w io.Writer) ConsoleFromEnvOption {
	return func(cfg *consoleFromEnvConfig) {
		cfg.writer = w
	}
}

// ConsoleFromEnv builds a Console from environment variables, allowing
// optional seeded options and writers. Environment values override supplied
// options; unparsable values are ignored.
//
// Recognised variables are: {prefix}NO_COLOR, FORCE_COLOR, WIDTH, MARGIN,
// TIME_FORMAT, UTC, THEME, DISABLE_TIMESTAMP, DISABLE_LOCATION and OUTPUT.
// OUTPUT accepts stdout, stderr or default. The prefix defaults to
// ERRONAUT_.
func ConsoleFromEnv(opts ...ConsoleFromEnvOption) *Console {
	cfg := consoleFromEnvConfig{prefix: defaultEnvPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	writer := cfg.writer
	if writer == nil {
		writer = os.Stdout
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "WIDTH"); ok {
		if parsed, ok := parseEnvInt(value); ok {
			resolved.Width = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "MARGIN"); ok {
		if parsed, ok := parseEnvInt(value); ok {
			resolved.Margin = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "TIME_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.TimeFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "UTC"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.UTC = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "THEME"); ok {
		resolved.Theme = theme.ByName(value)
	}
	if value, ok := lookupEnv(prefix, "DISABLE_TIMESTAMP"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.DisableTimestamp = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "DISABLE_LOCATION"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.DisableLocation = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		writer = writerFromEnvOutput(value, writer)
	}
	return NewConsoleWithOptions(writer, resolved)
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func parseEnvInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

func writerFromEnvOutput(value string, base io.Writer) io.Writer {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	default:
		return base
	}
}
