package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tuibian/internal/app"
	"github.com/atomicstack/tuibian/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMouse        = "TUIBIAN_MOUSE"
	envWidth        = "TUIBIAN_WIDTH"
	envHeight       = "TUIBIAN_HEIGHT"
	envPollInterval = "TUIBIAN_POLL_INTERVAL"
	envTrace        = "TUIBIAN_TRACE"
	envLogFile      = "TUIBIAN_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tuibian", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "select entries by clicking them")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "frame width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "frame height in rows (0 uses terminal height)")
	poll := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, ui.DefaultPollInterval), "how long to wait for input before redrawing")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			Mouse:        *mouse,
			PollInterval: *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"mouse":        strconv.FormatBool(*mouse),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"pollInterval": poll.String(),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects dimensions and intervals the menu cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive (got %s)", cfg.App.PollInterval)
	}
	return nil
}
