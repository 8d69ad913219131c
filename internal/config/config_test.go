package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.Mouse {
		t.Fatalf("expected mouse enabled by default")
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected terminal-sized frame, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.PollInterval != 200*time.Millisecond {
		t.Fatalf("expected 200ms poll interval, got %s", cfg.App.PollInterval)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected logging defaults, got %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"TUIBIAN_MOUSE=false",
		"TUIBIAN_WIDTH=40",
		"TUIBIAN_HEIGHT=12",
		"TUIBIAN_POLL_INTERVAL=1s",
		"TUIBIAN_TRACE=true",
		"TUIBIAN_LOG_FILE=/tmp/env.log",
	}
	cfg, err := LoadArgs([]string{"-width", "30", "-poll-interval", "50ms"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 30 {
		t.Fatalf("expected flag width 30, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 12 {
		t.Fatalf("expected env height 12, got %d", cfg.App.Height)
	}
	if cfg.App.Mouse {
		t.Fatalf("expected mouse disabled from env")
	}
	if cfg.App.PollInterval != 50*time.Millisecond {
		t.Fatalf("expected 50ms poll interval, got %s", cfg.App.PollInterval)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Flags["width"] != "30" || cfg.Flags["pollInterval"] != "50ms" || cfg.Flags["mouse"] != "false" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
	if len(cfg.Args) != 4 {
		t.Fatalf("expected args echoed, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	env := []string{"TUIBIAN_WIDTH=wide", "TUIBIAN_MOUSE=maybe", "TUIBIAN_POLL_INTERVAL=soon", "garbage"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.Mouse || cfg.App.PollInterval != 200*time.Millisecond {
		t.Fatalf("expected defaults, got %+v", cfg.App)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative width":  {"-width", "-1"},
		"negative height": {"-height", "-3"},
		"zero poll":       {"-poll-interval", "0s"},
		"unknown flag":    {"-socket", "x"},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestValidateMessage(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.App.Width = -2
	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("expected width error, got %v", err)
	}
}
