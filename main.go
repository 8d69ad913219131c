package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/tuibian/internal/app"
	"github.com/atomicstack/tuibian/internal/config"
	"github.com/atomicstack/tuibian/internal/logging"
	"github.com/atomicstack/tuibian/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty, haveTTY := detectTerminal()
	events.App.Start(startupTracePayload(cfg, tty, haveTTY))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize is the first standard descriptor that reported a size.
type terminalSize struct {
	Source string
	Width  int
	Height int
}

// detectTerminal prefers stdout since that is where frames are drawn.
func detectTerminal() (terminalSize, bool) {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			continue
		}
		return terminalSize{Source: f.Name(), Width: width, Height: height}, true
	}
	return terminalSize{}, false
}

// frameTrace records the size the menu is drawn at and where each
// dimension came from: "flag", the tty name, or "content" when the frame
// shrinks to fit the entries.
type frameTrace struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	WidthSource  string `json:"width_source"`
	HeightSource string `json:"height_source"`
}

func resolveFrame(cfg app.Config, tty terminalSize, haveTTY bool) frameTrace {
	var frame frameTrace
	frame.Width, frame.WidthSource = pickDimension(cfg.Width, tty.Width, tty.Source, haveTTY)
	frame.Height, frame.HeightSource = pickDimension(cfg.Height, tty.Height, tty.Source, haveTTY)
	return frame
}

func pickDimension(fixed, detected int, source string, haveTTY bool) (int, string) {
	switch {
	case fixed > 0:
		return fixed, "flag"
	case haveTTY && detected > 0:
		return detected, source
	default:
		return 0, "content"
	}
}

type menuTrace struct {
	Mouse        bool       `json:"mouse"`
	PollInterval string     `json:"poll_interval"`
	Frame        frameTrace `json:"frame"`
}

func startupTracePayload(cfg config.Config, tty terminalSize, haveTTY bool) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	return map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
		"menu": menuTrace{
			Mouse:        cfg.App.Mouse,
			PollInterval: cfg.App.PollInterval.String(),
			Frame:        resolveFrame(cfg.App, tty, haveTTY),
		},
	}
}
