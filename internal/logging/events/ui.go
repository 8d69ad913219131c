package events

import "github.com/atomicstack/tuibian/internal/logging"

type UITracer struct{}

type MouseTracer struct{}

type CommandTracer struct{}

type mouseReason string

const (
	MouseReasonOutside   mouseReason = "outside"
	MouseReasonBorder    mouseReason = "border"
	MouseReasonSeparator mouseReason = "separator"
	MouseReasonButton    mouseReason = "button"
)

var (
	UI      = UITracer{}
	Mouse   = MouseTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuCursor(cursor int, label string) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor, "label": label})
}

func (UITracer) Commit(cursor int, label, action, source string) {
	logging.Trace("menu.commit", map[string]interface{}{
		"cursor": cursor,
		"label":  label,
		"action": action,
		"source": source,
	})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("menu.resize", map[string]interface{}{"width": width, "height": height})
}

func (MouseTracer) Click(x, y, row int) {
	logging.Trace("mouse.click", map[string]interface{}{"x": x, "y": y, "row": row})
}

func (MouseTracer) Ignored(x, y int, reason mouseReason) {
	logging.Trace("mouse.ignored", map[string]interface{}{"x": x, "y": y, "reason": string(reason)})
}

func (CommandTracer) Queue(label, program string, args []string) {
	logging.Trace("command.queue", map[string]interface{}{"label": label, "program": program, "args": args})
}

func (CommandTracer) NoOp(label, suggestion string) {
	payload := map[string]interface{}{"label": label}
	if suggestion != "" {
		payload["suggestion"] = suggestion
	}
	logging.Trace("command.noop", payload)
}

func (CommandTracer) Result(label string, exitCode int, err error) {
	payload := map[string]interface{}{"label": label, "exitCode": exitCode}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (CommandTracer) Quit(label string) {
	logging.Trace("command.quit", map[string]interface{}{"label": label})
}
