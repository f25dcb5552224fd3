package events

import "github.com/atomicstack/tmux-bookmark-popup/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(control string) {
	logging.Trace("ui.focus", map[string]interface{}{"control": control})
}

func (UITracer) Alert(key, text string) {
	logging.Trace("ui.alert", map[string]interface{}{"key": key, "text": text})
}

func (UITracer) Confirm(key string) {
	logging.Trace("ui.confirm", map[string]interface{}{"key": key})
}

func (UITracer) ListCursor(cursor int) {
	logging.Trace("ui.list.cursor", map[string]interface{}{"cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
