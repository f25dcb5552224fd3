package events

import "github.com/atomicstack/tmux-bookmark-popup/internal/logging"

type FeedbackTracer struct{}

type LanguageTracer struct{}

var (
	Feedback = FeedbackTracer{}
	Language = LanguageTracer{}
)

func (FeedbackTracer) Submit(length int) {
	logging.Trace("feedback.submit", map[string]interface{}{"length": length})
}

func (FeedbackTracer) Rejected(key string) {
	logging.Trace("feedback.rejected", map[string]interface{}{"key": key})
}

func (LanguageTracer) Load(stored, applied string) {
	logging.Trace("language.load", map[string]interface{}{"stored": stored, "applied": applied})
}

func (LanguageTracer) Change(code string) {
	logging.Trace("language.change", map[string]interface{}{"code": code})
}
