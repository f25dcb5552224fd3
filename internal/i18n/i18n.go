// Package i18n resolves UI text for a language code.
//
// Lookups fall back in two steps: an unknown language resolves against the
// default language as a whole, and a key missing from a known language
// resolves against the default language's entry for that key.
package i18n

import "strings"

// DefaultLanguage is used whenever a code is unset or unsupported.
const DefaultLanguage = "en"

// Localizer looks up text in a language table.
type Localizer struct {
	table    Table
	fallback string
	order    []string
}

// New returns a Localizer over the built-in language table.
func New() *Localizer {
	return NewWithTable(defaultTable, DefaultLanguage, languageOrder)
}

// NewWithTable builds a Localizer over a custom table. order lists the
// languages in presentation order; codes missing from table are dropped.
func NewWithTable(table Table, fallback string, order []string) *Localizer {
	l := &Localizer{table: table, fallback: fallback}
	for _, code := range order {
		if _, ok := table[code]; ok {
			l.order = append(l.order, code)
		}
	}
	return l
}

// Text returns the text for key in lang.
func (l *Localizer) Text(lang, key string) string {
	texts, ok := l.table[lang]
	if !ok {
		texts = l.table[l.fallback]
	}
	if text, ok := texts[key]; ok && text != "" {
		return text
	}
	if text, ok := l.table[l.fallback][key]; ok {
		return text
	}
	return key
}

// Supported reports whether lang has its own table.
func (l *Localizer) Supported(lang string) bool {
	_, ok := l.table[lang]
	return ok
}

// Normalize returns lang when supported and the fallback language otherwise.
func (l *Localizer) Normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if l.Supported(lang) {
		return lang
	}
	return l.fallback
}

// Languages lists the supported codes in presentation order.
func (l *Localizer) Languages() []string {
	return append([]string(nil), l.order...)
}

// Next returns the language after lang in presentation order, wrapping
// around. A negative step moves backwards.
func (l *Localizer) Next(lang string, step int) string {
	if len(l.order) == 0 {
		return l.fallback
	}
	idx := 0
	for i, code := range l.order {
		if code == lang {
			idx = i
			break
		}
	}
	n := len(l.order)
	idx = ((idx+step)%n + n) % n
	return l.order[idx]
}
