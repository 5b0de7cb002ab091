// Package i18n holds the interface strings of the bot.
package i18n

import (
	"strconv"
	"strings"
)

const fallbackLanguage = "en"

// Translator looks up display strings by language and key.
type Translator struct {
	tables map[string]map[string]string
}

// New returns a Translator with the built-in Hebrew and English tables.
func New() *Translator {
	return &Translator{tables: map[string]map[string]string{
		"he": hebrew,
		"en": english,
	}}
}

// T returns the string for key in lang, falling back to English and then to the key itself.
func (t *Translator) T(lang, key string) string {
	if s, ok := t.tables[lang][key]; ok {
		return s
	}
	if s, ok := t.tables[fallbackLanguage][key]; ok {
		return s
	}
	return key
}

// Supports reports whether lang has a table.
func (t *Translator) Supports(lang string) bool {
	_, ok := t.tables[lang]
	return ok
}

// IsRTL reports whether lang is written right-to-left.
func IsRTL(lang string) bool {
	return lang == "he"
}

// FormatSummary fills the {correct}, {total} and {percentage} placeholders.
func FormatSummary(tmpl string, correct, total, percentage int) string {
	return strings.NewReplacer(
		"{correct}", strconv.Itoa(correct),
		"{total}", strconv.Itoa(total),
		"{percentage}", strconv.Itoa(percentage),
	).Replace(tmpl)
}
