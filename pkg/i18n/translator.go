package i18n

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingTranslator is reported to MissingTranslationHandler when no
	// translator was configured.
	ErrMissingTranslator = errors.New("i18n: translator is nil")
	// ErrMissingTranslation signals that a key has no message for the locale
	// or any of its fallbacks.
	ErrMissingTranslation = errors.New("i18n: missing translation")
)

// Translator resolves a message key for a locale. Args are applied as
// fmt.Sprintf operands when present.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides which string is shown when a translation
// is missing. Args carry a map with a "default" entry when the caller had a
// fallback.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Translate resolves key through t, routing failures through onMissing. When
// onMissing is nil the fallback wins, then the key itself.
func Translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if onMissing == nil {
		onMissing = MissingTranslationDefault
	}

	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}

// MissingTranslationDefault returns the "default" entry carried in args, or
// the key when there is none.
func MissingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		raw, ok := values["default"]
		if !ok || raw == nil {
			continue
		}
		if fallback := strings.TrimSpace(fmt.Sprint(raw)); fallback != "" {
			return fallback
		}
	}
	return key
}
