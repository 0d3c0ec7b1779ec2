package widget

import (
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/i18n"
)

// DefaultSubmitLabel is used when no label option or translation applies.
const DefaultSubmitLabel = "Submit"

// Option configures a Form.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	submitLabel string
	translator  i18n.Translator
	locale      string
	onMissing   i18n.MissingTranslationHandler
	theme       *theme.RendererConfig
	idPrefix    string
}

// WithLogger routes validation logs to logger. Forms log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSubmitLabel sets the submit button text, overriding translations.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		cfg.submitLabel = strings.TrimSpace(label)
	}
}

// WithTranslator resolves error messages and the submit label for locale.
func WithTranslator(t i18n.Translator, locale string) Option {
	return func(cfg *config) {
		cfg.translator = t
		cfg.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslationHandler overrides the fallback used when a message
// key has no translation.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.onMissing = handler
	}
}

// WithTheme applies go-theme tokens and CSS variables to the submit button
// and error cells.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithIDPrefix fixes the prefix of generated element ids. By default every
// Form draws a random prefix so several forms can share a document.
func WithIDPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.idPrefix = strings.TrimSpace(prefix)
	}
}

func (c *config) message(code ErrorCode) string {
	return i18n.Translate(c.translator, c.locale, code.MessageKey(), code.DefaultMessage(), c.onMissing)
}

func (c *config) resolvedSubmitLabel() string {
	if c.submitLabel != "" {
		return c.submitLabel
	}
	return i18n.Translate(c.translator, c.locale, "form.submit", DefaultSubmitLabel, c.onMissing)
}
