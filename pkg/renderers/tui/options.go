package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/i18n"
)

// Theme captures optional message prefixes. It stays free of ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme marks errors so they stand out from prompts.
var DefaultTheme = Theme{ErrorPrefix: "! "}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the serialization used by Session.Encode.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTranslator resolves the retry and choice prompts.
func WithTranslator(t i18n.Translator) Option {
	return func(s *Session) {
		if t != nil {
			s.translator = t
		}
	}
}
