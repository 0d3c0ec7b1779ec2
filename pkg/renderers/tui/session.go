// Package tui fills mounted forms from a terminal. Values typed at the
// prompts are written into the form's inputs and the form's own submit cycle
// validates them, so terminal and document submissions behave the same.
package tui

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/i18n"
	"github.com/goliatone/go-formwidget/pkg/page"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// Session drives mounted forms through a PromptDriver.
type Session struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	logger       *zap.Logger
	translator   i18n.Translator
}

// New constructs a session with defaults (survey driver, JSON output).
func New(options ...Option) *Session {
	s := &Session{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme,
		logger:       zap.NewNop(),
		translator:   i18n.DefaultCatalog(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Run prompts for every field of the mount and submits its form. A rejected
// submission lists the errors and asks whether to try again; the next round
// offers the kept values as defaults. Declining returns ErrAborted.
func (s *Session) Run(ctx context.Context, m *page.Mount) (widget.Values, error) {
	if ctx == nil {
		return widget.Values{}, errors.New("tui: context is required")
	}
	if m == nil {
		return widget.Values{}, errors.New("tui: mount is nil")
	}

	form := m.Form()
	logger := s.logger.With(zap.String("mount", m.Name()))
	for attempt := 1; ; attempt++ {
		for _, field := range form.Fields() {
			value, err := s.driver.Input(ctx, InputConfig{
				Message: s.theme.PromptPrefix + field.Label(),
				Default: field.Value(),
				Help:    fieldHelp(field),
			})
			if err != nil {
				return widget.Values{}, err
			}
			field.SetValue(value)
		}

		result := form.Submit()
		if result.Ignored {
			return widget.Values{}, errors.New("tui: form is busy")
		}
		if result.Accepted {
			logger.Info("terminal submission accepted", zap.Int("attempt", attempt))
			return result.Values, nil
		}

		logger.Debug("terminal submission rejected",
			zap.Int("attempt", attempt),
			zap.Int("errors", len(result.Errors)),
		)
		for _, failure := range result.Errors {
			if err := s.driver.Info(ctx, s.theme.ErrorPrefix+failure.Error()); err != nil {
				return widget.Values{}, err
			}
		}

		retry, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: s.message(m.Locale(), "prompt.retry", "Correct the form and submit again?"),
			Default: true,
		})
		if err != nil {
			return widget.Values{}, err
		}
		if !retry {
			return widget.Values{}, ErrAborted
		}
		if err := ctx.Err(); err != nil {
			return widget.Values{}, err
		}
	}
}

// Choose asks which mount to fill in. A single mount is returned without
// prompting.
func (s *Session) Choose(ctx context.Context, mounts []*page.Mount) (*page.Mount, error) {
	switch len(mounts) {
	case 0:
		return nil, ErrNoMounts
	case 1:
		return mounts[0], nil
	}

	options := make([]string, len(mounts))
	for i, m := range mounts {
		options[i] = m.Name()
		if m.Locale() != "" {
			options[i] = fmt.Sprintf("%s (%s)", m.Name(), m.Locale())
		}
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: s.message(mounts[0].Locale(), "prompt.choose", "Which form do you want to fill in?"),
		Options: options,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(mounts) {
		return nil, fmt.Errorf("tui: selection %d out of range", idx)
	}
	return mounts[idx], nil
}

// Encode serializes values in the session's output format.
func (s *Session) Encode(values widget.Values) ([]byte, error) {
	return Encode(values, s.outputFormat)
}

// ContentType reports the media type of Encode's output.
func (s *Session) ContentType() string {
	return s.outputFormat.ContentType()
}

func (s *Session) message(locale, key, fallback string) string {
	return s.theme.InfoPrefix + i18n.Translate(s.translator, locale, key, fallback, nil)
}

func fieldHelp(field *widget.Field) string {
	if field.Kind() == widget.KindEmail {
		return "name@example.com"
	}
	return ""
}
