package widget

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/surface"
)

// State is the position of a Form in its submission cycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRejected
	StateAccepted
	StateResetting
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateAccepted:
		return "accepted"
	case StateResetting:
		return "resetting"
	default:
		return "idle"
	}
}

// Result is the synchronous outcome of Submit. Values is only populated when
// Accepted is true. Ignored marks a submit that arrived while another one was
// still running; the callback was not invoked for it.
type Result struct {
	Accepted bool
	Ignored  bool
	Values   Values
	Errors   []FieldError
}

// Form renders an ordered set of fields with an error region and a submit
// button, and validates them when the button is activated.
type Form struct {
	id           string
	fields       []*Field
	onValidation func(ok bool)
	cfg          *config
	logger       *zap.Logger

	surface      surface.Surface
	errorRegion  surface.Node
	submitButton surface.Node

	state State
}

// NewForm adopts fields and returns a form reporting each submission outcome
// to onValidation. Labels must be non-empty and unique since they key the
// submitted Values.
func NewForm(fields []*Field, onValidation func(ok bool), options ...Option) (*Form, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	id := cfg.idPrefix
	if id == "" {
		id = "fw-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}

	seen := make(map[string]struct{}, len(fields))
	adopted := make([]*Field, 0, len(fields))
	for idx, field := range fields {
		if field == nil {
			return nil, fmt.Errorf("%w (position %d)", ErrNilField, idx)
		}
		if field.label == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrEmptyLabel, idx)
		}
		if _, exists := seen[field.label]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, field.label)
		}
		seen[field.label] = struct{}{}

		field.cfg = cfg
		field.id = fmt.Sprintf("%s-field-%d", id, idx)
		adopted = append(adopted, field)
	}

	if onValidation == nil {
		onValidation = func(bool) {}
	}

	return &Form{
		id:           id,
		fields:       adopted,
		onValidation: onValidation,
		cfg:          cfg,
		logger:       cfg.logger.With(zap.String("form", id)),
	}, nil
}

// ID returns the prefix used for the form's element ids.
func (f *Form) ID() string {
	return f.id
}

// Fields returns the fields in display order.
func (f *Form) Fields() []*Field {
	return append([]*Field(nil), f.fields...)
}

// Field returns the field with the given label.
func (f *Form) Field(label string) (*Field, bool) {
	for _, field := range f.fields {
		if field.label == label {
			return field, true
		}
	}
	return nil, false
}

// State returns the current submission state.
func (f *Form) State() State {
	return f.state
}

// ErrorRegion returns the form-level error node, or nil before Render.
func (f *Form) ErrorRegion() surface.Node {
	return f.errorRegion
}

// SubmitButton returns the submit control, or nil before Render.
func (f *Form) SubmitButton() surface.Node {
	return f.submitButton
}

// Render builds the form table: a hidden error region, one row per field and
// a submit row. Activating the submit button runs Submit.
func (f *Form) Render(s surface.Surface) surface.Node {
	table := s.CreateElement(surface.KindTable)
	s.SetAttribute(table, "id", f.id)
	s.SetAttribute(table, "class", "formwidget-form")

	errorRow := s.CreateElement(surface.KindRow)
	errorCell := s.CreateElement(surface.KindCell)
	s.SetAttribute(errorCell, "colspan", "2")
	errorRegion := s.CreateElement(surface.KindDiv)
	s.SetAttribute(errorRegion, "id", f.id+"-errors")
	s.SetAttribute(errorRegion, "class", "formwidget-errors")
	s.SetAttribute(errorRegion, "role", "alert")
	s.SetVisible(errorRegion, false)
	s.AppendChild(errorCell, errorRegion)
	s.AppendChild(errorRow, errorCell)
	s.AppendChild(table, errorRow)

	for _, field := range f.fields {
		s.AppendChild(table, field.Render(s))
	}

	button := s.CreateElement(surface.KindButton)
	s.SetAttribute(button, "type", "button")
	s.SetAttribute(button, "id", f.id+"-submit")
	s.SetAttribute(button, "class", "formwidget-submit")
	s.SetAttribute(button, "style", buttonStyle(f.cfg.theme))
	s.SetText(button, f.cfg.resolvedSubmitLabel())
	s.OnActivate(button, func() {
		f.Submit()
	})

	buttonCell := s.CreateElement(surface.KindCell)
	s.SetAttribute(buttonCell, "colspan", "2")
	s.AppendChild(buttonCell, button)
	buttonRow := s.CreateElement(surface.KindRow)
	s.AppendChild(buttonRow, buttonCell)
	s.AppendChild(table, buttonRow)

	f.surface = s
	f.errorRegion = errorRegion
	f.submitButton = button
	return table
}

// ToKeyValueMap snapshots the current field values keyed by label, in field
// order. It is meant to be read after a successful validation pass.
func (f *Form) ToKeyValueMap() Values {
	var values Values
	for _, field := range f.fields {
		values.Set(field.Label(), field.Value())
	}
	return values
}

// Submit validates every field, reports the outcome and, on success, resets
// the fields once the callback has returned. Failed submissions leave every
// value in place for correction.
func (f *Form) Submit() Result {
	if f.errorRegion == nil {
		panic("widget: Form.Submit called before Render")
	}
	if f.state != StateIdle {
		f.logger.Warn("submit ignored", zap.Stringer("state", f.state))
		return Result{Ignored: true}
	}
	defer func() {
		f.state = StateIdle
	}()

	f.state = StateValidating
	f.surface.ClearChildren(f.errorRegion)
	f.surface.SetVisible(f.errorRegion, false)

	var failures []FieldError
	for _, field := range f.fields {
		if field.Check() {
			continue
		}
		failure := FieldError{
			Label:   field.Label(),
			Code:    field.ErrorCode(),
			Message: field.ErrorMessage(),
		}
		failures = append(failures, failure)
		f.logger.Debug("check KO",
			zap.String("field", failure.Label),
			zap.String("code", string(failure.Code)),
			zap.String("error", failure.Message),
		)
	}

	if len(failures) > 0 {
		f.state = StateRejected
		f.showErrors(failures)
		f.onValidation(false)
		return Result{Errors: failures}
	}

	f.state = StateAccepted
	values := f.ToKeyValueMap()
	f.logger.Info("form check ok", zap.Int("fields", values.Len()))
	f.onValidation(true)

	f.state = StateResetting
	for _, field := range f.fields {
		field.Reset()
	}
	return Result{Accepted: true, Values: values}
}

func (f *Form) showErrors(failures []FieldError) {
	s := f.surface
	for _, failure := range failures {
		line := s.CreateElement(surface.KindDiv)
		s.SetAttribute(line, "class", "formwidget-error")
		s.SetAttribute(line, "data-field", failure.Label)
		s.SetText(line, failure.Error())
		s.AppendChild(f.errorRegion, line)
	}
	s.SetVisible(f.errorRegion, true)
}
