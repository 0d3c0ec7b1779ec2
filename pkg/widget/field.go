package widget

import (
	"strings"

	"github.com/goliatone/go-formwidget/pkg/surface"
)

// Field is one labelled input of a Form. The label doubles as the key of the
// field in the submitted Values.
type Field struct {
	label string
	kind  Kind

	cfg *config
	id  string

	surface   surface.Surface
	input     surface.Node
	errorCell surface.Node

	errorCode    ErrorCode
	errorMessage string
}

// NewField returns a field with the given label and kind. Messages and ids
// are configured by the Form that adopts the field.
func NewField(label string, kind Kind) *Field {
	return &Field{
		label: strings.TrimSpace(label),
		kind:  kind,
		cfg:   &config{},
	}
}

// Label returns the construction-time label.
func (f *Field) Label() string {
	return f.label
}

// Kind returns the field kind.
func (f *Field) Kind() Kind {
	return f.kind
}

// Input returns the bound input node, or nil before Render.
func (f *Field) Input() surface.Node {
	return f.input
}

// ErrorCell returns the inline error node, or nil before Render.
func (f *Field) ErrorCell() surface.Node {
	return f.errorCell
}

// Render builds the field row: a label cell and an input cell holding the
// input plus a hidden inline error cell. Rendering again rebinds the field to
// the new input.
func (f *Field) Render(s surface.Surface) surface.Node {
	row := s.CreateElement(surface.KindRow)

	labelCell := s.CreateElement(surface.KindCell)
	labelNode := s.CreateElement(surface.KindSpan)
	s.SetText(labelNode, f.label)
	if f.id != "" {
		s.SetAttribute(labelNode, "id", f.id+"-label")
	}
	s.AppendChild(labelCell, labelNode)
	s.AppendChild(row, labelCell)

	inputCell := s.CreateElement(surface.KindCell)
	input := s.CreateElement(surface.KindInput)
	s.SetAttribute(input, "type", "text")
	s.SetAttribute(input, "name", f.label)
	s.SetAttribute(input, "data-kind", f.kind.String())
	if f.id != "" {
		s.SetAttribute(input, "id", f.id)
		s.SetAttribute(input, "aria-labelledby", f.id+"-label")
	}

	errorCell := s.CreateElement(surface.KindDiv)
	s.SetAttribute(errorCell, "class", "formwidget-field-error")
	s.SetAttribute(errorCell, "style", errorStyle(f.cfg.theme))
	s.SetVisible(errorCell, false)

	s.AppendChild(inputCell, input)
	s.AppendChild(inputCell, errorCell)
	s.AppendChild(row, inputCell)

	f.surface = s
	f.input = input
	f.errorCell = errorCell
	return row
}

// Value returns the bound input content without leading and trailing
// whitespace.
func (f *Field) Value() string {
	f.mustBeRendered("Value")
	return strings.TrimSpace(f.surface.Value(f.input))
}

// SetValue writes raw into the bound input, as a user edit would.
func (f *Field) SetValue(raw string) {
	f.mustBeRendered("SetValue")
	f.surface.SetValue(f.input, raw)
}

// ErrorMessage returns the message of the last failed check, or "".
func (f *Field) ErrorMessage() string {
	return f.errorMessage
}

// ErrorCode returns the code of the last failed check, or ErrorNone.
func (f *Field) ErrorCode() ErrorCode {
	return f.errorCode
}

// Reset clears the error state and empties the input. Label and kind are
// kept. Calling Reset repeatedly is harmless.
func (f *Field) Reset() {
	f.clearError()
	if f.input != nil {
		f.surface.SetValue(f.input, "")
	}
}

// Check validates the current value and records the failure, if any.
func (f *Field) Check() bool {
	f.clearError()

	value := f.Value()
	if value == "" {
		f.setError(ErrorEmptyField)
		return false
	}
	if f.kind == KindEmail && !IsEmail(value) {
		f.setError(ErrorInvalidEmail)
		return false
	}
	return true
}

func (f *Field) setError(code ErrorCode) {
	f.errorCode = code
	f.errorMessage = f.cfg.message(code)
	if f.errorCell != nil {
		f.surface.SetText(f.errorCell, f.errorMessage)
		f.surface.SetVisible(f.errorCell, true)
	}
}

func (f *Field) clearError() {
	f.errorCode = ErrorNone
	f.errorMessage = ""
	if f.errorCell != nil {
		f.surface.ClearChildren(f.errorCell)
		f.surface.SetVisible(f.errorCell, false)
	}
}

func (f *Field) mustBeRendered(op string) {
	if f.input == nil || f.surface == nil {
		panic("widget: Field." + op + " called before Render on field " + f.label)
	}
}
