package widget

import (
	"errors"
	"strings"
)

// Configuration errors returned by NewForm and ParseKind.
var (
	ErrNilField       = errors.New("widget: field is nil")
	ErrEmptyLabel     = errors.New("widget: field label is required")
	ErrDuplicateLabel = errors.New("widget: duplicate field label")
	ErrUnknownKind    = errors.New("widget: unknown field kind")
)

// ErrorCode identifies why a Field failed its last check.
type ErrorCode string

const (
	// ErrorNone means the field passed, or has not been checked.
	ErrorNone ErrorCode = ""
	// ErrorEmptyField means the trimmed value was empty.
	ErrorEmptyField ErrorCode = "empty_field"
	// ErrorInvalidEmail means an email field held something that is not an
	// email address.
	ErrorInvalidEmail ErrorCode = "invalid_email"
)

// MessageKey is the translation key of the code's message.
func (c ErrorCode) MessageKey() string {
	if c == ErrorNone {
		return ""
	}
	return "validation." + string(c)
}

// DefaultMessage is the English message used when no translation exists.
func (c ErrorCode) DefaultMessage() string {
	switch c {
	case ErrorEmptyField:
		return "empty field"
	case ErrorInvalidEmail:
		return "invalid email format"
	default:
		return ""
	}
}

// FieldError describes one failed field of a submission.
type FieldError struct {
	Label   string    `json:"label"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Label)
	b.WriteString(" : ")
	b.WriteString(e.Message)
	return b.String()
}
