package widget

import (
	"fmt"
	"strings"
)

// Kind selects which validators a Field runs.
type Kind int

const (
	// KindPlain fields only need to be non-empty.
	KindPlain Kind = iota
	// KindEmail fields must also look like an email address.
	KindEmail
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	default:
		return "text"
	}
}

// ParseKind maps configuration names onto a Kind. The empty string, "text"
// and "plain" select KindPlain.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "plain", "string":
		return KindPlain, nil
	case "email", "e-mail", "mail":
		return KindEmail, nil
	default:
		return KindPlain, fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}
