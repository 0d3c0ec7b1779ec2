package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formwidget/pkg/widget"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits an application/json object in field order.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded pairs.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits one label=value line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag or environment value to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return OutputFormatJSON, nil
	case "form", "urlencoded", "form-urlencoded":
		return OutputFormatFormURLEncoded, nil
	case "pretty", "text":
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ContentType reports the media type of the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serializes values in format.
func Encode(values widget.Values, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(formEncode(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	case OutputFormatJSON, "":
		return json.Marshal(values)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// formEncode keeps field order, which url.Values.Encode would sort away.
func formEncode(values widget.Values) string {
	parts := make([]string, 0, values.Len())
	for _, pair := range values.Pairs() {
		parts = append(parts, url.QueryEscape(pair.Label)+"="+url.QueryEscape(pair.Value))
	}
	return strings.Join(parts, "&")
}

func prettyPrint(values widget.Values) string {
	var b strings.Builder
	for _, pair := range values.Pairs() {
		fmt.Fprintf(&b, "%s=%s\n", pair.Label, pair.Value)
	}
	return b.String()
}
