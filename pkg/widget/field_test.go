package widget_test

import (
	"testing"

	"github.com/goliatone/go-formwidget/pkg/surface/dom"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

func renderedField(t *testing.T, label string, kind widget.Kind) (*widget.Field, *dom.Document) {
	t.Helper()

	field := widget.NewField(label, kind)
	if _, err := widget.NewForm([]*widget.Field{field}, nil, widget.WithIDPrefix("test")); err != nil {
		t.Fatalf("new form: %v", err)
	}
	doc := dom.New()
	doc.AppendChild(doc.Body(), field.Render(doc))
	return field, doc
}

func TestFieldCheck_EmptyValues(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		for _, kind := range []widget.Kind{widget.KindPlain, widget.KindEmail} {
			field, doc := renderedField(t, "nom", kind)
			field.SetValue(raw)

			if field.Check() {
				t.Fatalf("expected %q (%s) to fail", raw, kind)
			}
			if field.ErrorMessage() == "" {
				t.Fatalf("expected error message for %q", raw)
			}
			if field.ErrorCode() != widget.ErrorEmptyField {
				t.Fatalf("error code = %q, want empty_field", field.ErrorCode())
			}
			if !doc.Visible(field.ErrorCell()) {
				t.Fatalf("expected inline error cell to be visible")
			}
			if got := doc.Text(field.ErrorCell()); got != "empty field" {
				t.Fatalf("inline error text = %q", got)
			}
		}
	}
}

func TestFieldCheck_Email(t *testing.T) {
	cases := map[string]bool{
		"plaintext":        false,
		"a@":               false,
		"@b.com":           false,
		"user@example.com": true,
		"a@b.com":          true,
		" a@b.com  ":       true,
		"a@-b.com":         false,
		"a b@c.com":        false,
	}
	for input, want := range cases {
		field, _ := renderedField(t, "email", widget.KindEmail)
		field.SetValue(input)
		if got := field.Check(); got != want {
			t.Fatalf("Check(%q) = %v, want %v", input, got, want)
		}
		if !want && field.ErrorCode() == widget.ErrorNone {
			t.Fatalf("expected error code for %q", input)
		}
		if want && field.ErrorMessage() != "" {
			t.Fatalf("expected no error message for %q, got %q", input, field.ErrorMessage())
		}
	}
}

func TestFieldCheck_InvalidEmailMessage(t *testing.T) {
	field, _ := renderedField(t, "email", widget.KindEmail)
	field.SetValue("plaintext")
	field.Check()
	if field.ErrorCode() != widget.ErrorInvalidEmail {
		t.Fatalf("error code = %q", field.ErrorCode())
	}
	if field.ErrorMessage() != "invalid email format" {
		t.Fatalf("error message = %q", field.ErrorMessage())
	}
}

func TestFieldCheck_PlainAcceptsAnything(t *testing.T) {
	field, _ := renderedField(t, "nom", widget.KindPlain)
	field.SetValue("plaintext")
	if !field.Check() {
		t.Fatalf("expected plain field to accept non-empty value")
	}
}

func TestFieldCheck_ClearsPreviousError(t *testing.T) {
	field, doc := renderedField(t, "nom", widget.KindPlain)
	field.Check()
	if field.ErrorMessage() == "" {
		t.Fatalf("expected first check to fail")
	}

	field.SetValue("Dupont")
	if !field.Check() {
		t.Fatalf("expected second check to pass")
	}
	if field.ErrorMessage() != "" || field.ErrorCode() != widget.ErrorNone {
		t.Fatalf("expected error state cleared")
	}
	if doc.Visible(field.ErrorCell()) {
		t.Fatalf("expected inline error cell hidden")
	}
}

func TestFieldValue_Trims(t *testing.T) {
	field, doc := renderedField(t, "nom", widget.KindPlain)
	doc.Type(field.Input(), "  Dupont \n")
	if got := field.Value(); got != "Dupont" {
		t.Fatalf("value = %q", got)
	}
}

func TestFieldReset_Idempotent(t *testing.T) {
	field, doc := renderedField(t, "email", widget.KindEmail)
	field.SetValue("nope")
	field.Check()

	field.Reset()
	onceValue, onceError := field.Value(), field.ErrorMessage()
	field.Reset()

	if field.Value() != onceValue || field.ErrorMessage() != onceError {
		t.Fatalf("second reset changed state")
	}
	if field.Value() != "" || field.ErrorMessage() != "" {
		t.Fatalf("expected empty value and error after reset")
	}
	if doc.Visible(field.ErrorCell()) {
		t.Fatalf("expected error cell hidden after reset")
	}
	if field.Label() != "email" || field.Kind() != widget.KindEmail {
		t.Fatalf("reset must keep label and kind")
	}
}

func TestFieldValue_BeforeRenderPanics(t *testing.T) {
	field := widget.NewField("nom", widget.KindPlain)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when reading value before render")
		}
	}()
	_ = field.Value()
}

func TestFieldRender_Markup(t *testing.T) {
	field, doc := renderedField(t, "nom", widget.KindPlain)

	if got, _ := doc.Attribute(field.Input(), "id"); got != "test-field-0" {
		t.Fatalf("input id = %q", got)
	}
	if got, _ := doc.Attribute(field.Input(), "name"); got != "nom" {
		t.Fatalf("input name = %q", got)
	}
	labels := doc.ElementsByTag(doc.Body(), "span")
	if len(labels) != 1 || doc.Text(labels[0]) != "nom" {
		t.Fatalf("expected one label span with text nom")
	}
	if doc.Visible(field.ErrorCell()) {
		t.Fatalf("expected error cell hidden on render")
	}
}

func TestFieldRender_Rebinds(t *testing.T) {
	field, doc := renderedField(t, "nom", widget.KindPlain)
	first := field.Input()
	doc.Type(first, "old")

	field.Render(doc)
	if field.Input() == first {
		t.Fatalf("expected render to rebind the input")
	}
	if field.Value() != "" {
		t.Fatalf("expected value read from the new input")
	}
}
