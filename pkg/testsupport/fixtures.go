// Package testsupport holds fixtures shared by the page, terminal and CLI
// tests: building pages, typing into forms and reading back what a user
// would see.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidget/pkg/page"
	"github.com/goliatone/go-formwidget/pkg/surface"
	"github.com/goliatone/go-formwidget/pkg/surface/dom"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// MustBuildPage builds cfg, failing the test on error.
func MustBuildPage(t *testing.T, cfg page.Config, opts ...page.Option) *page.Page {
	t.Helper()
	p, err := page.Build(cfg, opts...)
	if err != nil {
		t.Fatalf("build page: %v", err)
	}
	return p
}

// MustBuildDefaultPage builds the embedded French/English page.
func MustBuildDefaultPage(t *testing.T, opts ...page.Option) *page.Page {
	t.Helper()
	return MustBuildPage(t, page.DefaultConfig(), opts...)
}

// MustMount looks up a mount by name.
func MustMount(t *testing.T, p *page.Page, name string) *page.Mount {
	t.Helper()
	m, ok := p.Lookup(name)
	if !ok {
		t.Fatalf("mount %q not found", name)
	}
	return m
}

// Fill types values into the form's fields in order. Extra fields are left
// untouched.
func Fill(doc *dom.Document, form *widget.Form, values ...string) {
	for i, field := range form.Fields() {
		if i >= len(values) {
			return
		}
		doc.Type(field.Input(), values[i])
	}
}

// Click activates the form's submit button.
func Click(doc *dom.Document, form *widget.Form) {
	doc.Activate(form.SubmitButton())
}

// FieldValues returns the trimmed value of every field, in order.
func FieldValues(form *widget.Form) []string {
	out := make([]string, 0, len(form.Fields()))
	for _, field := range form.Fields() {
		out = append(out, field.Value())
	}
	return out
}

// TableRows reads the text of every cell below node, one slice per row.
func TableRows(doc *dom.Document, node surface.Node) [][]string {
	var rows [][]string
	for _, row := range doc.ElementsByTag(node, "tr") {
		var cells []string
		for _, cell := range doc.Children(row) {
			cells = append(cells, doc.Text(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}

// Diff returns a diff string if the values differ.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
