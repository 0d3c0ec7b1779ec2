// Package formwidget is the entry point for building pages of validated
// forms. It re-exports the page and widget types most callers need and wraps
// the common build-and-render flow.
package formwidget

import (
	"bytes"
	"io/fs"

	"github.com/goliatone/go-formwidget/pkg/page"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// Config describes a page and its form mounts.
type Config = page.Config

// MountConfig describes one form and its containers.
type MountConfig = page.MountConfig

// FieldConfig declares a field by label and kind.
type FieldConfig = page.FieldConfig

// Page owns a document and the forms mounted into it.
type Page = page.Page

// Values is the ordered label -> value snapshot of an accepted submission.
type Values = widget.Values

// DefaultConfig returns the embedded French/English contact page.
func DefaultConfig() Config {
	return page.DefaultConfig()
}

// Build renders the page shell for cfg and mounts every form.
func Build(cfg Config, options ...page.Option) (*Page, error) {
	return page.Build(cfg, options...)
}

// RenderHTML builds the page for cfg and returns its markup.
func RenderHTML(cfg Config, options ...page.Option) ([]byte, error) {
	p, err := page.Build(cfg, options...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
