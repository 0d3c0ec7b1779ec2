// Package page mounts forms into named containers of an HTML document and
// renders each accepted submission into a companion display container.
package page

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/i18n"
	"github.com/goliatone/go-formwidget/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formwidget/pkg/surface"
	"github.com/goliatone/go-formwidget/pkg/surface/dom"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

var (
	// ErrContainerNotFound is returned when a mount names a container id the
	// document does not have.
	ErrContainerNotFound = errors.New("page: container not found")
	// ErrDuplicateMount is returned when two mounts share a name.
	ErrDuplicateMount = errors.New("page: duplicate mount")
)

// Page owns a document and the forms mounted into it.
type Page struct {
	doc      *dom.Document
	opts     *options
	logger   *zap.Logger
	sanitize *bluemonday.Policy
	mounts   []*Mount
}

// Mount is one form attached to a page with its display container.
type Mount struct {
	name    string
	locale  string
	page    *Page
	form    *widget.Form
	display surface.Node
	last    widget.Values
}

// New wraps an existing document. Forms are attached with Mount.
func New(doc *dom.Document, opts ...Option) *Page {
	return newPage(doc, newOptions(opts))
}

func newPage(doc *dom.Document, opts *options) *Page {
	return &Page{
		doc:      doc,
		opts:     opts,
		logger:   opts.logger,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Build renders the page shell for cfg, parses it and mounts every form.
func Build(cfg Config, opts ...Option) (*Page, error) {
	o := newOptions(opts)

	engine := o.engine
	if engine == nil {
		var err error
		engine, err = gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithTemplateFunc(i18n.TemplateFuncs(o.translator, i18n.TemplateConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("page: template engine: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(cfg.Forms))
	mounts := make([]any, 0, len(cfg.Forms))
	for _, mount := range cfg.Forms {
		name := mount.MountName()
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMount, name)
		}
		seen[name] = struct{}{}
		mounts = append(mounts, map[string]any{
			"name":              name,
			"locale":            mount.Locale,
			"form_container":    mount.FormContainer,
			"display_container": mount.DisplayContainer,
		})
	}

	lang := ""
	if len(cfg.Forms) > 0 {
		lang = cfg.Forms[0].Locale
	}
	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = i18n.Translate(o.translator, lang, "page.title", "Forms", nil)
	}

	markup, err := engine.RenderTemplate("page", map[string]any{
		"title":  title,
		"lang":   lang,
		"mounts": mounts,
	})
	if err != nil {
		return nil, fmt.Errorf("page: render shell: %w", err)
	}

	doc, err := dom.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	p := newPage(doc, o)
	for _, mount := range cfg.Forms {
		if _, err := p.Mount(mount); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Mount builds the fields and form described by cfg and appends the rendered
// form to its form container.
func (p *Page) Mount(cfg MountConfig) (*Mount, error) {
	name := cfg.MountName()
	if name == "" {
		return nil, errors.New("page: mount needs a name or a form container")
	}
	if _, exists := p.Lookup(name); exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateMount, name)
	}

	formContainer, ok := p.doc.ElementByID(cfg.FormContainer)
	if !ok {
		return nil, fmt.Errorf("%w: %q (mount %s)", ErrContainerNotFound, cfg.FormContainer, name)
	}
	display, ok := p.doc.ElementByID(cfg.DisplayContainer)
	if !ok {
		return nil, fmt.Errorf("%w: %q (mount %s)", ErrContainerNotFound, cfg.DisplayContainer, name)
	}

	fields := make([]*widget.Field, 0, len(cfg.Fields))
	for _, fc := range cfg.Fields {
		kind, err := widget.ParseKind(fc.Kind)
		if err != nil {
			return nil, fmt.Errorf("page: mount %s field %q: %w", name, fc.Label, err)
		}
		fields = append(fields, widget.NewField(fc.Label, kind))
	}

	logger := p.logger.With(zap.String("mount", name))
	formOpts := []widget.Option{
		widget.WithLogger(logger),
		widget.WithTranslator(p.opts.translator, cfg.Locale),
		widget.WithTheme(p.opts.theme),
	}
	if cfg.SubmitLabel != "" {
		formOpts = append(formOpts, widget.WithSubmitLabel(cfg.SubmitLabel))
	}
	if cfg.IDPrefix != "" {
		formOpts = append(formOpts, widget.WithIDPrefix(cfg.IDPrefix))
	}

	m := &Mount{
		name:    name,
		locale:  cfg.Locale,
		page:    p,
		display: display,
	}
	form, err := widget.NewForm(fields, m.onValidation, formOpts...)
	if err != nil {
		return nil, fmt.Errorf("page: mount %s: %w", name, err)
	}
	m.form = form

	p.doc.AppendChild(formContainer, form.Render(p.doc))
	p.mounts = append(p.mounts, m)
	logger.Info("form mounted",
		zap.String("form", form.ID()),
		zap.Int("fields", len(fields)),
		zap.String("locale", cfg.Locale),
	)
	return m, nil
}

// Lookup returns the mount registered under name.
func (p *Page) Lookup(name string) (*Mount, bool) {
	for _, m := range p.mounts {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// Mounts returns the mounts in the order they were attached.
func (p *Page) Mounts() []*Mount {
	return append([]*Mount(nil), p.mounts...)
}

// Document returns the underlying document.
func (p *Page) Document() *dom.Document {
	return p.doc
}

// Render writes the current document, including entered values and any
// visible errors, as HTML.
func (p *Page) Render(w io.Writer) error {
	return p.doc.Render(w)
}

// Name returns the mount name.
func (m *Mount) Name() string {
	return m.name
}

// Locale returns the locale the form messages are resolved for.
func (m *Mount) Locale() string {
	return m.locale
}

// Form returns the mounted form.
func (m *Mount) Form() *widget.Form {
	return m.form
}

// Display returns the display container node.
func (m *Mount) Display() surface.Node {
	return m.display
}

// LastValues returns the values currently shown in the display container.
// It is empty before the first accepted submission and after a rejected one.
func (m *Mount) LastValues() widget.Values {
	return m.last
}
