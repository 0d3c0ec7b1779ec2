package page

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/i18n"
	"github.com/goliatone/go-formwidget/pkg/render/template"
)

// Option configures a Page.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	translator i18n.Translator
	theme      *theme.RendererConfig
	engine     template.TemplateRenderer
}

func newOptions(opts []Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.translator == nil {
		cfg.translator = i18n.DefaultCatalog()
	}
	return cfg
}

// WithLogger sets the logger shared by the page and its forms.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTranslator replaces the embedded catalog used for headings, submit
// labels and validation messages.
func WithTranslator(t i18n.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithTheme styles every mounted form.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *options) {
		o.theme = cfg
	}
}

// WithTemplateRenderer replaces the engine Build renders the page shell with.
// The renderer must provide a "page" template and a translate function.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(o *options) {
		o.engine = engine
	}
}
