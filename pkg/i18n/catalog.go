package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// DefaultLocale is used when a locale and all of its parents are unknown.
const DefaultLocale = "en"

// Catalog is a Translator backed by flat key/message tables, one per locale.
type Catalog struct {
	fallback string
	messages map[string]map[string]string
}

// Ensure Catalog satisfies Translator.
var _ Translator = (*Catalog)(nil)

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithFallbackLocale overrides DefaultLocale.
func WithFallbackLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		if normalized := normalizeLocale(locale); normalized != "" {
			c.fallback = normalized
		}
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(options ...CatalogOption) *Catalog {
	c := &Catalog{
		fallback: DefaultLocale,
		messages: make(map[string]map[string]string),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// DefaultCatalog loads the embedded English and French messages.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(embeddedLocales, "locales")
	if err != nil {
		panic(fmt.Sprintf("i18n: load embedded locales: %v", err))
	}
	return c
}

// LocalesFS exposes the embedded locale files.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return embeddedLocales
	}
	return sub
}

// LoadCatalog reads every <locale>.yaml file in dir. Nested keys are
// flattened with dots ("validation: {empty_field: ...}" becomes
// "validation.empty_field").
func LoadCatalog(fsys fs.FS, dir string, options ...CatalogOption) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("i18n: catalog filesystem is nil")
	}
	if dir == "" {
		dir = "."
	}

	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("i18n: glob locales: %w", err)
	}

	c := NewCatalog(options...)
	for _, file := range matches {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}
		locale := strings.TrimSuffix(path.Base(file), path.Ext(file))
		if err := c.AddYAML(locale, data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddYAML merges a YAML message table into locale.
func (c *Catalog) AddYAML(locale string, data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("i18n: decode %s messages: %w", locale, err)
	}
	flat := make(map[string]string)
	flatten("", raw, flat)
	c.Add(locale, flat)
	return nil
}

// Add merges messages into locale; later calls win on key collisions.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}
	table := c.messages[locale]
	if table == nil {
		table = make(map[string]string, len(messages))
		c.messages[locale] = table
	}
	for key, message := range messages {
		if key = strings.TrimSpace(key); key != "" {
			table[key] = message
		}
	}
}

// Translate looks key up in locale, then its parents ("fr-CA" -> "fr"), then
// the fallback locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	key = strings.TrimSpace(key)
	for _, candidate := range c.chain(locale) {
		message, ok := c.messages[candidate][key]
		if !ok {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(message, args...), nil
		}
		return message, nil
	}
	return "", fmt.Errorf("%w: %q (locale %q)", ErrMissingTranslation, key, locale)
}

// Locales lists the locales with at least one message, sorted.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) chain(locale string) []string {
	var out []string
	seen := make(map[string]struct{}, 3)
	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	normalized := normalizeLocale(locale)
	add(normalized)
	if idx := strings.Index(normalized, "-"); idx > 0 {
		add(normalized[:idx])
	}
	add(c.fallback)
	return out
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.ToLower(locale)
}

func flatten(prefix string, value any, out map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			flatten(joinKey(prefix, key), child, out)
		}
	case nil:
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

func joinKey(parent, child string) string {
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
