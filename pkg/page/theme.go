package page

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ResolveTheme selects name/variant through selector and flattens the
// selection into the config WithTheme expects. Variant tokens override the
// manifest tokens, and every token is also exposed as a "--token" CSS
// variable.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("page: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("page: select theme %q: %w", name, err)
	}
	return themeConfig(selection), nil
}

func themeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  map[string]string{},
		CSSVars: map[string]string{},
	}
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			cfg.Tokens[key] = value
		}
		if v, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range v.Tokens {
				cfg.Tokens[key] = value
			}
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}
	return cfg
}
