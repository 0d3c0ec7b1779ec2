package widget

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type declaration struct {
	property string
	value    string
	token    string
}

var buttonDeclarations = []declaration{
	{property: "float", value: "right"},
	{property: "background-color", value: "#4CAF50", token: "button.background"},
	{property: "border", value: "none", token: "button.border"},
	{property: "color", value: "white", token: "button.color"},
	{property: "padding", value: "5px 10px", token: "button.padding"},
	{property: "text-align", value: "center"},
	{property: "text-decoration", value: "none"},
	{property: "display", value: "inline-block"},
	{property: "font-size", value: "16px", token: "button.font-size"},
}

var errorDeclarations = []declaration{
	{property: "background-color", value: "orange", token: "error.background"},
	{property: "color", value: "black", token: "error.color"},
}

func buttonStyle(cfg *theme.RendererConfig) string {
	return styleAttr(buttonDeclarations, cfg, true)
}

func errorStyle(cfg *theme.RendererConfig) string {
	return styleAttr(errorDeclarations, cfg, false)
}

func styleAttr(decls []declaration, cfg *theme.RendererConfig, withVars bool) string {
	parts := make([]string, 0, len(decls)+4)
	for _, decl := range decls {
		value := decl.value
		if cfg != nil && decl.token != "" {
			if override := strings.TrimSpace(cfg.Tokens[decl.token]); override != "" {
				value = override
			}
		}
		parts = append(parts, decl.property+": "+value)
	}

	if withVars && cfg != nil && len(cfg.CSSVars) > 0 {
		names := make([]string, 0, len(cfg.CSSVars))
		for name := range cfg.CSSVars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			key := strings.TrimSpace(name)
			if key == "" {
				continue
			}
			if !strings.HasPrefix(key, "--") {
				key = "--" + key
			}
			parts = append(parts, key+": "+cfg.CSSVars[name])
		}
	}
	return strings.Join(parts, "; ")
}
