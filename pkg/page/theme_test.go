package page_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidget/pkg/page"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}

func acmeSelector() *stubThemeSelector {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"button.background": "#123456",
			"error.background":  "#ffeeee",
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"button.background": "#654321"}},
		},
	}
	return &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}
}

func TestResolveTheme(t *testing.T) {
	selector := acmeSelector()
	cfg, err := page.ResolveTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}

	if diff := cmp.Diff([]string{"acme/dark"}, selector.calls); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	wantTokens := map[string]string{"button.background": "#654321", "error.background": "#ffeeee"}
	if diff := cmp.Diff(wantTokens, cfg.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if cfg.CSSVars["--button-background"] != "#654321" {
		t.Fatalf("css vars not derived from tokens: %v", cfg.CSSVars)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected theme %s/%s", cfg.Theme, cfg.Variant)
	}
}

func TestResolveTheme_Errors(t *testing.T) {
	if _, err := page.ResolveTheme(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
	boom := errors.New("boom")
	if _, err := page.ResolveTheme(&stubThemeSelector{err: boom}, "acme", ""); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

func TestBuild_ThemedForms(t *testing.T) {
	cfg, err := page.ResolveTheme(acmeSelector(), "acme", "dark")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	p := buildDefault(t, page.WithTheme(cfg))
	for _, m := range p.Mounts() {
		style, _ := p.Document().Attribute(m.Form().SubmitButton(), "style")
		if !strings.Contains(style, "background-color: #654321") {
			t.Fatalf("mount %s button not themed: %q", m.Name(), style)
		}
	}
}
