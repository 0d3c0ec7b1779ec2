package gotemplate_test

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formwidget/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formwidget/pkg/testsupport"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"call.tpl":       {Data: []byte("{{ greet(name) }}")},
		"filter.tpl":     {Data: []byte("{{ name|formwidget_test_shout }}")},
		"trim.tpl":       {Data: []byte("[{{ name|trim }}]")},
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(testFS())}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch: %q", written)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_TemplateFunc(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"greet": func(name string) string { return "bonjour " + name },
	}))

	result, err := engine.RenderTemplate("call", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "bonjour Ada" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("formwidget_test_shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("filter", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}

	if err := engine.RegisterFilter("formwidget_test_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngine_DefaultTrimFilter(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("trim", map[string]any{"name": "  Ada  "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "[Ada]" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderString("{% if ok %}yes{% else %}no{% endif %}", map[string]any{"ok": true})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "yes" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.RenderTemplate("hello", struct{ Name string }{"Ada"}); err == nil {
		t.Fatalf("expected error for unsupported data")
	}
	if err := engine.RegisterFilter(" ", nil); err == nil {
		t.Fatalf("expected error for empty filter")
	}
}
