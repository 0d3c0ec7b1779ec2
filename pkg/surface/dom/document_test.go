package dom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidget/pkg/surface"
	"github.com/goliatone/go-formwidget/pkg/surface/dom"
)

func TestDocument_BuildAndRender(t *testing.T) {
	doc := dom.New()

	table := doc.CreateElement(surface.KindTable)
	row := doc.CreateElement(surface.KindRow)
	cell := doc.CreateElement(surface.KindCell)
	input := doc.CreateElement(surface.KindInput)
	doc.SetAttribute(input, "type", "text")
	doc.SetAttribute(input, "id", "fg-nom")
	doc.AppendChild(cell, input)
	doc.AppendChild(row, cell)
	doc.AppendChild(table, row)
	doc.AppendChild(doc.Body(), table)

	doc.Type(input, "Dupont")

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `<input type="text" id="fg-nom" value="Dupont"/>`) {
		t.Fatalf("expected input markup with value, got:\n%s", got)
	}

	found, ok := doc.ElementByID("fg-nom")
	if !ok || found != input {
		t.Fatalf("expected ElementByID to return the input")
	}
	if value := doc.Value(found); value != "Dupont" {
		t.Fatalf("value = %q, want Dupont", value)
	}
}

func TestDocument_SetTextEscapesMarkup(t *testing.T) {
	doc := dom.New()
	span := doc.CreateElement(surface.KindSpan)
	doc.SetText(span, "<b>nom</b>")
	doc.SetText(span, "<i>nom</i>")

	if got := doc.Text(span); got != "<i>nom</i>" {
		t.Fatalf("text = %q", got)
	}
	if got := doc.String(span); got != "<span>&lt;i&gt;nom&lt;/i&gt;</span>" {
		t.Fatalf("rendered = %q", got)
	}
}

func TestDocument_Visibility(t *testing.T) {
	doc := dom.New()
	outer := doc.CreateElement(surface.KindDiv)
	inner := doc.CreateElement(surface.KindDiv)
	doc.AppendChild(outer, inner)

	if !doc.Visible(inner) {
		t.Fatalf("expected nodes to start visible")
	}
	doc.SetVisible(outer, false)
	if doc.Visible(inner) {
		t.Fatalf("expected hidden ancestor to hide inner node")
	}
	doc.SetVisible(outer, true)
	if !doc.Visible(inner) {
		t.Fatalf("expected inner node visible again")
	}
	if _, ok := doc.Attribute(outer, "hidden"); ok {
		t.Fatalf("expected hidden attribute removed")
	}
}

func TestDocument_ActivateRunsHandlersInOrder(t *testing.T) {
	doc := dom.New()
	button := doc.CreateElement(surface.KindButton)

	var calls []string
	doc.OnActivate(button, func() { calls = append(calls, "first") })
	doc.OnActivate(button, func() { calls = append(calls, "second") })
	doc.OnActivate(button, nil)

	if !doc.Activate(button) {
		t.Fatalf("expected handlers to run")
	}
	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Fatalf("handler order mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_ClearChildrenDropsHandlers(t *testing.T) {
	doc := dom.New()
	container := doc.CreateElement(surface.KindDiv)
	button := doc.CreateElement(surface.KindButton)
	doc.AppendChild(container, button)

	ran := false
	doc.OnActivate(button, func() { ran = true })
	doc.ClearChildren(container)

	if len(doc.Children(container)) != 0 {
		t.Fatalf("expected container to be empty")
	}
	if doc.Activate(button) || ran {
		t.Fatalf("expected handlers of detached nodes to be dropped")
	}
}

func TestParse_FindsMountPoints(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><div id="form"></div><div id="display"><p>old</p></div></body></html>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, id := range []string{"form", "display"} {
		if _, ok := doc.ElementByID(id); !ok {
			t.Fatalf("expected mount point %q", id)
		}
	}
	if _, ok := doc.ElementByID("missing"); ok {
		t.Fatalf("unexpected mount point")
	}

	display, _ := doc.ElementByID("display")
	if got := len(doc.ElementsByTag(display, "p")); got != 1 {
		t.Fatalf("expected one paragraph, got %d", got)
	}
}

func TestDocument_ForeignNodePanics(t *testing.T) {
	doc := dom.New()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for foreign node")
		}
	}()
	doc.SetText("not a node", "x")
}
