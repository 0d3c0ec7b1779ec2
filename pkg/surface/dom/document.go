package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formwidget/pkg/surface"
)

const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an in-memory HTML tree implementing surface.Surface. Input
// values live in the value attribute and hidden nodes carry the hidden
// attribute, so Render always reflects what a user would currently see.
//
// A Document is not safe for concurrent use; like a browser document it is
// owned by a single UI thread.
type Document struct {
	root     *html.Node
	handlers map[*html.Node][]func()
}

// Ensure Document implements the Surface contract.
var _ surface.Surface = (*Document)(nil)

// New returns an empty document with a head and a body.
func New() *Document {
	doc, err := Parse(strings.NewReader(emptyDocument))
	if err != nil {
		panic(fmt.Sprintf("dom: parse empty document: %v", err))
	}
	return doc
}

// Parse builds a Document from HTML markup. Mount points are usually looked
// up afterwards with ElementByID.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return &Document{
		root:     root,
		handlers: make(map[*html.Node][]func()),
	}, nil
}

// Root returns the document node.
func (d *Document) Root() surface.Node {
	return d.root
}

// Body returns the body element, or the document node when the markup has no
// body.
func (d *Document) Body() surface.Node {
	if body := findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	}); body != nil {
		return body
	}
	return d.root
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(kind string) surface.Node {
	kind = strings.ToLower(strings.TrimSpace(kind))
	return &html.Node{
		Type:     html.ElementNode,
		Data:     kind,
		DataAtom: atom.Lookup([]byte(kind)),
	}
}

// SetText replaces every child of node with one text node.
func (d *Document) SetText(node surface.Node, text string) {
	n := d.element(node)
	d.clear(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetAttribute sets or replaces an attribute.
func (d *Document) SetAttribute(node surface.Node, name, value string) {
	setAttr(d.element(node), name, value)
}

// AppendChild attaches child to parent. A child that already has a parent is
// moved.
func (d *Document) AppendChild(parent, child surface.Node) {
	p := d.element(parent)
	c := d.element(child)
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.AppendChild(c)
}

// ClearChildren detaches every child of node and drops their handlers.
func (d *Document) ClearChildren(node surface.Node) {
	d.clear(d.element(node))
}

// SetVisible toggles the hidden attribute.
func (d *Document) SetVisible(node surface.Node, visible bool) {
	n := d.element(node)
	if visible {
		removeAttr(n, "hidden")
		return
	}
	setAttr(n, "hidden", "")
}

// Value returns the value attribute of an input.
func (d *Document) Value(node surface.Node) string {
	value, _ := getAttr(d.element(node), "value")
	return value
}

// SetValue replaces the value attribute of an input.
func (d *Document) SetValue(node surface.Node, value string) {
	setAttr(d.element(node), "value", value)
}

// OnActivate binds handler to node. Handlers run in registration order.
func (d *Document) OnActivate(node surface.Node, handler func()) {
	if handler == nil {
		return
	}
	n := d.element(node)
	d.handlers[n] = append(d.handlers[n], handler)
}

// Activate runs the handlers bound to node, the way a click would. It reports
// whether any handler ran.
func (d *Document) Activate(node surface.Node) bool {
	n := d.element(node)
	handlers := append([]func(){}, d.handlers[n]...)
	for _, handler := range handlers {
		handler()
	}
	return len(handlers) > 0
}

// Type replaces the value of an input the way a user edit would.
func (d *Document) Type(node surface.Node, value string) {
	d.SetValue(node, value)
}

// ElementByID finds the first element carrying the id attribute.
func (d *Document) ElementByID(id string) (surface.Node, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	found := findFirst(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		value, ok := getAttr(n, "id")
		return ok && value == id
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// ElementsByTag lists the elements named tag below root, in document order.
func (d *Document) ElementsByTag(root surface.Node, tag string) []surface.Node {
	tag = strings.ToLower(strings.TrimSpace(tag))
	var out []surface.Node
	walk(d.element(root), func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	})
	return out
}

// Text returns the concatenated text content of node.
func (d *Document) Text(node surface.Node) string {
	var b strings.Builder
	walk(d.element(node), func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}

// Attribute returns the value of an attribute and whether it is present.
func (d *Document) Attribute(node surface.Node, name string) (string, bool) {
	return getAttr(d.element(node), name)
}

// Visible reports whether node and all its ancestors are shown.
func (d *Document) Visible(node surface.Node) bool {
	for n := d.element(node); n != nil; n = n.Parent {
		if _, hidden := getAttr(n, "hidden"); hidden {
			return false
		}
	}
	return true
}

// Children returns the element children of node.
func (d *Document) Children(node surface.Node) []surface.Node {
	var out []surface.Node
	for c := d.element(node).FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("dom: render: %w", err)
	}
	return nil
}

// RenderNode writes node and its subtree as HTML.
func (d *Document) RenderNode(w io.Writer, node surface.Node) error {
	if err := html.Render(w, d.element(node)); err != nil {
		return fmt.Errorf("dom: render node: %w", err)
	}
	return nil
}

// String renders node to a string, swallowing write errors of the buffer.
func (d *Document) String(node surface.Node) string {
	var buf bytes.Buffer
	_ = d.RenderNode(&buf, node)
	return buf.String()
}

func (d *Document) element(node surface.Node) *html.Node {
	n, ok := node.(*html.Node)
	if !ok || n == nil {
		panic(fmt.Sprintf("dom: node %T was not created by this document", node))
	}
	return n
}

func (d *Document) clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		walk(c, func(detached *html.Node) {
			delete(d.handlers, detached)
		})
		c = next
	}
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, value string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	out := n.Attr[:0]
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		out = append(out, attr)
	}
	n.Attr = out
}
