// Package surface defines the retained-mode UI capability that form widgets
// render into. Widgets never talk to a concrete toolkit; they create elements,
// set text and attributes, nest children, toggle visibility, read and write
// input values, and bind activation handlers through a Surface.
//
// Implementations are expected to run on a single UI thread. None of the
// operations block and handlers run synchronously when the host activates a
// node.
package surface

// Node is an opaque handle to an element created by a Surface. Handles are
// only meaningful to the Surface that created them.
type Node any

// Element kinds used by the widgets. Surfaces may support more.
const (
	KindTable  = "table"
	KindRow    = "tr"
	KindCell   = "td"
	KindSpan   = "span"
	KindDiv    = "div"
	KindInput  = "input"
	KindButton = "button"
)

// Surface is the minimal tree builder consumed by pkg/widget.
type Surface interface {
	// CreateElement returns a detached element of the given kind.
	CreateElement(kind string) Node
	// SetText replaces the children of node with a single text node.
	SetText(node Node, text string)
	// SetAttribute sets (or replaces) an attribute on node.
	SetAttribute(node Node, name, value string)
	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node)
	// ClearChildren removes every child of node.
	ClearChildren(node Node)
	// SetVisible shows or hides node.
	SetVisible(node Node, visible bool)
	// Value returns the current content of an input node.
	Value(node Node) string
	// SetValue replaces the content of an input node.
	SetValue(node Node, value string)
	// OnActivate binds handler to the activation (click) of node.
	OnActivate(node Node, handler func())
}
