package dock

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind discriminates the four node kinds in the layout tree.
type Kind string

const (
	KindRow    Kind = "row"
	KindTabSet Kind = "tabset"
	KindTab    Kind = "tab"
	KindBorder Kind = "border"
)

// Event names a node listener can subscribe to. At most one listener per
// event name is held; the last registration wins.
const (
	EventResize     = "resize"
	EventVisibility = "visibility"
	EventMaximize   = "maximize"
	EventClose      = "close"
	EventSave       = "save"
)

// EventFunc receives the parameters of a fired node event.
type EventFunc func(params map[string]any)

// Node is the read surface shared by rows, tab sets, tabs and borders.
// External code never mutates nodes directly; all mutation goes through
// Model.DoAction.
type Node interface {
	Kind() Kind
	// ID returns the node id, assigning a generated one on first access.
	// Generated ids carry a literal "#" prefix to distinguish them from
	// user-supplied ids.
	ID() string
	Model() *Model
	Parent() Node
	Children() []Node
	// Rect is the current layout rectangle, written back by the rendering
	// layer each layout pass. It is transient and never serialized.
	Rect() Rect
	SetRect(Rect)
	// Path is a breadcrumb like /r0/ts1/t2, regenerated after every
	// structural change. It is for external addressing and debugging only.
	Path() string
	SetEventListener(name string, fn EventFunc)
	RemoveEventListener(name string)
	// MinSize and MaxSize report the aggregated size constraints computed
	// by the last Model.AggregateMinMax pass.
	MinSize() (width, height float64)
	MaxSize() (width, height float64)

	base() *node
}

// dropTarget is implemented by the kinds a drag can land on.
type dropTarget interface {
	Node
	canDrop(dragging Node, x, y float64) *DropInfo
	drop(dragging Node, location DockLocation, index int, doSelect bool)
}

// node carries the state common to every kind. Concrete kinds embed it and
// keep a self pointer so shared traversal code hands back the wrapper.
type node struct {
	model     *Model
	self      Node
	kind      Kind
	parent    Node
	children  []Node
	attrs     map[string]any
	set       *attrSet
	rect      Rect
	path      string
	listeners map[string]EventFunc

	// aggregated by the bottom-up size pass
	minWidth, minHeight float64
	maxWidth, maxHeight float64
}

func (n *node) init(model *Model, self Node, kind Kind, set *attrSet) {
	n.model = model
	n.self = self
	n.kind = kind
	n.set = set
	n.attrs = make(map[string]any)
}

func (n *node) base() *node      { return n }
func (n *node) Kind() Kind       { return n.kind }
func (n *node) Model() *Model    { return n.model }
func (n *node) Parent() Node     { return n.parent }
func (n *node) Children() []Node { return n.children }
func (n *node) Rect() Rect       { return n.rect }
func (n *node) Path() string     { return n.path }

func (n *node) MinSize() (width, height float64) { return n.minWidth, n.minHeight }
func (n *node) MaxSize() (width, height float64) { return n.maxWidth, n.maxHeight }

func (n *node) SetRect(rect Rect) {
	if n.rect.Equals(rect) {
		return
	}
	n.rect = rect
	n.fireEvent(EventResize, map[string]any{"rect": rect})
}

func (n *node) ID() string {
	if id := attrStringValue(n.attrs["id"], ""); id != "" {
		return id
	}
	id := "#" + uuid.NewString()
	n.attrs["id"] = id
	if n.model != nil {
		n.model.registerID(id, n.self)
	}
	return id
}

func (n *node) SetEventListener(name string, fn EventFunc) {
	if fn == nil {
		n.RemoveEventListener(name)
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string]EventFunc)
	}
	n.listeners[name] = fn
}

func (n *node) RemoveEventListener(name string) {
	delete(n.listeners, name)
}

func (n *node) fireEvent(name string, params map[string]any) {
	if fn, ok := n.listeners[name]; ok {
		fn(params)
	}
}

// attr resolves through the fallback chain: explicit value, model-level
// attribute, declared default.
func (n *node) attr(name string) any {
	return n.set.resolve(name, n.attrs, n.model)
}

func (n *node) attrBool(name string) bool {
	return attrBoolValue(n.attr(name), false)
}

func (n *node) attrFloat(name string) float64 {
	return attrFloatValue(n.attr(name), 0)
}

func (n *node) attrString(name string) string {
	return attrStringValue(n.attr(name), "")
}

// addChild inserts child at index; index -1 or past the end appends.
// The child's previous parent link is not touched here: detach first.
func (n *node) addChild(child Node, index int) int {
	cb := child.base()
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	cb.parent = n.self
	return index
}

func (n *node) removeChild(child Node) int {
	idx := n.childIndex(child)
	if idx < 0 {
		return -1
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.base().parent = nil
	return idx
}

func (n *node) childIndex(child Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *node) weight() float64 {
	return attrFloatValue(n.attr("weight"), defaultWeight)
}

func (n *node) setWeight(weight float64) {
	if weight < 0 {
		weight = 0
	}
	n.attrs["weight"] = weight
}

// assignPaths regenerates breadcrumb paths for the subtree rooted here.
func (n *node) assignPaths(prefix string, index int) {
	n.path = fmt.Sprintf("%s/%s%d", prefix, pathAbbrev(n.kind), index)
	for i, child := range n.children {
		child.base().assignPaths(n.path, i)
	}
}

func pathAbbrev(kind Kind) string {
	switch kind {
	case KindRow:
		return "r"
	case KindTabSet:
		return "ts"
	case KindTab:
		return "t"
	case KindBorder:
		return "b"
	default:
		return "n"
	}
}

// visit walks the subtree pre-order.
func (n *node) visit(fn func(Node)) {
	fn(n.self)
	for _, child := range n.children {
		child.base().visit(fn)
	}
}

// detach removes the node from its current parent, if any, and returns the
// index it previously occupied in the old parent (-1 when unparented).
func (n *node) detach() int {
	if n.parent == nil {
		return -1
	}
	return n.parent.base().removeChild(n.self)
}
