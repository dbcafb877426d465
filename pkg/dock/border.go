package dock

import "fmt"

// BorderNode is a constrained tabset pinned to one frame edge. Selecting one
// of its tabs expands the border; a selected index of -1 collapses it.
type BorderNode struct {
	node

	location DockLocation

	contentRect  Rect
	tabStripRect Rect
}

func newBorderNode(model *Model, location DockLocation) *BorderNode {
	b := &BorderNode{location: location}
	b.init(model, b, KindBorder, borderAttrs)
	return b
}

func newBorderNodeFromJSON(model *Model, location DockLocation, obj map[string]any) *BorderNode {
	b := newBorderNode(model, location)
	borderAttrs.fromJSON(obj, b.attrs)
	if id := attrStringValue(b.attrs["id"], ""); id != "" {
		model.registerID(id, b)
	}
	return b
}

// ID returns the explicit id when one was supplied and a stable
// location-derived id otherwise, so border ids survive round trips without
// being written as overrides.
func (b *BorderNode) ID() string {
	if id := attrStringValue(b.attrs["id"], ""); id != "" {
		return id
	}
	return fmt.Sprintf("border_%s", b.location)
}

func (b *BorderNode) Location() DockLocation { return b.location }

// Orientation of the border bar: vertical for left/right borders.
func (b *BorderNode) Orientation() Orientation {
	if b.location == DockLeft || b.location == DockRight {
		return OrientationVert
	}
	return OrientationHorz
}

// Size is the expanded split size in pixels.
func (b *BorderNode) Size() float64         { return b.attrFloat("size") }
func (b *BorderNode) MinSplitSize() float64 { return b.attrFloat("minSize") }
func (b *BorderNode) MaxSplitSize() float64 { return b.attrFloat("maxSize") }
func (b *BorderNode) BarSize() float64      { return b.attrFloat("barSize") }

func (b *BorderNode) EnableDrop() bool     { return b.attrBool("enableDrop") }
func (b *BorderNode) EnableAutoHide() bool { return b.attrBool("enableAutoHide") }

// AutoHidden reports whether the border bar should disappear entirely.
func (b *BorderNode) AutoHidden() bool {
	return b.EnableAutoHide() && len(b.children) == 0
}

func (b *BorderNode) Selected() int {
	return int(attrFloatValue(b.attr("selected"), -1))
}

func (b *BorderNode) SelectedNode() Node {
	idx := b.Selected()
	if idx < 0 || idx >= len(b.children) {
		return nil
	}
	return b.children[idx]
}

func (b *BorderNode) ContentRect() Rect         { return b.contentRect }
func (b *BorderNode) SetContentRect(rect Rect)  { b.contentRect = rect }
func (b *BorderNode) TabStripRect() Rect        { return b.tabStripRect }
func (b *BorderNode) SetTabStripRect(rect Rect) { b.tabStripRect = rect }

func (b *BorderNode) setSelected(index int) {
	if index < -1 || index >= len(b.children) {
		index = -1
	}
	b.attrs["selected"] = float64(index)
	b.refreshVisibility()
}

func (b *BorderNode) setSize(size float64) {
	size = maxFloat(size, b.MinSplitSize())
	size = minFloat(size, b.MaxSplitSize())
	b.attrs["size"] = size
}

func (b *BorderNode) refreshVisibility() {
	selected := b.Selected()
	for i, child := range b.children {
		if tab, ok := child.(*TabNode); ok {
			tab.setVisible(i == selected)
		}
	}
}

func (b *BorderNode) insertTab(tab *TabNode, index int) int {
	selected := b.SelectedNode()
	at := b.addChild(tab, index)
	if selected != nil {
		b.attrs["selected"] = float64(b.childIndex(selected))
	}
	b.refreshVisibility()
	return at
}

// removeTab detaches the tab. Borders never delete themselves; an empty
// border simply collapses (and auto-hides when enabled).
func (b *BorderNode) removeTab(tab *TabNode) {
	selected := b.SelectedNode()
	idx := b.removeChild(tab)
	if idx < 0 {
		return
	}
	if selected == tab || selected == nil {
		b.setSelected(-1)
		return
	}
	b.attrs["selected"] = float64(b.childIndex(selected))
	b.refreshVisibility()
}

func (b *BorderNode) canDrop(dragging Node, x, y float64) *DropInfo {
	if b.rect.Empty() || !b.rect.Contains(x, y) {
		return nil
	}
	switch dragging.(type) {
	case *TabNode, *TabSetNode:
	default:
		return nil
	}
	outline := b.contentRect
	if outline.Empty() {
		outline = b.rect
	}
	return &DropInfo{
		Node:      b,
		Location:  DockCenter,
		Index:     -1,
		Rect:      outline,
		ClassName: dropClassFor(DockCenter),
	}
}

// drop inserts the dragged tab (or every tab of a dragged tabset) into the
// border. Borders never split.
func (b *BorderNode) drop(dragging Node, location DockLocation, index int, doSelect bool) {
	switch d := dragging.(type) {
	case *TabNode:
		var selected Node
		if d.parent == Node(b) {
			// same index shift and selection bookkeeping as the tabset
			// reorder path
			old := b.childIndex(d)
			if old >= 0 && old < index {
				index--
			}
			selected = b.SelectedNode()
			b.removeChild(d)
			if selected != nil && selected != Node(d) {
				b.attrs["selected"] = float64(b.childIndex(selected))
			}
		} else {
			detachDraggable(d)
		}
		at := b.insertTab(d, index)
		if selected == Node(d) {
			b.setSelected(at)
		}
		if doSelect {
			b.setSelected(at)
		}
	case *TabSetNode:
		tabs := append([]Node(nil), d.children...)
		for _, child := range tabs {
			tab, ok := child.(*TabNode)
			if !ok {
				continue
			}
			d.removeTab(tab)
			index = b.insertTab(tab, index) + 1
		}
		if doSelect && len(b.children) > 0 {
			b.setSelected(len(b.children) - 1)
		}
	}
}

func (b *BorderNode) toJSON() map[string]any {
	obj := map[string]any{
		"type":     string(KindBorder),
		"location": b.location.String(),
	}
	borderAttrs.toJSON(b.attrs, obj)
	children := make([]any, 0, len(b.children))
	for _, child := range b.children {
		if tab, ok := child.(*TabNode); ok {
			children = append(children, tab.toJSON())
		}
	}
	obj["children"] = children
	return obj
}
