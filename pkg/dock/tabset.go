package dock

// TabSetNode holds an ordered set of tabs with one selected at a time. It is
// the primary drop target kind.
type TabSetNode struct {
	node

	// inner area excluding the tab strip; written by the rendering layer
	contentRect Rect
	// tracked separately from contentRect because border strips may be
	// vertical while tabset strips are horizontal
	tabStripRect Rect
}

func newTabSetNode(model *Model) *TabSetNode {
	ts := &TabSetNode{}
	ts.init(model, ts, KindTabSet, tabSetAttrs)
	return ts
}

func newTabSetNodeFromJSON(model *Model, obj map[string]any) *TabSetNode {
	ts := newTabSetNode(model)
	tabSetAttrs.fromJSON(obj, ts.attrs)
	if id := attrStringValue(ts.attrs["id"], ""); id != "" {
		model.registerID(id, ts)
	}
	return ts
}

func (ts *TabSetNode) Name() string    { return ts.attrString("name") }
func (ts *TabSetNode) Weight() float64 { return ts.weight() }

func (ts *TabSetNode) EnableDrop() bool            { return ts.attrBool("enableDrop") }
func (ts *TabSetNode) EnableDrag() bool            { return ts.attrBool("enableDrag") }
func (ts *TabSetNode) EnableDivide() bool          { return ts.attrBool("enableDivide") }
func (ts *TabSetNode) EnableMaximize() bool        { return ts.attrBool("enableMaximize") }
func (ts *TabSetNode) EnableDeleteWhenEmpty() bool { return ts.attrBool("enableDeleteWhenEmpty") }
func (ts *TabSetNode) AutoSelectTab() bool         { return ts.attrBool("autoSelectTab") }
func (ts *TabSetNode) TabStripHeight() float64     { return ts.attrFloat("tabStripHeight") }

// Selected is the index of the selected tab, -1 when none.
func (ts *TabSetNode) Selected() int {
	return int(attrFloatValue(ts.attr("selected"), 0))
}

// SelectedNode returns the selected tab, nil when none.
func (ts *TabSetNode) SelectedNode() Node {
	idx := ts.Selected()
	if idx < 0 || idx >= len(ts.children) {
		return nil
	}
	return ts.children[idx]
}

// IsActive reports whether this is the tabset that last received focus.
func (ts *TabSetNode) IsActive() bool {
	return ts.model != nil && ts.model.activeTabSet == ts
}

// IsMaximized reports whether this tabset is the globally maximized one.
// Exclusivity is enforced by the model, not the node.
func (ts *TabSetNode) IsMaximized() bool {
	return ts.model != nil && ts.model.maximizedTabSet == ts
}

func (ts *TabSetNode) ContentRect() Rect         { return ts.contentRect }
func (ts *TabSetNode) SetContentRect(rect Rect)  { ts.contentRect = rect }
func (ts *TabSetNode) TabStripRect() Rect        { return ts.tabStripRect }
func (ts *TabSetNode) SetTabStripRect(rect Rect) { ts.tabStripRect = rect }

func (ts *TabSetNode) setSelected(index int) {
	if index < -1 || index >= len(ts.children) {
		index = -1
	}
	ts.attrs["selected"] = float64(index)
	ts.refreshVisibility()
}

func (ts *TabSetNode) refreshVisibility() {
	selected := ts.Selected()
	for i, child := range ts.children {
		if tab, ok := child.(*TabNode); ok {
			tab.setVisible(i == selected)
		}
	}
}

// insertTab adds the tab at index (-1 appends) and keeps the selected index
// pointing at the same tab it pointed at before.
func (ts *TabSetNode) insertTab(tab *TabNode, index int) int {
	selected := ts.SelectedNode()
	at := ts.addChild(tab, index)
	if selected != nil {
		ts.attrs["selected"] = float64(ts.childIndex(selected))
	}
	ts.refreshVisibility()
	return at
}

// removeTab detaches the tab, re-selects a neighbour when the selected tab
// went away, and deletes the tabset itself once empty unless that is
// disabled by attribute.
func (ts *TabSetNode) removeTab(tab *TabNode) {
	selected := ts.SelectedNode()
	idx := ts.removeChild(tab)
	if idx < 0 {
		return
	}
	if len(ts.children) == 0 {
		ts.setSelected(-1)
		if ts.EnableDeleteWhenEmpty() {
			ts.deleteSelf()
		}
		return
	}
	if selected == tab || selected == nil {
		next := idx
		if next >= len(ts.children) {
			next = len(ts.children) - 1
		}
		if !ts.AutoSelectTab() {
			next = -1
		}
		ts.setSelected(next)
		return
	}
	ts.attrs["selected"] = float64(ts.childIndex(selected))
	ts.refreshVisibility()
}

func (ts *TabSetNode) deleteSelf() {
	if ts.model != nil {
		ts.model.forgetTabSet(ts)
	}
	ts.detach()
}

func (ts *TabSetNode) minSize() (w, h float64) {
	w = ts.attrFloat("minWidth")
	h = ts.attrFloat("minHeight")
	for _, child := range ts.children {
		if tab, ok := child.(*TabNode); ok {
			tw, th := tab.minSize()
			w = maxFloat(w, tw)
			h = maxFloat(h, th)
		}
	}
	return w, h + ts.TabStripHeight()
}

func (ts *TabSetNode) maxSize() (w, h float64) {
	return ts.attrFloat("maxWidth"), ts.attrFloat("maxHeight")
}

// edgeFraction is the share of each side of a drop target's rectangle that
// maps to an edge split rather than a center merge.
const edgeFraction = 0.2

// canDrop resolves the pointer into one of the five drop regions. The
// legality gate runs one layer up, in Model.FindDropTarget.
func (ts *TabSetNode) canDrop(dragging Node, x, y float64) *DropInfo {
	if !ts.rect.Contains(x, y) {
		return nil
	}
	// the edge bands divide the content rectangle; a pointer over the tab
	// strip is always a center merge
	inner := ts.contentRect
	if inner.Empty() {
		inner = ts.rect
	}
	location := DockCenter
	if inner.Contains(x, y) {
		location = dropRegion(inner, x, y)
	}
	if location != DockCenter && ts.centerOnly() {
		location = DockCenter
	}
	outline := ts.outlineRect(location)
	return &DropInfo{
		Node:      ts,
		Location:  location,
		Index:     -1,
		Rect:      outline,
		ClassName: dropClassFor(location),
	}
}

// centerOnly holds when the tabset has exactly one tab and dividing is
// disabled, so a merge is the only legal landing.
func (ts *TabSetNode) centerOnly() bool {
	return len(ts.children) == 1 && !ts.EnableDivide()
}

func (ts *TabSetNode) outlineRect(location DockLocation) Rect {
	inner := ts.contentRect
	if inner.Empty() {
		inner = ts.rect
	}
	if location == DockCenter {
		return inner
	}
	return location.DockRect(ts.rect, 0.5)
}

// dropRegion maps a pointer inside rect to one of the five dock regions
// using a fixed fractional edge band on each side.
func dropRegion(rect Rect, x, y float64) DockLocation {
	fx := (x - rect.X) / rect.Width
	fy := (y - rect.Y) / rect.Height
	switch {
	case fx < edgeFraction:
		return DockLeft
	case fx > 1-edgeFraction:
		return DockRight
	case fy < edgeFraction:
		return DockTop
	case fy > 1-edgeFraction:
		return DockBottom
	default:
		return DockCenter
	}
}

func dropClassFor(location DockLocation) string {
	if location == DockCenter {
		return "drop-outline"
	}
	return "drop-outline-edge"
}

// drop is the single mutation primitive AddNode and MoveNode funnel through
// for tabset targets.
func (ts *TabSetNode) drop(dragging Node, location DockLocation, index int, doSelect bool) {
	if location == DockCenter {
		ts.dropCenter(dragging, index, doSelect)
		return
	}
	ts.dropSplit(dragging, location, doSelect)
}

func (ts *TabSetNode) dropCenter(dragging Node, index int, doSelect bool) {
	switch d := dragging.(type) {
	case *TabNode:
		var selected Node
		if d.parent == ts {
			// reorder within the same tabset: removal shifts later indices
			// left, the usual empty-tabset cleanup must not run, and the
			// selected tab has to survive the shuffle
			old := ts.childIndex(d)
			if old >= 0 && old < index {
				index--
			}
			selected = ts.SelectedNode()
			ts.removeChild(d)
			if selected != nil && selected != Node(d) {
				ts.attrs["selected"] = float64(ts.childIndex(selected))
			}
		} else {
			detachDraggable(d)
		}
		at := ts.insertTab(d, index)
		if selected == Node(d) {
			ts.setSelected(at)
		}
		if doSelect {
			ts.setSelected(at)
			ts.model.setActiveTabSet(ts)
		}
	case *TabSetNode:
		if d == ts {
			return
		}
		tabs := append([]Node(nil), d.children...)
		for _, child := range tabs {
			tab, ok := child.(*TabNode)
			if !ok {
				continue
			}
			d.removeTab(tab)
			index = ts.insertTab(tab, index) + 1
		}
		if doSelect && len(ts.children) > 0 {
			ts.setSelected(len(ts.children) - 1)
			ts.model.setActiveTabSet(ts)
		}
	}
}

// dropSplit inserts the dragged node beside this tabset, reusing the parent
// row when its orientation already matches and wrapping this tabset in a new
// row otherwise. The target's prior weight share is preserved.
func (ts *TabSetNode) dropSplit(dragging Node, location DockLocation, doSelect bool) {
	if dragging == Node(ts) {
		return
	}
	// splitting a tabset against its own only tab would just empty and
	// delete the target
	if tab, ok := dragging.(*TabNode); ok && tab.parent == Node(ts) && len(ts.children) == 1 {
		return
	}
	dropee := ts.model.wrapIntoTabSet(dragging)
	if dropee == nil || dropee == Node(ts) {
		return
	}
	parent, ok := ts.parent.(*RowNode)
	if !ok {
		return
	}
	before := location == DockTop || location == DockLeft

	if parent.Orientation() == location.Orientation() {
		half := ts.weight() / 2
		ts.setWeight(half)
		dropee.base().setWeight(half)
		at := parent.childIndex(ts)
		if !before {
			at++
		}
		parent.addChild(dropee, at)
	} else {
		at := parent.childIndex(ts)
		parent.removeChild(ts)
		wrapper := newRowNode(ts.model)
		wrapper.setWeight(ts.weight())
		ts.setWeight(defaultWeight)
		dropee.base().setWeight(defaultWeight)
		if before {
			wrapper.addChild(dropee, -1)
			wrapper.addChild(ts, -1)
		} else {
			wrapper.addChild(ts, -1)
			wrapper.addChild(dropee, -1)
		}
		parent.addChild(wrapper, at)
	}

	if doSelect {
		if newSet, ok := dropee.(*TabSetNode); ok {
			if len(newSet.children) > 0 {
				newSet.setSelected(len(newSet.children) - 1)
			}
			ts.model.setActiveTabSet(newSet)
		}
	}
}

func (ts *TabSetNode) toJSON() map[string]any {
	obj := map[string]any{"type": string(KindTabSet)}
	tabSetAttrs.toJSON(ts.attrs, obj)
	children := make([]any, 0, len(ts.children))
	for _, child := range ts.children {
		if tab, ok := child.(*TabNode); ok {
			children = append(children, tab.toJSON())
		}
	}
	obj["children"] = children
	return obj
}
