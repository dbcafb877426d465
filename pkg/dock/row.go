package dock

// RowNode lays out rows and tabsets along one axis. Orientation is derived
// from depth (checkerboard nesting), never stored.
type RowNode struct {
	node
}

func newRowNode(model *Model) *RowNode {
	r := &RowNode{}
	r.init(model, r, KindRow, rowAttrs)
	return r
}

func newRowNodeFromJSON(model *Model, obj map[string]any) *RowNode {
	r := newRowNode(model)
	rowAttrs.fromJSON(obj, r.attrs)
	if id := attrStringValue(r.attrs["id"], ""); id != "" {
		model.registerID(id, r)
	}
	return r
}

func (r *RowNode) Weight() float64 { return r.weight() }

// Orientation alternates with depth; the root row follows the model's root
// orientation flag.
func (r *RowNode) Orientation() Orientation {
	parent, ok := r.parent.(*RowNode)
	if !ok {
		if r.model != nil {
			return r.model.rootOrientation()
		}
		return OrientationHorz
	}
	return parent.Orientation().Flip()
}

// setWeights applies a parallel array of weights to the children in order.
// Extra weights are ignored; missing ones leave the child untouched.
func (r *RowNode) setWeights(weights []float64) {
	for i, child := range r.children {
		if i >= len(weights) {
			return
		}
		child.base().setWeight(weights[i])
	}
}

func (r *RowNode) totalWeight() float64 {
	total := 0.0
	for _, child := range r.children {
		total += child.base().weight()
	}
	return total
}

// Width of the pointer bands along the frame edges that trigger edge
// docking, and the length of the sensitive span centered on each edge.
const (
	edgeDockThickness = 10.0
	edgeDockSpan      = 100.0
)

// canDrop tests the frame-edge bands. A row is never itself an interior
// drop target; resolution recurses into its children instead.
func (r *RowNode) canDrop(dragging Node, x, y float64) *DropInfo {
	if r.model == nil || r.model.root != r || !r.model.EnableEdgeDock() {
		return nil
	}
	rect := r.rect
	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2
	half := edgeDockSpan / 2

	var location DockLocation
	switch {
	case x >= rect.X && x < rect.X+edgeDockThickness && y >= cy-half && y < cy+half:
		location = DockLeft
	case x >= rect.Right()-edgeDockThickness && x < rect.Right() && y >= cy-half && y < cy+half:
		location = DockRight
	case y >= rect.Y && y < rect.Y+edgeDockThickness && x >= cx-half && x < cx+half:
		location = DockTop
	case y >= rect.Bottom()-edgeDockThickness && y < rect.Bottom() && x >= cx-half && x < cx+half:
		location = DockBottom
	default:
		return nil
	}
	return &DropInfo{
		Node:      r,
		Location:  location,
		Index:     -1,
		Rect:      location.DockRect(rect, 0.5),
		ClassName: dropClassFor(location),
	}
}

// drop inserts the dragged node into this row. CENTER wraps the node in a
// fresh tabset at the given index; an edge location docks it against the
// frame edge, nesting a wrapper row when the orientation does not match.
func (r *RowNode) drop(dragging Node, location DockLocation, index int, doSelect bool) {
	dropee := r.model.wrapIntoTabSet(dragging)
	if dropee == nil {
		return
	}

	if location == DockCenter {
		mean := defaultWeight * 1.0
		if len(r.children) > 0 {
			mean = r.totalWeight() / float64(len(r.children))
		}
		dropee.base().setWeight(mean)
		r.addChild(dropee, index)
	} else if r.Orientation() == location.Orientation() {
		total := r.totalWeight()
		if total <= 0 {
			total = defaultWeight
		}
		dropee.base().setWeight(total / 3)
		at := 0
		if location == DockBottom || location == DockRight {
			at = len(r.children)
		}
		r.addChild(dropee, at)
	} else {
		// Cross-orientation edge dock: the existing content keeps its own
		// row one level deeper so its layout direction is unchanged, and a
		// wrapper row at this depth stacks the dropee against it.
		inner := newRowNode(r.model)
		existing := append([]Node(nil), r.children...)
		for _, child := range existing {
			r.removeChild(child)
			inner.addChild(child, -1)
		}
		wrapper := newRowNode(r.model)
		dropee.base().setWeight(25)
		inner.setWeight(75)
		if location == DockTop || location == DockLeft {
			wrapper.addChild(dropee, -1)
			wrapper.addChild(inner, -1)
		} else {
			wrapper.addChild(inner, -1)
			wrapper.addChild(dropee, -1)
		}
		r.addChild(wrapper, -1)
	}

	if doSelect {
		if newSet, ok := dropee.(*TabSetNode); ok {
			if len(newSet.children) > 0 {
				newSet.setSelected(len(newSet.children) - 1)
			}
			r.model.setActiveTabSet(newSet)
		}
	}
}

// tidy collapses degenerate structure after deletions: empty rows are
// removed, a row left with a single child is replaced by it (splicing a
// child row's children up two levels so orientation parity is kept), and
// empty auto-deleting tabsets are removed.
func (r *RowNode) tidy() {
	i := 0
	for i < len(r.children) {
		switch child := r.children[i].(type) {
		case *RowNode:
			child.tidy()
			if len(child.children) == 0 {
				r.removeChild(child)
				continue
			}
			if len(child.children) == 1 {
				r.hoistOnlyChild(child, i)
				continue
			}
		case *TabSetNode:
			if len(child.children) == 0 && child.EnableDeleteWhenEmpty() {
				child.deleteSelf()
				continue
			}
		}
		i++
	}
}

func (r *RowNode) hoistOnlyChild(child *RowNode, at int) {
	sub := child.children[0]
	r.removeChild(child)
	if subRow, ok := sub.(*RowNode); ok {
		total := subRow.totalWeight()
		if total <= 0 {
			total = 1
		}
		grandChildren := append([]Node(nil), subRow.children...)
		for _, gc := range grandChildren {
			subRow.removeChild(gc)
			gc.base().setWeight(child.weight() * gc.base().weight() / total)
			r.addChild(gc, at)
			at++
		}
		return
	}
	sub.base().detach()
	sub.base().setWeight(child.weight())
	r.addChild(sub, at)
}

func (r *RowNode) toJSON() map[string]any {
	obj := map[string]any{"type": string(KindRow)}
	rowAttrs.toJSON(r.attrs, obj)
	children := make([]any, 0, len(r.children))
	for _, child := range r.children {
		switch c := child.(type) {
		case *RowNode:
			children = append(children, c.toJSON())
		case *TabSetNode:
			children = append(children, c.toJSON())
		}
	}
	obj["children"] = children
	return obj
}
