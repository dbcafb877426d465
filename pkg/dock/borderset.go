package dock

// borderOrder fixes iteration and serialization order for the border set.
var borderOrder = []DockLocation{DockTop, DockBottom, DockLeft, DockRight}

// BorderSet holds up to four borders keyed by edge. Borders sit conceptually
// outside the main row tree and are tested as a drop fallback when the main
// tree misses.
type BorderSet struct {
	model   *Model
	borders map[DockLocation]*BorderNode
}

func newBorderSet(model *Model) *BorderSet {
	return &BorderSet{model: model, borders: make(map[DockLocation]*BorderNode)}
}

// Border returns the border at the given edge, nil when absent.
func (bs *BorderSet) Border(location DockLocation) *BorderNode {
	return bs.borders[location]
}

// Borders returns the present borders in fixed top/bottom/left/right order.
func (bs *BorderSet) Borders() []*BorderNode {
	out := make([]*BorderNode, 0, len(bs.borders))
	for _, loc := range borderOrder {
		if b, ok := bs.borders[loc]; ok {
			out = append(out, b)
		}
	}
	return out
}

func (bs *BorderSet) add(b *BorderNode) {
	bs.borders[b.location] = b
}

// LeftRightFirst reports the corner priority: whether left/right borders are
// carved from the frame before top/bottom ones (and so own the corners).
func (bs *BorderSet) LeftRightFirst() bool {
	if bs.model == nil {
		return false
	}
	return attrBoolValue(bs.model.attrs["borderLeftRightFirst"], false)
}

func (bs *BorderSet) canDrop(dragging Node, x, y float64) *DropInfo {
	for _, b := range bs.Borders() {
		if !b.EnableDrop() {
			continue
		}
		if info := b.canDrop(dragging, x, y); info != nil {
			return info
		}
	}
	return nil
}

func (bs *BorderSet) visit(fn func(Node)) {
	for _, b := range bs.Borders() {
		b.visit(fn)
	}
}

func (bs *BorderSet) assignPaths() {
	for _, b := range bs.Borders() {
		b.path = "/b-" + b.location.String()
		for i, child := range b.children {
			child.base().assignPaths(b.path, i)
		}
	}
}

func (bs *BorderSet) toJSON() []any {
	out := make([]any, 0, len(bs.borders))
	for _, b := range bs.Borders() {
		out = append(out, b.toJSON())
	}
	return out
}
