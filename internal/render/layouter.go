// Package render computes pixel rectangles for a dock model: the model owns
// structure and weights, this package owns geometry. It writes rects back
// through the node seam (SetRect/SetContentRect/SetTabStripRect) so drop
// resolution and the TUI read consistent positions.
package render

import (
	"github.com/regenrek/docktree/pkg/dock"
)

// Apply lays out the whole model inside outer: borders are carved from the
// frame first, then the main tree splits the remaining space by weight.
// While a tabset is maximized it takes the entire inner area.
func Apply(m *dock.Model, outer dock.Rect) {
	m.AggregateMinMax()
	inner := placeBorders(m, outer)
	if m.Root() == nil {
		return
	}
	m.Root().SetRect(inner)
	if max := m.MaximizedTabSet(); max != nil {
		placeTabSet(max, inner)
		return
	}
	placeRowChildren(m.Root(), inner, m.SplitterSize())
}

// placeBorders carves the border bars (and the content band of any expanded
// border) from the frame and returns what is left for the main tree. The
// carve order decides who owns the corners: top/bottom first by default,
// left/right first when the model says so.
func placeBorders(m *dock.Model, outer dock.Rect) dock.Rect {
	order := []dock.DockLocation{dock.DockTop, dock.DockBottom, dock.DockLeft, dock.DockRight}
	if m.Borders().LeftRightFirst() {
		order = []dock.DockLocation{dock.DockLeft, dock.DockRight, dock.DockTop, dock.DockBottom}
	}
	rect := outer
	for _, loc := range order {
		b := m.Borders().Border(loc)
		if b == nil || b.AutoHidden() {
			continue
		}
		bar, rest := carve(rect, loc, b.BarSize())
		b.SetRect(bar)
		b.SetTabStripRect(bar)
		if b.Selected() >= 0 {
			content, remaining := carve(rest, loc, b.Size())
			b.SetContentRect(content)
			if tab, ok := b.SelectedNode().(*dock.TabNode); ok {
				tab.SetRect(content)
			}
			rest = remaining
		} else {
			b.SetContentRect(dock.Rect{})
		}
		rect = rest
	}
	return rect
}

// carve cuts a band of the given thickness off the rect's edge at loc and
// returns the band and the remainder. The band never exceeds the rect.
func carve(rect dock.Rect, loc dock.DockLocation, size float64) (band, rest dock.Rect) {
	extent := rect.Height
	if loc == dock.DockLeft || loc == dock.DockRight {
		extent = rect.Width
	}
	if size > extent {
		size = extent
	}
	if size <= 0 {
		return dock.Rect{}, rect
	}
	return splitAbsolute(rect, loc, size)
}

func splitAbsolute(rect dock.Rect, loc dock.DockLocation, size float64) (band, rest dock.Rect) {
	switch loc {
	case dock.DockTop:
		band = dock.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: size}
		rest = dock.Rect{X: rect.X, Y: rect.Y + size, Width: rect.Width, Height: rect.Height - size}
	case dock.DockBottom:
		band = dock.Rect{X: rect.X, Y: rect.Bottom() - size, Width: rect.Width, Height: size}
		rest = dock.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height - size}
	case dock.DockLeft:
		band = dock.Rect{X: rect.X, Y: rect.Y, Width: size, Height: rect.Height}
		rest = dock.Rect{X: rect.X + size, Y: rect.Y, Width: rect.Width - size, Height: rect.Height}
	case dock.DockRight:
		band = dock.Rect{X: rect.Right() - size, Y: rect.Y, Width: size, Height: rect.Height}
		rest = dock.Rect{X: rect.X, Y: rect.Y, Width: rect.Width - size, Height: rect.Height}
	default:
		band = rect
		rest = rect
	}
	return band, rest
}

// placeRowChildren distributes the row's space across its children in
// proportion to their weights, leaving a splitter gap between neighbours.
func placeRowChildren(row *dock.RowNode, rect dock.Rect, splitter float64) {
	children := row.Children()
	count := len(children)
	if count == 0 {
		return
	}
	horizontal := row.Orientation() == dock.OrientationHorz

	avail := rect.Height
	if horizontal {
		avail = rect.Width
	}
	avail -= splitter * float64(count-1)
	if avail < 0 {
		avail = 0
	}
	sizes := sizesByWeight(children, avail)

	pos := rect.Y
	if horizontal {
		pos = rect.X
	}
	for i, child := range children {
		var childRect dock.Rect
		if horizontal {
			childRect = dock.Rect{X: pos, Y: rect.Y, Width: sizes[i], Height: rect.Height}
		} else {
			childRect = dock.Rect{X: rect.X, Y: pos, Width: rect.Width, Height: sizes[i]}
		}
		child.SetRect(childRect)
		switch c := child.(type) {
		case *dock.RowNode:
			placeRowChildren(c, childRect, splitter)
		case *dock.TabSetNode:
			placeTabSet(c, childRect)
		}
		pos += sizes[i] + splitter
	}
}

// sizesByWeight converts sibling weights into absolute sizes summing to
// total. Zero total weight falls back to equal shares; the last child
// absorbs the rounding remainder so the sizes always tile exactly.
func sizesByWeight(children []dock.Node, total float64) []float64 {
	count := len(children)
	sizes := make([]float64, count)
	if count == 0 || total <= 0 {
		return sizes
	}
	sum := 0.0
	weights := make([]float64, count)
	for i, child := range children {
		w := nodeWeight(child)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		sum += w
	}
	if sum <= 0 {
		share := total / float64(count)
		for i := range sizes {
			sizes[i] = share
		}
		return sizes
	}
	acc := 0.0
	for i := range sizes {
		sizes[i] = total * weights[i] / sum
		acc += sizes[i]
	}
	sizes[count-1] += total - acc
	return sizes
}

func nodeWeight(n dock.Node) float64 {
	switch c := n.(type) {
	case *dock.RowNode:
		return c.Weight()
	case *dock.TabSetNode:
		return c.Weight()
	default:
		return 0
	}
}

// placeTabSet splits the tabset rect into the tab strip band on top and the
// content area below, and positions the selected tab over the content.
func placeTabSet(ts *dock.TabSetNode, rect dock.Rect) {
	ts.SetRect(rect)
	strip, content := splitAbsolute(rect, dock.DockTop, minF(ts.TabStripHeight(), rect.Height))
	ts.SetTabStripRect(strip)
	ts.SetContentRect(content)
	if tab, ok := ts.SelectedNode().(*dock.TabNode); ok {
		tab.SetRect(content)
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
