package tui

import (
	"strings"

	"github.com/regenrek/docktree/pkg/dock"
)

// paint renders the laid-out tree onto a rune canvas. Geometry comes
// straight from the node rects, so what is drawn is exactly what the
// layouter computed.
func paint(m *dock.Model, width, height int) string {
	c := newCanvas(width, height)
	for _, b := range m.Borders().Borders() {
		paintBorder(c, b)
	}
	if max := m.MaximizedTabSet(); max != nil {
		paintTabSet(c, max)
		return c.String()
	}
	m.VisitNodes(func(n dock.Node) {
		if ts, ok := n.(*dock.TabSetNode); ok {
			paintTabSet(c, ts)
		}
	})
	return c.String()
}

func paintTabSet(c *canvas, ts *dock.TabSetNode) {
	strip := ts.TabStripRect()
	if !strip.Empty() {
		c.text(int(strip.X), int(strip.Y), tabStripLabel(ts), int(strip.Width))
	}
	content := ts.ContentRect()
	if content.Empty() {
		return
	}
	c.box(content)
	label := ""
	if tab, ok := ts.SelectedNode().(*dock.TabNode); ok {
		label = tab.Component()
		if label == "" {
			label = tab.Name()
		}
	}
	c.center(content, label)
}

func paintBorder(c *canvas, b *dock.BorderNode) {
	strip := b.TabStripRect()
	if !strip.Empty() {
		c.text(int(strip.X), int(strip.Y), borderLabel(b), int(strip.Width))
	}
	content := b.ContentRect()
	if content.Empty() {
		return
	}
	c.box(content)
	if tab, ok := b.SelectedNode().(*dock.TabNode); ok {
		c.center(content, tab.Name())
	}
}

func tabStripLabel(ts *dock.TabSetNode) string {
	var b strings.Builder
	if ts.IsActive() {
		b.WriteString("*")
	} else {
		b.WriteString(" ")
	}
	for i, child := range ts.Children() {
		tab, ok := child.(*dock.TabNode)
		if !ok {
			continue
		}
		if i == ts.Selected() {
			b.WriteString("[" + tab.Name() + "]")
		} else {
			b.WriteString(" " + tab.Name() + " ")
		}
	}
	return b.String()
}

func borderLabel(b *dock.BorderNode) string {
	var sb strings.Builder
	sb.WriteString("(" + b.Location().String() + ")")
	for i, child := range b.Children() {
		tab, ok := child.(*dock.TabNode)
		if !ok {
			continue
		}
		if i == b.Selected() {
			sb.WriteString("[" + tab.Name() + "]")
		} else {
			sb.WriteString(" " + tab.Name() + " ")
		}
	}
	return sb.String()
}

type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) text(x, y int, s string, maxW int) {
	for i, r := range []rune(s) {
		if i >= maxW {
			return
		}
		c.set(x+i, y, r)
	}
}

// box draws a single-line frame on the rect's perimeter.
func (c *canvas) box(r dock.Rect) {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.X+r.Width)-1, int(r.Y+r.Height)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')
}

func (c *canvas) center(r dock.Rect, s string) {
	if s == "" {
		return
	}
	runes := []rune(s)
	maxW := int(r.Width) - 2
	if maxW < 1 {
		return
	}
	if len(runes) > maxW {
		runes = runes[:maxW]
	}
	x := int(r.X) + (int(r.Width)-len(runes))/2
	y := int(r.Y) + int(r.Height)/2
	c.text(x, y, string(runes), len(runes))
}

func (c *canvas) String() string {
	rows := make([]string, c.h)
	for y, row := range c.cells {
		rows[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}

