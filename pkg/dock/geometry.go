package dock

import "fmt"

// Orientation is the layout direction of a row's children.
type Orientation int

const (
	OrientationHorz Orientation = iota
	OrientationVert
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == OrientationHorz {
		return OrientationVert
	}
	return OrientationHorz
}

func (o Orientation) String() string {
	switch o {
	case OrientationHorz:
		return "horz"
	case OrientationVert:
		return "vert"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in layout coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Equals(other Rect) bool {
	return r.X == other.X && r.Y == other.Y && r.Width == other.Width && r.Height == other.Height
}

// RelativeTo translates the rectangle into the coordinate space of outer,
// subtracting outer's origin. Used to convert viewport coordinates into
// layout-local coordinates.
func (r Rect) RelativeTo(outer Rect) Rect {
	return Rect{X: r.X - outer.X, Y: r.Y - outer.Y, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	x := minFloat(r.X, other.X)
	y := minFloat(r.Y, other.Y)
	right := maxFloat(r.Right(), other.Right())
	bottom := maxFloat(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// CenterInRect keeps the rectangle's size and recenters it within outer.
// Drag-ghost rendering uses this to place a fixed-size indicator over a
// drop region.
func (r Rect) CenterInRect(outer Rect) Rect {
	return Rect{
		X:      outer.X + (outer.Width-r.Width)/2,
		Y:      outer.Y + (outer.Height-r.Height)/2,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Size returns the extent of the rectangle along the given orientation.
func (r Rect) Size(o Orientation) float64 {
	if o == OrientationHorz {
		return r.Width
	}
	return r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// DockLocation identifies where a dragged node lands relative to a target:
// one of the four edges (a split) or the center (a merge).
type DockLocation int

const (
	DockTop DockLocation = iota
	DockBottom
	DockLeft
	DockRight
	DockCenter
)

var dockLocationNames = map[DockLocation]string{
	DockTop:    "top",
	DockBottom: "bottom",
	DockLeft:   "left",
	DockRight:  "right",
	DockCenter: "center",
}

func (l DockLocation) String() string {
	if name, ok := dockLocationNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseDockLocation converts the serialized name back into a DockLocation.
func ParseDockLocation(name string) (DockLocation, error) {
	for loc, n := range dockLocationNames {
		if n == name {
			return loc, nil
		}
	}
	return DockCenter, fmt.Errorf("dock: unknown dock location %q", name)
}

// Orientation returns the axis a split at this location divides along.
// CENTER reports HORZ; it never splits.
func (l DockLocation) Orientation() Orientation {
	switch l {
	case DockTop, DockBottom:
		return OrientationVert
	default:
		return OrientationHorz
	}
}

// Reflect returns the opposite edge. CENTER reflects to itself.
func (l DockLocation) Reflect() DockLocation {
	switch l {
	case DockTop:
		return DockBottom
	case DockBottom:
		return DockTop
	case DockLeft:
		return DockRight
	case DockRight:
		return DockLeft
	default:
		return DockCenter
	}
}

// DockRect computes the sub-rectangle a dock indicator/outline occupies at
// this location, taking the given fraction of outer's size. CENTER returns
// outer unchanged.
func (l DockLocation) DockRect(outer Rect, fraction float64) Rect {
	if fraction <= 0 || fraction > 1 {
		fraction = 0.5
	}
	switch l {
	case DockTop:
		return Rect{X: outer.X, Y: outer.Y, Width: outer.Width, Height: outer.Height * fraction}
	case DockBottom:
		h := outer.Height * fraction
		return Rect{X: outer.X, Y: outer.Bottom() - h, Width: outer.Width, Height: h}
	case DockLeft:
		return Rect{X: outer.X, Y: outer.Y, Width: outer.Width * fraction, Height: outer.Height}
	case DockRight:
		w := outer.Width * fraction
		return Rect{X: outer.Right() - w, Y: outer.Y, Width: w, Height: outer.Height}
	default:
		return outer
	}
}

// Split divides outer into the docked part at this location and the
// remainder. CENTER returns outer twice.
func (l DockLocation) Split(outer Rect, fraction float64) (docked, remainder Rect) {
	docked = l.DockRect(outer, fraction)
	switch l {
	case DockTop:
		remainder = Rect{X: outer.X, Y: docked.Bottom(), Width: outer.Width, Height: outer.Height - docked.Height}
	case DockBottom:
		remainder = Rect{X: outer.X, Y: outer.Y, Width: outer.Width, Height: outer.Height - docked.Height}
	case DockLeft:
		remainder = Rect{X: docked.Right(), Y: outer.Y, Width: outer.Width - docked.Width, Height: outer.Height}
	case DockRight:
		remainder = Rect{X: outer.X, Y: outer.Y, Width: outer.Width - docked.Width, Height: outer.Height}
	default:
		remainder = outer
	}
	return docked, remainder
}
