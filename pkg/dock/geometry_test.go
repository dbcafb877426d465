package dock

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) {
		t.Fatalf("Contains(top-left) = false, want true")
	}
	if !r.Contains(59, 45) {
		t.Fatalf("Contains(interior) = false, want true")
	}
	if r.Contains(110, 30) {
		t.Fatalf("Contains(right edge) = true, want false (exclusive)")
	}
	if r.Contains(9, 30) || r.Contains(50, 70) {
		t.Fatalf("Contains(outside) = true, want false")
	}
}

func TestRectRelativeTo(t *testing.T) {
	outer := Rect{X: 100, Y: 200, Width: 800, Height: 600}
	inner := Rect{X: 150, Y: 260, Width: 40, Height: 30}
	got := inner.RelativeTo(outer)
	want := Rect{X: 50, Y: 60, Width: 40, Height: 30}
	if !got.Equals(want) {
		t.Fatalf("RelativeTo() = %#v, want %#v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 20, Height: 3}
	got := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 25, Height: 10}
	if !got.Equals(want) {
		t.Fatalf("Union() = %#v, want %#v", got, want)
	}
}

func TestRectCenterInRect(t *testing.T) {
	outer := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	inner := Rect{Width: 40, Height: 10}
	got := inner.CenterInRect(outer)
	want := Rect{X: 40, Y: 40, Width: 40, Height: 10}
	if !got.Equals(want) {
		t.Fatalf("CenterInRect() = %#v, want %#v", got, want)
	}
}

func TestOrientationFlip(t *testing.T) {
	if OrientationHorz.Flip() != OrientationVert || OrientationVert.Flip() != OrientationHorz {
		t.Fatalf("Flip() does not toggle orientations")
	}
}

func TestDockLocationSplit(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 200}

	docked, rest := DockTop.Split(outer, 0.25)
	if !docked.Equals(Rect{X: 0, Y: 0, Width: 100, Height: 50}) {
		t.Fatalf("DockTop docked = %#v", docked)
	}
	if !rest.Equals(Rect{X: 0, Y: 50, Width: 100, Height: 150}) {
		t.Fatalf("DockTop remainder = %#v", rest)
	}

	docked, rest = DockRight.Split(outer, 0.5)
	if !docked.Equals(Rect{X: 50, Y: 0, Width: 50, Height: 200}) {
		t.Fatalf("DockRight docked = %#v", docked)
	}
	if !rest.Equals(Rect{X: 0, Y: 0, Width: 50, Height: 200}) {
		t.Fatalf("DockRight remainder = %#v", rest)
	}

	docked, rest = DockCenter.Split(outer, 0.5)
	if !docked.Equals(outer) || !rest.Equals(outer) {
		t.Fatalf("DockCenter split should return outer twice, got %#v %#v", docked, rest)
	}
}

func TestDockLocationRoundTrip(t *testing.T) {
	for _, loc := range []DockLocation{DockTop, DockBottom, DockLeft, DockRight, DockCenter} {
		parsed, err := ParseDockLocation(loc.String())
		if err != nil {
			t.Fatalf("ParseDockLocation(%q) error: %v", loc.String(), err)
		}
		if parsed != loc {
			t.Fatalf("ParseDockLocation(%q) = %v, want %v", loc.String(), parsed, loc)
		}
	}
	if _, err := ParseDockLocation("middle"); err == nil {
		t.Fatalf("ParseDockLocation(middle) expected error")
	}
}

func TestDockLocationOrientationAndReflect(t *testing.T) {
	if DockTop.Orientation() != OrientationVert || DockLeft.Orientation() != OrientationHorz {
		t.Fatalf("unexpected dock orientations")
	}
	if DockTop.Reflect() != DockBottom || DockLeft.Reflect() != DockRight || DockCenter.Reflect() != DockCenter {
		t.Fatalf("unexpected reflections")
	}
}
