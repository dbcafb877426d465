package dock

import "testing"

// layoutTwoSets writes rectangles for twoSetDoc as a renderer would:
// ts1 on the left half, ts2 on the right half of a 1000x600 frame.
func layoutTwoSets(t *testing.T, m *Model) (*TabSetNode, *TabSetNode) {
	t.Helper()
	m.Root().SetRect(Rect{X: 0, Y: 0, Width: 1000, Height: 600})
	ts1 := mustTabSet(t, m, "ts1")
	ts2 := mustTabSet(t, m, "ts2")
	ts1.SetRect(Rect{X: 0, Y: 0, Width: 500, Height: 600})
	ts2.SetRect(Rect{X: 500, Y: 0, Width: 500, Height: 600})
	return ts1, ts2
}

func TestFindDropTargetRegions(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	_, ts2 := layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t1")

	cases := []struct {
		name string
		x, y float64
		want DockLocation
	}{
		{"center", 750, 300, DockCenter},
		{"left band", 550, 300, DockLeft},
		{"right band", 950, 300, DockRight},
		{"top band", 750, 50, DockTop},
		{"bottom band", 750, 550, DockBottom},
	}
	for _, tc := range cases {
		info := m.FindDropTarget(dragging, tc.x, tc.y)
		if info == nil {
			t.Fatalf("%s: FindDropTarget = nil, want %v", tc.name, tc.want)
		}
		if info.Node != Node(ts2) {
			t.Fatalf("%s: target = %#v, want ts2", tc.name, info.Node)
		}
		if info.Location != tc.want {
			t.Fatalf("%s: location = %v, want %v", tc.name, info.Location, tc.want)
		}
	}
}

func TestFindDropTargetRegionsUseContentRect(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	_, ts2 := layoutTwoSets(t, m)
	ts2.SetContentRect(Rect{X: 500, Y: 30, Width: 500, Height: 570})
	dragging := mustTab(t, m, "t1")

	// over the tab strip: always a merge
	if info := m.FindDropTarget(dragging, 750, 5); info == nil || info.Location != DockCenter {
		t.Fatalf("strip drop = %#v, want CENTER", info)
	}
	// the edge bands are measured against the content rectangle
	if info := m.FindDropTarget(dragging, 750, 130); info == nil || info.Location != DockTop {
		t.Fatalf("top band drop = %#v, want TOP", info)
	}
}

func TestFindDropTargetRespectsEnableDrop(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "tabset", "id": "ts1", "children": [
	      {"type": "tab", "id": "t1", "name": "One"},
	      {"type": "tab", "id": "t2", "name": "Two"}
	    ]},
	    {"type": "tabset", "id": "ts2", "enableDrop": false, "children": [
	      {"type": "tab", "id": "t3", "name": "Three"}
	    ]}
	  ]}
	}`)
	_, _ = layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t1")

	if info := m.FindDropTarget(dragging, 750, 300); info != nil {
		t.Fatalf("CENTER drop on enableDrop=false tabset = %#v, want nil", info)
	}
	// splits are gated by enableDivide, not enableDrop
	if info := m.FindDropTarget(dragging, 550, 300); info == nil || info.Location != DockLeft {
		t.Fatalf("LEFT drop should still resolve, got %#v", info)
	}
}

func TestFindDropTargetRespectsEnableDivide(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "tabset", "id": "ts1", "children": [
	      {"type": "tab", "id": "t1", "name": "One"},
	      {"type": "tab", "id": "t2", "name": "Two"}
	    ]},
	    {"type": "tabset", "id": "ts2", "enableDivide": false, "children": [
	      {"type": "tab", "id": "t3", "name": "Three"},
	      {"type": "tab", "id": "t4", "name": "Four"}
	    ]}
	  ]}
	}`)
	_, _ = layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t1")

	if info := m.FindDropTarget(dragging, 550, 300); info != nil {
		t.Fatalf("edge drop on enableDivide=false tabset = %#v, want nil", info)
	}
	if info := m.FindDropTarget(dragging, 750, 300); info == nil || info.Location != DockCenter {
		t.Fatalf("CENTER drop should still resolve, got %#v", info)
	}
}

func TestSingleTabNoDivideResolvesCenterEverywhere(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "tabset", "id": "ts1", "children": [
	      {"type": "tab", "id": "t1", "name": "One"},
	      {"type": "tab", "id": "t2", "name": "Two"}
	    ]},
	    {"type": "tabset", "id": "ts2", "enableDivide": false, "children": [
	      {"type": "tab", "id": "t3", "name": "Three"}
	    ]}
	  ]}
	}`)
	_, ts2 := layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t1")

	// pointer in what would be the left band still resolves as a merge
	info := m.FindDropTarget(dragging, 550, 300)
	if info == nil || info.Node != Node(ts2) || info.Location != DockCenter {
		t.Fatalf("single-tab no-divide target = %#v, want CENTER on ts2", info)
	}
}

func TestFindDropTargetEdgeDock(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t3")

	// inside the 10px frame band, centered on the edge
	info := m.FindDropTarget(dragging, 5, 300)
	if info == nil || info.Node != Node(m.Root()) || info.Location != DockLeft {
		t.Fatalf("frame-edge drop = %#v, want LEFT on root", info)
	}

	// same band but outside the sensitive span falls through to ts1
	info = m.FindDropTarget(dragging, 5, 100)
	if info == nil || info.Node == Node(m.Root()) {
		t.Fatalf("off-span edge drop = %#v, want tabset target", info)
	}
}

func TestFindDropTargetEdgeDockDisabled(t *testing.T) {
	m := mustModel(t, `{
	  "global": {"enableEdgeDock": false},
	  "layout": {"type": "row", "children": [
	    {"type": "tabset", "id": "ts1", "children": [
	      {"type": "tab", "id": "t1", "name": "One"},
	      {"type": "tab", "id": "t2", "name": "Two"}
	    ]},
	    {"type": "tabset", "id": "ts2", "children": [
	      {"type": "tab", "id": "t3", "name": "Three"}
	    ]}
	  ]}
	}`)
	ts1, _ := layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t3")

	info := m.FindDropTarget(dragging, 5, 300)
	if info == nil || info.Node != Node(ts1) {
		t.Fatalf("with edge dock off, drop = %#v, want ts1", info)
	}
}

func TestFindDropTargetWhileMaximized(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	ts1, _ := layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t3")
	m.DoAction(MaximizeToggleAction("ts1"))

	// only the maximized tabset is a valid target
	if info := m.FindDropTarget(dragging, 750, 300); info != nil {
		t.Fatalf("drop over occluded tabset = %#v, want nil", info)
	}
	info := m.FindDropTarget(dragging, 250, 300)
	if info == nil || info.Node != Node(ts1) {
		t.Fatalf("drop over maximized tabset = %#v, want ts1", info)
	}
}

func TestFindDropTargetRejectsSelfAndDescendants(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	_, ts2 := layoutTwoSets(t, m)

	if info := m.FindDropTarget(ts2, 750, 300); info != nil {
		t.Fatalf("dropping a tabset onto itself = %#v, want nil", info)
	}
	if info := m.FindDropTarget(nil, 750, 300); info != nil {
		t.Fatalf("nil dragging node = %#v, want nil", info)
	}
}

func TestFindDropTargetNamedTabSetMerge(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "tabset", "id": "ts1", "name": "Pinned", "children": [
	      {"type": "tab", "id": "t1", "name": "One"}
	    ]},
	    {"type": "tabset", "id": "ts2", "children": [
	      {"type": "tab", "id": "t3", "name": "Three"}
	    ]}
	  ]}
	}`)
	ts1, _ := layoutTwoSets(t, m)

	// merging a named tabset into another would lose its header
	if info := m.FindDropTarget(ts1, 750, 300); info != nil {
		t.Fatalf("CENTER merge of a named tabset = %#v, want nil", info)
	}
}

func TestOnAllowDropVeto(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	layoutTwoSets(t, m)
	dragging := mustTab(t, m, "t1")

	var seen *DropInfo
	m.OnAllowDrop(func(d Node, info *DropInfo) bool {
		seen = info
		return false
	})

	if info := m.FindDropTarget(dragging, 750, 300); info != nil {
		t.Fatalf("vetoed drop = %#v, want nil", info)
	}
	if seen == nil || seen.Location != DockCenter {
		t.Fatalf("veto should only see structurally legal drops, got %#v", seen)
	}

	m.OnAllowDrop(nil)
	if info := m.FindDropTarget(dragging, 750, 300); info == nil {
		t.Fatalf("clearing the veto should restore the drop")
	}
}

func TestBorderDropTarget(t *testing.T) {
	m := mustModel(t, borderDoc)
	m.Root().SetRect(Rect{X: 0, Y: 0, Width: 1000, Height: 560})
	main := mustTabSet(t, m, "main")
	main.SetRect(Rect{X: 0, Y: 0, Width: 1000, Height: 560})
	b := m.Borders().Border(DockBottom)
	b.SetRect(Rect{X: 0, Y: 560, Width: 1000, Height: 40})
	dragging := mustTab(t, m, "m1")

	info := m.FindDropTarget(dragging, 500, 580)
	if info == nil || info.Node != Node(b) || info.Location != DockCenter {
		t.Fatalf("border drop = %#v, want CENTER on bottom border", info)
	}
}

func TestBorderDropRespectsEnableDrop(t *testing.T) {
	m := mustModel(t, `{
	  "borders": [
	    {"type": "border", "location": "top", "enableDrop": false, "children": []}
	  ],
	  "layout": {"type": "row", "children": [
	    {"type": "tabset", "id": "main", "children": [
	      {"type": "tab", "id": "m1", "name": "Main"}
	    ]}
	  ]}
	}`)
	b := m.Borders().Border(DockTop)
	b.SetRect(Rect{X: 0, Y: 0, Width: 1000, Height: 40})
	m.Root().SetRect(Rect{X: 0, Y: 40, Width: 1000, Height: 560})

	if info := m.FindDropTarget(mustTab(t, m, "m1"), 500, 20); info != nil {
		t.Fatalf("drop on enableDrop=false border = %#v, want nil", info)
	}
}

func TestOnCreateTabSetHookRuns(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	hooked := 0
	m.OnCreateTabSet(func(ts *TabSetNode) { hooked++ })

	m.DoAction(MoveNodeAction("t1", "ts2", DockLeft, -1, true))

	if hooked != 1 {
		t.Fatalf("OnCreateTabSet ran %d times, want 1", hooked)
	}
}
