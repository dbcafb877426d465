package dock

import "testing"

func TestRowOrientationAlternates(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "row", "id": "r1", "children": [
	      {"type": "row", "id": "r2", "children": [
	        {"type": "tabset", "id": "ts1", "children": [
	          {"type": "tab", "id": "t1", "name": "One"}
	        ]}
	      ]},
	      {"type": "tabset", "id": "ts2", "children": [
	        {"type": "tab", "id": "t2", "name": "Two"}
	      ]}
	    ]},
	    {"type": "tabset", "id": "ts3", "children": [
	      {"type": "tab", "id": "t3", "name": "Three"}
	    ]}
	  ]}
	}`)
	if got := m.Root().Orientation(); got != OrientationHorz {
		t.Fatalf("root Orientation() = %v, want horz", got)
	}
	r1, _ := m.NodeByID("r1").(*RowNode)
	r2, _ := m.NodeByID("r2").(*RowNode)
	if r1 == nil || r2 == nil {
		t.Fatalf("nested rows missing from index")
	}
	if r1.Orientation() != OrientationVert || r2.Orientation() != OrientationHorz {
		t.Fatalf("Orientation() = %v/%v, want vert/horz", r1.Orientation(), r2.Orientation())
	}
}

func TestRootOrientationVertical(t *testing.T) {
	m := mustModel(t, `{
	  "global": {"rootOrientationVertical": true},
	  "layout": {"type": "row", "children": []}
	}`)
	if got := m.Root().Orientation(); got != OrientationVert {
		t.Fatalf("root Orientation() = %v, want vert", got)
	}
}

func TestTidyRemovesEmptyRows(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "row", "id": "empty", "children": []},
	    {"type": "tabset", "id": "ts1", "children": [
	      {"type": "tab", "id": "t1", "name": "One"}
	    ]}
	  ]}
	}`)
	m.tidy()
	m.refreshStructure()

	if m.NodeByID("empty") != nil {
		t.Fatalf("empty row survived tidy")
	}
	if len(m.Root().Children()) != 1 {
		t.Fatalf("root children = %d, want 1", len(m.Root().Children()))
	}
}

func TestTidyHoistsSingleChildRows(t *testing.T) {
	// a row whose only child is a tabset collapses to the tabset,
	// inheriting the row's weight
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "row", "weight": 40, "children": [
	      {"type": "tabset", "id": "ts1", "children": [
	        {"type": "tab", "id": "t1", "name": "One"}
	      ]}
	    ]},
	    {"type": "tabset", "id": "ts2", "weight": 60, "children": [
	      {"type": "tab", "id": "t2", "name": "Two"}
	    ]}
	  ]}
	}`)
	m.tidy()
	m.refreshStructure()

	root := m.Root()
	if len(root.Children()) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children()))
	}
	ts1 := mustTabSet(t, m, "ts1")
	if ts1.Parent() != Node(root) {
		t.Fatalf("ts1 not hoisted to root, parent = %#v", ts1.Parent())
	}
	if ts1.Weight() != 40 {
		t.Fatalf("hoisted weight = %g, want the row's 40", ts1.Weight())
	}
}

func TestTidySplicesRowGrandchildren(t *testing.T) {
	// a row whose only child is another row splices the grandchildren up
	// two levels, keeping orientation parity and scaling weights to the
	// collapsed row's share
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "row", "weight": 50, "children": [
	      {"type": "row", "children": [
	        {"type": "tabset", "id": "ts1", "weight": 25, "children": [
	          {"type": "tab", "id": "t1", "name": "One"}
	        ]},
	        {"type": "tabset", "id": "ts2", "weight": 75, "children": [
	          {"type": "tab", "id": "t2", "name": "Two"}
	        ]}
	      ]}
	    ]},
	    {"type": "tabset", "id": "ts3", "weight": 50, "children": [
	      {"type": "tab", "id": "t3", "name": "Three"}
	    ]}
	  ]}
	}`)
	m.tidy()
	m.refreshStructure()

	root := m.Root()
	if len(root.Children()) != 3 {
		t.Fatalf("root children = %d, want 3 (spliced grandchildren + ts3)", len(root.Children()))
	}
	ts1 := mustTabSet(t, m, "ts1")
	ts2 := mustTabSet(t, m, "ts2")
	if ts1.Parent() != Node(root) || ts2.Parent() != Node(root) {
		t.Fatalf("grandchildren not spliced to root")
	}
	// 25/75 of the collapsed row's 50
	if ts1.Weight() != 12.5 || ts2.Weight() != 37.5 {
		t.Fatalf("spliced weights = %g/%g, want 12.5/37.5", ts1.Weight(), ts2.Weight())
	}
}

func TestTidyIsIdempotent(t *testing.T) {
	m := mustModel(t, `{
	  "layout": {"type": "row", "children": [
	    {"type": "row", "children": [
	      {"type": "row", "children": [
	        {"type": "tabset", "id": "ts1", "children": [
	          {"type": "tab", "id": "t1", "name": "One"}
	        ]}
	      ]},
	      {"type": "row", "children": []}
	    ]},
	    {"type": "tabset", "id": "ts2", "children": []}
	  ]}
	}`)
	m.tidy()
	m.refreshStructure()
	once := mustToJSON(t, m)

	m.tidy()
	m.refreshStructure()
	twice := mustToJSON(t, m)

	if string(once) != string(twice) {
		t.Fatalf("tidy not idempotent:\n%s\n---\n%s", once, twice)
	}
}

func TestRowEdgeDockMatchingOrientation(t *testing.T) {
	m := mustModel(t, twoSetDoc)
	before := len(m.Root().Children())

	m.DoAction(MoveNodeAction("t3", m.Root().ID(), DockLeft, -1, true))

	root := m.Root()
	if len(root.Children()) != before {
		// ts2 emptied and was tidied away, its tab landed leftmost
		t.Fatalf("root children = %d, want %d", len(root.Children()), before)
	}
	first, ok := root.Children()[0].(*TabSetNode)
	if !ok || len(first.Children()) != 1 || first.Children()[0].ID() != "t3" {
		t.Fatalf("leftmost child = %#v, want tabset holding t3", root.Children()[0])
	}
}

func TestRowEdgeDockCrossOrientation(t *testing.T) {
	m := mustModel(t, twoSetDoc)

	m.DoAction(MoveNodeAction("t3", m.Root().ID(), DockBottom, -1, true))

	tab := mustTab(t, m, "t3")
	set, ok := tab.Parent().(*TabSetNode)
	if !ok {
		t.Fatalf("t3 parent = %#v, want tabset", tab.Parent())
	}
	wrapper, ok := set.Parent().(*RowNode)
	if !ok || wrapper.Orientation() != OrientationVert {
		t.Fatalf("bottom dock should stack vertically, parent = %#v", set.Parent())
	}
	// the dropped pane sits below the prior content
	if wrapper.Children()[len(wrapper.Children())-1] != Node(set) {
		t.Fatalf("t3's tabset should be the last (bottom) child")
	}
	if m.NodeByID("ts1") == nil {
		t.Fatalf("existing content lost during cross-orientation dock")
	}
	checkUniqueIDs(t, m)
}
