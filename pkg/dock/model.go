package dock

import "fmt"

// AllowDropFunc is the caller's veto over a structurally legal drop. It runs
// after the built-in legality checks, so it only ever sees drops the model
// itself would accept.
type AllowDropFunc func(dragging Node, info *DropInfo) bool

// CreateTabSetFunc customizes tabsets the model synthesizes during splits.
type CreateTabSetFunc func(ts *TabSetNode)

// Model owns the layout tree: the root row, the border set, the id index
// and the active/maximized tabset pointers. It is the single mutation entry
// point; external code mutates exclusively through DoAction.
//
// The model is not safe for concurrent use. All mutation is expected on one
// logical thread, and change listeners run synchronously inside DoAction;
// re-entering DoAction from a listener is not guarded against.
type Model struct {
	attrs   map[string]any
	root    *RowNode
	borders *BorderSet
	idMap   map[string]Node

	activeTabSet    *TabSetNode
	maximizedTabSet *TabSetNode

	changeListeners map[int]func(Action)
	nextListenerID  int

	onAllowDrop    AllowDropFunc
	onCreateTabSet CreateTabSetFunc
}

func newModel() *Model {
	m := &Model{
		attrs:           make(map[string]any),
		idMap:           make(map[string]Node),
		changeListeners: make(map[int]func(Action)),
	}
	m.borders = newBorderSet(m)
	return m
}

// Root returns the root row. The root is always a row, even for a layout
// holding a single tabset.
func (m *Model) Root() *RowNode { return m.root }

// Borders returns the border set.
func (m *Model) Borders() *BorderSet { return m.borders }

// NodeByID resolves an id to a node, nil when unknown.
func (m *Model) NodeByID(id string) Node { return m.idMap[id] }

func (m *Model) ActiveTabSet() *TabSetNode    { return m.activeTabSet }
func (m *Model) MaximizedTabSet() *TabSetNode { return m.maximizedTabSet }

// VisitNodes walks the whole tree pre-order: the main tree first, then each
// border and its tabs.
func (m *Model) VisitNodes(fn func(Node)) {
	if m.root != nil {
		m.root.visit(fn)
	}
	m.borders.visit(fn)
}

// AddChangeListener registers fn to run synchronously after every action,
// including ones that were silently ignored. The returned func unregisters.
func (m *Model) AddChangeListener(fn func(Action)) func() {
	id := m.nextListenerID
	m.nextListenerID++
	m.changeListeners[id] = fn
	return func() { delete(m.changeListeners, id) }
}

// OnAllowDrop registers the drop veto predicate; nil clears it.
func (m *Model) OnAllowDrop(fn AllowDropFunc) { m.onAllowDrop = fn }

// OnCreateTabSet registers a hook applied to tabsets synthesized by splits.
func (m *Model) OnCreateTabSet(fn CreateTabSetFunc) { m.onCreateTabSet = fn }

func (m *Model) rootOrientation() Orientation {
	if attrBoolValue(modelAttrs.resolve("rootOrientationVertical", m.attrs, nil), false) {
		return OrientationVert
	}
	return OrientationHorz
}

func (m *Model) EnableEdgeDock() bool {
	return attrBoolValue(modelAttrs.resolve("enableEdgeDock", m.attrs, nil), true)
}

func (m *Model) SplitterSize() float64 {
	return attrFloatValue(modelAttrs.resolve("splitterSize", m.attrs, nil), 8)
}

// GlobalAttr resolves a model-level attribute through the global schema.
func (m *Model) GlobalAttr(name string) any {
	return modelAttrs.resolve(name, m.attrs, nil)
}

// registerID records an id for a node, failing hard on collision: a
// duplicate id is a programmer error, unlike the stale ids the reducer
// tolerates.
func (m *Model) registerID(id string, n Node) {
	if existing, ok := m.idMap[id]; ok && existing != n {
		panic(fmt.Sprintf("dock: duplicate node id %q", id))
	}
	m.idMap[id] = n
}

// refreshStructure rebuilds the id index by full traversal and regenerates
// every path string. Run unconditionally after every action: a full rebuild
// trades a little work for never holding stale ids.
func (m *Model) refreshStructure() {
	m.idMap = make(map[string]Node)
	index := func(n Node) {
		m.registerID(n.ID(), n)
	}
	if m.root != nil {
		m.root.assignPaths("", 0)
		m.root.visit(index)
	}
	m.borders.assignPaths()
	m.borders.visit(index)
}

func (m *Model) setActiveTabSet(ts *TabSetNode) {
	m.activeTabSet = ts
}

func (m *Model) setMaximizedTabSet(ts *TabSetNode) {
	prev := m.maximizedTabSet
	if prev == ts {
		return
	}
	m.maximizedTabSet = ts
	if prev != nil {
		prev.fireEvent(EventMaximize, map[string]any{"maximized": false})
	}
	if ts != nil {
		ts.fireEvent(EventMaximize, map[string]any{"maximized": true})
	}
}

// forgetTabSet drops the active/maximized pointers when the tabset leaves
// the tree, so deletion never leaves dangling selection state.
func (m *Model) forgetTabSet(ts *TabSetNode) {
	if m.activeTabSet == ts {
		m.activeTabSet = nil
	}
	if m.maximizedTabSet == ts {
		m.setMaximizedTabSet(nil)
	}
}

func (m *Model) tidy() {
	if m.root != nil {
		m.root.tidy()
	}
}

// detachDraggable removes a node from its current parent using the parent's
// own removal logic, so selection fix-up and empty-tabset cleanup run.
func detachDraggable(n Node) {
	tab, ok := n.(*TabNode)
	if !ok {
		n.base().detach()
		return
	}
	switch p := tab.parent.(type) {
	case *TabSetNode:
		p.removeTab(tab)
	case *BorderNode:
		p.removeTab(tab)
	}
}

// wrapIntoTabSet detaches the dragged node and, for a bare tab, wraps it in
// a fresh tabset (applying the OnCreateTabSet hook) so it can live in a row.
func (m *Model) wrapIntoTabSet(dragging Node) Node {
	switch d := dragging.(type) {
	case *TabNode:
		detachDraggable(d)
		ts := newTabSetNode(m)
		if m.onCreateTabSet != nil {
			m.onCreateTabSet(ts)
		}
		ts.addChild(d, -1)
		ts.setSelected(0)
		return ts
	case *TabSetNode:
		detachDraggable(d)
		return d
	case *RowNode:
		detachDraggable(d)
		return d
	default:
		return nil
	}
}

// DoAction applies one command to the tree. An action referencing a missing
// id, or a node of the wrong kind, is silently ignored: stale ids from
// asynchronous UI callbacks are normal traffic, not errors. After the switch
// the id index and paths are rebuilt and every change listener fires, even
// for ignored actions. AddNode returns the created tab; other actions
// return nil.
func (m *Model) DoAction(action Action) Node {
	var created Node

	switch action.Type {
	case ActionAddNode:
		created = m.applyAddNode(action)
	case ActionMoveNode:
		m.applyMoveNode(action)
	case ActionDeleteTab:
		if tab, ok := m.NodeByID(action.dataString("node")).(*TabNode); ok {
			tab.delete()
			m.tidy()
		}
	case ActionDeleteTabSet:
		m.applyDeleteTabSet(action)
	case ActionRenameTab:
		if tab, ok := m.NodeByID(action.dataString("node")).(*TabNode); ok {
			tab.setName(action.dataString("text"))
		}
	case ActionSelectTab:
		m.applySelectTab(action)
	case ActionSetActiveTabSet:
		m.applySetActiveTabSet(action)
	case ActionAdjustWeights:
		if row, ok := m.NodeByID(action.dataString("node")).(*RowNode); ok {
			row.setWeights(action.dataWeights("weights"))
		}
	case ActionAdjustBorderSplit:
		if b, ok := m.NodeByID(action.dataString("node")).(*BorderNode); ok {
			b.setSize(action.dataFloat("size", b.Size()))
		}
	case ActionMaximizeToggle:
		m.applyMaximizeToggle(action)
	case ActionUpdateModelAttributes:
		if patch := action.dataMap("attributes"); patch != nil {
			modelAttrs.update(m.attrs, patch)
		}
	case ActionUpdateNodeAttributes:
		if n := m.NodeByID(action.dataString("node")); n != nil {
			if patch := action.dataMap("attributes"); patch != nil {
				n.base().set.update(n.base().attrs, patch)
			}
		}
	}

	m.refreshStructure()
	for _, fn := range m.changeListeners {
		fn(action)
	}
	return created
}

func (m *Model) applyAddNode(action Action) Node {
	tabJSON := action.dataMap("json")
	target, ok := m.NodeByID(action.dataString("toNode")).(dropTarget)
	if tabJSON == nil || !ok {
		return nil
	}
	tab := newTabNodeFromJSON(m, tabJSON)
	target.drop(tab, action.dataLocation("location"), action.dataInt("index", -1), action.dataBool("select", true))
	return tab
}

func (m *Model) applyMoveNode(action Action) {
	from := m.NodeByID(action.dataString("fromNode"))
	switch from.(type) {
	case *TabNode, *TabSetNode, *RowNode:
	default:
		return
	}
	target, ok := m.NodeByID(action.dataString("toNode")).(dropTarget)
	if !ok {
		return
	}
	// a node can never land on itself or inside its own subtree
	if Node(target) == from || isDescendantOf(target, from) {
		return
	}
	// moving the maximized tabset would leave maximize pointing at a
	// reparented node; cancel it first
	if ts, ok := from.(*TabSetNode); ok && m.maximizedTabSet == ts {
		m.setMaximizedTabSet(nil)
	}
	target.drop(from, action.dataLocation("location"), action.dataInt("index", -1), action.dataBool("select", true))
	m.tidy()
}

func (m *Model) applyDeleteTabSet(action Action) {
	ts, ok := m.NodeByID(action.dataString("node")).(*TabSetNode)
	if !ok {
		return
	}
	tabs := append([]Node(nil), ts.children...)
	for _, child := range tabs {
		if tab, ok := child.(*TabNode); ok && tab.EnableClose() {
			tab.delete()
		}
	}
	// the tabset itself goes only if closing its tabs emptied it
	if len(ts.children) == 0 && ts.parent != nil {
		ts.deleteSelf()
	}
	m.tidy()
}

func (m *Model) applySelectTab(action Action) {
	tab, ok := m.NodeByID(action.dataString("node")).(*TabNode)
	if !ok {
		return
	}
	switch p := tab.parent.(type) {
	case *BorderNode:
		// toggle: selecting the selected border tab collapses the border
		if p.SelectedNode() == Node(tab) {
			p.setSelected(-1)
		} else {
			p.setSelected(p.childIndex(tab))
		}
	case *TabSetNode:
		if p.SelectedNode() != Node(tab) {
			p.setSelected(p.childIndex(tab))
		}
		// selecting a tab always focuses its tabset, selected already or not
		m.setActiveTabSet(p)
	}
}

func (m *Model) applySetActiveTabSet(action Action) {
	id := action.dataString("node")
	if id == "" {
		m.setActiveTabSet(nil)
		return
	}
	if ts, ok := m.NodeByID(id).(*TabSetNode); ok {
		m.setActiveTabSet(ts)
	}
}

func (m *Model) applyMaximizeToggle(action Action) {
	ts, ok := m.NodeByID(action.dataString("node")).(*TabSetNode)
	if !ok || !ts.EnableMaximize() {
		return
	}
	if m.maximizedTabSet == ts {
		m.setMaximizedTabSet(nil)
		return
	}
	m.setMaximizedTabSet(ts)
	m.setActiveTabSet(ts)
}
