package dock

// DropInfo describes where a drag would land: the target node, the dock
// location, the insertion index, an advisory outline rectangle for the drag
// ghost, and a class hint for the rendering layer. Only Location and Index
// feed the actual insertion.
type DropInfo struct {
	Node      Node
	Location  DockLocation
	Index     int
	Rect      Rect
	ClassName string
}

// FindDropTarget resolves the pointer position into the best drop target for
// the dragged node, or nil when no legal drop exists there. It is a pure
// read: the tree is untouched until the caller submits an AddNode or
// MoveNode action.
//
// While a tabset is maximized it visually occludes everything else, so
// resolution is restricted to that tabset alone. Otherwise the main tree is
// walked depth-first, first match wins, with the border set as a fallback
// when the main tree misses.
func (m *Model) FindDropTarget(dragging Node, x, y float64) *DropInfo {
	if dragging == nil {
		return nil
	}
	if m.maximizedTabSet != nil {
		return m.acceptDrop(dragging, m.maximizedTabSet.canDrop(dragging, x, y))
	}
	var info *DropInfo
	if m.root != nil && m.root.rect.Contains(x, y) {
		info = findDropTargetNode(m.root, dragging, x, y)
	}
	if info == nil {
		info = m.borders.canDrop(dragging, x, y)
	}
	return m.acceptDrop(dragging, info)
}

// findDropTargetNode asks the node's own drop test first (rows defer except
// for the frame-edge bands), then recurses into children in order. No
// backtracking once a deeper match is found.
func findDropTargetNode(n Node, dragging Node, x, y float64) *DropInfo {
	if dt, ok := n.(dropTarget); ok {
		if info := dt.canDrop(dragging, x, y); info != nil {
			return info
		}
	}
	if _, ok := n.(*RowNode); !ok {
		return nil
	}
	for _, child := range n.Children() {
		if info := findDropTargetNode(child, dragging, x, y); info != nil {
			return info
		}
	}
	return nil
}

// acceptDrop runs the legality gate over a candidate DropInfo. Structural
// legality is checked before the caller's veto, so a registered AllowDrop
// predicate only ever has to judge drops the model itself would accept.
func (m *Model) acceptDrop(dragging Node, info *DropInfo) *DropInfo {
	if info == nil {
		return nil
	}
	if !m.canDockInto(dragging, info) {
		return nil
	}
	return info
}

func (m *Model) canDockInto(dragging Node, info *DropInfo) bool {
	// a node cannot land on itself or inside its own subtree
	if info.Node == dragging || isDescendantOf(info.Node, dragging) {
		return false
	}
	switch target := info.Node.(type) {
	case *TabSetNode:
		if info.Location == DockCenter {
			if !target.EnableDrop() {
				return false
			}
			// merging a named tabset into another would destroy its header
			if dts, ok := dragging.(*TabSetNode); ok && dts.Name() != "" {
				return false
			}
		} else if !target.EnableDivide() {
			return false
		}
	case *BorderNode:
		if !target.EnableDrop() {
			return false
		}
	}
	if m.onAllowDrop != nil && !m.onAllowDrop(dragging, info) {
		return false
	}
	return true
}

// isDescendantOf reports whether n sits anywhere under ancestor.
func isDescendantOf(n Node, ancestor Node) bool {
	if ancestor == nil || n == nil {
		return false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
