package dock

// AggregateMinMax recomputes the min/max size constraints for the whole main
// tree, bottom-up: rows sum their children along their own axis and take the
// largest constraint across it, tabsets and tabs report their attribute
// values as leaves. The rendering layer runs this before each layout pass
// and reads the results through Node.MinSize/MaxSize.
func (m *Model) AggregateMinMax() {
	if m.root != nil {
		aggregateMinMax(m.root)
	}
	for _, b := range m.borders.Borders() {
		for _, child := range b.children {
			aggregateMinMax(child)
		}
	}
}

func aggregateMinMax(n Node) {
	b := n.base()
	switch t := n.(type) {
	case *TabNode:
		b.minWidth, b.minHeight = t.minSize()
		b.maxWidth, b.maxHeight = t.maxSize()
	case *TabSetNode:
		for _, child := range b.children {
			aggregateMinMax(child)
		}
		b.minWidth, b.minHeight = t.minSize()
		b.maxWidth, b.maxHeight = t.maxSize()
	case *RowNode:
		splitter := 0.0
		if t.model != nil {
			splitter = t.model.SplitterSize()
		}
		var minMain, minCross, maxMain float64
		maxCross := maxConstraint
		for i, child := range b.children {
			aggregateMinMax(child)
			cb := child.base()
			gap := 0.0
			if i > 0 {
				gap = splitter
			}
			if t.Orientation() == OrientationHorz {
				minMain += cb.minWidth + gap
				maxMain += cb.maxWidth + gap
				minCross = maxFloat(minCross, cb.minHeight)
				maxCross = minFloat(maxCross, cb.maxHeight)
			} else {
				minMain += cb.minHeight + gap
				maxMain += cb.maxHeight + gap
				minCross = maxFloat(minCross, cb.minWidth)
				maxCross = minFloat(maxCross, cb.maxWidth)
			}
		}
		maxCross = maxFloat(maxCross, minCross)
		if len(b.children) == 0 {
			maxMain = maxConstraint
			maxCross = maxConstraint
		}
		if t.Orientation() == OrientationHorz {
			b.minWidth, b.minHeight = minMain, minCross
			b.maxWidth, b.maxHeight = maxMain, maxCross
		} else {
			b.minWidth, b.minHeight = minCross, minMain
			b.maxWidth, b.maxHeight = maxCross, maxMain
		}
	}
}

const maxConstraint = float64(99999)
