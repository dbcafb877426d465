package dock

// TabNode is a leaf pane. Its component string and config payload are opaque
// to the model; the consuming layer's factory interprets them.
type TabNode struct {
	node

	// transient flags used by the rendering layer to decide whether content
	// should mount; never serialized
	rendered bool
	visible  bool
}

func newTabNode(model *Model) *TabNode {
	t := &TabNode{}
	t.init(model, t, KindTab, tabAttrs)
	return t
}

// newTabNodeFromJSON builds a tab from a decoded JSON object and registers
// its id. A duplicate id is a programmer error and panics.
func newTabNodeFromJSON(model *Model, obj map[string]any) *TabNode {
	t := newTabNode(model)
	tabAttrs.fromJSON(obj, t.attrs)
	if id := attrStringValue(t.attrs["id"], ""); id != "" {
		model.registerID(id, t)
	}
	return t
}

func (t *TabNode) Name() string      { return t.attrString("name") }
func (t *TabNode) Component() string { return t.attrString("component") }
func (t *TabNode) Icon() string      { return t.attrString("icon") }

// Config returns the opaque per-tab payload round-tripped through JSON.
func (t *TabNode) Config() any { return t.attr("config") }

func (t *TabNode) EnableClose() bool          { return t.attrBool("enableClose") }
func (t *TabNode) EnableDrag() bool           { return t.attrBool("enableDrag") }
func (t *TabNode) EnableRename() bool         { return t.attrBool("enableRename") }
func (t *TabNode) EnableRenderOnDemand() bool { return t.attrBool("enableRenderOnDemand") }

func (t *TabNode) CloseType() CloseType {
	return CloseType(t.attrFloat("closeType"))
}

// Rendered reports whether the tab content has been mounted at least once.
func (t *TabNode) Rendered() bool { return t.rendered }

// SetRendered is written by the rendering layer when the tab content mounts.
func (t *TabNode) SetRendered(rendered bool) { t.rendered = rendered }

// Visible reports whether the tab is the selected one in its parent.
func (t *TabNode) Visible() bool { return t.visible }

func (t *TabNode) setVisible(visible bool) {
	if t.visible == visible {
		return
	}
	t.visible = visible
	t.fireEvent(EventVisibility, map[string]any{"visible": visible})
}

func (t *TabNode) setName(name string) {
	t.attrs["name"] = name
}

// delete detaches the tab from its parent, firing the close event. The
// caller runs the model tidy pass afterwards.
func (t *TabNode) delete() {
	parent := t.parent
	if parent == nil {
		return
	}
	switch p := parent.(type) {
	case *TabSetNode:
		p.removeTab(t)
	case *BorderNode:
		p.removeTab(t)
	}
	t.fireEvent(EventClose, map[string]any{"node": t.ID()})
}

func (t *TabNode) minSize() (w, h float64) {
	return t.attrFloat("minWidth"), t.attrFloat("minHeight")
}

func (t *TabNode) maxSize() (w, h float64) {
	return t.attrFloat("maxWidth"), t.attrFloat("maxHeight")
}

func (t *TabNode) toJSON() map[string]any {
	t.fireEvent(EventSave, nil)
	obj := map[string]any{"type": string(KindTab)}
	tabAttrs.toJSON(t.attrs, obj)
	return obj
}
