package dock

// CloseType controls when a tab may be closed. It is a permission stored on
// the model; whether a close button is visible for a hovered or selected tab
// is the rendering layer's concern.
type CloseType int

const (
	CloseAlways       CloseType = 1
	CloseVisible      CloseType = 2
	CloseSelectedOnly CloseType = 3
)

const defaultWeight = 100

// Attribute schemas, one per node kind plus the model's global set. Node
// lookups fall back through the model attribute named in the third column,
// then to the declared default.
var (
	modelAttrs  = buildModelAttrs()
	rowAttrs    = buildRowAttrs()
	tabSetAttrs = buildTabSetAttrs()
	tabAttrs    = buildTabAttrs()
	borderAttrs = buildBorderAttrs()
)

func buildModelAttrs() *attrSet {
	s := newAttrSet()
	s.add("rootOrientationVertical", attrBool, false)
	s.add("enableEdgeDock", attrBool, true)
	s.add("splitterSize", attrNumber, float64(8))

	s.add("tabEnableClose", attrBool, true)
	s.add("tabCloseType", attrNumber, float64(CloseAlways))
	s.add("tabEnableDrag", attrBool, true)
	s.add("tabEnableRename", attrBool, true)
	s.add("tabEnableRenderOnDemand", attrBool, true)

	s.add("tabSetEnableDrop", attrBool, true)
	s.add("tabSetEnableDrag", attrBool, true)
	s.add("tabSetEnableDivide", attrBool, true)
	s.add("tabSetEnableMaximize", attrBool, true)
	s.add("tabSetEnableDeleteWhenEmpty", attrBool, true)
	s.add("tabSetAutoSelectTab", attrBool, true)
	s.add("tabSetMinWidth", attrNumber, float64(0))
	s.add("tabSetMinHeight", attrNumber, float64(0))
	s.add("tabSetMaxWidth", attrNumber, float64(99999))
	s.add("tabSetMaxHeight", attrNumber, float64(99999))
	s.add("tabSetTabStripHeight", attrNumber, float64(26))

	s.add("borderBarSize", attrNumber, float64(26))
	s.add("borderSize", attrNumber, float64(200))
	s.add("borderMinSize", attrNumber, float64(0))
	s.add("borderMaxSize", attrNumber, float64(99999))
	s.add("borderEnableDrop", attrBool, true)
	s.add("borderEnableAutoHide", attrBool, false)
	s.add("borderLeftRightFirst", attrBool, false)
	return s
}

func buildRowAttrs() *attrSet {
	s := newAttrSet()
	s.add("id", attrString, nil)
	s.add("weight", attrNumber, float64(defaultWeight))
	return s
}

func buildTabSetAttrs() *attrSet {
	s := newAttrSet()
	s.add("id", attrString, nil)
	s.add("name", attrString, "")
	s.add("weight", attrNumber, float64(defaultWeight))
	s.add("selected", attrNumber, float64(0))
	s.addWithModel("enableDrop", attrBool, true, "tabSetEnableDrop")
	s.addWithModel("enableDrag", attrBool, true, "tabSetEnableDrag")
	s.addWithModel("enableDivide", attrBool, true, "tabSetEnableDivide")
	s.addWithModel("enableMaximize", attrBool, true, "tabSetEnableMaximize")
	s.addWithModel("enableDeleteWhenEmpty", attrBool, true, "tabSetEnableDeleteWhenEmpty")
	s.addWithModel("autoSelectTab", attrBool, true, "tabSetAutoSelectTab")
	s.addWithModel("minWidth", attrNumber, float64(0), "tabSetMinWidth")
	s.addWithModel("minHeight", attrNumber, float64(0), "tabSetMinHeight")
	s.addWithModel("maxWidth", attrNumber, float64(99999), "tabSetMaxWidth")
	s.addWithModel("maxHeight", attrNumber, float64(99999), "tabSetMaxHeight")
	s.addWithModel("tabStripHeight", attrNumber, float64(26), "tabSetTabStripHeight")
	return s
}

func buildTabAttrs() *attrSet {
	s := newAttrSet()
	s.add("id", attrString, nil)
	s.add("name", attrString, "")
	s.add("component", attrString, "")
	s.add("config", attrJSON, nil)
	s.add("icon", attrString, "")
	s.addWithModel("enableClose", attrBool, true, "tabEnableClose")
	s.addWithModel("closeType", attrNumber, float64(CloseAlways), "tabCloseType")
	s.addWithModel("enableDrag", attrBool, true, "tabEnableDrag")
	s.addWithModel("enableRename", attrBool, true, "tabEnableRename")
	s.addWithModel("enableRenderOnDemand", attrBool, true, "tabEnableRenderOnDemand")
	s.add("minWidth", attrNumber, float64(0))
	s.add("minHeight", attrNumber, float64(0))
	s.add("maxWidth", attrNumber, float64(99999))
	s.add("maxHeight", attrNumber, float64(99999))
	return s
}

func buildBorderAttrs() *attrSet {
	s := newAttrSet()
	s.add("id", attrString, nil)
	s.add("selected", attrNumber, float64(-1))
	s.addWithModel("size", attrNumber, float64(200), "borderSize")
	s.addWithModel("minSize", attrNumber, float64(0), "borderMinSize")
	s.addWithModel("maxSize", attrNumber, float64(99999), "borderMaxSize")
	s.addWithModel("barSize", attrNumber, float64(26), "borderBarSize")
	s.addWithModel("enableDrop", attrBool, true, "borderEnableDrop")
	s.addWithModel("enableAutoHide", attrBool, false, "borderEnableAutoHide")
	return s
}
