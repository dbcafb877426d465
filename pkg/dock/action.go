package dock

// ActionType enumerates the closed set of commands the reducer consumes.
type ActionType string

const (
	ActionAddNode               ActionType = "addNode"
	ActionMoveNode              ActionType = "moveNode"
	ActionDeleteTab             ActionType = "deleteTab"
	ActionDeleteTabSet          ActionType = "deleteTabset"
	ActionRenameTab             ActionType = "renameTab"
	ActionSelectTab             ActionType = "selectTab"
	ActionSetActiveTabSet       ActionType = "setActiveTabset"
	ActionAdjustWeights         ActionType = "adjustWeights"
	ActionAdjustBorderSplit     ActionType = "adjustBorderSplit"
	ActionMaximizeToggle        ActionType = "maximizeToggle"
	ActionUpdateModelAttributes ActionType = "updateModelAttributes"
	ActionUpdateNodeAttributes  ActionType = "updateNodeAttributes"
)

// Action is a serializable command for Model.DoAction. The data payload uses
// JSON-safe values only, so an action log round-trips through encoding/json.
type Action struct {
	Type ActionType     `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// AddNodeAction adds a new tab built from tabJSON to the target row, tabset
// or border.
func AddNodeAction(tabJSON map[string]any, toNode string, location DockLocation, index int, doSelect bool) Action {
	return Action{Type: ActionAddNode, Data: map[string]any{
		"json":     tabJSON,
		"toNode":   toNode,
		"location": location.String(),
		"index":    float64(index),
		"select":   doSelect,
	}}
}

// MoveNodeAction moves an existing tab, tabset or row onto a drop target.
func MoveNodeAction(fromNode, toNode string, location DockLocation, index int, doSelect bool) Action {
	return Action{Type: ActionMoveNode, Data: map[string]any{
		"fromNode": fromNode,
		"toNode":   toNode,
		"location": location.String(),
		"index":    float64(index),
		"select":   doSelect,
	}}
}

func DeleteTabAction(id string) Action {
	return Action{Type: ActionDeleteTab, Data: map[string]any{"node": id}}
}

func DeleteTabSetAction(id string) Action {
	return Action{Type: ActionDeleteTabSet, Data: map[string]any{"node": id}}
}

func RenameTabAction(id, name string) Action {
	return Action{Type: ActionRenameTab, Data: map[string]any{"node": id, "text": name}}
}

func SelectTabAction(id string) Action {
	return Action{Type: ActionSelectTab, Data: map[string]any{"node": id}}
}

// SetActiveTabSetAction marks the tabset as active; an empty id clears the
// active tabset.
func SetActiveTabSetAction(id string) Action {
	return Action{Type: ActionSetActiveTabSet, Data: map[string]any{"node": id}}
}

// AdjustWeightsAction applies one weight per child of the row, in order.
func AdjustWeightsAction(id string, weights []float64) Action {
	vals := make([]any, len(weights))
	for i, w := range weights {
		vals[i] = w
	}
	return Action{Type: ActionAdjustWeights, Data: map[string]any{"node": id, "weights": vals}}
}

func AdjustBorderSplitAction(id string, size float64) Action {
	return Action{Type: ActionAdjustBorderSplit, Data: map[string]any{"node": id, "size": size}}
}

func MaximizeToggleAction(id string) Action {
	return Action{Type: ActionMaximizeToggle, Data: map[string]any{"node": id}}
}

func UpdateModelAttributesAction(attrs map[string]any) Action {
	return Action{Type: ActionUpdateModelAttributes, Data: map[string]any{"attributes": attrs}}
}

func UpdateNodeAttributesAction(id string, attrs map[string]any) Action {
	return Action{Type: ActionUpdateNodeAttributes, Data: map[string]any{"node": id, "attributes": attrs}}
}

func (a Action) dataString(key string) string {
	return attrStringValue(a.Data[key], "")
}

func (a Action) dataFloat(key string, def float64) float64 {
	return attrFloatValue(a.Data[key], def)
}

func (a Action) dataInt(key string, def int) int {
	return int(attrFloatValue(a.Data[key], float64(def)))
}

func (a Action) dataBool(key string, def bool) bool {
	return attrBoolValue(a.Data[key], def)
}

func (a Action) dataMap(key string) map[string]any {
	if m, ok := a.Data[key].(map[string]any); ok {
		return m
	}
	return nil
}

func (a Action) dataWeights(key string) []float64 {
	raw, ok := a.Data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		out = append(out, attrFloatValue(v, 0))
	}
	return out
}

func (a Action) dataLocation(key string) DockLocation {
	loc, err := ParseDockLocation(a.dataString(key))
	if err != nil {
		return DockCenter
	}
	return loc
}
