package dock

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FromJSON builds a model from its JSON snapshot: a global attribute bag, up
// to four borders, and the layout tree rooted at a row. The whole tree is
// constructed once here; afterwards it mutates exclusively through DoAction.
func FromJSON(data []byte) (*Model, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dock: parse model json: %w", err)
	}
	return fromJSONObject(doc)
}

func fromJSONObject(doc map[string]any) (*Model, error) {
	if err := checkDuplicateIDs(doc); err != nil {
		return nil, err
	}
	m := newModel()

	if global, ok := doc["global"].(map[string]any); ok {
		modelAttrs.fromJSON(global, m.attrs)
	}

	if borders, ok := doc["borders"].([]any); ok {
		for _, raw := range borders {
			obj, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("dock: border entry is not an object")
			}
			if err := m.loadBorder(obj); err != nil {
				return nil, err
			}
		}
	}

	layout, ok := doc["layout"].(map[string]any)
	if !ok {
		// an empty document still gets a root row
		layout = map[string]any{"type": string(KindRow)}
	}
	root, err := m.loadLayoutNode(layout)
	if err != nil {
		return nil, err
	}
	switch r := root.(type) {
	case *RowNode:
		m.root = r
	default:
		// the root is always a row, even around a single tabset
		row := newRowNode(m)
		row.addChild(root, -1)
		m.root = row
	}

	m.refreshStructure()
	return m, nil
}

func (m *Model) loadBorder(obj map[string]any) error {
	if t := attrStringValue(obj["type"], ""); t != string(KindBorder) {
		return fmt.Errorf("dock: border entry has type %q", t)
	}
	location, err := ParseDockLocation(attrStringValue(obj["location"], ""))
	if err != nil {
		return err
	}
	if location == DockCenter {
		return fmt.Errorf("dock: border location must be an edge")
	}
	if m.borders.Border(location) != nil {
		return fmt.Errorf("dock: duplicate border at %s", location)
	}
	b := newBorderNodeFromJSON(m, location, obj)
	if children, ok := obj["children"].([]any); ok {
		for _, raw := range children {
			tabObj, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			b.addChild(newTabNodeFromJSON(m, tabObj), -1)
		}
	}
	b.refreshVisibility()
	m.borders.add(b)
	return nil
}

func (m *Model) loadLayoutNode(obj map[string]any) (Node, error) {
	switch attrStringValue(obj["type"], "") {
	case string(KindRow):
		row := newRowNodeFromJSON(m, obj)
		if children, ok := obj["children"].([]any); ok {
			for _, raw := range children {
				childObj, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				child, err := m.loadLayoutNode(childObj)
				if err != nil {
					return nil, err
				}
				if _, isTab := child.(*TabNode); isTab {
					return nil, fmt.Errorf("dock: tab cannot be a direct row child")
				}
				row.addChild(child, -1)
			}
		}
		return row, nil
	case string(KindTabSet):
		ts := newTabSetNodeFromJSON(m, obj)
		if children, ok := obj["children"].([]any); ok {
			for _, raw := range children {
				tabObj, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				ts.addChild(newTabNodeFromJSON(m, tabObj), -1)
			}
		}
		ts.refreshVisibility()
		return ts, nil
	case string(KindTab):
		return newTabNodeFromJSON(m, obj), nil
	default:
		return nil, fmt.Errorf("dock: unknown layout node type %q", obj["type"])
	}
}

// ToJSON serializes the model. Only explicitly set attributes are written,
// and generated ("#"-prefixed) ids are omitted, so loading the output
// reproduces an equivalent tree without freezing defaults or generated ids
// into the document.
func (m *Model) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m.toJSONObject(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dock: serialize model: %w", err)
	}
	return data, nil
}

func (m *Model) toJSONObject() map[string]any {
	global := map[string]any{}
	modelAttrs.toJSON(m.attrs, global)

	doc := map[string]any{
		"global":  global,
		"borders": m.borders.toJSON(),
	}
	if m.root != nil {
		doc["layout"] = m.root.toJSON()
	}
	stripGeneratedIDs(doc)
	return doc
}

// stripGeneratedIDs walks only the known node shape of the document, so
// opaque config payloads pass through untouched.
func stripGeneratedIDs(doc map[string]any) {
	if layout, ok := doc["layout"].(map[string]any); ok {
		stripNodeIDs(layout)
	}
	if borders, ok := doc["borders"].([]any); ok {
		for _, raw := range borders {
			if obj, ok := raw.(map[string]any); ok {
				stripNodeIDs(obj)
			}
		}
	}
}

func stripNodeIDs(obj map[string]any) {
	if id, ok := obj["id"].(string); ok && strings.HasPrefix(id, "#") {
		delete(obj, "id")
	}
	if children, ok := obj["children"].([]any); ok {
		for _, raw := range children {
			if childObj, ok := raw.(map[string]any); ok {
				stripNodeIDs(childObj)
			}
		}
	}
}

// checkDuplicateIDs walks the raw document before construction so a
// malformed document surfaces as a load error rather than a panic from the
// id registry.
func checkDuplicateIDs(doc map[string]any) error {
	seen := make(map[string]bool)
	var walk func(obj map[string]any) error
	walk = func(obj map[string]any) error {
		if id, ok := obj["id"].(string); ok && id != "" {
			if seen[id] {
				return fmt.Errorf("dock: duplicate node id %q in document", id)
			}
			seen[id] = true
		}
		if children, ok := obj["children"].([]any); ok {
			for _, raw := range children {
				if childObj, ok := raw.(map[string]any); ok {
					if err := walk(childObj); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	if layout, ok := doc["layout"].(map[string]any); ok {
		if err := walk(layout); err != nil {
			return err
		}
	}
	if borders, ok := doc["borders"].([]any); ok {
		for _, raw := range borders {
			if obj, ok := raw.(map[string]any); ok {
				if err := walk(obj); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
