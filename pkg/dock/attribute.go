package dock

// attrType tags the declared value type of an attribute. JSON numbers decode
// to float64, so numeric attributes are stored as float64 throughout.
type attrType int

const (
	attrString attrType = iota
	attrNumber
	attrBool
	attrJSON // opaque payload, round-tripped untouched
)

// attrDef declares a single attribute: its default value and, optionally,
// the name of a model-level attribute it falls back to when a node has no
// explicit override.
type attrDef struct {
	name      string
	typ       attrType
	def       any
	modelName string
}

// attrSet is the declared attribute schema for one node kind. Declaration
// order is preserved so serialization output stays stable.
type attrSet struct {
	defs  map[string]attrDef
	order []string
}

func newAttrSet() *attrSet {
	return &attrSet{defs: make(map[string]attrDef)}
}

func (s *attrSet) add(name string, typ attrType, def any) *attrSet {
	return s.addWithModel(name, typ, def, "")
}

// addWithModel declares an attribute whose lookup falls through to the
// model-level attribute modelName before hitting the declared default.
func (s *attrSet) addWithModel(name string, typ attrType, def any, modelName string) *attrSet {
	if _, exists := s.defs[name]; !exists {
		s.order = append(s.order, name)
	}
	s.defs[name] = attrDef{name: name, typ: typ, def: def, modelName: modelName}
	return s
}

func (s *attrSet) def(name string) (attrDef, bool) {
	d, ok := s.defs[name]
	return d, ok
}

// resolve walks the fallback chain: explicit node value, then the model's
// global attribute (if a model name is declared), then the declared default.
func (s *attrSet) resolve(name string, attrs map[string]any, model *Model) any {
	if v, ok := attrs[name]; ok {
		return v
	}
	d, ok := s.defs[name]
	if !ok {
		return nil
	}
	if d.modelName != "" && model != nil {
		if v, ok := model.attrs[d.modelName]; ok {
			return v
		}
	}
	return d.def
}

// accepts reports whether value matches the declared type. The id attribute
// and JSON payloads accept anything JSON-safe.
func (d attrDef) accepts(value any) bool {
	if value == nil {
		return false
	}
	switch d.typ {
	case attrString:
		_, ok := value.(string)
		return ok
	case attrNumber:
		switch value.(type) {
		case float64, int:
			return true
		}
		return false
	case attrBool:
		_, ok := value.(bool)
		return ok
	default:
		return true
	}
}

// normalize coerces accepted values to their canonical Go type (ints from
// programmatic callers become float64 to match JSON decoding).
func (d attrDef) normalize(value any) any {
	if d.typ == attrNumber {
		if i, ok := value.(int); ok {
			return float64(i)
		}
	}
	return value
}

// fromJSON copies declared attributes out of a decoded JSON object into the
// sparse per-node map. Values of the wrong type are dropped; unknown keys are
// ignored so documents written by newer versions still load.
func (s *attrSet) fromJSON(src map[string]any, dst map[string]any) {
	for _, name := range s.order {
		v, ok := src[name]
		if !ok || v == nil {
			continue
		}
		d := s.defs[name]
		if !d.accepts(v) {
			continue
		}
		dst[name] = d.normalize(v)
	}
}

// toJSON writes only explicitly set attributes, so defaulted values never
// reappear as overrides after a round trip.
func (s *attrSet) toJSON(attrs map[string]any, dst map[string]any) {
	for _, name := range s.order {
		if v, ok := attrs[name]; ok {
			dst[name] = v
		}
	}
}

// update merges a partial attribute set. Unknown names and values of the
// wrong type are skipped: the reducer tolerates malformed-but-plausible
// input rather than failing the whole action. Setting a key to nil removes
// the explicit override.
func (s *attrSet) update(attrs map[string]any, patch map[string]any) {
	for name, v := range patch {
		d, ok := s.defs[name]
		if !ok {
			continue
		}
		if v == nil {
			delete(attrs, name)
			continue
		}
		if !d.accepts(v) {
			continue
		}
		attrs[name] = d.normalize(v)
	}
}

func attrBoolValue(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func attrFloatValue(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

func attrStringValue(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}
