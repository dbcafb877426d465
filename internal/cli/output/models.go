package output

// ValidationReport is the data payload of `validate --json`.
type ValidationReport struct {
	Valid   bool   `json:"valid"`
	File    string `json:"file,omitempty"`
	Tabs    int    `json:"tabs"`
	TabSets int    `json:"tabsets"`
	Borders int    `json:"borders"`
	Problem string `json:"problem,omitempty"`
}

// NodeInfo is one row of `inspect --json`.
type NodeInfo struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Path      string  `json:"path"`
	Name      string  `json:"name,omitempty"`
	Component string  `json:"component,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
	Selected  *int    `json:"selected,omitempty"`
	Rect      RectDTO `json:"rect"`
}

type RectDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type InspectReport struct {
	File  string     `json:"file,omitempty"`
	Nodes []NodeInfo `json:"nodes"`
	Total int        `json:"total"`
}

// ApplyReport is the data payload of `apply --json`.
type ApplyReport struct {
	File    string `json:"file"`
	Out     string `json:"out"`
	Applied int    `json:"applied"`
}

type PresetSummary struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
}

type PresetList struct {
	Presets []PresetSummary `json:"presets"`
	Total   int             `json:"total"`
}

type PresetExport struct {
	Name    string `json:"name"`
	Format  string `json:"format"`
	Content string `json:"content"`
}
