package domain

// GraphSnapshot is the derived view handed to the graph renderer.
// Nodes and Links alias live storage and must be treated as read-only.
type GraphSnapshot struct {
	Nodes     []Fund       `json:"nodes" yaml:"nodes"`
	Links     []Link       `json:"links" yaml:"links"`
	Attribute Attribute    `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Config    RenderConfig `json:"config" yaml:"config"`
}

// RenderConfig is the presentation configuration passed to the renderer
type RenderConfig struct {
	Width          int    `json:"width" yaml:"width"`
	Height         int    `json:"height" yaml:"height"`
	NodeColor      string `json:"node_color" yaml:"node_color"`
	NodeSize       int    `json:"node_size" yaml:"node_size"`
	HighlightColor string `json:"highlight_color" yaml:"highlight_color"`
	LinkColor      string `json:"link_color" yaml:"link_color"`
	LinkHighlight  string `json:"link_highlight_color" yaml:"link_highlight_color"`
	ShowLinkLabels bool   `json:"show_link_labels" yaml:"show_link_labels"`
}

// DefaultRenderConfig returns the canvas and styling used when none is configured
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:          800,
		Height:         400,
		NodeColor:      "lightgreen",
		NodeSize:       120,
		HighlightColor: "blue",
		LinkColor:      "#d3d3d3",
		LinkHighlight:  "lightblue",
		ShowLinkLabels: true,
	}
}

// GraphStats summarizes the graph for the stats endpoint
type GraphStats struct {
	NodeCount  int               `json:"node_count"`
	LinkCounts map[Attribute]int `json:"link_counts"`
	Active     Attribute         `json:"active,omitempty"`
}

// GraphExport is the full graph state: every node and every attribute's links
type GraphExport struct {
	Nodes  []Fund               `json:"nodes" yaml:"nodes"`
	Links  map[Attribute][]Link `json:"links" yaml:"links"`
	Active Attribute            `json:"active,omitempty" yaml:"active,omitempty"`
}
