package codec

import (
	"fmt"
	"io"

	"fundgraph/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// ContentType returns the MIME type of the output
func (c *YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// yamlGraph fixes bucket order so output is stable across runs
type yamlGraph struct {
	Active string       `yaml:"active,omitempty"`
	Funds  []yamlFund   `yaml:"funds"`
	Links  []yamlBucket `yaml:"links"`
}

type yamlFund struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Manager string  `yaml:"manager"`
	Year    int     `yaml:"year"`
	Type    string  `yaml:"type"`
	Status  string  `yaml:"status"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}

type yamlBucket struct {
	Attribute string     `yaml:"attribute"`
	Links     []yamlLink `yaml:"links"`
}

type yamlLink struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Label  string `yaml:"label"`
}

// Export exports graph data to YAML
func (c *YAMLCodec) Export(graph *domain.GraphExport, w io.Writer) error {
	yg := yamlGraph{
		Active: string(graph.Active),
		Funds:  make([]yamlFund, 0, len(graph.Nodes)),
		Links:  make([]yamlBucket, 0, domain.AttributeCount),
	}

	for _, f := range graph.Nodes {
		yg.Funds = append(yg.Funds, yamlFund{
			ID:      f.ID,
			Name:    f.Name,
			Manager: f.Manager,
			Year:    f.Year,
			Type:    string(f.Type),
			Status:  f.Status(),
			X:       f.Position.X,
			Y:       f.Position.Y,
		})
	}

	for _, attr := range domain.Attributes() {
		bucket := yamlBucket{Attribute: string(attr), Links: make([]yamlLink, 0)}
		for _, l := range graph.Links[attr] {
			bucket.Links = append(bucket.Links, yamlLink{Source: l.Source, Target: l.Target, Label: l.Label})
		}
		yg.Links = append(yg.Links, bucket)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(yg); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
