// Package codec exports the fund graph to external formats.
package codec

import (
	"io"

	"fundgraph/internal/domain"
)

// Exporter writes the full graph state to a stream
type Exporter interface {
	Export(graph *domain.GraphExport, w io.Writer) error
	Format() string
	ContentType() string
}

// ForFormat returns the stream exporter for a format name
func ForFormat(format string) (Exporter, bool) {
	switch format {
	case "json":
		return NewJSONCodec(), true
	case "yaml", "yml":
		return NewYAMLCodec(), true
	}
	return nil, false
}
