// Package surface defines output rendering interfaces for Grahabala results.
// Implementations handle different output targets: terminal and JSON.
// The engine itself emits plain numeric structures with no formatting.
package surface

import (
	"io"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
)

// Renderer produces formatted output from a scoring Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *ashtakavarga.Report) error
}
