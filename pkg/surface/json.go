package surface

import (
	"encoding/json"
	"io"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
)

// JSONRenderer marshals a Report to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *ashtakavarga.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
