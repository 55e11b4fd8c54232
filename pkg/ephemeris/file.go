package ephemeris

import (
	"context"
	"fmt"
	"time"

	"github.com/grahabala/grahabala/pkg/chart"
)

// FileProvider reads positions from a chart JSON file on disk. The instant
// and location arguments are ignored: the file already fixes them.
type FileProvider struct {
	Path string
}

func (p *FileProvider) Positions(ctx context.Context, at time.Time, loc chart.Location) ([]float64, error) {
	c, err := chart.Load(p.Path)
	if err != nil {
		return nil, fmt.Errorf("loading chart file: %w", err)
	}
	return c.Longitudes[:], nil
}
