// Package ephemeris supplies sidereal longitudes to the scoring engine.
// The engine consumes a length-8 degree array ordered [Sun..Saturn, Ascendant];
// how those positions are computed (and which ayanamsa convention they follow)
// is entirely the provider's responsibility.
package ephemeris

import (
	"context"
	"time"

	"github.com/grahabala/grahabala/pkg/chart"
)

// Provider produces the eight sidereal longitudes for an instant and location.
type Provider interface {
	// Positions returns degrees ordered [Sun, Moon, Mars, Mercury, Jupiter,
	// Venus, Saturn, Ascendant].
	Positions(ctx context.Context, at time.Time, loc chart.Location) ([]float64, error)
}

// Static is a Provider returning fixed positions. Useful for tests and for
// replaying a known chart.
type Static struct {
	Longitudes []float64
}

func (s *Static) Positions(ctx context.Context, at time.Time, loc chart.Location) ([]float64, error) {
	out := make([]float64, len(s.Longitudes))
	copy(out, s.Longitudes)
	return out, nil
}
