package chart

import (
	"fmt"
	"math"
	"time"
)

// SignOf resolves an absolute sidereal ecliptic longitude (degrees) to its
// zodiac sign. The longitude is reduced into [0,360) first, so any finite
// value (including negatives and multiples of 360) maps to a valid sign.
// This is the single normalization rule used everywhere in the engine.
func SignOf(longitude float64) Sign {
	norm := math.Mod(longitude, 360)
	if norm < 0 {
		norm += 360
	}
	return Sign(int(norm/30) % NumSigns)
}

// RelativeHouse counts houses from a reference sign to a target sign, the
// classical inclusive counting rule: the reference's own sign is house 1,
// the next sign house 2, wrapping after 12. The result is always in [1,12].
func RelativeHouse(from, to Sign) int {
	return int((to-from)%NumSigns+NumSigns)%NumSigns + 1
}

// Location is a geographic point for which a chart was cast.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// Chart is a point-in-time positional view of the eight bodies.
// Charts are immutable once created.
type Chart struct {
	Longitudes [NumBodies]float64 `json:"longitudes"` // sidereal degrees, [Sun..Saturn, Ascendant]
	Signs      [NumBodies]Sign    `json:"signs"`
	CastAt     time.Time          `json:"cast_at"`
	Location   Location           `json:"location"`
}

// New builds a Chart from a length-8 longitude slice ordered
// [Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Ascendant].
// Wrong arity or a non-finite value is rejected; longitudes are never
// silently defaulted.
func New(longitudes []float64) (*Chart, error) {
	if len(longitudes) != NumBodies {
		return nil, fmt.Errorf("chart requires %d longitudes, got %d", NumBodies, len(longitudes))
	}

	c := &Chart{}
	for i, lon := range longitudes {
		if math.IsNaN(lon) || math.IsInf(lon, 0) {
			return nil, fmt.Errorf("longitude for %s is not finite: %v", Body(i), lon)
		}
		c.Longitudes[i] = lon
		c.Signs[i] = SignOf(lon)
	}
	return c, nil
}

// SignOfBody returns the resolved sign for one body.
func (c *Chart) SignOfBody(b Body) Sign {
	return c.Signs[b]
}
