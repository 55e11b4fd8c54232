// Package chart defines the core positional data model for Grahabala.
// These types are the shared vocabulary across all modules.
package chart

// Body identifies one of the eight bodies that participate in Ashtakavarga:
// the seven classical planets plus the Ascendant (Lagna).
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Ascendant
)

// NumBodies is the number of contributing bodies (7 planets + Ascendant).
const NumBodies = 8

// NumPlanets is the number of scoring targets. The Ascendant contributes
// bindus but is never itself scored.
const NumPlanets = 7

var bodyNames = [NumBodies]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Ascendant",
}

// String returns the body's English name.
func (b Body) String() string {
	if b < 0 || b >= NumBodies {
		return "Unknown"
	}
	return bodyNames[b]
}

// IsPlanet reports whether the body is a valid scoring target.
func (b Body) IsPlanet() bool {
	return b >= Sun && b < Ascendant
}

// Planets returns the seven scoring targets in canonical order.
func Planets() [NumPlanets]Body {
	return [NumPlanets]Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
}

// Bodies returns all eight contributing bodies in canonical order.
func Bodies() [NumBodies]Body {
	return [NumBodies]Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Ascendant}
}

// Sign is a zodiac sign index in [0,11], Aries through Pisces.
type Sign int

// NumSigns is the number of zodiac signs.
const NumSigns = 12

var signNames = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign's English name.
func (s Sign) String() string {
	if s < 0 || s >= NumSigns {
		return "Unknown"
	}
	return signNames[s]
}

// Valid reports whether the sign index is in [0,11].
func (s Sign) Valid() bool {
	return s >= 0 && s < NumSigns
}
