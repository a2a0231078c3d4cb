package sparkles

import (
	"math/rand/v2"
	"time"
)

// Tick timing and particle draw ranges.
const (
	Period    = 100 * time.Millisecond
	Decrement = 0.1

	DefaultCount = 10

	MinScale    = 0.3
	ScaleSpread = 1.0
	MaxDelay    = 2.0
	MinLifespan = 5.0
	LifeSpread  = 10.0
)

// Colors holds the two tints particles are drawn from.
type Colors struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// DefaultColors returns the violet/pink pair.
func DefaultColors() Colors {
	return Colors{First: "#9E7AFF", Second: "#FE8BBB"}
}

// Props configures a sparkle field and the label rendered over it.
type Props struct {
	// Text is the label drawn on top of the particles. Empty renders an empty label.
	Text string

	// Count is the number of concurrently visible particles. Zero and
	// negative values are treated as unset and take DefaultCount, so the
	// zero Props is a working configuration. A field is never empty.
	Count int

	// Colors are the two particle tints. Empty fields take the defaults.
	Colors Colors

	// ClassName is a passthrough styling hook resolved by the renderer.
	ClassName string
}

// WithDefaults returns a copy of p with unset fields filled in. A Count of
// zero or less counts as unset.
func (p Props) WithDefaults() Props {
	if p.Count <= 0 {
		p.Count = DefaultCount
	}
	def := DefaultColors()
	if p.Colors.First == "" {
		p.Colors.First = def.First
	}
	if p.Colors.Second == "" {
		p.Colors.Second = def.Second
	}
	return p
}

// Particle is one sparkle glyph.
type Particle struct {
	// ID is a render key. It changes on every regeneration and is never reused.
	ID string

	// X and Y are percentages of the container, in [0,100).
	X, Y float64

	Color string

	// Delay is the animation phase offset in seconds, in [0,2).
	Delay float64

	// Scale is the peak size multiplier, in [0.3,1.3).
	Scale float64

	// Lifespan counts down by Decrement every tick. At or below zero the
	// particle is regenerated on the next tick.
	Lifespan float64

	// Born is the field clock reading when the particle was generated.
	Born time.Duration
}

// RandFunc returns a pseudo-random number in [0,1).
type RandFunc func() float64

// DefaultRand draws from math/rand/v2's global source.
func DefaultRand() float64 {
	return rand.Float64()
}
