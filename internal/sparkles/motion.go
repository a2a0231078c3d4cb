package sparkles

import (
	"math"
	"time"
)

// CycleDuration is the length of one entrance/peak/exit pulse.
const CycleDuration = 800 * time.Millisecond

// Keyframes describes a repeating three-stop tween. Stops are evenly
// spaced across Duration.
type Keyframes struct {
	Opacity  [3]float64
	Scale    [3]float64
	Rotate   [3]float64
	Duration time.Duration
}

// Frame is one sampled animation state.
type Frame struct {
	Opacity float64
	Scale   float64
	Rotate  float64 // degrees
}

// Visible reports whether the frame would draw anything.
func (fr Frame) Visible() bool {
	return fr.Opacity > 0 && fr.Scale > 0
}

// SparkleKeyframes returns the pulse for a particle with the given peak scale.
func SparkleKeyframes(peak float64) Keyframes {
	return Keyframes{
		Opacity:  [3]float64{0, 1, 0},
		Scale:    [3]float64{0, peak, 0},
		Rotate:   [3]float64{75, 120, 150},
		Duration: CycleDuration,
	}
}

// Sample returns the state t into the repeating cycle. Negative t means
// the delay has not elapsed yet and yields the initial hidden state.
func (k Keyframes) Sample(t time.Duration) Frame {
	if t < 0 || k.Duration <= 0 {
		return Frame{Opacity: 0, Scale: 0, Rotate: k.Rotate[0]}
	}

	pos := float64(t%k.Duration) / float64(k.Duration) // [0,1)

	// Two segments between three stops.
	seg := 0
	local := pos * 2
	if local >= 1 {
		seg = 1
		local--
	}
	e := easeInOut(local)

	return Frame{
		Opacity: lerp(k.Opacity[seg], k.Opacity[seg+1], e),
		Scale:   lerp(k.Scale[seg], k.Scale[seg+1], e),
		Rotate:  lerp(k.Rotate[seg], k.Rotate[seg+1], e),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func easeInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}
