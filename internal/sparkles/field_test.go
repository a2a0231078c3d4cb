package sparkles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constRand(v float64) RandFunc {
	return func() float64 { return v }
}

// seqRand cycles through vals.
func seqRand(vals ...float64) RandFunc {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewField_ZeroRandScenario(t *testing.T) {
	colors := DefaultColors()
	f := NewField(Props{Text: "Magic UI", Count: 3}, WithRand(constRand(0)), WithNow(fixedNow))

	ps := f.Particles()
	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, 0.0, p.X)
		assert.Equal(t, 0.0, p.Y)
		assert.Equal(t, colors.First, p.Color)
		assert.InDelta(t, 0.3, p.Scale, 1e-9)
		assert.Equal(t, 0.0, p.Delay)
		assert.InDelta(t, 5.0, p.Lifespan, 1e-9)
	}

	f.Tick()
	after := f.Particles()
	require.Len(t, after, 3)
	for i, p := range after {
		assert.InDelta(t, 4.9, p.Lifespan, 1e-9)
		assert.Equal(t, ps[i].ID, p.ID, "id must survive a plain decay tick")
	}
}

func TestNewField_Defaults(t *testing.T) {
	f := NewField(Props{Text: "hi"})
	assert.Equal(t, DefaultCount, f.Len())
	assert.Equal(t, DefaultColors(), f.Props().Colors)
}

func TestNewField_NonPositiveCountTakesDefault(t *testing.T) {
	for _, n := range []int{0, -3} {
		f := NewField(Props{Count: n})
		assert.Equal(t, DefaultCount, f.Len(), "count %d", n)
		assert.Equal(t, DefaultCount, f.Props().Count, "count %d", n)
	}
}

func TestNewField_PartialColors(t *testing.T) {
	f := NewField(Props{Count: 2, Colors: Colors{First: "#000000"}})
	assert.Equal(t, "#000000", f.Props().Colors.First)
	assert.Equal(t, DefaultColors().Second, f.Props().Colors.Second)
}

func TestGenerate_DrawOrder(t *testing.T) {
	// x, y, color, delay, scale, lifespan
	f := NewField(Props{Count: 1}, WithRand(seqRand(0.25, 0.5, 0.75, 0.5, 0.5, 0.5)))
	p := f.Generate()

	assert.InDelta(t, 25.0, p.X, 1e-9)
	assert.InDelta(t, 50.0, p.Y, 1e-9)
	assert.Equal(t, DefaultColors().Second, p.Color)
	assert.InDelta(t, 1.0, p.Delay, 1e-9)
	assert.InDelta(t, 0.8, p.Scale, 1e-9)
	assert.InDelta(t, 10.0, p.Lifespan, 1e-9)
}

func TestGenerate_UniqueIDs(t *testing.T) {
	f := NewField(Props{Count: 50}, WithRand(constRand(0)), WithNow(fixedNow))

	seen := make(map[string]bool)
	for _, p := range f.Particles() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestTick_Cardinality(t *testing.T) {
	for _, count := range []int{1, 3, 10, 64} {
		f := NewField(Props{Count: count})
		for i := 0; i < 300; i++ {
			f.Tick()
			require.Equal(t, count, f.Len())
		}
	}
}

func TestTick_ReplacesExpired(t *testing.T) {
	f := NewField(Props{Count: 4}, WithRand(constRand(0)))

	replaced := 0
	for i := 0; i < 80; i++ {
		before := f.Particles()
		n := f.Tick()
		after := f.Particles()

		expired := 0
		for j := range before {
			if before[j].Lifespan > 0 {
				continue
			}
			expired++
			assert.NotEqual(t, before[j].ID, after[j].ID)
			assert.GreaterOrEqual(t, after[j].Lifespan, MinLifespan)
			assert.Less(t, after[j].Lifespan, MinLifespan+LifeSpread)
		}
		assert.Equal(t, expired, n)
		replaced += n
	}
	assert.Greater(t, replaced, 0, "expected at least one regeneration within 80 ticks")
}

func TestTick_DecayLeavesOtherFields(t *testing.T) {
	f := NewField(Props{Count: 10})

	for i := 0; i < 30; i++ {
		before := f.Particles()
		f.Tick()
		after := f.Particles()

		for j := range before {
			if before[j].Lifespan <= 0 {
				continue
			}
			want := before[j]
			want.Lifespan -= Decrement
			assert.Equal(t, want, after[j])
		}
	}
}

func TestTick_AdvancesClock(t *testing.T) {
	f := NewField(Props{Count: 1})
	for i := 0; i < 7; i++ {
		f.Tick()
	}
	assert.Equal(t, 700*time.Millisecond, f.Elapsed())
}

func TestParticles_Bounds(t *testing.T) {
	tests := []struct {
		name string
		rand RandFunc
	}{
		{"default", DefaultRand},
		{"zero", constRand(0)},
		{"near one", constRand(0.999999)},
		{"mixed", seqRand(0.1, 0.9, 0.4, 0.6, 0.0, 0.99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := DefaultColors()
			f := NewField(Props{Count: 12}, WithRand(tt.rand))
			for i := 0; i < 200; i++ {
				for _, p := range f.Particles() {
					assert.True(t, p.X >= 0 && p.X < 100, "x=%v", p.X)
					assert.True(t, p.Y >= 0 && p.Y < 100, "y=%v", p.Y)
					assert.True(t, p.Scale >= 0.3 && p.Scale < 1.3, "scale=%v", p.Scale)
					assert.True(t, p.Delay >= 0 && p.Delay < 2, "delay=%v", p.Delay)
					assert.Contains(t, []string{colors.First, colors.Second}, p.Color)
				}
				f.Tick()
			}
		})
	}
}

func TestParticles_ReturnsCopy(t *testing.T) {
	f := NewField(Props{Count: 2})
	ps := f.Particles()
	ps[0].Lifespan = -100

	assert.NotEqual(t, -100.0, f.Particles()[0].Lifespan)
}

func TestFrameOf(t *testing.T) {
	f := NewField(Props{Count: 1}, WithRand(seqRand(0, 0, 0, 0.25, 0.5, 0.5)))
	p := f.Particles()[0]
	require.InDelta(t, 0.5, p.Delay, 1e-9)

	// Delay not elapsed.
	assert.False(t, f.FrameOf(p).Visible())

	// 0.5s delay + 0.4s into the cycle is the peak.
	for i := 0; i < 9; i++ {
		f.Tick()
	}
	fr := f.FrameOf(p)
	assert.InDelta(t, 1.0, fr.Opacity, 1e-9)
	assert.InDelta(t, p.Scale, fr.Scale, 1e-9)
}
