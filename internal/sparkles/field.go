package sparkles

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field is a fixed-size, slot-stable collection of particles. Expired
// particles are regenerated in place, so slot order never changes.
//
// A Field is not safe for concurrent use; Animator serializes access.
type Field struct {
	props     Props
	rand      RandFunc
	now       func() time.Time
	logger    *zap.Logger
	particles []Particle
	elapsed   time.Duration
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithRand sets the random source. Tests pass deterministic sequences.
func WithRand(r RandFunc) FieldOption {
	return func(f *Field) {
		if r != nil {
			f.rand = r
		}
	}
}

// WithNow sets the wall clock used to stamp particle ids.
func WithNow(now func() time.Time) FieldOption {
	return func(f *Field) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger sets the logger for regeneration events.
func WithLogger(l *zap.Logger) FieldOption {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewField creates a field and synchronously generates its initial batch.
func NewField(props Props, opts ...FieldOption) *Field {
	f := &Field{
		props:  props.WithDefaults(),
		rand:   DefaultRand,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.particles = make([]Particle, f.props.Count)
	for i := range f.particles {
		f.particles[i] = f.Generate()
	}
	f.logger.Debug("sparkle field created",
		zap.Int("count", f.props.Count),
		zap.String("first", f.props.Colors.First),
		zap.String("second", f.props.Colors.Second))
	return f
}

// Generate draws a fresh particle. Draw order: x, y, color, delay, scale, lifespan.
func (f *Field) Generate() Particle {
	x := f.rand() * 100
	y := f.rand() * 100

	color := f.props.Colors.Second
	if f.rand() < 0.5 {
		color = f.props.Colors.First
	}

	delay := f.rand() * MaxDelay
	scale := f.rand()*ScaleSpread + MinScale
	lifespan := f.rand()*LifeSpread + MinLifespan

	return Particle{
		ID:       newID(x, y, f.now()),
		X:        x,
		Y:        y,
		Color:    color,
		Delay:    delay,
		Scale:    scale,
		Lifespan: lifespan,
		Born:     f.elapsed,
	}
}

// Tick advances the field by one Period. Expired slots are regenerated,
// the rest lose Decrement of their lifespan. It returns the number of
// regenerated slots.
func (f *Field) Tick() int {
	f.elapsed += Period

	regenerated := 0
	for i, p := range f.particles {
		if p.Lifespan <= 0 {
			f.particles[i] = f.Generate()
			regenerated++
			continue
		}
		f.particles[i].Lifespan = p.Lifespan - Decrement
	}

	if regenerated > 0 {
		f.logger.Debug("sparkles regenerated",
			zap.Int("count", regenerated),
			zap.Duration("elapsed", f.elapsed))
	}
	return regenerated
}

// Particles returns a copy of the slots in order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Len returns the number of slots.
func (f *Field) Len() int {
	return len(f.particles)
}

// Elapsed returns the field clock: the number of ticks times Period.
func (f *Field) Elapsed() time.Duration {
	return f.elapsed
}

// Props returns the defaulted props the field was created with.
func (f *Field) Props() Props {
	return f.props
}

// FrameOf samples the particle's animation at the current field clock.
func (f *Field) FrameOf(p Particle) Frame {
	return SparkleKeyframes(p.Scale).Sample(f.elapsed - p.Born - seconds(p.Delay))
}

// newID derives a render key from position and creation time. The uuid
// suffix keeps keys unique when two draws land on the same spot in the
// same millisecond.
func newID(x, y float64, at time.Time) string {
	return fmt.Sprintf("%.4f%%-%.4f%%-%d-%s", x, y, at.UnixMilli(), uuid.NewString())
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
