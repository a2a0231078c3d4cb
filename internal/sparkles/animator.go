package sparkles

import (
	"context"
	"errors"
	"sync"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyStarted is returned when Start is called on a running animator.
	ErrAlreadyStarted = errors.New("sparkles: animator already started")

	// ErrStopped is returned when Start is called after Stop.
	ErrStopped = errors.New("sparkles: animator stopped")
)

// Animator owns the periodic timer that ticks a Field. The timer is
// acquired by Start and released exactly once, by Stop or by cancellation
// of the context passed to Start.
type Animator struct {
	mu      sync.Mutex
	field   *Field
	clock   clock.Clock
	onTick  func([]Particle)
	logger  *zap.Logger
	started bool
	stopped bool
	ticks   int
	cancel  context.CancelFunc

	release sync.Once
	done    chan struct{}
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithClock sets the clock the ticker is drawn from.
func WithClock(c clock.Clock) AnimatorOption {
	return func(a *Animator) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithOnTick registers a callback that receives a snapshot after every tick.
// The callback must not call Stop; cancel the Start context instead.
func WithOnTick(fn func([]Particle)) AnimatorOption {
	return func(a *Animator) {
		a.onTick = fn
	}
}

// WithAnimatorLogger sets the lifecycle logger.
func WithAnimatorLogger(l *zap.Logger) AnimatorOption {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnimator wraps field. Nothing ticks until Start.
func NewAnimator(field *Field, opts ...AnimatorOption) *Animator {
	a := &Animator{
		field:  field,
		clock:  clock.New(),
		logger: zap.NewNop(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start acquires the ticker and begins ticking every Period until Stop is
// called or ctx is cancelled.
func (a *Animator) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return ErrStopped
	}
	if a.started {
		return ErrAlreadyStarted
	}
	a.started = true

	ctx, a.cancel = context.WithCancel(ctx)
	ticker := a.clock.Ticker(Period)

	a.logger.Debug("sparkle animator started", zap.Int("count", a.field.Len()))
	go a.run(ctx, ticker)
	return nil
}

func (a *Animator) run(ctx context.Context, ticker *clock.Ticker) {
	defer close(a.done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.releaseOnce()
			return
		case <-ticker.C:
			a.mu.Lock()
			if a.stopped {
				a.mu.Unlock()
				return
			}
			a.field.Tick()
			a.ticks++
			snap := a.field.Particles()
			onTick := a.onTick
			a.mu.Unlock()

			if onTick != nil {
				onTick(snap)
			}
		}
	}
}

// Stop releases the timer and waits for the tick goroutine to exit. It is
// safe to call more than once. After Stop returns the field is no longer
// mutated and no callback fires.
func (a *Animator) Stop() {
	a.releaseOnce()

	a.mu.Lock()
	started := a.started
	a.mu.Unlock()
	if started {
		<-a.done
	}
}

func (a *Animator) releaseOnce() {
	a.release.Do(func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		a.stopped = true
		if a.cancel != nil {
			a.cancel()
		}
		if !a.started {
			close(a.done)
		}
		a.logger.Debug("sparkle animator stopped", zap.Int("ticks", a.ticks))
	})
}

// Snapshot returns a copy of the field's particles.
func (a *Animator) Snapshot() []Particle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.field.Particles()
}

// Ticks returns the number of ticks applied so far.
func (a *Animator) Ticks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// Done is closed once the animator has released its timer.
func (a *Animator) Done() <-chan struct{} {
	return a.done
}
