package landing

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparkle/internal/router"
	"github.com/abhisek/sparkle/internal/screens/customize"
	"github.com/abhisek/sparkle/internal/sparkles"
	"github.com/abhisek/sparkle/internal/ui/components"
)

func newTestLanding() *LandingScreen {
	l := New(sparkles.Props{Text: "Magic UI", Count: 3}, nil,
		components.WithSparklesRand(func() float64 { return 0 }))
	l.Init()
	return l
}

func TestLanding_InitMountsSparkles(t *testing.T) {
	l := newTestLanding()
	require.True(t, l.Sparkles().Mounted())
	assert.Equal(t, 3, l.Sparkles().Field().Len())
}

func TestLanding_ForwardsTicks(t *testing.T) {
	l := newTestLanding()
	s := l.Sparkles()

	cmd := s.Mount()
	msg := cmd().(components.SparkleTickMsg)

	_, next := l.Update(msg)
	require.NotNil(t, next)
	for _, p := range s.Field().Particles() {
		assert.InDelta(t, 4.9, p.Lifespan, 1e-9)
	}
}

func TestLanding_UnmountDropsTicks(t *testing.T) {
	l := newTestLanding()
	msg := l.Sparkles().Mount()().(components.SparkleTickMsg)

	l.Unmount()
	_, cmd := l.Update(msg)
	assert.Nil(t, cmd)
	assert.False(t, l.Sparkles().Mounted())
}

func TestLanding_RemountKey(t *testing.T) {
	l := newTestLanding()
	before := l.Sparkles().Field().Particles()

	_, cmd := l.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	for i, p := range l.Sparkles().Field().Particles() {
		assert.NotEqual(t, before[i].ID, p.ID)
	}
}

func TestLanding_CustomizePushesEditor(t *testing.T) {
	l := newTestLanding()

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*customize.CustomizeScreen)
	assert.True(t, ok)
}

func TestLanding_SavedPropsApplyOnRemount(t *testing.T) {
	l := newTestLanding()
	r := router.New(l)

	editor := customize.New(l.Sparkles().Props(), l.ApplyProps)
	r.Push(editor)
	assert.False(t, l.Sparkles().Mounted(), "covered landing should be unmounted")

	assert.Nil(t, l.ApplyProps(sparkles.Props{Text: "New", Count: 5}))
	r.Pop()

	require.True(t, l.Sparkles().Mounted())
	assert.Equal(t, 5, l.Sparkles().Field().Len())
	assert.Equal(t, "New", l.Sparkles().Props().Text)
}

func TestLanding_View(t *testing.T) {
	l := newTestLanding()

	view := l.View(100, 34)
	assert.Contains(t, view, "Magic UI")
	assert.Contains(t, view, "Sparkle")
	assert.Contains(t, view, "CUSTOMIZE")
}

func TestLanding_ViewCompactHidesBeams(t *testing.T) {
	l := newTestLanding()

	view := l.View(100, 14)
	assert.Contains(t, view, "Magic UI")
	assert.NotContains(t, view, "Messenger")
}

func TestRenderBeams(t *testing.T) {
	beams := renderBeams()
	lines := strings.Split(beams, "\n")

	assert.Len(t, lines, beamsHeight)
	for _, label := range append(leftNodes[:], append(rightNodes[:], hubNode)...) {
		assert.Contains(t, beams, label)
	}
	assert.Contains(t, lines[5], "┼")
}

func TestLanding_ApplyPropsWhileMountedKeepsTicking(t *testing.T) {
	l := newTestLanding()

	cmd := l.ApplyProps(sparkles.Props{Text: "Live", Count: 4})
	require.NotNil(t, cmd, "remount must hand back the first tick")
	tick, ok := cmd().(components.SparkleTickMsg)
	require.True(t, ok)

	_, next := l.Update(tick)
	assert.NotNil(t, next)
	assert.Equal(t, 4, l.Sparkles().Field().Len())
}
