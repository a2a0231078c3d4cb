package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparkle/internal/router"
	"github.com/abhisek/sparkle/internal/screen"
	"github.com/abhisek/sparkle/internal/sparkles"
	"github.com/abhisek/sparkle/internal/ui/components"
	"github.com/abhisek/sparkle/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2000 * time.Millisecond

	splashSparkles = 24
	fieldHeight    = 14
)

// tickMsg advances the phase clock of the mount that scheduled it.
type tickMsg struct {
	tag  int
	time time.Time
}

// WelcomeScreen shows the banner inside a sparkle field before handing
// over to the landing page.
type WelcomeScreen struct {
	next         func() screen.Screen
	colors       sparkles.Colors
	sparkles     *components.SparklesText
	elapsed      time.Duration
	tag          int
	mounted      bool
	transitioned bool
}

var (
	_ screen.Screen    = (*WelcomeScreen)(nil)
	_ screen.Lifecycle = (*WelcomeScreen)(nil)
)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen, colors sparkles.Colors, opts ...components.SparklesOption) *WelcomeScreen {
	props := sparkles.Props{Count: splashSparkles, Colors: colors}
	return &WelcomeScreen{
		next:     next,
		colors:   props.WithDefaults().Colors,
		sparkles: components.NewSparklesText(props, opts...),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.Mount()
}

// Mount starts the phase clock and the splash sparkles.
func (w *WelcomeScreen) Mount() tea.Cmd {
	w.tag++
	w.mounted = true
	return tea.Batch(w.tick(), w.sparkles.Mount())
}

// Unmount stops both timers.
func (w *WelcomeScreen) Unmount() {
	w.tag++
	w.mounted = false
	w.sparkles.Unmount()
}

func (w *WelcomeScreen) tick() tea.Cmd {
	tag := w.tag
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{tag: tag, time: t}
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !w.mounted || msg.tag != w.tag {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		return w, w.tick()

	case components.SparkleTickMsg:
		return w, w.sparkles.Update(msg)

	case tea.KeyPressMsg:
		// Any key skips the rest of the splash.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var blocks []string

	// Phase 2+: banner
	if w.elapsed >= phase1End {
		blocks = append(blocks, RenderBanner(width))
	}

	// Phase 3+: tagline
	if w.elapsed >= phase2End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Text that shines.")
		blocks = append(blocks, "", tagline)
	}

	label := ""
	if len(blocks) > 0 {
		label = lipgloss.JoinVertical(lipgloss.Center, blocks...)
	}

	fw := min(width, bannerWidth+16)
	fh := min(height-2, fieldHeight)
	field := w.sparkles.ViewWithLabel(label, fw, fh)

	gauge := components.NewGauge(float64(w.elapsed)/float64(totalDur), min(fw, bannerWidth)/2,
		w.colors.First, w.colors.Second)
	content := lipgloss.JoinVertical(lipgloss.Center, field, "", gauge.View())
	if w.elapsed >= totalDur {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		content = lipgloss.JoinVertical(lipgloss.Center, field, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
