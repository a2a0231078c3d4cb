package landing

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sparkle/internal/router"
	"github.com/abhisek/sparkle/internal/screen"
	"github.com/abhisek/sparkle/internal/screens/customize"
	"github.com/abhisek/sparkle/internal/sparkles"
	"github.com/abhisek/sparkle/internal/ui/components"
	"github.com/abhisek/sparkle/internal/ui/layout"
)

const (
	buttonWidth = 14

	// sparkle field size around the label
	fieldPadX   = 12
	fieldHeight = 7
	minFieldW   = 30
)

// LandingScreen is the page: sparkles text above the beams diagram.
type LandingScreen struct {
	sparkles *components.SparklesText
	menu     components.Menu
	logger   *zap.Logger
}

var (
	_ screen.Screen          = (*LandingScreen)(nil)
	_ screen.Lifecycle       = (*LandingScreen)(nil)
	_ screen.KeyHintProvider = (*LandingScreen)(nil)
)

// New creates the landing screen. Sparkles start on Init.
func New(props sparkles.Props, logger *zap.Logger, opts ...components.SparklesOption) *LandingScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &LandingScreen{
		sparkles: components.NewSparklesText(props, append(opts, components.WithSparklesLogger(logger))...),
		logger:   logger,
	}

	l.menu = components.NewMenu([]components.MenuItem{
		{Label: "CUSTOMIZE", Action: func() tea.Cmd {
			editor := customize.New(l.sparkles.Props(), l.ApplyProps)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: editor}
			}
		}},
		{Label: "REMOUNT", Action: l.remount},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return l
}

func (l *LandingScreen) Init() tea.Cmd {
	return l.Mount()
}

// Mount starts the sparkles with a fresh batch.
func (l *LandingScreen) Mount() tea.Cmd {
	return l.sparkles.Mount()
}

// Unmount stops the sparkles.
func (l *LandingScreen) Unmount() {
	l.sparkles.Unmount()
}

func (l *LandingScreen) remount() tea.Cmd {
	l.logger.Info("remounting sparkles")
	l.sparkles.Unmount()
	return l.sparkles.Mount()
}

// ApplyProps replaces the sparkle props. A mounted field remounts at once
// with a fresh batch; a covered one picks them up on its next Mount.
func (l *LandingScreen) ApplyProps(p sparkles.Props) tea.Cmd {
	l.logger.Info("sparkle props changed",
		zap.String("text", p.Text),
		zap.Int("count", p.Count),
		zap.String("first", p.Colors.First),
		zap.String("second", p.Colors.Second),
		zap.Bool("mounted", l.sparkles.Mounted()))
	return l.sparkles.SetProps(p)
}

// Sparkles exposes the sparkles component.
func (l *LandingScreen) Sparkles() *components.SparklesText {
	return l.sparkles
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SparkleTickMsg:
		return l, l.sparkles.Update(msg)

	case tea.KeyPressMsg:
		if msg.String() == "r" {
			return l, l.remount()
		}
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := l.sparkles.Props().Text
	fw := min(max(lipgloss.Width(label)+2*fieldPadX, minFieldW), cw)

	sections := []string{l.sparkles.View(fw, fieldHeight), ""}

	// The diagram needs its full height plus menu and gaps.
	if !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) && width >= beamsWidth()+4 {
		sections = append(sections, renderBeams(), "")
	}

	sections = append(sections, l.menu.View(buttonWidth))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.PageFrame(content, width, height)
}

func (l *LandingScreen) Title() string {
	return "Home"
}

// KeyHints returns the footer hints for the landing page.
func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Remount"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
