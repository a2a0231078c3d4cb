package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sparkle/internal/router"
	"github.com/abhisek/sparkle/internal/screen"
	"github.com/abhisek/sparkle/internal/screens/landing"
	"github.com/abhisek/sparkle/internal/screens/welcome"
	"github.com/abhisek/sparkle/internal/sparkles"
	"github.com/abhisek/sparkle/internal/ui/components"
	"github.com/abhisek/sparkle/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Props       sparkles.Props
	Logger      *zap.Logger
	Rand        sparkles.RandFunc
	SkipWelcome bool

	// Reload delivers props from a config file reload. Nil disables reloads.
	Reload <-chan sparkles.Props
}

// propsReloadedMsg carries reloaded props into the update loop.
type propsReloadedMsg struct {
	props sparkles.Props
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	reload <-chan sparkles.Props
	page   *pageState
	width  int
	height int
}

// pageState tracks the landing page so reloads reach it even while it is
// covered, or before the welcome splash has built it.
type pageState struct {
	props   sparkles.Props
	landing *landing.LandingScreen
}

// newAppModel creates a new AppModel starting at the welcome splash, or
// directly at the landing page when SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sparkleOpts := []components.SparklesOption{components.WithSparklesLogger(logger)}
	if opts.Rand != nil {
		sparkleOpts = append(sparkleOpts, components.WithSparklesRand(opts.Rand))
	}

	ps := &pageState{props: opts.Props}
	page := func() screen.Screen {
		ps.landing = landing.New(ps.props, logger, sparkleOpts...)
		return ps.landing
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = page()
	} else {
		initial = welcome.New(page, opts.Props.WithDefaults().Colors, sparkleOpts...)
	}

	return AppModel{
		router: router.New(initial),
		logger: logger,
		reload: opts.Reload,
		page:   ps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.waitForReload())
}

// waitForReload blocks on the reload channel and turns the next value into
// a message. It returns nil when reloads are disabled or the channel closed.
func (m AppModel) waitForReload() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	ch := m.reload
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return propsReloadedMsg{props: p}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case propsReloadedMsg:
		m.logger.Info("applying reloaded props", zap.Int("count", msg.props.Count))
		m.page.props = msg.props
		var cmd tea.Cmd
		if m.page.landing != nil {
			cmd = m.page.landing.ApplyProps(msg.props)
		}
		return m, tea.Batch(cmd, m.waitForReload())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("quit requested")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "sparkle"
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
