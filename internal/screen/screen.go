package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sparkle/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// Lifecycle is an optional interface for screens that own timers. The
// router calls Unmount when the screen is covered or removed and Mount
// when it becomes active again.
type Lifecycle interface {
	Mount() tea.Cmd
	Unmount()
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
