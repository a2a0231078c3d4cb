package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — night sky with violet/pink highlights
var (
	Primary   = lipgloss.Color("#9E7AFF") // Violet
	Secondary = lipgloss.Color("#FE8BBB") // Pink
	Accent    = lipgloss.Color("#F5C46B") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Beam      = lipgloss.Color("#64748B") // Steel
)

// BackgroundHex is BgDark as a hex string, the color sparkles fade into.
const BackgroundHex = "#0F172A"

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Label is the default sparkles label: large, bold, white.
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Node = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Foreground(Text).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// classes maps label class names to styles.
var classes = map[string]lipgloss.Style{
	"title":    Title,
	"subtitle": Subtitle,
	"body":     Body,
	"hint":     Hint,
	"label":    Label,
}

// Class resolves a class name to a label style. Unknown and empty names
// fall back to Label.
func Class(name string) lipgloss.Style {
	if s, ok := classes[name]; ok {
		return s
	}
	return Label
}

// ClassNames returns the names Class recognizes.
func ClassNames() []string {
	return []string{"body", "hint", "label", "subtitle", "title"}
}
