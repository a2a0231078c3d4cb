package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparkle/internal/ui/theme"
)

// Block letters, six rows each, eight columns wide.
var bannerLetters = [][6]string{
	{ // S
		"███████╗",
		"██╔════╝",
		"███████╗",
		"╚════██║",
		"███████║",
		"╚══════╝",
	},
	{ // P
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔═══╝ ",
		"██║     ",
		"╚═╝     ",
	},
	{ // A
		" █████╗ ",
		"██╔══██╗",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	{ // R
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	{ // K
		"██╗  ██╗",
		"██║ ██╔╝",
		"█████╔╝ ",
		"██╔═██╗ ",
		"██║  ██╗",
		"╚═╝  ╚═╝",
	},
	{ // L
		"██╗     ",
		"██║     ",
		"██║     ",
		"██║     ",
		"███████╗",
		"╚══════╝",
	},
	{ // E
		"███████╗",
		"██╔════╝",
		"█████╗  ",
		"██╔══╝  ",
		"███████╗",
		"╚══════╝",
	},
}

const bannerCompact = "S P A R K L E"

// bannerWidth is the column count of the full banner.
const bannerWidth = 8 * 7

func bannerArt() string {
	rows := make([]string, 6)
	for r := range rows {
		var b strings.Builder
		for _, letter := range bannerLetters {
			b.WriteString(letter[r])
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

// RenderBanner returns the SPARKLE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art plus margin.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt())
}
