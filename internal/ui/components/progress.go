package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abhisek/sparkle/internal/ui/theme"
)

// Gauge is a horizontal bar whose filled part fades from one sparkle
// color into the other.
type Gauge struct {
	Percent float64
	Width   int
	From    string
	To      string
}

// NewGauge creates a gauge tinted with the given hex colors.
func NewGauge(percent float64, width int, from, to string) Gauge {
	return Gauge{
		Percent: percent,
		Width:   width,
		From:    from,
		To:      to,
	}
}

// View renders the gauge.
func (g Gauge) View() string {
	width := max(g.Width, 4)

	filled := int(float64(width) * g.Percent)
	filled = min(max(filled, 0), width)

	from, err := colorful.Hex(g.From)
	if err != nil {
		from, _ = colorful.MakeColor(theme.Primary)
	}
	to, err := colorful.Hex(g.To)
	if err != nil {
		to, _ = colorful.MakeColor(theme.Secondary)
	}

	var b strings.Builder
	for i := 0; i < filled; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("━"))
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("━", width-filled)))
	return b.String()
}
