package landing

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparkle/internal/ui/theme"
)

// Node labels of the beams diagram. Every outer node is wired to the hub.
var (
	leftNodes  = [3]string{"Drive", "Docs", "WhatsApp"}
	hubNode    = "Sparkle"
	rightNodes = [3]string{"Notion", "Zapier", "Messenger"}
)

const nodeLabelWidth = 10

// beamsHeight is the row count of the diagram: three nodes of three rows
// each with one-row gaps.
const beamsHeight = 11

// Left and right connectors, one string per diagram row. Outer node
// centers sit on rows 1, 5 and 9; the hub center on row 5.
var (
	leftBeams = [beamsHeight]string{
		"     ", "──╮  ", "  │  ", "  │  ", "  │  ", "──┼──",
		"  │  ", "  │  ", "  │  ", "──╯  ", "     ",
	}
	rightBeams = [beamsHeight]string{
		"     ", "  ╭──", "  │  ", "  │  ", "  │  ", "──┼──",
		"  │  ", "  │  ", "  │  ", "  ╰──", "     ",
	}
)

// beamsWidth is the column count of the rendered diagram.
func beamsWidth() int {
	node := nodeLabelWidth + 4 // border + padding
	return 3*node + 2*5
}

// renderBeams draws the static beams diagram.
func renderBeams() string {
	beam := lipgloss.NewStyle().Foreground(theme.Beam)

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderNode(leftNodes[0], false), "",
		renderNode(leftNodes[1], false), "",
		renderNode(leftNodes[2], false))
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderNode(rightNodes[0], false), "",
		renderNode(rightNodes[1], false), "",
		renderNode(rightNodes[2], false))

	pad := strings.Repeat("\n", 3)
	hub := pad + "\n" + renderNode(hubNode, true) + "\n" + pad

	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		beam.Render(strings.Join(leftBeams[:], "\n")),
		hub,
		beam.Render(strings.Join(rightBeams[:], "\n")),
		right,
	)
}

func renderNode(label string, hub bool) string {
	style := theme.Node
	if hub {
		style = style.BorderForeground(theme.Primary).Bold(true)
	}
	return style.Render(center(label, nodeLabelWidth))
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
