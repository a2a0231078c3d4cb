package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGauge_Width(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		want    int
	}{
		{"empty", 0, 20, 20},
		{"half", 0.5, 20, 20},
		{"full", 1, 20, 20},
		{"overflow", 1.7, 10, 10},
		{"negative", -1, 10, 10},
		{"min width", 0.5, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGauge(tt.percent, tt.width, "#9E7AFF", "#FE8BBB")
			assert.Equal(t, tt.want, lipgloss.Width(g.View()))
		})
	}
}

func TestGauge_BadColorsFallBack(t *testing.T) {
	g := NewGauge(1, 8, "nope", "")
	assert.Equal(t, strings.Repeat("━", 8), ansi.Strip(g.View()))
}
