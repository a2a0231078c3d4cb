package components

import (
	"image/color"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/abhisek/sparkle/internal/sparkles"
	"github.com/abhisek/sparkle/internal/ui/theme"
)

var lastSparklesID atomic.Int64

func nextSparklesID() int {
	return int(lastSparklesID.Add(1))
}

// SparkleTickMsg advances one SparklesText instance. ID and Tag pin the
// message to the instance and mount that scheduled it.
type SparkleTickMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

// SparklesOption configures a SparklesText.
type SparklesOption func(*SparklesText)

// WithSparklesRand sets the random source handed to every field.
func WithSparklesRand(r sparkles.RandFunc) SparklesOption {
	return func(s *SparklesText) {
		s.rand = r
	}
}

// WithSparklesLogger sets the logger for mount and regeneration events.
func WithSparklesLogger(l *zap.Logger) SparklesOption {
	return func(s *SparklesText) {
		if l != nil {
			s.logger = l
		}
	}
}

// SparklesText renders a label over a field of pulsing star glyphs. The
// field exists only while mounted; every mount starts a fresh batch.
type SparklesText struct {
	id      int
	tag     int
	props   sparkles.Props
	rand    sparkles.RandFunc
	logger  *zap.Logger
	field   *sparkles.Field
	mounted bool
}

// NewSparklesText creates an unmounted component.
func NewSparklesText(props sparkles.Props, opts ...SparklesOption) *SparklesText {
	s := &SparklesText{
		id:     nextSparklesID(),
		props:  props.WithDefaults(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount generates the initial batch and schedules the first tick.
func (s *SparklesText) Mount() tea.Cmd {
	s.tag++
	s.field = sparkles.NewField(s.props,
		sparkles.WithRand(s.rand),
		sparkles.WithLogger(s.logger))
	s.mounted = true

	s.logger.Debug("sparkles mounted",
		zap.Int("id", s.id),
		zap.Int("tag", s.tag),
		zap.Int("count", s.props.Count))
	return s.tick()
}

// Unmount discards the field. Ticks already in flight are dropped when
// they arrive.
func (s *SparklesText) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.tag++
	s.field = nil
	s.logger.Debug("sparkles unmounted", zap.Int("id", s.id))
}

// SetProps replaces the props. A mounted component remounts with a fresh
// batch when anything changed.
func (s *SparklesText) SetProps(p sparkles.Props) tea.Cmd {
	p = p.WithDefaults()
	if p == s.props {
		return nil
	}
	s.props = p
	if !s.mounted {
		return nil
	}
	s.Unmount()
	return s.Mount()
}

// Props returns the current props.
func (s *SparklesText) Props() sparkles.Props {
	return s.props
}

// Mounted reports whether the component is ticking.
func (s *SparklesText) Mounted() bool {
	return s.mounted
}

// Field returns the live field, or nil when unmounted.
func (s *SparklesText) Field() *sparkles.Field {
	return s.field
}

// Update applies ticks addressed to the current mount.
func (s *SparklesText) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(SparkleTickMsg)
	if !ok {
		return nil
	}
	if !s.mounted || tick.ID != s.id || tick.Tag != s.tag {
		return nil
	}
	s.field.Tick()
	return s.tick()
}

func (s *SparklesText) tick() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(sparkles.Period, func(t time.Time) tea.Msg {
		return SparkleTickMsg{ID: id, Tag: tag, Time: t}
	})
}

// View renders the field in a width x height block with the props text
// as the label. An unmounted component renders only the label.
func (s *SparklesText) View(width, height int) string {
	style := theme.Class(s.props.ClassName)
	label := ""
	if s.props.Text != "" {
		label = style.Render(s.props.Text)
	}
	return s.ViewWithLabel(label, width, height)
}

// ViewWithLabel is View with a pre-rendered, possibly multi-line label.
func (s *SparklesText) ViewWithLabel(label string, width, height int) string {
	if s.field == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label)
	}
	return RenderField(s.field, label, width, height)
}

// sparkle glyphs by size tier; the second rune is the rotated variant.
var glyphTiers = [][2]string{
	{"·", "·"},
	{"+", "×"},
	{"✧", "✦"},
	{"✦", "★"},
}

// Glyph picks the character for a sampled frame, or "" when hidden.
func Glyph(fr sparkles.Frame) string {
	if !fr.Visible() {
		return ""
	}
	tier := 0
	switch {
	case fr.Scale >= 1.0:
		tier = 3
	case fr.Scale >= 0.6:
		tier = 2
	case fr.Scale >= 0.3:
		tier = 1
	}
	variant := 0
	if fr.Rotate >= 120 {
		variant = 1
	}
	return glyphTiers[tier][variant]
}

// FadeColor blends hex toward the background by opacity. Unparseable
// colors fall back to the theme text color.
func FadeColor(hex string, opacity float64) color.Color {
	bg, _ := colorful.Hex(theme.BackgroundHex)
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.MakeColor(theme.Text)
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return bg.BlendLab(c, opacity).Clamped()
}

type cell struct {
	glyph string
	fg    color.Color
}

// RenderField draws the particles of f on a width x height grid and
// overlays label, centered, on top of them. Later slots draw over earlier
// ones. The label is static and never covered by a particle.
func RenderField(f *sparkles.Field, label string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
	}

	for _, p := range f.Particles() {
		fr := f.FrameOf(p)
		g := Glyph(fr)
		if g == "" {
			continue
		}
		col := int(p.X / 100 * float64(width))
		row := int(p.Y / 100 * float64(height))
		col = min(max(col, 0), width-1)
		row = min(max(row, 0), height-1)
		grid[row][col] = cell{glyph: g, fg: FadeColor(p.Color, fr.Opacity)}
	}

	var labelLines []string
	if label != "" {
		labelLines = strings.Split(label, "\n")
	}
	top := (height - len(labelLines)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - lipgloss.Width(label)) / 2
	if left < 0 {
		left = 0
	}

	lines := make([]string, height)
	for r := range grid {
		i := r - top
		if i < 0 || i >= len(labelLines) {
			lines[r] = renderCells(grid[r])
			continue
		}
		line := labelLines[i]
		end := min(left+lipgloss.Width(line), width)
		lines[r] = renderCells(grid[r][:left]) + line + renderCells(grid[r][end:])
	}
	return strings.Join(lines, "\n")
}

func renderCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.glyph == "" {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(c.fg).Render(c.glyph))
	}
	return b.String()
}
