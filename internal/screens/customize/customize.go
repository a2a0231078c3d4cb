package customize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparkle/internal/config"
	"github.com/abhisek/sparkle/internal/router"
	"github.com/abhisek/sparkle/internal/screen"
	"github.com/abhisek/sparkle/internal/sparkles"
	"github.com/abhisek/sparkle/internal/ui/components"
	"github.com/abhisek/sparkle/internal/ui/layout"
	"github.com/abhisek/sparkle/internal/ui/theme"
)

const (
	fieldText = iota
	fieldCount
	fieldFirst
	fieldSecond
	numFields
)

var fieldLabels = [numFields]string{"Text", "Sparkles", "First color", "Second color"}

// CustomizeScreen edits the sparkle props. Saving hands the props to the
// onSave hook and pops back to the previous screen. The hook's command is
// batched with the pop.
type CustomizeScreen struct {
	inputs  [numFields]components.TextInput
	focus   int
	class   string
	onSave  func(sparkles.Props) tea.Cmd
	errText string
}

var (
	_ screen.Screen          = (*CustomizeScreen)(nil)
	_ screen.KeyHintProvider = (*CustomizeScreen)(nil)
)

// New creates the form prefilled with props.
func New(props sparkles.Props, onSave func(sparkles.Props) tea.Cmd) *CustomizeScreen {
	props = props.WithDefaults()

	c := &CustomizeScreen{
		class:  props.ClassName,
		onSave: onSave,
	}
	c.inputs[fieldText] = components.NewTextInput("label text", false, 40)
	c.inputs[fieldCount] = components.NewTextInput("10", true, 3)
	c.inputs[fieldFirst] = components.NewTextInput("#9E7AFF", false, 7)
	c.inputs[fieldSecond] = components.NewTextInput("#FE8BBB", false, 7)

	c.inputs[fieldText].SetValue(props.Text)
	c.inputs[fieldCount].SetValue(strconv.Itoa(props.Count))
	c.inputs[fieldFirst].SetValue(props.Colors.First)
	c.inputs[fieldSecond].SetValue(props.Colors.Second)

	for i := 1; i < numFields; i++ {
		c.inputs[i].Blur()
	}
	return c
}

func (c *CustomizeScreen) Init() tea.Cmd {
	return c.inputs[c.focus].Focus()
}

func (c *CustomizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return c, c.moveFocus(1)
		case "shift+tab", "up":
			return c, c.moveFocus(-1)
		case "enter":
			if c.focus < numFields-1 {
				return c, c.moveFocus(1)
			}
			return c, c.save()
		case "ctrl+s":
			return c, c.save()
		}
	}

	var cmd tea.Cmd
	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)
	return c, cmd
}

func (c *CustomizeScreen) moveFocus(delta int) tea.Cmd {
	c.inputs[c.focus].Blur()
	c.focus = (c.focus + delta + numFields) % numFields
	return c.inputs[c.focus].Focus()
}

// Props parses the form. It reports the first invalid field.
func (c *CustomizeScreen) Props() (sparkles.Props, error) {
	p := sparkles.Props{
		Text:      c.inputs[fieldText].Value(),
		ClassName: c.class,
		Colors: sparkles.Colors{
			First:  strings.TrimSpace(c.inputs[fieldFirst].Value()),
			Second: strings.TrimSpace(c.inputs[fieldSecond].Value()),
		},
	}

	n, err := c.inputs[fieldCount].NumericValue()
	if err != nil || n <= 0 || n > config.MaxCount {
		return p, fieldError{field: fieldCount, msg: fmt.Sprintf("sparkles must be 1-%d", config.MaxCount)}
	}
	p.Count = n

	if !config.ValidColor(p.Colors.First) {
		return p, fieldError{field: fieldFirst, msg: "first color must be #rgb or #rrggbb"}
	}
	if !config.ValidColor(p.Colors.Second) {
		return p, fieldError{field: fieldSecond, msg: "second color must be #rgb or #rrggbb"}
	}
	return p, nil
}

type fieldError struct {
	field int
	msg   string
}

func (e fieldError) Error() string { return e.msg }

func (c *CustomizeScreen) save() tea.Cmd {
	for i := range c.inputs {
		c.inputs[i].Reset()
	}

	p, err := c.Props()
	if err != nil {
		var fe fieldError
		if !errors.As(err, &fe) {
			c.errText = err.Error()
			return nil
		}
		c.inputs[fe.field].Submit(false)
		c.errText = fe.msg
		c.inputs[c.focus].Blur()
		c.focus = fe.field
		return c.inputs[c.focus].Focus()
	}

	c.errText = ""
	var saved tea.Cmd
	if c.onSave != nil {
		saved = c.onSave(p)
	}
	return tea.Batch(saved, func() tea.Msg {
		return router.PopScreenMsg{}
	})
}

func (c *CustomizeScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Width(14).Foreground(theme.TextDim)
	focusStyle := labelStyle.Foreground(theme.Primary).Bold(true)

	var rows []string
	for i, in := range c.inputs {
		style := labelStyle
		if i == c.focus {
			style = focusStyle
		}
		rows = append(rows, style.Render(fieldLabels[i])+in.View())
	}

	if c.errText != "" {
		rows = append(rows, "", theme.Invalid.Render("✗ "+c.errText))
	}

	cw := components.ContentWidth(width)
	card := components.Card(strings.Join(rows, "\n"), cw)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (c *CustomizeScreen) Title() string {
	return "Customize"
}

// KeyHints returns the footer hints for the form.
func (c *CustomizeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}
