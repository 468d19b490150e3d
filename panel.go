package erronaut

import (
	"github.com/charmbracelet/lipgloss"

	"pkt.systems/erronaut/theme"
)

const (
	fallbackColumns = 80
	defaultMargin   = 10
	minPanelWidth   = 20
	borderColumns   = 2
)

// kindColors returns the accent and title foreground for kind.
func kindColors(kind Kind, t theme.Theme) (accent, titleFG string) {
	switch kind {
	case KindWarn:
		return t.Warn, t.TitleDark
	case KindDebug:
		return t.Debug, t.TitleDark
	case KindError:
		return t.Error, t.TitleLight
	default:
		return t.Info, t.TitleLight
	}
}

func styleFunc(s lipgloss.Style) func(string) string {
	return func(text string) string {
		return s.Render(text)
	}
}

// panelWidth is the outer width of a panel, border included.
func (c *Console) panelWidth() int {
	width := c.opts.Width
	if width <= 0 {
		width = terminalWidth(c.w) - c.margin
	}
	if width < minPanelWidth {
		width = minPanelWidth
	}
	return width
}

func (c *Console) renderPanel(kind Kind, pt panelText) string {
	th := c.currentTheme()
	accent, titleFG := kindColors(kind, th)
	r := c.renderer

	title := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(titleFG)).
		Background(lipgloss.Color(accent)).
		Padding(0, 1)
	message := r.NewStyle().
		Bold(kind == KindError).
		Foreground(lipgloss.Color(accent))
	key := r.NewStyle().
		Foreground(lipgloss.Color(th.DetailKey))
	location := r.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(th.Location))

	body := pt.body(textStyles{
		title:    styleFunc(title),
		message:  styleFunc(message),
		key:      styleFunc(key),
		location: styleFunc(location),
	})

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 3).
		Width(c.panelWidth() - borderColumns)
	return box.Render(body) + "\n"
}

func (c *Console) currentTheme() theme.Theme {
	if c.opts.Theme != nil {
		return *c.opts.Theme
	}
	return theme.Snapshot()
}
