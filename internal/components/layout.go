package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/ui"
)

type Layout struct {
	width     int
	height    int
	helpStyle lipgloss.Style
}

func NewLayout(width, height int, theme *ui.Theme) *Layout {
	return &Layout{
		width:  width,
		height: height,
		helpStyle: lipgloss.NewStyle().
			Foreground(theme.Dimmed).
			Padding(0, 1),
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Layout) Width() int {
	return l.width
}

// CalculateBodyHeight returns the available height for the body content
func (l *Layout) CalculateBodyHeight() int {
	return max(l.height-LayoutReservedLines, MinBodyHeight)
}

// Render builds the full layout. When overlay is non-empty it replaces
// the body, centered in the body area; the palette uses this.
func (l *Layout) Render(header, body, overlay, help, status string) string {
	bodyHeight := l.CalculateBodyHeight()

	if overlay != "" {
		body = lipgloss.Place(l.width, bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		// Pin the help line and status bar to the bottom
		body = lipgloss.NewStyle().
			Height(bodyHeight).
			MaxHeight(bodyHeight).
			Render(body)
	}

	sections := []string{header, "", body}

	if help != "" {
		sections = append(sections, l.helpStyle.Render(ui.Truncate(help, max(l.width-2, 0))))
	} else {
		sections = append(sections, "")
	}

	sections = append(sections, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
