package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/keyboard"
	"github.com/xdestyn/termfolio/internal/ui"
)

// proseWidth is the wrap width for a screen of the given width
func proseWidth(width int) int {
	return max(min(width-2, ContentMaxWidth), 20)
}

// wrap word-wraps text to width cells
func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}

// pageTitle renders the big heading and subtitle every page opens with
func pageTitle(theme *ui.Theme, title, subtitle string, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Muted).Render(wrap(subtitle, width)))
	}
	return b.String()
}

// section renders a heading, a rule under it and the body
func section(theme *ui.Theme, heading, body string, width int) string {
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(ui.Separator(min(lipgloss.Width(heading)+4, width)))
	return theme.Heading.Render(heading) + "\n" + rule + "\n" + body
}

// chips lays labels out left to right, wrapping to width
func chips(theme *ui.Theme, labels []string, width int) string {
	var lines []string
	var line string
	for _, label := range labels {
		chip := theme.Chip.Render(label)
		switch {
		case line == "":
			line = chip
		case lipgloss.Width(line)+1+lipgloss.Width(chip) > width:
			lines = append(lines, line)
			line = chip
		default:
			line += " " + chip
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// arrowList renders items as "→ item" lines, wrapped with a hanging indent
func arrowList(theme *ui.Theme, items []string, width int) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		body := wrap(item, max(width-2, 10))
		body = strings.ReplaceAll(body, "\n", "\n  ")
		lines = append(lines, theme.Prompt.Render("→")+" "+body)
	}
	return strings.Join(lines, "\n")
}

// scrollViewport applies the shared scroll keys to vp. It reports whether
// the key was one of them.
func scrollViewport(vp *viewport.Model, keys *keyboard.Keys, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", keys.Up:
		vp.ScrollUp(1)
	case "down", keys.Down:
		vp.ScrollDown(1)
	case "pgup", keys.PageUp:
		vp.PageUp()
	case "pgdown", " ", keys.PageDown:
		vp.PageDown()
	case "home", keys.JumpTop:
		vp.GotoTop()
	case "end", keys.JumpBottom:
		vp.GotoBottom()
	default:
		return false
	}
	return true
}
