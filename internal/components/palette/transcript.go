package palette

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/ui"
)

// Transcript is the session's list of submissions and their output,
// rendered in a scrolling viewport that follows the newest entry.
type Transcript struct {
	entries  []Entry
	viewport viewport.Model
	theme    *ui.Theme
}

// NewTranscript creates an empty transcript.
func NewTranscript(theme *ui.Theme) *Transcript {
	return &Transcript{
		viewport: viewport.New(MaxWidth, TranscriptHeight),
		theme:    theme,
	}
}

// Append adds an entry and scrolls to it.
func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
	t.refresh()
}

// Entries returns a copy of the transcript, oldest first.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// SetSize resizes the viewport and re-wraps the content.
func (t *Transcript) SetSize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = height
	t.refresh()
}

// ScrollUp and ScrollDown page through older output.
func (t *Transcript) ScrollUp() {
	t.viewport.HalfPageUp()
}

func (t *Transcript) ScrollDown() {
	t.viewport.HalfPageDown()
}

func (t *Transcript) refresh() {
	t.viewport.SetContent(t.render(t.viewport.Width))
	t.viewport.GotoBottom()
}

func (t *Transcript) render(width int) string {
	if len(t.entries) == 0 {
		return lipgloss.NewStyle().Foreground(t.theme.Dimmed).Width(width).Render(emptyHint)
	}

	inputStyle := lipgloss.NewStyle().Foreground(t.theme.Primary)
	outputStyle := lipgloss.NewStyle().Foreground(t.theme.Foreground).Width(width)
	errorStyle := lipgloss.NewStyle().Foreground(t.theme.Error).Width(width)
	markerStyle := lipgloss.NewStyle().Foreground(t.theme.Dimmed)

	blocks := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		style := outputStyle
		if e.IsError {
			style = errorStyle
		}
		blocks = append(blocks,
			markerStyle.Render(promptSymbol)+" "+inputStyle.Render(e.Input)+"\n"+style.Render(e.Output))
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the visible part of the transcript.
func (t *Transcript) View() string {
	return t.viewport.View()
}
