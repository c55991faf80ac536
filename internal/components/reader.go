package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/keyboard"
	"github.com/xdestyn/termfolio/internal/ui"
)

// Reader displays long text (a rendered note) full screen with scrolling
type Reader struct {
	title        string
	content      string
	lines        []string
	width        int
	height       int
	theme        *ui.Theme
	keys         *keyboard.Keys
	scrollOffset int
}

// NewReader creates an empty reader
func NewReader(theme *ui.Theme, keys *keyboard.Keys) *Reader {
	return &Reader{
		width:  80,
		height: 24,
		theme:  theme,
		keys:   keys,
	}
}

// SetContent replaces the text and scrolls back to the top
func (r *Reader) SetContent(title, content string) {
	r.title = title
	r.content = content
	r.lines = strings.Split(strings.TrimRight(content, "\n"), "\n")
	r.scrollOffset = 0
}

// Content returns the raw text being shown
func (r *Reader) Content() string {
	return r.content
}

// SetSize updates the size of the reader
func (r *Reader) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.scrollOffset = min(r.scrollOffset, r.maxOffset())
}

// ScrollOffset returns the index of the first visible line
func (r *Reader) ScrollOffset() int {
	return r.scrollOffset
}

// SetScrollOffset scrolls to line n, clamped to the content
func (r *Reader) SetScrollOffset(n int) {
	r.scrollOffset = min(max(n, 0), r.maxOffset())
}

func (r *Reader) visibleHeight() int {
	return max(r.height-FullScreenReservedLines, 1)
}

func (r *Reader) maxOffset() int {
	return max(len(r.lines)-r.visibleHeight(), 0)
}

// Update handles scroll keys
func (r *Reader) Update(msg tea.Msg) (*Reader, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch keyMsg.String() {
	case "up", r.keys.Up:
		r.scrollOffset = max(r.scrollOffset-1, 0)
	case "down", r.keys.Down:
		r.scrollOffset = min(r.scrollOffset+1, r.maxOffset())
	case "pgup", r.keys.PageUp:
		r.scrollOffset = max(r.scrollOffset-r.visibleHeight(), 0)
	case "pgdown", " ", r.keys.PageDown:
		r.scrollOffset = min(r.scrollOffset+r.visibleHeight(), r.maxOffset())
	case "home", r.keys.JumpTop:
		r.scrollOffset = 0
	case "end", r.keys.JumpBottom:
		r.scrollOffset = r.maxOffset()
	}
	return r, nil
}

// View renders the reader
func (r *Reader) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(r.theme.Primary).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(r.theme.Muted)

	title := titleStyle.Render(ui.Truncate(r.title, max(r.width/2, 10)))
	hint := hintStyle.Render("[ESC] Back  [↑↓/jk] Scroll  [PgUp/PgDn] Page  [g/G] Top/Bottom")

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, r.width-lipgloss.Width(title)-lipgloss.Width(hint))),
		hint,
	)

	separator := lipgloss.NewStyle().
		Foreground(r.theme.Border).
		Render(ui.Separator(r.width))

	visibleHeight := r.visibleHeight()
	end := min(r.scrollOffset+visibleHeight, len(r.lines))
	visibleLines := make([]string, 0, visibleHeight)
	visibleLines = append(visibleLines, r.lines[r.scrollOffset:end]...)

	// Pad so the scroll indicator stays put
	for len(visibleLines) < visibleHeight {
		visibleLines = append(visibleLines, "")
	}

	scrollInfo := ""
	if len(r.lines) > visibleHeight {
		scrollInfo = hintStyle.Render(fmt.Sprintf("  %d-%d of %d", r.scrollOffset+1, end, len(r.lines)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		separator,
		strings.Join(visibleLines, "\n"),
		scrollInfo,
	)
}
