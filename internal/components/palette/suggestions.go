package palette

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/commands"
	"github.com/xdestyn/termfolio/internal/ui"
)

// Suggestions is the autocomplete list under the input. The selected
// index is always within range while the list is non-empty.
type Suggestions struct {
	items        []string
	index        int
	scrollOffset int // First visible item index
	registry     *commands.Registry
	theme        *ui.Theme
}

// NewSuggestions creates an empty suggestion list.
func NewSuggestions(registry *commands.Registry, theme *ui.Theme) *Suggestions {
	return &Suggestions{
		registry: registry,
		theme:    theme,
	}
}

// Update recomputes the list for input and selects the first item.
func (s *Suggestions) Update(input string) {
	s.items = s.registry.Suggest(input)
	s.index = 0
	s.scrollOffset = 0
}

// Clear empties the list.
func (s *Suggestions) Clear() {
	s.items = nil
	s.index = 0
	s.scrollOffset = 0
}

// SetRegistry swaps the command source; the list is cleared.
func (s *Suggestions) SetRegistry(registry *commands.Registry) {
	s.registry = registry
	s.Clear()
}

// Prev moves the selection up, wrapping to the last item.
func (s *Suggestions) Prev() {
	if len(s.items) == 0 {
		return
	}
	if s.index > 0 {
		s.index--
	} else {
		s.index = len(s.items) - 1
	}
	s.scrollToIndex()
}

// Next moves the selection down, wrapping to the first item.
func (s *Suggestions) Next() {
	if len(s.items) == 0 {
		return
	}
	if s.index < len(s.items)-1 {
		s.index++
	} else {
		s.index = 0
	}
	s.scrollToIndex()
}

func (s *Suggestions) scrollToIndex() {
	if s.index < s.scrollOffset {
		s.scrollOffset = s.index
	}
	if maxVisible := s.scrollOffset + MaxSuggestionItems - 1; s.index > maxVisible {
		s.scrollOffset = s.index - MaxSuggestionItems + 1
	}
}

// Selected returns the selected name, or false when empty.
func (s *Suggestions) Selected() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[s.index], true
}

// Index returns the selected position.
func (s *Suggestions) Index() int {
	return s.index
}

// Items returns a copy of the suggested names.
func (s *Suggestions) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// IsEmpty returns true if there is nothing to suggest.
func (s *Suggestions) IsEmpty() bool {
	return len(s.items) == 0
}

// Height returns the number of lines View renders.
func (s *Suggestions) Height() int {
	return min(len(s.items), MaxSuggestionItems)
}

// View renders the visible suggestions with their descriptions.
func (s *Suggestions) View(width int) string {
	if s.IsEmpty() {
		return ""
	}

	visibleEnd := min(s.scrollOffset+MaxSuggestionItems, len(s.items))
	lines := make([]string, 0, visibleEnd-s.scrollOffset)

	for i := s.scrollOffset; i < visibleEnd; i++ {
		name := s.items[i]
		description := ""
		if cmd, ok := s.registry.Lookup(name); ok {
			description = " - " + cmd.Description
		}

		nameStyle := lipgloss.NewStyle().Foreground(s.theme.Primary)
		descStyle := lipgloss.NewStyle().Foreground(s.theme.Dimmed)
		row := lipgloss.NewStyle().Width(width).Padding(0, 1)
		marker := "  "
		if i == s.index {
			row = row.Background(s.theme.Subtle).Bold(true)
			nameStyle = nameStyle.Background(s.theme.Subtle).Bold(true)
			descStyle = descStyle.Background(s.theme.Subtle)
			marker = "▶ "
		}

		description = ui.Truncate(description, max(width-4-len(name), 0))
		lines = append(lines, row.Render(marker+nameStyle.Render(name)+descStyle.Render(description)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
