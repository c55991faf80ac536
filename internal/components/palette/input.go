package palette

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/ui"
)

// Input holds the line being typed.
type Input struct {
	buffer []rune
	theme  *ui.Theme
}

// NewInput creates an empty input.
func NewInput(theme *ui.Theme) *Input {
	return &Input{theme: theme}
}

// Get returns the current text.
func (i *Input) Get() string {
	return string(i.buffer)
}

// Set replaces the text.
func (i *Input) Set(text string) {
	i.buffer = []rune(text)
}

// Clear empties the input.
func (i *Input) Clear() {
	i.buffer = nil
}

// IsEmpty returns true if input buffer is empty.
func (i *Input) IsEmpty() bool {
	return len(i.buffer) == 0
}

// AddText appends typed or pasted text.
func (i *Input) AddText(text string) {
	i.buffer = append(i.buffer, []rune(text)...)
}

// Backspace removes the last character. Returns false if there was
// nothing to remove.
func (i *Input) Backspace() bool {
	if len(i.buffer) == 0 {
		return false
	}
	i.buffer = i.buffer[:len(i.buffer)-1]
	return true
}

// InputAction is what a key press does to the input.
type InputAction int

const (
	InputActionNone InputAction = iota
	InputActionChar
	InputActionBackspace
	InputActionPaste
)

// KeyMsgResult represents the result of handling a key message.
type KeyMsgResult struct {
	Action InputAction
	Text   string
}

// HandleKeyMsg classifies a key press as an edit. Keys that are not edits
// return InputActionNone.
func (i *Input) HandleKeyMsg(msg tea.KeyMsg) KeyMsgResult {
	if msg.Paste {
		return KeyMsgResult{
			Action: InputActionPaste,
			Text:   string(msg.Runes),
		}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return KeyMsgResult{Action: InputActionBackspace}
	case tea.KeySpace:
		return KeyMsgResult{Action: InputActionChar, Text: " "}
	case tea.KeyRunes:
		if msg.Alt {
			return KeyMsgResult{Action: InputActionNone}
		}
		return KeyMsgResult{Action: InputActionChar, Text: string(msg.Runes)}
	}

	return KeyMsgResult{Action: InputActionNone}
}

// View renders the prompt line with a block cursor, or the placeholder
// when empty.
func (i *Input) View(width int) string {
	prompt := i.theme.Prompt.Render(promptSymbol + " ")

	var text string
	if i.IsEmpty() {
		text = lipgloss.NewStyle().Foreground(i.theme.Primary).Render("█") +
			lipgloss.NewStyle().Foreground(i.theme.Dimmed).Render(placeholder)
	} else {
		text = lipgloss.NewStyle().Foreground(i.theme.Foreground).Render(i.Get()) +
			lipgloss.NewStyle().Foreground(i.theme.Primary).Render("█")
	}

	return lipgloss.NewStyle().Width(width).Render(prompt + text)
}
