package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

// StatusBar displays status messages (success, errors, info). Each message
// gets an ID so a late clear tick cannot wipe a newer message.
type StatusBar struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// Show displays msg and returns the tick that clears it after
// StatusBarDisplayDuration.
func (sb *StatusBar) Show(msg types.StatusMsg) tea.Cmd {
	id := sb.SetMessage(msg.Message, msg.Type)
	return tea.Tick(StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// SetMessage sets the status message with type and returns its ID
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) int {
	sb.messageID++
	sb.message = msg
	sb.messageType = msgType
	return sb.messageID
}

// Clear removes the message if id is still the current one
func (sb *StatusBar) Clear(id int) bool {
	if id != sb.messageID {
		return false
	}
	sb.ClearMessage()
	return true
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the visible text and its type
func (sb *StatusBar) Message() (string, types.MessageType) {
	return sb.message, sb.messageType
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

// View renders the status bar
func (sb *StatusBar) View() string {
	baseStyle := lipgloss.NewStyle().
		Width(sb.width).
		Padding(0, 1)

	if sb.message == "" {
		// Render empty line to reserve space
		return baseStyle.Render("")
	}

	var color lipgloss.AdaptiveColor
	var prefix string

	switch sb.messageType {
	case types.MessageTypeSuccess:
		color = sb.theme.Success
		prefix = "✓ "
	case types.MessageTypeError:
		color = sb.theme.Error
		prefix = "✗ "
	default:
		color = sb.theme.Primary
		prefix = "ℹ "
	}

	messageStyle := baseStyle.
		Background(color).
		Foreground(sb.theme.Background).
		Bold(true)

	// Keep to one line; padding takes two cells
	text := ui.Truncate(prefix+sb.message, max(sb.width-2, 0))
	return messageStyle.Render(text)
}
