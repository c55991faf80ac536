package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xdestyn/termfolio/internal/content"
)

// Screen represents a page in the application
type Screen interface {
	tea.Model
	ID() string
	Title() string
	// HelpText is the key hint line shown in the status bar
	HelpText() string
}

// RoutedScreen is a screen whose content depends on route parameters,
// such as the note detail page.
type RoutedScreen interface {
	Screen
	SetParams(params map[string]string) tea.Cmd
}

// InputScreen is implemented by screens with a text input. While it has
// focus the shell passes letter keys through instead of treating them as
// shortcuts.
type InputScreen interface {
	InputFocused() bool
}

// ScreenRegistry manages available screens
type ScreenRegistry struct {
	screens map[string]Screen
	order   []string
}

func NewScreenRegistry() *ScreenRegistry {
	return &ScreenRegistry{
		screens: make(map[string]Screen),
		order:   []string{},
	}
}

func (r *ScreenRegistry) Register(screen Screen) {
	id := screen.ID()
	if _, exists := r.screens[id]; !exists {
		r.order = append(r.order, id)
	}
	r.screens[id] = screen
}

func (r *ScreenRegistry) Get(id string) (Screen, bool) {
	screen, ok := r.screens[id]
	return screen, ok
}

// Update replaces a screen after it handled a message
func (r *ScreenRegistry) Update(screen Screen) {
	if _, ok := r.screens[screen.ID()]; ok {
		r.screens[screen.ID()] = screen
	}
}

func (r *ScreenRegistry) All() []Screen {
	result := make([]Screen, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.screens[id])
	}
	return result
}

// Messages

// NavigateMsg asks the shell to show the page at Path
type NavigateMsg struct {
	Path string
}

// NavigateCmd returns a command producing NavigateMsg
func NavigateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// ClosePaletteMsg asks the shell to close the command palette. Epoch is the
// palette session the request belongs to; the shell ignores requests from a
// session that has already been closed.
type ClosePaletteMsg struct {
	Epoch uint64
}

// ContentReloadedMsg carries content re-read from disk
type ContentReloadedMsg struct {
	Doc *content.Document
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
