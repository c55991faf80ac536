// Package palette is the command palette: a small terminal inside the
// terminal where the user types commands like "notes" or "github". It is a
// controlled component; the app shell decides when it is open and the
// palette asks to be closed with types.ClosePaletteMsg.
package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/commands"
	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

// Model coordinates the palette's parts. Transcript and history outlive
// close/open cycles; input and suggestions do not.
type Model struct {
	open   bool
	width  int
	height int

	ctx        *types.AppContext
	registry   *commands.Registry
	input      *Input
	history    *History
	suggest    *Suggestions
	transcript *Transcript
	dispatcher *Dispatcher
	spinner    spinner.Model
}

// New creates a closed palette.
func New(ctx *types.AppContext, registry *commands.Registry) *Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(ctx.Theme.Primary)

	return &Model{
		width:      MaxWidth,
		ctx:        ctx,
		registry:   registry,
		input:      NewInput(ctx.Theme),
		history:    NewHistory(),
		suggest:    NewSuggestions(registry, ctx.Theme),
		transcript: NewTranscript(ctx.Theme),
		dispatcher: NewDispatcher(DispatchDelay),
		spinner:    s,
	}
}

// Open shows the palette with an empty input.
func (m *Model) Open() {
	if m.open {
		return
	}
	m.open = true
	m.input.Clear()
	m.suggest.Clear()
	m.history.Reset()
	logging.Debug("palette opened")
}

// Close hides the palette, discards the input and cancels any pending
// dispatch.
func (m *Model) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.input.Clear()
	m.suggest.Clear()
	m.history.Reset()
	m.dispatcher.Cancel()
	logging.Debug("palette closed")
}

// Epoch identifies the current open session. It changes on every close.
func (m *Model) Epoch() uint64 {
	return m.dispatcher.Epoch()
}

// IsOpen reports whether the palette is visible.
func (m *Model) IsOpen() bool {
	return m.open
}

// State returns the keyboard state.
func (m *Model) State() State {
	switch {
	case !m.open:
		return StateClosed
	case !m.suggest.IsEmpty():
		return StateOpenSuggesting
	case !m.input.IsEmpty():
		return StateOpenTyping
	default:
		return StateOpenEmpty
	}
}

// SetRegistry replaces the commands, used when content links change.
func (m *Model) SetRegistry(registry *commands.Registry) {
	m.registry = registry
	m.suggest.SetRegistry(registry)
}

// SetSize fits the palette into a width x height area.
func (m *Model) SetSize(width, height int) {
	m.width = min(width, MaxWidth)
	m.height = height

	// border, header, three rules, input, footer and suggestions
	chrome := 8 + MaxSuggestionItems
	transcriptHeight := TranscriptHeight
	if height > 0 {
		transcriptHeight = max(min(TranscriptHeight, height-chrome), 3)
	}
	m.transcript.SetSize(m.innerWidth(), transcriptHeight)
}

func (m *Model) innerWidth() int {
	// rounded border and one column of padding each side
	return max(m.width-4, 10)
}

// Input returns the current input text.
func (m *Model) Input() string {
	return m.input.Get()
}

// Suggestions returns the current suggestion names.
func (m *Model) Suggestions() []string {
	return m.suggest.Items()
}

// SelectedSuggestion returns the selected suggestion index.
func (m *Model) SelectedSuggestion() int {
	return m.suggest.Index()
}

// Transcript returns the session transcript.
func (m *Model) Transcript() []Entry {
	return m.transcript.Entries()
}

// History returns the submitted commands, oldest first.
func (m *Model) History() []string {
	return m.history.Entries()
}

// Pending returns the number of dispatches waiting to fire.
func (m *Model) Pending() int {
	return m.dispatcher.Pending()
}

// Update handles messages for the palette. Key presses are ignored while
// closed; dispatch messages are always handled so stale ones are dropped.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DispatchMsg:
		if !m.dispatcher.Accept(msg) {
			return m, nil
		}
		logging.Debug("dispatching command",
			"command", msg.Command.Name,
			"kind", msg.Command.Kind().String(),
			"action", msg.Command.Action)
		return m, commands.Effect(m.ctx, msg.Command, msg.Epoch)

	case spinner.TickMsg:
		if m.dispatcher.Pending() == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.open {
			return m, nil
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (*Model, tea.Cmd) {
	result := m.input.HandleKeyMsg(msg)

	switch result.Action {
	case InputActionChar, InputActionPaste:
		m.input.AddText(result.Text)
		m.suggest.Update(m.input.Get())
		return m, nil

	case InputActionBackspace:
		m.input.Backspace()
		m.suggest.Update(m.input.Get())
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, commands.ClosePaletteCommand(m.dispatcher.Epoch())

	case "up":
		if !m.suggest.IsEmpty() {
			m.suggest.Prev()
		} else if text, ok := m.history.Older(); ok {
			m.input.Set(text)
		}
		return m, nil

	case "down":
		if !m.suggest.IsEmpty() {
			m.suggest.Next()
		} else if text, ok := m.history.Newer(); ok {
			m.input.Set(text)
		}
		return m, nil

	case "tab":
		if name, ok := m.suggest.Selected(); ok {
			m.input.Set(name)
			m.suggest.Clear()
		}
		return m, nil

	case "enter":
		return m, m.Submit(m.input.Get())

	case "pgup":
		m.transcript.ScrollUp()
		return m, nil

	case "pgdown":
		m.transcript.ScrollDown()
		return m, nil
	}

	return m, nil
}

// Submit interprets text as a command. Blank text does nothing. Unknown
// commands add an error entry; known ones add their response and schedule
// their action after DispatchDelay.
func (m *Model) Submit(text string) tea.Cmd {
	name := strings.TrimSpace(text)
	if name == "" {
		return nil
	}

	m.history.Add(name)
	m.input.Clear()
	m.suggest.Clear()

	cmd, ok := m.registry.Lookup(name)
	if !ok {
		logging.Debug("unknown command", "input", name)
		m.transcript.Append(Entry{
			Input:   name,
			Output:  fmt.Sprintf(notFoundFormat, name),
			IsError: true,
		})
		return nil
	}

	logging.Debug("command submitted", "command", cmd.Name, "kind", cmd.Kind().String())
	m.transcript.Append(Entry{Input: name, Output: cmd.Response})

	if cmd.Kind() == commands.ActionHelp {
		return nil
	}
	return tea.Batch(m.dispatcher.Schedule(cmd), m.spinner.Tick)
}

// View renders the palette box, or "" when closed.
func (m *Model) View() string {
	if !m.open {
		return ""
	}

	theme := m.ctx.Theme
	inner := m.innerWidth()

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(promptSymbol + " command palette")
	closeHint := lipgloss.NewStyle().Foreground(theme.Dimmed).Render("esc")
	if m.dispatcher.Pending() > 0 {
		closeHint = m.spinner.View() + " " + closeHint
	}
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(closeHint), 1)
	header := title + strings.Repeat(" ", gap) + closeHint

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(ui.Separator(inner))

	sections := []string{
		header,
		rule,
		m.transcript.View(),
		rule,
		m.input.View(inner),
	}
	if !m.suggest.IsEmpty() {
		sections = append(sections, m.suggest.View(inner))
	}

	footerStyle := lipgloss.NewStyle().Foreground(theme.Dimmed)
	footerGap := max(inner-lipgloss.Width(footerHint)-lipgloss.Width(toggleHint), 1)
	sections = append(sections,
		rule,
		footerStyle.Render(footerHint+strings.Repeat(" ", footerGap)+toggleHint))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Width(inner + 2)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
