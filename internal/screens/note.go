package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/components"
	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/messages"
	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/types"
)

const noteNotFound = "Note not found"

// NoteScreen shows one field note rendered as markdown. A slug with no
// note, or a note without a body, shows the not-found page.
type NoteScreen struct {
	ctx    *types.AppContext
	reader *components.Reader
	slug   string
	note   content.Note
	found  bool
	width  int
	height int
}

func NewNoteScreen(ctx *types.AppContext) *NoteScreen {
	return &NoteScreen{
		ctx:    ctx,
		reader: components.NewReader(ctx.Theme, ctx.Keys),
		width:  80,
		height: 20,
	}
}

func (s *NoteScreen) ID() string {
	return router.ScreenNote
}

func (s *NoteScreen) Title() string {
	return "field notes"
}

func (s *NoteScreen) HelpText() string {
	return "↑/↓: scroll • g/G: top/bottom • esc: back to notes"
}

func (s *NoteScreen) Init() tea.Cmd {
	return nil
}

// Slug returns the slug from the current route
func (s *NoteScreen) Slug() string {
	return s.slug
}

// Found reports whether the current slug resolved to a readable note
func (s *NoteScreen) Found() bool {
	return s.found
}

// SetParams loads the note named by the slug parameter
func (s *NoteScreen) SetParams(params map[string]string) tea.Cmd {
	s.slug = params[router.ParamSlug]
	s.reader.SetScrollOffset(0)
	return s.load()
}

func (s *NoteScreen) load() tea.Cmd {
	s.note, s.found = s.ctx.Content.NoteBySlug(s.slug)
	if s.found && strings.TrimSpace(s.note.Body) == "" {
		s.found = false
	}
	if !s.found {
		logging.Debug("Note not found", "slug", s.slug)
		return nil
	}
	return s.render()
}

// render fills the reader. Glamour failures fall back to the raw markdown.
func (s *NoteScreen) render() tea.Cmd {
	offset := s.reader.ScrollOffset()
	body, err := s.ctx.Renderer.Render(s.note, s.width)

	var cmd tea.Cmd
	if err != nil {
		logging.Error("Failed to render note", "slug", s.slug, "error", err)
		body = s.note.Body
		cmd = messages.ErrorCmd("Could not render %s: %v", s.note.Title, err)
	}

	s.reader.SetContent(s.note.Title, s.meta()+"\n"+body)
	s.reader.SetSize(s.width, s.height)
	s.reader.SetScrollOffset(offset)
	return cmd
}

// meta is the "date • category • location" line and the tag chips
func (s *NoteScreen) meta() string {
	theme := s.ctx.Theme
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	line := muted.Render(strings.Join(nonEmpty(s.note.Date, s.note.Category, s.note.Location), " • "))
	if len(s.note.Tags) > 0 {
		line += "\n" + chips(theme, s.note.Tags, proseWidth(s.width))
	}
	return line
}

func (s *NoteScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case types.ContentReloadedMsg:
		if s.slug == "" {
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		if msg.String() == s.ctx.Keys.Back {
			return s, types.NavigateCmd(router.PathNotes)
		}
		if s.found {
			s.reader, _ = s.reader.Update(msg)
		}
		return s, nil
	}
	return s, nil
}

func (s *NoteScreen) SetSize(width, height int) {
	resized := width != s.width
	s.width = width
	s.height = height
	s.reader.SetSize(width, height)
	if resized && s.found {
		s.render()
	}
}

func (s *NoteScreen) View() string {
	if !s.found {
		return s.notFoundView()
	}
	return s.reader.View()
}

func (s *NoteScreen) notFoundView() string {
	theme := s.ctx.Theme
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(noteNotFound),
		"",
		muted.Render("There is no field note at "+router.NotePath(s.slug)+"."),
		muted.Render("Press "+s.ctx.Keys.Back+" to go back to the notes list."),
	)
}
