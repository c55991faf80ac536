package screens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/types"
)

// ColumnConfig defines a column in the notes table
type ColumnConfig struct {
	Title  string
	Width  int // 0 = dynamic (fills remaining space)
	Format func(content.Note) string
}

var noteColumns = []ColumnConfig{
	{Title: "Date", Width: 10, Format: func(n content.Note) string { return n.Date }},
	{Title: "Category", Width: 8, Format: func(n content.Note) string { return n.Category }},
	{Title: "Title", Format: func(n content.Note) string { return n.Title }},
	{Title: "Tags", Format: func(n content.Note) string { return strings.Join(n.Tags, ", ") }},
}

// NotesScreen lists field notes with category, tag and search filters
type NotesScreen struct {
	ctx      *types.AppContext
	table    table.Model
	search   textinput.Model
	query    content.NoteQuery
	filtered []content.Note
	tags     []string
	tagIndex int
	width    int
	height   int
}

func NewNotesScreen(ctx *types.AppContext) *NotesScreen {
	columns := make([]table.Column, len(noteColumns))
	for i, col := range noteColumns {
		columns[i] = table.Column{Title: col.Title, Width: col.Width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(ctx.Theme.ToTableStyles())

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search notes"
	search.PromptStyle = ctx.Theme.Prompt
	search.CharLimit = 64

	s := &NotesScreen{
		ctx:    ctx,
		table:  t,
		search: search,
		query:  content.NoteQuery{Category: content.CategoryAll},
	}
	s.reload()
	s.SetSize(80, 20)
	return s
}

func (s *NotesScreen) ID() string {
	return router.ScreenNotes
}

func (s *NotesScreen) Title() string {
	return "field notes"
}

func (s *NotesScreen) HelpText() string {
	if s.search.Focused() {
		return "type: search • enter/esc: done"
	}
	return "↑/↓: navigate • enter: read • /: search • c: category • ]: next tag • t: toggle tag • x: clear"
}

func (s *NotesScreen) Init() tea.Cmd {
	return nil
}

// InputFocused reports whether the search box has focus
func (s *NotesScreen) InputFocused() bool {
	return s.search.Focused()
}

// Query returns the active filters
func (s *NotesScreen) Query() content.NoteQuery {
	return s.query
}

// Filtered returns the notes currently listed
func (s *NotesScreen) Filtered() []content.Note {
	return s.filtered
}

// Selected returns the note under the cursor
func (s *NotesScreen) Selected() (content.Note, bool) {
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.filtered) {
		return content.Note{}, false
	}
	return s.filtered[cursor], true
}

// CurrentTag returns the tag under the tag cursor
func (s *NotesScreen) CurrentTag() string {
	if len(s.tags) == 0 {
		return ""
	}
	return s.tags[s.tagIndex]
}

func (s *NotesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case types.ContentReloadedMsg:
		s.reload()
		return s, nil

	case tea.KeyMsg:
		if s.search.Focused() {
			return s.updateSearch(msg)
		}
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *NotesScreen) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		s.search.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != s.query.Search {
		s.query.Search = s.search.Value()
		s.applyFilter()
	}
	return s, cmd
}

func (s *NotesScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := s.ctx.Keys

	switch msg.String() {
	case keys.Search:
		return s, s.search.Focus()

	case keys.Category:
		s.query.Category = content.NextCategory(s.query.Category)
		s.applyFilter()
		return s, nil

	case keys.TagNext:
		if len(s.tags) > 0 {
			s.tagIndex = (s.tagIndex + 1) % len(s.tags)
		}
		return s, nil

	case keys.TagToggle:
		s.toggleTag(s.CurrentTag())
		return s, nil

	case keys.ClearQuery:
		s.query = content.NoteQuery{Category: content.CategoryAll}
		s.search.Reset()
		s.applyFilter()
		return s, nil

	case keys.Open:
		if note, ok := s.Selected(); ok {
			return s, types.NavigateCmd(router.NotePath(note.Slug))
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *NotesScreen) toggleTag(tag string) {
	if tag == "" {
		return
	}
	if i := slices.Index(s.query.Tags, tag); i >= 0 {
		s.query.Tags = slices.Delete(slices.Clone(s.query.Tags), i, i+1)
	} else {
		s.query.Tags = append(slices.Clone(s.query.Tags), tag)
	}
	s.applyFilter()
}

// reload picks up a new document, dropping selected tags that vanished
func (s *NotesScreen) reload() {
	s.tags = s.ctx.Content.AllTags()
	if s.tagIndex >= len(s.tags) {
		s.tagIndex = 0
	}

	kept := make([]string, 0, len(s.query.Tags))
	for _, tag := range s.query.Tags {
		if slices.Contains(s.tags, tag) {
			kept = append(kept, tag)
		}
	}
	s.query.Tags = kept
	s.applyFilter()
}

// applyFilter runs the query and rebuilds the table rows
func (s *NotesScreen) applyFilter() {
	s.filtered = s.ctx.Content.FilterNotes(s.query)
	logging.Debug("Notes filtered",
		"category", s.query.Category,
		"tags", s.query.Tags,
		"search", s.query.Search,
		"count", len(s.filtered))

	rows := make([]table.Row, len(s.filtered))
	for i, note := range s.filtered {
		row := make(table.Row, len(noteColumns))
		for j, col := range noteColumns {
			row[j] = col.Format(note)
		}
		rows[i] = row
	}
	s.table.SetRows(rows)

	// An empty table leaves the cursor at -1
	if cursor := s.table.Cursor(); len(rows) > 0 && (cursor < 0 || cursor >= len(rows)) {
		s.table.SetCursor(min(max(cursor, 0), len(rows)-1))
	}
}

// SetSize updates dimensions and recalculates dynamic column widths
func (s *NotesScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.table.SetHeight(max(height-NotesChromeLines, 3))
	s.search.Width = max(width/3, 10)

	fixedTotal := 0
	dynamicCount := 0
	for _, col := range noteColumns {
		if col.Width > 0 {
			fixedTotal += col.Width
		} else {
			dynamicCount++
		}
	}

	// Account for cell padding: numColumns * 2
	padding := len(noteColumns) * 2
	dynamicWidth := max((width-fixedTotal-padding)/dynamicCount, 12)

	columns := make([]table.Column, len(noteColumns))
	for i, col := range noteColumns {
		w := col.Width
		if w == 0 {
			w = dynamicWidth
		}
		columns[i] = table.Column{Title: col.Title, Width: w}
	}

	s.table.SetColumns(columns)
	s.table.SetWidth(width)
}

func (s *NotesScreen) View() string {
	theme := s.ctx.Theme
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	// Filter line: "category: All • 3 of 5 notes • / search"
	filter := []string{
		"category: " + theme.NavActive.Render(s.query.Category),
		fmt.Sprintf("%d of %d notes", len(s.filtered), len(s.ctx.Content.Notes)),
	}
	if s.search.Focused() || s.query.Search != "" {
		filter = append(filter, s.search.View())
	} else {
		filter = append(filter, muted.Render(s.ctx.Keys.Search+" search"))
	}
	filterLine := strings.Join(filter, muted.Render(" • "))

	sections := []string{filterLine, s.tagsView(), ""}

	if len(s.filtered) == 0 {
		sections = append(sections, muted.Render("No notes found matching your filters."))
	} else {
		sections = append(sections, s.table.View())
		if note, ok := s.Selected(); ok {
			sections = append(sections, muted.Render(truncateLine(note.Excerpt, s.width)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// tagsView renders every tag; selected ones are highlighted and the tag
// cursor is bracketed.
func (s *NotesScreen) tagsView() string {
	theme := s.ctx.Theme
	if len(s.tags) == 0 {
		return ""
	}

	parts := make([]string, len(s.tags))
	for i, tag := range s.tags {
		label := "#" + tag
		if slices.Contains(s.query.Tags, tag) {
			label = theme.NavActive.Render(label)
		} else {
			label = theme.NavInactive.Render(label)
		}
		if i == s.tagIndex {
			label = "[" + label + "]"
		}
		parts[i] = label
	}
	return truncateLine("tags: "+strings.Join(parts, " "), s.width)
}

func truncateLine(text string, width int) string {
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(text)
}
