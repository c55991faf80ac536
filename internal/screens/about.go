package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/types"
)

type AboutScreen struct {
	ctx      *types.AppContext
	viewport viewport.Model
	width    int
	height   int
}

func NewAboutScreen(ctx *types.AppContext) *AboutScreen {
	s := &AboutScreen{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
	s.refresh()
	return s
}

func (s *AboutScreen) ID() string {
	return router.ScreenAbout
}

func (s *AboutScreen) Title() string {
	return "about"
}

func (s *AboutScreen) HelpText() string {
	return "↑/↓: scroll • ctrl+k: commands • q: quit"
}

func (s *AboutScreen) Init() tea.Cmd {
	return nil
}

func (s *AboutScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case types.ContentReloadedMsg:
		s.refresh()
	case tea.KeyMsg:
		scrollViewport(&s.viewport, s.ctx.Keys, msg)
	}
	return s, nil
}

func (s *AboutScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	s.refresh()
}

func (s *AboutScreen) View() string {
	return s.viewport.View()
}

func (s *AboutScreen) refresh() {
	theme := s.ctx.Theme
	width := proseWidth(s.width)
	doc := s.ctx.Content
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	bio := make([]string, len(doc.Profile.Bio))
	for i, paragraph := range doc.Profile.Bio {
		bio[i] = wrap(paragraph, width)
	}

	parts := []string{
		pageTitle(theme, "About Me", doc.Profile.Tagline, width),
		strings.Join(bio, "\n\n"),
		section(theme, "What I'm doing now", s.nowView(doc.Now, width), width),
		section(theme, "Current tech focus", techStackView(s.ctx, doc.TechStack, width), width),
		section(theme, "Let's connect",
			muted.Render(wrap("I'm always open to interesting conversations about tech, travel, or anything in between.", width))+
				"\n"+linksView(s.ctx, doc.Profile.Links), width),
	}
	s.viewport.SetContent(strings.Join(parts, "\n\n"))
}

// nowView lays the now cards out two per row when there is room
func (s *AboutScreen) nowView(cards []content.NowCard, width int) string {
	theme := s.ctx.Theme
	perRow := 1
	if width >= 60 {
		perRow = 2
	}
	cardWidth := width/perRow - 1

	rendered := make([]string, len(cards))
	for i, card := range cards {
		title := lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground).Render(card.Title)
		rendered[i] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(cardWidth - 2).
			Render(title + "\n" + arrowList(theme, card.Items, cardWidth-4))
	}

	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := min(i+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return strings.Join(rows, "\n")
}
