package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/types"
)

// heroTickMsg types the next hero character. Ticks from an earlier
// generation are ignored, so replaying never runs two typists at once.
type heroTickMsg struct {
	gen int
}

type cursorBlinkMsg struct {
	gen int
}

// HomeScreen is the landing page: the typing terminal hero followed by
// focus areas, experience, stack, education and contact links.
type HomeScreen struct {
	ctx      *types.AppContext
	viewport viewport.Model
	width    int
	height   int

	hero     []rune
	typed    int
	cursorOn bool
	gen      int
}

func NewHomeScreen(ctx *types.AppContext) *HomeScreen {
	s := &HomeScreen{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
		cursorOn: true,
	}
	s.hero = []rune(strings.Join(ctx.Content.Profile.Hero, "\n"))
	s.refresh()
	return s
}

func (s *HomeScreen) ID() string {
	return router.ScreenHome
}

func (s *HomeScreen) Title() string {
	return "home"
}

func (s *HomeScreen) HelpText() string {
	return "↑/↓: scroll • r: replay • ctrl+k: commands • q: quit"
}

// Init restarts the hero animation
func (s *HomeScreen) Init() tea.Cmd {
	s.gen++
	s.typed = 0
	s.cursorOn = true
	s.refresh()
	return tea.Batch(s.typeTick(), s.blinkTick())
}

func (s *HomeScreen) typeTick() tea.Cmd {
	gen := s.gen
	return tea.Tick(TypingInterval, func(time.Time) tea.Msg {
		return heroTickMsg{gen: gen}
	})
}

func (s *HomeScreen) blinkTick() tea.Cmd {
	gen := s.gen
	return tea.Tick(CursorBlinkInterval, func(time.Time) tea.Msg {
		return cursorBlinkMsg{gen: gen}
	})
}

// Typed returns the part of the hero shown so far
func (s *HomeScreen) Typed() string {
	return string(s.hero[:s.typed])
}

// Complete reports whether the hero has finished typing
func (s *HomeScreen) Complete() bool {
	return s.typed >= len(s.hero)
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case heroTickMsg:
		if msg.gen != s.gen || s.Complete() {
			return s, nil
		}
		s.typed++
		s.refresh()
		if s.Complete() {
			return s, nil
		}
		return s, s.typeTick()

	case cursorBlinkMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		s.cursorOn = !s.cursorOn
		s.refresh()
		return s, s.blinkTick()

	case types.ContentReloadedMsg:
		hero := []rune(strings.Join(s.ctx.Content.Profile.Hero, "\n"))
		if string(hero) != string(s.hero) {
			s.hero = hero
			return s, s.Init()
		}
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		if msg.String() == s.ctx.Keys.Replay && s.Complete() {
			return s, s.Init()
		}
		scrollViewport(&s.viewport, s.ctx.Keys, msg)
		return s, nil
	}
	return s, nil
}

func (s *HomeScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	s.refresh()
}

func (s *HomeScreen) View() string {
	return s.viewport.View()
}

// refresh rebuilds the page; the viewport keeps its scroll offset
func (s *HomeScreen) refresh() {
	width := proseWidth(s.width)
	doc := s.ctx.Content

	parts := []string{
		s.heroView(width),
		section(s.ctx.Theme, "Focus Areas", s.focusAreasView(doc.FocusAreas, width), width),
		section(s.ctx.Theme, "Work Experience", s.experienceView(doc.Experience, width), width),
		section(s.ctx.Theme, "Tech Stack", techStackView(s.ctx, doc.TechStack, width), width),
		section(s.ctx.Theme, "Education", s.educationView(doc, width), width),
		section(s.ctx.Theme, "Connect", s.connectView(doc.Profile, width), width),
	}
	s.viewport.SetContent(strings.Join(parts, "\n\n"))
}

func (s *HomeScreen) heroView(width int) string {
	theme := s.ctx.Theme

	dots := lipgloss.NewStyle().Foreground(theme.Error).Render("●") + " " +
		lipgloss.NewStyle().Foreground(theme.Warning).Render("●") + " " +
		lipgloss.NewStyle().Foreground(theme.Success).Render("●")

	top := dots
	if s.Complete() {
		replay := lipgloss.NewStyle().Foreground(theme.Dimmed).Render("[" + s.ctx.Keys.Replay + "] replay")
		gap := max(width-4-lipgloss.Width(dots)-lipgloss.Width(replay), 1)
		top = dots + strings.Repeat(" ", gap) + replay
	}

	cursor := " "
	if s.cursorOn {
		cursor = "_"
	}
	text := lipgloss.NewStyle().Foreground(theme.Success).Render(s.Typed() + cursor)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(top + "\n\n" + text)
}

func (s *HomeScreen) focusAreasView(areas []content.FocusArea, width int) string {
	theme := s.ctx.Theme
	blocks := make([]string, 0, len(areas))
	for _, area := range areas {
		title := lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground).Render(area.Title)
		desc := lipgloss.NewStyle().Foreground(theme.Muted).Render(wrap(area.Description, width))
		blocks = append(blocks, title+"\n"+desc)
	}
	return strings.Join(blocks, "\n\n")
}

func (s *HomeScreen) experienceView(jobs []content.Job, width int) string {
	theme := s.ctx.Theme
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	blocks := make([]string, 0, len(jobs))
	for _, job := range jobs {
		title := lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground).Render(job.Title)
		meta := muted.Render(strings.Join(nonEmpty(job.Company, job.Location, job.Period), " • "))
		blocks = append(blocks, title+"\n"+meta+"\n"+arrowList(theme, job.Achievements, width))
	}
	return strings.Join(blocks, "\n\n")
}

func (s *HomeScreen) educationView(doc *content.Document, width int) string {
	theme := s.ctx.Theme
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	bold := lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground)

	var blocks []string
	for _, edu := range doc.Education {
		block := bold.Render(edu.Degree) + "\n" + muted.Render(strings.Join(nonEmpty(edu.School, edu.Graduated), " • "))
		if len(edu.Details) > 0 {
			block += "\n" + arrowList(theme, edu.Details, width)
		}
		blocks = append(blocks, block)
	}
	for _, cert := range doc.Certifications {
		block := bold.Render(cert.Name) + "\n" + muted.Render(strings.Join(nonEmpty(cert.Detail, cert.Issued), " • "))
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

func (s *HomeScreen) connectView(profile content.Profile, width int) string {
	theme := s.ctx.Theme
	intro := lipgloss.NewStyle().Foreground(theme.Muted).Render(
		wrap("Interested in collaborating on automation, cloud-native systems, or scalable infrastructure?", width))
	return intro + "\n" + linksView(s.ctx, profile.Links)
}

// linksView lists the profile links with the palette command that opens each
func linksView(ctx *types.AppContext, links content.Links) string {
	theme := ctx.Theme
	label := lipgloss.NewStyle().Foreground(theme.Foreground).Width(10)
	hint := lipgloss.NewStyle().Foreground(theme.Dimmed)

	rows := []struct{ name, value string }{
		{"github", links.GitHub},
		{"linkedin", links.LinkedIn},
		{"email", links.Email},
	}

	var lines []string
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			theme.Prompt.Render("→"),
			label.Render(row.name),
			hint.Render(row.value+"  ("+ctx.Keys.PaletteToggle+" "+row.name+")"),
		))
	}
	return strings.Join(lines, "\n")
}

// techStackView renders one "category: chip chip" block per category
func techStackView(ctx *types.AppContext, stack []content.TechCategory, width int) string {
	blocks := make([]string, 0, len(stack))
	for _, cat := range stack {
		title := lipgloss.NewStyle().Bold(true).Foreground(ctx.Theme.Foreground).Render(cat.Category)
		blocks = append(blocks, title+"\n"+chips(ctx.Theme, cat.Items, width))
	}
	return strings.Join(blocks, "\n\n")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
