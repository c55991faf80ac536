package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/browser"
	"github.com/xdestyn/termfolio/internal/commands"
	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/messages"
	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/types"
)

// LabScreen lists side projects. The selected card's links open with
// o/d and y copies the repository link.
type LabScreen struct {
	ctx      *types.AppContext
	viewport viewport.Model
	cursor   int
	// cards holds the first and last content line of every card
	cards  [][2]int
	width  int
	height int
}

func NewLabScreen(ctx *types.AppContext) *LabScreen {
	s := &LabScreen{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
	s.refresh()
	return s
}

func (s *LabScreen) ID() string {
	return router.ScreenLab
}

func (s *LabScreen) Title() string {
	return "lab"
}

func (s *LabScreen) HelpText() string {
	return "↑/↓: select • o: code • d: demo • y: copy repo link • ctrl+k: commands"
}

func (s *LabScreen) Init() tea.Cmd {
	return nil
}

// Cursor returns the index of the selected experiment
func (s *LabScreen) Cursor() int {
	return s.cursor
}

// Selected returns the experiment under the cursor
func (s *LabScreen) Selected() (content.Experiment, bool) {
	experiments := s.ctx.Content.Experiments
	if s.cursor < 0 || s.cursor >= len(experiments) {
		return content.Experiment{}, false
	}
	return experiments[s.cursor], true
}

func (s *LabScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case types.ContentReloadedMsg:
		s.cursor = min(s.cursor, max(len(s.ctx.Content.Experiments)-1, 0))
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *LabScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := s.ctx.Keys
	count := len(s.ctx.Content.Experiments)

	switch msg.String() {
	case "up", keys.Up:
		s.moveTo(s.cursor - 1)
		return nil
	case "down", keys.Down:
		s.moveTo(s.cursor + 1)
		return nil
	case "home", keys.JumpTop:
		s.moveTo(0)
		return nil
	case "end", keys.JumpBottom:
		s.moveTo(count - 1)
		return nil
	case keys.OpenCode:
		return s.openCode()
	case keys.OpenDemo:
		return s.openDemo()
	case keys.CopyLink:
		return s.copyLink()
	}

	// Page keys scroll without moving the selection
	scrollViewport(&s.viewport, keys, msg)
	return nil
}

func (s *LabScreen) openCode() tea.Cmd {
	exp, ok := s.Selected()
	if !ok {
		return nil
	}
	if exp.GitHub == "" {
		return messages.InfoCmd("%s has no public repository", exp.Title)
	}
	return commands.OpenLinkCommand(s.ctx, exp.GitHub)
}

// openDemo opens the demo link. Demos that are site paths ("/about")
// navigate inside the app instead.
func (s *LabScreen) openDemo() tea.Cmd {
	exp, ok := s.Selected()
	if !ok {
		return nil
	}
	switch {
	case exp.Demo == "":
		return messages.InfoCmd("%s has no demo yet", exp.Title)
	case browser.IsExternal(exp.Demo):
		return commands.OpenLinkCommand(s.ctx, exp.Demo)
	default:
		return types.NavigateCmd(exp.Demo)
	}
}

func (s *LabScreen) copyLink() tea.Cmd {
	exp, ok := s.Selected()
	if !ok {
		return nil
	}
	return commands.CopyLinkCommand(s.ctx, exp.GitHub)
}

func (s *LabScreen) moveTo(index int) {
	count := len(s.ctx.Content.Experiments)
	if count == 0 {
		return
	}
	s.cursor = min(max(index, 0), count-1)
	s.refresh()
	s.scrollToCursor()
}

// scrollToCursor keeps the whole selected card on screen when it fits
func (s *LabScreen) scrollToCursor() {
	if s.cursor >= len(s.cards) {
		return
	}
	start, end := s.cards[s.cursor][0], s.cards[s.cursor][1]
	if start < s.viewport.YOffset {
		s.viewport.SetYOffset(start)
	} else if end >= s.viewport.YOffset+s.viewport.Height {
		s.viewport.SetYOffset(min(start, end-s.viewport.Height+1))
	}
}

func (s *LabScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	s.refresh()
}

func (s *LabScreen) View() string {
	return s.viewport.View()
}

func (s *LabScreen) refresh() {
	theme := s.ctx.Theme
	width := proseWidth(s.width)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	header := lipgloss.NewStyle().Foreground(theme.Success).Render("● Experiments in progress") + "\n" +
		pageTitle(theme, "The Lab",
			"Side projects, technical experiments, and weekend builds. Where ideas become reality.", width)

	lines := strings.Count(header, "\n") + 2
	blocks := []string{header}
	s.cards = s.cards[:0]

	experiments := s.ctx.Content.Experiments
	if len(experiments) == 0 {
		blocks = append(blocks, muted.Render("Nothing in the lab right now."))
	}
	for i, exp := range experiments {
		card := s.cardView(exp, i == s.cursor, width)
		height := lipgloss.Height(card)
		s.cards = append(s.cards, [2]int{lines, lines + height - 1})
		lines += height + 1
		blocks = append(blocks, card)
	}

	cta := section(theme, "Have an idea? Let's build it.",
		muted.Render(wrap("I'm always open to collaborating on interesting projects or discussing new ideas.", width))+"\n"+
			theme.Prompt.Render("→")+" "+muted.Render(s.ctx.Keys.PaletteToggle+" email"), width)
	blocks = append(blocks, cta)

	s.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (s *LabScreen) cardView(exp content.Experiment, selected bool, width int) string {
	theme := s.ctx.Theme
	inner := width - 4

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground).Render(exp.Title)
	if exp.Status != "" {
		title += " " + theme.Chip.Render(exp.Status)
	}

	body := []string{
		title,
		lipgloss.NewStyle().Foreground(theme.Muted).Render(wrap(exp.Description, inner)),
	}
	if len(exp.Tech) > 0 {
		body = append(body, chips(theme, exp.Tech, inner))
	}

	var links []string
	if exp.GitHub != "" {
		links = append(links, "["+s.ctx.Keys.OpenCode+"] code", "["+s.ctx.Keys.CopyLink+"] copy link")
	}
	if exp.Demo != "" {
		links = append(links, "["+s.ctx.Keys.OpenDemo+"] demo")
	}
	if len(links) > 0 {
		body = append(body, lipgloss.NewStyle().Foreground(theme.Dimmed).Render(strings.Join(links, "  ")))
	}

	border := theme.Border
	if selected {
		border = theme.Primary
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))
}
