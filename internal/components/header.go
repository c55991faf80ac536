package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

// NavItem is one link in the header nav bar
type NavItem struct {
	Label string
	Path  string
	Key   string
}

// DefaultNav returns the nav bar entries in display order
func DefaultNav(ctx *types.AppContext) []NavItem {
	return []NavItem{
		{Label: "home", Path: router.PathHome, Key: ctx.Keys.Home},
		{Label: "field notes", Path: router.PathNotes, Key: ctx.Keys.Notes},
		{Label: "lab", Path: router.PathLab, Key: ctx.Keys.Lab},
		{Label: "about", Path: router.PathAbout, Key: ctx.Keys.About},
	}
}

type Header struct {
	handle      string
	screenTitle string
	currentPath string
	toggleKey   string
	nav         []NavItem
	width       int
	theme       *ui.Theme
}

func NewHeader(ctx *types.AppContext) *Header {
	return &Header{
		handle:      ctx.Content.Profile.Handle,
		currentPath: router.PathHome,
		toggleKey:   ctx.Keys.PaletteToggle,
		nav:         DefaultNav(ctx),
		theme:       ctx.Theme,
	}
}

func (h *Header) SetHandle(handle string) {
	h.handle = handle
}

func (h *Header) SetScreenTitle(title string) {
	h.screenTitle = title
}

func (h *Header) SetCurrentPath(path string) {
	h.currentPath = path
}

func (h *Header) CurrentPath() string {
	return h.currentPath
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

// Active returns the label of the highlighted nav item, or "" when the
// current path has none (there is always one for known routes).
func (h *Header) Active() string {
	for _, item := range h.nav {
		if router.IsActive(item.Path, h.currentPath) {
			return item.Label
		}
	}
	return ""
}

func (h *Header) View() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.Primary)

	hintStyle := lipgloss.NewStyle().
		Foreground(h.theme.Dimmed).
		Padding(0, 1)

	// Left side: "~/xdestyn $ field notes"
	brand := "~"
	if h.handle != "" {
		brand = "~/" + h.handle
	}
	leftText := brand + " $"
	if h.screenTitle != "" {
		leftText += " " + h.screenTitle
	}
	left := brandStyle.Render(leftText)

	// Right side: nav links plus the palette hint
	links := make([]string, 0, len(h.nav))
	for _, item := range h.nav {
		label := "[" + item.Key + "] " + item.Label
		if router.IsActive(item.Path, h.currentPath) {
			links = append(links, h.theme.NavActive.Render(label))
		} else {
			links = append(links, h.theme.NavInactive.Render(label))
		}
	}
	right := strings.Join(links, " ") + hintStyle.Render(h.toggleKey)

	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		// Not enough room: drop the nav and keep the brand
		return left
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", spacing), right)
}
