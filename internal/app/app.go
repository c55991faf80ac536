// Package app is the root Bubble Tea model. It owns the screens, the
// header and status bar, and the command palette's open state: ctrl+k is
// handled here and nowhere else.
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xdestyn/termfolio/internal/commands"
	"github.com/xdestyn/termfolio/internal/components"
	"github.com/xdestyn/termfolio/internal/components/palette"
	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/messages"
	"github.com/xdestyn/termfolio/internal/router"
	"github.com/xdestyn/termfolio/internal/screens"
	"github.com/xdestyn/termfolio/internal/types"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Model struct {
	ctx           *types.AppContext
	router        *router.Router
	registry      *types.ScreenRegistry
	currentScreen types.Screen
	currentPath   string
	header        *components.Header
	layout        *components.Layout
	statusBar     *components.StatusBar
	palette       *palette.Model
	width         int
	height        int
}

func NewModel(ctx *types.AppContext) Model {
	registry := types.NewScreenRegistry()
	for _, screen := range screens.All(ctx) {
		registry.Register(screen)
	}

	initialScreen, _ := registry.Get(router.ScreenHome)

	header := components.NewHeader(ctx)
	header.SetScreenTitle(initialScreen.Title())
	header.SetWidth(defaultWidth)

	statusBar := components.NewStatusBar(ctx.Theme)
	statusBar.SetWidth(defaultWidth)

	layout := components.NewLayout(defaultWidth, defaultHeight, ctx.Theme)

	p := palette.New(ctx, commands.Default(ctx.Content.Profile.Links))
	p.SetSize(defaultWidth, layout.CalculateBodyHeight())

	m := Model{
		ctx:           ctx,
		router:        router.Default(),
		registry:      registry,
		currentScreen: initialScreen,
		currentPath:   router.PathHome,
		header:        header,
		layout:        layout,
		statusBar:     statusBar,
		palette:       p,
		width:         defaultWidth,
		height:        defaultHeight,
	}
	m.resizeCurrentScreen()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.windowTitle()),
		m.currentScreen.Init(),
	)
}

func (m Model) windowTitle() string {
	if handle := m.ctx.Content.Profile.Handle; handle != "" {
		return handle + " ~ termfolio"
	}
	return "termfolio"
}

// CurrentPath returns the route being shown
func (m Model) CurrentPath() string {
	return m.currentPath
}

// CurrentScreen returns the screen being shown
func (m Model) CurrentScreen() types.Screen {
	return m.currentScreen
}

// Palette exposes the command palette for inspection
func (m Model) Palette() *palette.Model {
	return m.palette
}

// StatusBar exposes the status bar for inspection
func (m Model) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.palette.SetSize(msg.Width, m.layout.CalculateBodyHeight())
		m.resizeCurrentScreen()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// The palette's own messages reach it even when it is closed, so a
	// stale dispatch is seen and dropped rather than lost.
	case palette.DispatchMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd

	case types.ClosePaletteMsg:
		if msg.Epoch != m.palette.Epoch() {
			logging.Debug("ignoring stale palette close", "epoch", msg.Epoch, "current", m.palette.Epoch())
			return m, nil
		}
		m.palette.Close()
		return m, nil

	case types.NavigateMsg:
		cmd := m.navigate(msg.Path)
		return m, cmd

	case types.StatusMsg:
		return m, m.statusBar.Show(msg)

	case types.ClearStatusMsg:
		m.statusBar.Clear(msg.MessageID)
		return m, nil

	case types.ContentReloadedMsg:
		cmd := m.reloadContent(msg)
		return m, cmd
	}

	// Forward everything else (ticks and the like) to the current screen
	model, cmd := m.currentScreen.Update(msg)
	m.currentScreen = model.(types.Screen)
	m.registry.Update(m.currentScreen)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ctx.Keys
	keyStr := msg.String()

	switch keyStr {
	case keys.PaletteToggle:
		if m.palette.IsOpen() {
			m.palette.Close()
		} else {
			m.palette.Open()
		}
		return m, nil
	case keys.Quit:
		return m, commands.QuitCommand()
	}

	// While open the palette takes every key
	if m.palette.IsOpen() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	inputFocused := false
	if s, ok := m.currentScreen.(types.InputScreen); ok {
		inputFocused = s.InputFocused()
	}

	if !inputFocused {
		if keyStr == keys.QuitShort {
			return m, commands.QuitCommand()
		}
		if path, ok := m.shortcutPath(keyStr); ok {
			cmd := m.navigate(path)
			return m, cmd
		}
	}

	model, cmd := m.currentScreen.Update(msg)
	m.currentScreen = model.(types.Screen)
	m.registry.Update(m.currentScreen)
	return m, cmd
}

// shortcutPath maps the page keys to their routes
func (m Model) shortcutPath(key string) (string, bool) {
	keys := m.ctx.Keys
	switch key {
	case keys.Home:
		return router.PathHome, true
	case keys.Notes:
		return router.PathNotes, true
	case keys.Lab:
		return router.PathLab, true
	case keys.About:
		return router.PathAbout, true
	}
	return "", false
}

// navigate shows the screen for path. Unknown paths leave the current
// screen in place and report an error.
func (m *Model) navigate(path string) tea.Cmd {
	match, ok := m.router.Match(path)
	if !ok {
		logging.Debug("Route miss", "path", path)
		return messages.ErrorCmd("No page at %s", path)
	}

	if match.Path == m.currentPath {
		return nil
	}

	screen, ok := m.registry.Get(match.ScreenID)
	if !ok {
		logging.Error("Route has no screen", "path", match.Path, "screen", match.ScreenID)
		return messages.ErrorCmd("No page at %s", path)
	}

	logging.Debug("Navigate", "from", m.currentPath, "to", match.Path, "screen", match.ScreenID)

	m.currentScreen = screen
	m.currentPath = match.Path
	m.header.SetCurrentPath(match.Path)
	m.header.SetScreenTitle(screen.Title())
	m.resizeCurrentScreen()

	var cmds []tea.Cmd
	if routed, ok := screen.(types.RoutedScreen); ok {
		cmds = append(cmds, routed.SetParams(match.Params))
	}
	cmds = append(cmds, screen.Init())
	return tea.Batch(cmds...)
}

// reloadContent swaps in a new document and lets every screen rebuild
func (m *Model) reloadContent(msg types.ContentReloadedMsg) tea.Cmd {
	if msg.Doc == nil {
		return nil
	}

	m.ctx.Content = msg.Doc
	m.ctx.Renderer.Reset()
	m.palette.SetRegistry(commands.Default(msg.Doc.Profile.Links))
	m.header.SetHandle(msg.Doc.Profile.Handle)

	logging.Info("Content reloaded", "notes", len(msg.Doc.Notes), "experiments", len(msg.Doc.Experiments))

	cmds := []tea.Cmd{messages.InfoCmd("Content reloaded")}
	for _, screen := range m.registry.All() {
		model, cmd := screen.Update(msg)
		m.registry.Update(model.(types.Screen))
		cmds = append(cmds, cmd)
	}
	m.currentScreen, _ = m.registry.Get(m.currentScreen.ID())
	return tea.Batch(cmds...)
}

func (m *Model) resizeCurrentScreen() {
	if screenWithSize, ok := m.currentScreen.(interface{ SetSize(int, int) }); ok {
		screenWithSize.SetSize(m.width, m.layout.CalculateBodyHeight())
	}
}

func (m Model) View() string {
	header := m.header.View()
	body := m.currentScreen.View()

	overlay := ""
	help := m.currentScreen.HelpText()
	if m.palette.IsOpen() {
		overlay = m.palette.View()
		help = "esc: close • " + m.ctx.Keys.PaletteToggle + ": toggle"
	}

	return m.layout.Render(header, body, overlay, help, m.statusBar.View())
}
