//go:build e2e

// End-to-end tests drive a real tea.Program through testutil. They are
// slower than the Update-level tests and run with -tags e2e.
package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/testutil"
	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

func setupE2E(t *testing.T) (*testutil.TestProgram, *fakeOpener) {
	t.Helper()

	doc, err := content.Default()
	require.NoError(t, err)

	opener := &fakeOpener{}
	ctx := types.NewAppContext(ui.GetTheme(ui.DefaultTheme), doc, opener, fakeClipboard{})
	ctx.Renderer = content.NewRenderer("notty", time.Minute)

	tp := testutil.NewTestProgram(t, NewModel(ctx), 120, 40)
	require.True(t, tp.WaitForScreen("home", 2*time.Second), "app did not start")
	return tp, opener
}

func TestE2E_PaletteNavigation(t *testing.T) {
	tp, _ := setupE2E(t)

	tp.TogglePalette()
	assert.True(t, tp.WaitForOutput("command palette", time.Second))

	tp.Type("notes")
	tp.SendKey(tea.KeyEnter)
	assert.True(t, tp.WaitForScreen("field notes", 2*time.Second))
}

func TestE2E_PaletteHelp(t *testing.T) {
	tp, _ := setupE2E(t)

	tp.RunCommand("help")
	assert.True(t, tp.WaitForOutput("Available commands", time.Second))
	assert.True(t, tp.WaitForOutput("professional page", time.Second))
}

func TestE2E_PaletteUnknownCommand(t *testing.T) {
	tp, _ := setupE2E(t)

	tp.RunCommand("nope")
	assert.True(t, tp.WaitForOutput("Command not found: nope.", time.Second))
}

func TestE2E_PaletteExternalLink(t *testing.T) {
	tp, opener := setupE2E(t)

	tp.RunCommand("linkedin")
	assert.True(t, tp.WaitForMessage("success", 2*time.Second))
	tp.Quit()
	assert.Equal(t, []string{"https://www.linkedin.com/in/flores-omar/"}, opener.opened)
}

func TestE2E_CloseCancelsDispatch(t *testing.T) {
	tp, _ := setupE2E(t)

	tp.RunCommand("lab")
	tp.TogglePalette()

	assert.False(t, tp.WaitForScreen("lab", time.Second), "closed palette must not navigate")
}

func TestE2E_ShortcutsAndQuit(t *testing.T) {
	tp, _ := setupE2E(t)

	tp.Type("n")
	assert.True(t, tp.WaitForScreen("field notes", time.Second))

	tp.SendKey(tea.KeyEnter)
	assert.True(t, tp.WaitForOutput("Building This Site", 2*time.Second))

	tp.SendKey(tea.KeyEsc)
	tp.Type("a")
	assert.True(t, tp.WaitForScreen("about", time.Second))

	tp.Type("q")
	select {
	case <-tp.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("q did not quit")
	}
}
