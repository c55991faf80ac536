package screens

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

const fixtureYAML = `
profile:
  name: Test Person
  handle: tester
  tagline: Testing things, mostly.
  hero:
    - "> Hi"
    - "> Bye"
  bio:
    - First paragraph of the bio.
  links:
    github: https://github.com/test
    linkedin: https://www.linkedin.com/in/test/
    email: test@example.com
now:
  - title: Building
    items: [Test fixtures]
techStack:
  - category: Languages
    items: [Go, SQL]
notes:
  - slug: ramen-run
    title: Midnight Ramen Run
    date: "2025-11-02"
    category: Eat
    tags: [food, chicago]
    excerpt: Tonkotsu at two in the morning.
    body: "# Ramen\n\nBroth first."
  - slug: terraform-modules
    title: Terraform Module Patterns
    date: "2026-01-15"
    category: Learn
    tags: [terraform, infra]
    excerpt: How I structure reusable infrastructure.
    body: "# Modules\n\nKeep them small."
  - slug: lake-trip
    title: Weekend At The Lake
    date: "2025-07-20"
    category: Go
    tags: [travel, chicago]
    excerpt: Road trip north with a stop for cheese curds.
    body: "# Lake\n\nCold water."
  - slug: draft-idea
    title: Draft Idea
    date: "2025-01-01"
    category: Build
    tags: [go]
    excerpt: Not written yet.
experiments:
  - title: Portfolio
    description: This very app.
    tech: [Go, Bubble Tea]
    status: Complete
    github: https://github.com/test/portfolio
    demo: /
  - title: Tracker
    description: Tracks things.
    github: https://github.com/test/tracker
    demo: https://tracker.example.com
  - title: Widget
    status: Planning
`

func loadFixture(t *testing.T) *content.Document {
	t.Helper()
	doc, err := content.LoadFS(fstest.MapFS{
		content.DocumentFile: {Data: []byte(fixtureYAML)},
	})
	require.NoError(t, err)
	return doc
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return f.err
}

type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

func newTestContext(t *testing.T) (*types.AppContext, *fakeOpener, *fakeClipboard) {
	t.Helper()
	opener := &fakeOpener{}
	clip := &fakeClipboard{}
	ctx := types.NewAppContext(ui.GetTheme(ui.DefaultTheme), loadFixture(t), opener, clip)
	// notty keeps rendered markdown free of escape codes
	ctx.Renderer = content.NewRenderer("notty", time.Minute)
	return ctx, opener, clip
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys to screen and returns the last command
func press(screen types.Screen, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = screen.Update(key(k))
	}
	return cmd
}

// typeText sends s one rune at a time
func typeText(screen types.Screen, s string) {
	for _, r := range s {
		screen.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// msgOf runs cmd and returns its message, or nil
func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
