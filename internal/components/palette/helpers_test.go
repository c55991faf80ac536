package palette

import (
	"context"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/xdestyn/termfolio/internal/commands"
	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

var testLinks = content.Links{
	GitHub:   "https://github.com/xDestyn",
	LinkedIn: "https://www.linkedin.com/in/flores-omar/",
	Email:    "omar.flores.cs@outlook.com",
}

type fakeOpener struct {
	opened []string
}

func (f *fakeOpener) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return nil
}

type fakeClipboard struct{}

func (fakeClipboard) WriteAll(string) error { return nil }

// newTestPalette returns an open palette over the default commands
func newTestPalette(t *testing.T) (*Model, *fakeOpener) {
	t.Helper()
	opener := &fakeOpener{}
	ctx := types.NewAppContext(ui.GetTheme(ui.DefaultTheme), &content.Document{}, opener, fakeClipboard{})
	m := New(ctx, commands.Default(testLinks))
	m.SetSize(80, 40)
	m.Open()
	return m, opener
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(key(k))
	return cmd
}

// run executes cmd and expands batches and sequences into their messages
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(t, c)...)
		}
		return out
	}
	// tea.Sequence wraps its commands in an unexported slice type
	if v := reflect.ValueOf(msg); v.IsValid() && v.Kind() == reflect.Slice {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c, ok := v.Index(i).Interface().(tea.Cmd)
			require.True(t, ok, "unexpected slice message %T", msg)
			out = append(out, run(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// dispatchFrom runs the command returned by Submit and returns the
// DispatchMsg it produced.
func dispatchFrom(t *testing.T, cmd tea.Cmd) DispatchMsg {
	t.Helper()
	require.NotNil(t, cmd)
	for _, msg := range run(t, cmd) {
		if d, ok := msg.(DispatchMsg); ok {
			return d
		}
	}
	t.Fatal("no DispatchMsg produced")
	return DispatchMsg{}
}
