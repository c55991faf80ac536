package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	err    error
}

func (f *fakeOpener) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestContext(opener *fakeOpener, clip *fakeClipboard) *types.AppContext {
	return types.NewAppContext(ui.GetTheme(ui.DefaultTheme), &content.Document{}, opener, clip)
}

func TestDefault_Order(t *testing.T) {
	r := Default(testLinks)
	assert.Equal(t,
		[]string{"help", "home", "notes", "lab", "about", "linkedin", "github", "email"},
		r.Names())
	assert.Equal(t, 8, r.Len())
}

func TestDefault_Actions(t *testing.T) {
	r := Default(testLinks)

	tests := []struct {
		name   string
		action string
		kind   ActionKind
	}{
		{"help", "help", ActionHelp},
		{"home", "/", ActionRoute},
		{"notes", "/field-notes", ActionRoute},
		{"lab", "/lab", ActionRoute},
		{"about", "/about", ActionRoute},
		{"linkedin", "https://www.linkedin.com/in/flores-omar/", ActionLink},
		{"github", "https://github.com/xDestyn", ActionLink},
		{"email", "mailto:omar.flores.cs@outlook.com", ActionMail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := r.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, tt.kind, cmd.Kind())
			assert.NotEmpty(t, cmd.Response)
			assert.NotEmpty(t, cmd.Description)
		})
	}
}

func TestDefault_MissingLinksDropCommands(t *testing.T) {
	r := Default(content.Links{GitHub: "https://github.com/x"})
	assert.Equal(t, []string{"help", "home", "notes", "lab", "about", "github"}, r.Names())

	help, _ := r.Lookup("help")
	assert.NotContains(t, help.Response, "linkedin")
	assert.NotContains(t, help.Response, "email")
}

func TestLookup_AnyCasing(t *testing.T) {
	r := Default(testLinks)
	for _, name := range r.Names() {
		for _, variant := range []string{name, strings.ToUpper(name), strings.ToUpper(name[:1]) + name[1:]} {
			cmd, ok := r.Lookup(variant)
			require.True(t, ok, variant)
			assert.Equal(t, name, cmd.Name)
		}
	}

	_, ok := r.Lookup("nope")
	assert.False(t, ok)
	_, ok = r.Lookup("")
	assert.False(t, ok)
	_, ok = r.Lookup(" help")
	assert.False(t, ok, "callers trim")
}

func TestSuggest(t *testing.T) {
	r := Default(testLinks)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", nil},
		{"h", []string{"help", "home"}},
		{"H", []string{"help", "home"}},
		{"he", []string{"help"}},
		{"l", []string{"lab", "linkedin"}},
		{"e", []string{"email"}},
		{"github", []string{"github"}},
		{"githubx", nil},
		{"z", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Suggest(tt.prefix))
		})
	}
}

func TestSuggest_FullKeyIncludesKey(t *testing.T) {
	r := Default(testLinks)
	for _, name := range r.Names() {
		assert.Contains(t, r.Suggest(name), name)
	}
}

func TestHelpResponse(t *testing.T) {
	r := Default(testLinks)
	help, ok := r.Lookup("help")
	require.True(t, ok)

	want := `Available commands:

• home – return to main view
• notes – read field notes
• lab – open experiments
• about – who am I
• linkedin – professional page
• github – code repositories
• email – send a message`
	assert.Equal(t, want, help.Response)

	lines := strings.Split(help.Response, "\n")
	var entries int
	for _, line := range lines {
		if strings.HasPrefix(line, "• ") {
			entries++
		}
	}
	assert.Equal(t, 7, entries)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry(Command{Name: ""})
	assert.Error(t, err)

	_, err = NewRegistry(Command{Name: " pad"})
	assert.Error(t, err)

	_, err = NewRegistry(Command{Name: "a"}, Command{Name: "A"})
	assert.ErrorContains(t, err, "duplicate")
}

func TestNewRegistry_LowercasesNames(t *testing.T) {
	r, err := NewRegistry(Command{Name: "GitHub", Action: "https://x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, r.Names())

	all := r.All()
	all[0].Name = "mutated"
	assert.Equal(t, []string{"github"}, r.Names(), "All returns a copy")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ActionHelp, Classify("help"))
	assert.Equal(t, ActionLink, Classify("https://a"))
	assert.Equal(t, ActionLink, Classify("http://a"))
	assert.Equal(t, ActionMail, Classify("mailto:a@b"))
	assert.Equal(t, ActionRoute, Classify("/"))
	assert.Equal(t, ActionRoute, Classify("/field-notes/x"))
	assert.Equal(t, "mail", ActionMail.String())
}

func TestEffects(t *testing.T) {
	ctx := newTestContext(&fakeOpener{}, &fakeClipboard{})
	r := Default(testLinks)

	t.Run("help has no effect", func(t *testing.T) {
		help, _ := r.Lookup("help")
		assert.Nil(t, Effects(ctx, help, 0))
		assert.Nil(t, Effect(ctx, help, 0))
	})

	t.Run("route navigates then closes", func(t *testing.T) {
		lab, _ := r.Lookup("lab")
		effects := Effects(ctx, lab, 3)
		require.Len(t, effects, 2)
		assert.Equal(t, types.NavigateMsg{Path: "/lab"}, effects[0]())
		assert.Equal(t, types.ClosePaletteMsg{Epoch: 3}, effects[1]())
		assert.NotNil(t, Effect(ctx, lab, 3))
	})

	t.Run("link opens then closes", func(t *testing.T) {
		opener := &fakeOpener{}
		ctx := newTestContext(opener, &fakeClipboard{})
		github, _ := r.Lookup("github")

		effects := Effects(ctx, github, 7)
		require.Len(t, effects, 2)
		assert.Equal(t, types.SuccessMsg("Opened https://github.com/xDestyn"), effects[0]())
		assert.Equal(t, []string{"https://github.com/xDestyn"}, opener.opened)
		assert.Equal(t, types.ClosePaletteMsg{Epoch: 7}, effects[1]())
	})

	t.Run("mail goes through the opener", func(t *testing.T) {
		opener := &fakeOpener{}
		ctx := newTestContext(opener, &fakeClipboard{})
		email, _ := r.Lookup("email")

		effects := Effects(ctx, email, 0)
		require.Len(t, effects, 2)
		effects[0]()
		assert.Equal(t, []string{"mailto:omar.flores.cs@outlook.com"}, opener.opened)
	})
}

func TestOpenLinkCommand_Fallback(t *testing.T) {
	t.Run("copies when opener fails", func(t *testing.T) {
		clip := &fakeClipboard{}
		ctx := newTestContext(&fakeOpener{err: errors.New("no display")}, clip)

		msg := OpenLinkCommand(ctx, "https://x.dev")()
		status, ok := msg.(types.StatusMsg)
		require.True(t, ok)
		assert.Equal(t, types.MessageTypeInfo, status.Type)
		assert.Contains(t, status.Message, "Link copied to clipboard")
		assert.Equal(t, "https://x.dev", clip.text)
	})

	t.Run("error when both fail", func(t *testing.T) {
		ctx := newTestContext(
			&fakeOpener{err: errors.New("no display")},
			&fakeClipboard{err: errors.New("no clipboard")})

		status := OpenLinkCommand(ctx, "https://x.dev")().(types.StatusMsg)
		assert.Equal(t, types.MessageTypeError, status.Type)
		assert.Contains(t, status.Message, "Could not open https://x.dev")
		assert.Contains(t, status.Message, "no display")
	})
}

func TestCopyLinkCommand(t *testing.T) {
	clip := &fakeClipboard{}
	ctx := newTestContext(&fakeOpener{}, clip)

	status := CopyLinkCommand(ctx, "https://github.com/x")().(types.StatusMsg)
	assert.Equal(t, types.MessageTypeSuccess, status.Type)
	assert.Equal(t, "https://github.com/x", clip.text)

	status = CopyLinkCommand(ctx, "")().(types.StatusMsg)
	assert.Equal(t, types.MessageTypeError, status.Type)

	clip.err = errors.New("denied")
	status = CopyLinkCommand(ctx, "https://github.com/x")().(types.StatusMsg)
	assert.Equal(t, types.MessageTypeError, status.Type)
	assert.Contains(t, status.Message, "denied")
}
