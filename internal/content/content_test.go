package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
profile:
  name: Test Person
  links:
    github: https://github.com/test
    linkedin: https://www.linkedin.com/in/test/
    email: test@example.com
notes:
  - slug: ramen-run
    title: Midnight Ramen Run
    date: "2025-11-02"
    category: Eat
    tags: [food, chicago]
    excerpt: Tonkotsu at two in the morning.
  - slug: terraform-modules
    title: Terraform Module Patterns
    date: "2026-01-15"
    category: Learn
    tags: [terraform, infra]
    excerpt: How I structure reusable infrastructure.
  - slug: lake-trip
    title: Weekend At The Lake
    date: "2025-07-20"
    category: Go
    tags: [travel, chicago]
    excerpt: Road trip north with a stop for cheese curds.
    body: "# Lake\n\nInline body."
experiments:
  - title: Widget
    status: Planning
`

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		DocumentFile:                 {Data: []byte(fixtureYAML)},
		"notes/ramen-run.md":         {Data: []byte("# Ramen\n\nBroth first.")},
		"notes/terraform-modules.md": {Data: []byte("# Modules\n\nKeep them small.")},
		"notes/lake-trip.md":         {Data: []byte("ignored, body is inline")},
	}
}

func loadFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadFS(fixtureFS())
	require.NoError(t, err)
	return doc
}

func TestDefault(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Omar Flores", doc.Profile.Name)
	assert.Equal(t, "https://github.com/xDestyn", doc.Profile.Links.GitHub)
	assert.Equal(t, "https://www.linkedin.com/in/flores-omar/", doc.Profile.Links.LinkedIn)
	assert.Equal(t, "mailto:omar.flores.cs@outlook.com", doc.Profile.Links.Mailto())
	assert.Len(t, doc.Profile.Hero, 5)
	assert.NotEmpty(t, doc.TechStack)

	note, ok := doc.NoteBySlug("building-this-site")
	require.True(t, ok)
	assert.Equal(t, CategoryBuild, note.Category)
	assert.Contains(t, note.Body, "command palette")
}

func TestLoadFS(t *testing.T) {
	doc := loadFixture(t)

	// newest first
	require.Len(t, doc.Notes, 3)
	assert.Equal(t, "terraform-modules", doc.Notes[0].Slug)
	assert.Equal(t, "ramen-run", doc.Notes[1].Slug)
	assert.Equal(t, "lake-trip", doc.Notes[2].Slug)

	assert.Equal(t, "# Ramen\n\nBroth first.", doc.Notes[1].Body)
	assert.Equal(t, "# Lake\n\nInline body.", doc.Notes[2].Body, "inline body wins over the file")
}

func TestLoadFS_MissingBody(t *testing.T) {
	fsys := fixtureFS()
	delete(fsys, "notes/ramen-run.md")

	doc, err := LoadFS(fsys)
	require.NoError(t, err)

	note, ok := doc.NoteBySlug("ramen-run")
	require.True(t, ok)
	assert.Empty(t, note.Body)
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing profile name",
			yaml:    "profile: {}\n",
			wantErr: "profile.name is required",
		},
		{
			name:    "unknown field",
			yaml:    "profile: {name: A}\nhobbies: [x]\n",
			wantErr: "failed to parse",
		},
		{
			name: "duplicate slug",
			yaml: `profile: {name: A}
notes:
  - {slug: a, title: One, date: "2025-01-01", category: Go}
  - {slug: a, title: Two, date: "2025-01-02", category: Go}
`,
			wantErr: `duplicate slug "a"`,
		},
		{
			name: "bad category",
			yaml: `profile: {name: A}
notes:
  - {slug: a, title: One, date: "2025-01-01", category: All}
`,
			wantErr: `unknown category "All"`,
		},
		{
			name: "bad date",
			yaml: `profile: {name: A}
notes:
  - {slug: a, title: One, date: "Jan 1", category: Go}
`,
			wantErr: "is not YYYY-MM-DD",
		},
		{
			name: "bad slug",
			yaml: `profile: {name: A}
notes:
  - {slug: "Has Spaces", title: One, date: "2025-01-01", category: Go}
`,
			wantErr: "invalid slug",
		},
		{
			name:    "bad github link",
			yaml:    "profile: {name: A, links: {github: github.com/a}}\n",
			wantErr: "profile.links.github",
		},
		{
			name:    "bad email",
			yaml:    "profile: {name: A, links: {email: nobody}}\n",
			wantErr: "is not an address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(fstest.MapFS{DocumentFile: {Data: []byte(tt.yaml)}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		dir := writeContentDir(t, fixtureYAML)
		doc, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "Test Person", doc.Profile.Name)
	})

	t.Run("empty path loads defaults", func(t *testing.T) {
		doc, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Omar Flores", doc.Profile.Name)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(file, []byte(fixtureYAML), 0o644))
		_, err := Load(file)
		assert.ErrorContains(t, err, "is not a directory")
	})
}

func TestNote_Published(t *testing.T) {
	n := Note{Date: "2026-02-09"}
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), n.Published())
	assert.True(t, Note{Date: "soon"}.Published().IsZero())
}

func TestLinks_Mailto(t *testing.T) {
	assert.Equal(t, "", Links{}.Mailto())
	assert.Equal(t, "mailto:a@b.c", Links{Email: "a@b.c"}.Mailto())
}

func writeContentDir(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentFile), []byte(yaml), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, NotesDir), 0o755))
	return dir
}
