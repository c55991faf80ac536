package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slugs(notes []Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Slug)
	}
	return out
}

func TestFilterNotes(t *testing.T) {
	doc := loadFixture(t)

	tests := []struct {
		name  string
		query NoteQuery
		want  []string
	}{
		{
			name:  "zero query keeps order",
			query: NoteQuery{},
			want:  []string{"terraform-modules", "ramen-run", "lake-trip"},
		},
		{
			name:  "all category",
			query: NoteQuery{Category: CategoryAll},
			want:  []string{"terraform-modules", "ramen-run", "lake-trip"},
		},
		{
			name:  "single category",
			query: NoteQuery{Category: CategoryEat},
			want:  []string{"ramen-run"},
		},
		{
			name:  "category without notes",
			query: NoteQuery{Category: CategoryBuild},
			want:  []string{},
		},
		{
			name:  "one tag",
			query: NoteQuery{Tags: []string{"chicago"}},
			want:  []string{"ramen-run", "lake-trip"},
		},
		{
			name:  "all tags must match",
			query: NoteQuery{Tags: []string{"chicago", "travel"}},
			want:  []string{"lake-trip"},
		},
		{
			name:  "tag and category",
			query: NoteQuery{Category: CategoryLearn, Tags: []string{"chicago"}},
			want:  []string{},
		},
		{
			name:  "search title",
			query: NoteQuery{Search: "midnight"},
			want:  []string{"ramen-run"},
		},
		{
			name:  "search is case insensitive",
			query: NoteQuery{Search: "TERRAFORM"},
			want:  []string{"terraform-modules"},
		},
		{
			name:  "search excerpt",
			query: NoteQuery{Search: "cheese curds"},
			want:  []string{"lake-trip"},
		},
		{
			name:  "search excerpt of another note",
			query: NoteQuery{Search: "tonkotsu"},
			want:  []string{"ramen-run"},
		},
		{
			name:  "search matches inside words",
			query: NoteQuery{Search: "infra"},
			want:  []string{"terraform-modules"},
		},
		{
			name:  "search does not look at tags",
			query: NoteQuery{Search: "travel"},
			want:  []string{},
		},
		{
			name:  "search with no match",
			query: NoteQuery{Search: "zzzz"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugs(doc.FilterNotes(tt.query)))
		})
	}
}

func TestNoteQuery_IsZero(t *testing.T) {
	assert.True(t, NoteQuery{}.IsZero())
	assert.True(t, NoteQuery{Category: CategoryAll, Search: "  "}.IsZero())
	assert.False(t, NoteQuery{Category: CategoryGo}.IsZero())
	assert.False(t, NoteQuery{Tags: []string{"x"}}.IsZero())
	assert.False(t, NoteQuery{Search: "x"}.IsZero())
}

func TestAllTags(t *testing.T) {
	doc := loadFixture(t)
	assert.Equal(t, []string{"chicago", "food", "infra", "terraform", "travel"}, doc.AllTags())
	assert.Empty(t, (&Document{}).AllTags())
}

func TestNoteBySlug(t *testing.T) {
	doc := loadFixture(t)

	note, ok := doc.NoteBySlug("lake-trip")
	assert.True(t, ok)
	assert.Equal(t, "Weekend At The Lake", note.Title)

	_, ok = doc.NoteBySlug("Lake-Trip")
	assert.False(t, ok)
}

func TestNextCategory(t *testing.T) {
	assert.Equal(t, CategoryEat, NextCategory(CategoryAll))
	assert.Equal(t, CategoryLearn, NextCategory(CategoryBuild))
	assert.Equal(t, CategoryAll, NextCategory(CategoryLearn))
	assert.Equal(t, CategoryAll, NextCategory("bogus"))
}

func TestNote_HasTag(t *testing.T) {
	n := Note{Tags: []string{"React", "vite"}}
	assert.True(t, n.HasTag("react"))
	assert.True(t, n.HasTag("VITE"))
	assert.False(t, n.HasTag("go"))
}
