package content

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// NoteQuery narrows the notes list. The zero value matches everything.
type NoteQuery struct {
	// Category is CategoryAll, empty, or one note category
	Category string
	// Tags must all be present on a note
	Tags []string
	// Search is matched fuzzily against title and excerpt
	Search string
}

// IsZero reports whether the query filters nothing
func (q NoteQuery) IsZero() bool {
	return (q.Category == "" || q.Category == CategoryAll) &&
		len(q.Tags) == 0 &&
		strings.TrimSpace(q.Search) == ""
}

// noteSource adapts a note slice to fuzzy.Source
type noteSource []Note

func (s noteSource) String(i int) string {
	return strings.ToLower(s[i].Title + " " + s[i].Excerpt)
}

func (s noteSource) Len() int {
	return len(s)
}

// FilterNotes returns the notes matching q. Without a search term the
// document order (newest first) is kept; with one, best matches come first.
func (d *Document) FilterNotes(q NoteQuery) []Note {
	candidates := make([]Note, 0, len(d.Notes))
	for _, note := range d.Notes {
		if q.Category != "" && q.Category != CategoryAll && note.Category != q.Category {
			continue
		}
		if !hasAllTags(note, q.Tags) {
			continue
		}
		candidates = append(candidates, note)
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return candidates
	}

	matches := fuzzy.FindFrom(search, noteSource(candidates))
	result := make([]Note, 0, len(matches))
	for _, m := range matches {
		result = append(result, candidates[m.Index])
	}
	return result
}

func hasAllTags(note Note, tags []string) bool {
	for _, tag := range tags {
		if !note.HasTag(tag) {
			return false
		}
	}
	return true
}

// AllTags returns every tag used by any note, sorted and unique
func (d *Document) AllTags() []string {
	set := make(map[string]struct{})
	for _, note := range d.Notes {
		for _, tag := range note.Tags {
			set[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NoteBySlug finds a note. Lookups are exact; slugs are lower case.
func (d *Document) NoteBySlug(slug string) (Note, bool) {
	for _, note := range d.Notes {
		if note.Slug == slug {
			return note, true
		}
	}
	return Note{}, false
}

// NextCategory returns the filter after current, wrapping to CategoryAll
func NextCategory(current string) string {
	for i, c := range Categories {
		if c == current {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return CategoryAll
}
