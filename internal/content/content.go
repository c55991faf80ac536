// Package content holds the portfolio data every screen renders: profile,
// experience, stack, field notes and lab experiments. Nothing in the UI
// hard-codes these; they come from a YAML document plus one markdown file
// per note.
package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the format of Note.Date
const DateLayout = "2006-01-02"

// Note categories, in the order the notes screen cycles through them.
// CategoryAll is a filter value, never a note's category.
const (
	CategoryAll   = "All"
	CategoryEat   = "Eat"
	CategoryGo    = "Go"
	CategoryBuild = "Build"
	CategoryLearn = "Learn"
)

// Categories lists the filter values for the notes screen
var Categories = []string{CategoryAll, CategoryEat, CategoryGo, CategoryBuild, CategoryLearn}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Document is the full content set
type Document struct {
	Profile        Profile         `json:"profile"`
	FocusAreas     []FocusArea     `json:"focusAreas"`
	Experience     []Job           `json:"experience"`
	TechStack      []TechCategory  `json:"techStack"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Now            []NowCard       `json:"now"`
	Notes          []Note          `json:"notes"`
	Experiments    []Experiment    `json:"experiments"`
}

// Profile is the owner of the portfolio
type Profile struct {
	Name     string   `json:"name"`
	Handle   string   `json:"handle"`
	Role     string   `json:"role"`
	Location string   `json:"location"`
	Tagline  string   `json:"tagline"`
	Hero     []string `json:"hero"`
	Bio      []string `json:"bio"`
	Links    Links    `json:"links"`
}

// Links are the external destinations offered by the palette and the
// connect sections
type Links struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
}

// Mailto returns the email address as a mailto: URI
func (l Links) Mailto() string {
	if l.Email == "" {
		return ""
	}
	return "mailto:" + l.Email
}

type FocusArea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Job struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

type TechCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Education struct {
	School    string   `json:"school"`
	Degree    string   `json:"degree"`
	Details   []string `json:"details"`
	Graduated string   `json:"graduated"`
}

type Certification struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Issued string `json:"issued"`
}

// NowCard is one "what I'm doing now" group on the about page
type NowCard struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Note is a field note. Body is markdown, read from notes/<slug>.md when
// not given inline.
type Note struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Excerpt  string   `json:"excerpt"`
	Location string   `json:"location,omitempty"`
	Body     string   `json:"body,omitempty"`
}

// Published parses Date; the zero time is returned for malformed dates,
// which Validate rejects anyway.
func (n Note) Published() time.Time {
	t, err := time.Parse(DateLayout, n.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasTag reports whether the note carries tag, ignoring case
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Experiment is a lab project
type Experiment struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Status      string   `json:"status"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// Validate checks the document for problems the screens cannot recover
// from. All problems are reported together.
func (d *Document) Validate() error {
	var errs []error

	if strings.TrimSpace(d.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	errs = append(errs, validateLinks(d.Profile.Links)...)

	seen := make(map[string]bool, len(d.Notes))
	for i, note := range d.Notes {
		where := fmt.Sprintf("notes[%d]", i)
		if !slugPattern.MatchString(note.Slug) {
			errs = append(errs, fmt.Errorf("%s: invalid slug %q", where, note.Slug))
		} else if seen[note.Slug] {
			errs = append(errs, fmt.Errorf("%s: duplicate slug %q", where, note.Slug))
		}
		seen[note.Slug] = true

		if strings.TrimSpace(note.Title) == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if !isNoteCategory(note.Category) {
			errs = append(errs, fmt.Errorf("%s: unknown category %q", where, note.Category))
		}
		if _, err := time.Parse(DateLayout, note.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s: date %q is not YYYY-MM-DD", where, note.Date))
		}
	}

	for i, exp := range d.Experiments {
		if strings.TrimSpace(exp.Title) == "" {
			errs = append(errs, fmt.Errorf("experiments[%d]: title is required", i))
		}
		if exp.GitHub != "" && !isWebURL(exp.GitHub) {
			errs = append(errs, fmt.Errorf("experiments[%d]: github must be an http(s) URL", i))
		}
	}

	return errors.Join(errs...)
}

func validateLinks(l Links) []error {
	var errs []error
	if l.GitHub != "" && !isWebURL(l.GitHub) {
		errs = append(errs, fmt.Errorf("profile.links.github must be an http(s) URL, got %q", l.GitHub))
	}
	if l.LinkedIn != "" && !isWebURL(l.LinkedIn) {
		errs = append(errs, fmt.Errorf("profile.links.linkedin must be an http(s) URL, got %q", l.LinkedIn))
	}
	if l.Email != "" && !strings.Contains(l.Email, "@") {
		errs = append(errs, fmt.Errorf("profile.links.email %q is not an address", l.Email))
	}
	return errs
}

func isWebURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func isNoteCategory(c string) bool {
	for _, known := range Categories[1:] {
		if c == known {
			return true
		}
	}
	return false
}
