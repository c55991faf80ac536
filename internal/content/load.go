package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/xdestyn/termfolio/internal/logging"
)

// DocumentFile is the name of the YAML document inside a content directory
const DocumentFile = "content.yaml"

// NotesDir holds one markdown file per note, named <slug>.md
const NotesDir = "notes"

//go:embed defaults
var defaults embed.FS

// Default returns the content compiled into the binary
func Default() (*Document, error) {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// Load reads a content directory from disk. An empty dir loads the
// built-in content.
func Load(dir string) (*Document, error) {
	if dir == "" {
		return Default()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS parses content.yaml from fsys, attaches note bodies and validates
// the result.
func LoadFS(fsys fs.FS) (*Document, error) {
	timing := logging.Start("content.Load")

	raw, err := fs.ReadFile(fsys, DocumentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DocumentFile, err)
	}

	var doc Document
	if err := yaml.UnmarshalStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DocumentFile, err)
	}

	for i := range doc.Notes {
		if doc.Notes[i].Body != "" {
			continue
		}
		body, err := fs.ReadFile(fsys, path.Join(NotesDir, doc.Notes[i].Slug+".md"))
		if errors.Is(err, fs.ErrNotExist) {
			// The detail screen shows "Note not found" for bodiless notes.
			logging.Warn("note has no body", "slug", doc.Notes[i].Slug)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read note %s: %w", doc.Notes[i].Slug, err)
		}
		doc.Notes[i].Body = string(body)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	// Newest first, the order the notes list shows.
	sort.SliceStable(doc.Notes, func(i, j int) bool {
		return doc.Notes[i].Published().After(doc.Notes[j].Published())
	})

	logging.EndWithCount(timing, len(doc.Notes))
	logging.Debug("content loaded",
		"notes", len(doc.Notes),
		"experiments", len(doc.Experiments))

	return &doc, nil
}
