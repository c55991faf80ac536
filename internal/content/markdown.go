package content

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/jellydator/ttlcache/v3"

	"github.com/xdestyn/termfolio/internal/logging"
)

const (
	// MinRenderWidth is the narrowest wrap width passed to glamour
	MinRenderWidth = 20
	// DefaultRenderTTL bounds how long a rendered note is reused
	DefaultRenderTTL = 10 * time.Minute
	renderCacheSize  = 64
)

// Renderer turns note markdown into styled terminal text. Output is cached
// per slug and width because glamour is slow relative to a frame.
type Renderer struct {
	style string
	cache *ttlcache.Cache[string, string]
}

// NewRenderer creates a renderer for a glamour standard style ("dark",
// "light", "dracula", ...).
func NewRenderer(style string, ttl time.Duration) *Renderer {
	if ttl <= 0 {
		ttl = DefaultRenderTTL
	}
	return &Renderer{
		style: style,
		cache: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](ttl),
			ttlcache.WithCapacity[string, string](renderCacheSize),
		),
	}
}

func cacheKey(slug string, width int) string {
	return fmt.Sprintf("%s@%d", slug, width)
}

// Render returns the note body rendered to fit width columns
func (r *Renderer) Render(note Note, width int) (string, error) {
	if width < MinRenderWidth {
		width = MinRenderWidth
	}

	key := cacheKey(note.Slug, width)
	if item := r.cache.Get(key); item != nil {
		return item.Value(), nil
	}

	timing := logging.Start("markdown.Render")
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := tr.Render(note.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render note %s: %w", note.Slug, err)
	}
	logging.End(timing)

	r.cache.Set(key, out, ttlcache.DefaultTTL)
	return out, nil
}

// SetStyle switches the glamour style and drops cached output
func (r *Renderer) SetStyle(style string) {
	if style == r.style {
		return
	}
	r.style = style
	r.Reset()
}

// Reset drops every cached rendering, used after content reloads
func (r *Renderer) Reset() {
	r.cache.DeleteAll()
}

// Cached reports whether a rendering for slug at width is cached
func (r *Renderer) Cached(slug string, width int) bool {
	if width < MinRenderWidth {
		width = MinRenderWidth
	}
	return r.cache.Get(cacheKey(slug, width)) != nil
}
