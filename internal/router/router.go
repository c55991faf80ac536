// Package router maps in-app paths to screens. Paths look like the
// portfolio's web routes so palette commands can name them directly.
package router

import (
	"fmt"
	"strings"
)

// Screen IDs
const (
	ScreenHome  = "home"
	ScreenNotes = "notes"
	ScreenNote  = "note"
	ScreenLab   = "lab"
	ScreenAbout = "about"
)

// Paths
const (
	PathHome  = "/"
	PathNotes = "/field-notes"
	PathLab   = "/lab"
	PathAbout = "/about"
)

// ParamSlug is the note slug parameter of /field-notes/:slug
const ParamSlug = "slug"

// Route binds a path pattern to a screen. A segment starting with ':'
// captures one path segment.
type Route struct {
	Pattern  string
	ScreenID string
	segments []string
}

// Match is a resolved path
type Match struct {
	Path     string
	ScreenID string
	Params   map[string]string
}

// Router resolves paths against routes in registration order
type Router struct {
	routes []Route
}

// New builds a router from patterns; patterns must start with '/'
func New(routes ...Route) (*Router, error) {
	r := &Router{}
	for _, route := range routes {
		if !strings.HasPrefix(route.Pattern, "/") {
			return nil, fmt.Errorf("route %q must start with /", route.Pattern)
		}
		route.segments = split(route.Pattern)
		r.routes = append(r.routes, route)
	}
	return r, nil
}

// Default returns the portfolio routes
func Default() *Router {
	r, err := New(
		Route{Pattern: PathHome, ScreenID: ScreenHome},
		Route{Pattern: PathNotes, ScreenID: ScreenNotes},
		Route{Pattern: PathNotes + "/:" + ParamSlug, ScreenID: ScreenNote},
		Route{Pattern: PathLab, ScreenID: ScreenLab},
		Route{Pattern: PathAbout, ScreenID: ScreenAbout},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// NotePath returns the detail path of a note
func NotePath(slug string) string {
	return PathNotes + "/" + slug
}

// Match resolves path. A trailing slash is ignored.
func (r *Router) Match(path string) (Match, bool) {
	if !strings.HasPrefix(path, "/") {
		return Match{}, false
	}
	segments := split(path)

	for _, route := range r.routes {
		params, ok := matchSegments(route.segments, segments)
		if !ok {
			continue
		}
		return Match{
			Path:     "/" + strings.Join(segments, "/"),
			ScreenID: route.ScreenID,
			Params:   params,
		}, true
	}
	return Match{}, false
}

func matchSegments(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// IsActive reports whether the nav link for navPath is highlighted while
// current is shown. Field notes stays active on note detail pages; other
// links match exactly.
func IsActive(navPath, current string) bool {
	if navPath == PathNotes {
		return current == PathNotes || strings.HasPrefix(current, PathNotes+"/")
	}
	return navPath == current
}
