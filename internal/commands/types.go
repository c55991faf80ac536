package commands

import (
	"strings"

	"github.com/xdestyn/termfolio/internal/browser"
)

// HelpAction is the action of the help command; it only prints
const HelpAction = "help"

// ActionKind says what running a command does after its response is shown
type ActionKind int

const (
	ActionHelp  ActionKind = iota // print only
	ActionRoute                   // navigate inside the app
	ActionLink                    // open an http(s) URL in the browser
	ActionMail                    // hand a mailto: URI to the mail client
)

func (k ActionKind) String() string {
	switch k {
	case ActionHelp:
		return "help"
	case ActionRoute:
		return "route"
	case ActionLink:
		return "link"
	case ActionMail:
		return "mail"
	default:
		return "unknown"
	}
}

// Classify maps an action string to its kind. Anything that is not help, a
// web link or a mailto: URI is treated as a route.
func Classify(action string) ActionKind {
	switch {
	case action == HelpAction:
		return ActionHelp
	case browser.IsWeb(action):
		return ActionLink
	case browser.IsMailto(action):
		return ActionMail
	default:
		return ActionRoute
	}
}

// Command represents a command in the palette
type Command struct {
	Name        string // Lookup key, matched case-insensitively
	Description string // Shown next to suggestions
	Summary     string // Line in the help listing; Description when empty
	Action      string // HelpAction, a route path, a URL or a mailto: URI
	Response    string // Echoed to the transcript when the command runs
}

// Kind classifies the command's action
func (c Command) Kind() ActionKind {
	return Classify(c.Action)
}

// HelpLine is the command's entry in the help listing
func (c Command) HelpLine() string {
	summary := c.Summary
	if summary == "" {
		summary = strings.ToLower(c.Description)
	}
	return "• " + c.Name + " – " + summary
}
