package commands

import (
	"fmt"
	"strings"

	"github.com/xdestyn/termfolio/internal/content"
)

// Registry holds all available commands in declaration order. It is
// immutable once built.
type Registry struct {
	commands []Command
	index    map[string]int
}

// NewRegistry builds a registry. Names are stored lower case and must be
// unique and free of surrounding whitespace.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{
		commands: make([]Command, 0, len(cmds)),
		index:    make(map[string]int, len(cmds)),
	}
	for _, cmd := range cmds {
		name := strings.ToLower(cmd.Name)
		if name == "" || strings.TrimSpace(name) != name {
			return nil, fmt.Errorf("invalid command name %q", cmd.Name)
		}
		if _, exists := r.index[name]; exists {
			return nil, fmt.Errorf("duplicate command %q", name)
		}
		cmd.Name = name
		r.index[name] = len(r.commands)
		r.commands = append(r.commands, cmd)
	}
	return r, nil
}

// DefaultCommands returns the palette's command set. External targets come
// from the profile links; a link left empty drops its command.
func DefaultCommands(links content.Links) []Command {
	cmds := []Command{
		{
			Name:        "home",
			Description: "Return to main view",
			Action:      "/",
			Response:    "Returning to base…",
		},
		{
			Name:        "notes",
			Description: "Read field notes",
			Action:      "/field-notes",
			Response:    "Opening field notes… recent thoughts, meals, builds, and travels.",
		},
		{
			Name:        "lab",
			Description: "Open experiments",
			Action:      "/lab",
			Response:    "Entering the lab… experiments ahead.",
		},
		{
			Name:        "about",
			Description: "Who am I",
			Summary:     "who am I",
			Action:      "/about",
			Response:    "I build systems, explore ideas, and document the journey.",
		},
	}

	if links.LinkedIn != "" {
		cmds = append(cmds, Command{
			Name:        "linkedin",
			Description: "Professional profile",
			Summary:     "professional page",
			Action:      links.LinkedIn,
			Response:    "Redirecting to professional profile…",
		})
	}
	if links.GitHub != "" {
		cmds = append(cmds, Command{
			Name:        "github",
			Description: "Code repositories",
			Action:      links.GitHub,
			Response:    "Opening repositories…",
		})
	}
	if links.Email != "" {
		cmds = append(cmds, Command{
			Name:        "email",
			Description: "Send a message",
			Action:      links.Mailto(),
			Response:    "Launching communication protocol…",
		})
	}

	help := Command{
		Name:        "help",
		Description: "Show available commands",
		Action:      HelpAction,
		Response:    HelpText(cmds),
	}
	return append([]Command{help}, cmds...)
}

// Default builds the registry from DefaultCommands
func Default(links content.Links) *Registry {
	r, err := NewRegistry(DefaultCommands(links)...)
	if err != nil {
		// names above are constants
		panic(err)
	}
	return r
}

// HelpText lists cmds one per line under a heading
func HelpText(cmds []Command) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range cmds {
		b.WriteString("\n")
		b.WriteString(cmd.HelpLine())
	}
	return b.String()
}

// Lookup returns the command whose name equals name, ignoring case
func (r *Registry) Lookup(name string) (Command, bool) {
	i, ok := r.index[strings.ToLower(name)]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Suggest returns the names starting with prefix, ignoring case, in
// declaration order. An empty prefix suggests nothing.
func (r *Registry) Suggest(prefix string) []string {
	if prefix == "" {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var result []string
	for _, cmd := range r.commands {
		if strings.HasPrefix(cmd.Name, prefix) {
			result = append(result, cmd.Name)
		}
	}
	return result
}

// Names returns every command name in declaration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		names[i] = cmd.Name
	}
	return names
}

// All returns a copy of the commands in declaration order
func (r *Registry) All() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of commands
func (r *Registry) Len() int {
	return len(r.commands)
}
