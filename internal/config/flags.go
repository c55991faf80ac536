package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/xdestyn/termfolio/internal/ui"
)

// Flags are the command-line overrides. Only flags given explicitly
// replace file or environment values.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	theme      string
	content    string
	watch      bool
	logFile    string
	logLevel   string
}

// RegisterFlags defines termfolio's flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", fmt.Sprintf("Path to config file (default: %s)", Path()))
	fs.StringVar(&f.theme, "theme", ui.DefaultTheme, fmt.Sprintf("Theme to use (%s)", strings.Join(ui.AvailableThemes(), ", ")))
	fs.StringVar(&f.content, "content", "", "Directory with content.yaml and notes/ (default: built-in content)")
	fs.BoolVar(&f.watch, "watch", false, "Reload content when files change (requires -content)")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file (default: logging disabled)")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return f
}

// Apply copies every explicitly set flag into cfg
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "theme":
			cfg.Theme = f.theme
		case "content":
			cfg.Content.Path = f.content
		case "watch":
			cfg.Content.Watch = f.watch
		case "log-file":
			cfg.Log.File = f.logFile
		case "log-level":
			cfg.Log.Level = f.logLevel
		}
	})
}
