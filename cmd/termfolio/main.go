package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xdestyn/termfolio/internal/app"
	"github.com/xdestyn/termfolio/internal/browser"
	"github.com/xdestyn/termfolio/internal/config"
	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/types"
	"github.com/xdestyn/termfolio/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Shutdown()

	logging.Info("Starting termfolio",
		"theme", cfg.Theme,
		"content", cfg.Content.Path,
		"watch", cfg.Content.Watch)

	doc, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	// Create application context
	appCtx := types.NewAppContext(
		ui.GetTheme(cfg.Theme),
		doc,
		browser.NewSystemOpener(),
		browser.SystemClipboard{},
	)

	// Start the Bubble Tea program
	p := tea.NewProgram(
		app.NewModel(appCtx),
		tea.WithAltScreen(),
	)

	if cfg.Content.Watch {
		watcher, err := content.NewWatcher(cfg.Content.Path, content.DefaultDebounce, func(doc *content.Document, err error) {
			if err != nil {
				p.Send(types.ErrorStatusMsg("Content reload failed: " + err.Error()))
				return
			}
			p.Send(types.ContentReloadedMsg{Doc: doc})
		})
		if err != nil {
			return err
		}
		watcher.Start()

		// Ensure cleanup on exit
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
