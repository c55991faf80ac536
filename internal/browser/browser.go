// Package browser hands URLs to the operating system: web links to the
// default browser, mailto: URIs to the mail handler, and text to the
// clipboard when neither is available.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/xdestyn/termfolio/internal/logging"
)

// DefaultTimeout bounds how long starting the platform opener may take
const DefaultTimeout = 5 * time.Second

// Opener opens a URL or mailto: URI outside the terminal
type Opener interface {
	Open(ctx context.Context, target string) error
}

// Clipboard receives text when opening is not possible
type Clipboard interface {
	WriteAll(text string) error
}

// RunFunc launches name with args. The system runner returns as soon as
// the process has started.
type RunFunc func(ctx context.Context, name string, args ...string) error

// SystemOpener opens targets with the platform's launcher
// (xdg-open, open or rundll32).
type SystemOpener struct {
	goos    string
	timeout time.Duration
	run     RunFunc
}

// NewSystemOpener returns an opener for the running platform
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{
		goos:    runtime.GOOS,
		timeout: DefaultTimeout,
		run:     startDetached,
	}
}

// NewSystemOpenerWith lets tests pick the platform and replace the process
// runner.
func NewSystemOpenerWith(goos string, timeout time.Duration, run RunFunc) *SystemOpener {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SystemOpener{goos: goos, timeout: timeout, run: run}
}

// Command returns the launcher invocation for target on this platform
func (o *SystemOpener) Command(target string) (string, []string, error) {
	switch o.goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("opening links is not supported on %s", o.goos)
	}
}

// Open runs the platform launcher for target
func (o *SystemOpener) Open(ctx context.Context, target string) error {
	if !IsExternal(target) {
		return fmt.Errorf("refusing to open %q: not a web or mailto link", target)
	}

	name, args, err := o.Command(target)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := o.run(ctx, name, args...); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%s timed out after %v", name, o.timeout)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// startDetached starts the launcher without waiting for it. Its standard
// streams go to the null device so a terminal browser cannot draw over the
// UI. A goroutine reaps the process and logs a non-zero exit.
func startDetached(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Warn("opener exited with error", "command", name, "error", err)
		}
	}()
	return nil
}

// IsExternal reports whether target leaves the application
func IsExternal(target string) bool {
	return IsWeb(target) || IsMailto(target)
}

// IsWeb reports whether target is an http or https URL
func IsWeb(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// IsMailto reports whether target is a mailto: URI
func IsMailto(target string) bool {
	return strings.HasPrefix(target, "mailto:")
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
