package palette

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xdestyn/termfolio/internal/commands"
	"github.com/xdestyn/termfolio/internal/logging"
)

// DispatchMsg fires DispatchDelay after a command was submitted. It is
// honoured only if the palette has not been closed since.
type DispatchMsg struct {
	Epoch   uint64
	Command commands.Command
}

// Dispatcher schedules command actions and invalidates them when the
// palette closes. Every close starts a new epoch; a DispatchMsg from an
// older epoch is stale.
type Dispatcher struct {
	epoch   uint64
	pending int
	delay   time.Duration
}

// NewDispatcher creates a dispatcher firing after delay.
func NewDispatcher(delay time.Duration) *Dispatcher {
	return &Dispatcher{delay: delay}
}

// Schedule returns the tick that will deliver cmd's DispatchMsg.
func (d *Dispatcher) Schedule(cmd commands.Command) tea.Cmd {
	epoch := d.epoch
	d.pending++
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return DispatchMsg{Epoch: epoch, Command: cmd}
	})
}

// Cancel invalidates every scheduled dispatch.
func (d *Dispatcher) Cancel() {
	if d.pending > 0 {
		logging.Debug("cancelling pending dispatch", "pending", d.pending, "epoch", d.epoch)
	}
	d.epoch++
	d.pending = 0
}

// Accept reports whether msg belongs to the current epoch and, if so,
// marks it delivered.
func (d *Dispatcher) Accept(msg DispatchMsg) bool {
	if msg.Epoch != d.epoch {
		logging.Debug("dropping stale dispatch",
			"command", msg.Command.Name,
			"epoch", msg.Epoch,
			"current", d.epoch)
		return false
	}
	if d.pending > 0 {
		d.pending--
	}
	return true
}

// Pending returns the number of dispatches waiting to fire.
func (d *Dispatcher) Pending() int {
	return d.pending
}

// Epoch returns the current epoch.
func (d *Dispatcher) Epoch() uint64 {
	return d.epoch
}
