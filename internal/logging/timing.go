package logging

import (
	"time"
)

// TimingContext holds the start of a manually tracked measurement
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time runs fn and logs how long it took at debug level.
//
// Example:
//
//	logging.Time("load content", func() {
//	    doc, err = content.Load(dir)
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// TimeWithResult runs fn, logs its duration and returns its result.
//
// Example:
//
//	out := logging.TimeWithResult("render note", func() string {
//	    return renderer.Render(note, width)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	logDuration(Get(), name, time.Since(start))
	return result
}

// Start begins a measurement that End or EndWithCount completes.
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End logs the duration since Start.
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}
	logDuration(Get(), ctx.name, time.Since(ctx.startTime))
}

// EndWithCount logs the duration since Start along with an item count.
//
// Example:
//
//	t := logging.Start("load notes")
//	notes := loadNotes()
//	logging.EndWithCount(t, len(notes))
func EndWithCount(ctx TimingContext, count int) {
	if !IsEnabled() {
		return
	}
	logDuration(Get(), ctx.name, time.Since(ctx.startTime), "count", count)
}

// Time is the method form of the package-level Time, for loggers created
// with With.
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(l, name, time.Since(start))
}

func logDuration(l *Logger, name string, d time.Duration, extra ...any) {
	args := append([]any{"duration", d.String(), "ms", d.Milliseconds()}, extra...)
	l.Debug(name, args...)
}
