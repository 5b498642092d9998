package logging

import "time"

// Time runs fn and logs how long it took at debug level.
//
//	logging.Time("load directory", func() {
//	    entries, err = listing.Load(dir, showHidden)
//	})
func Time(name string, fn func(), args ...any) {
	if !IsEnabled() {
		fn()
		return
	}
	start := time.Now()
	fn()
	logDuration(Get(), name, time.Since(start), args...)
}

// Timer tracks a manually bounded measurement
type Timer struct {
	name  string
	start time.Time
}

// Start begins a measurement that Stop logs
func Start(name string) Timer {
	return Timer{name: name, start: time.Now()}
}

// Stop logs the elapsed time with any extra attributes and returns it
func (t Timer) Stop(args ...any) time.Duration {
	d := time.Since(t.start)
	if IsEnabled() {
		logDuration(Get(), t.name, d, args...)
	}
	return d
}

func logDuration(l *Logger, name string, d time.Duration, args ...any) {
	attrs := append([]any{"duration", d.String(), "ms", d.Milliseconds()}, args...)
	l.Debug(name, attrs...)
}
