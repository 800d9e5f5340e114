package telemetry

import "log"

// Logger is a channel-tagged sink, re-expressing the source's
// process-wide structured logger (bound to named channels such as
// status, offloading, battery, heartbeat) as a value injected into the
// scheduler rather than held as package-level state.
type Logger struct {
	base    *log.Logger
	channel string
}

// NewLogger wraps base with no channel tag set.
func NewLogger(base *log.Logger) *Logger {
	return &Logger{base: base}
}

// With returns a Logger tagged with channel; the underlying sink is shared.
func (l *Logger) With(channel string) *Logger {
	return &Logger{base: l.base, channel: channel}
}

func (l *Logger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }

func (l *Logger) logf(level, format string, args ...any) {
	if l.channel != "" {
		l.base.Printf("["+level+"]["+l.channel+"] "+format, args...)
		return
	}
	l.base.Printf("["+level+"] "+format, args...)
}
