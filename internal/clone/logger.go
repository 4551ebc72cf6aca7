package clone

import "fmt"

// Logger receives the human-readable progress lines emitted by a Cloner.
// *ui.Progress and *ui.Logger satisfy it.
type Logger interface {
	Log(format string, args ...any)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(format string, args ...any)

// Log implements Logger.
func (f LoggerFunc) Log(format string, args ...any) { f(format, args...) }

// Discard drops every line.
var Discard Logger = LoggerFunc(func(string, ...any) {})

type warner interface {
	Warn(format string, args ...any)
}

// WithPrefix returns a Logger that prepends prefix to every line.
func WithPrefix(l Logger, prefix string) Logger {
	return prefixLogger{l: l, prefix: prefix}
}

type prefixLogger struct {
	l      Logger
	prefix string
}

func (p prefixLogger) Log(format string, args ...any) {
	p.l.Log("%s%s", p.prefix, fmt.Sprintf(format, args...))
}

func (p prefixLogger) Warn(format string, args ...any) {
	warn(p.l, "%s%s", p.prefix, fmt.Sprintf(format, args...))
}

// warn routes to l.Warn when l supports it.
func warn(l Logger, format string, args ...any) {
	if w, ok := l.(warner); ok {
		w.Warn(format, args...)
		return
	}
	l.Log("warning: "+format, args...)
}
