package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Logger writes one line per message, optionally styling warning and error
// prefixes.
type Logger struct {
	out   io.Writer
	color bool
	mu    sync.Mutex
}

// NewLogger creates a Logger writing to out.
func NewLogger(out io.Writer, color bool) *Logger {
	return &Logger{out: out, color: color}
}

// Log prints an informational line.
func (l *Logger) Log(format string, args ...any) {
	l.write("", format, args...)
}

// Warn prints a line prefixed with "warning:".
func (l *Logger) Warn(format string, args ...any) {
	l.write(l.style(warnStyle, "warning:")+" ", format, args...)
}

// Error prints a line prefixed with "error:".
func (l *Logger) Error(format string, args ...any) {
	l.write(l.style(errorStyle, "error:")+" ", format, args...)
}

func (l *Logger) style(s lipgloss.Style, text string) string {
	if !l.color {
		return text
	}
	return s.Render(text)
}

func (l *Logger) write(prefix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, prefix+format+"\n", args...)
}

// ColorEnabled reports whether styled output should be written to w: only
// for terminals, and never when disabled or NO_COLOR is set.
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
