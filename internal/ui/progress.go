package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress tracks completion of parallel clones with a [n/total] counter.
// It satisfies clone.Logger so per-clone lines interleave cleanly.
type Progress struct {
	out    io.Writer
	total  int
	count  atomic.Int32
	failed atomic.Int32
	mu     sync.Mutex
}

// NewProgress creates a progress tracker for n tasks.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one task as completed and prints the current progress.
func (p *Progress) Done(label string) {
	n := int(p.count.Add(1))
	p.printf("[%d/%d] %s\n", n, p.total, label)
}

// Fail marks one task as finished unsuccessfully.
func (p *Progress) Fail(label string, err error) {
	n := int(p.count.Add(1))
	p.failed.Add(1)
	p.printf("[%d/%d] %s FAILED: %v\n", n, p.total, label, err)
}

// Failed returns the number of tasks reported through Fail.
func (p *Progress) Failed() int {
	return int(p.failed.Load())
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	p.printf(format+"\n", args...)
}

// Warn prints a warning line within the progress context.
func (p *Progress) Warn(format string, args ...any) {
	p.printf("warning: "+format+"\n", args...)
}

func (p *Progress) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}
