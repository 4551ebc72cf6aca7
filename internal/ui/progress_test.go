package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)
	p.Done("task A")
	p.Done("task B")
	p.Done("task C")

	out := buf.String()
	for _, want := range []string{"[1/3] task A", "[2/3] task B", "[3/3] task C"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing progress line %q: %s", want, out)
		}
	}
}

func TestProgress_Fail(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 2)
	p.Done("backend")
	p.Fail("frontend", errors.New("exit status 128"))

	if p.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", p.Failed())
	}
	if !strings.Contains(buf.String(), "[2/2] frontend FAILED: exit status 128") {
		t.Errorf("missing failure line: %s", buf.String())
	}
}

func TestProgress_LogAndWarn(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)
	p.Log("hello %s", "world")
	p.Warn("ls-remote failed")

	out := buf.String()
	if !strings.Contains(out, "hello world\n") {
		t.Errorf("missing log message: %s", out)
	}
	if !strings.Contains(out, "warning: ls-remote failed\n") {
		t.Errorf("missing warning: %s", out)
	}
}
