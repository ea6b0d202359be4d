package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestRepaintFirstFrameErasesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Repaint([]string{"one", "two"})

	out := buf.String()
	if strings.Contains(out, cursorUpOne) {
		t.Error("first frame must not move the cursor up")
	}
	if !strings.Contains(out, "one\n") || !strings.Contains(out, "two\n") {
		t.Errorf("frame lines missing: %q", out)
	}
}

func TestRepaintErasesExactlyPreviousLineCount(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Repaint([]string{"a", "b", "c"})
	buf.Reset()

	r.Repaint([]string{"d"})

	out := buf.String()
	if got := strings.Count(out, cursorUpOne); got != 3 {
		t.Errorf("expected 3 cursor-up sequences, got %d", got)
	}
	if got := strings.Count(out, clearLine); got != 3 {
		t.Errorf("expected 3 clear-line sequences, got %d", got)
	}

	buf.Reset()
	r.Repaint([]string{"e"})
	if got := strings.Count(buf.String(), cursorUpOne); got != 1 {
		t.Errorf("expected 1 cursor-up sequence after one-line frame, got %d", got)
	}
}

func TestRepaintEmptyAfterEmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Repaint(nil)
	if buf.Len() != 0 {
		t.Errorf("empty first frame should write nothing, got %q", buf.String())
	}

	r.Repaint([]string{"a"})
	buf.Reset()
	r.Repaint(nil)
	if got := strings.Count(buf.String(), clearLine); got != 1 {
		t.Errorf("expected the stale line to be cleared once, got %d", got)
	}
}

func TestPersistSuppressesNextErase(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Repaint([]string{"frame"})
	buf.Reset()

	r.Persist("work session complete")
	out := buf.String()
	if got := strings.Count(out, cursorUpOne); got != 1 {
		t.Errorf("persist should erase the previous frame, got %d cursor-ups", got)
	}
	if !strings.Contains(out, "work session complete\n") {
		t.Errorf("persisted line missing: %q", out)
	}

	buf.Reset()
	r.Repaint([]string{"next frame"})
	if strings.Contains(buf.String(), cursorUpOne) {
		t.Error("repaint after persist must not erase the persisted line")
	}
}

func TestResetForgetsWithoutErasing(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Repaint([]string{"a", "b"})
	r.Reset()
	buf.Reset()

	r.Repaint([]string{"c"})
	if strings.Contains(buf.String(), cursorUpOne) {
		t.Error("repaint after reset must not erase")
	}
}
