// Package term implements the diff-aware repaint of the status block. The
// renderer remembers how many lines the previous tick printed and erases
// exactly that many, so the rest of the terminal scrollback stays intact.
package term

import (
	"fmt"
	"io"
)

// Terminal control primitives. The renderer needs nothing beyond these.
const (
	cursorUpOne = "\x1b[1A"
	clearLine   = "\x1b[2K"
	columnZero  = "\r"
)

// Renderer repaints a block of lines in place.
type Renderer struct {
	out       io.Writer
	prevLines int
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Repaint erases the previous block and prints the new one. An empty frame
// after an empty frame writes nothing.
func (r *Renderer) Repaint(lines []string) {
	if r.prevLines == 0 && len(lines) == 0 {
		return
	}
	r.erase()
	fmt.Fprint(r.out, columnZero)
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
	r.prevLines = len(lines)
}

// Persist erases the previous block, prints the given lines, and forgets
// them: the next Repaint starts below, leaving the lines on screen. Used for
// phase-end summaries and command notices.
func (r *Renderer) Persist(lines ...string) {
	r.erase()
	fmt.Fprint(r.out, columnZero)
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
	r.prevLines = 0
}

// Reset forgets the previous block without erasing it. Used when entering
// the paused help view, so resumed frames start below the help text instead
// of wiping it.
func (r *Renderer) Reset() {
	r.prevLines = 0
}

// erase emits cursor-up plus clear-line once per previously printed line.
func (r *Renderer) erase() {
	for i := 0; i < r.prevLines; i++ {
		fmt.Fprint(r.out, cursorUpOne)
		fmt.Fprint(r.out, clearLine)
	}
	r.prevLines = 0
}
