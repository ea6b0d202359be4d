package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cdzone/countdown-cli/internal/config"
	"github.com/cdzone/countdown-cli/internal/pomodoro"
	"github.com/cdzone/countdown-cli/internal/schedule"
	"github.com/cdzone/countdown-cli/internal/term"
)

// Notifier is the side channel the loop fires when a countdown or a phase
// reaches zero. notify.Notifier satisfies it.
type Notifier interface {
	Send(title, message string)
}

// Status line styles per phase.
var (
	idleStyle     = lipgloss.NewStyle().Faint(true)
	workStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	breakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	phaseEndStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	noticeStyle   = lipgloss.NewStyle().Faint(true)
)

// LoopConfig carries the collaborators for the main loop.
type LoopConfig struct {
	Store    *config.Store
	Engine   *pomodoro.Engine
	Renderer *term.Renderer
	Notifier Notifier
	Commands <-chan Command
	// Tick is the repaint period; non-positive falls back to 50ms.
	Tick time.Duration
	// Now overrides the time source, for tests.
	Now func() time.Time
}

// Loop is the fixed-rate orchestrator: each tick it drains at most one
// pending command, mutates the Pomodoro engine, reads the countdown
// snapshot, and repaints. It is the engine's only writer.
type Loop struct {
	store    *config.Store
	engine   *pomodoro.Engine
	renderer *term.Renderer
	notifier Notifier
	commands <-chan Command
	tick     time.Duration
	now      func() time.Time

	paused bool
	// dueNotified debounces the reached-zero notification per title: a
	// title fires once per crossing and re-arms when it moves off zero.
	dueNotified map[string]bool
}

// NewLoop creates the main loop.
func NewLoop(cfg LoopConfig) *Loop {
	l := &Loop{
		store:       cfg.Store,
		engine:      cfg.Engine,
		renderer:    cfg.Renderer,
		notifier:    cfg.Notifier,
		commands:    cfg.Commands,
		tick:        cfg.Tick,
		now:         cfg.Now,
		dueNotified: make(map[string]bool),
	}
	if l.tick <= 0 {
		l.tick = 50 * time.Millisecond
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l
}

// Run ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.step()
		}
	}
}

// step runs one tick.
func (l *Loop) step() {
	select {
	case cmd := <-l.commands:
		l.apply(cmd)
	default:
	}

	if l.paused {
		return
	}

	now := l.now()
	entries, diagnostics := schedule.Build(l.store.Snapshot(), now)

	l.notifyDue(entries)
	l.advancePhaseIfDone()

	lines := make([]string, 0, len(entries)+len(diagnostics)+1)
	lines = append(lines, l.statusLine())
	lines = append(lines, diagnostics...)
	for _, e := range entries {
		lines = append(lines, e.Message)
	}
	l.renderer.Repaint(lines)
}

// apply dispatches one command to the engine or the loop itself.
func (l *Loop) apply(cmd Command) {
	switch cmd.Kind {
	case CmdStart:
		l.engine.Start()
	case CmdStop:
		l.engine.Stop()
	case CmdWork:
		l.engine.SetPhase(pomodoro.PhaseWork)
	case CmdShortBreak:
		l.engine.SetPhase(pomodoro.PhaseShortBreak)
	case CmdLongBreak:
		l.engine.SetPhase(pomodoro.PhaseLongBreak)
	case CmdNext:
		l.engine.NextState()
	case CmdSetWork:
		l.engine.SetWork(time.Duration(cmd.Minutes) * time.Minute)
	case CmdSetShortBreak:
		l.engine.SetShortBreak(time.Duration(cmd.Minutes) * time.Minute)
	case CmdSetLongBreak:
		l.engine.SetLongBreak(time.Duration(cmd.Minutes) * time.Minute)
	case CmdSetInterval:
		l.engine.SetLongBreakInterval(cmd.Minutes)
	case CmdPause:
		l.paused = true
		// Forget the current block: whatever gets printed while paused
		// (the help text) must not be erased on resume.
		l.renderer.Reset()
	case CmdResume:
		l.paused = false
	case CmdUnknown:
		l.renderer.Persist(noticeStyle.Render(fmt.Sprintf("unknown command: %s (try 'help')", cmd.Raw)))
	}
}

// notifyDue fires the reached-zero notification for countdowns, once per
// crossing.
func (l *Loop) notifyDue(entries []schedule.Entry) {
	for _, e := range entries {
		if !e.Due {
			delete(l.dueNotified, e.Title)
			continue
		}
		if l.dueNotified[e.Title] {
			continue
		}
		l.dueNotified[e.Title] = true
		l.notifier.Send(e.Title, "Now is the time!")
	}
}

// advancePhaseIfDone moves the engine to its next phase when the current
// one has run out, and leaves a persistent summary line on the terminal.
func (l *Loop) advancePhaseIfDone() {
	remaining, running := l.engine.Remaining()
	if !running || remaining > 0 {
		return
	}

	prev := l.engine.Phase()
	next := l.engine.NextState()

	summary := fmt.Sprintf("%s finished, starting %s (%d sessions done)",
		prev, next, l.engine.CompletedSessions())
	l.notifier.Send("pomodoro", summary)
	l.renderer.Persist(phaseEndStyle.Render(summary))
}

// statusLine renders the Pomodoro half of the frame.
func (l *Loop) statusLine() string {
	remaining, running := l.engine.Remaining()
	if !running {
		line := fmt.Sprintf("pomodoro: idle (%d sessions done)", l.engine.CompletedSessions())
		if since, ok := l.engine.TimeSinceLastCompletion(); ok {
			line += fmt.Sprintf(", last finished %s ago", since.Round(time.Second))
		}
		return idleStyle.Render(line)
	}

	style := workStyle
	if l.engine.Phase() != pomodoro.PhaseWork {
		style = breakStyle
	}
	return style.Render(fmt.Sprintf("pomodoro: %s %s left (%d sessions done)",
		l.engine.Phase(), formatClock(remaining), l.engine.CompletedSessions()))
}

// formatClock renders a duration as MM:SS, or H:MM:SS past the hour.
func formatClock(d time.Duration) string {
	secs := int64(d.Round(time.Second) / time.Second)
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
