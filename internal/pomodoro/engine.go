// Package pomodoro implements the work/break phase state machine. The engine
// holds no locks: the main loop is its only writer and reads it back for
// rendering within the same tick.
package pomodoro

import "time"

// Phase is a state of the Pomodoro machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWork
	PhaseShortBreak
	PhaseLongBreak
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWork:
		return "work"
	case PhaseShortBreak:
		return "short break"
	case PhaseLongBreak:
		return "long break"
	default:
		return "unknown"
	}
}

// Default engine settings.
const (
	DefaultWork              = 25 * time.Minute
	DefaultShortBreak        = 5 * time.Minute
	DefaultLongBreak         = 15 * time.Minute
	DefaultLongBreakInterval = 4
)

// Engine is the Pomodoro state machine. phaseStart is the zero time exactly
// when the phase is Idle. Duration setters take effect on the next phase
// entry; an in-flight phase keeps counting toward the duration it started
// with.
type Engine struct {
	phase      Phase
	phaseStart time.Time
	phaseGoal  time.Duration

	work              time.Duration
	shortBreak        time.Duration
	longBreak         time.Duration
	longBreakInterval int

	completedSessions int
	lastCompletion    time.Time

	now func() time.Time
}

// NewEngine creates an idle engine. Non-positive durations or interval fall
// back to the defaults.
func NewEngine(work, shortBreak, longBreak time.Duration, longBreakInterval int) *Engine {
	e := &Engine{
		work:              work,
		shortBreak:        shortBreak,
		longBreak:         longBreak,
		longBreakInterval: longBreakInterval,
		now:               time.Now,
	}
	if e.work <= 0 {
		e.work = DefaultWork
	}
	if e.shortBreak <= 0 {
		e.shortBreak = DefaultShortBreak
	}
	if e.longBreak <= 0 {
		e.longBreak = DefaultLongBreak
	}
	if e.longBreakInterval <= 0 {
		e.longBreakInterval = DefaultLongBreakInterval
	}
	return e
}

// SetClock overrides the engine's time source. Tests use this to make the
// phase arithmetic deterministic.
func (e *Engine) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// Start enters Work from Idle. Starting an already running engine is a
// no-op: restarting the in-flight phase would silently discard elapsed time.
func (e *Engine) Start() {
	if e.phase != PhaseIdle {
		return
	}
	e.enter(PhaseWork)
}

// Stop forces the engine back to Idle.
func (e *Engine) Stop() {
	e.phase = PhaseIdle
	e.phaseStart = time.Time{}
	e.phaseGoal = 0
}

// SetPhase jumps directly to the given phase and restarts its timer.
// Jumping to Idle is equivalent to Stop.
func (e *Engine) SetPhase(p Phase) {
	if p == PhaseIdle {
		e.Stop()
		return
	}
	e.lastCompletion = time.Time{}
	e.enter(p)
}

// NextState advances the machine and returns the phase entered. Completing a
// Work phase counts the session and moves straight into the break: every
// longBreakInterval-th completion earns the long break, otherwise the short
// one. Breaks advance back to Work. From Idle it behaves like Start.
func (e *Engine) NextState() Phase {
	switch e.phase {
	case PhaseWork:
		e.completedSessions++
		e.lastCompletion = e.now()
		if e.completedSessions%e.longBreakInterval == 0 {
			e.enter(PhaseLongBreak)
		} else {
			e.enter(PhaseShortBreak)
		}
	default:
		e.enter(PhaseWork)
	}
	return e.phase
}

// Remaining returns the time left in the current phase, floored at zero.
// The second return is false exactly when the engine is Idle.
func (e *Engine) Remaining() (time.Duration, bool) {
	if e.phase == PhaseIdle {
		return 0, false
	}
	d := e.phaseGoal - e.now().Sub(e.phaseStart)
	if d < 0 {
		d = 0
	}
	return d, true
}

// TimeSinceLastCompletion reports how long ago the last work session
// finished. The second return is false until a session completes, and again
// after an explicit phase jump clears the marker.
func (e *Engine) TimeSinceLastCompletion() (time.Duration, bool) {
	if e.lastCompletion.IsZero() {
		return 0, false
	}
	return e.now().Sub(e.lastCompletion), true
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// CompletedSessions returns the number of finished work sessions.
func (e *Engine) CompletedSessions() int {
	return e.completedSessions
}

// SetWork updates the work duration for the next Work entry.
func (e *Engine) SetWork(d time.Duration) {
	if d > 0 {
		e.work = d
	}
}

// SetShortBreak updates the short break duration for the next entry.
func (e *Engine) SetShortBreak(d time.Duration) {
	if d > 0 {
		e.shortBreak = d
	}
}

// SetLongBreak updates the long break duration for the next entry.
func (e *Engine) SetLongBreak(d time.Duration) {
	if d > 0 {
		e.longBreak = d
	}
}

// SetLongBreakInterval updates how many work sessions earn a long break.
func (e *Engine) SetLongBreakInterval(n int) {
	if n > 0 {
		e.longBreakInterval = n
	}
}

// enter stamps the phase start and freezes the goal duration, so later
// setter calls do not shorten or extend the phase in flight.
func (e *Engine) enter(p Phase) {
	e.phase = p
	e.phaseStart = e.now()
	e.phaseGoal = e.durationFor(p)
}

// durationFor maps a non-idle phase to its configured duration.
func (e *Engine) durationFor(p Phase) time.Duration {
	switch p {
	case PhaseWork:
		return e.work
	case PhaseShortBreak:
		return e.shortBreak
	case PhaseLongBreak:
		return e.longBreak
	default:
		return 0
	}
}
