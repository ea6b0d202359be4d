package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const usageText = `Commands:
  start          begin a work session (from idle)
  stop           return to idle
  work           jump to a work phase
  short          jump to a short break
  long           jump to a long break
  next           advance to the next phase
  work <n>       set the work duration to n minutes
  short <n>      set the short break duration to n minutes
  long <n>       set the long break duration to n minutes
  interval <n>   set how many work sessions earn a long break
  pause          pause the display
  resume         resume the display
  help           show this list

Press enter on an empty line to resume.
`

// Listener reads command lines from in on its own goroutine and forwards
// parsed commands to the loop. The blocking read is isolated here so the
// tick loop never waits on input. "help" is intercepted: the loop is paused,
// the usage block is printed, and one blank line resumes it.
type Listener struct {
	in       io.Reader
	out      io.Writer
	commands chan<- Command
}

// NewListener creates a listener sending commands on the given channel.
func NewListener(in io.Reader, out io.Writer, commands chan<- Command) *Listener {
	return &Listener{in: in, out: out, commands: commands}
}

// Run blocks reading lines until in is exhausted. It is meant to run on a
// dedicated goroutine; it may not observe shutdown promptly, and that is
// fine, process exit reclaims it.
func (l *Listener) Run() {
	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.TrimSpace(line) == "help" {
			l.send(Command{Kind: CmdPause})
			fmt.Fprint(l.out, usageText)
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			l.send(Command{Kind: CmdResume})
			continue
		}

		cmd, err := Parse(line)
		if err != nil {
			cmd = Command{Kind: CmdUnknown, Raw: line}
		}
		l.send(cmd)
	}
}

// send forwards a command without ever blocking the read loop. A full
// channel drops the command; with a human on the keyboard the buffer cannot
// realistically fill.
func (l *Listener) send(cmd Command) {
	select {
	case l.commands <- cmd:
	default:
	}
}
