// Package app wires the input listener, the command channel, and the main
// tick loop together.
package app

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind enumerates the recognized console commands.
type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdStop
	CmdWork
	CmdShortBreak
	CmdLongBreak
	CmdNext
	CmdSetWork
	CmdSetShortBreak
	CmdSetLongBreak
	CmdSetInterval
	CmdPause
	CmdResume
	CmdUnknown
)

// Command is one parsed console command. Minutes carries the numeric
// argument of the set-duration and interval forms. Raw holds the original
// line for Unknown commands so the loop can report it.
type Command struct {
	Kind    CommandKind
	Minutes int
	Raw     string
}

// Parse turns a raw input line into a Command. The command set is closed:
// anything that does not match a known verb/argument shape is an error, so
// malformed input never reaches the state machine.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	verb := strings.ToLower(fields[0])

	if len(fields) == 1 {
		switch verb {
		case "start":
			return Command{Kind: CmdStart}, nil
		case "stop":
			return Command{Kind: CmdStop}, nil
		case "work":
			return Command{Kind: CmdWork}, nil
		case "short":
			return Command{Kind: CmdShortBreak}, nil
		case "long":
			return Command{Kind: CmdLongBreak}, nil
		case "next":
			return Command{Kind: CmdNext}, nil
		case "pause":
			return Command{Kind: CmdPause}, nil
		case "resume":
			return Command{Kind: CmdResume}, nil
		}
		return Command{}, fmt.Errorf("unknown command %q", line)
	}

	if len(fields) != 2 {
		return Command{}, fmt.Errorf("unknown command %q", line)
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return Command{}, fmt.Errorf("invalid argument %q for %s", fields[1], verb)
	}

	switch verb {
	case "work":
		return Command{Kind: CmdSetWork, Minutes: n}, nil
	case "short":
		return Command{Kind: CmdSetShortBreak, Minutes: n}, nil
	case "long":
		return Command{Kind: CmdSetLongBreak, Minutes: n}, nil
	case "interval":
		return Command{Kind: CmdSetInterval, Minutes: n}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", line)
}
