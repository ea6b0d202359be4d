// Package notify dispatches desktop notifications and plays the configured
// alert sound. Everything here is fire-and-forget: failures are logged and
// never reach the caller.
package notify

import (
	"log"
	"os"
	"runtime"

	"github.com/cdzone/countdown-cli/internal/exec"
)

// Notifier sends desktop notifications through the platform notifier binary
// and optionally plays a sound file through the in-process player.
type Notifier struct {
	runner    exec.CommandRunner
	player    *Player
	soundPath string
	goos      string
}

// New creates a notifier. soundPath may be empty, in which case the platform
// default notification sound is requested instead.
func New(runner exec.CommandRunner, soundPath string) *Notifier {
	return &Notifier{
		runner:    runner,
		player:    NewPlayer(),
		soundPath: soundPath,
		goos:      runtime.GOOS,
	}
}

// Send dispatches a notification in the background and returns immediately.
func (n *Notifier) Send(title, message string) {
	go n.send(title, message)
}

func (n *Notifier) send(title, message string) {
	customSound := n.soundPath != ""
	if customSound {
		if _, err := os.Stat(n.soundPath); err != nil {
			log.Printf("[notify] %s not exist, falling back to default sound", n.soundPath)
			customSound = false
		}
	}

	if err := n.dispatch(title, message, customSound); err != nil {
		log.Printf("[notify] dispatch failed: %v", err)
	}

	if customSound {
		if err := n.player.Play(n.soundPath); err != nil {
			log.Printf("[notify] playing %s: %v", n.soundPath, err)
		}
	}
}

// dispatch spawns the platform notifier. With a custom sound the bell is
// played by the Player, so the notifier is asked to stay silent.
func (n *Notifier) dispatch(title, message string, customSound bool) error {
	switch n.goos {
	case "darwin":
		args := []string{"-message", message, "-title", title}
		if !customSound {
			args = append(args, "-sound", "default")
		}
		return n.runner.Start("terminal-notifier", args...)
	default:
		return n.runner.Start("notify-send", title, message)
	}
}
