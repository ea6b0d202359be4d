package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cdzone/countdown-cli/internal/app"
	"github.com/cdzone/countdown-cli/internal/config"
	"github.com/cdzone/countdown-cli/internal/exec"
	"github.com/cdzone/countdown-cli/internal/notify"
	"github.com/cdzone/countdown-cli/internal/pomodoro"
	"github.com/cdzone/countdown-cli/internal/term"
)

var configFile string
var soundFile string

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Terminal countdown widget with a Pomodoro timer",
	Long: `countdown keeps a block of live countdown lines at the bottom of your
terminal, one per entry in the config file, next to a Pomodoro work/break
timer driven by commands typed on stdin.

The config file is re-read every second, so editing it takes effect without
a restart. Type 'help' while running for the command list.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config.toml", "Path to the countdown config file")
	rootCmd.Flags().StringVarP(&soundFile, "sound", "s", "", "Sound file to play when a countdown is reached")

	rootCmd.AddCommand(versionCmd)
}

// run wires the stores, the engine, and the three concurrent pieces: the
// reload task, the input listener, and the main loop. A failed initial load
// is fatal; everything after that only logs.
func run() error {
	f, err := config.Load(configFile)
	if err != nil {
		return err
	}

	store := config.NewStore(f.Countdown)
	engine := pomodoro.NewEngine(
		f.Pomodoro.Work,
		f.Pomodoro.ShortBreak,
		f.Pomodoro.LongBreak,
		f.Pomodoro.LongBreakInterval,
	)
	notifier := notify.New(exec.NewRunner(), soundFile)
	renderer := term.New(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands := make(chan app.Command, 64)
	listener := app.NewListener(os.Stdin, os.Stdout, commands)
	go listener.Run()

	reloader := config.NewReloader(configFile, store, f.Reload)
	go reloader.Run(ctx)

	loop := app.NewLoop(app.LoopConfig{
		Store:    store,
		Engine:   engine,
		Renderer: renderer,
		Notifier: notifier,
		Commands: commands,
		Tick:     f.Tick,
	})
	loop.Run(ctx)

	return nil
}
