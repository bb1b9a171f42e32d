package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fluctus/internal/core"
	"github.com/vovakirdan/fluctus/internal/games/fluctus"
	"github.com/vovakirdan/fluctus/internal/platform/tui"
)

var flagPlayAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start FLUCTUS in the terminal.

Controls:
  Space/Up/W  - Flip across the wave (starts a run on the title screen)
  Enter       - Start a run
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot to ~/.fluctus/screenshots
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at the beginning of the ramp
  normal - Start 20 seconds into the ramp
  hard   - Start 45 seconds into the ramp
  fixed  - No progression, stays at the initial parameters

The terminal belongs to the game while it runs, so logs are only written
when --log-file is set.

Examples:
  fluctus play
  fluctus play --difficulty hard
  fluctus play --autopilot --log-file fluctus.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayAutopilot, "autopilot", false, "Let the autopilot play")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing to do if the log file fails to close

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = resolveSeed()

	opts := []fluctus.Option{fluctus.WithLogger(logger)}
	if flagPlayAutopilot {
		opts = append(opts, fluctus.WithAutopilot(fluctus.NewAutopilot()))
	}
	game := fluctus.New(cfg, opts...)

	return tui.Run(game, runtime, tui.WithLogger(logger))
}
