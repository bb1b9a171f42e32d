package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fluctus/internal/config"
	"github.com/vovakirdan/fluctus/internal/core"
	"github.com/vovakirdan/fluctus/internal/games/fluctus"
	"github.com/vovakirdan/fluctus/internal/games/fluctus/sim"
)

var (
	flagDuration     time.Duration
	flagStep         float64
	flagSimAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run FLUCTUS without a terminal UI and print a YAML summary.

With --autopilot the autopilot plays; without it every run is started
automatically and the player never flips. Runs restart after each game over
until the simulated duration is used up.

Examples:
  fluctus sim
  fluctus sim --duration 5m --seed 42
  fluctus sim --autopilot=false --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time to run")
	simCmd.Flags().Float64Var(&flagStep, "dt", 0.016, "Seconds per tick")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", true, "Let the autopilot play")
}

// simSummary is the YAML document printed by the sim command.
type simSummary struct {
	Seed       int64         `yaml:"seed"`
	Ticks      int           `yaml:"ticks"`
	Simulated  float64       `yaml:"simulated_seconds"`
	Runs       int           `yaml:"runs"`
	BestScore  int           `yaml:"best_score"`
	FinalScore int           `yaml:"final_score"`
	FinalState string        `yaml:"final_state"`
	Elapsed    float64       `yaml:"elapsed"` // Seconds into the last run
	Spawns     int           `yaml:"spawns"`
	Coins      int           `yaml:"coins"`
	Params     config.Params `yaml:"params"`
}

type simOptions struct {
	seed      int64
	duration  time.Duration
	dt        float64
	autopilot bool
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing to do if the log file fails to close

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := runSimulation(cfg, simOptions{
		seed:      resolveSeed(),
		duration:  flagDuration,
		dt:        flagStep,
		autopilot: flagSimAutopilot,
	}, logger)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}

// runSimulation steps a game for the requested duration and summarizes it.
func runSimulation(cfg config.FluctusConfig, opts simOptions, logger *log.Logger) (simSummary, error) {
	if opts.dt <= 0 {
		return simSummary{}, fmt.Errorf("sim: --dt must be positive, got %g", opts.dt)
	}
	if opts.duration <= 0 {
		return simSummary{}, fmt.Errorf("sim: --duration must be positive, got %s", opts.duration)
	}

	gameOpts := []fluctus.Option{fluctus.WithLogger(logger), fluctus.WithFixedStep(opts.dt)}
	if opts.autopilot {
		pilot := fluctus.NewAutopilot()
		pilot.RestartDelay = 1
		gameOpts = append(gameOpts, fluctus.WithAutopilot(pilot))
	}
	game := fluctus.New(cfg, gameOpts...)
	game.Reset(core.RuntimeConfig{
		ScreenW:  int(cfg.Screen.Width),
		ScreenH:  int(cfg.Screen.Height),
		TickRate: int(1 / opts.dt),
		Seed:     opts.seed,
	})
	session := game.Session()

	ticks := int(math.Round(opts.duration.Seconds() / opts.dt))
	logger.Info("simulation started", "seed", opts.seed, "ticks", ticks, "dt", opts.dt, "autopilot", opts.autopilot)

	in := core.NewInputFrame()
	for range ticks {
		in.Clear()
		if !opts.autopilot && session.State() != sim.StateInGame {
			in.Set(core.ActionFlip)
		}
		game.Step(in)
	}

	stats := session.Stats()
	best := stats.Best
	if session.State() == sim.StateInGame {
		best = max(best, session.Score())
	}

	summary := simSummary{
		Seed:       opts.seed,
		Ticks:      ticks,
		Simulated:  float64(ticks) * opts.dt,
		Runs:       session.Runs(),
		BestScore:  int(best),
		FinalScore: session.CurrentScore(),
		FinalState: session.State().String(),
		Elapsed:    session.Elapsed(),
		Spawns:     stats.Spawns,
		Coins:      stats.Coins,
		Params:     session.Params(),
	}
	logger.Info("simulation finished", "runs", summary.Runs, "best", summary.BestScore)
	return summary, nil
}
