package main

import (
	"fmt"
	"io"
	"os"

	"crimson-depths/internal/config"
	"crimson-depths/internal/game"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/rng"
	"crimson-depths/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat, out); err != nil {
		logger.Log.WithError(err).Warn("using default log level")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rng.NewSeed()
	}
	e, err := game.New(cfg, seed)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	tui.Run(screen, e)
	screen.Fini()

	rl := e.RunLog()
	fmt.Printf("Seed %d: %d turns, %d kills, deepest level %d.\n", seed, rl.Turns, rl.Kills, rl.DeepestLevel)
	if rl.CauseOfDeath != "" {
		fmt.Printf("Killed by %s.\n", rl.CauseOfDeath)
	}
	return nil
}
