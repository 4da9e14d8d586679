package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokergrid/internal/config"
	"github.com/lox/pokergrid/internal/game"
	"github.com/lox/pokergrid/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	Seed  *int64 `kong:"help='Deterministic shuffle seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level := log.WarnLevel
	if parsed, err := log.ParseLevel(cfg.UI.LogLevel); err == nil {
		level = parsed
	}
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokergrid",
	})

	lipgloss.SetColorProfile(termenv.ColorProfile())

	seed := resolveSeed(c.Seed, cfg.Game.Seed)
	logger.Info("Starting game", "seed", seed)

	engine := game.New(seed, logger)
	return tui.Run(engine, cfg.UI.ShowEligible, logger)
}

// resolveSeed prefers the flag, then the config file, then the clock.
func resolveSeed(flag *int64, configured int64) int64 {
	if flag != nil {
		return *flag
	}
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
