package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokergrid/internal/config"
	"github.com/lox/pokergrid/internal/sim"
)

// SimulateCmd auto-plays games with the greedy solver and prints score
// statistics for the run.
type SimulateCmd struct {
	Games   int    `kong:"help='Number of games to play (default from config)'"`
	Workers int    `kong:"help='Parallel workers (default from config)'"`
	Seed    *int64 `kong:"help='Master seed for reproducible runs (optional)'"`
	Verbose bool   `kong:"help='Verbose logging'"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	opts := sim.Options{
		Games:   cfg.Sim.Games,
		Workers: cfg.Sim.Workers,
	}
	if c.Games > 0 {
		opts.Games = c.Games
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	opts.Seed = resolveSeed(c.Seed, 0)

	fmt.Printf("Simulating %d games with %d workers (seed %d)\n",
		opts.Games, opts.Workers, opts.Seed)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := sim.NewRunner(opts, logger, nil)
	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(s *sim.Summary) {
	fmt.Printf("\nGames played: %d in %v\n", s.Games, s.Elapsed.Round(time.Millisecond))
	fmt.Printf("Score: mean %.1f, median %.1f, min %d, max %d\n",
		s.MeanScore, s.MedianScore, s.MinScore, s.MaxScore)
	fmt.Printf("Hands per game: %.1f avg\n", s.MeanHands)
	fmt.Printf("Best game: seed %d scored %d\n", s.BestSeed, s.MaxScore)
}
