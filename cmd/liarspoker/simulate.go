package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/internal/config"
	"github.com/lox/liarspoker/internal/simulator"
	"github.com/lox/liarspoker/internal/statistics"
)

type SimulateCmd struct {
	Rounds  int           `default:"1000" help:"Number of rounds to play"`
	Seed    int64         `default:"0" help:"RNG seed (0 for random)"`
	Players []string      `default:"naive,naive" help:"Strategy per seat, comma separated"`
	Config  string        `help:"HCL config file (overrides the flags above)" type:"existingfile"`
	Batches int           `default:"1" help:"Independent batches to run in parallel"`
	Timeout time.Duration `default:"30s" help:"Per-round timeout"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	simConfig := simulator.Config{
		Rounds:     c.Rounds,
		Seed:       c.Seed,
		Timeout:    c.Timeout,
		Strategies: c.Players,
		Logger:     logger,
	}

	if c.Config != "" {
		fileConfig, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		simConfig.Rounds = fileConfig.Simulation.Rounds
		simConfig.Seed = fileConfig.Simulation.Seed
		simConfig.Timeout = time.Duration(fileConfig.Simulation.TimeoutSeconds) * time.Second
		simConfig.Strategies = fileConfig.Strategies()
	}

	if simConfig.Seed == 0 {
		simConfig.Seed = time.Now().UnixNano()
	}

	fmt.Printf("Starting simulation: %d rounds x %d batches, players %s (seed: %d)\n",
		simConfig.Rounds, c.Batches, strings.Join(simConfig.Strategies, ","), simConfig.Seed)

	start := time.Now()
	stats, err := runBatches(simConfig, c.Batches)
	if err != nil {
		return err
	}
	printSummary(stats, simConfig.Strategies, time.Since(start))
	return nil
}

func runBatches(simConfig simulator.Config, batches int) (*statistics.Statistics, error) {
	if batches <= 1 {
		return simulator.New(simConfig).Run()
	}

	results, err := simulator.RunBatches(simConfig, batches)
	if err != nil {
		return nil, err
	}
	combined := statistics.New(len(simConfig.Strategies))
	for _, batch := range results {
		if err := combined.Merge(batch); err != nil {
			return nil, err
		}
	}
	return combined, nil
}

func printSummary(stats *statistics.Statistics, strategies []string, elapsed time.Duration) {
	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("Rounds played: %d in %s\n", stats.Rounds, elapsed.Round(time.Millisecond))
	fmt.Printf("Ties: %d (%.1f%%)\n", stats.Ties, stats.TieRate()*100)

	fmt.Printf("\n=== SEATS ===\n")
	for i, strategy := range strategies {
		p := stats.Players[i]
		fmt.Printf("Seat %d (%s): %d wins (%.1f%%), opened %d rounds\n",
			i, strategy, p.Wins, stats.WinRate(i)*100, p.Opened)
	}

	fmt.Printf("\n=== ROUNDS ===\n")
	fmt.Printf("Length: %.2f moves avg (stddev %.2f, max %d)\n",
		stats.MeanMoves(), stats.MoveStdDev(), stats.MaxMoves)
	fmt.Printf("Decision time: %s total\n", stats.TotalTime.Round(time.Microsecond))
}
