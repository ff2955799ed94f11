// Package config loads simulation configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SimulationConfig is the root of a simulation config file.
type SimulationConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig     `hcl:"player,block"`
}

// SimulationSettings holds run-level knobs.
type SimulationSettings struct {
	Rounds         int   `hcl:"rounds,optional"`
	Seed           int64 `hcl:"seed,optional"`
	TimeoutSeconds int   `hcl:"timeout_seconds,optional"`
}

// PlayerConfig seats one player at the table.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
}

// Default returns the configuration used when no file is supplied: a
// thousand seeded rounds between the two baseline strategies.
func Default() *SimulationConfig {
	return &SimulationConfig{
		Simulation: SimulationSettings{
			Rounds:         1000,
			TimeoutSeconds: 30,
		},
		Players: []PlayerConfig{
			{Name: "naive-1", Strategy: "naive"},
			{Name: "naive-2", Strategy: "naive"},
		},
	}
}

// Load parses an HCL config file.
func Load(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %s", diags.Error())
	}

	var cfg SimulationConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	if cfg.Simulation.Rounds == 0 {
		cfg.Simulation.Rounds = Default().Simulation.Rounds
	}
	if cfg.Simulation.TimeoutSeconds == 0 {
		cfg.Simulation.TimeoutSeconds = Default().Simulation.TimeoutSeconds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration is runnable.
func (c *SimulationConfig) Validate() error {
	if c.Simulation.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Simulation.Rounds)
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("need at least 2 players, got %d", len(c.Players))
	}
	names := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Strategy == "" {
			return fmt.Errorf("player %q has no strategy", p.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		names[p.Name] = true
	}
	return nil
}

// Strategies returns the strategy of every seated player, in seat order.
func (c *SimulationConfig) Strategies() []string {
	strategies := make([]string, len(c.Players))
	for i, p := range c.Players {
		strategies[i] = p.Strategy
	}
	return strategies
}
