package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
simulation {
  rounds = 500
  seed   = 42
}

player "alice" {
  strategy = "counting"
}

player "bob" {
  strategy = "naive"
}

player "carol" {
  strategy = "challenger"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Simulation.Rounds)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 30, cfg.Simulation.TimeoutSeconds, "default applied")
	assert.Equal(t, []string{"counting", "naive", "challenger"}, cfg.Strategies())
	assert.Equal(t, "alice", cfg.Players[0].Name)
}

func TestLoadAppliesRoundsDefault(t *testing.T) {
	path := writeConfig(t, `
simulation {}

player "a" {
  strategy = "naive"
}

player "b" {
  strategy = "naive"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Simulation.Rounds)
}

func TestLoadRejectsSinglePlayer(t *testing.T) {
	path := writeConfig(t, `
simulation {}

player "loner" {
  strategy = "naive"
}
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "at least 2 players")
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	path := writeConfig(t, `
simulation {}

player "dup" {
  strategy = "naive"
}

player "dup" {
  strategy = "counting"
}
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "duplicate player name")
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeConfig(t, `simulation {`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
