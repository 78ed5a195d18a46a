package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/config"
	"github.com/contada-dev/contada/internal/engine"
	"github.com/contada-dev/contada/internal/ledger"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "contada.yaml")

	cfg, err := config.Load(filepath.Join(dir, "contada.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Turn.DaysPerMonth)
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contada.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: {}\n"), 0o644))

	_, err := runCommand(t, "init", dir)
	assert.Error(t, err)

	_, err = runCommand(t, "init", dir, "--force")
	assert.NoError(t, err)
}

func TestCatalogPrintsRosterAndMissions(t *testing.T) {
	out, err := runCommand(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Caja")
	assert.Contains(t, out, "Capital Social")
	assert.Contains(t, out, "venta-contado")
}

func TestSimulatePlaysDays(t *testing.T) {
	out, err := runCommand(t, "simulate", "--days", "3", "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "day 2, month 1")
	assert.Contains(t, out, "final:")
}

func TestRunSimulationSealsEntries(t *testing.T) {
	cfg := config.Default()
	cfg.Market.Seed = 11
	eng := engine.New(cfg, zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, runSimulation(eng, 2, &buf))
	assert.NotEmpty(t, eng.Journal(), "scripted play should seal entries")
}

func TestExportProducesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.csv")

	_, err := runCommand(t, "export", "--days", "2", "--seed", "11", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ledger.Header)
}
