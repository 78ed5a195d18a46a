package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, float64(1000), cfg.Start.Cash)
	assert.Equal(t, float64(5000), cfg.Start.Capital)
	assert.Equal(t, 0.13, cfg.Tax.VATRate)
	assert.Equal(t, 0.03, cfg.Tax.TurnoverRate)
	assert.Equal(t, 7, cfg.Turn.DaysPerMonth)
	assert.Equal(t, 3, cfg.Turn.MaxActionPoints)
	assert.Equal(t, 15, cfg.Penalties.Breach)
	assert.Equal(t, 3, cfg.Market.OfferPoolSize)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contada.yaml")

	cfg := Default()
	cfg.Start.Cash = 2500
	cfg.Market.Seed = 42
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(2500), loaded.Start.Cash)
	assert.Equal(t, int64(42), loaded.Market.Seed)
	assert.Equal(t, cfg.Penalties, loaded.Penalties)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
