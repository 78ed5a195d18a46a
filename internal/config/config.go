package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level contada.yaml configuration.
type Config struct {
	Start      StartConfig      `yaml:"start"`
	Tax        TaxConfig        `yaml:"tax"`
	Penalties  PenaltiesConfig  `yaml:"penalties"`
	Turn       TurnConfig       `yaml:"turn"`
	Indicators IndicatorsConfig `yaml:"indicators"`
	Market     MarketConfig     `yaml:"market"`
	Server     ServerConfig     `yaml:"server"`
	LogLevel   string           `yaml:"log_level"`
}

// StartConfig sets the opening financial position.
type StartConfig struct {
	Cash    float64 `yaml:"cash"`
	Capital float64 `yaml:"capital"`
}

// TaxConfig holds the illustrative tax rates.
type TaxConfig struct {
	VATRate      float64 `yaml:"vat_rate"`
	TurnoverRate float64 `yaml:"turnover_rate"`
}

// PenaltiesConfig maps reject reasons to prestige penalties.
type PenaltiesConfig struct {
	Unbalanced      int `yaml:"unbalanced"`
	MissionMismatch int `yaml:"mission_mismatch"`
	Breach          int `yaml:"breach"`
}

// TurnConfig controls the clock and the per-day action budget.
type TurnConfig struct {
	DaysPerMonth    int `yaml:"days_per_month"`
	MaxActionPoints int `yaml:"max_action_points"`
}

// IndicatorsConfig sets the denominators that map to indicator 100.
type IndicatorsConfig struct {
	LiquidityBase float64 `yaml:"liquidity_base"`
	SolidityBase  float64 `yaml:"solidity_base"`
}

// MarketConfig controls offers and reproducibility.
type MarketConfig struct {
	OfferPoolSize int   `yaml:"offer_pool_size"`
	Seed          int64 `yaml:"seed"` // 0 = time-based
}

// ServerConfig configures the HTTP facade.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads a contada.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the standard game tuning.
func Default() *Config {
	return &Config{
		Start: StartConfig{
			Cash:    1000,
			Capital: 5000,
		},
		Tax: TaxConfig{
			VATRate:      0.13,
			TurnoverRate: 0.03,
		},
		Penalties: PenaltiesConfig{
			Unbalanced:      10,
			MissionMismatch: 5,
			Breach:          15,
		},
		Turn: TurnConfig{
			DaysPerMonth:    7,
			MaxActionPoints: 3,
		},
		Indicators: IndicatorsConfig{
			LiquidityBase: 2000,
			SolidityBase:  10000,
		},
		Market: MarketConfig{
			OfferPoolSize: 3,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		LogLevel: "info",
	}
}
