package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the service settings and the analytics tuning knobs.
// Volatility thresholds are expressed in the auction currency's stored
// unit, so they are deployment configuration rather than constants.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Analytics struct {
		TrendSampleSize     int           `yaml:"trend_sample_size"`
		VolatilityMedium    float64       `yaml:"volatility_medium"`
		VolatilityHigh      float64       `yaml:"volatility_high"`
		IntensityHighGap    time.Duration `yaml:"intensity_high_gap"`
		IntensityMediumGap  time.Duration `yaml:"intensity_medium_gap"`
		BidWarGap           time.Duration `yaml:"bid_war_gap"`
		SnipeWindowFraction float64       `yaml:"snipe_window_fraction"`
	} `yaml:"analytics"`
	History struct {
		DefaultLimit    int `yaml:"default_limit"`
		MaxPageSize     int `yaml:"max_page_size"`
		MaxAuctionsScan int `yaml:"max_auctions_scan"`
	} `yaml:"history"`
}

// Default returns the built-in configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Analytics.TrendSampleSize = 200
	cfg.Analytics.VolatilityMedium = 20
	cfg.Analytics.VolatilityHigh = 50
	cfg.Analytics.IntensityHighGap = 5 * time.Minute
	cfg.Analytics.IntensityMediumGap = 30 * time.Minute
	cfg.Analytics.BidWarGap = 60 * time.Second
	cfg.Analytics.SnipeWindowFraction = 0.1
	cfg.History.DefaultLimit = 50
	cfg.History.MaxPageSize = 100
	cfg.History.MaxAuctionsScan = 50
	return cfg
}

// Load reads a yaml config file over the defaults. A missing path is
// not an error; PORT from the environment wins over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if p := os.Getenv("PORT"); p != "" {
		var port int
		if _, err := fmt.Sscanf(p, "%d", &port); err != nil {
			return nil, fmt.Errorf("config: invalid PORT %q: %w", p, err)
		}
		cfg.Server.Port = port
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Server.Port)
	}
	if c.Analytics.TrendSampleSize < 2 {
		return fmt.Errorf("config: trend_sample_size must be at least 2")
	}
	if c.Analytics.VolatilityHigh < c.Analytics.VolatilityMedium {
		return fmt.Errorf("config: volatility_high below volatility_medium")
	}
	if c.Analytics.SnipeWindowFraction <= 0 || c.Analytics.SnipeWindowFraction >= 1 {
		return fmt.Errorf("config: snipe_window_fraction must be in (0,1)")
	}
	if c.History.MaxAuctionsScan <= 0 || c.History.MaxPageSize <= 0 || c.History.DefaultLimit <= 0 {
		return fmt.Errorf("config: history limits must be positive")
	}
	return nil
}
