package config

import (
	"fmt"
	"os"

	"lawyerhub/reward"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	JWT struct {
		Secret      string `yaml:"secret"`
		ExpiryHours int    `yaml:"expiryHours"`
	} `yaml:"jwt"`

	CORS struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`

	Redis struct {
		Addr            string `yaml:"addr"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		FeaturedTTLSecs int    `yaml:"featuredTtlSeconds"`
	} `yaml:"redis"`

	Rewards RewardsConfig `yaml:"rewards"`
}

// RewardsConfig exposes the engine's tunable tables in the config file so
// thresholds can be adjusted without code changes. Zero values fall back to
// the engine defaults.
type RewardsConfig struct {
	Weights           reward.Weights           `yaml:"weights"`
	ActivityBonusMax  float64                  `yaml:"activityBonusMax"`
	ActivityBonusDays int                      `yaml:"activityBonusDays"`
	Tiers             []reward.TierRequirement `yaml:"tiers"`
	SweepConcurrency  int                      `yaml:"sweepConcurrency"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	return &cfg, nil
}

// RewardConfig merges the file overrides over the engine defaults
func (c *Config) RewardConfig() *reward.Config {
	engineCfg := reward.DefaultConfig()

	weights := c.Rewards.Weights
	if weights.Rating > 0 {
		engineCfg.Weights.Rating = weights.Rating
	}
	if weights.Review > 0 {
		engineCfg.Weights.Review = weights.Review
	}
	if weights.Consultation > 0 {
		engineCfg.Weights.Consultation = weights.Consultation
	}
	if weights.ResponseTime > 0 {
		engineCfg.Weights.ResponseTime = weights.ResponseTime
	}
	if weights.SuccessRate > 0 {
		engineCfg.Weights.SuccessRate = weights.SuccessRate
	}
	if weights.ProfileQuality > 0 {
		engineCfg.Weights.ProfileQuality = weights.ProfileQuality
	}
	if c.Rewards.ActivityBonusMax > 0 {
		engineCfg.ActivityBonusMax = c.Rewards.ActivityBonusMax
	}
	if c.Rewards.ActivityBonusDays > 0 {
		engineCfg.ActivityBonusDays = c.Rewards.ActivityBonusDays
	}
	if len(c.Rewards.Tiers) > 0 {
		engineCfg.Tiers = c.Rewards.Tiers
	}

	return engineCfg
}

// SweepConcurrency returns the batch fan-out limit, defaulting to 8
func (c *Config) SweepConcurrency() int {
	if c.Rewards.SweepConcurrency > 0 {
		return c.Rewards.SweepConcurrency
	}
	return 8
}
