package config

import (
	"errors"
	"fmt"
	"os"

	"blackjack-engine/internal/rng"
	"blackjack-engine/internal/util"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack engine
type Config struct {
	loaded bool
	Log    Log          `yaml:"log" envconfig:"log"`
	Rules  engine.Rules `yaml:"rules" envconfig:"rules"`
	Shoe   Shoe         `yaml:"shoe" envconfig:"shoe"`
}

// Log configures the logger of the commands
type Log struct {
	Level  string `yaml:"level" envconfig:"level"`
	Format string `yaml:"format" envconfig:"format"`
}

// Shoe configures how shoes are built
// Seed 0 shuffles with crypto/rand. Penetration is the share of the shoe dealt before it is replaced.
type Shoe struct {
	Seed        int64   `yaml:"seed" envconfig:"seed"`
	Penetration float64 `yaml:"penetration" envconfig:"penetration"`
}

// Generator returns the generator shoes are shuffled with
func (s Shoe) Generator() rng.Generator {
	if s.Seed == 0 {
		return rng.Crypto{}
	}

	return rng.NewSeeded(s.Seed)
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Rules: engine.DefaultRules(),
		Shoe: Shoe{
			Penetration: 0.75,
		},
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file leaves the defaults in place. Unknown keys are an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		dec := yaml.NewDecoder(file)
		dec.SetStrict(true)
		if err := dec.Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate returns an error if the configuration cannot be used
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	if c.Shoe.Penetration <= 0 || c.Shoe.Penetration > 1 {
		return errors.New("shoe: penetration must be in (0, 1]")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log: unknown format: %s", c.Log.Format)
	}

	return nil
}
