package main

import (
	"io"
	"os"

	"blackjack-engine/internal/config"

	"gopkg.in/yaml.v2"
)

// ConfigCmd prints a configuration file
type ConfigCmd struct {
	Defaults bool `help:"Print the defaults instead of the loaded configuration"`

	out io.Writer
}

func (c *ConfigCmd) Run() error {
	cfg := config.DefaultConfig()
	if !c.Defaults {
		cfg = config.Instance()
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	return yaml.NewEncoder(out).Encode(cfg)
}
