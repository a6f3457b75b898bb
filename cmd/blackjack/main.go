package main

import (
	"strings"

	"blackjack-engine/internal/config"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Version is the engine version
var Version = "v0.0.0-dev"

// CLI are the blackjack commands
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Replay   ReplayCmd        `cmd:"" help:"Play a YAML action script against a table and print the final state"`
	Simulate SimulateCmd      `cmd:"" help:"Play many rounds with a fixed strategy and report the returns"`
	Config   ConfigCmd        `cmd:"" help:"Print the configuration as YAML"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Deterministic blackjack rules engine"),
		kong.UsageOnError(),
		kong.Vars{
			"version": Version,
		},
	)

	setupLogger()
	ctx.FatalIfErrorf(ctx.Run())
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
