package config

import (
	"testing"

	"blackjack-engine/internal/rng"
	"blackjack-engine/internal/util"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	config = Config{}
	defer util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("BJ_RULES_DECKS", "8")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(8, cfg.Rules.Decks)
	a.False(cfg.Rules.StandOnSoft17)
	a.Equal(engine.Double9or10or11, cfg.Rules.Double)
	a.True(cfg.Rules.SideBets.LuckyLucky)
	a.False(cfg.Rules.SideBets.PerfectPairs)
	a.True(cfg.Rules.Split, "unset rules keep their defaults")
	a.Equal(4, cfg.Rules.MaxHandNumber)
	a.Equal(int64(42), cfg.Shoe.Seed)
	a.Equal(0.75, cfg.Shoe.Penetration)

	// ensure that it's only loaded once
	defer util.SetEnv("BJ_RULES_DECKS", "2")()
	// ensure we aren't using a pointer
	cfg.Rules.Decks = 3
	cfg = Instance()
	a.Equal(8, cfg.Rules.Decks)
}

func TestLoad_defaults(t *testing.T) {
	defer util.SetEnv("BJ_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("BJ_LOG_LEVEL", "warn")()

	a := assert.New(t)
	a.NoError(Load())

	expects := DefaultConfig()
	expects.loaded = true
	expects.Log.Level = "warn"
	a.Equal(expects, Instance())
}

func TestLoad_invalid(t *testing.T) {
	a := assert.New(t)

	restore := util.SetEnv("BJ_CONFIG_FILE", "testdata/invalid.yaml")
	a.EqualError(Load(), "rules: maxHandNumber must be >= 1, got 0")
	restore()

	restore = util.SetEnv("BJ_CONFIG_FILE", "testdata/unknown_side_bet.yaml")
	err := Load()
	a.Error(err)
	a.Contains(err.Error(), "field royalMatch not found")
	restore()

	defer util.SetEnv("BJ_CONFIG_FILE", "testdata/missing.yaml")()
	restore = util.SetEnv("BJ_SHOE_PENETRATION", "1.5")
	a.EqualError(Load(), "shoe: penetration must be in (0, 1]")
	restore()

	restore = util.SetEnv("BJ_LOG_FORMAT", "xml")
	a.EqualError(Load(), "log: unknown format: xml")
	restore()

	restore = util.SetEnv("BJ_RULES_DECKS", "many")
	a.Error(Load())
	restore()
}

func TestShoe_Generator(t *testing.T) {
	a := assert.New(t)
	a.Equal(rng.Crypto{}, Shoe{}.Generator())

	gen := Shoe{Seed: 7}.Generator()
	expects := rng.NewSeeded(7)
	for i := 0; i < 5; i++ {
		a.Equal(expects.Intn(52), gen.Intn(52))
	}
}
