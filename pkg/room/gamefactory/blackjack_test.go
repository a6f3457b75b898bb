package gamefactory

import (
	"testing"

	"blackjack-engine/pkg/playable"
	"blackjack-engine/pkg/playable/blackjack"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	factory, err := Get("blackjack")
	assert.NoError(t, err)
	assert.NotNil(t, factory)

	factory, err = Get("guts")
	assert.EqualError(t, err, "no factory with name: guts")
	assert.Nil(t, factory)
}

func Test_blackjackFactory_Details(t *testing.T) {
	name, err := factories["blackjack"].Details(playable.AdditionalData{})
	assert.NoError(t, err)
	assert.Equal(t, "Blackjack (Single Deck, S17)", name)

	name, err = factories["blackjack"].Details(playable.AdditionalData{
		"decks":         float64(6),
		"standOnSoft17": false,
		"sideBets": map[string]interface{}{
			"luckyLucky": true,
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Blackjack (6 Decks, H17, Side Bets)", name)

	_, err = factories["blackjack"].Details(playable.AdditionalData{"double": "sometimes"})
	assert.EqualError(t, err, "invalid table rules: unknown double policy: sometimes")
}

func Test_blackjackFactory_getRules(t *testing.T) {
	a := assert.New(t)
	house := engine.DefaultRules()
	house.Decks = 8
	factory := NewBlackjackFactory(&house, quartz.NewMock(t)).(blackjackFactory)

	rules, err := factory.getRules(playable.AdditionalData{})
	a.NoError(err)
	a.Equal(house, rules)

	rules, err = factory.getRules(playable.AdditionalData{
		"maxHandNumber":         float64(2),
		"double":                "9or10or11",
		"split":                 false,
		"doubleAfterSplit":      false,
		"surrender":             false,
		"insurance":             false,
		"showdownAfterAceSplit": false,
		"sideBets": map[string]interface{}{
			"perfectPairs": true,
		},
	})
	a.NoError(err)
	a.Equal(8, rules.Decks)
	a.Equal(2, rules.MaxHandNumber)
	a.Equal(engine.Double9or10or11, rules.Double)
	a.False(rules.Split)
	a.False(rules.DoubleAfterSplit)
	a.False(rules.Surrender)
	a.False(rules.Insurance)
	a.False(rules.ShowdownAfterAceSplit)
	a.Equal(engine.SideBets{PerfectPairs: true}, rules.SideBets)

	_, err = factory.getRules(playable.AdditionalData{"decks": float64(0)})
	a.EqualError(err, "invalid table rules: decks must be >= 1, got 0")

	a.Equal(8, house.Decks, "the house rules are not modified")
}

func Test_blackjackFactory_CreateGame(t *testing.T) {
	a := assert.New(t)
	factory := NewBlackjackFactory(nil, quartz.NewMock(t))

	game, err := factory.CreateGame(logrus.StandardLogger(), []int64{1, 2}, playable.AdditionalData{
		"decks": float64(2),
		"seed":  float64(42),
	})
	a.NoError(err)
	a.Equal("Blackjack (2 Decks, S17)", game.Name())

	table := game.(*blackjack.Table)
	s := table.Game().State()
	a.Equal(104, s.Deck.CardsLeft())
	a.Len(s.Players, 2)

	again, err := factory.CreateGame(logrus.StandardLogger(), []int64{1, 2}, playable.AdditionalData{
		"decks": float64(2),
		"seed":  float64(42),
	})
	a.NoError(err)
	a.Equal(s.Deck.HashCode(), again.(*blackjack.Table).Game().State().Deck.HashCode(), "the same seed shuffles the same shoe")

	game, err = factory.CreateGame(logrus.StandardLogger(), []int64{}, playable.AdditionalData{})
	a.Equal(blackjack.ErrNoPlayers, err)
	a.Nil(game)
}

func Test_blackjackFactory_CreateGameWithShoe(t *testing.T) {
	a := assert.New(t)
	factory := NewBlackjackFactory(nil, quartz.NewMock(t))

	game, err := factory.CreateGame(logrus.StandardLogger(), []int64{7}, playable.AdditionalData{
		"shoe": "10s, 7c,9h,10d",
	})
	a.NoError(err)

	_, _, err = game.Action(7, &playable.PayloadIn{Action: "bet", AdditionalData: playable.AdditionalData{"amount": 10}})
	a.NoError(err)
	_, _, err = game.Action(7, &playable.PayloadIn{Action: "stand"})
	a.NoError(err)

	details, over := game.GetEndOfGameDetails()
	a.True(over)
	a.Equal(map[int64]float64{7: 10}, details.BalanceAdjustments)

	_, err = factory.CreateGame(logrus.StandardLogger(), []int64{7}, playable.AdditionalData{"shoe": "10s,1x"})
	a.EqualError(err, "could not parse card: 1x")
}
