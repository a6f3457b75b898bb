package gamefactory

import (
	"fmt"
	"strings"

	"blackjack-engine/internal/rng"
	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable"
	"blackjack-engine/pkg/playable/blackjack"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

type blackjackFactory struct {
	rules engine.Rules
	clock quartz.Clock
}

// NewBlackjackFactory returns a factory that starts from the given house rules
// Table options in the additional data override them. A nil rules uses the defaults and a nil clock the real one.
func NewBlackjackFactory(rules *engine.Rules, clock quartz.Clock) GameFactory {
	f := blackjackFactory{
		rules: engine.DefaultRules(),
		clock: clock,
	}

	if rules != nil {
		f.rules = *rules
	}

	if f.clock == nil {
		f.clock = quartz.NewReal()
	}

	return f
}

func (b blackjackFactory) Details(additionalData playable.AdditionalData) (string, error) {
	rules, err := b.getRules(additionalData)
	if err != nil {
		return "", err
	}

	return blackjack.NameFromRules(rules), nil
}

func (b blackjackFactory) CreateGame(logger logrus.FieldLogger, playerIDs []int64, additionalData playable.AdditionalData) (playable.Playable, error) {
	rules, err := b.getRules(additionalData)
	if err != nil {
		return nil, err
	}

	var shoe *deck.Deck
	if cards, ok := additionalData.GetString("shoe"); ok {
		stacked, err := stackedShoe(cards)
		if err != nil {
			return nil, err
		}

		shoe = stacked
	} else if seed, ok := additionalData.GetInt("seed"); ok {
		shoe = deck.New(rules.Decks)
		shoe.Shuffle(rng.NewSeeded(int64(seed)))
	}

	table, err := blackjack.NewTable(logger, b.clock, playerIDs, rules, shoe)
	if err != nil {
		return nil, err
	}

	return table, nil
}

func (b blackjackFactory) getRules(additionalData playable.AdditionalData) (engine.Rules, error) {
	rules := b.rules

	if decks, ok := additionalData.GetInt("decks"); ok {
		rules.Decks = decks
	}

	if maxHands, ok := additionalData.GetInt("maxHandNumber"); ok {
		rules.MaxHandNumber = maxHands
	}

	if double, ok := additionalData.GetString("double"); ok {
		rules.Double = engine.DoublePolicy(double)
	}

	toggles := map[string]*bool{
		"standOnSoft17":         &rules.StandOnSoft17,
		"split":                 &rules.Split,
		"doubleAfterSplit":      &rules.DoubleAfterSplit,
		"surrender":             &rules.Surrender,
		"insurance":             &rules.Insurance,
		"showdownAfterAceSplit": &rules.ShowdownAfterAceSplit,
	}

	for key, rule := range toggles {
		if val, ok := additionalData.GetBool(key); ok {
			*rule = val
		}
	}

	if sideBets, ok := additionalData.GetData("sideBets"); ok {
		if val, ok := sideBets.GetBool("luckyLucky"); ok {
			rules.SideBets.LuckyLucky = val
		}

		if val, ok := sideBets.GetBool("perfectPairs"); ok {
			rules.SideBets.PerfectPairs = val
		}
	}

	if err := rules.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("invalid table rules: %w", err)
	}

	return rules, nil
}

// stackedShoe returns a shoe that deals the comma separated cards in order
func stackedShoe(s string) (*deck.Deck, error) {
	var cards deck.Hand
	for _, c := range strings.Split(s, ",") {
		card, err := deck.ParseCard(c)
		if err != nil {
			return nil, err
		}

		cards = cards.Append(card)
	}

	return deck.NewStacked(cards), nil
}
