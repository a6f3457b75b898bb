package engine

import (
	"errors"
	"fmt"
)

// DoublePolicy controls which totals a player may double down on
type DoublePolicy string

// DoublePolicy constants
const (
	DoubleAny       DoublePolicy = "any"
	DoubleNone      DoublePolicy = "none"
	Double9or10     DoublePolicy = "9or10"
	Double9or10or11 DoublePolicy = "9or10or11"
	Double9thru15   DoublePolicy = "9thru15"
)

// SideBets toggles which side bets the table offers
type SideBets struct {
	LuckyLucky   bool `json:"luckyLucky" yaml:"luckyLucky" envconfig:"lucky_lucky"`
	PerfectPairs bool `json:"perfectPairs" yaml:"perfectPairs" envconfig:"perfect_pairs"`
}

// Rules are the table rules for a round
// They are never modified once the round starts.
type Rules struct {
	Decks                 int          `json:"decks" yaml:"decks" envconfig:"decks"`
	StandOnSoft17         bool         `json:"standOnSoft17" yaml:"standOnSoft17" envconfig:"stand_on_soft17"`
	Double                DoublePolicy `json:"double" yaml:"double" envconfig:"double"`
	Split                 bool         `json:"split" yaml:"split" envconfig:"split"`
	DoubleAfterSplit      bool         `json:"doubleAfterSplit" yaml:"doubleAfterSplit" envconfig:"double_after_split"`
	Surrender             bool         `json:"surrender" yaml:"surrender" envconfig:"surrender"`
	Insurance             bool         `json:"insurance" yaml:"insurance" envconfig:"insurance"`
	ShowdownAfterAceSplit bool         `json:"showdownAfterAceSplit" yaml:"showdownAfterAceSplit" envconfig:"showdown_after_ace_split"`
	MaxHandNumber         int          `json:"maxHandNumber" yaml:"maxHandNumber" envconfig:"max_hand_number"`
	SideBets              SideBets     `json:"sideBets" yaml:"sideBets" envconfig:"side_bets"`
}

// DefaultRules returns the default table rules
func DefaultRules() Rules {
	return Rules{
		Decks:                 1,
		StandOnSoft17:         true,
		Double:                DoubleAny,
		Split:                 true,
		DoubleAfterSplit:      true,
		Surrender:             true,
		Insurance:             true,
		ShowdownAfterAceSplit: true,
		MaxHandNumber:         4,
	}
}

// Validate returns an error if the rules cannot be used for a round
func (r Rules) Validate() error {
	if r.Decks < 1 {
		return fmt.Errorf("decks must be >= 1, got %d", r.Decks)
	}

	if r.MaxHandNumber < 1 {
		return fmt.Errorf("maxHandNumber must be >= 1, got %d", r.MaxHandNumber)
	}

	switch r.Double {
	case DoubleAny, DoubleNone, Double9or10, Double9or10or11, Double9thru15:
	case "":
		return errors.New("double policy is required")
	default:
		return fmt.Errorf("unknown double policy: %s", r.Double)
	}

	return nil
}

// CanDouble returns true if the policy allows doubling on the hand's total
func CanDouble(policy DoublePolicy, v HandValue) bool {
	switch policy {
	case DoubleNone:
		return false
	case Double9or10:
		return v.Hi == 9 || v.Hi == 10
	case Double9or10or11:
		return v.Hi >= 9 && v.Hi <= 11
	case Double9thru15:
		return v.Hi >= 9 && v.Hi <= 15
	}

	return true
}

// EnforceRules clears the actions the table does not allow
// It only ever turns actions off, so applying it twice is the same as applying it once.
// afterSplit is true once any hand in the round has been split.
func EnforceRules(h Hand, rules Rules, afterSplit bool) Hand {
	actions := h.AvailableActions
	if !CanDouble(rules.Double, h.Value) {
		actions.Double = false
	}

	if !rules.Split {
		actions.Split = false
	}

	if !rules.Surrender {
		actions.Surrender = false
	}

	if !rules.DoubleAfterSplit && afterSplit {
		actions.Double = false
	}

	if !rules.Insurance {
		actions.Insurance = false
	}

	h.AvailableActions = actions
	return h
}
