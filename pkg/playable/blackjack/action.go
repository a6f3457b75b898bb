package blackjack

import (
	"fmt"
	"math"
	"strings"

	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable/blackjack/engine"
)

// ActionType is the kind of an action
type ActionType string

// ActionType constants
const (
	ActionBet       ActionType = "BET"
	ActionInsurance ActionType = "INSURANCE"
	ActionSplit     ActionType = "SPLIT"
	ActionHit       ActionType = "HIT"
	ActionDouble    ActionType = "DOUBLE"
	ActionStand     ActionType = "STAND"
	ActionSurrender ActionType = "SURRENDER"

	ActionDealCards ActionType = "DEAL-CARDS"
	ActionShowdown  ActionType = "SHOWDOWN"
	ActionDealerHit ActionType = "DEALER-HIT"
	ActionInvalid   ActionType = "INVALID"
	ActionRestore   ActionType = "RESTORE"
)

// playerActions are the actions taken on the active hand
var playerActions = []ActionType{ActionSplit, ActionHit, ActionDouble, ActionStand, ActionSurrender}

func (a ActionType) String() string {
	return string(a)
}

// IsExternal returns true if callers may dispatch the action
func (a ActionType) IsExternal() bool {
	switch a {
	case ActionBet, ActionInsurance, ActionSplit, ActionHit, ActionDouble, ActionStand, ActionSurrender:
		return true
	}

	return false
}

// isPlayerTurn returns true for the actions played on the active hand
func (a ActionType) isPlayerTurn() bool {
	for _, action := range playerActions {
		if a == action {
			return true
		}
	}

	return false
}

// ActionTypeFromString returns an external action type from its name, e.g. "hit"
func ActionTypeFromString(s string) (ActionType, error) {
	a := ActionType(strings.ToUpper(strings.TrimSpace(s)))
	if !a.IsExternal() {
		return "", fmt.Errorf("invalid action: %s", s)
	}

	return a, nil
}

// Action is something that happens in a round
type Action struct {
	Type    ActionType `json:"type"`
	Payload *Payload   `json:"payload,omitempty"`
}

// Payload carries the arguments of an action
// Only the fields an action type uses are set.
type Payload struct {
	Bet        *float64                 `json:"bet,omitempty"`
	SittingOut bool                     `json:"sittingOut,omitempty"`
	PlayerID   *int                     `json:"playerId,omitempty"`
	HandID     *int                     `json:"handId,omitempty"`
	SideBets   *engine.SideBetsFromUser `json:"sideBets,omitempty"`

	DealerHoleCard *deck.Card `json:"dealerHoleCard,omitempty"`

	// INVALID
	Type    ActionType `json:"type,omitempty"`
	Payload *Payload   `json:"payload,omitempty"`
	Info    string     `json:"info,omitempty"`
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

// Bet places a player's stake
// An infinite stake sits the player out of the round.
func Bet(bet float64, playerID int, sideBets *engine.SideBetsFromUser) Action {
	return Action{
		Type: ActionBet,
		Payload: &Payload{
			Bet:      floatPtr(bet),
			PlayerID: intPtr(playerID),
			SideBets: sideBets,
		},
	}
}

// SitOut sits the player out of the round
func SitOut(playerID int) Action {
	return Bet(math.Inf(1), playerID, nil)
}

// Insurance is a player's insurance decision, a bet of 0 declines
func Insurance(bet float64, playerID int) Action {
	return Action{
		Type: ActionInsurance,
		Payload: &Payload{
			Bet:      floatPtr(bet),
			PlayerID: intPtr(playerID),
		},
	}
}

// Split splits the active hand
func Split() Action {
	return Action{Type: ActionSplit}
}

// Hit draws a card to the active hand
func Hit() Action {
	return Action{Type: ActionHit}
}

// Double doubles the bet of the active hand and draws its last card
func Double() Action {
	return Action{Type: ActionDouble}
}

// Stand closes the active hand
func Stand() Action {
	return Action{Type: ActionStand}
}

// Surrender gives up the active hand for half the bet
func Surrender() Action {
	return Action{Type: ActionSurrender}
}

// ForPlayer ties a player turn action to a seat so it is rejected when that seat is not active
func (a Action) ForPlayer(playerID int) Action {
	payload := a.Payload.clone()
	if payload == nil {
		payload = &Payload{}
	}

	payload.PlayerID = intPtr(playerID)
	a.Payload = payload
	return a
}

func dealCards() Action {
	return Action{Type: ActionDealCards}
}

func showdown() Action {
	return Action{Type: ActionShowdown}
}

func dealerHit(holeCard *deck.Card) Action {
	if holeCard == nil {
		return Action{Type: ActionDealerHit}
	}

	card := *holeCard
	return Action{
		Type:    ActionDealerHit,
		Payload: &Payload{DealerHoleCard: &card},
	}
}

func invalid(action Action, info string) Action {
	return Action{
		Type: ActionInvalid,
		Payload: &Payload{
			Type:    action.Type,
			Payload: action.Payload.finite(),
			Info:    info,
		},
	}
}

func restore() Action {
	return Action{Type: ActionRestore}
}

func (p *Payload) clone() *Payload {
	if p == nil {
		return nil
	}

	c := *p
	if p.Bet != nil {
		c.Bet = floatPtr(*p.Bet)
	}

	if p.PlayerID != nil {
		c.PlayerID = intPtr(*p.PlayerID)
	}

	if p.HandID != nil {
		c.HandID = intPtr(*p.HandID)
	}

	if p.SideBets != nil {
		sideBets := *p.SideBets
		c.SideBets = &sideBets
	}

	if p.DealerHoleCard != nil {
		card := *p.DealerHoleCard
		c.DealerHoleCard = &card
	}

	c.Payload = p.Payload.clone()
	return &c
}

// normalized turns an infinite stake into a sitting out flag
func (a Action) normalized() Action {
	if a.Type != ActionBet || a.Payload == nil || a.Payload.Bet == nil || !math.IsInf(*a.Payload.Bet, 1) {
		return a
	}

	payload := a.Payload.clone()
	payload.Bet = nil
	payload.SittingOut = true
	a.Payload = payload
	return a
}

// finite returns a copy without the stakes JSON cannot encode
func (p *Payload) finite() *Payload {
	c := p.clone()
	if c == nil {
		return nil
	}

	if c.Bet != nil && (math.IsNaN(*c.Bet) || math.IsInf(*c.Bet, 0)) {
		c.Bet = nil
	}

	if c.SideBets != nil && !isFinite(c.SideBets.LuckyLucky, c.SideBets.PerfectPairs) {
		c.SideBets = nil
	}

	return c
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
