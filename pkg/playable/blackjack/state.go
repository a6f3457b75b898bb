package blackjack

import (
	"time"

	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable/blackjack/engine"
)

// Player is a seat at the table
type Player struct {
	Name             string                  `json:"name"`
	InitialBet       float64                 `json:"initialBet"`
	SittingOut       bool                    `json:"sittingOut"`
	SideBetsFromUser engine.SideBetsFromUser `json:"sideBetsFromUser"`
	SideBetWins      engine.SideBetWins      `json:"sideBetWins"`
	Hands            []engine.Hand           `json:"hands"`
	FinalBet         float64                 `json:"finalBet"`
	FinalWin         float64                 `json:"finalWin"`
}

// HasBet returns true once the player placed a stake or sat out
func (p Player) HasBet() bool {
	return p.InitialBet > 0 || p.SittingOut
}

// Net returns what the player won or lost in the round
// Everything returned by the hands and side bets minus everything staked on them.
func (p Player) Net() float64 {
	staked := p.FinalBet + p.SideBetsFromUser.Total()
	if p.SideBetWins.Insurance != nil {
		staked += p.SideBetWins.Insurance.Risk
	}

	return p.FinalWin + p.SideBetWins.Total() - staked
}

func (p Player) clone() Player {
	if p.Hands != nil {
		hands := make([]engine.Hand, len(p.Hands))
		for i, h := range p.Hands {
			hands[i] = h.Clone()
		}

		p.Hands = hands
	}

	p.SideBetWins = p.SideBetWins.Clone()
	return p
}

// hasDecidedInsurance returns true if the player does not owe an insurance decision
func (p Player) hasDecidedInsurance() bool {
	return p.SittingOut || p.SideBetWins.Insurance != nil
}

// HistoryItem is an action and the time it was processed
// FollowOn is true for actions the round dispatched on its own.
type HistoryItem struct {
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"ts"`
	FollowOn  bool      `json:"followOn,omitempty"`
}

// State is the authoritative state of a round
type State struct {
	Players            []Player         `json:"players"`
	Stage              Stage            `json:"stage"`
	Rules              engine.Rules     `json:"rules"`
	Deck               *deck.Deck       `json:"deck,omitempty"`
	DealerCards        deck.Hand        `json:"dealerCards"`
	DealerHoleCard     *deck.Card       `json:"dealerHoleCard,omitempty"`
	DealerValue        engine.HandValue `json:"dealerValue"`
	DealerHasBlackjack bool             `json:"dealerHasBlackjack"`
	DealerHasBusted    bool             `json:"dealerHasBusted"`
	CardCount          int              `json:"cardCount"`
	AvailableBets      engine.SideBets  `json:"availableBets"`
	History            []HistoryItem    `json:"history"`
}

func newState(names []string, rules engine.Rules, shoe *deck.Deck) *State {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Name: name}
	}

	return &State{
		Players:       players,
		Stage:         stage(StageReady),
		Rules:         rules,
		Deck:          shoe,
		DealerCards:   deck.Hand{},
		AvailableBets: rules.SideBets,
		History:       []HistoryItem{},
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := *s
	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		c.Players[i] = p.clone()
	}

	c.Deck = s.Deck.Clone()
	c.DealerCards = s.DealerCards.Clone()
	if s.DealerHoleCard != nil {
		card := *s.DealerHoleCard
		c.DealerHoleCard = &card
	}

	c.History = make([]HistoryItem, len(s.History))
	copy(c.History, s.History)

	return &c
}

// HoleCardRevealed returns true once the dealer turned over the hole card
func (s *State) HoleCardRevealed() bool {
	return s.Stage.Name == StageDealerTurn || s.Stage.Name == StageDone
}

// View returns what the players are allowed to see
// The shoe is never shown. The hole card, the dealer's blackjack and the
// insurance payouts stay hidden until the hole card is revealed.
func (s *State) View() *State {
	v := s.Clone()
	v.Deck = nil
	if v.HoleCardRevealed() {
		return v
	}

	v.DealerHoleCard = nil
	v.DealerHasBlackjack = false
	for i := range v.Players {
		if insurance := v.Players[i].SideBetWins.Insurance; insurance != nil {
			insurance.Win = 0
		}
	}

	return v
}

// hasSplit returns true if any hand was split in the round
func (s *State) hasSplit() bool {
	for _, item := range s.History {
		if item.Action.Type == ActionSplit {
			return true
		}
	}

	return false
}

// allHandsResolved returns true when the dealer's cards cannot change any outcome
func (s *State) allHandsResolved() bool {
	for _, p := range s.Players {
		for _, h := range p.Hands {
			if !h.IsResolved() {
				return false
			}
		}
	}

	return true
}

// nextOpenHand scans forward from the player for the first open hand
func (s *State) nextOpenHand(fromPlayerID int) Stage {
	for playerID := fromPlayerID; playerID < len(s.Players); playerID++ {
		for handID, h := range s.Players[playerID].Hands {
			if !h.Close {
				return playersTurn(playerID, handID)
			}
		}
	}

	return stage(StageShowdown)
}

// allDealerCards returns the up cards plus the hole card while it is still face down
func (s *State) allDealerCards() deck.Hand {
	if s.DealerHoleCard == nil || s.HoleCardRevealed() {
		return s.DealerCards
	}

	return s.DealerCards.Append(*s.DealerHoleCard)
}
