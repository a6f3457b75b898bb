package blackjack

import (
	"fmt"

	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable/blackjack/engine"
)

func handAllows(actions engine.AvailableActions, action ActionType) bool {
	switch action {
	case ActionSplit:
		return actions.Split
	case ActionHit:
		return actions.Hit
	case ActionDouble:
		return actions.Double
	case ActionStand:
		return actions.Stand
	case ActionSurrender:
		return actions.Surrender
	case ActionInsurance:
		return actions.Insurance
	}

	return false
}

// apply mutates the working state and returns the follow-on actions, first one first
func (r *round) apply(action Action) ([]Action, error) {
	switch action.Type {
	case ActionBet:
		return r.bet(action)
	case ActionDealCards:
		return r.dealCards()
	case ActionInsurance:
		return r.insurance(action)
	case ActionSplit:
		return r.split()
	case ActionHit:
		return r.hit()
	case ActionDouble:
		return r.double()
	case ActionStand:
		return r.stand()
	case ActionSurrender:
		return r.surrender()
	case ActionShowdown:
		return r.showdown()
	case ActionDealerHit:
		return r.dealerHit(action)
	}

	return nil, inconsistent("no transition for %s", action.Type)
}

func (r *round) bet(action Action) ([]Action, error) {
	p := action.Payload
	player := &r.Players[*p.PlayerID]
	if p.SittingOut {
		player.InitialBet = 0
		player.SittingOut = true
	} else {
		player.InitialBet = *p.Bet
		player.SittingOut = false
	}

	if p.SideBets != nil {
		player.SideBetsFromUser = *p.SideBets
	}

	if player.SittingOut {
		r.log(nil, "%s sits out", player.Name)
	} else {
		r.log(nil, "%s bets %.2f", player.Name, player.InitialBet)
	}

	for _, pl := range r.Players {
		if !pl.HasBet() {
			r.Stage = stage(StageReady)
			return nil, nil
		}
	}

	r.Stage = stage(StageDealCards)
	return []Action{dealCards()}, nil
}

func (r *round) dealCards() ([]Action, error) {
	playerCards := make([]deck.Hand, len(r.Players))
	for pass := 0; pass < 2; pass++ {
		for i, p := range r.Players {
			if p.SittingOut {
				continue
			}

			card, err := r.drawCard()
			if err != nil {
				return nil, err
			}

			playerCards[i] = playerCards[i].Append(card)
		}

		if pass == 0 {
			up, err := r.drawCard()
			if err != nil {
				return nil, err
			}

			r.DealerCards = deck.Hand{up}
		}
	}

	hole, err := r.drawCard()
	if err != nil {
		return nil, err
	}

	r.DealerHoleCard = &hole
	r.DealerValue = engine.Calculate(r.DealerCards)
	r.DealerHasBlackjack = engine.IsBlackjack(r.DealerCards.Append(hole))

	for i := range r.Players {
		p := &r.Players[i]
		p.SideBetsFromUser = p.SideBetsFromUser.Accepted(r.AvailableBets)
		if p.SittingOut {
			p.Hands = nil
			continue
		}

		first := r.enforceRules(engine.AfterDeal(playerCards[i], r.DealerCards, p.InitialBet), 1, false)
		if first.HasBlackjack {
			first = engine.AfterStand(first)
		}

		p.Hands = []engine.Hand{first}
		wins := engine.GetSideBetsInfo(r.AvailableBets, p.SideBetsFromUser, playerCards[i], r.DealerCards)
		wins.Insurance = p.SideBetWins.Insurance
		p.SideBetWins = wins

		r.log(playerCards[i], "%s is dealt %s", p.Name, playerCards[i])
	}

	r.AvailableBets = engine.SideBets{}
	r.log(r.DealerCards, "dealer shows %s", r.DealerCards)

	up := r.DealerCards[0]
	if r.Rules.Insurance && up.IsAce() && !r.insuranceDecided() {
		r.Stage = stage(StageInsurance)
		return nil, nil
	}

	return r.advance(0), nil
}

func (r *round) insuranceDecided() bool {
	for _, p := range r.Players {
		if !p.hasDecidedInsurance() {
			return false
		}
	}

	return true
}

func (r *round) insurance(action Action) ([]Action, error) {
	playerID := *action.Payload.PlayerID
	bet := *action.Payload.Bet
	player := &r.Players[playerID]

	result := engine.GetInsuranceResult(bet, r.allDealerCards())
	player.SideBetWins.Insurance = &result
	for i := range player.Hands {
		player.Hands[i].AvailableActions.Insurance = false
	}

	if bet > 0 {
		r.log(nil, "%s takes insurance for %.2f", player.Name, bet)
	} else {
		r.log(nil, "%s declines insurance", player.Name)
	}

	if !r.insuranceDecided() {
		return nil, nil
	}

	return r.advance(0), nil
}

func (r *round) split() ([]Action, error) {
	player, hand, err := r.activeHand()
	if err != nil {
		return nil, err
	}

	if len(hand.Cards) != 2 {
		return nil, inconsistent("cannot split a hand of %d cards", len(hand.Cards))
	}

	playerID := r.Stage.ActivePlayerID
	handID := r.Stage.ActiveHandID
	handCount := len(player.Hands) + 1
	canSplitAgain := handCount < r.Rules.MaxHandNumber
	aceSplit := r.Rules.ShowdownAfterAceSplit && hand.Cards[0].IsAce()

	if !canSplitAgain {
		for i := range player.Hands {
			player.Hands[i].AvailableActions.Split = false
		}
	}

	cards := []deck.Hand{{hand.Cards[0]}, {hand.Cards[1]}}
	for i := range cards {
		card, err := r.drawCard()
		if err != nil {
			return nil, err
		}

		cards[i] = cards[i].Append(card)
	}

	hands := make([]engine.Hand, len(cards))
	for i, c := range cards {
		if aceSplit {
			hands[i] = r.enforceRules(engine.AfterAceSplit(c, r.DealerCards, player.InitialBet), handCount, true)
		} else {
			hands[i] = r.enforceRules(engine.AfterSplit(c, r.DealerCards, player.InitialBet, canSplitAgain), handCount, true)
		}
	}

	player.Hands[handID] = hands[0]
	player.Hands = append(player.Hands, hands[1])
	r.log(cards[0].Append(cards[1]...), "%s splits into %s and %s", player.Name, cards[0], cards[1])

	return r.advance(playerID), nil
}

func (r *round) hit() ([]Action, error) {
	player, hand, err := r.activeHand()
	if err != nil {
		return nil, err
	}

	card, err := r.drawCard()
	if err != nil {
		return nil, err
	}

	cards := hand.Cards.Append(card)
	hasSplit := len(player.Hands) > 1
	*hand = r.enforceRules(engine.AfterHit(cards, r.DealerCards, hand.Bet, hasSplit), len(player.Hands), r.hasSplit())
	r.log(deck.Hand{card}, "%s hits and gets %s", player.Name, card)

	return r.advance(r.Stage.ActivePlayerID), nil
}

func (r *round) double() ([]Action, error) {
	player, hand, err := r.activeHand()
	if err != nil {
		return nil, err
	}

	card, err := r.drawCard()
	if err != nil {
		return nil, err
	}

	cards := hand.Cards.Append(card)
	hasSplit := len(player.Hands) > 1
	*hand = r.enforceRules(engine.AfterDouble(cards, r.DealerCards, hand.Bet, hasSplit), len(player.Hands), r.hasSplit())
	r.log(deck.Hand{card}, "%s doubles down and gets %s", player.Name, card)

	return []Action{Stand()}, nil
}

func (r *round) stand() ([]Action, error) {
	if r.Stage.Name == StageShowdown {
		return []Action{showdown()}, nil
	}

	player, hand, err := r.activeHand()
	if err != nil {
		return nil, err
	}

	wasClosed := hand.Close
	*hand = engine.AfterStand(*hand)
	if !wasClosed {
		r.log(nil, "%s stands on %d", player.Name, engine.HigherValidValue(hand.Value))
	}

	return r.advance(r.Stage.ActivePlayerID), nil
}

func (r *round) surrender() ([]Action, error) {
	player, hand, err := r.activeHand()
	if err != nil {
		return nil, err
	}

	if len(player.Hands) > 1 {
		return nil, reject(ActionSurrender, "surrender is not allowed after a split")
	}

	*hand = engine.AfterSurrender(*hand)
	r.log(nil, "%s surrenders", player.Name)

	return r.advance(r.Stage.ActivePlayerID), nil
}

func (r *round) showdown() ([]Action, error) {
	if r.DealerHoleCard == nil {
		return nil, ErrNoHoleCard
	}

	r.Stage = stage(StageDealerTurn)
	return []Action{dealerHit(r.DealerHoleCard)}, nil
}

// dealerHit draws for the dealer until the dealer's hand stops
func (r *round) dealerHit(action Action) ([]Action, error) {
	if r.Stage.Name != StageDealerTurn {
		return nil, inconsistent("%s during %s", action.Type, r.Stage.Name)
	}

	var card deck.Card
	revealed := action.Payload != nil && action.Payload.DealerHoleCard != nil
	if revealed {
		card = *action.Payload.DealerHoleCard
	} else {
		var err error
		if card, err = r.drawCard(); err != nil {
			return nil, err
		}
	}

	r.DealerCards = r.DealerCards.Append(card)
	r.DealerValue = engine.Calculate(r.DealerCards)
	r.DealerHasBlackjack = engine.IsBlackjack(r.DealerCards)
	r.DealerHasBusted = engine.CheckForBusted(r.DealerValue)

	if revealed {
		r.log(r.DealerCards, "dealer reveals %s", card)
	} else {
		r.log(deck.Hand{card}, "dealer draws %s", card)
	}

	if r.dealerStops() || r.allHandsResolved() {
		r.Stage = stage(StageDone)
		r.logDealerResult()
		r.settle()
		return nil, nil
	}

	return []Action{dealerHit(nil)}, nil
}

// dealerStops returns true once the dealer's hand must not take another card
// Any hard 17 or more stops; a soft 17 only stops when the table stands on soft 17.
func (r *round) dealerStops() bool {
	v := r.DealerValue
	if v.Hi >= 17 && (r.DealerHasBusted || r.DealerHasBlackjack || (r.Rules.StandOnSoft17 && engine.IsSoftHand(r.DealerCards))) {
		return true
	}

	return v.Lo >= 17
}

func (r *round) logDealerResult() {
	var result string
	switch {
	case r.DealerHasBlackjack:
		result = "blackjack"
	case r.DealerHasBusted:
		result = "bust"
	default:
		result = fmt.Sprintf("%d", engine.HigherValidValue(r.DealerValue))
	}

	r.log(r.DealerCards, "dealer finishes with %s", result)
}
