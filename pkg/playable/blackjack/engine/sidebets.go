package engine

import "blackjack-engine/pkg/deck"

// perfectPairsMultiplier is paid on any pair; colored and mixed pair tiers are not offered
const perfectPairsMultiplier = 5

// insuranceMultiplier is paid on the insurance stake when the dealer has blackjack
const insuranceMultiplier = 2

// SideBetsFromUser are the side bet stakes a player asked for
type SideBetsFromUser struct {
	LuckyLucky   float64 `json:"luckyLucky" yaml:"luckyLucky"`
	PerfectPairs float64 `json:"perfectPairs" yaml:"perfectPairs"`
}

// Total returns the sum of the stakes
func (s SideBetsFromUser) Total() float64 {
	return s.LuckyLucky + s.PerfectPairs
}

// Accepted drops the stakes for side bets the table does not offer
func (s SideBetsFromUser) Accepted(available SideBets) SideBetsFromUser {
	if !available.LuckyLucky {
		s.LuckyLucky = 0
	}

	if !available.PerfectPairs {
		s.PerfectPairs = 0
	}

	return s
}

// InsuranceResult is the player's insurance decision and what it paid
type InsuranceResult struct {
	Risk float64 `json:"risk"`
	Win  float64 `json:"win"`
}

// SideBetWins are the resolved side bets
// Insurance is nil until the player makes an insurance decision.
type SideBetWins struct {
	Insurance    *InsuranceResult `json:"insurance,omitempty"`
	LuckyLucky   float64          `json:"luckyLucky"`
	PerfectPairs float64          `json:"perfectPairs"`
}

// Clone returns a copy that does not share the insurance result
func (s SideBetWins) Clone() SideBetWins {
	if s.Insurance != nil {
		insurance := *s.Insurance
		s.Insurance = &insurance
	}

	return s
}

// Total returns the sum of everything the side bets paid
func (s SideBetWins) Total() float64 {
	total := s.LuckyLucky + s.PerfectPairs
	if s.Insurance != nil {
		total += s.Insurance.Win
	}

	return total
}

// IsLuckyLucky returns true when the player's cards and the dealer's up card sum to 19, 20 or 21
// Every hi/lo pairing of the two totals is tried.
func IsLuckyLucky(playerCards, dealerCards deck.Hand) bool {
	player := Calculate(playerCards)
	dealer := Calculate(dealerCards)
	for _, p := range []int{player.Hi, player.Lo} {
		for _, d := range []int{dealer.Hi, dealer.Lo} {
			if sum := p + d; sum >= 19 && sum <= 21 {
				return true
			}
		}
	}

	return false
}

// LuckyLuckyMultiplier returns the paytable multiplier for the three cards
func LuckyLuckyMultiplier(playerCards, dealerCards deck.Hand) float64 {
	return luckyLuckyPaytable.Multiplier(playerCards.Append(dealerCards...))
}

// IsPerfectPairs returns true if the first two cards have the same value
// Any two ten-valued cards pair, and so do two aces however they were built.
func IsPerfectPairs(playerCards deck.Hand) bool {
	return len(playerCards) >= 2 && playerCards[0].Value() == playerCards[1].Value()
}

// GetSideBetsInfo resolves Lucky Lucky and Perfect Pairs
// dealerCards must only hold the dealer's up card.
func GetSideBetsInfo(available SideBets, sideBets SideBetsFromUser, playerCards, dealerCards deck.Hand) SideBetWins {
	var wins SideBetWins
	if available.LuckyLucky && sideBets.LuckyLucky > 0 && IsLuckyLucky(playerCards, dealerCards) {
		wins.LuckyLucky = sideBets.LuckyLucky * LuckyLuckyMultiplier(playerCards, dealerCards)
	}

	if available.PerfectPairs && sideBets.PerfectPairs > 0 && IsPerfectPairs(playerCards) {
		wins.PerfectPairs = sideBets.PerfectPairs * perfectPairsMultiplier
	}

	return wins
}

// GetInsuranceResult resolves an insurance stake against all of the dealer's cards, hole card included
func GetInsuranceResult(bet float64, dealerCards deck.Hand) InsuranceResult {
	if bet <= 0 {
		return InsuranceResult{}
	}

	up, ok := dealerCards.FirstCard()
	if ok && up.IsAce() && IsBlackjack(dealerCards) {
		return InsuranceResult{Risk: bet, Win: bet * insuranceMultiplier}
	}

	return InsuranceResult{Risk: bet, Win: 0}
}
