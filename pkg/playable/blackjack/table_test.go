package blackjack

import (
	"errors"
	"testing"

	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var _ playable.Playable = (*Table)(nil)

func newTestTable(t *testing.T, shoe string, playerIDs ...int64) *Table {
	t.Helper()

	table, err := NewTable(logrus.StandardLogger(), quartz.NewMock(t), playerIDs, engine.DefaultRules(), deck.NewStacked(cards(shoe)))
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func payload(action string, data playable.AdditionalData) *playable.PayloadIn {
	return &playable.PayloadIn{
		Action:         action,
		AdditionalData: data,
		Context:        "ctx",
	}
}

func TestNewTable(t *testing.T) {
	a := assert.New(t)

	table, err := NewTable(logrus.StandardLogger(), quartz.NewMock(t), []int64{1, 2, 1}, engine.DefaultRules(), nil)
	a.Nil(table)
	a.EqualError(err, "duplicate players detected")

	table, err = NewTable(logrus.StandardLogger(), quartz.NewMock(t), nil, engine.DefaultRules(), nil)
	a.Nil(table)
	a.Equal(ErrNoPlayers, err)

	table = newTestTable(t, "10s,9s,7c,9h,7h,13d", 5, 9)
	a.Equal("blackjack", table.Key())
	a.Equal("Blackjack (Single Deck, S17)", table.Name())
	a.Equal("Seat 2", table.Game().State().Players[1].Name)
	a.Equal(table.Game().LogChan(), table.LogChan())
}

func TestNameFromRules(t *testing.T) {
	a := assert.New(t)

	rules := engine.DefaultRules()
	rules.Decks = 6
	rules.StandOnSoft17 = false
	a.Equal("Blackjack (6 Decks, H17)", NameFromRules(rules))

	rules.SideBets.PerfectPairs = true
	a.Equal("Blackjack (6 Decks, H17, Side Bets)", NameFromRules(rules))
}

func TestTable_Action(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, "10s,9s,7c,9h,7h,13d", 5, 9)

	resp, update, err := table.Action(3, payload("bet", playable.AdditionalData{"amount": 10.0}))
	a.Nil(resp)
	a.False(update)
	a.Equal(ErrNotAtTable, err)

	_, _, err = table.Action(5, payload("fold", nil))
	a.EqualError(err, "invalid action: fold")

	_, _, err = table.Action(5, payload("bet", nil))
	a.EqualError(err, "amount is required")

	_, _, err = table.Action(5, payload("deal-cards", nil))
	a.EqualError(err, "invalid action: deal-cards")

	resp, update, err = table.Action(5, payload("bet", playable.AdditionalData{"amount": 10.0}))
	a.NoError(err)
	a.True(update)
	a.Equal(playable.OK("ctx"), resp)

	state, err := table.GetPlayerState(9)
	a.NoError(err)
	a.Equal([]ActionType{ActionBet}, state.Data.(playerState).Actions)

	_, _, err = table.Action(9, payload("BET", playable.AdditionalData{"amount": 10}))
	a.NoError(err)

	details, over := table.GetEndOfGameDetails()
	a.Nil(details)
	a.False(over)

	_, update, err = table.Action(9, payload("stand", nil))
	a.False(update)
	var verr *ValidationError
	if a.True(errors.As(err, &verr)) {
		a.Equal("STAND rejected: it is not player 1's turn", err.Error())
	}

	state, err = table.GetPlayerState(5)
	a.NoError(err)
	a.Equal("game", state.Key)
	a.Equal("blackjack", state.Value)
	ps := state.Data.(playerState)
	a.Equal(0, ps.Seat)
	a.Equal([]ActionType{ActionHit, ActionDouble, ActionStand, ActionSurrender}, ps.Actions)
	a.Nil(ps.State.Deck)
	a.Nil(ps.State.DealerHoleCard)

	state, err = table.GetPlayerState(9)
	a.NoError(err)
	a.Empty(state.Data.(playerState).Actions)

	_, err = table.GetPlayerState(3)
	a.Equal(ErrNotAtTable, err)

	_, _, err = table.Action(5, payload("stand", nil))
	a.NoError(err)
	_, _, err = table.Action(9, payload("stand", nil))
	a.NoError(err)

	details, over = table.GetEndOfGameDetails()
	a.True(over)
	a.Equal(map[int64]float64{5: 10, 9: -10}, details.BalanceAdjustments)
	a.Len(details.Log, 8)

	state, _ = table.GetPlayerState(5)
	a.Equal(deck.CardFromString("13d"), *state.Data.(playerState).State.DealerHoleCard, "shown once the round is over")
}

func TestTable_ActionSideBetsAndSitOut(t *testing.T) {
	a := assert.New(t)

	rules := engine.DefaultRules()
	rules.SideBets = engine.SideBets{LuckyLucky: true, PerfectPairs: true}
	table, err := NewTable(logrus.StandardLogger(), quartz.NewMock(t), []int64{5, 9}, rules, deck.NewStacked(cards("7s,7c,7h,10d")))
	a.NoError(err)

	_, _, err = table.Action(9, payload("bet", playable.AdditionalData{"sitOut": true}))
	a.NoError(err)

	_, _, err = table.Action(5, payload("bet", playable.AdditionalData{
		"amount": 10.0,
		"sideBets": map[string]interface{}{
			"luckyLucky":   5.0,
			"perfectPairs": 2.0,
		},
	}))
	a.NoError(err)

	s := table.Game().State()
	a.True(s.Players[1].SittingOut)
	a.Equal(engine.SideBetsFromUser{LuckyLucky: 5, PerfectPairs: 2}, s.Players[0].SideBetsFromUser)
	a.Equal(250.0, s.Players[0].SideBetWins.LuckyLucky)
}

func TestTable_ActionInsurance(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, "10s,14c,9h,7d", 5)

	_, _, err := table.Action(5, payload("bet", playable.AdditionalData{"amount": 10.0}))
	a.NoError(err)
	a.Equal(StageInsurance, table.Game().Stage().Name)

	_, update, err := table.Action(5, payload("insurance", nil))
	a.EqualError(err, "amount is required")
	a.False(update)
	a.Equal(StageInsurance, table.Game().Stage().Name, "a missing amount is not a decline")

	_, _, err = table.Action(5, payload("insurance", playable.AdditionalData{"amount": 5.0}))
	a.NoError(err)
	a.Equal(playersTurn(0, 0), table.Game().Stage())
	a.Equal(5.0, table.Game().State().Players[0].SideBetWins.Insurance.Risk)
}
