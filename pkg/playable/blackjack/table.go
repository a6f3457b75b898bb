package blackjack

import (
	"errors"
	"fmt"
	"strings"

	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// ErrNotAtTable is returned for a player that has no seat
var ErrNotAtTable = errors.New("player is not at the table")

// Table plays a round for players identified by their table IDs
// Seats are assigned in the order of the player IDs.
type Table struct {
	game      *Game
	playerIDs []int64
	seats     map[int64]int
}

// NewTable returns a table with a new round
func NewTable(logger logrus.FieldLogger, clock quartz.Clock, playerIDs []int64, rules engine.Rules, shoe *deck.Deck) (*Table, error) {
	seats := make(map[int64]int, len(playerIDs))
	names := make([]string, len(playerIDs))
	for i, id := range playerIDs {
		seats[id] = i
		names[i] = fmt.Sprintf("Seat %d", i+1)
	}

	if len(seats) != len(playerIDs) {
		return nil, errors.New("duplicate players detected")
	}

	game, err := NewGame(logger, clock, names, rules, shoe)
	if err != nil {
		return nil, err
	}

	return &Table{
		game:      game,
		playerIDs: playerIDs,
		seats:     seats,
	}, nil
}

// Game returns the round being played
func (t *Table) Game() *Game {
	return t.game
}

// NameFromRules returns the name for the rules
func NameFromRules(rules engine.Rules) string {
	options := make([]string, 0, 3)
	if rules.Decks == 1 {
		options = append(options, "Single Deck")
	} else {
		options = append(options, fmt.Sprintf("%d Decks", rules.Decks))
	}

	if rules.StandOnSoft17 {
		options = append(options, "S17")
	} else {
		options = append(options, "H17")
	}

	if rules.SideBets.LuckyLucky || rules.SideBets.PerfectPairs {
		options = append(options, "Side Bets")
	}

	return fmt.Sprintf("Blackjack (%s)", strings.Join(options, ", "))
}

// Name returns the name of the game
func (t *Table) Name() string {
	return NameFromRules(t.game.state.Rules)
}

// Key returns a unique key
func (t *Table) Key() string {
	return "blackjack"
}

// Action performs with a message
// If playerResponse is not null, that's the response sent directly to the client
// If updateState is true, it will trigger a state update for all connected clients
func (t *Table) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	seat, ok := t.seats[playerID]
	if !ok {
		return nil, false, ErrNotAtTable
	}

	action, err := actionFromPayload(seat, message)
	if err != nil {
		return nil, false, err
	}

	outcome, err := t.game.Dispatch(action)
	if err != nil {
		return nil, false, err
	}

	if outcome.Rejection != nil {
		return nil, false, outcome.Rejection
	}

	return playable.OK(message.Context), true, nil
}

func actionFromPayload(seat int, message *playable.PayloadIn) (Action, error) {
	actionType, err := ActionTypeFromString(message.Action)
	if err != nil {
		return Action{}, err
	}

	data := message.AdditionalData
	switch actionType {
	case ActionBet:
		if sitOut, _ := data.GetBool("sitOut"); sitOut {
			return SitOut(seat), nil
		}

		amount, ok := data.GetFloat("amount")
		if !ok {
			return Action{}, errors.New("amount is required")
		}

		var sideBets *engine.SideBetsFromUser
		if bets, ok := data.GetData("sideBets"); ok {
			luckyLucky, _ := bets.GetFloat("luckyLucky")
			perfectPairs, _ := bets.GetFloat("perfectPairs")
			sideBets = &engine.SideBetsFromUser{
				LuckyLucky:   luckyLucky,
				PerfectPairs: perfectPairs,
			}
		}

		return Bet(amount, seat, sideBets), nil
	case ActionInsurance:
		amount, ok := data.GetFloat("amount")
		if !ok {
			return Action{}, errors.New("amount is required")
		}

		return Insurance(amount, seat), nil
	}

	return Action{Type: actionType}.ForPlayer(seat), nil
}

// playerState is what a player sees of the table
type playerState struct {
	Seat    int          `json:"seat"`
	Actions []ActionType `json:"actions"`
	State   *State       `json:"state"`
}

// GetPlayerState returns the current state of the game for the player
func (t *Table) GetPlayerState(playerID int64) (*playable.Response, error) {
	seat, ok := t.seats[playerID]
	if !ok {
		return nil, ErrNotAtTable
	}

	return &playable.Response{
		Key:   "game",
		Value: t.Key(),
		Data: playerState{
			Seat:    seat,
			Actions: t.game.ActionsForPlayer(seat),
			State:   t.game.state.View(),
		},
	}, nil
}

// GetEndOfGameDetails returns the details after a game is over
// If the game is still in progress, nil will be returned and the second param will be false
func (t *Table) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !t.game.IsDone() {
		return nil, false
	}

	adjustments := make(map[int64]float64, len(t.playerIDs))
	for i, id := range t.playerIDs {
		adjustments[id] = t.game.state.Players[i].Net()
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                t.game.State().History,
	}, true
}

// LogChan should return a channel that a game will send log messages to
func (t *Table) LogChan() <-chan []*playable.LogMessage {
	return t.game.LogChan()
}

// ActionsForPlayer returns the actions the seat may take right now
func (g *Game) ActionsForPlayer(playerID int) []ActionType {
	s := g.state
	if playerID < 0 || playerID >= len(s.Players) {
		return nil
	}

	player := s.Players[playerID]
	switch s.Stage.Name {
	case StageReady:
		return []ActionType{ActionBet}
	case StageInsurance:
		if !player.hasDecidedInsurance() {
			return []ActionType{ActionInsurance}
		}
	case StagePlayersTurn:
		if s.Stage.ActivePlayerID != playerID {
			return nil
		}

		actions := make([]ActionType, 0, len(playerActions))
		for _, action := range playerActions {
			if checkPlayerTurn(s, Action{Type: action}) == nil {
				actions = append(actions, action)
			}
		}

		return actions
	}

	return nil
}
