package blackjack

import (
	"errors"
	"fmt"
	"strings"

	"blackjack-engine/internal/rng"
	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// logChanSize is how many batches of log messages are buffered before new ones are dropped
const logChanSize = 256

// Game is a single round of blackjack
// A Game is not safe for concurrent use.
type Game struct {
	id      string
	logger  logrus.FieldLogger
	clock   quartz.Clock
	state   *State
	logChan chan []*playable.LogMessage
}

// Outcome is the result of a dispatch
// Rejection is set if the action was not allowed; the round is otherwise unchanged.
type Outcome struct {
	State     *State
	Rejection *ValidationError
}

// NewGame returns a new round at STAGE_READY
// If shoe is nil a freshly shuffled shoe of rules.Decks decks is used.
func NewGame(logger logrus.FieldLogger, clock quartz.Clock, players []string, rules engine.Rules, shoe *deck.Deck) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	if shoe == nil {
		shoe = deck.New(rules.Decks)
		shoe.Shuffle(rng.Crypto{})
	}

	return newGame(logger, clock, newState(players, rules, shoe)), nil
}

func newGame(logger logrus.FieldLogger, clock quartz.Clock, state *State) *Game {
	id := uuid.New().String()
	return &Game{
		id:      id,
		logger:  logger.WithField("round", id),
		clock:   clock,
		state:   state,
		logChan: make(chan []*playable.LogMessage, logChanSize),
	}
}

// ID returns the unique ID of the round
func (g *Game) ID() string {
	return g.id
}

// State returns a snapshot of the round
func (g *Game) State() *State {
	return g.state.Clone()
}

// Stage returns the current stage
func (g *Game) Stage() Stage {
	return g.state.Stage
}

// IsDone returns true once the round is settled
func (g *Game) IsDone() bool {
	return g.state.Stage.Name == StageDone
}

// LogChan returns the channel player facing log messages are sent to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// queued is an action waiting to be applied
type queued struct {
	action   Action
	followOn bool
}

// round is the working copy of the state during a dispatch
type round struct {
	*State
	game     *Game
	messages []*playable.LogMessage
}

// Dispatch validates and applies an external action along with every action it triggers
// The returned error is only set for fatal failures, in which case nothing was applied.
func (g *Game) Dispatch(action Action) (Outcome, error) {
	action = action.normalized()
	if !action.Type.IsExternal() {
		return g.rejected(action, reject(action.Type, "%s is an internal action", action.Type)), nil
	}

	if err := checkActionAllowed(g.state, action); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return g.rejected(action, verr), nil
		}

		return Outcome{}, err
	}

	r := &round{State: g.state.Clone(), game: g}
	queue := []queued{{action: action}}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		next.action = r.annotate(next.action)
		followOns, err := r.apply(next.action)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return g.rejected(action, verr), nil
			}

			g.logger.WithError(err).WithField("action", next.action.Type).Error("could not apply action")
			return Outcome{}, err
		}

		r.record(next.action, next.followOn)
		g.logger.WithField("action", next.action.Type).WithField("stage", r.Stage.Name).Debug("applied action")

		items := make([]queued, len(followOns))
		for i, f := range followOns {
			items[i] = queued{action: f, followOn: true}
		}

		queue = append(items, queue...)
	}

	g.state = r.State
	g.sendLogMessages(r.messages)

	return Outcome{State: g.State()}, nil
}

// rejected records the action as INVALID on the committed state
func (g *Game) rejected(action Action, verr *ValidationError) Outcome {
	g.logger.WithField("action", action.Type).WithField("reason", verr.Reason).Info("rejected action")
	g.state.History = append(g.state.History, HistoryItem{
		Action:    invalid(action, verr.Reason),
		Timestamp: g.clock.Now(),
	})

	return Outcome{
		State:     g.State(),
		Rejection: verr,
	}
}

func (g *Game) sendLogMessages(messages []*playable.LogMessage) {
	if len(messages) == 0 {
		return
	}

	select {
	case g.logChan <- messages:
	default:
		g.logger.WithField("messages", len(messages)).Warn("log channel is full, dropping messages")
	}
}

func (r *round) record(action Action, followOn bool) {
	r.History = append(r.History, HistoryItem{
		Action:    action,
		Timestamp: r.game.clock.Now(),
		FollowOn:  followOn,
	})
}

func (r *round) log(cards deck.Hand, format string, a ...interface{}) {
	r.messages = append(r.messages, playable.NewLogMessage(r.game.clock.Now(), cards, format, a...))
}

// annotate ties a player turn action to the active seat and hand
func (r *round) annotate(action Action) Action {
	if !action.Type.isPlayerTurn() || r.Stage.Name != StagePlayersTurn {
		return action
	}

	action = action.ForPlayer(r.Stage.ActivePlayerID)
	action.Payload.HandID = intPtr(r.Stage.ActiveHandID)
	return action
}

// drawCard pops the top card of the shoe and adds it to the running count
func (r *round) drawCard() (deck.Card, error) {
	card, err := r.Deck.Draw()
	if err != nil {
		return deck.Card{}, err
	}

	r.CardCount += engine.CountCards(deck.Hand{card})
	return card, nil
}

// enforceRules applies the table rules and the hand cap to a freshly derived hand
func (r *round) enforceRules(h engine.Hand, handCount int, afterSplit bool) engine.Hand {
	h = engine.EnforceRules(h, r.Rules, afterSplit)
	if handCount >= r.Rules.MaxHandNumber {
		h.AvailableActions.Split = false
	}

	return h
}

// activeHand returns the player and hand the stage points at
func (r *round) activeHand() (*Player, *engine.Hand, error) {
	playerID, handID := r.Stage.ActivePlayerID, r.Stage.ActiveHandID
	if playerID < 0 || playerID >= len(r.Players) {
		return nil, nil, inconsistent("active player %d is not seated", playerID)
	}

	player := &r.Players[playerID]
	if handID < 0 || handID >= len(player.Hands) {
		return nil, nil, inconsistent("player %d has no hand %d", playerID, handID)
	}

	return player, &player.Hands[handID], nil
}

// advance moves to the next open hand and chains the showdown when there is none
func (r *round) advance(fromPlayerID int) []Action {
	r.Stage = r.nextOpenHand(fromPlayerID)
	if r.Stage.Name == StageShowdown {
		return []Action{showdown()}
	}

	return nil
}

// settle pays every hand against the dealer's final cards
func (r *round) settle() {
	names := make([]string, 0, len(r.Players))
	for i := range r.Players {
		p := &r.Players[i]
		p.FinalBet = 0
		for _, h := range p.Hands {
			p.FinalBet += h.Bet
		}

		p.FinalWin = engine.GetHandsPrize(p.Hands, r.DealerCards)
		if !p.SittingOut {
			names = append(names, fmt.Sprintf("%s %+.2f", p.Name, p.Net()))
		}

		r.game.logger.WithFields(logrus.Fields{
			"player":   p.Name,
			"finalBet": p.FinalBet,
			"finalWin": p.FinalWin,
		}).Info("settled player")
	}

	r.log(nil, "round settled: %s", strings.Join(names, ", "))
}
