package blackjack

import (
	"fmt"

	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// Replay runs the external actions of a history against a new round on the same shoe
// Rejected and follow-on entries are skipped, they are reproduced by the round itself.
func Replay(logger logrus.FieldLogger, clock quartz.Clock, players []string, rules engine.Rules, shoe *deck.Deck, history []HistoryItem) (*Game, error) {
	g, err := NewGame(logger, clock, players, rules, shoe.Clone())
	if err != nil {
		return nil, err
	}

	for i, item := range history {
		if item.FollowOn || !item.Action.Type.IsExternal() {
			continue
		}

		outcome, err := g.Dispatch(item.Action)
		if err != nil {
			return nil, fmt.Errorf("could not replay history item %d: %w", i, err)
		}

		if outcome.Rejection != nil {
			return nil, fmt.Errorf("%w: history item %d: %s", ErrReplayDiverged, i, outcome.Rejection.Reason)
		}
	}

	return g, nil
}

// Restore replaces the round state with a snapshot
func (g *Game) Restore(state *State) error {
	if state == nil {
		return inconsistent("cannot restore a nil state")
	}

	if err := state.Rules.Validate(); err != nil {
		return err
	}

	if len(state.Players) == 0 {
		return ErrNoPlayers
	}

	restored := state.Clone()
	if restored.Deck == nil {
		restored.Deck = deck.NewStacked(nil)
	}

	restored.History = append(restored.History, HistoryItem{
		Action:    restore(),
		Timestamp: g.clock.Now(),
	})

	g.state = restored
	g.logger.WithField("stage", restored.Stage.Name).Info("restored round")
	return nil
}

// NextRound returns a new round at the same table
// The seats, rules, remaining shoe and running count carry over.
func (g *Game) NextRound() (*Game, error) {
	if !g.IsDone() {
		return nil, ErrRoundNotOver
	}

	names := make([]string, len(g.state.Players))
	for i, p := range g.state.Players {
		names[i] = p.Name
	}

	state := newState(names, g.state.Rules, g.state.Deck.Clone())
	state.CardCount = g.state.CardCount

	return newGame(g.logger, g.clock, state), nil
}
