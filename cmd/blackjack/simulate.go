package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"

	"blackjack-engine/internal/config"
	"blackjack-engine/internal/rng"
	"blackjack-engine/internal/util"
	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable/blackjack"
	"blackjack-engine/pkg/playable/blackjack/engine"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SimulateCmd plays rounds with a fixed strategy
type SimulateCmd struct {
	Rounds  int     `default:"1000" help:"Rounds to play"`
	Players int     `default:"3" help:"Seats at every table"`
	Workers int     `default:"4" help:"Tables played at the same time"`
	Bet     float64 `default:"10" help:"Stake of every hand"`
	Seed    int64   `help:"Seed of the first table, 0 uses the configured seed"`
	Verbose bool    `help:"Log every round"`

	out io.Writer
}

// stats are the aggregated results of a simulation
type stats struct {
	Rounds     int
	Voided     int
	Hands      int
	Blackjacks int
	Busts      int
	Wagered    float64
	Net        float64
}

func (s *stats) add(o stats) {
	s.Rounds += o.Rounds
	s.Voided += o.Voided
	s.Hands += o.Hands
	s.Blackjacks += o.Blackjacks
	s.Busts += o.Busts
	s.Wagered += o.Wagered
	s.Net += o.Net
}

// Return is the net result per unit wagered
func (s stats) Return() float64 {
	if s.Wagered == 0 {
		return 0
	}

	return s.Net / s.Wagered
}

func (c *SimulateCmd) Run() error {
	if c.Rounds < 1 || c.Players < 1 || c.Workers < 1 {
		return errors.New("rounds, players and workers must be positive")
	}

	cfg := config.Instance()
	if c.Seed != 0 {
		cfg.Shoe.Seed = c.Seed
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if c.Verbose {
		logger = logrus.StandardLogger()
	}

	total, err := c.simulate(context.Background(), logger, cfg)
	if err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Table\t%s\n", blackjack.NameFromRules(cfg.Rules))
	fmt.Fprintf(w, "Rounds\t%d\n", total.Rounds)
	fmt.Fprintf(w, "Voided\t%d\n", total.Voided)
	fmt.Fprintf(w, "Hands\t%d\n", total.Hands)
	fmt.Fprintf(w, "Blackjacks\t%d\n", total.Blackjacks)
	fmt.Fprintf(w, "Busts\t%d\n", total.Busts)
	fmt.Fprintf(w, "Wagered\t%.2f\n", total.Wagered)
	fmt.Fprintf(w, "Net\t%+.2f\n", total.Net)
	fmt.Fprintf(w, "Return\t%+.4f%%\n", total.Return()*100)
	return w.Flush()
}

// simulate splits the rounds between the workers, every worker plays its own table
func (c *SimulateCmd) simulate(ctx context.Context, logger logrus.FieldLogger, cfg config.Config) (stats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var total stats

	perWorker := c.Rounds / c.Workers
	remainder := c.Rounds % c.Workers
	for w := 0; w < c.Workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}

		if rounds == 0 {
			continue
		}

		shoe := cfg.Shoe
		if shoe.Seed != 0 {
			shoe.Seed += int64(w)
		}

		t := &simTable{
			logger:  logger.WithField("worker", w),
			rules:   cfg.Rules,
			shoe:    shoe,
			gen:     shoe.Generator(),
			players: c.Players,
			bet:     c.Bet,
		}

		g.Go(func() error {
			result, err := t.play(ctx, rounds)
			if err != nil {
				return err
			}

			mu.Lock()
			total.add(result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats{}, err
	}

	return total, nil
}

// simTable is a table played by a single worker
type simTable struct {
	logger  logrus.FieldLogger
	rules   engine.Rules
	shoe    config.Shoe
	gen     rng.Generator
	players int
	bet     float64
}

func (t *simTable) newShoe() *deck.Deck {
	d := deck.New(t.rules.Decks)
	d.Shuffle(t.gen)
	return d
}

// needsShuffle returns true once the dealt share of the shoe reaches the penetration
func (t *simTable) needsShuffle(shoe *deck.Deck) bool {
	size := float64(t.rules.Decks * 52)
	return size-float64(shoe.CardsLeft()) >= size*t.shoe.Penetration
}

func (t *simTable) play(ctx context.Context, rounds int) (stats, error) {
	var result stats
	names := util.RandomNames(t.gen, t.players)
	clock := quartz.NewReal()

	game, err := blackjack.NewGame(t.logger, clock, names, t.rules, t.newShoe())
	if err != nil {
		return result, err
	}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := playRound(game, t.bet)
		switch {
		case errors.Is(err, deck.ErrEndOfDeck):
			result.Voided++
		case err != nil:
			return result, err
		default:
			result.add(roundStats(game.State()))
		}

		if err == nil && !t.needsShuffle(game.State().Deck) {
			game, err = game.NextRound()
		} else {
			game, err = blackjack.NewGame(t.logger, clock, names, t.rules, t.newShoe())
		}

		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// playRound bets for every seat and plays the round to the end
func playRound(game *blackjack.Game, bet float64) error {
	for seat := range game.State().Players {
		if err := dispatch(game, blackjack.Bet(bet, seat, nil)); err != nil {
			return err
		}
	}

	for !game.IsDone() {
		s := game.State()
		action, ok := nextAction(s)
		if !ok {
			return fmt.Errorf("no action for stage %s", s.Stage.Name)
		}

		if err := dispatch(game, action); err != nil {
			return err
		}
	}

	return nil
}

func dispatch(game *blackjack.Game, action blackjack.Action) error {
	outcome, err := game.Dispatch(action)
	if err != nil {
		return err
	}

	if outcome.Rejection != nil {
		return outcome.Rejection
	}

	return nil
}

// nextAction returns the house strategy move for the current stage
func nextAction(s *blackjack.State) (blackjack.Action, bool) {
	switch s.Stage.Name {
	case blackjack.StageInsurance:
		for seat, p := range s.Players {
			if !p.SittingOut && p.SideBetWins.Insurance == nil {
				return blackjack.Insurance(0, seat), true
			}
		}
	case blackjack.StagePlayersTurn:
		hand := s.Players[s.Stage.ActivePlayerID].Hands[s.Stage.ActiveHandID]
		up, _ := s.DealerCards.FirstCard()
		return strategy(hand, up), true
	}

	return blackjack.Action{}, false
}

// strategy always splits aces and eights, doubles 10 and 11 against a weaker up card,
// stands on soft 18, hard 17 and on hard 12 to 16 against a dealer 2 to 6
func strategy(hand engine.Hand, up deck.Card) blackjack.Action {
	actions := hand.AvailableActions
	first := hand.Cards[0]
	if actions.Split && (first.IsAce() || first.Value() == 8) {
		return blackjack.Split()
	}

	upValue := up.Value()
	if up.IsAce() {
		upValue = 11
	}

	total := engine.HigherValidValue(hand.Value)
	soft := hand.Value.Hi != hand.Value.Lo && hand.Value.Hi <= 21
	if actions.Double && !soft && (total == 10 || total == 11) && upValue < total {
		return blackjack.Double()
	}

	switch {
	case soft && total >= 18,
		!soft && total >= 17,
		!soft && total >= 12 && upValue >= 2 && upValue <= 6:
		return blackjack.Stand()
	}

	return blackjack.Hit()
}

// roundStats returns the results of a settled round
func roundStats(s *blackjack.State) stats {
	result := stats{Rounds: 1}
	for _, p := range s.Players {
		if p.SittingOut {
			continue
		}

		for _, h := range p.Hands {
			result.Hands++
			if h.HasBlackjack {
				result.Blackjacks++
			}

			if h.HasBusted {
				result.Busts++
			}
		}

		result.Wagered += p.FinalBet
		result.Net += p.Net()
	}

	return result
}
