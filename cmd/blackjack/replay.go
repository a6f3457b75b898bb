package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"blackjack-engine/internal/config"
	"blackjack-engine/pkg/deck"
	"blackjack-engine/pkg/playable"
	"blackjack-engine/pkg/playable/blackjack"
	"blackjack-engine/pkg/room/gamefactory"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ReplayCmd plays an action script
type ReplayCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML script with the table options and the actions"`

	out io.Writer
}

// script is a table and the actions played at it
type script struct {
	Players []int64                 `yaml:"players"`
	Table   playable.AdditionalData `yaml:"table"`
	Steps   []step                  `yaml:"steps"`
}

type step struct {
	Player             int64 `yaml:"player"`
	playable.PayloadIn `yaml:",inline"`
}

// replayResult is what the command prints
type replayResult struct {
	Name     string                    `json:"name"`
	State    *blackjack.State          `json:"state"`
	GameOver *playable.GameOverDetails `json:"gameOver,omitempty"`
}

func (r *ReplayCmd) Run() error {
	data, err := os.ReadFile(r.File)
	if err != nil {
		return err
	}

	var s script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return fmt.Errorf("could not parse %s: %w", r.File, err)
	}

	rules := config.Instance().Rules
	factory := gamefactory.NewBlackjackFactory(&rules, quartz.NewReal())
	logger := logrus.WithField("script", r.File)

	game, err := factory.CreateGame(logger, s.Players, s.Table)
	if err != nil {
		return err
	}

	for i := range s.Steps {
		st := s.Steps[i]
		_, _, err := game.Action(st.Player, &st.PayloadIn)
		drainLog(logger, game.LogChan())

		var verr *blackjack.ValidationError
		switch {
		case errors.As(err, &verr), errors.Is(err, blackjack.ErrNotAtTable):
			logger.WithFields(logrus.Fields{
				"step":   i,
				"player": st.Player,
			}).Warn(err.Error())
		case err != nil:
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	table := game.(*blackjack.Table)
	result := replayResult{
		Name:  table.Name(),
		State: table.Game().State(),
	}

	if details, over := table.GetEndOfGameDetails(); over {
		result.GameOver = details
	}

	out := r.out
	if out == nil {
		out = os.Stdout
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// drainLog logs the table messages that are waiting
func drainLog(logger logrus.FieldLogger, logChan <-chan []*playable.LogMessage) {
	for {
		select {
		case messages := <-logChan:
			for _, msg := range messages {
				logger.WithField("cards", deck.CardsToString(msg.Cards)).Info(msg.Message)
			}
		default:
			return
		}
	}
}
