package playable

import (
	"fmt"
	"time"

	"blackjack-engine/pkg/deck"

	"github.com/google/uuid"
)

// Playable is a game that can be played at a table
type Playable interface {
	// Action performs with a message
	// If playerResponse is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(playerID int64, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game for the player
	GetPlayerState(playerID int64) (*Response, error)

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, it's a general statement about the table
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []int64     `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	Action         string         `json:"action" yaml:"action"`
	Subject        string         `json:"subject" yaml:"subject"`
	AdditionalData AdditionalData `json:"additionalData" yaml:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context" yaml:"context"`
}

// GameOverDetails provides details on how the game ended
// BalanceAdjustments is the net amount each player won or lost.
type GameOverDetails struct {
	BalanceAdjustments map[int64]float64 `json:"balanceAdjustments"`
	Log                interface{}       `json:"log"`
}

// AdditionalData provides additional data in a payload
// Numbers decoded from JSON are float64, numbers decoded from YAML are int or float64.
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetFloat returns a float value for the given key
func (a AdditionalData) GetFloat(key string) (float64, bool) {
	switch val := a[key].(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}

	return 0, false
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a.GetFloat(key)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// GetData returns a nested map for the given key
func (a AdditionalData) GetData(key string) (AdditionalData, bool) {
	switch val := a[key].(type) {
	case AdditionalData:
		return val, true
	case map[string]interface{}:
		return val, true
	case map[interface{}]interface{}:
		data := make(AdditionalData, len(val))
		for k, v := range val {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}

			data[s] = v
		}

		return data, true
	}

	return nil, false
}

// NewLogMessage returns a table-wide LogMessage stamped with the given time
func NewLogMessage(at time.Time, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	var logCards []deck.Card
	if len(cards) > 0 {
		logCards = make([]deck.Card, len(cards))
		copy(logCards, cards)
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   logCards,
		Message: fmt.Sprintf(format, a...),
		Time:    at,
	}
}
