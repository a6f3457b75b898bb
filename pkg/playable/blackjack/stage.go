package blackjack

// StageName is the phase of a round
type StageName string

// StageName constants
const (
	StageReady       StageName = "STAGE_READY"
	StageDealCards   StageName = "STAGE_DEAL_CARDS"
	StageInsurance   StageName = "STAGE_INSURANCE"
	StagePlayersTurn StageName = "STAGE_PLAYERS_TURN"
	StageShowdown    StageName = "STAGE_SHOWDOWN"
	StageDealerTurn  StageName = "STAGE_DEALER_TURN"
	StageDone        StageName = "STAGE_DONE"
)

func (s StageName) String() string {
	return string(s)
}

// Stage is the current phase of the round
// ActivePlayerID and ActiveHandID are only meaningful during STAGE_PLAYERS_TURN.
type Stage struct {
	Name           StageName `json:"name"`
	ActivePlayerID int       `json:"activePlayerId"`
	ActiveHandID   int       `json:"activeHandId"`
}

func stage(name StageName) Stage {
	return Stage{Name: name}
}

func playersTurn(playerID, handID int) Stage {
	return Stage{
		Name:           StagePlayersTurn,
		ActivePlayerID: playerID,
		ActiveHandID:   handID,
	}
}

// allows returns true if the stage accepts the action type at all
func (s Stage) allows(action ActionType) bool {
	switch s.Name {
	case StageReady:
		return action == ActionBet
	case StageDealCards:
		return action == ActionDealCards
	case StageInsurance:
		return action == ActionInsurance
	case StagePlayersTurn:
		return action.isPlayerTurn()
	case StageShowdown:
		return action == ActionShowdown || action == ActionStand
	case StageDealerTurn:
		return action == ActionDealerHit
	}

	return false
}
