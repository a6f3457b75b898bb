package blackjack

import "math"

// checkActionAllowed returns a *ValidationError if the action cannot be applied to the state
// Any other error means the state itself is broken.
func checkActionAllowed(s *State, action Action) error {
	if action.Type == ActionBet && (action.Payload == nil || (action.Payload.Bet == nil && !action.Payload.SittingOut)) {
		return reject(action.Type, "%s without bet value on stage %s", action.Type, s.Stage.Name)
	}

	if !s.Stage.allows(action.Type) {
		return reject(action.Type, "%s is not allowed when stage is %s", action.Type, s.Stage.Name)
	}

	switch s.Stage.Name {
	case StageReady:
		return checkBet(s, action)
	case StageInsurance:
		return checkInsurance(s, action)
	case StagePlayersTurn:
		return checkPlayerTurn(s, action)
	}

	return nil
}

func seat(s *State, action Action) (*Player, error) {
	if action.Payload == nil || action.Payload.PlayerID == nil {
		return nil, reject(action.Type, "playerId is omitted from the payload")
	}

	playerID := *action.Payload.PlayerID
	if playerID < 0 || playerID >= len(s.Players) {
		return nil, reject(action.Type, "player %d is not seated", playerID)
	}

	return &s.Players[playerID], nil
}

func checkBet(s *State, action Action) error {
	if _, err := seat(s, action); err != nil {
		return err
	}

	p := action.Payload
	if !p.SittingOut && !(*p.Bet > 0 && !math.IsInf(*p.Bet, 0)) {
		return reject(action.Type, "bet must be a positive amount")
	}

	if p.SideBets != nil && !(p.SideBets.LuckyLucky >= 0 && p.SideBets.PerfectPairs >= 0 && isFinite(p.SideBets.LuckyLucky, p.SideBets.PerfectPairs)) {
		return reject(action.Type, "side bets must not be negative")
	}

	return nil
}

func checkInsurance(s *State, action Action) error {
	if !s.Rules.Insurance {
		return reject(action.Type, "insurance is not offered at this table")
	}

	player, err := seat(s, action)
	if err != nil {
		return err
	}

	if action.Payload.Bet == nil {
		return reject(action.Type, "bet is omitted from the payload")
	}

	if player.SittingOut {
		return reject(action.Type, "player '%s' is sitting out", player.Name)
	}

	if player.SideBetWins.Insurance != nil {
		return reject(action.Type, "player '%s' already made an insurance decision", player.Name)
	}

	bet := *action.Payload.Bet
	if !(bet >= 0) {
		return reject(action.Type, "bet must not be negative")
	}

	if bet > player.InitialBet/2 {
		return reject(action.Type, "bet can't be higher than half of the player's initial bet")
	}

	return nil
}

func checkPlayerTurn(s *State, action Action) error {
	playerID, handID := s.Stage.ActivePlayerID, s.Stage.ActiveHandID
	if playerID < 0 || playerID >= len(s.Players) || handID < 0 || handID >= len(s.Players[playerID].Hands) {
		return inconsistent("active player %d hand %d is not in the round", playerID, handID)
	}

	if p := action.Payload; p != nil {
		if p.PlayerID != nil && *p.PlayerID != playerID {
			return reject(action.Type, "it is not player %d's turn", *p.PlayerID)
		}

		if p.HandID != nil && *p.HandID != handID {
			return reject(action.Type, "hand %d is not the active hand", *p.HandID)
		}
	}

	player := s.Players[playerID]
	hand := player.Hands[handID]
	if hand.Close {
		return reject(action.Type, "%s is not allowed because hand %d of player %d is closed", action.Type, handID, playerID)
	}

	for _, h := range player.Hands[:handID] {
		if !h.Close {
			return reject(action.Type, "%s is not allowed on hand %d for player %d because an earlier hand is not finished", action.Type, handID, playerID)
		}
	}

	if action.Type == ActionSurrender && len(player.Hands) > 1 {
		return reject(action.Type, "surrender is not allowed after a split")
	}

	if !handAllows(hand.AvailableActions, action.Type) {
		return reject(action.Type, "%s is not currently allowed on hand %d", action.Type, handID)
	}

	return nil
}
