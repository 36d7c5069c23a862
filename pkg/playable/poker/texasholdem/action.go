package texasholdem

import (
	"github.com/sirupsen/logrus"

	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
)

// ActionResult is the outcome of ExecutePlayerAction
// On failure GameState is the state that was passed in.
type ActionResult struct {
	Success   bool      `json:"success"`
	GameState GameState `json:"gameState"`
	Error     string    `json:"error,omitempty"`

	// Amount is the chips called, or the total raised to
	Amount int `json:"-"`

	err error
}

// Err returns the reason the action was rejected
func (a ActionResult) Err() error {
	return a.err
}

// ExecutePlayerAction applies a player's action
// amount is the total the player is raising to for the street and is only used with action.Raise.
// Invalid actions are reported in the result and never modify state.
func (e *Engine) ExecutePlayerAction(state GameState, playerID string, a action.Action, amount *int) ActionResult {
	g := state.Clone()
	n, err := e.applyAction(&g, playerID, a, amount)
	if err != nil {
		return ActionResult{
			Success:   false,
			GameState: state,
			Error:     err.Error(),
			err:       err,
		}
	}

	return ActionResult{
		Success:   true,
		GameState: g,
		Amount:    n,
	}
}

func (e *Engine) applyAction(g *GameState, playerID string, a action.Action, amount *int) (int, error) {
	idx := g.PlayerIndex(playerID)
	if idx < 0 {
		return 0, ErrPlayerNotFound
	}

	switch g.Phase {
	case PhaseComplete, PhaseShowdown:
		return 0, ErrHandComplete
	case PhaseWaiting:
		return 0, ErrHandNotDealt
	}

	if g.ActivePlayerIndex != idx {
		return 0, ErrNotYourTurn
	}

	if g.Players[idx].Folded {
		return 0, ErrAlreadyFolded
	}

	e.logger.WithFields(logrus.Fields{
		"gameID":   g.GameID,
		"hand":     g.HandNumber,
		"playerID": playerID,
		"action":   a,
	}).Debug("player action")

	switch a {
	case action.Fold:
		return e.fold(g, idx)
	case action.Call:
		return e.call(g, idx)
	case action.Raise:
		return e.raise(g, idx, amount)
	}

	return 0, ErrInvalidAction
}

func (e *Engine) fold(g *GameState, idx int) (int, error) {
	p := &g.Players[idx]
	p.Folded = true
	g.PlayersActed[idx] = true

	opponent := (idx + 1) % NumPlayers
	if !g.Players[opponent].Folded {
		e.awardPot(g, []int{opponent}, ReasonOpponentFolded)
		return 0, nil
	}

	g.ActivePlayerIndex = g.nextActivePlayer()
	return 0, nil
}

func (e *Engine) call(g *GameState, idx int) (int, error) {
	p := &g.Players[idx]

	need := g.CurrentBet - p.CurrentBet
	if need < 0 {
		need = 0
	}

	paid := p.pay(need)
	g.Pot += paid
	g.PlayersActed[idx] = true

	return paid, e.endTurn(g)
}

func (e *Engine) raise(g *GameState, idx int, amount *int) (int, error) {
	if amount == nil {
		return 0, ErrAmountRequired
	}

	target := *amount
	if target <= 0 {
		return 0, ErrAmountMustBePositive
	}

	if target <= g.CurrentBet {
		return 0, ErrRaiseTooLow
	}

	p := &g.Players[idx]
	need := target - p.CurrentBet
	allIn := need >= p.Chips
	if allIn {
		need = p.Chips
		target = p.CurrentBet + p.Chips
	}

	isActualRaise := target > g.CurrentBet
	if isActualRaise && !allIn {
		minRaise := e.options.BigBlind
		if g.CurrentBet > 0 {
			minRaise = g.CurrentBet * 2
		}

		if target < minRaise {
			return 0, MinimumRaiseError{Minimum: minRaise}
		}
	}

	g.Pot += p.pay(need)
	g.PlayersActed[idx] = true

	if isActualRaise {
		g.CurrentBet = p.CurrentBet
		for i := range g.PlayersActed {
			if i != idx {
				g.PlayersActed[i] = false
			}
		}
	}

	return target, e.endTurn(g)
}

// endTurn moves the hand along after a call or a raise
func (e *Engine) endTurn(g *GameState) error {
	if g.bettingRoundComplete() {
		if err := e.advancePhase(g); err != nil {
			return err
		}
	} else {
		g.ActivePlayerIndex = g.nextActivePlayer()
	}

	return e.fastForward(g)
}
