package texasholdem

import (
	"fmt"
)

// bettingRoundComplete returns true if nobody is left to act on the current street
// An all-in player counts as having acted.
func (g *GameState) bettingRoundComplete() bool {
	contenders := g.nonFolded()
	if len(contenders) <= 1 {
		return true
	}

	for _, i := range contenders {
		p := g.Players[i]
		if p.AllIn {
			continue
		}

		if !g.PlayersActed[i] || p.CurrentBet != g.CurrentBet {
			return false
		}
	}

	return true
}

// nextActivePlayer returns the next seat after the active one that can act
// If nobody else can act the active seat is returned unchanged.
func (g *GameState) nextActivePlayer() int {
	for step := 1; step <= NumPlayers; step++ {
		i := (g.ActivePlayerIndex + step) % NumPlayers
		if g.Players[i].CanAct() {
			return i
		}
	}

	return g.ActivePlayerIndex
}

// advancePhase moves to the next street once a betting round is complete
func (e *Engine) advancePhase(g *GameState) error {
	for i := range g.Players {
		g.Players[i].CurrentBet = 0
	}

	g.CurrentBet = 0
	g.PlayersActed = [NumPlayers]bool{}

	next := g.Phase + 1
	if next == PhaseShowdown {
		g.Phase = PhaseShowdown
		e.determineWinner(g)
		return nil
	}

	if n := next.communityCardsToDeal(); n > 0 {
		cards, remaining, err := g.Deck.Draw(n)
		if err != nil {
			return fmt.Errorf("could not deal the %s: %w", next, err)
		}

		g.CommunityCards = append(g.CommunityCards, cards...)
		g.Deck = remaining
	}

	g.Phase = next

	// the big blind acts first after the flop
	if bb := g.BigBlindIndex(); g.Players[bb].CanAct() {
		g.ActivePlayerIndex = bb
	} else if sb := g.SmallBlindIndex(); g.Players[sb].CanAct() {
		g.ActivePlayerIndex = sb
	}

	e.logger.WithField("gameID", g.GameID).WithField("phase", g.Phase).Debug("advanced phase")

	return nil
}

// shouldFastForward returns true if every player still in the hand is all-in
func (g *GameState) shouldFastForward() bool {
	contenders := g.nonFolded()
	if len(contenders) < NumPlayers {
		return false
	}

	for _, i := range contenders {
		if !g.Players[i].AllIn {
			return false
		}
	}

	return true
}

// fastForward deals out the rest of the board when no more betting is possible
func (e *Engine) fastForward(g *GameState) error {
	for g.Phase.InBettingRound() && g.shouldFastForward() {
		if err := e.advancePhase(g); err != nil {
			return err
		}
	}

	return nil
}
