package texasholdem

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
)

// DetermineWinner settles the pot and completes the hand
// It is normally called by the engine when the river betting round is complete.
func (e *Engine) DetermineWinner(state GameState) GameState {
	g := state.Clone()
	e.determineWinner(&g)
	return g
}

func (e *Engine) determineWinner(g *GameState) {
	contenders := g.nonFolded()
	if len(contenders) == 1 {
		e.awardPot(g, contenders, ReasonOpponentFolded)
		return
	}

	logger := e.logger.WithFields(logrus.Fields{
		"gameID": g.GameID,
		"hand":   g.HandNumber,
	})

	best := -1
	var winners []int
	for _, i := range contenders {
		p := &g.Players[i]

		cards := make(deck.Hand, 0, len(p.HoleCards)+len(g.CommunityCards))
		cards = append(cards, p.HoleCards...)
		cards = append(cards, g.CommunityCards...)

		eval, err := e.evaluator.EvaluateHand(deck.CardStrings(cards))
		if err != nil {
			logger.WithError(err).WithField("playerID", p.ID).Warn("could not evaluate hand")
			continue
		}

		p.HandDescription = eval.Description

		switch {
		case best < 0 || eval.HandStrength < best:
			best = eval.HandStrength
			winners = []int{i}
		case eval.HandStrength == best:
			winners = append(winners, i)
		}
	}

	if len(winners) == 0 {
		logger.Error("no hand could be evaluated, splitting the pot")
		winners = contenders
	}

	reason := ReasonBestHand
	if len(winners) > 1 {
		reason = ReasonSplitPot
	}

	e.awardPot(g, winners, reason)
}

// awardPot pays the pot to the winners and completes the hand
func (e *Engine) awardPot(g *GameState, winners []int, reason string) {
	share := g.Pot / len(winners)
	remainder := g.Pot % len(winners)

	for _, i := range winners {
		g.Players[i].Chips += share
		g.Players[i].Winnings = share
	}

	if remainder > 0 {
		if seat := e.options.OddChipPolicy.recipient(g, winners); seat >= 0 {
			g.Players[seat].Chips += remainder
			g.Players[seat].Winnings += remainder
		} else {
			e.logger.WithField("gameID", g.GameID).WithField("chips", remainder).Info("discarded odd chips from split pot")
		}
	}

	for i := range g.Players {
		p := &g.Players[i]
		switch {
		case slices.Contains(winners, i) && len(winners) > 1:
			p.Result = ResultSplit
		case slices.Contains(winners, i):
			p.Result = ResultWon
		case p.Folded:
			p.Result = ResultFolded
		default:
			p.Result = ResultLost
		}

		p.CurrentBet = 0
	}

	if len(winners) == 1 {
		w := winners[0]
		g.Winner = &w
	} else {
		g.Winner = nil
	}

	g.Winners = append([]int(nil), winners...)
	g.WinnerReason = reason
	g.Pot = 0
	g.CurrentBet = 0
	g.ActivePlayerIndex = -1
	g.Phase = PhaseComplete
}
