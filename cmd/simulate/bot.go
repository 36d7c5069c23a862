package main

import (
	"fmt"
	"strings"

	"github.com/ebbitten/bluepoker-sub001/internal/rng"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
)

// bot decides the action for the player whose turn it is
type bot interface {
	Decide(state texasholdem.GameState, bigBlind int) *playable.PayloadIn
}

func newBot(kind string, gen rng.Generator) (bot, error) {
	switch strings.ToLower(kind) {
	case "call":
		return callingStation{}, nil
	case "raise":
		return maniac{}, nil
	case "rand":
		return randomBot{gen: gen}, nil
	}

	return nil, fmt.Errorf("unknown bot: %s", kind)
}

func payload(a action.Action, amount int) *playable.PayloadIn {
	p := &playable.PayloadIn{
		Action:         string(a),
		AdditionalData: playable.AdditionalData{},
	}

	if a == action.Raise {
		p.AdditionalData["amount"] = float64(amount)
	}

	return p
}

func minRaise(state texasholdem.GameState, bigBlind int) int {
	if state.CurrentBet > 0 {
		return state.CurrentBet * 2
	}

	return bigBlind
}

// callingStation never folds and never raises
type callingStation struct{}

func (callingStation) Decide(texasholdem.GameState, int) *playable.PayloadIn {
	return payload(action.Call, 0)
}

// maniac makes the minimum raise every time
type maniac struct{}

func (maniac) Decide(state texasholdem.GameState, bigBlind int) *playable.PayloadIn {
	return payload(action.Raise, minRaise(state, bigBlind))
}

type randomBot struct {
	gen rng.Generator
}

func (r randomBot) Decide(state texasholdem.GameState, bigBlind int) *playable.PayloadIn {
	p := state.ActivePlayer()
	facingBet := p != nil && p.CurrentBet < state.CurrentBet

	switch n := r.gen.Intn(10); {
	case n == 0 && facingBet:
		return payload(action.Fold, 0)
	case n < 7:
		return payload(action.Call, 0)
	default:
		return payload(action.Raise, minRaise(state, bigBlind)+r.gen.Intn(3)*bigBlind)
	}
}
