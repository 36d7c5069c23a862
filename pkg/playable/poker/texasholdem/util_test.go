package texasholdem

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
	"github.com/ebbitten/bluepoker-sub001/pkg/poker"
)

// seed 1 deals Jd,6h to the dealer and Kc,7s to the big blind, then 6s,5c,2d,7h,10d on the board
const testSeed = 1

type evaluatorFunc func(cards []string) (*poker.Evaluation, error)

func (f evaluatorFunc) EvaluateHand(cards []string) (*poker.Evaluation, error) {
	return f(cards)
}

// highCardEvaluator ranks a hand by the higher of its two hole cards
var highCardEvaluator = evaluatorFunc(func(cards []string) (*poker.Evaluation, error) {
	if len(cards) < poker.MinCards {
		return nil, errors.New("not enough cards")
	}

	best := 0
	for _, s := range cards[:2] {
		card, err := deck.CardFromString(s)
		if err != nil {
			return nil, err
		}

		best = max(best, card.Rank)
	}

	return &poker.Evaluation{
		HandStrength: deck.Ace - best,
		Description:  fmt.Sprintf("%s high", deck.Card{Rank: best, Suit: deck.Spades}.RankString()),
	}, nil
})

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()

	e, err := NewEngine(logrus.StandardLogger(), highCardEvaluator, opts)
	require.NoError(t, err)

	return e
}

func dealtGame(t *testing.T, e *Engine) GameState {
	t.Helper()

	return e.DealNewHandWithSeed(e.CreateGame("g1", [2]string{"Alice", "Bob"}), testSeed)
}

func intPtr(i int) *int {
	return &i
}

func mustAct(t *testing.T, e *Engine, g GameState, seat int, a action.Action, amount ...int) GameState {
	t.Helper()

	var amt *int
	if len(amount) > 0 {
		amt = intPtr(amount[0])
	}

	result := e.ExecutePlayerAction(g, g.Players[seat].ID, a, amt)
	require.True(t, result.Success, "%s by seat %d: %s", a, seat, result.Error)
	require.NoError(t, result.Err())

	return result.GameState
}

func assertCardsPartitionDeck(t *testing.T, g GameState) {
	t.Helper()

	all := deck.Deck{}
	all = append(all, g.Deck...)
	all = append(all, g.CommunityCards...)
	for _, p := range g.Players {
		all = append(all, p.HoleCards...)
	}

	assert.True(t, all.Validate(), "deck, board and hole cards make a full deck")
}

// checkDown has the active player check every remaining street until the hand is complete
func checkDown(t *testing.T, e *Engine, g GameState) GameState {
	t.Helper()

	for steps := 0; g.Phase.InBettingRound(); steps++ {
		require.Less(t, steps, 10, "the hand did not finish")
		g = mustAct(t, e, g, g.ActivePlayerIndex, action.Call)
	}

	return g
}
