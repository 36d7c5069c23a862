package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
)

func TestGameState_Clone(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t, DefaultOptions())

	g := mustAct(t, e, dealtGame(t, e), 0, action.Fold)
	clone := g.Clone()
	a.Equal(g, clone)

	clone.Players[0].HoleCards[0] = deck.Card{Rank: 2, Suit: deck.Clubs}
	clone.Deck[0] = deck.Card{Rank: 2, Suit: deck.Clubs}
	*clone.Winner = 0
	clone.Winners[0] = 0

	a.Equal("Jd,6h", g.Players[0].HoleCards.String())
	a.NotEqual(deck.Card{Rank: 2, Suit: deck.Clubs}, g.Deck[0])
	a.Equal(1, *g.Winner)
	a.Equal([]int{1}, g.Winners)
}

func TestGameState_ViewFor(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t, DefaultOptions())

	g := dealtGame(t, e)
	p0, p1 := g.Players[0].ID, g.Players[1].ID

	view := g.ViewFor(p0)
	a.Nil(view.Deck)
	a.Equal("Jd,6h", view.Players[0].HoleCards.String())
	a.Nil(view.Players[1].HoleCards)
	a.Len(g.Players[1].HoleCards, 2, "the state is not modified")
	a.Len(g.Deck, 48)

	view = g.ViewFor(p1)
	a.Nil(view.Players[0].HoleCards)
	a.Equal("Kc,7s", view.Players[1].HoleCards.String())

	view = g.ViewFor("")
	a.Nil(view.Players[0].HoleCards)
	a.Nil(view.Players[1].HoleCards)

	// cards are shown at showdown
	shown := mustAct(t, e, g, 0, action.Raise, 1000)
	shown = mustAct(t, e, shown, 1, action.Call)
	view = shown.ViewFor("")
	a.Len(view.Players[0].HoleCards, 2)
	a.Len(view.Players[1].HoleCards, 2)

	// but not after a fold
	folded := mustAct(t, e, g, 0, action.Fold)
	view = folded.ViewFor(p1)
	a.Nil(view.Players[0].HoleCards)
	a.Len(view.Players[1].HoleCards, 2)
}

func TestGameState_Helpers(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t, DefaultOptions())

	waiting := e.CreateGame("g1", [2]string{"A", "B"})
	a.Nil(waiting.ActivePlayer())

	g := e.DealNewHandWithSeed(waiting, testSeed)
	a.Equal(0, g.PlayerIndex(g.Players[0].ID))
	a.Equal(1, g.PlayerIndex(g.Players[1].ID))
	a.Equal(-1, g.PlayerIndex("nobody"))
	a.Equal(0, g.SmallBlindIndex())
	a.Equal(1, g.BigBlindIndex())
	a.Equal(g.Players[0].ID, g.ActivePlayer().ID)
	a.False(g.IsComplete())
}

func TestGameState_JSON(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t, DefaultOptions())

	g := dealtGame(t, e)
	b, err := json.Marshal(g.ViewFor(g.Players[0].ID))
	a.NoError(err)

	var decoded map[string]interface{}
	a.NoError(json.Unmarshal(b, &decoded))
	a.Equal("preflop", decoded["phase"])
	a.Equal(float64(30), decoded["pot"])
	a.Nil(decoded["winner"])
	a.NotContains(decoded, "deck")

	players := decoded["players"].([]interface{})
	a.Len(players, 2)
	a.Equal("Alice", players[0].(map[string]interface{})["name"])
}

func TestPhase(t *testing.T) {
	a := assert.New(t)

	a.Equal("waiting", PhaseWaiting.String())
	a.Equal("complete", PhaseComplete.String())
	a.Equal("", Phase(99).String())

	a.False(PhaseWaiting.InBettingRound())
	a.True(PhasePreFlop.InBettingRound())
	a.True(PhaseRiver.InBettingRound())
	a.False(PhaseShowdown.InBettingRound())
	a.False(PhaseComplete.InBettingRound())

	b, err := json.Marshal(PhaseTurn)
	a.NoError(err)
	a.Equal(`"turn"`, string(b))

	var p Phase
	a.NoError(json.Unmarshal([]byte(`"river"`), &p))
	a.Equal(PhaseRiver, p)
	a.EqualError(json.Unmarshal([]byte(`"dealing"`), &p), `unknown phase: "dealing"`)
}

func TestOddChipPolicy(t *testing.T) {
	a := assert.New(t)

	for s, expected := range map[string]OddChipPolicy{
		"":            OddChipDiscard,
		"discard":     OddChipDiscard,
		"Dealer":      OddChipDealer,
		" non-dealer": OddChipNonDealer,
	} {
		policy, err := OddChipPolicyFromString(s)
		a.NoError(err, s)
		a.Equal(expected, policy, s)
	}

	_, err := OddChipPolicyFromString("coin-flip")
	a.EqualError(err, "invalid odd chip policy: coin-flip")

	var policy OddChipPolicy
	a.NoError(policy.UnmarshalText([]byte("dealer")))
	a.Equal(OddChipDealer, policy)
	a.Error(policy.UnmarshalText([]byte("nope")))

	b, err := json.Marshal(OddChipNonDealer)
	a.NoError(err)
	a.JSONEq(`{"id":"non-dealer","name":"Non-Dealer"}`, string(b))
}

func TestGameState_Summary(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t, DefaultOptions())

	g := dealtGame(t, e)
	a.Nil(g.Summary())

	folded := mustAct(t, e, g, 0, action.Fold)
	summary := folded.Summary()
	if a.NotNil(summary) {
		a.Equal(1, summary.HandNumber)
		a.Equal(ReasonOpponentFolded, summary.Reason)
		a.Equal([]string{"Bob won ${30}"}, summary.Messages())
	}

	shown := mustAct(t, e, g, 0, action.Raise, 1000)
	shown = mustAct(t, e, shown, 1, action.Call)
	summary = shown.Summary()
	if a.NotNil(summary) {
		a.Equal("6s,5c,2d,7h,10d", summary.Community.String())
		a.Equal(ResultLost, summary.Players[0].Result)
		a.Equal(0, summary.Players[0].Chips)
		a.Equal([]string{"Bob won ${2000} with K high"}, summary.Messages())
	}

	split := e.DetermineWinner(showdownState("Ah,2h", "As,3s", 40))
	a.Equal([]string{
		"Alice split the pot for ${20} with A high",
		"Bob split the pot for ${20} with A high",
	}, split.Summary().Messages())
}
