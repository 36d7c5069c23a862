package texasholdem

import (
	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
)

// NumPlayers is the number of seats in heads-up play
const NumPlayers = 2

// WinnerReason values
const (
	ReasonOpponentFolded = "opponent folded"
	ReasonBestHand       = "best hand"
	ReasonSplitPot       = "split pot"
)

// GameState is the full state of a heads-up game
// Engine methods treat it as a value: they return a new state and never modify the one passed in.
type GameState struct {
	GameID            string             `json:"gameId"`
	Players           [NumPlayers]Player `json:"players"`
	CommunityCards    deck.Hand          `json:"communityCards"`
	Pot               int                `json:"pot"`
	CurrentBet        int                `json:"currentBet"`
	ActivePlayerIndex int                `json:"activePlayerIndex"`
	Phase             Phase              `json:"phase"`
	Winner            *int               `json:"winner"`
	Winners           []int              `json:"winners,omitempty"`
	WinnerReason      string             `json:"winnerReason,omitempty"`
	Deck              deck.Deck          `json:"deck,omitempty"`
	PlayersActed      [NumPlayers]bool   `json:"playersActed"`
	HandNumber        int                `json:"handNumber"`
	DealerIndex       int                `json:"dealerIndex"`
}

// Clone returns a deep copy of the state
func (g GameState) Clone() GameState {
	for i := range g.Players {
		g.Players[i] = g.Players[i].clone()
	}

	g.CommunityCards = g.CommunityCards.Clone()
	g.Deck = g.Deck.Clone()

	if g.Winner != nil {
		w := *g.Winner
		g.Winner = &w
	}

	if g.Winners != nil {
		winners := make([]int, len(g.Winners))
		copy(winners, g.Winners)
		g.Winners = winners
	}

	return g
}

// PlayerIndex returns the seat of the player, or -1 if the player is not in the game
func (g *GameState) PlayerIndex(playerID string) int {
	for i, p := range g.Players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

// ActivePlayer returns the player whose turn it is, or nil if nobody can act
func (g *GameState) ActivePlayer() *Player {
	if !g.Phase.InBettingRound() || g.ActivePlayerIndex < 0 || g.ActivePlayerIndex >= NumPlayers {
		return nil
	}

	return &g.Players[g.ActivePlayerIndex]
}

// SmallBlindIndex is the dealer, who posts the small blind in heads-up play
func (g *GameState) SmallBlindIndex() int {
	return g.DealerIndex
}

// BigBlindIndex is the player who is not the dealer
func (g *GameState) BigBlindIndex() int {
	return (g.DealerIndex + 1) % NumPlayers
}

// TotalChips returns the chips held by the players plus the pot
func (g *GameState) TotalChips() int {
	total := g.Pot
	for _, p := range g.Players {
		total += p.Chips
	}

	return total
}

// IsComplete returns true if the hand is over
func (g *GameState) IsComplete() bool {
	return g.Phase == PhaseComplete
}

// ViewFor returns a copy of the state suitable for sending to a player
// The deck is removed and the opponent's hole cards are hidden until the hand reaches the showdown.
// An empty playerID returns a spectator view.
func (g GameState) ViewFor(playerID string) GameState {
	view := g.Clone()
	view.Deck = nil

	reveal := g.Phase == PhaseShowdown || (g.Phase == PhaseComplete && g.WinnerReason != ReasonOpponentFolded)
	for i := range view.Players {
		if reveal && !view.Players[i].Folded {
			continue
		}

		if view.Players[i].ID != playerID {
			view.Players[i].HoleCards = nil
		}
	}

	return view
}

func (g *GameState) nonFolded() []int {
	indexes := make([]int, 0, NumPlayers)
	for i, p := range g.Players {
		if !p.Folded {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// canActCount returns the number of players that are neither folded nor all-in
func (g *GameState) canActCount() int {
	n := 0
	for _, p := range g.Players {
		if p.CanAct() {
			n++
		}
	}

	return n
}
