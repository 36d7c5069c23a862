package texasholdem

import (
	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
)

// Result is how the hand ended for a player
type Result string

// Result constants
const (
	ResultPending Result = ""
	ResultFolded  Result = "folded"
	ResultLost    Result = "lost"
	ResultWon     Result = "won"
	ResultSplit   Result = "split"
)

// Player is one of the two seats at the table
type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Chips      int       `json:"chips"`
	HoleCards  deck.Hand `json:"holeCards"`
	CurrentBet int       `json:"currentBet"`
	Folded     bool      `json:"folded"`
	AllIn      bool      `json:"allIn"`

	Result          Result `json:"result"`
	Winnings        int    `json:"winnings"`
	HandDescription string `json:"handDescription,omitempty"`
}

func newPlayer(id, name string, chips int) Player {
	return Player{
		ID:        id,
		Name:      name,
		Chips:     chips,
		HoleCards: deck.Hand{},
		Result:    ResultPending,
	}
}

// CanAct returns true if the player may still take an action this hand
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// pay moves up to amount chips from the player into their bet for the street
// The value returned is what was actually paid. Paying the last chip puts the player all-in.
func (p *Player) pay(amount int) int {
	if amount >= p.Chips {
		amount = p.Chips
		p.AllIn = true
	}

	p.Chips -= amount
	p.CurrentBet += amount

	return amount
}

// resetForHand clears everything but the player's identity and chips
func (p *Player) resetForHand() {
	p.HoleCards = deck.Hand{}
	p.CurrentBet = 0
	p.Folded = false
	p.AllIn = false
	p.Result = ResultPending
	p.Winnings = 0
	p.HandDescription = ""
}

func (p Player) clone() Player {
	p.HoleCards = p.HoleCards.Clone()
	return p
}
