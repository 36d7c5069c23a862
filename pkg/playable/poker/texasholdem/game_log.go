package texasholdem

import (
	"fmt"

	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
)

// HandSummary describes how a completed hand ended
type HandSummary struct {
	HandNumber int             `json:"handNumber"`
	Community  deck.Hand       `json:"community"`
	Reason     string          `json:"reason"`
	Players    []PlayerSummary `json:"players"`
}

// PlayerSummary is one player's part of a HandSummary
type PlayerSummary struct {
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	Cards    deck.Hand `json:"cards"`
	Hand     string    `json:"hand,omitempty"`
	Result   Result    `json:"result"`
	Winnings int       `json:"winnings"`
	Chips    int       `json:"chips"`
}

// Summary returns the summary of a completed hand, or nil if the hand is still in progress
func (g GameState) Summary() *HandSummary {
	if g.Phase != PhaseComplete {
		return nil
	}

	players := make([]PlayerSummary, len(g.Players))
	for i, p := range g.Players {
		players[i] = PlayerSummary{
			PlayerID: p.ID,
			Name:     p.Name,
			Cards:    p.HoleCards.Clone(),
			Hand:     p.HandDescription,
			Result:   p.Result,
			Winnings: p.Winnings,
			Chips:    p.Chips,
		}
	}

	return &HandSummary{
		HandNumber: g.HandNumber,
		Community:  g.CommunityCards.Clone(),
		Reason:     g.WinnerReason,
		Players:    players,
	}
}

// Messages returns a line for each player who won chips
func (h *HandSummary) Messages() []string {
	messages := make([]string, 0, len(h.Players))
	for _, p := range h.Players {
		if p.Result != ResultWon && p.Result != ResultSplit {
			continue
		}

		switch {
		case h.Reason == ReasonOpponentFolded:
			messages = append(messages, fmt.Sprintf("%s won ${%d}", p.Name, p.Winnings))
		case p.Result == ResultSplit && p.Hand != "":
			messages = append(messages, fmt.Sprintf("%s split the pot for ${%d} with %s", p.Name, p.Winnings, p.Hand))
		case p.Result == ResultSplit:
			messages = append(messages, fmt.Sprintf("%s split the pot for ${%d}", p.Name, p.Winnings))
		case p.Hand != "":
			messages = append(messages, fmt.Sprintf("%s won ${%d} with %s", p.Name, p.Winnings, p.Hand))
		default:
			messages = append(messages, fmt.Sprintf("%s won ${%d}", p.Name, p.Winnings))
		}
	}

	return messages
}
