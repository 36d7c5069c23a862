package poker

import (
	"errors"
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
)

// ErrCardCount is returned when a hand does not have 5-7 cards
var ErrCardCount = errors.New("hand must have between 5 and 7 cards")

// ErrDuplicateCard is returned when the same card appears twice in a hand
var ErrDuplicateCard = errors.New("hand contains a duplicate card")

// min and max number of cards in an evaluated hand
const (
	MinCards = 5
	MaxCards = 7
)

// Evaluation is the result of evaluating a hand
type Evaluation struct {
	// HandStrength ranks the hand; lower is stronger and a royal flush is 0
	HandStrength int    `json:"handStrength"`
	Description  string `json:"description"`
}

// Evaluator evaluates Texas Hold'em hands
// The zero value is ready to use.
type Evaluator struct{}

// NewEvaluator returns a new hand evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// royalFlushScore is the best score the underlying library can produce
var royalFlushScore = func() int16 {
	var cards [5]ph.Card
	for i, rank := range []int{10, deck.Jack, deck.Queen, deck.King, deck.Ace} {
		c, err := convertCard(deck.Card{Rank: rank, Suit: deck.Spades})
		if err != nil {
			panic(err)
		}

		cards[i] = c
	}

	return ph.Eval5(&cards)
}()

// EvaluateHand evaluates the best five card hand from 5-7 cards, e.g. ["Ah", "Kh", "Qh", "Jh", "10h"]
// The result does not depend on the order of the cards.
func (e *Evaluator) EvaluateHand(cardStrings []string) (*Evaluation, error) {
	n := len(cardStrings)
	if n < MinCards || n > MaxCards {
		return nil, fmt.Errorf("%w: got %d", ErrCardCount, n)
	}

	cards := make([]ph.Card, n)
	seen := make(map[deck.Card]bool, n)
	for i, s := range cardStrings {
		card, err := deck.CardFromString(s)
		if err != nil {
			return nil, err
		}

		if seen[card] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, s)
		}
		seen[card] = true

		if cards[i], err = convertCard(card); err != nil {
			return nil, err
		}
	}

	score, best := bestScore(cards)
	desc, err := ph.Describe(best)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		HandStrength: int(royalFlushScore) - int(score),
		Description:  desc,
	}, nil
}

// bestScore returns the score of the cards and the cards that should be described
func bestScore(cards []ph.Card) (int16, []ph.Card) {
	switch len(cards) {
	case 5:
		var five [5]ph.Card
		copy(five[:], cards)
		return ph.Eval5(&five), cards
	case 7:
		var seven [7]ph.Card
		copy(seven[:], cards)
		return ph.Eval7(&seven), cards
	}

	// six cards: the best of the hands leaving one card out
	var best int16
	var bestHand []ph.Card
	for skip := range cards {
		var five [5]ph.Card
		i := 0
		for j, c := range cards {
			if j == skip {
				continue
			}

			five[i] = c
			i++
		}

		if s := ph.Eval5(&five); bestHand == nil || s > best {
			best = s
			bestHand = append([]ph.Card(nil), five[:]...)
		}
	}

	return best, bestHand
}

func convertCard(card deck.Card) (ph.Card, error) {
	var suit ph.Suit
	switch card.Suit {
	case deck.Clubs:
		suit = ph.Club
	case deck.Diamonds:
		suit = ph.Diamond
	case deck.Hearts:
		suit = ph.Heart
	case deck.Spades:
		suit = ph.Spade
	default:
		var invalid ph.Card
		return invalid, fmt.Errorf("%w: unknown suit %q", deck.ErrInvalidCardString, card.Suit)
	}

	rank := card.Rank
	if rank == deck.Ace {
		// the library counts the ace as rank 1
		rank = 1
	}

	return ph.MakeCard(suit, ph.Rank(rank))
}
