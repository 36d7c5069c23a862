package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ebbitten/bluepoker-sub001/internal/rng"
)

// ErrInvalidCount is an error when Draw() is asked for fewer than one card or more cards than are left
var ErrInvalidCount = errors.New("invalid draw count")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents an ordered playing deck. The first card is the top of the deck.
// Deck methods never modify the receiver; they return new decks.
type Deck []Card

// New returns a new deck of cards in canonical order (suit-major, rank-minor).
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits {
		for rank := lowestRank; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle returns a copy of the deck shuffled with Fisher-Yates driven by a seeded LCG.
// The same deck and seed always produce the same order.
func (d Deck) Shuffle(seed int64) Deck {
	cards := d.Clone()
	gen := rng.NewLCG(seed)

	for i := len(cards) - 1; i > 0; i-- {
		j := gen.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return cards
}

// Draw takes the first count cards off the deck.
// The remaining cards keep their relative order.
func (d Deck) Draw(count int) (drawn Hand, remaining Deck, err error) {
	if count < 1 || count > len(d) {
		return nil, nil, fmt.Errorf("%w: cannot draw %d from %d cards", ErrInvalidCount, count, len(d))
	}

	drawn = make(Hand, count)
	copy(drawn, d[:count])

	remaining = make(Deck, len(d)-count)
	copy(remaining, d[count:])

	return drawn, remaining, nil
}

// Validate returns true if the deck contains exactly 52 distinct cards
func (d Deck) Validate() bool {
	if len(d) != Size {
		return false
	}

	seen := make(map[Card]bool, Size)
	for _, card := range d {
		if !card.Valid() || seen[card] {
			return false
		}

		seen[card] = true
	}

	return true
}

// Clone returns a copy of the deck
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}

	d2 := make(Deck, len(d))
	copy(d2, d)

	return d2
}

// HashCode returns a SHA1 hash code of the deck order.
func (d Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
