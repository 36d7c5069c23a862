package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCardString is returned when a string cannot be parsed into a card
var ErrInvalidCardString = errors.New("invalid card string")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is the canonical suit order used to build a deck
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Letter returns the single-letter code for the suit
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	}

	return ""
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14

	lowestRank = 2
)

// Card is an individual playing card. Rank is the card value (2-14, Ace high).
type Card struct {
	Rank int
	Suit Suit
}

// RankString returns the rank as written on the card: 2-10, J, Q, K, A
func (c Card) RankString() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(c.Rank)
}

// Valid returns true if the card has a known suit and rank
func (c Card) Valid() bool {
	return c.Suit.Letter() != "" && c.Rank >= lowestRank && c.Rank <= Ace
}

func (c Card) String() string {
	return CardToString(c)
}

type cardJSON struct {
	Suit  Suit   `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// MarshalJSON encodes the card as {"suit":"hearts","rank":"A","value":14}
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Suit:  c.Suit,
		Rank:  c.RankString(),
		Value: c.Rank,
	})
}

// UnmarshalJSON decodes a card encoded by MarshalJSON
func (c *Card) UnmarshalJSON(b []byte) error {
	var cj cardJSON
	if err := json.Unmarshal(b, &cj); err != nil {
		return err
	}

	card := Card{Rank: cj.Value, Suit: cj.Suit}
	if !card.Valid() || card.RankString() != cj.Rank {
		return fmt.Errorf("%w: %s", ErrInvalidCardString, string(b))
	}

	*c = card
	return nil
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|10|t|j|q|k|a)([hdcs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-10, J, Q, K or A and suit in [hdcs], e.g. "Ah", "10s"
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardString, s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = 10
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		// the regexp guarantees a number here
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardToString converts a card (Ace of Hearts) to a string (Ah)
func CardToString(card Card) string {
	return card.RankString() + card.Suit.Letter()
}

// CardsFromString returns a slice of cards from a comma separated list, e.g. "Ah,10s"
func CardsFromString(s string) (Hand, error) {
	if s == "" {
		return Hand{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := CardFromString(cs)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCardsFromString is like CardsFromString, but panics on a parse error.
// It is intended for tests and static card lists.
func MustCardsFromString(s string) Hand {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of Ah,10s,2c,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

// CardStrings returns each card in its string form
func CardStrings(cards []Card) []string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return c
}
