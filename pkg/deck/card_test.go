package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	for s, expected := range map[string]Card{
		"Ah":  {Rank: Ace, Suit: Hearts},
		"10s": {Rank: 10, Suit: Spades},
		"Ts":  {Rank: 10, Suit: Spades},
		"2c":  {Rank: 2, Suit: Clubs},
		"kD":  {Rank: King, Suit: Diamonds},
		"qh":  {Rank: Queen, Suit: Hearts},
		"JC":  {Rank: Jack, Suit: Clubs},
	} {
		card, err := CardFromString(s)
		a.NoError(err, s)
		a.Equal(expected, card, s)
	}

	for _, s := range []string{"", "1h", "11h", "14c", "Ax", "A", "h", "10", "Ahh", "!2c"} {
		_, err := CardFromString(s)
		a.ErrorIs(err, ErrInvalidCardString, s)
	}
}

func TestCardToString_RoundTrip(t *testing.T) {
	for _, card := range New() {
		s := CardToString(card)
		parsed, err := CardFromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, card, parsed, s)
	}

	assert.Equal(t, "Ah", CardToString(Card{Rank: Ace, Suit: Hearts}))
	assert.Equal(t, "10s", CardToString(Card{Rank: 10, Suit: Spades}))
	assert.Equal(t, "Jd", Card{Rank: Jack, Suit: Diamonds}.String())
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("Ah,10s,2c")
	a.NoError(err)
	a.Equal(Hand{{Rank: Ace, Suit: Hearts}, {Rank: 10, Suit: Spades}, {Rank: 2, Suit: Clubs}}, cards)
	a.Equal("Ah,10s,2c", cards.String())
	a.Equal([]string{"Ah", "10s", "2c"}, CardStrings(cards))

	cards, err = CardsFromString("")
	a.NoError(err)
	a.Empty(cards)

	_, err = CardsFromString("Ah,Zz")
	a.ErrorIs(err, ErrInvalidCardString)

	a.Panics(func() {
		MustCardsFromString("Ah,Zz")
	})
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Card{Rank: Ace, Suit: Hearts})
	a.NoError(err)
	a.JSONEq(`{"suit":"hearts","rank":"A","value":14}`, string(b))

	var card Card
	a.NoError(json.Unmarshal([]byte(`{"suit":"spades","rank":"10","value":10}`), &card))
	a.Equal(Card{Rank: 10, Suit: Spades}, card)

	a.ErrorIs(json.Unmarshal([]byte(`{"suit":"spades","rank":"J","value":10}`), &card), ErrInvalidCardString)
	a.ErrorIs(json.Unmarshal([]byte(`{"suit":"stars","rank":"10","value":10}`), &card), ErrInvalidCardString)
}
