package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
)

var ErrUnknownRank = errors.New("unknown rank")
var ErrBadCard = errors.New("malformed card")

type Rank string

const (
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "T"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

var ranks = []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is one of the 32 cards of the Schafkopf deck.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the compact wire form, e.g. "AH" for the ace of hearts.
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// Parse reads the compact two-character form produced by String.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	c := Card{Rank: Rank(s[:1]), Suit: Suit(s[1:])}
	if _, ok := points[c.Rank]; !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	switch c.Suit {
	case Clubs, Diamonds, Hearts, Spades:
		return c, nil
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Ace 11, ten 10, king 4, queen 3, jack 2, spot cards nothing.
// Whole deck is worth 120.
var points = map[Rank]int{
	Ace:   11,
	Ten:   10,
	King:  4,
	Queen: 3,
	Jack:  2,
	Nine:  0,
	Eight: 0,
	Seven: 0,
}

// Points returns the scoring value of a rank. ErrUnknownRank can only
// fire on a rank from outside the deck vocabulary.
func Points(r Rank) (int, error) {
	p, ok := points[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRank, r)
	}
	return p, nil
}

// Total sums the point values of a pile of cards.
func Total(cards []Card) (int, error) {
	total := 0
	for _, c := range cards {
		p, err := Points(c.Rank)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

// New builds the canonical 32-card deck in suit-major order.
func New() []Card {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Shuffle returns a shuffled copy, leaving the input untouched.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
