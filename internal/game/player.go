package game

import (
	"slices"

	"github.com/sheepshead/backend/internal/deck"
)

// TablePlay is one card laid on the table, tagged with the seat that played it.
type TablePlay struct {
	PlayerID string    `json:"player"`
	Card     deck.Card `json:"card"`
}

// Player is one seat's mutable record. Hand and WonCards only ever hold
// cards from the current round; Score persists across rounds.
type Player struct {
	ID            string      `json:"id"`
	Name          string      `json:"userName"`
	Hand          []deck.Card `json:"hand"`
	WonCards      []deck.Card `json:"wonCards"`
	WonCardsTotal int         `json:"wonCardsTotal"`
	Score         int         `json:"score"`
	IsPicker      bool        `json:"isPicker"`
	CardToPlay    *TablePlay  `json:"cardToPlay"`
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Hand:     []deck.Card{},
		WonCards: []deck.Card{},
	}
}

// MakePicker marks the seat as picker and moves the blind straight into
// its won cards. The blind never passes through the hand.
func (p *Player) MakePicker(blind []deck.Card) {
	p.IsPicker = true
	p.WonCards = append(p.WonCards, blind...)
}

// PlayCard removes the card from the hand and records it as this seat's
// pending play for the current trick.
func (p *Player) PlayCard(c deck.Card) error {
	i := slices.Index(p.Hand, c)
	if i < 0 {
		return ErrCardNotInHand
	}
	p.Hand = slices.Delete(p.Hand, i, i+1)
	p.CardToPlay = &TablePlay{PlayerID: p.ID, Card: c}
	return nil
}

// TotalForCards recomputes the point total of the won cards and stores it
// in WonCardsTotal.
func (p *Player) TotalForCards() (int, error) {
	total, err := deck.Total(p.WonCards)
	if err != nil {
		return 0, err
	}
	p.WonCardsTotal = total
	return total, nil
}

// ResetForNextTurn clears the hand, the picker flag and the pending play.
func (p *Player) ResetForNextTurn() {
	p.Hand = []deck.Card{}
	p.IsPicker = false
	p.CardToPlay = nil
}

// ResetForNextRound additionally clears the won cards and their total.
func (p *Player) ResetForNextRound() {
	p.ResetForNextTurn()
	p.WonCards = []deck.Card{}
	p.WonCardsTotal = 0
}

// ResetForNewGame additionally zeroes the score. Nothing else ever does.
func (p *Player) ResetForNewGame() {
	p.ResetForNextRound()
	p.Score = 0
}
