package game

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/sheepshead/backend/internal/deck"
)

var ErrRosterFull = errors.New("all seats taken")
var ErrRosterIncomplete = errors.New("not enough seated players")
var ErrUnknownPlayer = errors.New("unknown player")
var ErrPickerAlreadySet = errors.New("picker already set")
var ErrNoPicker = errors.New("no picker set")
var ErrPartnerNotFound = errors.New("no player holds the called card")
var ErrCardNotInHand = errors.New("card not in hand")
var ErrTeamsNotSet = errors.New("teams not set")
var ErrEmptyTrick = errors.New("no cards on the table")
var ErrUnsupportedCommand = errors.New("unsupported command")

const (
	seats     = 3
	handSize  = 10
	blindSize = 2
)

type ScoreMode string

const ScoreModePicker ScoreMode = "picker"

// Game is the aggregate for one table: three seats, a rotating dealer, the
// blind and the trick in progress. One Game exists per room and is only
// ever touched by that room's goroutine.
type Game struct {
	Players       []*Player   `json:"players"`
	Dealer        int         `json:"dealer"`
	CurrentPlayer int         `json:"currentPlayer"`
	Picker        string      `json:"picker"`
	SecretTeam    []string    `json:"secretTeam"`
	OtherTeam     []string    `json:"otherTeam"`
	Blind         []deck.Card `json:"blindCards"`
	Table         []TablePlay `json:"currentCardsOnTable"`
	ScoreMode     ScoreMode   `json:"setScoreMode"`

	rng      *rand.Rand
	resolver TrickResolver
}

func New() *Game {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded builds a game whose deals are deterministic for a given seed.
func NewSeeded(seed int64) *Game {
	return &Game{
		Players:       []*Player{},
		Dealer:        0,
		CurrentPlayer: 1, // seat after the dealer
		SecretTeam:    []string{},
		OtherTeam:     []string{},
		Blind:         []deck.Card{},
		Table:         []TablePlay{},
		ScoreMode:     ScoreModePicker,
		rng:           rand.New(rand.NewSource(seed)),
		resolver:      HighPointResolver{},
	}
}

// SetResolver swaps the trick-winner rule.
func (g *Game) SetResolver(r TrickResolver) { g.resolver = r }

// SetPlayer seats a player in call order.
func (g *Game) SetPlayer(p *Player) error {
	if len(g.Players) >= seats {
		return ErrRosterFull
	}
	g.Players = append(g.Players, p)
	return nil
}

func (g *Game) playerByID(id string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrUnknownPlayer
}

// DealCards shuffles a fresh deck and deals ten cards to each seat in turn
// order starting after the dealer, setting the last two aside as the blind.
// Leftovers from the previous round (won cards, pending plays) are wiped
// first; scores and the current player are untouched.
func (g *Game) DealCards() error {
	if len(g.Players) != seats {
		return ErrRosterIncomplete
	}

	shuffled := deck.Shuffle(deck.New(), g.rng)

	for _, p := range g.Players {
		p.ResetForNextRound()
	}
	g.Table = []TablePlay{}

	idx := 0
	for i := 0; i < seats; i++ {
		seat := (g.Dealer + 1 + i) % seats
		p := g.Players[seat]
		p.Hand = append(p.Hand, shuffled[idx:idx+handSize]...)
		idx += handSize
	}
	g.Blind = append([]deck.Card{}, shuffled[idx:idx+blindSize]...)
	return nil
}

// SetPicker marks the named seat as picker and hands it the blind. The
// blind counts toward the picker's captured cards immediately.
func (g *Game) SetPicker(playerID string) error {
	if g.Picker != "" {
		return ErrPickerAlreadySet
	}
	p, err := g.playerByID(playerID)
	if err != nil {
		return err
	}
	p.MakePicker(g.Blind)
	g.Picker = playerID
	g.Blind = []deck.Card{}
	return nil
}

// SetSecretAndOtherTeam forms the two sides from the called card: whoever
// holds it partners the picker, everyone else is the other team. The
// partnership stays hidden from the other players until revealed by play.
func (g *Game) SetSecretAndOtherTeam(named deck.Card) error {
	if g.Picker == "" {
		return ErrNoPicker
	}

	partner := ""
	for _, p := range g.Players {
		if p.ID == g.Picker {
			continue
		}
		if slices.Contains(p.Hand, named) {
			partner = p.ID
			break
		}
	}
	if partner == "" {
		return ErrPartnerNotFound
	}

	g.SecretTeam = []string{g.Picker, partner}
	g.OtherTeam = []string{}
	for _, p := range g.Players {
		if p.ID != g.Picker && p.ID != partner {
			g.OtherTeam = append(g.OtherTeam, p.ID)
		}
	}
	return nil
}

// PlayCard records the named seat's pending play for the current trick.
func (g *Game) PlayCard(playerID string, c deck.Card) error {
	p, err := g.playerByID(playerID)
	if err != nil {
		return err
	}
	return p.PlayCard(c)
}

// TableReceiveAllCards copies every pending play onto the table in seat
// order. Pending plays are not cleared here; the next round reset does that.
func (g *Game) TableReceiveAllCards() {
	g.Table = []TablePlay{}
	for _, p := range g.Players {
		if p.CardToPlay != nil {
			g.Table = append(g.Table, *p.CardToPlay)
		}
	}
}

// CalculateHandWinner resolves the trick on the table, moves its cards into
// the winner's won cards in table order and flushes the table.
func (g *Game) CalculateHandWinner() error {
	winnerID, err := g.resolver.Winner(g.Table)
	if err != nil {
		return err
	}
	winner, err := g.playerByID(winnerID)
	if err != nil {
		return err
	}
	for _, play := range g.Table {
		winner.WonCards = append(winner.WonCards, play.Card)
	}
	g.Table = []TablePlay{}
	return nil
}

// CalculateScore settles the round. The picker's side needs 61 of the 120
// card points to win; the loser's total sets the multiplier (3 when shut
// out entirely, 2 under 30, otherwise 1). The picker moves double stakes,
// the partner and each opponent single stakes, signs mirrored when the
// picker's side loses.
func (g *Game) CalculateScore() error {
	if len(g.SecretTeam) == 0 || len(g.OtherTeam) == 0 {
		return ErrTeamsNotSet
	}

	pickerSide := 0
	for _, id := range g.SecretTeam {
		p, err := g.playerByID(id)
		if err != nil {
			return err
		}
		total, err := p.TotalForCards()
		if err != nil {
			return err
		}
		pickerSide += total
	}
	otherSide := 0
	for _, id := range g.OtherTeam {
		p, err := g.playerByID(id)
		if err != nil {
			return err
		}
		total, err := p.TotalForCards()
		if err != nil {
			return err
		}
		otherSide += total
	}

	pickerWins := pickerSide >= 61
	losing := otherSide
	if !pickerWins {
		losing = pickerSide
	}

	multiplier := 1
	switch {
	case losing == 0:
		multiplier = 3 // schwarz
	case losing < 30:
		multiplier = 2 // schneider
	}

	sign := 1
	if !pickerWins {
		sign = -1
	}
	for _, p := range g.Players {
		switch {
		case p.ID == g.Picker:
			p.Score += sign * multiplier * 2
		case slices.Contains(g.SecretTeam, p.ID):
			p.Score += sign * multiplier
		default:
			p.Score -= sign * multiplier
		}
	}
	return nil
}

// ResetGameForNewRound clears round state and passes the deal to the next
// seat. Scores stay, and so does the current player.
func (g *Game) ResetGameForNewRound() {
	g.Picker = ""
	g.SecretTeam = []string{}
	g.OtherTeam = []string{}
	g.Table = []TablePlay{}
	g.Dealer = (g.Dealer + 1) % seats
	for _, p := range g.Players {
		p.ResetForNextTurn()
	}
}

// ResetAll wipes the whole game: round state, hands and every score. The
// current player goes back to seat 1; the dealer stays where it is.
func (g *Game) ResetAll() {
	g.Picker = ""
	g.SecretTeam = []string{}
	g.OtherTeam = []string{}
	g.Table = []TablePlay{}
	g.CurrentPlayer = 1
	for _, p := range g.Players {
		p.ResetForNewGame()
	}
}

