package game

import "github.com/sheepshead/backend/internal/deck"

// TrickResolver decides which seat takes the cards on the table. The real
// trump/suit-following order is still an open product decision, so the rule
// is pluggable rather than baked into the engine.
type TrickResolver interface {
	Winner(plays []TablePlay) (string, error)
}

// HighPointResolver awards the trick to the highest card-point value
// played, earliest play winning ties.
type HighPointResolver struct{}

func (HighPointResolver) Winner(plays []TablePlay) (string, error) {
	if len(plays) == 0 {
		return "", ErrEmptyTrick
	}
	winner := plays[0].PlayerID
	best := -1
	for _, play := range plays {
		p, err := deck.Points(play.Card.Rank)
		if err != nil {
			return "", err
		}
		if p > best {
			best = p
			winner = play.PlayerID
		}
	}
	return winner, nil
}
