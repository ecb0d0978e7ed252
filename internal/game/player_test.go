package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePicker(t *testing.T) {
	p := NewPlayer("player1", "player1")
	p.MakePicker(cards(t, "QC", "KD"))

	assert.True(t, p.IsPicker)
	assert.Equal(t, cards(t, "QC", "KD"), p.WonCards)
	assert.Empty(t, p.Hand)
}

func TestPlayerPlayCard(t *testing.T) {
	p := NewPlayer("player1", "player1")
	p.Hand = cards(t, "AH", "TH", "KH")

	require.NoError(t, p.PlayCard(card(t, "TH")))
	assert.Equal(t, cards(t, "AH", "KH"), p.Hand)
	assert.Equal(t, &TablePlay{PlayerID: "player1", Card: card(t, "TH")}, p.CardToPlay)

	assert.ErrorIs(t, p.PlayCard(card(t, "TH")), ErrCardNotInHand)
}

func TestTotalForCards(t *testing.T) {
	p := NewPlayer("player1", "player1")
	p.WonCards = cards(t, "AH", "TC", "KD", "QS", "JH", "9C")

	total, err := p.TotalForCards()
	require.NoError(t, err)
	assert.Equal(t, 30, total)
	assert.Equal(t, 30, p.WonCardsTotal)

	// recomputed, not accumulated
	total, err = p.TotalForCards()
	require.NoError(t, err)
	assert.Equal(t, 30, total)
	assert.Equal(t, 30, p.WonCardsTotal)
}

// each reset is strictly a superset of the previous one
func TestResetLayering(t *testing.T) {
	dirty := func(t *testing.T) *Player {
		t.Helper()
		p := NewPlayer("player1", "player1")
		p.Hand = cards(t, "AH")
		p.IsPicker = true
		p.CardToPlay = &TablePlay{PlayerID: "player1", Card: card(t, "AH")}
		p.WonCards = cards(t, "TH", "TH")
		p.WonCardsTotal = 20
		p.Score = 4
		return p
	}

	p := dirty(t)
	p.ResetForNextTurn()
	assert.Empty(t, p.Hand)
	assert.False(t, p.IsPicker)
	assert.Nil(t, p.CardToPlay)
	assert.Len(t, p.WonCards, 2)
	assert.Equal(t, 20, p.WonCardsTotal)
	assert.Equal(t, 4, p.Score)

	p = dirty(t)
	p.ResetForNextRound()
	assert.Empty(t, p.Hand)
	assert.False(t, p.IsPicker)
	assert.Nil(t, p.CardToPlay)
	assert.Empty(t, p.WonCards)
	assert.Equal(t, 0, p.WonCardsTotal)
	assert.Equal(t, 4, p.Score)

	p = dirty(t)
	p.ResetForNewGame()
	assert.Empty(t, p.Hand)
	assert.False(t, p.IsPicker)
	assert.Nil(t, p.CardToPlay)
	assert.Empty(t, p.WonCards)
	assert.Equal(t, 0, p.WonCardsTotal)
	assert.Equal(t, 0, p.Score)
}
