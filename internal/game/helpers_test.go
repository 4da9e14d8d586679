package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokergrid/internal/randutil"
	"github.com/lox/pokergrid/poker"
)

// boardFromRows builds a board directly from five rows of card tokens
// ("As", "Th", ...) with ".." marking an empty slot. The supplied deck
// backs any refills; pass a drained deck for no-refill scenarios.
func boardFromRows(t *testing.T, deck *poker.Deck, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, GridSize)

	b := NewBoard(deck, nil)
	for r, row := range rows {
		tokens := strings.Fields(row)
		require.Len(t, tokens, GridSize, "row %d", r)
		for c, token := range tokens {
			if token == ".." {
				continue
			}
			card, err := poker.ParseCard(token)
			require.NoError(t, err)
			cc := card
			b.slots[r][c] = &cc
		}
	}
	b.refreshGameOver()
	return b
}

// fullDeck returns a deterministic shuffled deck
func fullDeck(seed int64) *poker.Deck {
	return poker.NewDeck(randutil.New(seed))
}

// drainedDeck returns a deck with no cards left
func drainedDeck(seed int64) *poker.Deck {
	d := fullDeck(seed)
	for {
		if _, ok := d.Draw(); !ok {
			return d
		}
	}
}

// mustCardAt fetches the card at (row, col), failing the test when empty
func mustCardAt(t *testing.T, b *Board, row, col int) poker.Card {
	t.Helper()
	card, ok := b.CardAt(Position{Row: row, Col: col})
	require.True(t, ok, "expected a card at (%d,%d)", row, col)
	return card
}

// gridSnapshot captures the board contents by identity for comparison
func gridSnapshot(b *Board) [GridSize][GridSize]poker.Card {
	var snap [GridSize][GridSize]poker.Card
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if card, ok := b.CardAt(Position{Row: row, Col: col}); ok {
				snap[row][col] = card
			}
		}
	}
	return snap
}

// selectCards taps the given cards into the engine selection, retrying in
// passes so any connected subset can be assembled regardless of order.
func selectCards(t *testing.T, e *Engine, cards []poker.Card) {
	t.Helper()
	remaining := append([]poker.Card(nil), cards...)
	for len(remaining) > 0 {
		// Only tap eligible cards; an ineligible tap would clear the
		// selection built so far.
		eligible := e.EligibleCards()
		progressed := false
		for i := 0; i < len(remaining); i++ {
			if !eligible[remaining[i].ID] {
				continue
			}
			require.Equal(t, TapAccepted, e.SelectCard(remaining[i].ID))
			remaining = append(remaining[:i], remaining[i+1:]...)
			progressed = true
			break
		}
		require.True(t, progressed, "could not extend selection; %d cards left", len(remaining))
	}
}
