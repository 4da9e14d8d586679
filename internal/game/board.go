package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/pokergrid/poker"
)

// GridSize is the board dimension; the board always has GridSize^2 slots.
const GridSize = 5

// Position identifies a slot on the board
type Position struct {
	Row int // 0-indexed from the top
	Col int // 0-indexed from the left
}

// Valid returns true if the position is within the board bounds
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// Adjacent reports whether two positions touch in the 8-directional
// king-move sense (Chebyshev distance exactly 1). It depends only on the
// coordinates, never on occupancy, and is irreflexive.
func Adjacent(a, b Position) bool {
	if a == b {
		return false
	}
	return absInt(a.Row-b.Row) <= 1 && absInt(a.Col-b.Col) <= 1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Board owns the canonical game state: the 5x5 grid, the deck it refills
// from, the running score and the game-over flag. Empty slots are nil and
// appear only at the top of a column once the deck runs dry.
type Board struct {
	slots     [GridSize][GridSize]*poker.Card
	deck      *poker.Deck
	score     int
	discarded int
	over      bool
	logger    *log.Logger
}

// NewBoard creates an empty board drawing from the supplied deck. The
// board is not dealt; call DealInitial.
func NewBoard(deck *poker.Deck, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{deck: deck, logger: logger}
}

// DealInitial fills the board row-major from the deck. A deck holding
// fewer than 25 cards fills as many slots as it can; the remainder stay
// empty. The game-over flag is refreshed afterwards.
func (b *Board) DealInitial() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			card, ok := b.deck.Draw()
			if !ok {
				b.refreshGameOver()
				return
			}
			c := card
			b.slots[row][col] = &c
		}
	}
	b.refreshGameOver()
}

// Reset reshuffles a fresh deck, clears the board and score, and deals a
// new game.
func (b *Board) Reset() {
	b.deck.Reset()
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			b.slots[row][col] = nil
		}
	}
	b.score = 0
	b.discarded = 0
	b.over = false
	b.DealInitial()
	b.logger.Debug("board reset", "deck", b.deck.Remaining())
}

// CardAt returns the card occupying pos
func (b *Board) CardAt(pos Position) (poker.Card, bool) {
	if !pos.Valid() || b.slots[pos.Row][pos.Col] == nil {
		return poker.Card{}, false
	}
	return *b.slots[pos.Row][pos.Col], true
}

// PositionOf locates a card on the board by identity
func (b *Board) PositionOf(id uuid.UUID) (Position, bool) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if c := b.slots[row][col]; c != nil && c.ID == id {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// OccupiedPositions returns the occupied slots in row-major order
func (b *Board) OccupiedPositions() []Position {
	positions := make([]Position, 0, GridSize*GridSize)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.slots[row][col] != nil {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// OccupiedCount returns the number of occupied slots
func (b *Board) OccupiedCount() int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.slots[row][col] != nil {
				count++
			}
		}
	}
	return count
}

// Score returns the running total
func (b *Board) Score() int {
	return b.score
}

// IsGameOver reports whether any legal, scorable move remains. The flag
// is recomputed after the initial deal and after every successful play.
func (b *Board) IsGameOver() bool {
	return b.over
}

// DeckRemaining returns the number of cards still in the deck
func (b *Board) DeckRemaining() int {
	return b.deck.Remaining()
}

// Discarded returns the number of cards permanently scored away
func (b *Board) Discarded() int {
	return b.discarded
}

// PlayResult is the outcome of a play attempt. On failure nothing on the
// board has changed.
type PlayResult struct {
	Success    bool
	Hand       poker.HandType
	ScoreDelta int
	GameOver   bool
}

// Play scores and removes the given cards as one transaction: detect the
// hand, clear the slots, compact each column downward, refill from the
// deck top-down, then re-run the game-over sweep. A selection that forms
// no hand fails without mutating the board.
func (b *Board) Play(cards []poker.Card) PlayResult {
	hand, ok := poker.DetectHand(cards)
	if !ok {
		b.logger.Debug("invalid play", "cards", len(cards))
		return PlayResult{GameOver: b.over}
	}

	removed := b.removeCards(cards)
	b.discarded += removed
	b.score += hand.Score()
	b.shiftDown()
	b.refill()
	b.refreshGameOver()

	b.logger.Debug("played hand",
		"hand", hand,
		"points", hand.Score(),
		"score", b.score,
		"deck", b.deck.Remaining(),
		"gameOver", b.over)

	return PlayResult{
		Success:    true,
		Hand:       hand,
		ScoreDelta: hand.Score(),
		GameOver:   b.over,
	}
}

func (b *Board) removeCards(cards []poker.Card) int {
	removed := 0
	for _, card := range cards {
		if pos, ok := b.PositionOf(card.ID); ok {
			b.slots[pos.Row][pos.Col] = nil
			removed++
		}
	}
	return removed
}

// shiftDown compacts each column toward the bottom row, preserving the
// relative top-to-bottom order of its cards and leaving gaps at the top.
func (b *Board) shiftDown() {
	for col := 0; col < GridSize; col++ {
		write := GridSize - 1
		for row := GridSize - 1; row >= 0; row-- {
			if b.slots[row][col] == nil {
				continue
			}
			if write != row {
				b.slots[write][col] = b.slots[row][col]
				b.slots[row][col] = nil
			}
			write--
		}
	}
}

// refill draws into empty slots column by column, top down. An exhausted
// deck leaves the remaining slots empty for the rest of the game.
func (b *Board) refill() {
	for col := 0; col < GridSize; col++ {
		for row := 0; row < GridSize; row++ {
			if b.slots[row][col] != nil {
				continue
			}
			card, ok := b.deck.Draw()
			if !ok {
				return
			}
			c := card
			b.slots[row][col] = &c
		}
	}
}

func (b *Board) refreshGameOver() {
	b.over = !b.hasScorableMove()
}
