package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/pokergrid/internal/randutil"
	"github.com/lox/pokergrid/poker"
)

// Engine is the command surface consumed by a presentation layer. It owns
// the board, the deck and the active selection for one game session and
// recomputes the derived views (eligibility, connection layout) after
// every mutating call. All methods are synchronous; nothing here touches
// the wall clock.
type Engine struct {
	seed   int64
	board  *Board
	sel    *Selection
	conns  []Connection
	logger *log.Logger
}

// New creates an engine for a fresh game determined entirely by seed
func New(seed int64, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	deck := poker.NewDeck(randutil.New(seed))
	board := NewBoard(deck, logger)
	board.DealInitial()

	e := &Engine{
		seed:   seed,
		board:  board,
		sel:    NewSelection(board),
		logger: logger,
	}
	e.logger.Debug("new game", "seed", seed, "deck", board.DeckRemaining())
	return e
}

// Seed returns the seed this game was created with
func (e *Engine) Seed() int64 {
	return e.seed
}

// Reset starts a new game: fresh shuffle from the same RNG stream, empty
// selection, zero score.
func (e *Engine) Reset() {
	e.board.Reset()
	e.sel.Clear()
	e.conns = nil
}

// SelectCard applies a tap on the card with the given identity and
// returns how the tap was resolved. The connection layout is rebuilt
// wholesale on every change.
func (e *Engine) SelectCard(id uuid.UUID) TapResult {
	result := e.sel.Toggle(id)
	e.conns = BuildConnections(e.board, e.sel)
	e.logger.Debug("tap", "result", result, "selected", e.sel.Len())
	return result
}

// Play attempts to score the current selection. On failure the board is
// untouched; either way the selection is emptied, never left partial.
func (e *Engine) Play() PlayResult {
	cards := e.sel.Cards()
	if len(cards) == 0 {
		return PlayResult{GameOver: e.board.IsGameOver()}
	}

	result := e.board.Play(cards)
	e.sel.Clear()
	e.conns = nil
	return result
}

// CardAt returns the card occupying pos
func (e *Engine) CardAt(pos Position) (poker.Card, bool) {
	return e.board.CardAt(pos)
}

// Selected returns the selected cards in tap order
func (e *Engine) Selected() []poker.Card {
	return e.sel.Cards()
}

// IsSelected reports whether the card is part of the active selection
func (e *Engine) IsSelected(id uuid.UUID) bool {
	return e.sel.Contains(id)
}

// EligibleCards returns the identity set of cards a tap could add
func (e *Engine) EligibleCards() map[uuid.UUID]bool {
	return e.sel.Eligible()
}

// Connections returns the current visual layout over the selection
func (e *Engine) Connections() []Connection {
	out := make([]Connection, len(e.conns))
	copy(out, e.conns)
	return out
}

// CurrentHand returns the hand the selection would score, for preview
func (e *Engine) CurrentHand() (poker.HandType, bool) {
	return e.sel.CurrentHand()
}

// Score returns the running total
func (e *Engine) Score() int {
	return e.board.Score()
}

// IsGameOver reports whether any scorable move remains
func (e *Engine) IsGameOver() bool {
	return e.board.IsGameOver()
}

// DeckRemaining returns the number of cards still in the deck
func (e *Engine) DeckRemaining() int {
	return e.board.DeckRemaining()
}

// Board returns the owned board for read access
func (e *Engine) Board() *Board {
	return e.board
}
