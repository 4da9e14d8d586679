package game

import (
	"github.com/google/uuid"

	"github.com/lox/pokergrid/poker"
)

// MaxSelection is the largest hand the player can assemble
const MaxSelection = 5

// TapResult tells the caller how a tap on a card was resolved, so the
// presentation layer can pick the matching feedback cue.
type TapResult int

const (
	// TapRejected means the tap changed nothing: the card was ineligible
	// and no selection was active.
	TapRejected TapResult = iota
	// TapAccepted means the card joined the selection.
	TapAccepted
	// TapCleared means the whole selection was dropped, either by tapping
	// an already-selected card or by tapping away from the selection.
	TapCleared
)

func (tr TapResult) String() string {
	switch tr {
	case TapRejected:
		return "rejected"
	case TapAccepted:
		return "accepted"
	case TapCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Selection tracks the cards currently chosen on a board, in tap order.
// The induced adjacency subgraph over the selection is connected at all
// times: a card can only join if it touches one already selected.
type Selection struct {
	board   *Board
	order   []poker.Card
	members map[uuid.UUID]bool
}

// NewSelection creates an empty selection over the given board
func NewSelection(board *Board) *Selection {
	return &Selection{
		board:   board,
		members: make(map[uuid.UUID]bool),
	}
}

// Toggle applies a tap on the card with the given identity. Tapping a
// selected card clears the entire selection rather than removing just
// that card; tapping an ineligible card while a selection is active also
// clears it (tap-away-to-cancel).
func (s *Selection) Toggle(id uuid.UUID) TapResult {
	if s.members[id] {
		s.Clear()
		return TapCleared
	}

	if s.isEligibleID(id) {
		pos, _ := s.board.PositionOf(id)
		card, _ := s.board.CardAt(pos)
		s.order = append(s.order, card)
		s.members[id] = true
		return TapAccepted
	}

	if len(s.order) > 0 {
		s.Clear()
		return TapCleared
	}
	return TapRejected
}

// isEligibleID reports whether the card may currently join the selection
func (s *Selection) isEligibleID(id uuid.UUID) bool {
	if len(s.order) >= MaxSelection {
		return false
	}
	pos, ok := s.board.PositionOf(id)
	if !ok {
		return false
	}
	if len(s.order) == 0 {
		return true
	}
	return s.adjacentToSelection(pos)
}

func (s *Selection) adjacentToSelection(pos Position) bool {
	for _, card := range s.order {
		selPos, ok := s.board.PositionOf(card.ID)
		if !ok {
			continue
		}
		if Adjacent(pos, selPos) {
			return true
		}
	}
	return false
}

// Eligible returns the identity set of every board card that could join
// the selection right now.
func (s *Selection) Eligible() map[uuid.UUID]bool {
	eligible := make(map[uuid.UUID]bool)
	for _, pos := range s.board.OccupiedPositions() {
		card, _ := s.board.CardAt(pos)
		if s.members[card.ID] {
			continue
		}
		if s.isEligibleID(card.ID) {
			eligible[card.ID] = true
		}
	}
	return eligible
}

// Cards returns the selected cards in tap order
func (s *Selection) Cards() []poker.Card {
	out := make([]poker.Card, len(s.order))
	copy(out, s.order)
	return out
}

// Contains reports whether the card is currently selected
func (s *Selection) Contains(id uuid.UUID) bool {
	return s.members[id]
}

// Len returns the selection size
func (s *Selection) Len() int {
	return len(s.order)
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.order = s.order[:0]
	for id := range s.members {
		delete(s.members, id)
	}
}

// CurrentHand returns the hand the selection would score right now, for
// live preview text.
func (s *Selection) CurrentHand() (poker.HandType, bool) {
	return poker.DetectHand(s.order)
}
