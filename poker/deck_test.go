package poker

import (
	"testing"

	"github.com/lox/pokergrid/internal/randutil"
)

func TestNewDeckContainsAll52(t *testing.T) {
	d := NewDeck(randutil.New(1))

	seen := make(map[Suit]map[Rank]bool)
	count := 0
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		if seen[card.Suit] == nil {
			seen[card.Suit] = make(map[Rank]bool)
		}
		if seen[card.Suit][card.Rank] {
			t.Fatalf("duplicate card drawn: %s", card)
		}
		seen[card.Suit][card.Rank] = true
		count++
	}

	if count != 52 {
		t.Errorf("drew %d cards, want 52", count)
	}
}

func TestDrawFromEmptyDeck(t *testing.T) {
	d := NewDeck(randutil.New(1))
	for i := 0; i < 52; i++ {
		if _, ok := d.Draw(); !ok {
			t.Fatalf("deck empty after %d draws", i)
		}
	}

	if _, ok := d.Draw(); ok {
		t.Error("Draw on an empty deck should report no card")
	}
	if !d.IsEmpty() {
		t.Error("deck should be empty after 52 draws")
	}
}

func TestDeckShuffleIsDeterministic(t *testing.T) {
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))

	for i := 0; i < 52; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca.Suit != cb.Suit || ca.Rank != cb.Rank {
			t.Fatalf("draw %d differs for identical seeds: %s vs %s", i, ca, cb)
		}
	}
}

func TestDeckResetRestoresFullDeck(t *testing.T) {
	d := NewDeck(randutil.New(7))
	for i := 0; i < 30; i++ {
		d.Draw()
	}

	d.Reset()
	if got := d.Remaining(); got != 52 {
		t.Errorf("Remaining after Reset = %d, want 52", got)
	}
}

func TestCardIdentityIsUnique(t *testing.T) {
	d := NewDeck(randutil.New(3))
	a, _ := d.Draw()
	d.Reset()

	// The same (suit, rank) in a fresh deck is a different physical card.
	for {
		b, ok := d.Draw()
		if !ok {
			break
		}
		if b.Suit == a.Suit && b.Rank == a.Rank && b.ID == a.ID {
			t.Fatalf("card %s reused its identity across decks", b)
		}
	}
}
