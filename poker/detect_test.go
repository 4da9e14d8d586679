package poker

import (
	"testing"
)

func TestDetectHand(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected HandType
		matched  bool
	}{
		// 2-card hands
		{"pair of fives", "5s5h", Pair, true},
		{"pair of aces", "AsAh", Pair, true},
		{"two unmatched cards", "5s6h", 0, false},
		{"suited cards are not a hand at two", "AsKs", 0, false},

		// 3-card hands
		{"three of a kind", "7s7h7d", ThreeOfAKind, true},
		{"mini royal flush", "AsKsQs", MiniRoyalFlush, true},
		{"mini straight flush", "9s8s7s", MiniStraightFlush, true},
		{"mini flush", "2sTs7s", MiniFlush, true},
		{"mini straight offsuit", "9s8hTd", MiniStraight, true},
		{"mini straight ace low", "As2h3d", MiniStraight, true},
		{"mini straight ace high", "QsKhAd", MiniStraight, true},
		{"pair within three cards is nothing", "5s5h9d", 0, false},

		// 4-card hands
		{"four of a kind", "QsQhQdQc", FourOfAKind, true},
		{"nearly royal flush", "AhKhQhJh", NearlyRoyalFlush, true},
		{"nearly straight flush", "6d5d4d3d", NearlyStraightFlush, true},
		{"nearly flush", "2c9cJcKc", NearlyFlush, true},
		{"nearly straight offsuit", "8s9hTdJc", NearlyStraight, true},
		{"nearly straight ace low", "As2h3d4c", NearlyStraight, true},
		{"two pair", "5s5hJdJc", TwoPair, true},
		{"trips plus kicker is nothing at four", "7s7h7d2c", 0, false},

		// 5-card hands
		{"royal flush", "AsKsQsJsTs", RoyalFlush, true},
		{"straight flush", "9h8h7h6h5h", StraightFlush, true},
		{"steel wheel is not royal", "5c4c3c2cAc", StraightFlush, true},
		{"full house", "8s8h8dKcKs", FullHouse, true},
		{"flush", "As2s7s9sJs", Flush, true},
		{"straight offsuit", "TsJhQdKcAs", Straight, true},
		{"wheel straight", "As2h3d4c5s", Straight, true},
		{"nothing at five", "2s7hJd9cKs", 0, false},
		{"two pair at five is nothing", "5s5hJdJc2s", 0, false},

		// ace cannot wrap around
		{"wraparound is not a straight", "KsAh2d", 0, false},
		{"wraparound at five is nothing", "QsKhAd2c3s", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.cards)
			if err != nil {
				t.Fatalf("failed to parse cards %q: %v", tt.cards, err)
			}

			hand, ok := DetectHand(cards)
			if ok != tt.matched {
				t.Fatalf("DetectHand(%s) matched = %v, want %v", tt.cards, ok, tt.matched)
			}
			if ok && hand != tt.expected {
				t.Errorf("DetectHand(%s) = %s, want %s", tt.cards, hand, tt.expected)
			}
		})
	}
}

func TestDetectHandRejectsBadSizes(t *testing.T) {
	cards, err := ParseCards("AsKsQsJsTs9s")
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range []int{0, 1, 6} {
		if _, ok := DetectHand(cards[:size]); ok {
			t.Errorf("DetectHand with %d cards should never match", size)
		}
	}
}

func TestDetectHandSizeAgreement(t *testing.T) {
	// Whatever matches must require exactly the number of cards given.
	hands := []string{"5s5h", "9s8hTd", "5s5hJdJc", "TsJhQdKcAs", "AsKsQs", "AhKhQhJh"}
	for _, s := range hands {
		cards, err := ParseCards(s)
		if err != nil {
			t.Fatal(err)
		}
		hand, ok := DetectHand(cards)
		if !ok {
			t.Fatalf("expected %q to match", s)
		}
		if hand.Size() != len(cards) {
			t.Errorf("DetectHand(%s) = %s with size %d, want %d", s, hand, hand.Size(), len(cards))
		}
	}
}

func TestHandScores(t *testing.T) {
	tests := []struct {
		hand  HandType
		score int
		size  int
	}{
		{Pair, 15, 2},
		{MiniStraight, 25, 3},
		{MiniFlush, 30, 3},
		{MiniStraightFlush, 35, 3},
		{MiniRoyalFlush, 40, 3},
		{ThreeOfAKind, 45, 3},
		{TwoPair, 50, 4},
		{NearlyStraight, 55, 4},
		{NearlyFlush, 60, 4},
		{NearlyStraightFlush, 65, 4},
		{NearlyRoyalFlush, 70, 4},
		{FourOfAKind, 75, 4},
		{Straight, 80, 5},
		{Flush, 85, 5},
		{FullHouse, 90, 5},
		{StraightFlush, 95, 5},
		{RoyalFlush, 100, 5},
	}

	for _, tt := range tests {
		if got := tt.hand.Score(); got != tt.score {
			t.Errorf("%s.Score() = %d, want %d", tt.hand, got, tt.score)
		}
		if got := tt.hand.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.hand, got, tt.size)
		}
	}
}

func TestCandidateOrderStrongestFirst(t *testing.T) {
	for size, candidates := range candidatesBySize {
		for i := 1; i < len(candidates); i++ {
			if candidates[i-1].Score() <= candidates[i].Score() {
				t.Errorf("size %d candidates out of order: %s (%d) before %s (%d)",
					size, candidates[i-1], candidates[i-1].Score(), candidates[i], candidates[i].Score())
			}
		}
	}
}
