package poker

import "sort"

// DetectHand returns the best-scoring category whose cardinality matches
// len(cards) and whose structure the cards satisfy. Only the categories
// registered for that exact size are considered: three cards can never
// make a Pair or a Flush. The second return value is false when nothing
// matches (including any size outside 2..5).
func DetectHand(cards []Card) (HandType, bool) {
	candidates, ok := candidatesBySize[len(cards)]
	if !ok {
		return 0, false
	}
	for _, ht := range candidates {
		if matchesHand(ht, cards) {
			return ht, true
		}
	}
	return 0, false
}

func matchesHand(ht HandType, cards []Card) bool {
	switch ht {
	case Pair:
		return multiplicities(cards, 2) == 1
	case ThreeOfAKind:
		return multiplicities(cards, 3) == 1
	case FourOfAKind:
		return multiplicities(cards, 4) == 1
	case TwoPair:
		return multiplicities(cards, 2) == 2
	case FullHouse:
		return multiplicities(cards, 3) == 1 && multiplicities(cards, 2) == 1
	case Flush, MiniFlush, NearlyFlush:
		return sameSuit(cards)
	case Straight, MiniStraight, NearlyStraight:
		return isRun(cards)
	case StraightFlush, MiniStraightFlush, NearlyStraightFlush:
		return sameSuit(cards) && isRun(cards)
	case RoyalFlush, MiniRoyalFlush, NearlyRoyalFlush:
		return sameSuit(cards) && isRoyalRun(cards)
	default:
		return false
	}
}

// multiplicities counts how many distinct ranks appear exactly n times
func multiplicities(cards []Card, n int) int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	var hits int
	for _, count := range counts {
		if count == n {
			hits++
		}
	}
	return hits
}

func sameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isRun reports whether the ranks form a run of consecutive values. The
// Ace is tried high first, then low; it never counts as both ends of the
// same hand.
func isRun(cards []Card) bool {
	ranks := make([]int, len(cards))
	hasAce := false
	for i, c := range cards {
		ranks[i] = int(c.Rank)
		if c.Rank == Ace {
			hasAce = true
		}
	}
	if consecutive(ranks) {
		return true
	}
	if !hasAce {
		return false
	}
	for i, r := range ranks {
		if r == int(Ace) {
			ranks[i] = 1
		}
	}
	return consecutive(ranks)
}

// isRoyalRun reports whether the ranks are exactly the top len(cards)
// consecutive ranks ending at Ace (A-K-Q-J-T for five, A-K-Q for three).
func isRoyalRun(cards []Card) bool {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	sort.Ints(ranks)
	want := int(Ace) - len(ranks) + 1
	for _, r := range ranks {
		if r != want {
			return false
		}
		want++
	}
	return true
}

func consecutive(ranks []int) bool {
	sorted := make([]int, len(ranks))
	copy(sorted, ranks)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}
