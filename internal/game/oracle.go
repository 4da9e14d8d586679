package game

import "github.com/lox/pokergrid/poker"

// hasScorableMove exhaustively searches the remaining board cards for any
// connected subset of 2-5 that forms a hand. It short-circuits on the
// first hit; the worst case on a full board is C(25,5) five-card
// combinations plus the smaller sizes, which is why the sweep runs only
// after a deal or a successful play.
func (b *Board) hasScorableMove() bool {
	positions := b.OccupiedPositions()
	cards := make([]poker.Card, len(positions))
	for i, pos := range positions {
		cards[i] = *b.slots[pos.Row][pos.Col]
	}

	combo := make([]poker.Card, 0, 5)
	for n := 2; n <= 5 && n <= len(positions); n++ {
		found := forEachCombination(len(positions), n, func(idx []int) bool {
			if !subsetConnected(positions, idx) {
				return false
			}
			combo = combo[:0]
			for _, i := range idx {
				combo = append(combo, cards[i])
			}
			_, ok := poker.DetectHand(combo)
			return ok
		})
		if found {
			return true
		}
	}
	return false
}

// BestMove returns the highest-scoring connected subset currently
// playable, for auto-play and analysis. The search is deterministic:
// positions are visited row-major and combinations lexicographically, so
// equal-scoring candidates resolve to the first found. ok is false when
// no playable move exists.
func (b *Board) BestMove() ([]poker.Card, poker.HandType, bool) {
	positions := b.OccupiedPositions()
	cards := make([]poker.Card, len(positions))
	for i, pos := range positions {
		cards[i] = *b.slots[pos.Row][pos.Col]
	}

	var (
		bestCards []poker.Card
		bestHand  poker.HandType
		found     bool
	)
	combo := make([]poker.Card, 0, 5)
	for n := 2; n <= 5 && n <= len(positions); n++ {
		forEachCombination(len(positions), n, func(idx []int) bool {
			if !subsetConnected(positions, idx) {
				return false
			}
			combo = combo[:0]
			for _, i := range idx {
				combo = append(combo, cards[i])
			}
			hand, ok := poker.DetectHand(combo)
			if ok && (!found || hand.Score() > bestHand.Score()) {
				bestCards = append([]poker.Card(nil), combo...)
				bestHand = hand
				found = true
			}
			return false
		})
	}
	return bestCards, bestHand, found
}

// forEachCombination visits every k-combination of {0..n-1} in
// lexicographic order, stopping early when visit returns true.
func forEachCombination(n, k int, visit func(idx []int) bool) bool {
	if k > n {
		return false
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if visit(idx) {
			return true
		}
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return false
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// subsetConnected reports whether the chosen positions form a connected
// subgraph under the board adjacency predicate, via breadth-first
// traversal over just that subset.
func subsetConnected(positions []Position, idx []int) bool {
	if len(idx) == 0 {
		return false
	}
	visited := make([]bool, len(idx))
	queue := []int{0}
	visited[0] = true
	seen := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := range idx {
			if visited[i] {
				continue
			}
			if Adjacent(positions[idx[cur]], positions[idx[i]]) {
				visited[i] = true
				seen++
				queue = append(queue, i)
			}
		}
	}
	return seen == len(idx)
}
