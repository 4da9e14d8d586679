package game

import (
	"sort"

	"github.com/google/uuid"
)

// Connection is one visual line segment between two selected cards. The
// layout exists purely for presentation styling; it never feeds back into
// scoring or board state.
type Connection struct {
	From     uuid.UUID
	To       uuid.UUID
	Straight bool
}

// edge is a candidate segment between selection-order indices i < j
type edge struct {
	i, j     int
	straight bool
}

// BuildConnections reduces the selection to a minimal straight-preferring
// edge set: Kruskal's algorithm over the adjacency-candidate edges with
// weight 0 for same-row-or-column pairs and 1 for diagonals, then a pass
// that reroutes diagonals through an intermediate card where two straight
// segments can stand in, and finally an attachment pass so no selected
// card is left without an incident segment.
//
// Ties between equal-weight edges resolve by the selection-order index of
// the endpoints, so the output is reproducible for a given tap sequence.
func BuildConnections(b *Board, sel *Selection) []Connection {
	cards := sel.Cards()
	if len(cards) < 2 {
		return nil
	}

	positions := make([]Position, len(cards))
	for i, card := range cards {
		pos, ok := b.PositionOf(card.ID)
		if !ok {
			return nil
		}
		positions[i] = pos
	}

	straight := func(i, j int) bool {
		return positions[i].Row == positions[j].Row || positions[i].Col == positions[j].Col
	}

	// Candidate edges in (i, j) lexicographic order.
	var candidates []edge
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if Adjacent(positions[i], positions[j]) {
				candidates = append(candidates, edge{i: i, j: j, straight: straight(i, j)})
			}
		}
	}

	// Straight edges first; the stable sort keeps the lexicographic order
	// within each weight class.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].straight && !candidates[b].straight
	})

	uf := newUnionFind(len(cards))
	var spanning []edge
	for _, e := range candidates {
		if uf.union(e.i, e.j) {
			spanning = append(spanning, e)
		}
	}

	spanning = straightenDiagonals(spanning, positions, straight)
	spanning = attachIsolated(spanning, positions, straight)

	connections := make([]Connection, len(spanning))
	for i, e := range spanning {
		connections[i] = Connection{
			From:     cards[e.i].ID,
			To:       cards[e.j].ID,
			Straight: e.straight,
		}
	}
	return connections
}

// straightenDiagonals replaces every diagonal edge that has a third
// selected card adjacent to both endpoints via straight segments with the
// two segments through that card. All replaceable diagonals are rerouted,
// not just the first found.
func straightenDiagonals(spanning []edge, positions []Position, straight func(i, j int) bool) []edge {
	present := make(map[[2]int]bool, len(spanning))
	for _, e := range spanning {
		present[[2]int{e.i, e.j}] = true
	}

	var out []edge
	for _, e := range spanning {
		if e.straight {
			out = append(out, e)
			continue
		}

		replaced := false
		for k := range positions {
			if k == e.i || k == e.j {
				continue
			}
			if !Adjacent(positions[k], positions[e.i]) || !Adjacent(positions[k], positions[e.j]) {
				continue
			}
			if !straight(k, e.i) || !straight(k, e.j) {
				continue
			}
			delete(present, [2]int{e.i, e.j})
			for _, pair := range [][2]int{normalizePair(k, e.i), normalizePair(k, e.j)} {
				if !present[pair] {
					present[pair] = true
					out = append(out, edge{i: pair[0], j: pair[1], straight: true})
				}
			}
			replaced = true
			break
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}

// attachIsolated gives any selected card with no incident segment a
// connection to its nearest peer, preferring straight segments, then
// shorter ones, then earlier tap order.
func attachIsolated(spanning []edge, positions []Position, straight func(i, j int) bool) []edge {
	degree := make([]int, len(positions))
	for _, e := range spanning {
		degree[e.i]++
		degree[e.j]++
	}

	for i := range positions {
		if degree[i] > 0 {
			continue
		}

		best := -1
		bestStraight := false
		bestDist := 0
		for j := range positions {
			if j == i {
				continue
			}
			dist := chebyshev(positions[i], positions[j])
			st := straight(i, j)
			if best == -1 ||
				(st && !bestStraight) ||
				(st == bestStraight && dist < bestDist) {
				best, bestStraight, bestDist = j, st, dist
			}
		}
		if best == -1 {
			continue
		}

		pair := normalizePair(i, best)
		spanning = append(spanning, edge{i: pair[0], j: pair[1], straight: bestStraight})
		degree[i]++
		degree[best]++
	}
	return spanning
}

func normalizePair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func chebyshev(a, b Position) int {
	dr := absInt(a.Row - b.Row)
	dc := absInt(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// unionFind is a plain disjoint-set over selection indices
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing a and b, returning false when they
// were already joined.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}
