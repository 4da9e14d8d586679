package poker

// HandType enumerates the scorable hand categories, ordered from weakest
// to strongest. Each category only applies to selections of exactly its
// Size: the 3- and 4-card "mini" and "nearly" families are scaled-down
// analogues of the canonical 5-card hands.
type HandType int

const (
	Pair HandType = iota
	MiniStraight
	MiniFlush
	MiniStraightFlush
	MiniRoyalFlush
	ThreeOfAKind
	TwoPair
	NearlyStraight
	NearlyFlush
	NearlyStraightFlush
	NearlyRoyalFlush
	FourOfAKind
	Straight
	Flush
	FullHouse
	StraightFlush
	RoyalFlush
)

// handInfo is the fixed score and required cardinality for a category
type handInfo struct {
	name  string
	score int
	size  int
}

var handInfos = map[HandType]handInfo{
	Pair:                {"Pair", 15, 2},
	MiniStraight:        {"Mini Straight", 25, 3},
	MiniFlush:           {"Mini Flush", 30, 3},
	MiniStraightFlush:   {"Mini Straight Flush", 35, 3},
	MiniRoyalFlush:      {"Mini Royal Flush", 40, 3},
	ThreeOfAKind:        {"Three of a Kind", 45, 3},
	TwoPair:             {"Two Pair", 50, 4},
	NearlyStraight:      {"Nearly Straight", 55, 4},
	NearlyFlush:         {"Nearly Flush", 60, 4},
	NearlyStraightFlush: {"Nearly Straight Flush", 65, 4},
	NearlyRoyalFlush:    {"Nearly Royal Flush", 70, 4},
	FourOfAKind:         {"Four of a Kind", 75, 4},
	Straight:            {"Straight", 80, 5},
	Flush:               {"Flush", 85, 5},
	FullHouse:           {"Full House", 90, 5},
	StraightFlush:       {"Straight Flush", 95, 5},
	RoyalFlush:          {"Royal Flush", 100, 5},
}

// String returns a human-readable hand description
func (ht HandType) String() string {
	if info, ok := handInfos[ht]; ok {
		return info.name
	}
	return "Unknown"
}

// Score returns the points awarded for playing this hand
func (ht HandType) Score() int {
	return handInfos[ht].score
}

// Size returns the exact number of cards this hand requires
func (ht HandType) Size() int {
	return handInfos[ht].size
}

// candidatesBySize lists the categories eligible for each selection size,
// strongest first, so detection can take the first structural match.
var candidatesBySize = map[int][]HandType{
	2: {Pair},
	3: {ThreeOfAKind, MiniRoyalFlush, MiniStraightFlush, MiniFlush, MiniStraight},
	4: {FourOfAKind, NearlyRoyalFlush, NearlyStraightFlush, NearlyFlush, NearlyStraight, TwoPair},
	5: {RoyalFlush, StraightFlush, FullHouse, Flush, Straight},
}
