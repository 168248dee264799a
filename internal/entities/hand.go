package entities

// HandRank is the closed enumeration of poker-style hand categories, ordered
// weakest to strongest. A higher category always outranks a lower one
// regardless of card values.
type HandRank int32

// Hand categories. Straight and flush families require at least five cards
// in the hand; smaller hands top out at four of a kind.
const (
	HandRankHighCard HandRank = iota + 1
	HandRankPair
	HandRankTwoPair
	HandRankThreeOfAKind
	HandRankStraight
	HandRankFlush
	HandRankFullHouse
	HandRankFourOfAKind
	HandRankStraightFlush
	HandRankRoyalFlush
)

var handRankNames = map[HandRank]string{
	HandRankHighCard:      "high_card",
	HandRankPair:          "pair",
	HandRankTwoPair:       "two_pair",
	HandRankThreeOfAKind:  "three_of_a_kind",
	HandRankStraight:      "straight",
	HandRankFlush:         "flush",
	HandRankFullHouse:     "full_house",
	HandRankFourOfAKind:   "four_of_a_kind",
	HandRankStraightFlush: "straight_flush",
	HandRankRoyalFlush:    "royal_flush",
}

// String returns the wire name of the hand rank
func (r HandRank) String() string {
	if name, ok := handRankNames[r]; ok {
		return name
	}
	return "unknown"
}

// CategoryWeight is the multiplier applied to the category when computing a
// hand's base score: baseScore = CategoryWeight*100 + tiebreak.
func (r HandRank) CategoryWeight() int32 {
	return int32(r)
}

// RewardTier groups hand ranks for reward lookup
type RewardTier string

// Reward tiers
const (
	TierCommon    RewardTier = "common"
	TierRare      RewardTier = "rare"
	TierLegendary RewardTier = "legendary"
)

// Tier returns the reward tier this hand rank belongs to
func (r HandRank) Tier() RewardTier {
	switch {
	case r >= HandRankFourOfAKind:
		return TierLegendary
	case r >= HandRankThreeOfAKind:
		return TierRare
	default:
		return TierCommon
	}
}
