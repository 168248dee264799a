package entities

// SuitWeights is an action's per-suit score multiplier table. A zero weight
// means cards of that suit contribute nothing to the action's total.
type SuitWeights struct {
	Spades   int32 `json:"spades"`
	Hearts   int32 `json:"hearts"`
	Clubs    int32 `json:"clubs"`
	Diamonds int32 `json:"diamonds"`
}

// Weight returns the multiplier for a suit
func (w SuitWeights) Weight(s Suit) int32 {
	switch s {
	case SuitSpades:
		return w.Spades
	case SuitHearts:
		return w.Hearts
	case SuitClubs:
		return w.Clubs
	case SuitDiamonds:
		return w.Diamonds
	default:
		return 0
	}
}

// RewardSpec defines the payout for one (success, tier) cell of a reward
// table. Margin scaling is linear and capped: every point of margin up to
// MarginCap adds XPPerMargin experience and GoldPerMargin gold.
type RewardSpec struct {
	XP            int32    `json:"xp"`
	Gold          int32    `json:"gold"`
	Items         []string `json:"items,omitempty"`
	XPPerMargin   int32    `json:"xp_per_margin,omitempty"`
	GoldPerMargin int32    `json:"gold_per_margin,omitempty"`
	MarginCap     int32    `json:"margin_cap,omitempty"`
}

// RewardTable maps (success, reward tier) to a payout spec. Missing cells
// pay nothing, which is how actions opt out of consolation rewards.
type RewardTable struct {
	Success map[RewardTier]RewardSpec `json:"success"`
	Failure map[RewardTier]RewardSpec `json:"failure,omitempty"`
}

// Lookup returns the spec for the given outcome, or a zero spec when the
// table has no entry for it.
func (t RewardTable) Lookup(success bool, tier RewardTier) RewardSpec {
	if success {
		return t.Success[tier]
	}
	return t.Failure[tier]
}

// ActionDefinition describes how one player action resolves: how many cards
// to draw, how each suit is weighted, the score needed to succeed, and what
// it pays. Definitions are content, loaded from the catalog; the engine
// only validates CardsToDraw.
type ActionDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	CardsToDraw int32       `json:"cards_to_draw"`
	SuitWeights SuitWeights `json:"suit_weights"`
	Threshold   int32       `json:"threshold"`
	Rewards     RewardTable `json:"rewards"`
}
