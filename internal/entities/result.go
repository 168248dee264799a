package entities

import "time"

// SuitBonuses holds the per-suit affinity scores for one resolution
type SuitBonuses struct {
	Spades   int32 `json:"spades"`
	Hearts   int32 `json:"hearts"`
	Clubs    int32 `json:"clubs"`
	Diamonds int32 `json:"diamonds"`
}

// Total returns the sum of the four suit bonuses
func (b SuitBonuses) Total() int32 {
	return b.Spades + b.Hearts + b.Clubs + b.Diamonds
}

// Rewards is the bundle granted by one resolution
type Rewards struct {
	XP    int32    `json:"xp"`
	Gold  int32    `json:"gold"`
	Items []string `json:"items,omitempty"`
}

// ActionResult is the immutable record of one resolved action. It is
// constructed atomically by the resolution orchestrator and never mutated;
// TotalScore always equals HandScore plus the sum of the suit bonuses.
type ActionResult struct {
	ID              string      `json:"id"`
	CharacterID     string      `json:"character_id"`
	ActionID        string      `json:"action_id"`
	CardsDrawn      []Card      `json:"cards_drawn"`
	HandRank        HandRank    `json:"hand_rank"`
	HandScore       int32       `json:"hand_score"`
	HandDescription string      `json:"hand_description"`
	SuitBonuses     SuitBonuses `json:"suit_bonuses"`
	TotalScore      int32       `json:"total_score"`
	Success         bool        `json:"success"`
	RewardsGained   Rewards     `json:"rewards_gained"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CareerStats holds a character's lifetime resolution counters
type CareerStats struct {
	CharacterID      string `json:"character_id"`
	ActionsAttempted int64  `json:"actions_attempted"`
	ActionsSucceeded int64  `json:"actions_succeeded"`
	XPEarned         int64  `json:"xp_earned"`
	GoldEarned       int64  `json:"gold_earned"`
}
