package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/destinyrpg/destiny-api/internal/entities"
)

func TestHandRank_Tier(t *testing.T) {
	tests := []struct {
		rank entities.HandRank
		tier entities.RewardTier
	}{
		{entities.HandRankHighCard, entities.TierCommon},
		{entities.HandRankPair, entities.TierCommon},
		{entities.HandRankTwoPair, entities.TierCommon},
		{entities.HandRankThreeOfAKind, entities.TierRare},
		{entities.HandRankStraight, entities.TierRare},
		{entities.HandRankFlush, entities.TierRare},
		{entities.HandRankFullHouse, entities.TierRare},
		{entities.HandRankFourOfAKind, entities.TierLegendary},
		{entities.HandRankStraightFlush, entities.TierLegendary},
		{entities.HandRankRoyalFlush, entities.TierLegendary},
	}

	for _, tc := range tests {
		t.Run(tc.rank.String(), func(t *testing.T) {
			assert.Equal(t, tc.tier, tc.rank.Tier())
		})
	}
}

func TestHandRank_Ordering(t *testing.T) {
	assert.Greater(t, entities.HandRankRoyalFlush, entities.HandRankStraightFlush)
	assert.Greater(t, entities.HandRankFlush, entities.HandRankStraight)
	assert.Equal(t, int32(1), entities.HandRankHighCard.CategoryWeight())
	assert.Equal(t, int32(10), entities.HandRankRoyalFlush.CategoryWeight())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "King of Spades", entities.Card{Suit: entities.SuitSpades, Rank: 13}.String())
	assert.Equal(t, "Ace of Hearts", entities.Card{Suit: entities.SuitHearts, Rank: entities.RankAce}.String())
}

func TestRankPlural(t *testing.T) {
	assert.Equal(t, "Sixes", entities.RankPlural(6))
	assert.Equal(t, "Kings", entities.RankPlural(13))
	assert.Equal(t, "Aces", entities.RankPlural(14))
}

func TestSuitWeights_Weight(t *testing.T) {
	w := entities.SuitWeights{Spades: 2, Hearts: 1}

	assert.Equal(t, int32(2), w.Weight(entities.SuitSpades))
	assert.Equal(t, int32(1), w.Weight(entities.SuitHearts))
	assert.Zero(t, w.Weight(entities.SuitClubs))
}

func TestRewardTable_Lookup(t *testing.T) {
	table := entities.RewardTable{
		Success: map[entities.RewardTier]entities.RewardSpec{
			entities.TierCommon: {XP: 10},
		},
		Failure: map[entities.RewardTier]entities.RewardSpec{
			entities.TierCommon: {XP: 2},
		},
	}

	assert.Equal(t, int32(10), table.Lookup(true, entities.TierCommon).XP)
	assert.Equal(t, int32(2), table.Lookup(false, entities.TierCommon).XP)
	assert.Zero(t, table.Lookup(true, entities.TierLegendary).XP)
}
