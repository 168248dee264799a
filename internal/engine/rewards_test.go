package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/destinyrpg/destiny-api/internal/engine"
	"github.com/destinyrpg/destiny-api/internal/entities"
)

func testRewardTable() entities.RewardTable {
	return entities.RewardTable{
		Success: map[entities.RewardTier]entities.RewardSpec{
			entities.TierCommon: {
				XP: 10, Gold: 5,
				XPPerMargin: 2, GoldPerMargin: 1, MarginCap: 20,
			},
			entities.TierLegendary: {
				XP: 100, Gold: 50, Items: []string{"golden_pelt"},
				XPPerMargin: 5, GoldPerMargin: 2, MarginCap: 20,
			},
		},
		Failure: map[entities.RewardTier]entities.RewardSpec{
			entities.TierCommon: {XP: 2},
		},
	}
}

func TestCalculateReward_BaseLookup(t *testing.T) {
	rewards := engine.CalculateReward(true, entities.HandRankPair, 0, testRewardTable())
	assert.Equal(t, entities.Rewards{XP: 10, Gold: 5}, rewards)

	rewards = engine.CalculateReward(true, entities.HandRankRoyalFlush, 0, testRewardTable())
	assert.Equal(t, int32(100), rewards.XP)
	assert.Equal(t, []string{"golden_pelt"}, rewards.Items)
}

func TestCalculateReward_MarginScaling(t *testing.T) {
	rewards := engine.CalculateReward(true, entities.HandRankPair, 10, testRewardTable())
	assert.Equal(t, int32(10+2*10), rewards.XP)
	assert.Equal(t, int32(5+1*10), rewards.Gold)
}

func TestCalculateReward_MarginCapped(t *testing.T) {
	capped := engine.CalculateReward(true, entities.HandRankPair, 20, testRewardTable())
	beyond := engine.CalculateReward(true, entities.HandRankPair, 500, testRewardTable())
	assert.Equal(t, capped, beyond)
}

func TestCalculateReward_MonotoneInMargin(t *testing.T) {
	table := testRewardTable()

	prev := engine.CalculateReward(true, entities.HandRankPair, 0, table)
	for margin := int32(1); margin <= 40; margin++ {
		cur := engine.CalculateReward(true, entities.HandRankPair, margin, table)
		assert.GreaterOrEqual(t, cur.XP, prev.XP, "margin %d", margin)
		assert.GreaterOrEqual(t, cur.Gold, prev.Gold, "margin %d", margin)
		prev = cur
	}
}

func TestCalculateReward_FailureConsolation(t *testing.T) {
	rewards := engine.CalculateReward(false, entities.HandRankHighCard, -15, testRewardTable())
	assert.Equal(t, entities.Rewards{XP: 2}, rewards)
}

func TestCalculateReward_MissingCellPaysNothing(t *testing.T) {
	rewards := engine.CalculateReward(false, entities.HandRankFourOfAKind, -1, testRewardTable())
	assert.Equal(t, entities.Rewards{}, rewards)
}

func TestCalculateReward_IsDeterministic(t *testing.T) {
	table := testRewardTable()
	first := engine.CalculateReward(true, entities.HandRankFlush, 12, table)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.CalculateReward(true, entities.HandRankFlush, 12, table))
	}
}
