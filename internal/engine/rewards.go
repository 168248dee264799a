package engine

import "github.com/destinyrpg/destiny-api/internal/entities"

// CalculateReward looks up the payout for an outcome and scales it by the
// success margin. Margin below zero counts as zero, and margin scaling only
// applies up to the spec's MarginCap, so pathological suit-weight
// configurations cannot produce unbounded payouts. A zero MarginCap
// disables margin scaling entirely.
//
// Failing actions pay whatever the table's failure side configures for the
// hand tier, which is how actions grant consolation rewards.
func CalculateReward(success bool, handRank entities.HandRank, margin int32, table entities.RewardTable) entities.Rewards {
	spec := table.Lookup(success, handRank.Tier())

	if margin < 0 {
		margin = 0
	}
	if margin > spec.MarginCap {
		margin = spec.MarginCap
	}

	rewards := entities.Rewards{
		XP:   spec.XP + spec.XPPerMargin*margin,
		Gold: spec.Gold + spec.GoldPerMargin*margin,
	}
	if len(spec.Items) > 0 {
		rewards.Items = append([]string(nil), spec.Items...)
	}
	return rewards
}
