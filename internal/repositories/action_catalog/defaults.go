package actioncatalog

import "github.com/destinyrpg/destiny-api/internal/entities"

// DefaultActions is the seed catalog loaded on first boot. Content teams
// replace or extend these through the catalog; the engine never hardcodes
// action parameters.
func DefaultActions() []*entities.ActionDefinition {
	return []*entities.ActionDefinition{
		{
			ID:          "hunting",
			Name:        "Hunting",
			Description: "Track and bring down wild game.",
			CardsToDraw: 5,
			SuitWeights: entities.SuitWeights{Spades: 3, Clubs: 2},
			Threshold:   320,
			Rewards: entities.RewardTable{
				Success: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon:    {XP: 25, Gold: 10, XPPerMargin: 1, MarginCap: 50},
					entities.TierRare:      {XP: 60, Gold: 30, Items: []string{"thick_hide"}, XPPerMargin: 2, MarginCap: 50},
					entities.TierLegendary: {XP: 150, Gold: 80, Items: []string{"golden_pelt"}, XPPerMargin: 3, MarginCap: 50},
				},
				Failure: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon: {XP: 5},
					entities.TierRare:   {XP: 10},
				},
			},
		},
		{
			ID:          "foraging",
			Name:        "Foraging",
			Description: "Gather herbs and edible plants.",
			CardsToDraw: 3,
			SuitWeights: entities.SuitWeights{Hearts: 2, Diamonds: 2},
			Threshold:   210,
			Rewards: entities.RewardTable{
				Success: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon:    {XP: 15, Gold: 5, XPPerMargin: 1, MarginCap: 40},
					entities.TierRare:      {XP: 40, Gold: 15, Items: []string{"rare_herb"}, XPPerMargin: 1, MarginCap: 40},
					entities.TierLegendary: {XP: 90, Gold: 40, Items: []string{"moonpetal"}, XPPerMargin: 2, MarginCap: 40},
				},
				Failure: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon: {XP: 3},
				},
			},
		},
		{
			ID:          "stealth",
			Name:        "Stealth",
			Description: "Slip past watchful eyes unseen.",
			CardsToDraw: 4,
			SuitWeights: entities.SuitWeights{Spades: 5},
			Threshold:   260,
			Rewards: entities.RewardTable{
				Success: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon:    {XP: 30, XPPerMargin: 1, MarginCap: 30},
					entities.TierRare:      {XP: 70, Gold: 20, XPPerMargin: 2, MarginCap: 30},
					entities.TierLegendary: {XP: 160, Gold: 60, Items: []string{"shadow_cloak"}, XPPerMargin: 2, MarginCap: 30},
				},
			},
		},
		{
			ID:          "crafting",
			Name:        "Crafting",
			Description: "Work raw materials into finished goods.",
			CardsToDraw: 6,
			SuitWeights: entities.SuitWeights{Clubs: 3, Diamonds: 1},
			Threshold:   400,
			Rewards: entities.RewardTable{
				Success: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon:    {XP: 35, Gold: 15, XPPerMargin: 1, MarginCap: 60},
					entities.TierRare:      {XP: 80, Gold: 40, Items: []string{"fine_tools"}, XPPerMargin: 2, MarginCap: 60},
					entities.TierLegendary: {XP: 200, Gold: 120, Items: []string{"masterwork_blade"}, XPPerMargin: 3, MarginCap: 60},
				},
				Failure: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon: {XP: 8},
					entities.TierRare:   {XP: 15},
				},
			},
		},
		{
			ID:          "dueling",
			Name:        "Dueling",
			Description: "Cross blades in a formal duel.",
			CardsToDraw: 7,
			SuitWeights: entities.SuitWeights{Spades: 2, Hearts: 2},
			Threshold:   480,
			Rewards: entities.RewardTable{
				Success: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon:    {XP: 50, Gold: 25, XPPerMargin: 2, MarginCap: 60},
					entities.TierRare:      {XP: 110, Gold: 60, XPPerMargin: 2, MarginCap: 60},
					entities.TierLegendary: {XP: 250, Gold: 150, Items: []string{"champion_sigil"}, XPPerMargin: 4, MarginCap: 60},
				},
				Failure: map[entities.RewardTier]entities.RewardSpec{
					entities.TierCommon: {XP: 10},
				},
			},
		},
	}
}
