package engine

import "github.com/destinyrpg/destiny-api/internal/entities"

// ScoreSuits applies an action's suit weight table to a drawn hand. Each
// suit's bonus is simply its card count times its configured weight; suits
// are independent, with no cross-suit combination logic.
func ScoreSuits(cards []entities.Card, weights entities.SuitWeights) entities.SuitBonuses {
	counts := make(map[entities.Suit]int32, len(entities.AllSuits))
	for _, c := range cards {
		counts[c.Suit]++
	}

	return entities.SuitBonuses{
		Spades:   counts[entities.SuitSpades] * weights.Spades,
		Hearts:   counts[entities.SuitHearts] * weights.Hearts,
		Clubs:    counts[entities.SuitClubs] * weights.Clubs,
		Diamonds: counts[entities.SuitDiamonds] * weights.Diamonds,
	}
}
