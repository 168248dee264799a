// Package engine implements destiny deck scoring: poker-style hand
// evaluation, suit affinity bonuses, and reward calculation. Everything in
// this package is a pure function over the drawn cards, so replaying the
// same draw always produces the same outputs.
package engine

import (
	"fmt"

	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
)

// Evaluation is the scored classification of one drawn hand
type Evaluation struct {
	Rank        entities.HandRank
	Score       int32
	Description string
}

// Evaluate classifies a drawn hand into its best achievable category and
// computes its base score as CategoryWeight*100 + tiebreak, where the
// tiebreak is the sum of the distinct ranks forming the qualifying category
// (the paired rank for a pair, both pair ranks for two pair, the five run
// ranks for a straight, and so on). Kickers beyond the category are not
// distinguished.
//
// Hands with fewer than five cards cannot reach the straight or flush
// families; a single card is always High Card. The ace completes both the
// low run A-2-3-4-5 (counted as rank 1 in the tiebreak) and the high run
// 10-J-Q-K-A, but runs never wrap past the ace.
func Evaluate(cards []entities.Card) (*Evaluation, error) {
	if len(cards) == 0 {
		return nil, errors.Internal("unrankable hand: no cards to evaluate")
	}
	if len(cards) > 10 {
		return nil, errors.Internalf("unrankable hand: %d cards exceeds the maximum draw", len(cards))
	}

	rankCounts := make(map[int32]int32)
	suitRanks := make(map[entities.Suit][]int32)
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitRanks[c.Suit] = append(suitRanks[c.Suit], c.Rank)
	}

	runsPossible := len(cards) >= 5

	if runsPossible {
		if high, suit, ok := bestStraightFlush(suitRanks); ok {
			if high == entities.RankAce {
				return newEvaluation(entities.HandRankRoyalFlush, runSum(high),
					fmt.Sprintf("Royal Flush, %s", entities.SuitName(suit))), nil
			}
			return newEvaluation(entities.HandRankStraightFlush, runSum(high),
				fmt.Sprintf("Straight Flush, %s high", entities.RankName(high))), nil
		}
	}

	if quad, ok := highestRankWithCount(rankCounts, 4); ok {
		return newEvaluation(entities.HandRankFourOfAKind, quad,
			fmt.Sprintf("Four of a Kind, %s", entities.RankPlural(quad))), nil
	}

	if trip, pair, ok := bestFullHouse(rankCounts); ok {
		return newEvaluation(entities.HandRankFullHouse, trip+pair,
			fmt.Sprintf("Full House, %s over %s", entities.RankPlural(trip), entities.RankPlural(pair))), nil
	}

	if runsPossible {
		if suit, sum, ok := bestFlush(suitRanks); ok {
			return newEvaluation(entities.HandRankFlush, sum,
				fmt.Sprintf("Flush, %s", entities.SuitName(suit))), nil
		}

		if high, ok := bestRunHigh(distinctRanks(rankCounts)); ok {
			return newEvaluation(entities.HandRankStraight, runSum(high),
				fmt.Sprintf("Straight, %s high", entities.RankName(high))), nil
		}
	}

	if trip, ok := highestRankWithCount(rankCounts, 3); ok {
		return newEvaluation(entities.HandRankThreeOfAKind, trip,
			fmt.Sprintf("Three of a Kind, %s", entities.RankPlural(trip))), nil
	}

	if high, low, ok := bestTwoPair(rankCounts); ok {
		return newEvaluation(entities.HandRankTwoPair, high+low,
			fmt.Sprintf("Two Pair, %s and %s", entities.RankPlural(high), entities.RankPlural(low))), nil
	}

	if pair, ok := highestRankWithCount(rankCounts, 2); ok {
		return newEvaluation(entities.HandRankPair, pair,
			fmt.Sprintf("Pair of %s", entities.RankPlural(pair))), nil
	}

	high, _ := highestRankWithCount(rankCounts, 1)
	return newEvaluation(entities.HandRankHighCard, high,
		fmt.Sprintf("High Card, %s", entities.RankName(high))), nil
}

func newEvaluation(rank entities.HandRank, tiebreak int32, description string) *Evaluation {
	return &Evaluation{
		Rank:        rank,
		Score:       rank.CategoryWeight()*100 + tiebreak,
		Description: description,
	}
}

// distinctRanks returns the set of ranks present in the hand
func distinctRanks(rankCounts map[int32]int32) map[int32]bool {
	ranks := make(map[int32]bool, len(rankCounts))
	for r := range rankCounts {
		ranks[r] = true
	}
	return ranks
}

// bestRunHigh finds the highest rank topping a contiguous run of five. The
// ace doubles as rank 1 for the low run; runs never wrap.
func bestRunHigh(ranks map[int32]bool) (int32, bool) {
	if ranks[entities.RankAce] {
		ranks[1] = true
	}

	for high := entities.RankAce; high >= 5; high-- {
		run := true
		for r := high - 4; r <= high; r++ {
			if !ranks[r] {
				run = false
				break
			}
		}
		if run {
			return high, true
		}
	}
	return 0, false
}

// runSum is the tiebreak for a run topped by high: the sum of its five
// ranks. The ace-low run counts the ace as 1, so it scores below 2-6.
func runSum(high int32) int32 {
	var sum int32
	for r := high - 4; r <= high; r++ {
		sum += r
	}
	return sum
}

// bestStraightFlush finds the highest five-rank run within a single suit
func bestStraightFlush(suitRanks map[entities.Suit][]int32) (int32, entities.Suit, bool) {
	var bestHigh int32
	var bestSuit entities.Suit
	found := false

	for _, suit := range entities.AllSuits {
		ranks := make(map[int32]bool)
		for _, r := range suitRanks[suit] {
			ranks[r] = true
		}
		if len(ranks) < 5 {
			continue
		}
		if high, ok := bestRunHigh(ranks); ok && (!found || high > bestHigh) {
			bestHigh = high
			bestSuit = suit
			found = true
		}
	}
	return bestHigh, bestSuit, found
}

// bestFlush finds the suit holding at least five cards, scored by the sum of
// its five highest ranks. With large hands more than one suit can qualify;
// the higher-scoring one wins.
func bestFlush(suitRanks map[entities.Suit][]int32) (entities.Suit, int32, bool) {
	var bestSuit entities.Suit
	var bestSum int32
	found := false

	for _, suit := range entities.AllSuits {
		ranks := suitRanks[suit]
		if len(ranks) < 5 {
			continue
		}
		sum := topFiveSum(ranks)
		if !found || sum > bestSum {
			bestSuit = suit
			bestSum = sum
			found = true
		}
	}
	return bestSuit, bestSum, found
}

func topFiveSum(ranks []int32) int32 {
	sorted := make([]int32, len(ranks))
	copy(sorted, ranks)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] > sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var sum int32
	for _, r := range sorted[:5] {
		sum += r
	}
	return sum
}

// highestRankWithCount returns the highest rank appearing at least min times
func highestRankWithCount(rankCounts map[int32]int32, min int32) (int32, bool) {
	var best int32
	found := false
	for rank, count := range rankCounts {
		if count >= min && rank > best {
			best = rank
			found = true
		}
	}
	return best, found
}

// bestFullHouse returns the highest trip rank plus the highest other rank
// holding at least a pair
func bestFullHouse(rankCounts map[int32]int32) (int32, int32, bool) {
	trip, ok := highestRankWithCount(rankCounts, 3)
	if !ok {
		return 0, 0, false
	}

	var pair int32
	found := false
	for rank, count := range rankCounts {
		if rank != trip && count >= 2 && rank > pair {
			pair = rank
			found = true
		}
	}
	if !found {
		return 0, 0, false
	}
	return trip, pair, true
}

// bestTwoPair returns the two highest distinct paired ranks
func bestTwoPair(rankCounts map[int32]int32) (int32, int32, bool) {
	high, ok := highestRankWithCount(rankCounts, 2)
	if !ok {
		return 0, 0, false
	}

	var low int32
	found := false
	for rank, count := range rankCounts {
		if rank != high && count >= 2 && rank > low {
			low = rank
			found = true
		}
	}
	if !found {
		return 0, 0, false
	}
	return high, low, true
}
