package deck_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinyrpg/destiny-api/internal/deck"
	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
)

func TestDraw_ReturnsExactlyN(t *testing.T) {
	d := deck.New(&deck.Config{Seed: 42})

	for n := int32(1); n <= 10; n++ {
		cards, err := d.Draw(n)
		require.NoError(t, err, "draw size %d", n)
		assert.Len(t, cards, int(n))

		for _, c := range cards {
			assert.Contains(t, entities.AllSuits, c.Suit)
			assert.GreaterOrEqual(t, c.Rank, entities.RankMin)
			assert.LessOrEqual(t, c.Rank, entities.RankMax)
		}
	}
}

func TestDraw_RejectsInvalidSizes(t *testing.T) {
	d := deck.New(&deck.Config{Seed: 42})

	for _, n := range []int32{-1, 0, 11, 100} {
		cards, err := d.Draw(n)
		require.Error(t, err, "draw size %d", n)
		assert.Nil(t, cards)
		assert.True(t, errors.IsOutOfRange(err), "draw size %d should be OUT_OF_RANGE", n)
	}
}

func TestDraw_SeededDeckIsReproducible(t *testing.T) {
	first, err := deck.New(&deck.Config{Seed: 7}).Draw(10)
	require.NoError(t, err)

	second, err := deck.New(&deck.Config{Seed: 7}).Draw(10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDraw_WithReplacementAllowsDuplicates(t *testing.T) {
	d := deck.New(&deck.Config{Seed: 1})

	// 10 draws of 10 cards from a 52-value space; a duplicate within some
	// draw is effectively certain (birthday bound ~61% per draw).
	sawDuplicate := false
	for i := 0; i < 10 && !sawDuplicate; i++ {
		cards, err := d.Draw(10)
		require.NoError(t, err)

		seen := make(map[entities.Card]bool)
		for _, c := range cards {
			if seen[c] {
				sawDuplicate = true
				break
			}
			seen[c] = true
		}
	}
	assert.True(t, sawDuplicate, "expected at least one repeated card value across draws")
}

func TestDraw_ConcurrentUse(t *testing.T) {
	d := deck.New(&deck.Config{Seed: 99})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				cards, err := d.Draw(5)
				assert.NoError(t, err)
				assert.Len(t, cards, 5)
			}
		}()
	}
	wg.Wait()
}

func TestValidateDrawSize(t *testing.T) {
	assert.NoError(t, deck.ValidateDrawSize(1))
	assert.NoError(t, deck.ValidateDrawSize(10))
	assert.Error(t, deck.ValidateDrawSize(0))
	assert.Error(t, deck.ValidateDrawSize(11))
}
