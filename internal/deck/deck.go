// Package deck provides the shuffled card source for action resolution.
//
// Draws sample with replacement from the 52-card universe: an action's hand
// never depletes a table deck, and the same card value may repeat within one
// draw. The default deck wraps a single math/rand generator behind a mutex,
// so one Deck is safe to share across concurrent resolutions; tests inject
// a seed for reproducible draws.
package deck

import (
	"math/rand"
	"sync"
	"time"

	"github.com/destinyrpg/destiny-api/internal/entities"
)

// Draw size bounds for a single action resolution
const (
	MinDrawSize = 1
	MaxDrawSize = 10
)

// Deck is a drawable source of cards
type Deck interface {
	// Draw returns exactly n independently uniform cards. n outside
	// [MinDrawSize, MaxDrawSize] is rejected with an OUT_OF_RANGE error
	// before any card is drawn.
	Draw(n int32) ([]entities.Card, error)
}

// Config holds the configuration for a random deck
type Config struct {
	// Seed for the random source. Zero seeds from the wall clock.
	Seed int64
}

type randomDeck struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a deck backed by a seeded math/rand source
func New(cfg *Config) Deck {
	seed := int64(0)
	if cfg != nil {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomDeck{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 // game odds, not crypto
	}
}

// Ensure randomDeck implements Deck
var _ Deck = (*randomDeck)(nil)

// Draw returns n uniform cards from the 52-value space
func (d *randomDeck) Draw(n int32) ([]entities.Card, error) {
	if err := ValidateDrawSize(n); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cards := make([]entities.Card, n)
	for i := range cards {
		cards[i] = entities.Card{
			Suit: entities.AllSuits[d.rng.Intn(len(entities.AllSuits))],
			Rank: entities.RankMin + int32(d.rng.Intn(int(entities.RankMax-entities.RankMin)+1)),
		}
	}
	return cards, nil
}

// ValidateDrawSize rejects draw counts outside [1,10]
func ValidateDrawSize(n int32) error {
	if n < MinDrawSize || n > MaxDrawSize {
		return errInvalidDrawSize(n)
	}
	return nil
}
