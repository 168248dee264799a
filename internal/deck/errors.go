package deck

import "github.com/destinyrpg/destiny-api/internal/errors"

func errInvalidDrawSize(n int32) error {
	return errors.OutOfRangef("invalid draw size %d: must be between %d and %d", n, MinDrawSize, MaxDrawSize).
		WithMeta("cards_to_draw", n)
}
