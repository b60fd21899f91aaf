package weighted

import "fmt"

// Option configures a Selector created by New.
type Option func(*Selector) error

// RandomSource makes the selector draw from r instead of the global
// math/rand source. Useful for deterministic tests.
//
// r must not be nil, New will fail otherwise.
func RandomSource(r RNG) Option {
	return func(s *Selector) error {
		if r == nil {
			return fmt.Errorf("%w: random source must not be nil", ErrInvalidOption)
		}
		s.rng = r
		return nil
	}
}

// Seed makes the selector draw from its own uniform generator seeded with
// seed, so a run of Select calls can be repeated.
func Seed(seed int64) Option {
	return func(s *Selector) error {
		s.rng = newLocalRNG(seed)
		return nil
	}
}
