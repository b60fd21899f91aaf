package fenwick

import "fmt"

type settings struct {
	capacity   int
	initialize bool
}

// Option configures a tree created by New.
type Option func(*settings) error

// Capacity sets the capacity of the backing slice
//
// A tree which will grow through Append or Extend can be given room up
// front so the copy made by New is the only allocation. Capacities below
// the number of initial values are raised to fit them.
//
// Capacity must be >= 0, New will fail otherwise.
func Capacity(n int) Option {
	return func(s *settings) error {
		if n < 0 {
			return fmt.Errorf("%w: capacity %d should be >= 0", ErrInvalidOption, n)
		}
		s.capacity = n
		return nil
	}
}

// Initialize makes New call Init on the copied values.
//
// Leave it out only if every value is the identity of the semigroup
// (0 for addition, 1 for multiplication, equal values for min/max) or the
// values already are in tree layout.
func Initialize() Option {
	return func(s *settings) error {
		s.initialize = true
		return nil
	}
}
