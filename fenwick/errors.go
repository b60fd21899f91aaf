package fenwick

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSemigroup signals a tree constructed without an operation.
	ErrNilSemigroup = errors.New("fenwick: semigroup is required")
	// ErrInvalidOption signals an option value New cannot accept.
	ErrInvalidOption = errors.New("fenwick: invalid option")
	// ErrIndexOutOfBounds signals a position outside [0, Size()].
	ErrIndexOutOfBounds = errors.New("fenwick: index out of bounds")
	// ErrEmptyRange signals a range fold with i >= j.
	ErrEmptyRange = errors.New("fenwick: empty range")
	// ErrEmptyTree signals an operation which needs at least position 0.
	ErrEmptyTree = errors.New("fenwick: tree is empty")
)

// violation traces a broken precondition and panics with an error
// wrapping err.
func violation(err error, format string, args ...interface{}) {
	err = fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...)
	tracer().Errorf("%v", err)
	panic(err)
}
