/*
Package weighted draws items at random, each with a probability
proportional to its weight.

Weights live in a fenwick.Tree of int64 sums, one position per item in
insertion order. A draw picks a random offset below the total weight and
bisects the prefix sums for the item covering that offset, so Select,
Update and Put all run in O(log n).
*/
package weighted

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fenwick'
func tracer() tracing.Trace {
	return tracing.Select("fenwick")
}

var (
	// ErrEmptySelector is returned by Select when no item has weight left.
	ErrEmptySelector = errors.New("weighted: no item to select")
	// ErrUnknownItem is returned for an item id never added.
	ErrUnknownItem = errors.New("weighted: unknown item")
	// ErrDuplicateItem is returned when an item id is added twice.
	ErrDuplicateItem = errors.New("weighted: duplicate item")
	// ErrNegativeWeight is returned when a weight would drop below zero.
	ErrNegativeWeight = errors.New("weighted: negative weight")
	// ErrOffsetOutOfRange is returned by Locate for offsets outside [0, Total()).
	ErrOffsetOutOfRange = errors.New("weighted: offset out of range")
	// ErrInvalidOption signals an option value New cannot accept.
	ErrInvalidOption = errors.New("weighted: invalid option")
)
