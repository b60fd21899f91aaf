/*
Package fenwick provides a generic Fenwick tree over any associative
operation.

A Fenwick tree, or binary indexed tree, is a space-efficient list data
structure that can efficiently update elements and calculate prefix
aggregates. Both operations run in O(log n) time while using the same
amount of memory as a plain slice. This is achieved by representing the
list as an implicit tree, where the value of each node is the aggregate
of the elements in that subtree.

Most Fenwick trees are written for addition. Tree works with any
Semigroup, i.e. any associative operation, commutative or not and
invertible or not. Prefix folds are always computed left to right, so
string concatenation or matrix products fold in sequence order.

Position 0 is special: it is kept outside of the binary indexed layout
and acts as the start value of every fold. Positions 1..Size() are
regular tree nodes, where node i holds the fold of positions
(i - lowbit(i), i] and lowbit(i) is the lowest set bit of i.

	t, _ := fenwick.New([]int{0, 1, 2, 3, 4, 5}, fenwick.Sum[int]{}, fenwick.Initialize())
	t.PrefixFold(5)        // 15
	t.Add(2, 10)           // position 2 is now 12
	ra, rb := t.RangeFold(1, 4)
	_ = ra - rb            // 12 + 3 + 4
	fenwick.BisectLeft(t, 6) // first position whose prefix sum is >= 6

Tree is not safe for concurrent use.
*/
package fenwick

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fenwick'
func tracer() tracing.Trace {
	return tracing.Select("fenwick")
}
