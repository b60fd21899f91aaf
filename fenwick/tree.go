package fenwick

import "fmt"

// Tree is a list of values with support for efficient prefix folds under
// an associative operation. It is created by New; a cleared tree holds no
// positions at all.
type Tree[T any] struct {
	// The tree slice stores range folds of an underlying array a.
	// Slot 0 holds a[0]. To compute the prefix fold of a[0] … a[k],
	// combine a[0] with the slots which correspond to each 1 bit in the
	// binary expansion of k.
	//
	// For example, this is how the fold of the 14 first elements in a
	// is computed: 13 is 1101₂ in binary, so the slots 1000₂, 1100₂
	// and 1101₂ are folded after slot 0; they contain a[1] … a[8],
	// a[9] … a[12] and a[13], respectively.
	//
	tree []T
	op   Semigroup[T]
}

// New creates a new tree holding a copy of values, with values[0] at
// position 0. The values are taken as raw per-position contributions;
// they are not rearranged into tree layout unless Initialize is given
// or Init is called.
func New[T any](values []T, op Semigroup[T], opts ...Option) (*Tree[T], error) {
	if op == nil {
		return nil, ErrNilSemigroup
	}
	var s settings
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}
	t := make([]T, len(values), max(s.capacity, len(values)))
	copy(t, values)
	tree := &Tree[T]{
		tree: t,
		op:   op,
	}
	if s.initialize {
		tree.Init()
	}
	return tree, nil
}

// Init converts the raw values in place into tree layout in O(n) time.
//
// Call Init exactly once after New unless every value is the identity of
// the semigroup.
func (t *Tree[T]) Init() {
	for j := 1; j < len(t.tree); j++ {
		t.absorb(j)
	}
	tracer().Debugf("fenwick: initialized %d positions", len(t.tree))
}

// absorb turns slot j from a raw value into the fold of (j - lowbit(j), j].
// All slots below j must already be in tree layout. The children of j
// are visited from the highest down, each one prepended.
func (t *Tree[T]) absorb(j int) {
	v := t.tree[j]
	for k := j - 1; k+lowbit(k) == j; k &= k - 1 {
		v = t.op.Combine(t.tree[k], v)
	}
	t.tree[j] = v
}

// lowbit returns the lowest set bit of i, or 0 for i == 0.
func lowbit(i int) int {
	return i & -i
}

// Size returns the number of positions after position 0.
func (t *Tree[T]) Size() int {
	return max(len(t.tree)-1, 0)
}

// Len returns the number of positions including position 0.
func (t *Tree[T]) Len() int {
	return len(t.tree)
}

// Empty reports whether the tree holds no positions, not even position 0.
func (t *Tree[T]) Empty() bool {
	return len(t.tree) == 0
}

// Add combines v into the value at position idx.
//
// Add requires Combine(current, v) to be the new value at idx: for
// addition v is the delta, for Max v must not be less than the current
// value, for Min not greater. With a non-commutative semigroup v lands
// after the current value of every node covering idx, which only equals
// the intended update if the caller accounts for that.
func (t *Tree[T]) Add(idx int, v T) {
	t.checkIndex(idx)
	if idx == 0 {
		t.tree[0] = t.op.Combine(t.tree[0], v)
		return
	}
	for len := len(t.tree); idx < len; idx += lowbit(idx) {
		t.tree[idx] = t.op.Combine(t.tree[idx], v)
	}
}

// PrefixFold returns the fold of the values at positions 0 to idx
// inclusive.
func (t *Tree[T]) PrefixFold(idx int) T {
	t.checkIndex(idx)
	acc, _, ok := t.descend(idx, 0)
	if !ok {
		return t.tree[0]
	}
	return t.op.Combine(t.tree[0], acc)
}

// Fold returns the fold of all values.
func (t *Tree[T]) Fold() T {
	if t.Empty() {
		violation(ErrEmptyTree, "fold")
	}
	return t.PrefixFold(len(t.tree) - 1)
}

// RangeFold returns two partial folds ra and rb from which the fold of
// positions i+1 to j can be recovered if the semigroup has an inverse:
// it is Combine(invert(rb), ra), or ra - rb for addition.
//
// ra and rb both start at position 0 and share the nodes below the point
// where the walks from i and j meet, which is cheaper than two prefix
// folds. Requires 0 <= i < j <= Size().
func (t *Tree[T]) RangeFold(i, j int) (ra, rb T) {
	t.checkIndex(i)
	t.checkIndex(j)
	if i >= j {
		violation(ErrEmptyRange, "range (%d, %d]", i, j)
	}
	ra, rb = t.tree[0], t.tree[0]
	a, j, okA := t.descend(j, i)
	b, _, okB := t.descend(i, j)
	if okA {
		ra = t.op.Combine(ra, a)
	}
	if okB {
		rb = t.op.Combine(rb, b)
	}
	return ra, rb
}

// descend folds the nodes met while clearing the lowest bit of idx as long
// as idx > floor. It returns the fold, the index it stopped at, and false
// if no node was met.
func (t *Tree[T]) descend(idx, floor int) (acc T, stop int, ok bool) {
	for ; idx > floor; idx &= idx - 1 {
		if ok {
			acc = t.op.Combine(t.tree[idx], acc)
		} else {
			acc, ok = t.tree[idx], true
		}
	}
	return acc, idx, ok
}

// Clear drops all positions. Use New to start over.
func (t *Tree[T]) Clear() {
	tracer().Debugf("fenwick: clearing %d positions", len(t.tree))
	t.tree = nil
}

func (t *Tree[T]) checkIndex(idx int) {
	if idx < 0 || idx >= len(t.tree) {
		violation(ErrIndexOutOfBounds, "position %d, size %d", idx, t.Size())
	}
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("Fenwick<size=%d>", t.Size())
}
