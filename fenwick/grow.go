package fenwick

import "slices"

// Append appends a new position holding the raw value v.
//
// The new node folds in the existing nodes it covers, so n appends cost
// O(n) in total and a single append O(log n) at worst.
func (t *Tree[T]) Append(v T) {
	t.tree = append(t.tree, v)
	if j := len(t.tree) - 1; j > 0 {
		t.absorb(j)
	}
}

// Extend appends the raw values in order. The result is the same as
// appending them one by one, in O(m + log n) for m values.
func (t *Tree[T]) Extend(values ...T) {
	if len(values) == 0 {
		return
	}
	osize := len(t.tree)
	t.tree = append(t.tree, values...)
	t.rebuildFrom(osize)
	tracer().Debugf("fenwick: extended %d positions by %d", osize, len(values))
}

// rebuildFrom brings the raw slots from osize onwards into tree layout.
// Only nodes at or above osize cover new values; lower ones stay as they are.
func (t *Tree[T]) rebuildFrom(osize int) {
	for j := max(osize, 1); j < len(t.tree); j++ {
		t.absorb(j)
	}
}

// Pop removes the last position. Nodes never cover positions above
// themselves, so the remaining tree is unaffected.
func (t *Tree[T]) Pop() {
	if t.Empty() {
		violation(ErrEmptyTree, "pop")
	}
	var zero T
	t.tree[len(t.tree)-1] = zero
	t.tree = t.tree[:len(t.tree)-1]
}

// Resize sets the tree to hold positions 0..n. New positions get the raw
// value fill; surplus positions are dropped.
func (t *Tree[T]) Resize(n int, fill T) {
	if n < 0 {
		violation(ErrIndexOutOfBounds, "resize to %d", n)
	}
	osize := len(t.tree)
	switch {
	case n+1 < osize:
		clear(t.tree[n+1:])
		t.tree = t.tree[:n+1]
	case n+1 > osize:
		t.tree = slices.Grow(t.tree, n+1-osize)
		for len(t.tree) < n+1 {
			t.tree = append(t.tree, fill)
		}
		t.rebuildFrom(osize)
	}
	tracer().Debugf("fenwick: resized %d positions to %d", osize, len(t.tree))
}

// Reset sets every position to the raw value fill and rebuilds the tree,
// keeping the number of positions.
func (t *Tree[T]) Reset(fill T) {
	for i := range t.tree {
		t.tree[i] = fill
	}
	t.Init()
}

// Grow makes room for n more positions without another allocation.
func (t *Tree[T]) Grow(n int) {
	if n < 0 {
		violation(ErrIndexOutOfBounds, "grow by %d", n)
	}
	t.tree = slices.Grow(t.tree, n)
}
