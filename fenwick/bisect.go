package fenwick

import (
	"cmp"
	"math/bits"
)

// BisectLeft returns the first position whose prefix fold is not less than
// key, or t.Len() if there is none.
//
// Prefix folds must be non-decreasing, as with Sum over non-negative
// values.
func BisectLeft[T cmp.Ordered](t *Tree[T], key T) int {
	return BisectLeftFunc(t, key, func(acc, key T) bool {
		return acc < key
	})
}

// BisectLeftFunc returns the first position idx for which
// less(t.PrefixFold(idx), key) is false, or t.Len() if there is none.
// Returns 0 for an empty tree.
//
// less must hold for a prefix of positions and fail for the rest.
func BisectLeftFunc[T, K any](t *Tree[T], key K, less func(T, K) bool) int {
	if t.Empty() {
		return 0
	}
	bound := len(t.tree)
	return bisectLeft(t, key, bound, topBit(bound), less)
}

// BisectRight returns the first position whose prefix fold is greater than
// key, or t.Len() if there is none.
func BisectRight[T cmp.Ordered](t *Tree[T], key T) int {
	return BisectRightFunc(t, key, func(key, acc T) bool {
		return key < acc
	})
}

// BisectRightFunc returns the first position idx for which
// less(key, t.PrefixFold(idx)) is true, or t.Len() if there is none.
// Returns 0 for an empty tree.
func BisectRightFunc[T, K any](t *Tree[T], key K, less func(K, T) bool) int {
	if t.Empty() {
		return 0
	}
	bound := len(t.tree)
	return bisectRight(t, key, bound, topBit(bound), less)
}

// bisectLeft descends the implicit tree below node bound, starting with
// steps of jpow2, the highest power of two <= bound. Every accepted step
// extends the accumulated fold by the node res+k, which covers exactly
// the positions res+1 … res+k.
func bisectLeft[T, K any](t *Tree[T], key K, bound, jpow2 int, less func(T, K) bool) int {
	acc := t.tree[0]
	if !less(acc, key) {
		return 0
	}
	res := 0
	for k := jpow2; k > 0; k >>= 1 {
		if p := res + k; p < bound {
			if next := t.op.Combine(acc, t.tree[p]); less(next, key) {
				acc, res = next, p
			}
		}
	}
	return res + 1
}

func bisectRight[T, K any](t *Tree[T], key K, bound, jpow2 int, less func(K, T) bool) int {
	acc := t.tree[0]
	if less(key, acc) {
		return 0
	}
	res := 0
	for k := jpow2; k > 0; k >>= 1 {
		if p := res + k; p < bound {
			if next := t.op.Combine(acc, t.tree[p]); !less(key, next) {
				acc, res = next, p
			}
		}
	}
	return res + 1
}

// topBit returns the highest power of two <= n, for n > 0.
func topBit(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}
