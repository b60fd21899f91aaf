package fenwick

import "cmp"

// Semigroup defines how values are aggregated in the tree.
//
// For values a, b, c, Combine must be associative:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// Neither commutativity nor an inverse is required. An identity element is
// not required either; if one exists, a tree filled with it needs no Init.
type Semigroup[T any] interface {
	Combine(a, b T) T
}

// Func adapts an ordinary function to a Semigroup.
type Func[T any] func(a, b T) T

// Combine calls f(a, b).
func (f Func[T]) Combine(a, b T) T {
	return f(a, b)
}

// Number is the set of types Sum and Product work on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum is addition. Its identity is 0 and it inverts by subtraction,
// so RangeFold results reduce to ra - rb.
type Sum[N Number] struct{}

func (Sum[N]) Combine(a, b N) N { return a + b }

// Product is multiplication. Its identity is 1.
type Product[N Number] struct{}

func (Product[N]) Combine(a, b N) N { return a * b }

// Min keeps the smaller value. Add may only lower a position.
type Min[O cmp.Ordered] struct{}

func (Min[O]) Combine(a, b O) O { return min(a, b) }

// Max keeps the larger value. Add may only raise a position.
type Max[O cmp.Ordered] struct{}

func (Max[O]) Combine(a, b O) O { return max(a, b) }
