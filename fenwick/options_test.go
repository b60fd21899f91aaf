package fenwick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	tree, err := New[int]([]int{0, 1, 2, 3}, Sum[int]{})
	require.NoError(t, err, "creating a tree without options should never error out")
	assert.Equal(t, []int{0, 1, 2, 3}, tree.tree, "without Initialize values stay raw")
	assert.Equal(t, 4, cap(tree.tree))
}

func TestCapacity(t *testing.T) {
	tree, err := New[int]([]int{0, 1}, Sum[int]{}, Capacity(64))
	require.NoError(t, err)
	assert.Equal(t, 64, cap(tree.tree))

	tree, err = New[int]([]int{0, 1, 2}, Sum[int]{}, Capacity(1))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len(), "a small capacity must not truncate values")

	tree, err = New[int](nil, Sum[int]{}, Capacity(-1))
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Nil(t, tree)
}

func TestInitialize(t *testing.T) {
	tree, err := New[int]([]int{0, 1, 2, 3}, Sum[int]{}, Initialize())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 3}, tree.tree)
}

func TestFuncSemigroup(t *testing.T) {
	gcd := Func[int](func(a, b int) int {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	})
	tree, err := New[int]([]int{0, 48, 36, 60, 7}, gcd, Initialize())
	require.NoError(t, err)
	assert.Equal(t, 48, tree.PrefixFold(1))
	assert.Equal(t, 12, tree.PrefixFold(3))
	assert.Equal(t, 1, tree.Fold())
}
