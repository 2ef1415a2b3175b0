package column_test

import (
	"testing"

	"github.com/katalvlaran/columnsort/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build returns a Column holding vals in order.
func build(a *column.Arena, vals ...int) *column.Column {
	c := column.New(a)
	for _, v := range vals {
		c.Append(v)
	}

	return c
}

// TestColumn_Empty verifies the zero-length behavior of a new Column.
func TestColumn_Empty(t *testing.T) {
	c := column.New(column.NewArena(0))

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, column.Nil, c.Head())
	assert.Equal(t, column.Nil, c.Tail())
	assert.Empty(t, c.Values())
	assert.NoError(t, c.Validate())

	id, ok := c.PopLeft()
	assert.False(t, ok, "PopLeft on empty column")
	assert.Equal(t, column.Nil, id)
	id, ok = c.PopRight()
	assert.False(t, ok, "PopRight on empty column")
	assert.Equal(t, column.Nil, id)
}

// TestColumn_AppendOrder checks head-to-tail order and ring closure.
func TestColumn_AppendOrder(t *testing.T) {
	a := column.NewArena(4)
	c := build(a, 1, 2, 3, 4)

	require.NoError(t, c.Validate())
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values())
	assert.Equal(t, 1, a.Value(c.Head()))
	assert.Equal(t, 4, a.Value(c.Tail()))
	assert.Equal(t, c.Head(), c.Next(c.Tail()), "tail.next must be head")
	assert.Equal(t, c.Tail(), c.Prev(c.Head()), "head.prev must be tail")
}

// TestColumn_PopBothEnds drains a Column alternately from both ends.
func TestColumn_PopBothEnds(t *testing.T) {
	a := column.NewArena(5)
	c := build(a, 1, 2, 3, 4, 5)

	var got []int
	for i := 0; !c.Empty(); i++ {
		var id column.NodeID
		var ok bool
		if i%2 == 0 {
			id, ok = c.PopLeft()
		} else {
			id, ok = c.PopRight()
		}
		require.True(t, ok)
		require.NoError(t, c.Validate())
		got = append(got, a.Value(id))
	}
	assert.Equal(t, []int{1, 5, 2, 4, 3}, got)
	assert.Equal(t, column.Nil, c.Head())
}

// TestColumn_TransferWithoutAllocation moves nodes between two Columns and
// checks the Arena never grows.
func TestColumn_TransferWithoutAllocation(t *testing.T) {
	a := column.NewArena(6)
	src := build(a, 1, 2, 3)
	dst := build(a, 4, 5, 6)
	before := a.Cap()

	for !src.Empty() {
		id, _ := src.PopRight()
		dst.Prepend(id)
	}

	require.NoError(t, src.Validate())
	require.NoError(t, dst.Validate())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, dst.Values())
	assert.Equal(t, before, a.Cap(), "transfers must not allocate")
	assert.Equal(t, 6, a.Live())

	id, _ := dst.PopLeft()
	src.AppendNode(id)
	assert.Equal(t, []int{1}, src.Values())
	assert.Equal(t, []int{2, 3, 4, 5, 6}, dst.Values())
}

// TestColumn_PrependIntoEmpty verifies a single prepended node forms a ring.
func TestColumn_PrependIntoEmpty(t *testing.T) {
	a := column.NewArena(1)
	c := column.New(a)
	c.Prepend(a.New(7))
	c.Prepend(column.Nil)
	c.AppendNode(column.Nil)

	require.NoError(t, c.Validate())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, c.Head(), c.Tail())
	assert.Equal(t, []int{7}, c.Values())
}

// TestColumn_ClearRecyclesNodes checks released nodes are reused by New.
func TestColumn_ClearRecyclesNodes(t *testing.T) {
	a := column.NewArena(3)
	c := build(a, 1, 2, 3)
	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, 0, a.Live())

	c.Append(9)
	assert.Equal(t, 3, a.Cap(), "released slot must be reused")
	assert.Equal(t, []int{9}, c.Values())
}
