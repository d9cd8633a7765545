package linkedlist

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(values ...int) *SinglyLinkedList {
	l := New(zerolog.Nop())
	for _, v := range values {
		l.InsertHead(v)
	}
	return l
}

func mustTraverse(t *testing.T, l *SinglyLinkedList) []int {
	t.Helper()
	values, err := l.Traverse()
	require.NoError(t, err)
	return values
}

func Test_InsertHead(t *testing.T) {
	t.Run("traversal is the reverse of insertion order", func(t *testing.T) {
		l := newList(1, 2, 3, 4, 5)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, mustTraverse(t, l))
		assert.Equal(t, 5, l.Len())
		assert.False(t, l.Empty())
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		l := newList(7, 7)
		assert.Equal(t, []int{7, 7}, mustTraverse(t, l))
		assert.Equal(t, 2, l.Len())
	})
}

func Test_Find(t *testing.T) {
	l := newList(3, 9, 3)

	node := l.Find(3)
	require.NotNil(t, node)
	assert.Same(t, l.Head(), node, "first match from the head is returned")
	assert.Equal(t, 3, node.Value())

	assert.Nil(t, l.Find(42))
	assert.Nil(t, New(zerolog.Nop()).Find(1))
}

func Test_Update(t *testing.T) {
	l := newList(1, 2, 1)

	assert.True(t, l.Update(1, 10))
	assert.Equal(t, []int{10, 2, 1}, mustTraverse(t, l), "only the node closest to the head changes")

	assert.False(t, l.Update(99, 5))
	assert.Equal(t, []int{10, 2, 1}, mustTraverse(t, l))
	assert.False(t, New(zerolog.Nop()).Update(1, 2))
}

func Test_Remove(t *testing.T) {
	t.Run("head", func(t *testing.T) {
		l := newList(3, 2, 1)
		require.NoError(t, l.Remove(1))
		assert.Equal(t, []int{2, 3}, mustTraverse(t, l))
		assert.Equal(t, 2, l.Len())
	})

	t.Run("middle", func(t *testing.T) {
		l := newList(3, 2, 1)
		require.NoError(t, l.Remove(2))
		assert.Equal(t, []int{1, 3}, mustTraverse(t, l))
	})

	t.Run("tail", func(t *testing.T) {
		l := newList(3, 2, 1)
		require.NoError(t, l.Remove(3))
		assert.Equal(t, []int{1, 2}, mustTraverse(t, l))
	})

	t.Run("sole element", func(t *testing.T) {
		l := newList(1)
		require.NoError(t, l.Remove(1))
		assert.True(t, l.Empty())
		assert.Equal(t, 0, l.Len())
		_, err := l.Traverse()
		assert.ErrorIs(t, err, ErrEmptyList)
	})

	t.Run("first of duplicates only", func(t *testing.T) {
		l := newList(5, 4, 5)
		require.NoError(t, l.Remove(5))
		assert.Equal(t, []int{4, 5}, mustTraverse(t, l))
	})

	t.Run("absent value leaves the list unchanged", func(t *testing.T) {
		l := newList(3, 2, 1)
		head := l.Head()
		err := l.Remove(42)
		assert.ErrorIs(t, err, ErrValueNotFound)
		assert.Same(t, head, l.Head())
		assert.Equal(t, []int{1, 2, 3}, mustTraverse(t, l))
		assert.Equal(t, 3, l.Len())
	})

	t.Run("empty list", func(t *testing.T) {
		l := New(zerolog.Nop())
		assert.ErrorIs(t, l.Remove(1), ErrEmptyList)
		assert.Nil(t, l.Head())
	})

	t.Run("removed node is detached", func(t *testing.T) {
		l := newList(3, 2, 1)
		node := l.Find(2)
		require.NotNil(t, node)
		require.NoError(t, l.Remove(2))
		assert.Nil(t, node.Next())
	})
}

func Test_Traverse(t *testing.T) {
	values, err := New(zerolog.Nop()).Traverse()
	assert.ErrorIs(t, err, ErrEmptyList)
	assert.Nil(t, values)
}

func Test_Teardown(t *testing.T) {
	l := newList(1, 2, 3, 4)
	nodes := []*Node{}
	for n := l.Head(); n != nil; n = n.Next() {
		nodes = append(nodes, n)
	}

	assert.Equal(t, 4, l.Teardown())
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
	for _, n := range nodes {
		assert.Nil(t, n.Next())
	}

	assert.Equal(t, 0, l.Teardown(), "a second teardown has nothing left to release")

	l.InsertHead(9)
	assert.Equal(t, []int{9}, mustTraverse(t, l), "the list is reusable after teardown")
}
