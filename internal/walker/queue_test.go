package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()
	_, ok := q.PopFront()
	assert.False(t, ok)

	for i := 0; i < 20; i++ {
		q.PushBack(i)
	}
	assert.Equal(t, 20, q.Len())

	for i := 0; i < 20; i++ {
		v, ok := q.PopFront()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueueGrowsWhileDraining(t *testing.T) {
	q := NewQueue[int]()
	q.PushBack(0)

	var order []int
	for q.Len() > 0 {
		v, _ := q.PopFront()
		order = append(order, v)
		if v < 5 {
			q.PushBack(2*v + 1)
			q.PushBack(2*v + 2)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, order)
}

func TestQueueWrapAround(t *testing.T) {
	q := NewQueue[string]()
	for i := 0; i < 6; i++ {
		q.PushBack("x")
	}
	for i := 0; i < 5; i++ {
		q.PopFront()
	}
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		q.PushBack(s)
	}

	var got []string
	for q.Len() > 0 {
		v, _ := q.PopFront()
		got = append(got, v)
	}
	assert.Equal(t, []string{"x", "a", "b", "c", "d", "e", "f", "g", "h", "i"}, got)
}
