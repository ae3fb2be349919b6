package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrivalQueue_SortsByOffsetThenSeq(t *testing.T) {
	entries := []*ProcessEntry{
		NewProcessEntry("C", 0, 1, 2),
		NewProcessEntry("A", 0, 1, 0),
		NewProcessEntry("B", 3, 4, 1),
	}
	q := NewArrivalQueue(entries)

	require.False(t, q.IsEmpty())
	assert.Equal(t, 0, q.PeekGap())
	first := q.Pop()
	assert.Equal(t, "A", first.Name, "ties at the same arrival offset break by input order")

	assert.Equal(t, 0, q.PeekGap())
	second := q.Pop()
	assert.Equal(t, "C", second.Name)

	assert.Equal(t, 3, q.PeekGap())
	third := q.Pop()
	assert.Equal(t, "B", third.Name)

	assert.True(t, q.IsEmpty())
}

func TestArrivalQueue_Empty(t *testing.T) {
	q := NewArrivalQueue(nil)
	assert.True(t, q.IsEmpty())
}
