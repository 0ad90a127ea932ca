/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/ReversiGo/types"
)

func sq(i int) Move {
	return Move(Bitboard(1) << uint(i))
}

func TestNewHasZeroLengthAndGivenCapacity(t *testing.T) {
	ms := New(10)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 10, cap(ms))
}

func TestPushBackPopBackOrder(t *testing.T) {
	ms := New(0)
	ms.PushBack(sq(0))
	ms.PushBack(sq(1))
	ms.PushBack(sq(2))

	assert.Equal(t, sq(2), ms.PopBack())
	assert.Equal(t, sq(1), ms.PopBack())
	assert.Equal(t, sq(0), ms.PopBack())
	assert.Equal(t, 0, ms.Len())
}

func TestPopBackOnEmptyPanics(t *testing.T) {
	ms := New(0)
	assert.Panics(t, func() { ms.PopBack() })
}

func TestPushFrontPopFrontOrder(t *testing.T) {
	ms := New(0)
	ms.PushBack(sq(0))
	ms.PushBack(sq(1))
	ms.PushFront(sq(2))

	require.Equal(t, 3, ms.Len())
	assert.Equal(t, sq(2), ms.Front())
	assert.Equal(t, sq(2), ms.PopFront())
	assert.Equal(t, sq(0), ms.PopFront())
	assert.Equal(t, sq(1), ms.PopFront())
}

func TestPopFrontOnEmptyPanics(t *testing.T) {
	ms := New(0)
	assert.Panics(t, func() { ms.PopFront() })
}

func TestFrontBackOnEmptyPanics(t *testing.T) {
	ms := New(0)
	assert.Panics(t, func() { ms.Front() })
	assert.Panics(t, func() { ms.Back() })
}

func TestAtAndSet(t *testing.T) {
	ms := New(0)
	ms.PushBack(sq(5))
	ms.PushBack(sq(6))

	assert.Equal(t, sq(5), ms.At(0))
	ms.Set(0, sq(9))
	assert.Equal(t, sq(9), ms.At(0))
}

func TestFilterKeepsOnlyMatching(t *testing.T) {
	ms := New(0)
	for i := 0; i < 5; i++ {
		ms.PushBack(sq(i))
	}
	ms.Filter(func(index int) bool { return index%2 == 0 })

	require.Equal(t, 3, ms.Len())
	assert.Equal(t, sq(0), ms.At(0))
	assert.Equal(t, sq(2), ms.At(1))
	assert.Equal(t, sq(4), ms.At(2))
}

func TestFilterCopyLeavesSourceUntouched(t *testing.T) {
	ms := New(0)
	for i := 0; i < 4; i++ {
		ms.PushBack(sq(i))
	}
	var dest MoveSlice
	ms.FilterCopy(&dest, func(index int) bool { return index >= 2 })

	assert.Equal(t, 4, ms.Len())
	require.Equal(t, 2, dest.Len())
	assert.Equal(t, sq(2), dest.At(0))
	assert.Equal(t, sq(3), dest.At(1))
}

func TestForEachVisitsEveryIndex(t *testing.T) {
	ms := New(0)
	for i := 0; i < 5; i++ {
		ms.PushBack(sq(i))
	}
	seen := make([]bool, 5)
	ms.ForEach(func(index int) { seen[index] = true })
	for _, s := range seen {
		assert.True(t, s)
	}
}

func TestForEachParallelVisitsEveryIndex(t *testing.T) {
	ms := New(0)
	for i := 0; i < 20; i++ {
		ms.PushBack(sq(i))
	}
	seen := make([]int32, 20)
	ms.ForEachParallel(func(index int) { seen[index] = 1 })
	for _, s := range seen {
		assert.Equal(t, int32(1), s)
	}
}

func TestClearResetsLengthButKeepsCapacity(t *testing.T) {
	ms := New(8)
	ms.PushBack(sq(0))
	ms.PushBack(sq(1))
	ms.Clear()

	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 8, cap(ms))
}

func TestDataExposesUnderlyingSlice(t *testing.T) {
	ms := New(0)
	ms.PushBack(sq(1))
	ms.PushBack(sq(2))

	data := ms.Data()
	require.Len(t, data, 2)
	assert.Equal(t, sq(1), data[0])
	assert.Equal(t, sq(2), data[1])
}

func TestStringRendersSquaresAndPass(t *testing.T) {
	ms := New(0)
	ms.PushBack(sq(19))
	ms.PushBack(MoveAllOnes)

	s := ms.String()
	assert.Contains(t, s, "19")
	assert.Contains(t, s, "pass")
}
