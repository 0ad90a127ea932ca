/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package moveslice provides an array (slice) facade around Move, used by
// the root-parallel search to hold the ordered list of root candidates
// while their independent child searches run.
package moveslice

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/frankkopp/ReversiGo/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// New creates a new move array with the given capacity and 0 elements.
// Is identical to MoveSlice(make([]Move, 0, cap))
func New(cap int) MoveSlice {
	return make([]Move, 0, cap)
}

// PushBack appends an element at the end of the array
func (ma *MoveSlice) PushBack(m Move) {
	*ma = append(*ma, m)
}

// PopBack removes and returns the move from the back of the queue.
// If the queue is empty, the call panics.
func (ma *MoveSlice) PopBack() Move {
	if len(*ma) <= 0 {
		panic("MoveSlice: PopBack() called on empty array")
	}
	backMove := (*ma)[len(*ma)-1]
	*ma = (*ma)[:len(*ma)-1]
	return backMove
}

// PushFront prepends an element at the beginning of the array, reusing
// the underlying array unless its capacity is exhausted
func (ma *MoveSlice) PushFront(m Move) {
	*ma = append(*ma, MoveNone)
	copy((*ma)[1:], *ma)
	(*ma)[0] = m
}

// PopFront removes and returns the move from the front of the array.
// If the array is empty, the call panics.
func (ma *MoveSlice) PopFront() Move {
	if len(*ma) <= 0 {
		panic("MoveSlice: PopFront() called on empty array")
	}
	frontMove := (*ma)[0]
	*ma = (*ma)[1:]
	return frontMove
}

// Front returns the move at the front of the array. Panics if empty.
func (ma *MoveSlice) Front() Move {
	if len(*ma) <= 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ma)[0]
}

// Back returns the move at the back of the array. Panics if empty.
func (ma *MoveSlice) Back() Move {
	if len(*ma) <= 0 {
		panic("MoveSlice: Back() called when empty")
	}
	return (*ma)[len(*ma)-1]
}

// At returns the move at index i without removing it. Index is not bounds
// checked.
func (ma *MoveSlice) At(i int) Move {
	return (*ma)[i]
}

// Set puts a move at index i. Index is not bounds checked.
func (ma *MoveSlice) Set(i int, move Move) {
	(*ma)[i] = move
}

// Len returns the number of moves currently held.
func (ma *MoveSlice) Len() int {
	return len(*ma)
}

// Filter removes all elements for which f returns false, reusing the
// underlying array.
func (ma *MoveSlice) Filter(f func(index int) bool) {
	b := (*ma)[:0]
	for i, x := range *ma {
		if f(i) {
			b = append(b, x)
		}
	}
	*ma = b
}

// FilterCopy copies the elements for which f returns true into dest,
// leaving ma untouched.
func (ma *MoveSlice) FilterCopy(dest *MoveSlice, f func(index int) bool) {
	for i, x := range *ma {
		if f(i) {
			*dest = append(*dest, x)
		}
	}
}

// ForEach calls f with the index of each element in stored order.
func (ma *MoveSlice) ForEach(f func(index int)) {
	for index := range *ma {
		f(index)
	}
}

// ForEachParallel spawns one goroutine per element calling f with its
// index, then waits for all of them. Callers that mutate shared state
// inside f must synchronize it themselves.
func (ma *MoveSlice) ForEachParallel(f func(index int)) {
	sliceLength := len(*ma)
	var wg sync.WaitGroup
	wg.Add(sliceLength)
	for index := range *ma {
		go func(i int) {
			defer wg.Done()
			f(i)
		}(index)
	}
	wg.Wait()
}

// Data allows access to the underlying slice, good for range loops.
func (ma *MoveSlice) Data() []Move {
	return *ma
}

// Clear removes all moves but retains the current capacity.
func (ma *MoveSlice) Clear() {
	*ma = (*ma)[:0]
}

// String renders the move list as bitboard square indices, e.g.
// "MoveList: [3] { 19, 26, 44 }".
func (ma *MoveSlice) String() string {
	var sb strings.Builder
	size := len(*ma)
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		m := ma.At(i)
		if m == MoveAllOnes {
			sb.WriteString("pass")
		} else {
			fmt.Fprintf(&sb, "%d", m.Square())
		}
	}
	sb.WriteString(" }")
	return sb.String()
}
