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

// Package movegen computes legal Reversi moves and applies them to a pair of
// bitboards. It knows nothing about Position or search; it operates purely
// on (me, opp) bitboard pairs, which keeps it trivially fuzzable and usable
// from both position and the opening book generator.
package movegen

import (
	"errors"

	. "github.com/frankkopp/ReversiGo/types"
)

// Errors returned by ApplyMove.
var (
	// ErrOccupied is returned when move is already occupied by either side.
	ErrOccupied = errors.New("movegen: square already occupied")
	// ErrNoFlips is returned when move would flip no opponent discs, i.e.
	// the move is not legal even though the square is empty.
	ErrNoFlips = errors.New("movegen: move flips no discs")
)

// ComputeMoves returns the union, over all eight directions, of empty
// squares that lie just past a non-empty contiguous run of opp discs
// anchored on a me disc. Each direction grows its capture frontier up to six
// intermediate opponent discs (the longest possible run on an 8-square
// line) before the seventh shift lands on an empty square.
func ComputeMoves(me, opp Bitboard) Bitboard {
	empty := ^(me | opp)
	var moves Bitboard
	for _, d := range AllDirections {
		frontier := opp & Shift(me, d)
		for i := 0; i < 5; i++ {
			frontier |= opp & Shift(frontier, d)
		}
		moves |= empty & Shift(frontier, d)
	}
	return moves
}

// flipsInDirection walks d from move repeatedly, accumulating opponent bits
// until a me bit terminates the run. If the run never terminates on a me
// bit (runs off the board or hits empty), nothing flips in that direction.
func flipsInDirection(move, me, opp Bitboard, d Direction) Bitboard {
	var flips Bitboard
	cursor := Shift(move, d)
	for cursor != 0 && cursor&opp != 0 {
		flips |= cursor
		cursor = Shift(cursor, d)
	}
	if cursor&me == 0 {
		return 0
	}
	return flips
}

// flipMask returns the union of flipsInDirection across all eight
// directions: every disc that playing move would turn over.
func flipMask(move, me, opp Bitboard) Bitboard {
	var flips Bitboard
	for _, d := range AllDirections {
		flips |= flipsInDirection(move, me, opp, d)
	}
	return flips
}

// ApplyMove plays move for the side whose discs are me against opp. Returns
// the updated (me, opp) pair and the flip mask that was applied. Fails with
// ErrOccupied if the square is taken, or ErrNoFlips if no discs would flip
// (the move is not legal even on an empty square).
func ApplyMove(me, opp Bitboard, move Bitboard) (newMe Bitboard, newOpp Bitboard, flips Bitboard, err error) {
	if move&(me|opp) != 0 {
		return me, opp, 0, ErrOccupied
	}
	flips = flipMask(move, me, opp)
	if flips == 0 {
		return me, opp, 0, ErrNoFlips
	}
	newMe = me | move | flips
	newOpp = opp &^ flips
	return newMe, newOpp, flips, nil
}

// applyMoveDirectionScan is a second, independently written implementation
// of ApplyMove: a single inlined per-direction walk instead of ApplyMove's
// flipMask/flipsInDirection helpers. It must agree bit-for-bit with ApplyMove on every
// legal input; movegen_test.go fuzzes both against each other per the
// design notes' open question on dual move-application routines.
func applyMoveDirectionScan(me, opp Bitboard, move Bitboard) (newMe Bitboard, newOpp Bitboard, flips Bitboard, err error) {
	if move&(me|opp) != 0 {
		return me, opp, 0, ErrOccupied
	}
	var totalFlips Bitboard
	for _, d := range AllDirections {
		var run Bitboard
		cursor := Shift(move, d)
		for cursor&opp != 0 {
			run |= cursor
			cursor = Shift(cursor, d)
		}
		if cursor&me != 0 {
			totalFlips |= run
		}
	}
	if totalFlips == 0 {
		return me, opp, 0, ErrNoFlips
	}
	newMe = me | move | totalFlips
	newOpp = opp &^ totalFlips
	return newMe, newOpp, totalFlips, nil
}
