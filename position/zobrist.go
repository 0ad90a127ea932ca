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

package position

import (
	. "github.com/frankkopp/ReversiGo/types"
)

// Key is used for Zobrist keys of Reversi positions. Needs all 64 bits for
// good distribution across a direct-mapped transposition table.
type Key uint64

// zobristSeed is fixed so that transposition keys are stable across runs and
// processes: positions transposed into during a search today must hash the
// same way tomorrow.
const zobristSeed = 123456789

// zobrist holds one random key per (square, color) occupancy plus one fixed
// key mixed in when white is to move. MixSideToMove controls whether the
// latter is actually used, kept switchable to reproduce a known collision
// bug for parity tests.
var zobristTable struct {
	squares      [64][2]Key // index 0 = white on square, 1 = black on square
	nextPlayer   Key
	initialized  bool
}

// MixSideToMove enables the side-to-move fix from the design notes: without
// it, two positions that differ only in who is to move hash identically and
// collide in the transposition table.
var MixSideToMove = true

func initZobrist() {
	if zobristTable.initialized {
		return
	}
	r := newRandom(zobristSeed)
	for sq := 0; sq < 64; sq++ {
		zobristTable.squares[sq][0] = Key(r.rand64())
		zobristTable.squares[sq][1] = Key(r.rand64())
	}
	zobristTable.nextPlayer = Key(r.rand64())
	zobristTable.initialized = true
}

func init() {
	initZobrist()
}

// colorIndex maps a Side to the zobrist table's [white, black] column order.
func colorIndex(s Side) int {
	if s == White {
		return 0
	}
	return 1
}

// computeZobristHash computes the full Zobrist hash of a position from
// scratch by XORing the (square, color) key of every occupied square, plus
// the side-to-move key when white is to move and mixing is enabled. Used to
// validate incremental updates and to seed a freshly constructed Position.
func computeZobristHash(black, white Bitboard, sideToMove Side) Key {
	var key Key
	b := black
	for b != 0 {
		sq := b.LsbIndex()
		key ^= zobristTable.squares[sq][colorIndex(Black)]
		b &= b - 1
	}
	w := white
	for w != 0 {
		sq := w.LsbIndex()
		key ^= zobristTable.squares[sq][colorIndex(White)]
		w &= w - 1
	}
	if MixSideToMove && sideToMove == White {
		key ^= zobristTable.nextPlayer
	}
	return key
}

// updateZobristHash incrementally updates key after mover played the square
// sq, flipping the discs in flipMask. This must equal
// computeZobristHash(resultingPosition) for any reachable move sequence.
func updateZobristHash(key Key, sq int, mover Side, flipMask Bitboard) Key {
	// place the new disc
	key ^= zobristTable.squares[sq][colorIndex(mover)]
	// every flipped square changes from the opponent's color to the mover's
	opp := mover.Other()
	f := flipMask
	for f != 0 {
		b := f.LsbIndex()
		key ^= zobristTable.squares[b][colorIndex(opp)]
		key ^= zobristTable.squares[b][colorIndex(mover)]
		f &= f - 1
	}
	// side to move alternates on every real move
	if MixSideToMove {
		key ^= zobristTable.nextPlayer
	}
	return key
}
