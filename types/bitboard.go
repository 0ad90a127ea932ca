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

// Package types holds the fundamental value types shared by every layer of
// the engine: the 64-bit board encoding, move and evaluation sentinels, and
// the square-class masks the search and evaluator both key off of.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit map, one bit per square. Bit i is square
// (file = i mod 8, rank = i div 8); file a = 0, rank 1 = 0.
type Bitboard uint64

// Direction is one of the eight compass directions used to grow a capture
// frontier from an anchor disc.
type Direction int

// The eight directions: the four orthogonal ones, then the four diagonals.
const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// file-edge masks used to stop a shift from wrapping around the board.
const (
	NotA Bitboard = 0xFEFEFEFEFEFEFEFE
	NotH Bitboard = 0x7F7F7F7F7F7F7F7F
)

// Starting position discs.
const (
	StartBlack Bitboard = (Bitboard(1) << 28) | (Bitboard(1) << 35) // d5, e4
	StartWhite Bitboard = (Bitboard(1) << 27) | (Bitboard(1) << 36) // d4, e5
)

// Square-class masks used by the evaluator and by move ordering in search.
// CornerMask is disjoint from the other three, and AntiEdgeMask (the
// C-squares) is disjoint from AntiCornerMask (the X-squares). EdgeMask is
// not disjoint from them: it is exactly AntiEdgeMask | AntiCornerMask.
const (
	CornerMask     Bitboard = 0x8100000000000081
	EdgeMask       Bitboard = 0x42C300000000C342
	AntiEdgeMask   Bitboard = 0x4281000000008142
	AntiCornerMask Bitboard = 0x42000000004200
)

// Shift moves every set bit of b one square in direction d, masking off the
// file that would otherwise wrap around the board edge.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & NotH) << 1
	case West:
		return (b & NotA) >> 1
	case NorthEast:
		return (b & NotH) << 9
	case NorthWest:
		return (b & NotA) << 7
	case SouthEast:
		return (b & NotH) >> 7
	case SouthWest:
		return (b & NotA) >> 9
	}
	return 0
}

// AllDirections lists the eight directions in a fixed, stable order. Used
// everywhere the engine needs to iterate "all eight directions" so that the
// iteration order is deterministic.
var AllDirections = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns a bitboard containing only the lowest set bit of b, or 0 if b
// is empty. This is the classic x & -x trick used to iterate a bitboard
// low-bit first.
func (b Bitboard) Lsb() Bitboard {
	return b & -b
}

// LsbIndex returns the index (0..63) of the lowest set bit. Undefined for b == 0.
func (b Bitboard) LsbIndex() int {
	return bits.TrailingZeros64(uint64(b))
}

// StrBoard renders an 8x8 ASCII board with '.' for empty squares, used by
// the debug string of a Position.
func (b Bitboard) StrBoard() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := r*8 + f
			if b&(Bitboard(1)<<uint(sq)) != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
