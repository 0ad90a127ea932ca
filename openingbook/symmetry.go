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

package openingbook

import (
	. "github.com/frankkopp/ReversiGo/types"
)

// rotate90 maps bit (r, c) to (c, 7-r), i.e. a 90 degree rotation of the
// board. Applied to both bitmaps of a position and to a move mask, it
// produces the position/move pair reached by rotating the whole board.
func rotate90(b Bitboard) Bitboard {
	var out Bitboard
	for sq := 0; sq < 64; sq++ {
		if b&(Bitboard(1)<<uint(sq)) == 0 {
			continue
		}
		r, c := sq/8, sq%8
		newSq := c*8 + (7 - r)
		out |= Bitboard(1) << uint(newSq)
	}
	return out
}

// flipVertical swaps ranks (r, c) -> (7-r, c).
func flipVertical(b Bitboard) Bitboard {
	var out Bitboard
	for sq := 0; sq < 64; sq++ {
		if b&(Bitboard(1)<<uint(sq)) == 0 {
			continue
		}
		r, c := sq/8, sq%8
		newSq := (7-r)*8 + c
		out |= Bitboard(1) << uint(newSq)
	}
	return out
}

// flipHorizontal reverses files (r, c) -> (r, 7-c), equivalent to reversing
// the bit order within each rank byte.
func flipHorizontal(b Bitboard) Bitboard {
	var out Bitboard
	for sq := 0; sq < 64; sq++ {
		if b&(Bitboard(1)<<uint(sq)) == 0 {
			continue
		}
		r, c := sq/8, sq%8
		newSq := r*8 + (7 - c)
		out |= Bitboard(1) << uint(newSq)
	}
	return out
}

// triple is a (black, white, move) bitboard triple transformed together
// under one symmetry operation.
type triple struct {
	black, white, move Bitboard
}

// dihedralImages returns all eight images of (black, white, move) under the
// board's dihedral symmetry group: the four rotations, composed with the
// identity and with one reflection (vertical flip), which together generate
// the full group of eight square symmetries. The first image is always the
// identity (the input unchanged).
func dihedralImages(black, white, move Bitboard) [8]triple {
	rotations := func(t triple) [4]triple {
		r0 := t
		r1 := triple{rotate90(t.black), rotate90(t.white), rotate90(t.move)}
		r2 := triple{rotate90(r1.black), rotate90(r1.white), rotate90(r1.move)}
		r3 := triple{rotate90(r2.black), rotate90(r2.white), rotate90(r2.move)}
		return [4]triple{r0, r1, r2, r3}
	}
	base := triple{black, white, move}
	plain := rotations(base)
	reflected := rotations(triple{flipVertical(black), flipVertical(white), flipVertical(move)})
	return [8]triple{plain[0], plain[1], plain[2], plain[3], reflected[0], reflected[1], reflected[2], reflected[3]}
}
