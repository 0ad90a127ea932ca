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

package types

// Move is a single set bit identifying the square played. Two sentinels are
// reserved and never appear as a legal move:
//
//   MoveAllOnes - "no move to record": the position was terminal or a pass
//                 was taken, so there is nothing for the caller to play.
//   MoveNone    - "search failed to produce a move" (no legal move survived
//                 the apply-and-evaluate pipeline; the driver should resign).
type Move Bitboard

// Sentinels on the move return channel. These never collide with a real
// move since a real Move always has exactly one bit set and bit 63 (the
// corner h8) never coincides with AllOnes or 0.
const (
	MoveNone    Move = 0
	MoveAllOnes Move = Move(AllOnes)
)

// AllOnes is the all-ones u64 used as the base of every packed status
// sentinel (see Status in package position): AllOnes itself means "pass",
// AllOnes-1/-2/-3 mean terminal black/white/draw.
const AllOnes uint64 = ^uint64(0)

// Square returns the 0..63 index of the single set bit of m. Undefined for
// MoveNone or MoveAllOnes.
func (m Move) Square() int {
	return Bitboard(m).LsbIndex()
}

// Bb returns m as a Bitboard (a convenience for masking/union operations).
func (m Move) Bb() Bitboard {
	return Bitboard(m)
}
