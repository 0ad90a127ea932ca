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

// Package position holds the Reversi board triple (black, white,
// side-to-move), its Zobrist key, and the terminal/pass status classifier.
// Positions are value types: copied freely, never aliased.
package position

import (
	"fmt"

	"github.com/frankkopp/ReversiGo/assert"
	"github.com/frankkopp/ReversiGo/movegen"
	. "github.com/frankkopp/ReversiGo/types"
)

// Position is the triple {black, white, side-to-move}. Invariants: the two
// bitmaps are always disjoint, and side-to-move alternates unless a pass
// occurred.
type Position struct {
	Black      Bitboard
	White      Bitboard
	SideToMove Side

	zobristKey Key
}

// New returns the standard Othello starting position: black on d5/e4, white
// on d4/e5, black to move.
func New() *Position {
	p := &Position{
		Black:      StartBlack,
		White:      StartWhite,
		SideToMove: Black,
	}
	p.zobristKey = computeZobristHash(p.Black, p.White, p.SideToMove)
	return p
}

// FromBitboards builds a Position from explicit discs, recomputing its
// Zobrist key.
func FromBitboards(black, white Bitboard, sideToMove Side) *Position {
	p := &Position{Black: black, White: white, SideToMove: sideToMove}
	p.zobristKey = computeZobristHash(black, white, sideToMove)
	return p
}

// Copy returns an independent value copy. Positions never alias.
func (p *Position) Copy() Position {
	return *p
}

// ZobristKey returns the incrementally maintained hash of this position.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// Me returns the side-to-move's discs, Opp the opponent's.
func (p *Position) Me() Bitboard {
	if p.SideToMove == Black {
		return p.Black
	}
	return p.White
}

// Opp returns the discs of the side not to move.
func (p *Position) Opp() Bitboard {
	if p.SideToMove == Black {
		return p.White
	}
	return p.Black
}

// MakeMove plays move for the side to move, updating discs, Zobrist key and
// flipping side to move. Returns the flip mask that was applied (useful for
// callers that want to log or animate the move) and an error if the move is
// illegal. The position is left unchanged on error.
func (p *Position) MakeMove(move Bitboard) (Bitboard, error) {
	me, opp := p.Me(), p.Opp()
	newMe, newOpp, flips, err := movegen.ApplyMove(me, opp, move)
	if err != nil {
		return 0, err
	}
	mover := p.SideToMove
	if assert.DEBUG {
		assert.Assert(newMe&newOpp == 0, "position:MakeMove produced overlapping bitboards")
	}
	p.zobristKey = updateZobristHash(p.zobristKey, move.LsbIndex(), mover, flips)
	if mover == Black {
		p.Black, p.White = newMe, newOpp
	} else {
		p.White, p.Black = newMe, newOpp
	}
	p.SideToMove = mover.Other()
	return flips, nil
}

// MakePass flips side to move without touching the discs, used when the
// side to move has no legal move but the opponent does.
func (p *Position) MakePass() {
	if MixSideToMove {
		p.zobristKey ^= zobristTable.nextPlayer
	}
	p.SideToMove = p.SideToMove.Other()
}

// DiscCount returns the popcount of the given side's discs.
func (p *Position) DiscCount(s Side) int {
	if s == Black {
		return p.Black.PopCount()
	}
	return p.White.PopCount()
}

// String renders the board for logging/debugging.
func (p *Position) String() string {
	return fmt.Sprintf("side=%s black=%d white=%d\n%s", p.SideToMove, p.Black.PopCount(), p.White.PopCount(), (p.Black | p.White).StrBoard())
}
