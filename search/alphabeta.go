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

package search

import (
	"github.com/frankkopp/ReversiGo/evaluator"
	"github.com/frankkopp/ReversiGo/position"
	"github.com/frankkopp/ReversiGo/transpositiontable"
	. "github.com/frankkopp/ReversiGo/types"
)

// negInfinity is the running-best sentinel for the sign-normalised
// comparison inside the move loop; it is not itself a black-perspective
// evaluation and is never returned from the search package.
const negInfinity Value = -(ValueInfinite + 1)

// alphaBeta holds the per-call dependencies of the recursive negamax: the
// evaluator to call at the leaves and the statistics to accumulate into.
// It carries no position state; the root-parallel fan-out builds one per
// goroutine, each with its own Statistics.
type alphaBeta struct {
	eval  *evaluator.Evaluator
	stats *Statistics
}

// negamax implements the negamax/alpha-beta core: terminal and pass
// handling, a depth-0 leaf evaluation, transposition-table integration,
// TT-hinted plus static move-class ordering, and the asymmetric
// black-perspective alpha-beta convention. alpha and beta are always
// black-perspective bounds, never sign-flipped across the recursion.
func (ab *alphaBeta) negamax(p *position.Position, depth int, alpha, beta Value, tt *transpositiontable.TtTable) (Move, Value) {
	packed := position.CheckGameStatusPacked(p)
	switch packed {
	case statusPass:
		child := p.Copy()
		child.MakePass()
		ab.stats.addPass()
		_, childEval := ab.negamax(&child, depth, alpha, beta, tt)
		return MoveAllOnes, childEval
	case statusWinBlack:
		return MoveAllOnes, ValueWin
	case statusWinWhite:
		return MoveAllOnes, ValueLoss
	case statusDraw:
		return MoveAllOnes, ValueDraw
	}

	moves := Bitboard(packed)
	ab.stats.addNode()

	if depth == 0 {
		return MoveAllOnes, ab.eval.Evaluate(p)
	}

	key := p.ZobristKey()
	if tt != nil {
		if v, m, ok := tt.Probe(key, alpha, beta); ok {
			ab.stats.addTTHit()
			return m, v
		}
		ab.stats.addTTMiss()
	}

	whiteToMove := p.SideToMove == White
	a, b := alpha, beta

	bestNorm := negInfinity
	bestMove := MoveNone
	var bestChildEval Value

	// a move ordering hint from a shallower or transposed search is tried
	// before the static move-class order, so a cutoff can happen sooner.
	var hinted Move
	if tt != nil {
		if m, ok := tt.PeekMove(key); ok && moves&m.Bb() != 0 {
			hinted = m
			moves &^= m.Bb()
		}
	}

	tryMove := func(move Move) (cut bool) {
		child := p.Copy()
		if _, err := child.MakeMove(move.Bb()); err != nil {
			return false
		}

		_, childEval := ab.negamax(&child, depth-1, a, b, tt)
		childEval = compressMateDistance(childEval)

		var norm Value
		if whiteToMove {
			norm = -childEval
		} else {
			norm = childEval
		}
		if norm > bestNorm {
			bestNorm = norm
			bestMove = move
			bestChildEval = childEval
		}

		if whiteToMove {
			if childEval < a {
				ab.putTT(tt, key, move, childEval, transpositiontable.Upper)
				ab.stats.addTTCut()
				return true
			}
			b = childEval
		} else {
			if childEval > b {
				ab.putTT(tt, key, move, childEval, transpositiontable.Lower)
				ab.stats.addTTCut()
				return true
			}
			a = childEval
		}
		return false
	}

	if hinted != MoveNone {
		if tryMove(hinted) {
			return hinted, bestChildEval
		}
	}

	for _, class := range moveClasses(moves) {
		remaining := class
		for remaining != 0 {
			bit := remaining.Lsb()
			remaining &^= bit
			move := Move(bit)

			if tryMove(move) {
				return move, bestChildEval
			}
		}
	}

	ab.putTT(tt, key, bestMove, bestChildEval, transpositiontable.Exact)
	return bestMove, bestChildEval
}

func (ab *alphaBeta) putTT(tt *transpositiontable.TtTable, key position.Key, move Move, value Value, flag transpositiontable.Flag) {
	if tt != nil {
		tt.Put(key, move, value, flag)
	}
}

// Packed status sentinels, matching position's internal encoding exactly
// (see position/status.go): a legal-move mask is returned as-is, AllOnes
// means pass, AllOnes-1/-2/-3 mean terminal black/white/draw. search owns
// this interpretation of the packed value on its hot path; position only
// exposes the raw uint64 via CheckGameStatusPacked.
const (
	statusPass     uint64 = AllOnes
	statusWinBlack uint64 = AllOnes - 1
	statusWinWhite uint64 = AllOnes - 2
	statusDraw     uint64 = AllOnes - 3
)
