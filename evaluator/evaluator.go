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

// Package evaluator contains the fast positional heuristic used to score a
// Reversi position when the search bottoms out. It is a linear sum of
// weighted square-class popcounts plus raw disc count, nothing more - not a
// learned model.
package evaluator

import (
	"github.com/frankkopp/ReversiGo/config"
	"github.com/frankkopp/ReversiGo/position"
	. "github.com/frankkopp/ReversiGo/types"
)

// Weights parameterises the evaluator. Score is always black - white; black
// maximises, white minimises.
type Weights struct {
	Corner     int32
	Edge       int32
	AntiEdge   int32
	AntiCorner int32
}

// DefaultWeights reproduces a legacy weighting scheme: CornerMask squares
// count for 10 and EdgeMask squares for 5; AntiEdge/AntiCorner add nothing
// of their own, so those squares (which all lie inside EdgeMask) score the
// Edge weight plus their raw disc.
var DefaultWeights = Weights{Corner: 10, Edge: 5, AntiEdge: 0, AntiCorner: 0}

// StandardWeights offers more balanced play: it penalises X/C squares
// (AntiEdge/AntiCorner) instead of ignoring them, since giving up a corner
// is usually worse than the raw disc-count difference suggests.
var StandardWeights = Weights{Corner: 25, Edge: 5, AntiEdge: -12, AntiCorner: -20}

// Evaluator scores Reversi positions using a Weights-parameterised linear
// combination of square-class popcounts.
//  Create a new instance with New().
type Evaluator struct {
	Weights Weights
}

// New creates an Evaluator using the given weights.
func New(w Weights) *Evaluator {
	return &Evaluator{Weights: w}
}

// FromConfig builds an Evaluator using the weight set named by
// config.Settings.Eval.WeightSet ("default" or "standard").
func FromConfig() *Evaluator {
	if config.Settings.Eval.WeightSet == "standard" {
		return New(StandardWeights)
	}
	return New(DefaultWeights)
}

// Evaluate scores p from black's perspective: positive favours black.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	return Value(e.sideScore(p.Black) - e.sideScore(p.White))
}

// sideScore sums the weighted square-class popcounts plus the raw disc
// count for one side's bitboard.
func (e *Evaluator) sideScore(discs Bitboard) int32 {
	w := e.Weights
	score := int32(discs.PopCount()) // raw disc count, weight 1
	score += int32((discs & CornerMask).PopCount()) * w.Corner
	score += int32((discs & EdgeMask).PopCount()) * w.Edge
	score += int32((discs & AntiEdgeMask).PopCount()) * w.AntiEdge
	score += int32((discs & AntiCornerMask).PopCount()) * w.AntiCorner
	return score
}
