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
	. "github.com/frankkopp/ReversiGo/types"
)

// This file holds the static parameters that drive move ordering. Reversi's
// move ordering is a fixed partition by square class, not an
// iterative/learned scheme - unlike a chess engine's depth/moves-searched
// reduction tables there is nothing to precompute per-depth here; the
// classes are the same four bitboard masks at every node.

// moveClasses splits the legal-move bitmap into four disjoint classes,
// returned in visitation order: corners, EdgeMask squares outside the X/C
// squares, all remaining squares, then the X/C squares last. Because
// EdgeMask is exactly the X/C squares, the second class is always empty and
// the non-corner edge squares outside X/C fall into the third class.
func moveClasses(moves Bitboard) [4]Bitboard {
	corners := moves & CornerMask
	// EdgeMask is a superset of both AntiEdgeMask and AntiCornerMask, so both
	// must be excluded here to keep edges disjoint from the risky class.
	edges := moves & EdgeMask &^ (AntiEdgeMask | AntiCornerMask)
	quiet := moves &^ (CornerMask | EdgeMask | AntiEdgeMask | AntiCornerMask)
	risky := moves & (AntiEdgeMask | AntiCornerMask)
	return [4]Bitboard{corners, edges, quiet, risky}
}

// compressMateDistance biases a black-perspective child evaluation by one
// point per ply once it crosses the mate threshold, so among several
// winning lines the search prefers the shorter one, and among several
// losing lines the longer one, without perturbing evaluations in the normal
// positional range.
func compressMateDistance(v Value) Value {
	switch {
	case v > MateThreshold:
		return v - 1
	case v < -MateThreshold:
		return v + 1
	default:
		return v
	}
}
