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
	"time"

	. "github.com/frankkopp/ReversiGo/types"
)

// Result stores the result of a search. If BestMove is MoveNone, no legal
// move survived the apply-and-evaluate pipeline and the caller should treat
// this as a resignation; MoveAllOnes signals the position was terminal or a
// forced pass, and for a pass BestValue is the propagated child evaluation.
type Result struct {
	BestMove    Move
	BestValue   Value
	SearchTime  time.Duration
	SearchDepth int
	BookMove    bool
	Stats       Statistics
}

func (r *Result) String() string {
	return out.Sprintf("bestmove = %d, value = %d, search time = %d ms, depth = %d, book move = %v, nodes = %d",
		r.BestMove, r.BestValue, r.SearchTime.Milliseconds(), r.SearchDepth, r.BookMove, r.Stats.Nodes)
}
