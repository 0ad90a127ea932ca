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

// Value is an evaluation in the engine's internal disc-weighted scale, always
// from black's perspective: positive favours black, negative favours white.
type Value int32

// Search bounds and terminal values. ValueInfinite bounds the initial
// alpha-beta window; ValueWin/ValueLoss are returned at a terminal node and
// are then biased by one per ply via mate-distance compression so shorter
// wins and longer losses sort first.
const (
	ValueInfinite Value = 20000
	ValueWin      Value = 10000
	ValueLoss     Value = -10000
	ValueDraw     Value = 0

	// MateThreshold is the boundary above/below which a value is considered
	// a compressed win/loss distance rather than a plain positional score.
	MateThreshold Value = 5000
)

// Side identifies which color is to move. Black maximises, white minimises.
type Side int8

const (
	Black Side = iota
	White
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Black {
		return White
	}
	return Black
}

// String renders the side for logging.
func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}
