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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftDoesNotWrapFiles(t *testing.T) {
	// a1 shifted west must not wrap to h-something
	a1 := Bitboard(1)
	assert.EqualValues(t, 0, Shift(a1, West))
	assert.EqualValues(t, 0, Shift(a1, SouthWest))
	assert.EqualValues(t, 0, Shift(a1, NorthWest))

	h1 := Bitboard(1) << 7
	assert.EqualValues(t, 0, Shift(h1, East))
	assert.EqualValues(t, 0, Shift(h1, NorthEast))
	assert.EqualValues(t, 0, Shift(h1, SouthEast))
}

func TestShiftRoundTrip(t *testing.T) {
	d4 := Bitboard(1) << 27
	assert.EqualValues(t, d4, Shift(Shift(d4, North), South))
	assert.EqualValues(t, d4, Shift(Shift(d4, East), West))
}

func TestSquareClassMasksAreDisjoint(t *testing.T) {
	// CornerMask is disjoint from every other class, and AntiEdgeMask is
	// disjoint from AntiCornerMask. EdgeMask is not disjoint from the other
	// two: it is a strict superset of both AntiEdgeMask and AntiCornerMask,
	// the same relationship the ground-truth masks carry.
	assert.Zero(t, CornerMask&EdgeMask)
	assert.Zero(t, CornerMask&AntiEdgeMask)
	assert.Zero(t, CornerMask&AntiCornerMask)
	assert.Zero(t, AntiEdgeMask&AntiCornerMask)
}

func TestEdgeMaskContainsAntiEdgeAndAntiCorner(t *testing.T) {
	assert.Equal(t, AntiEdgeMask, EdgeMask&AntiEdgeMask)
	assert.Equal(t, AntiCornerMask, EdgeMask&AntiCornerMask)
}

func TestCornerMaskPopCount(t *testing.T) {
	assert.Equal(t, 4, CornerMask.PopCount())
}

func TestLsb(t *testing.T) {
	b := Bitboard(0b1011000)
	assert.EqualValues(t, 0b1000, b.Lsb())
	assert.Equal(t, 3, b.Lsb().LsbIndex())
}

func TestStartingPositionDisjoint(t *testing.T) {
	assert.Zero(t, StartBlack&StartWhite)
	assert.Equal(t, 2, StartBlack.PopCount())
	assert.Equal(t, 2, StartWhite.PopCount())
}
