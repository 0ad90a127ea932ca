/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package openingbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/ReversiGo/types"
)

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	b := StartBlack | StartWhite
	got := b
	for i := 0; i < 4; i++ {
		got = rotate90(got)
	}
	assert.Equal(t, b, got)
}

func TestFlipVerticalTwiceIsIdentity(t *testing.T) {
	b := StartBlack
	assert.Equal(t, b, flipVertical(flipVertical(b)))
}

func TestFlipHorizontalEqualsVerticalFlipThenRotate180(t *testing.T) {
	b := Bitboard(1) << 9 // b2, an asymmetric single bit
	rot180 := func(x Bitboard) Bitboard { return rotate90(rotate90(x)) }
	assert.Equal(t, flipHorizontal(b), rot180(flipVertical(b)))
}

func TestDihedralImagesOfStartingPositionAreStartOrColourSwap(t *testing.T) {
	// the standard Othello starting position is unchanged by a half turn and
	// by the two diagonal reflections, but a quarter turn or a vertical flip
	// makes d4/e5 and d5/e4 trade colours. dihedralImages lists the four
	// rotations, then the four rotations of the vertical flip, so images 0,
	// 2, 5 and 7 are the start itself and 1, 3, 4 and 6 its colour swap.
	images := dihedralImages(StartBlack, StartWhite, 0)
	for i, img := range images {
		if i == 0 || i == 2 || i == 5 || i == 7 {
			assert.Equal(t, StartBlack, img.black)
			assert.Equal(t, StartWhite, img.white)
		} else {
			assert.Equal(t, StartWhite, img.black)
			assert.Equal(t, StartBlack, img.white)
		}
	}
}

func TestDihedralImagesProduceEightDistinctMoveBits(t *testing.T) {
	// c4 (square 26) lies on neither diagonal of the board, so its eight
	// images all differ - this guards against a transform degenerating to
	// the identity or duplicating another.
	move := Bitboard(1) << 26
	images := dihedralImages(0, 0, move)
	seen := make(map[Bitboard]bool)
	for _, img := range images {
		seen[img.move] = true
	}
	assert.Equal(t, 8, len(seen))
}
