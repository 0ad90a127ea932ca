/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package notation converts between bitboard squares and the algebraic
// notation used on the multiplayer wire protocol, and renders a board as
// text for terminal play.
package notation

import (
	"fmt"
	"strings"

	. "github.com/frankkopp/ReversiGo/types"
)

// Pass and Resign are the two non-square tokens recognised on the
// multiplayer channel alongside algebraic squares.
const (
	Pass   = "pass"
	Resign = "resign"
)

// ToAlgebraic renders square (0..63) as algebraic notation, e.g. 0 -> "a1",
// 63 -> "h8". Panics if square is out of range.
func ToAlgebraic(square int) string {
	if square < 0 || square > 63 {
		panic(fmt.Sprintf("notation: square out of range: %d", square))
	}
	file := square % 8
	rank := square / 8
	return fmt.Sprintf("%c%d", 'a'+file, rank+1)
}

// FromAlgebraic parses algebraic notation ("a1".."h8") into a square index
// (0..63). Case-insensitive.
func FromAlgebraic(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("notation: malformed square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("notation: malformed square %q", s)
	}
	return rank*8 + file, nil
}

// MoveToAlgebraic renders a single-bit move as algebraic notation, or the
// literal "pass" for the pass sentinel.
func MoveToAlgebraic(m Move) string {
	if m == MoveAllOnes {
		return Pass
	}
	return ToAlgebraic(m.Square())
}

// MoveFromToken parses a wire token into a Move. "pass" maps to the pass
// sentinel MoveAllOnes; "resign" is reported as an error since it ends the
// game rather than selecting a move.
func MoveFromToken(token string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case Pass:
		return MoveAllOnes, nil
	case Resign:
		return MoveNone, fmt.Errorf("notation: %q is not a move", Resign)
	}
	sq, err := FromAlgebraic(token)
	if err != nil {
		return MoveNone, err
	}
	return Move(Bitboard(1) << uint(sq)), nil
}

// BoardString renders an 8x8 board with 'o' for white discs, 'x' for black
// discs and '.' for empty squares, rank 8 first.
func BoardString(black, white Bitboard) string {
	var sb strings.Builder
	sb.WriteString("========\n")
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := r*8 + f
			bit := Bitboard(1) << uint(sq)
			switch {
			case white&bit != 0:
				sb.WriteByte('o')
			case black&bit != 0:
				sb.WriteByte('x')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("========")
	return sb.String()
}
