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

package position

import (
	"github.com/frankkopp/ReversiGo/movegen"
	. "github.com/frankkopp/ReversiGo/types"
)

// StatusKind discriminates the outcome of CheckGameStatus.
type StatusKind uint8

const (
	// StatusMoves means the side to move has at least one legal move; Moves
	// holds the mask.
	StatusMoves StatusKind = iota
	// StatusPass means the side to move has no legal move but the opponent
	// does; play continues with the opponent to move.
	StatusPass
	// StatusWinBlack/StatusWinWhite/StatusDraw mean the game is over: neither
	// side has a legal move.
	StatusWinBlack
	StatusWinWhite
	StatusDraw
)

// Status is the tagged-sum result of classifying a position - the clean
// interface exposed at the package boundary. A packed u64-sentinel encoding
// is still used on search's hot recursive path (see checkGameStatusPacked);
// CheckGameStatusPacked is the only exported way to reach it.
type Status struct {
	Kind  StatusKind
	Moves Bitboard // valid only when Kind == StatusMoves
}

// Packed sentinel values: a legal-move mask m is returned as-is when
// non-zero, AllOnes means pass, and AllOnes-1/-2/-3 mean terminal
// black/white/draw respectively.
const (
	statusPass       uint64 = AllOnes
	statusWinBlack   uint64 = AllOnes - 1
	statusWinWhite   uint64 = AllOnes - 2
	statusDraw       uint64 = AllOnes - 3
)

// checkGameStatusPacked implements the packed encoding directly; it is the
// hot path search calls on every node.
func checkGameStatusPacked(p *Position) uint64 {
	myMoves := movegen.ComputeMoves(p.Me(), p.Opp())
	if myMoves != 0 {
		return uint64(myMoves)
	}
	oppMoves := movegen.ComputeMoves(p.Opp(), p.Me())
	if oppMoves != 0 {
		return statusPass
	}
	blackCount := p.Black.PopCount()
	whiteCount := p.White.PopCount()
	switch {
	case blackCount > whiteCount:
		return statusWinBlack
	case whiteCount > blackCount:
		return statusWinWhite
	default:
		return statusDraw
	}
}

// CheckGameStatusPacked exposes the packed encoding to the search package's
// hot recursive path, where allocating a Status per node would be wasteful.
// Every other caller should use CheckGameStatus instead.
func CheckGameStatusPacked(p *Position) uint64 {
	return checkGameStatusPacked(p)
}

// CheckGameStatus classifies the position: legal moves for the side to
// move, a pass, or one of the three terminal outcomes. This is the clean,
// tagged interface external callers should use; search uses the packed
// form internally for speed.
func CheckGameStatus(p *Position) Status {
	packed := checkGameStatusPacked(p)
	switch packed {
	case statusPass:
		return Status{Kind: StatusPass}
	case statusWinBlack:
		return Status{Kind: StatusWinBlack}
	case statusWinWhite:
		return Status{Kind: StatusWinWhite}
	case statusDraw:
		return Status{Kind: StatusDraw}
	default:
		return Status{Kind: StatusMoves, Moves: Bitboard(packed)}
	}
}
