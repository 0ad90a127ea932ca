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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/ReversiGo/types"
)

func TestNewIsDisjointAndHasFourDiscs(t *testing.T) {
	p := New()
	assert.Zero(t, p.Black&p.White)
	assert.Equal(t, 2, p.Black.PopCount())
	assert.Equal(t, 2, p.White.PopCount())
	assert.Equal(t, Black, p.SideToMove)
}

func TestCheckGameStatusDrawTerminal(t *testing.T) {
	// contrived full board, equal discs, no moves for either side
	half := Bitboard(0x0F0F0F0F0F0F0F0F)
	p := FromBitboards(half, ^half, Black)
	st := CheckGameStatus(p)
	assert.Equal(t, StatusDraw, st.Kind)
}

func TestCheckGameStatusTerminalWhiteLeads(t *testing.T) {
	// 63 discs for white, 1 for black, no legal moves for either side
	black := Bitboard(1)
	white := ^black
	p := FromBitboards(black, white, Black)
	st := CheckGameStatus(p)
	assert.Equal(t, StatusWinWhite, st.Kind)
}

func TestMakeMoveUpdatesZobristIncrementally(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		st := CheckGameStatus(p)
		if st.Kind != StatusMoves {
			if st.Kind == StatusPass {
				p.MakePass()
				continue
			}
			break
		}
		// pick a pseudo-random legal move
		moves := st.Moves
		n := moves.PopCount()
		idx := rng.Intn(n)
		m := moves
		for j := 0; j < idx; j++ {
			m &= m - 1
		}
		move := m.Lsb()
		_, err := p.MakeMove(move)
		require.NoError(t, err)
		want := computeZobristHash(p.Black, p.White, p.SideToMove)
		assert.Equal(t, want, p.ZobristKey())
	}
}

func TestMakeMoveRejectsIllegal(t *testing.T) {
	p := New()
	_, err := p.MakeMove(Bitboard(1))
	assert.Error(t, err)
}
