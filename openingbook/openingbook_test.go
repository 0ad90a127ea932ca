/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package openingbook

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/ReversiGo/position"
	. "github.com/frankkopp/ReversiGo/types"
)

func TestBookKeyFormat(t *testing.T) {
	key := bookKey(Bitboard(5), Bitboard(9), White)
	assert.Equal(t, "5,9,1", key)
	key = bookKey(Bitboard(5), Bitboard(9), Black)
	assert.Equal(t, "5,9,0", key)
}

func TestInsertAndGetEntryRoundTrip(t *testing.T) {
	b := NewBook()
	p := position.New()
	moves := Bitboard(position.CheckGameStatus(p).Moves)
	move := Move(moves.Lsb())
	b.Insert(p.Black, p.White, p.SideToMove, move)

	entry, ok := b.GetEntry(p)
	require.True(t, ok)
	// the start is its own image under a half turn and both diagonal
	// reflections, so after the identity image's d3 the entry also holds
	// d3's images under those: e6, c4 and f5
	require.Len(t, entry.Moves, 4)
	assert.Equal(t, move, entry.Moves[0])
}

func TestInsertDedupsRepeatedMove(t *testing.T) {
	b := NewBook()
	p := position.New()
	moves := Bitboard(position.CheckGameStatus(p).Moves)
	move := Move(moves.Lsb())
	b.Insert(p.Black, p.White, p.SideToMove, move)
	b.Insert(p.Black, p.White, p.SideToMove, move)

	// the second insert adds nothing to the four moves the first one stored
	// (d3 and its symmetric images e6, c4, f5)
	entry, ok := b.GetEntry(p)
	require.True(t, ok)
	assert.Len(t, entry.Moves, 4)
}

func TestInsertUnderSymmetryFindableFromRotatedPosition(t *testing.T) {
	b := NewBook()
	// an asymmetric position: one disc off-center so rotation is non-trivial
	black := StartBlack
	white := StartWhite | (Bitboard(1) << 20)
	move := Move(Bitboard(1) << 43)
	b.Insert(black, white, Black, move)

	rotatedBlack := rotate90(black)
	rotatedWhite := rotate90(white)
	rp := position.FromBitboards(rotatedBlack, rotatedWhite, Black)

	entry, ok := b.GetEntry(rp)
	require.True(t, ok, "rotated image of an inserted position must be findable without canonicalizing at lookup time")
	assert.Contains(t, entry.Moves, Move(rotate90(move.Bb())))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "reversigo-book")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	b := NewBook()
	p := position.New()
	moves := Bitboard(position.CheckGameStatus(p).Moves)
	move := Move(moves.Lsb())
	b.Insert(p.Black, p.White, p.SideToMove, move)
	wantLen := b.Len()

	path := filepath.Join(dir, "book.json")
	require.NoError(t, b.Save(path))

	loaded := NewBook()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, wantLen, loaded.Len())

	entry, ok := loaded.GetEntry(p)
	require.True(t, ok)
	assert.Contains(t, entry.Moves, move)
}

func TestInitializeFallsBackToEmptyBookOnMissingFile(t *testing.T) {
	b := NewBook()
	b.Initialize("/nonexistent/path/to/book.json", false, false)
	assert.Equal(t, 0, b.Len())
}

func TestGobCacheRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "reversigo-book-gob")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	b := NewBook()
	p := position.New()
	moves := Bitboard(position.CheckGameStatus(p).Moves)
	move := Move(moves.Lsb())
	b.Insert(p.Black, p.White, p.SideToMove, move)

	path := filepath.Join(dir, "book.json")
	require.NoError(t, b.Save(path))
	require.NoError(t, b.SaveGobCache(path))

	cached := NewBook()
	cached.Initialize(path, true, false)
	entry, ok := cached.GetEntry(p)
	require.True(t, ok)
	assert.Contains(t, entry.Moves, move)
}

func TestGenerateInsertsRootEntry(t *testing.T) {
	b := NewBook()
	root := position.New()

	// a deterministic stub search: always plays the lowest-index legal move
	stub := func(p *position.Position, depth int) (Move, Value) {
		status := position.CheckGameStatus(p)
		if status.Kind != position.StatusMoves {
			return MoveNone, ValueDraw
		}
		return Move(status.Moves.Lsb()), ValueDraw
	}

	b.Generate(root, 2, 0, 1, stub, "")

	entry, ok := b.GetEntry(root)
	require.True(t, ok, "generation must insert an entry for the root position")
	assert.NotEmpty(t, entry.Moves)

	// partial_depth=1 explores only ply 0 (root); the starting position's
	// eight dihedral images are either the start itself or its colour swap,
	// so they collapse to two book entries.
	assert.Equal(t, 2, b.Len())
}
