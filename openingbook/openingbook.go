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

// Package openingbook stores, for a set of Reversi positions, the move(s)
// an offline search judged best - keyed by the exact raw position so that
// lookup never needs to canonicalize, because every dihedral symmetry of an
// inserted position was stored at insert time.
package openingbook

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/ReversiGo/franky_logging"
	"github.com/frankkopp/ReversiGo/movegen"
	"github.com/frankkopp/ReversiGo/position"
	. "github.com/frankkopp/ReversiGo/types"
)

var out = message.NewPrinter(language.German)
var log = franky_logging.GetLog("openingbook")

// BookEntry is the ordered, deduplicated list of moves suggested for one
// exact position.
type BookEntry struct {
	Moves []Move
}

// Book maps exact positions (by their textual key) to a BookEntry.
//  Create with NewBook().
type Book struct {
	mu          sync.RWMutex
	entries     map[string]*BookEntry
	initialized bool
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{entries: make(map[string]*BookEntry)}
}

// bookKey renders the textual key format used for persistence and lookup:
// "<black>,<white>,<white_to_move 0|1>".
func bookKey(black, white Bitboard, sideToMove Side) string {
	wtm := 0
	if sideToMove == White {
		wtm = 1
	}
	return fmt.Sprintf("%d,%d,%d", uint64(black), uint64(white), wtm)
}

// GetEntry looks up the exact raw position - no canonicalization needed at
// query time, since Insert already stored every symmetry image.
func (b *Book) GetEntry(p *position.Position) (*BookEntry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.entries[bookKey(p.Black, p.White, p.SideToMove)]
	return e, ok
}

// Len returns the number of distinct position keys stored.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Insert records move as a suggestion for (black, white, sideToMove) and,
// via symmetry canonicalization, for all seven other dihedral images of
// that position/move pair as well.
func (b *Book) Insert(black, white Bitboard, sideToMove Side, move Move) {
	images := dihedralImages(black, white, move.Bb())
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, img := range images {
		key := bookKey(img.black, img.white, sideToMove)
		e, ok := b.entries[key]
		if !ok {
			e = &BookEntry{}
			b.entries[key] = e
		}
		m := Move(img.move)
		dup := false
		for _, existing := range e.Moves {
			if existing == m {
				dup = true
				break
			}
		}
		if !dup {
			e.Moves = append(e.Moves, m)
		}
	}
}

// jsonEntry is the on-disk shape of one book entry: a human-inspectable
// record of the form "{suggested_moves: […]}".
type jsonEntry struct {
	SuggestedMoves []uint64 `json:"suggested_moves"`
}

// Save persists the book as a JSON key-value file.
func (b *Book) Save(path string) error {
	b.mu.RLock()
	out := make(map[string]jsonEntry, len(b.entries))
	for k, e := range b.entries {
		moves := make([]uint64, len(e.Moves))
		for i, m := range e.Moves {
			moves[i] = uint64(m)
		}
		out[k] = jsonEntry{SuggestedMoves: moves}
	}
	b.mu.RUnlock()

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a JSON key-value book file, replacing the book's in-memory
// contents.
func (b *Book) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make(map[string]*BookEntry, len(raw))
	for k, je := range raw {
		moves := make([]Move, len(je.SuggestedMoves))
		for i, m := range je.SuggestedMoves {
			moves[i] = Move(m)
		}
		entries[k] = &BookEntry{Moves: moves}
	}
	b.mu.Lock()
	b.entries = entries
	b.mu.Unlock()
	return nil
}

// gobCachePath derives the optional binary cache's path from the JSON
// source path.
func gobCachePath(path string) string {
	return path + ".gob"
}

// SaveGobCache writes a gob-encoded snapshot alongside path, for faster
// reloads of a large generated book.
func (b *Book) SaveGobCache(path string) error {
	f, err := os.Create(gobCachePath(path))
	if err != nil {
		return err
	}
	defer f.Close()
	b.mu.RLock()
	defer b.mu.RUnlock()
	return gob.NewEncoder(f).Encode(b.entries)
}

// loadGobCache loads a previously written gob cache, if present.
func (b *Book) loadGobCache(path string) (bool, error) {
	f, err := os.Open(gobCachePath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	var entries map[string]*BookEntry
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return false, err
	}
	b.mu.Lock()
	b.entries = entries
	b.mu.Unlock()
	return true, nil
}

// Initialize loads the book at path, optionally via a gob cache. Per the
// design notes' error-handling decision, a missing or corrupt book file is
// not fatal: Initialize logs a diagnostic and leaves the book empty rather
// than returning an error to the caller, since a Reversi engine without an
// opening book is merely slower to start a game, not broken.
func (b *Book) Initialize(path string, useCache bool, recreateCache bool) {
	if b.initialized {
		return
	}
	start := time.Now()

	if useCache && !recreateCache {
		if ok, err := b.loadGobCache(path); err == nil && ok {
			log.Infof("Opening book loaded from gob cache in %d ms (%d entries)", time.Since(start).Milliseconds(), b.Len())
			b.initialized = true
			return
		}
	}

	if err := b.Load(path); err != nil {
		log.Warningf("Opening book %q could not be loaded (%v) - continuing with an empty book", path, err)
		b.entries = make(map[string]*BookEntry)
		b.initialized = true
		return
	}
	log.Info(out.Sprintf("Opening book loaded from %s in %d ms (%d entries)", path, time.Since(start).Milliseconds(), b.Len()))

	if useCache {
		if err := b.SaveGobCache(path); err != nil {
			log.Warningf("Could not write opening book cache: %v", err)
		}
	}
	b.initialized = true
}

// childPositions returns every legal successor of p, skipping moves whose
// apply fails (which should not happen for a bitmap produced by movegen).
func childPositions(p *position.Position) []position.Position {
	moves := movegen.ComputeMoves(p.Me(), p.Opp())
	var children []position.Position
	remaining := moves
	for remaining != 0 {
		bit := remaining.Lsb()
		remaining &^= bit
		child := p.Copy()
		if _, err := child.MakeMove(bit); err == nil {
			children = append(children, child)
		}
	}
	return children
}
