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

// Package transpositiontable implements a fixed-size, direct-mapped
// transposition table keyed by a Zobrist hash. There is no chaining:
// collisions always overwrite (always-replace). Each table instance is
// used by one search invocation at a time and starts that search empty - the
// root-parallel search gives each child its own table of the full
// configured size (the size is not divided among the children) instead of
// sharing one across goroutines.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/ReversiGo/franky_logging"
	"github.com/frankkopp/ReversiGo/position"
	. "github.com/frankkopp/ReversiGo/types"
)

var out = message.NewPrinter(language.German)
var log = franky_logging.GetLog("tt")

// Flag records whether a stored Value is exact or a bound.
type Flag uint8

// The four flag values. Empty marks a never-written slot.
const (
	Empty Flag = iota
	Exact
	Lower
	Upper
)

// TtEntrySize is the size in bytes of one TtEntry.
const TtEntrySize = int(unsafe.Sizeof(TtEntry{}))

// MaxSizeInMB bounds how large a table Resize will honour.
const MaxSizeInMB = 65_536

// ProbeMiss is returned as the Value half of a Probe miss - a value chosen
// outside any reachable evaluation range so it can never be confused with a
// real stored value.
const ProbeMiss Value = -163840

// TtEntry is one slot of the table.
type TtEntry struct {
	Key      position.Key
	Flag     Flag
	Value    Value
	BestMove Move
}

// Stats tracks usage counters, reported via String().
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// TtTable is a power-of-two-sized, direct-mapped transposition table.
//  Create with New().
type TtTable struct {
	data     []TtEntry
	hashMask uint64
	entries  uint64
	Stats    Stats
}

// New creates a TtTable sized to the largest power of two of entries that
// fits within sizeInMByte.
func New(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize clears the table and resizes it to fit within sizeInMByte.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Warningf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}
	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	maxEntries := uint64(0)
	if sizeInByte >= uint64(TtEntrySize) {
		maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte)/float64(TtEntrySize))))
	}
	tt.hashMask = 0
	if maxEntries > 0 {
		tt.hashMask = maxEntries - 1
	}
	tt.data = make([]TtEntry, maxEntries)
	tt.entries = 0
	tt.Stats = Stats{}
	log.Debugf("TT resized to %d MB, %d entries of %d bytes", sizeInMByte, maxEntries, TtEntrySize)
}

// index hashes a Zobrist key down to a table slot.
func (tt *TtTable) index(key position.Key) uint64 {
	return uint64(key) & tt.hashMask
}

// Put stores an entry, overwriting unconditionally whatever was there
// before (always-replace; there is no chaining on collision).
func (tt *TtTable) Put(key position.Key, move Move, value Value, flag Flag) {
	if len(tt.data) == 0 {
		return
	}
	tt.Stats.Puts++
	e := &tt.data[tt.index(key)]
	if e.Flag == Empty {
		tt.entries++
	} else if e.Key != key {
		tt.Stats.Collisions++
		tt.Stats.Overwrites++
	}
	e.Key = key
	e.Flag = flag
	e.Value = value
	e.BestMove = move
}

// Probe implements the standard alpha-beta cutoff protocol directly: given
// the window (alpha, beta) currently in force at this node, it returns the
// stored value and move when the entry is usable as-is - an Exact entry, a Lower
// bound that already meets beta, or an Upper bound that already meets
// alpha - and signals a miss (ProbeMiss, MoveNone, false) in every other
// case (empty slot, a different position at this slot, or a bound that
// does not yet resolve the window).
func (tt *TtTable) Probe(key position.Key, alpha, beta Value) (value Value, move Move, ok bool) {
	if len(tt.data) == 0 {
		return ProbeMiss, MoveNone, false
	}
	tt.Stats.Probes++
	e := &tt.data[tt.index(key)]
	if e.Flag == Empty || e.Key != key {
		tt.Stats.Misses++
		return ProbeMiss, MoveNone, false
	}
	switch {
	case e.Flag == Exact:
		tt.Stats.Hits++
		return e.Value, e.BestMove, true
	case e.Flag == Lower && e.Value >= beta:
		tt.Stats.Hits++
		return e.Value, e.BestMove, true
	case e.Flag == Upper && e.Value <= alpha:
		tt.Stats.Hits++
		return e.Value, e.BestMove, true
	}
	tt.Stats.Misses++
	return ProbeMiss, MoveNone, false
}

// PeekMove returns the best-move hint stored for key, if any, without
// regard to the entry's bound/window - useful purely for move ordering.
func (tt *TtTable) PeekMove(key position.Key) (Move, bool) {
	if len(tt.data) == 0 {
		return MoveNone, false
	}
	e := &tt.data[tt.index(key)]
	if e.Flag == Empty || e.Key != key {
		return MoveNone, false
	}
	return e.BestMove, true
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.entries
}

// Hashfull returns fill ratio in permille, as per UCI convention.
func (tt *TtTable) Hashfull() int {
	if len(tt.data) == 0 {
		return 0
	}
	return int((1000 * tt.entries) / uint64(len(tt.data)))
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: entries %d/%d (%d permille) puts %d collisions %d overwrites %d probes %d hits %d misses %d",
		tt.entries, len(tt.data), tt.Hashfull(), tt.Stats.Puts, tt.Stats.Collisions, tt.Stats.Overwrites,
		tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}

// ageAll is a parallel-fanout maintenance hook. Reversi's per-call table
// lifetime means it currently has nothing useful to age, but the goroutine
// fan-out pattern is ready if a future shared-table mode needs it.
func (tt *TtTable) ageAll(clear func(*TtEntry)) {
	start := time.Now()
	workers := uint64(32)
	if uint64(len(tt.data)) < workers {
		workers = 1
	}
	if workers == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(int(workers))
	slice := uint64(len(tt.data)) / workers
	for i := uint64(0); i < workers; i++ {
		go func(i uint64) {
			defer wg.Done()
			begin := i * slice
			end := begin + slice
			if i == workers-1 {
				end = uint64(len(tt.data))
			}
			for n := begin; n < end; n++ {
				clear(&tt.data[n])
			}
		}(i)
	}
	wg.Wait()
	log.Debugf("aged %d entries in %d ms", len(tt.data), time.Since(start).Milliseconds())
}
