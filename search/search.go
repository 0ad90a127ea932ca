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

// Package search implements the fixed-depth negamax/alpha-beta core and its
// root-parallel variant, wired to an opening book and a transposition table
// through the Search type.
package search

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/ReversiGo/config"
	"github.com/frankkopp/ReversiGo/evaluator"
	"github.com/frankkopp/ReversiGo/franky_logging"
	"github.com/frankkopp/ReversiGo/moveslice"
	"github.com/frankkopp/ReversiGo/openingbook"
	"github.com/frankkopp/ReversiGo/position"
	"github.com/frankkopp/ReversiGo/transpositiontable"
	. "github.com/frankkopp/ReversiGo/types"
)

var out = message.NewPrinter(language.German)
var log = franky_logging.GetLog("search")

// Search ties the evaluator, opening book and transposition table together
// behind one synchronous entry point. There is no engine protocol to answer
// to here, so Run simply blocks until the requested depth is reached.
//  Create with New().
type Search struct {
	eval *evaluator.Evaluator
	book *openingbook.Book
	tt   *transpositiontable.TtTable

	lastResult *Result
}

// New builds a Search from the current config.Settings: it loads the
// opening book (if enabled) and allocates the shared transposition table
// (if enabled). Both are optional - a Search with neither still runs the
// negamax core correctly, just slower and without book moves.
func New(eval *evaluator.Evaluator) *Search {
	s := &Search{eval: eval}

	if config.Settings.Search.UseBook {
		s.book = openingbook.NewBook()
		s.book.Initialize(config.Settings.Search.BookPath, config.Settings.Search.UseBookCache, false)
	} else {
		log.Info("Opening book is disabled in configuration")
	}

	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.New(config.Settings.Search.TTSize)
	} else {
		log.Info("Transposition table is disabled in configuration")
	}

	return s
}

// Run searches p under limits and returns the result. If the opening book
// is enabled and holds an entry for p, the book move is returned directly
// without invoking the search core (BookMove is set on the result).
func (s *Search) Run(p *position.Position, limits Limits) *Result {
	start := time.Now()

	if limits.UseBook && s.book != nil {
		if entry, found := s.book.GetEntry(p); found && len(entry.Moves) > 0 {
			move := entry.Moves[0]
			log.Debugf("Opening book hit: playing %d", move.Square())
			return &Result{
				BestMove:   move,
				BestValue:  ValueDraw,
				SearchTime: time.Since(start),
				BookMove:   true,
			}
		}
	}

	// entries carry no search depth, so the table is emptied for every
	// top-level call rather than carried over from a previous one
	if s.tt != nil {
		s.tt.Resize(config.Settings.Search.TTSize)
	}

	var move Move
	var value Value
	var stats Statistics

	if limits.RootParallel {
		move, value, stats = s.rootParallel(p, limits.Depth)
	} else {
		ab := &alphaBeta{eval: s.eval, stats: &stats}
		move, value = ab.negamax(p, limits.Depth, -ValueInfinite, ValueInfinite, s.tt)
	}

	result := &Result{
		BestMove:    move,
		BestValue:   value,
		SearchTime:  time.Since(start),
		SearchDepth: limits.Depth,
		Stats:       stats,
	}
	s.lastResult = result
	log.Info(out.Sprintf("Search finished after %d ms, depth %d, %d nodes (%s)",
		result.SearchTime.Milliseconds(), result.SearchDepth, result.Stats.Nodes, result.String()))
	return result
}

// LastResult returns the most recently completed search result, or nil if
// Run has never been called.
func (s *Search) LastResult() *Result {
	return s.lastResult
}

// rootParallel implements a root-parallel search variant: every legal
// root move is applied and recursed into the sequential negamax core
// concurrently, each with its own fresh transposition table, with pruning
// disabled at this fan-out (every child gets the full [-inf, +inf] window)
// so that speculative parallel exploration cannot poison the root decision.
// The reduction picks the maximum by sign-normalised eval, breaking ties by
// first-seen in move order - never by goroutine completion order, so the
// result is deterministic regardless of scheduling.
func (s *Search) rootParallel(p *position.Position, depth int) (Move, Value, Statistics) {
	packed := position.CheckGameStatusPacked(p)
	switch packed {
	case statusPass:
		child := p.Copy()
		child.MakePass()
		stats := Statistics{}
		stats.addPass()
		ab := &alphaBeta{eval: s.eval, stats: &stats}
		_, v := ab.negamax(&child, depth, -ValueInfinite, ValueInfinite, s.tt)
		return MoveAllOnes, v, stats
	case statusWinBlack:
		return MoveAllOnes, ValueWin, Statistics{}
	case statusWinWhite:
		return MoveAllOnes, ValueLoss, Statistics{}
	case statusDraw:
		return MoveAllOnes, ValueDraw, Statistics{}
	}

	moves := Bitboard(packed)
	whiteToMove := p.SideToMove == White

	type candidate struct {
		move  Move
		value Value
		norm  Value
		stats Statistics
	}

	order := moveslice.New(moves.PopCount())
	remaining := moves
	for remaining != 0 {
		bit := remaining.Lsb()
		remaining &^= bit
		order.PushBack(Move(bit))
	}

	// results is indexed by move order, not by goroutine completion order,
	// so the reduction below sees candidates in a fixed, reproducible order
	// regardless of how the scheduler interleaves the goroutines.
	results := make([]candidate, order.Len())

	parallelism := config.Settings.Search.MaxParallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(parallelism))
	var wg sync.WaitGroup

	for i, mv := range order.Data() {
		i, mv := i, mv
		wg.Add(1)
		_ = sem.Acquire(context.Background(), 1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			child := p.Copy()
			if _, err := child.MakeMove(mv.Bb()); err != nil {
				results[i] = candidate{move: mv, norm: negInfinity}
				return
			}

			childStats := Statistics{}
			childTT := s.freshChildTT()
			ab := &alphaBeta{eval: s.eval, stats: &childStats}
			_, childEval := ab.negamax(&child, depth-1, -ValueInfinite, ValueInfinite, childTT)
			childEval = compressMateDistance(childEval)

			var norm Value
			if whiteToMove {
				norm = -childEval
			} else {
				norm = childEval
			}

			results[i] = candidate{move: mv, value: childEval, norm: norm, stats: childStats}
		}()
	}
	wg.Wait()

	best := results[0]
	for _, c := range results[1:] {
		if c.norm > best.norm {
			best = c
		}
	}

	var total Statistics
	for _, c := range results {
		total.merge(&c.stats)
	}

	return best.move, best.value, total
}

// freshChildTT allocates a new transposition table for one root-parallel
// child, sized the same as the shared table would be, so each child search
// has its own private table and no cross-goroutine sharing occurs. Returns
// nil (meaning "no TT") when the transposition table is disabled.
func (s *Search) freshChildTT() *transpositiontable.TtTable {
	if !config.Settings.Search.UseTT {
		return nil
	}
	return transpositiontable.New(config.Settings.Search.TTSize)
}
