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

package config

import (
	"runtime"

	"github.com/frankkopp/ReversiGo/position"
	"github.com/frankkopp/ReversiGo/util"
)

// searchConfiguration holds the configuration of a search instance.
type searchConfiguration struct {
	// Opening book
	UseBook    bool
	BookPath   string
	BookFormat string
	UseBookCache bool

	// Transposition table
	UseTT  bool
	TTSize int // MB, per root child when root-parallel

	// Zobrist hashing - see position/zobrist.go. The legacy non-mixed mode
	// is kept so the known side-to-move collision weakness remains
	// reproducible for parity testing.
	MixSideToMove bool

	// Search depth (plies) used by the fixed-depth negamax/alpha-beta core.
	Depth int

	// Root-parallel fan-out concurrency cap; 0 means runtime.NumCPU().
	MaxParallelism int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/book.json"
	Settings.Search.BookFormat = "json"
	Settings.Search.UseBookCache = false

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.MixSideToMove = true

	Settings.Search.Depth = 8

	Settings.Search.MaxParallelism = 0
}

func setupSearch() {
	if Settings.Search.Depth <= 0 {
		Settings.Search.Depth = 8
	}
	if Settings.Search.TTSize <= 0 {
		Settings.Search.TTSize = 64
	}
	// a configured cap never exceeds the machine's actual core count
	if Settings.Search.MaxParallelism > 0 {
		Settings.Search.MaxParallelism = util.Min(Settings.Search.MaxParallelism, runtime.NumCPU())
	}
	position.MixSideToMove = Settings.Search.MixSideToMove
}
