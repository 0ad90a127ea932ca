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

package openingbook

import (
	"github.com/frankkopp/ReversiGo/position"
	. "github.com/frankkopp/ReversiGo/types"
)

// SearchFunc is the offline search callback Generate uses to judge the best
// move for a position at a fixed depth. Generate takes this as a parameter,
// rather than importing the search package directly, so openingbook has no
// dependency on search even though generation is search-driven - it is
// search's Search type that depends on openingbook for book moves during
// play, and the reverse dependency would cycle.
type SearchFunc func(p *position.Position, depth int) (Move, Value)

// Generate builds an opening book breadth-first starting at root:
//
// For each ply d in [0, partialDepth), every position in the current queue
// that is not already in the book is searched at calculationDepth and its
// best move inserted under all eight symmetries. While d < fullDepth every
// legal child is enqueued for the next ply; once d >= fullDepth, only the
// single child reached by the best move is enqueued, continuing the book
// along the main line. The book is persisted to persistPath after each
// position (when persistPath is non-empty), and once more at the end.
func (b *Book) Generate(root *position.Position, calculationDepth, fullDepth, partialDepth int, search SearchFunc, persistPath string) {
	queue := []position.Position{*root}

	for d := 0; d < partialDepth; d++ {
		var next []position.Position
		for i := range queue {
			pos := &queue[i]
			key := bookKey(pos.Black, pos.White, pos.SideToMove)

			b.mu.RLock()
			_, already := b.entries[key]
			b.mu.RUnlock()
			if already {
				continue
			}

			move, _ := search(pos, calculationDepth)
			if move == MoveNone || move == MoveAllOnes {
				log.Debugf("Book generation: no usable move at ply %d for %s, skipping", d, key)
				continue
			}
			b.Insert(pos.Black, pos.White, pos.SideToMove, move)

			if d < fullDepth {
				next = append(next, childPositions(pos)...)
			} else {
				child := pos.Copy()
				if _, err := child.MakeMove(move.Bb()); err == nil {
					next = append(next, child)
				}
			}

			if persistPath != "" {
				if err := b.Save(persistPath); err != nil {
					log.Warningf("Book generation: could not persist to %q: %v", persistPath, err)
				}
			}
		}
		queue = next
		log.Infof("Book generation: ply %d done, %d positions queued for next ply, %d entries total", d, len(queue), b.Len())
	}

	if persistPath != "" {
		if err := b.Save(persistPath); err != nil {
			log.Warningf("Book generation: final persist to %q failed: %v", persistPath, err)
		}
	}
}
