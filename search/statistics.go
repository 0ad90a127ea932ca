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

package search

import "sync/atomic"

// Statistics holds counters describing one search run - extra data, not
// essential to a functioning search, but useful to judge move-ordering and
// transposition-table quality.
type Statistics struct {
	Nodes    int64
	TTHits   int64
	TTMisses int64
	TTCuts   int64
	Passes   int64
}

// addNode, addTTHit etc. are used from the root-parallel goroutines, so the
// counters they touch are updated atomically.
func (st *Statistics) addNode() {
	atomic.AddInt64(&st.Nodes, 1)
}

func (st *Statistics) addTTHit() {
	atomic.AddInt64(&st.TTHits, 1)
}

func (st *Statistics) addTTMiss() {
	atomic.AddInt64(&st.TTMisses, 1)
}

func (st *Statistics) addTTCut() {
	atomic.AddInt64(&st.TTCuts, 1)
}

func (st *Statistics) addPass() {
	atomic.AddInt64(&st.Passes, 1)
}

// merge folds another Statistics' counters into st, used to combine the
// per-child statistics gathered by the root-parallel fan-out.
func (st *Statistics) merge(other *Statistics) {
	atomic.AddInt64(&st.Nodes, atomic.LoadInt64(&other.Nodes))
	atomic.AddInt64(&st.TTHits, atomic.LoadInt64(&other.TTHits))
	atomic.AddInt64(&st.TTMisses, atomic.LoadInt64(&other.TTMisses))
	atomic.AddInt64(&st.TTCuts, atomic.LoadInt64(&other.TTCuts))
	atomic.AddInt64(&st.Passes, atomic.LoadInt64(&other.Passes))
}
