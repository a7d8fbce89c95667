// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wu

import "znkr.io/editscript/internal/ops"

// split finds a point (mx, my) on an optimal path through f. Both f.ix1 <= mx+1 <= f.ix2 and
// f.iy1 <= my+1 <= f.iy2 hold, and the optimal paths through [ix1, mx+1) x [iy1, my+1) and
// [mx+1, ix2) x [my+1, iy2) together form an optimal path through f.
//
// If the path through f only consists of matches and insertions along the diagonals in
// [0, delta], split writes the ops for f directly and returns done = true.
//
// The wavefront tables store y-coordinates of the last element consumed on each diagonal k, with
// k = iy - ix relative to the origin of f. fps[o+k] is the furthest forward point and bps[o+k]
// the furthest backward point. f must be normalized and not be a base case.
func (sv *solver[T, E]) split(f frame) (mx, my int, done bool) {
	dx, dy := f.ix2-f.ix1, f.iy2-f.iy1
	delta := dy - dx
	o := dx + 1 // offset for diagonal 0
	fps, bps := sv.fps[:dx+dy+3], sv.bps[:dx+dy+3]

	for i := range fps {
		fps[i] = f.iy1 - 2
	}
	fps[o] = f.iy1 - 1
	for i := range dy + 1 {
		bps[i] = f.iy1 + i - 1
	}
	for i := dy + 1; i < len(bps); i++ {
		bps[i] = f.iy2
	}

	// meet translates a meeting point on diagonal k into the result.
	meet := func(k, iy int) (int, int, bool) {
		return iy - f.iy1 - k + f.ix1, iy, false
	}

	for p := 0; ; p++ {
		// There are at most dx deletions on an optimal path, the search can't go beyond that.
		if p > dx {
			panic("middle point search didn't converge")
		}

		// Forward search: below delta from left to right, above delta from right to left, and
		// delta last.
		for k := -p; k < delta; k++ {
			if iy, ok := sv.forward(f, o, k); ok {
				return meet(k, iy)
			}
		}
		for k := delta + p; k > delta; k-- {
			if iy, ok := sv.forward(f, o, k); ok {
				return meet(k, iy)
			}
		}
		if iy, ok := sv.forward(f, o, delta); ok {
			return meet(delta, iy)
		}

		if p == 0 && fps[o+delta] == f.iy2-1 {
			// No deletions are needed. Meeting at the end of f would result in a split that
			// doesn't make any progress.
			sv.trace(f, o, delta)
			return 0, 0, true
		}

		// Backward search: delta first, below delta from right to left, above delta from left to
		// right.
		if iy, ok := sv.backward(f, o, delta); ok {
			return meet(delta, iy)
		}
		for k := delta - 1; k >= -dx; k-- {
			if iy, ok := sv.backward(f, o, k); ok {
				return meet(k, iy)
			}
		}
		for k := delta + 1; k <= dy; k++ {
			if iy, ok := sv.backward(f, o, k); ok {
				return meet(k, iy)
			}
		}
	}
}

// forward advances the forward wavefront on diagonal k by one edit and reports whether it reached
// the backward wavefront.
func (sv *solver[T, E]) forward(f frame, o, k int) (iy int, met bool) {
	fps, bps := sv.fps, sv.bps
	iy = max(fps[o+k-1]+1, fps[o+k+1])
	fps[o+k] = iy
	if bps[o+k] <= iy {
		return iy, true
	}
	iy = sv.snakeForward(f, iy-f.iy1-k+f.ix1, iy)
	fps[o+k] = iy
	return iy, false
}

// backward advances the backward wavefront on diagonal k by one edit and reports whether it
// reached the forward wavefront.
func (sv *solver[T, E]) backward(f frame, o, k int) (iy int, met bool) {
	fps, bps := sv.fps, sv.bps
	iy = max(min(bps[o+k-1], bps[o+k+1]-1), f.iy1-1)
	bps[o+k] = iy
	if iy <= fps[o+k] {
		return iy, true
	}
	iy = sv.snakeBackward(f, iy-f.iy1-k+f.ix1, iy)
	bps[o+k] = iy
	return iy, false
}

// snakeForward follows matches after (ix, iy) and returns the y-coordinate of the last match.
func (sv *solver[T, E]) snakeForward(f frame, ix, iy int) int {
	for ix+1 < f.ix2 && iy+1 < f.iy2 && sv.equal(f, ix+1, iy+1) {
		ix++
		iy++
	}
	return iy
}

// snakeBackward follows matches from (ix, iy) towards the origin and returns the y-coordinate
// before the first match.
func (sv *solver[T, E]) snakeBackward(f frame, ix, iy int) int {
	for f.ix1 <= ix && f.iy1 <= iy && sv.equal(f, ix, iy) {
		ix--
		iy--
	}
	return iy
}

// trace writes the ops for f after a forward search with p = 0 reached the end of f on diagonal
// delta. Such a path runs through diagonals 0, 1, ..., delta in order: it follows the matches
// on every diagonal and moves to the next diagonal with one insertion.
func (sv *solver[T, E]) trace(f frame, o, delta int) {
	iy := f.iy1
	for k := range delta {
		for ; iy <= sv.fps[o+k]; iy++ {
			sv.emit(ops.Keep)
		}
		sv.emit(f.insertOp())
		iy++
	}
	for ; iy < f.iy2; iy++ {
		sv.emit(ops.Keep)
	}
}
