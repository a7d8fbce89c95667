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

// Package wu computes minimal edit scripts with the O(NP) algorithm described in "An O(NP)
// Sequence Comparison Algorithm" by Sun Wu, Udi Manber, Gene Myers and Webb Miller, combined with
// a divide-and-conquer step in the style of Hirschberg that keeps the space requirements linear.
//
// The output of [Run] is an op stream: one [ops.Op] per edit, padded with [ops.Sentinel] to a
// length of len(x)+len(y)+1.
package wu

import (
	"slices"

	"znkr.io/editscript/internal/ops"
)

// Equaler compares an element from x with an element from y.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

// Comparable compares elements using ==.
type Comparable[T comparable] struct{}

func (Comparable[T]) Equal(a, b T) bool { return a == b }

// Func adapts an equality function to an [Equaler].
type Func[T any] func(a, b T) bool

func (f Func[T]) Equal(a, b T) bool { return f(a, b) }

// Scratch holds all memory needed to compute an edit script. The zero value is ready to use. A
// Scratch grows to the largest input it has seen and is never shrunk.
type Scratch struct {
	ops      []ops.Op
	fps, bps []int
	stack    []frame
}

// reset prepares s for inputs of length nx and ny.
func (s *Scratch) reset(nx, ny int) {
	n := nx + ny + 1
	s.ops = slices.Grow(s.ops[:0], n)[:n]
	clear(s.ops) // ops.Sentinel is the zero value.

	// Two more diagonals than the op stream is long: one left of -nx and one right of ny.
	m := nx + ny + 3
	s.fps = slices.Grow(s.fps[:0], m)[:m]
	s.bps = slices.Grow(s.bps[:0], m)[:m]
	s.stack = s.stack[:0]
}

// frame is a subproblem: transform x[ix1:ix2] into y[iy1:iy2].
//
// If swapped is set, the roles of x and y are exchanged, that is, ix1 and ix2 index into the
// original y and iy1 and iy2 index into the original x. Ops are written for the original
// orientation.
type frame struct {
	ix1, ix2 int
	iy1, iy2 int
	swapped  bool
}

// normalize makes sure that the x-range of f is not longer than its y-range.
func (f frame) normalize() frame {
	if f.iy2-f.iy1 < f.ix2-f.ix1 {
		return frame{
			ix1:     f.iy1,
			ix2:     f.iy2,
			iy1:     f.ix1,
			iy2:     f.ix2,
			swapped: !f.swapped,
		}
	}
	return f
}

// deleteOp returns the op for consuming an element from the x-range of f.
func (f frame) deleteOp() ops.Op {
	if f.swapped {
		return ops.Insert
	}
	return ops.Delete
}

// insertOp returns the op for consuming an element from the y-range of f.
func (f frame) insertOp() ops.Op {
	if f.swapped {
		return ops.Delete
	}
	return ops.Insert
}

type solver[T any, E Equaler[T]] struct {
	x, y     []T
	eq       E
	fps, bps []int
	out      []ops.Op
	n        int // Number of ops written to out.
}

// Run computes a minimal edit script to transform x into y.
//
// The result aliases memory in s and is only valid until the next use of s.
func Run[T any, E Equaler[T]](s *Scratch, x, y []T, eq E) []ops.Op {
	s.reset(len(x), len(y))
	sv := solver[T, E]{
		x:   x,
		y:   y,
		eq:  eq,
		fps: s.fps,
		bps: s.bps,
		out: s.ops,
	}

	// The subproblems are processed depth first with the left half on top of the stack. This
	// way, ops are produced in document order and can be appended to the output directly.
	stack := append(s.stack, frame{ix1: 0, ix2: len(x), iy1: 0, iy2: len(y)})
	for len(stack) > 0 {
		f := stack[len(stack)-1].normalize()
		stack = stack[:len(stack)-1]

		if sv.base(f) {
			continue
		}
		mx, my, done := sv.split(f)
		if done {
			continue
		}
		stack = append(stack,
			frame{ix1: mx + 1, ix2: f.ix2, iy1: my + 1, iy2: f.iy2, swapped: f.swapped},
			frame{ix1: f.ix1, ix2: mx + 1, iy1: f.iy1, iy2: my + 1, swapped: f.swapped},
		)
	}
	s.stack = stack[:0]

	return sv.out
}

// equal compares the element at ix in the x-range of f with the element at iy in its y-range. The
// equality is always called with the element from the original x first.
func (sv *solver[T, E]) equal(f frame, ix, iy int) bool {
	if f.swapped {
		return sv.eq.Equal(sv.x[iy], sv.y[ix])
	}
	return sv.eq.Equal(sv.x[ix], sv.y[iy])
}

func (sv *solver[T, E]) emit(op ops.Op) {
	// The last element is reserved for the terminating sentinel.
	if sv.n >= len(sv.out)-1 {
		panic("op stream overflow")
	}
	sv.out[sv.n] = op
	sv.n++
}

// base writes the ops for f if it's trivial and reports whether it did so. f must be normalized.
func (sv *solver[T, E]) base(f frame) bool {
	dx, dy := f.ix2-f.ix1, f.iy2-f.iy1
	if dx > dy {
		panic("frame is not normalized")
	}
	switch {
	case dy == 0:
		// Both ranges are empty.
	case dx == 0:
		for range dy {
			sv.emit(f.insertOp())
		}
	case dy == 1:
		if sv.equal(f, f.ix1, f.iy1) {
			sv.emit(ops.Keep)
		} else {
			sv.emit(f.deleteOp())
			sv.emit(f.insertOp())
		}
	case dx == 1:
		matched := false
		for iy := f.iy1; iy < f.iy2; iy++ {
			if !matched && sv.equal(f, f.ix1, iy) {
				sv.emit(ops.Keep)
				matched = true
			} else {
				sv.emit(f.insertOp())
			}
		}
		if !matched {
			sv.emit(f.deleteOp())
		}
	default:
		return false
	}
	return true
}
