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

// Package opstream contains functions to work with op streams, the internal representation of an
// edit script that's produced by the algorithm and is then translated to a user facing API.
package opstream

import (
	"iter"

	"znkr.io/editscript/internal/ops"
)

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	I0, I1 int // Start and end of the hunk in the op stream.
}

// Edits returns the number of edits in h.
func (h Hunk) Edits() int { return h.I1 - h.I0 }

// Len returns the number of ops in script before the first [ops.Sentinel].
func Len(script []ops.Op) int {
	for i, op := range script {
		if op == ops.Sentinel {
			return i
		}
	}
	return len(script)
}

// Hunks groups the edits in script into hunks. Every hunk starts and ends with up to context
// matches. Hunks that would overlap or touch are merged.
func Hunks(script []ops.Op, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		script := script[:Len(script)]
		s, t := 0, 0 // current index into x, y
		start := -1  // start of the current hunk in script
		s0, t0 := 0, 0
		run := 0 // number of consecutive matches
		for i, op := range script {
			switch op {
			case ops.Keep:
				s++
				t++
				run++
				// Active in-progress hunk and we've seen more matches than two contexts can
				// cover, finish the hunk.
				if start >= 0 && run > 2*context {
					Δ := context - run
					if !yield(Hunk{s0, s + Δ, t0, t + Δ, start, i + 1 + Δ}) {
						return
					}
					start = -1
				}
			case ops.Delete, ops.Insert:
				if start < 0 {
					n := min(run, context)
					start, s0, t0 = i-n, s-n, t-n
				}
				run = 0
				if op == ops.Delete {
					s++
				} else {
					t++
				}
			default:
				panic("invalid op in script: " + op.String())
			}
		}
		if start >= 0 {
			Δ := min(0, context-run)
			yield(Hunk{s0, s + Δ, t0, t + Δ, start, len(script) + Δ})
		}
	}
}
