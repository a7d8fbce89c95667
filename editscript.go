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

package editscript

import (
	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/ops"
	"znkr.io/editscript/internal/wu"
)

// Op describes an edit operation.
type Op = ops.Op

const (
	Sentinel = ops.Sentinel // Padding after the last edit of a script
	Keep     = ops.Keep     // Two slice elements match
	Delete   = ops.Delete   // A deletion of an element from the left slice
	Insert   = ops.Insert   // An insertion of an element from the right slice
)

// Equaler is an equality relation between elements of type T.
//
// Equal must be an equivalence relation without side effects. It's always called with an element
// of x as a and an element of y as b.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

// Script compares the contents of x and y and returns a minimal edit script to convert from one to
// the other.
//
// The script has length len(x)+len(y)+1. It consists of the edits, followed by at least one
// [Sentinel]. All elements after the first [Sentinel] are [Sentinel]s as well.
//
// The following option is supported: [editscript.Reuse]
func Script[T comparable](x, y []T, opts ...Option) []Op {
	cfg := config.FromOptions(opts, config.Reuse)
	return wu.Run(cfg.ScratchOrNew(), x, y, wu.Comparable[T]{})
}

// ScriptFunc compares the contents of x and y using the provided equality comparison and returns a
// minimal edit script to convert from one to the other.
//
// The output has the same format as the output of [Script]. eq is always called with an element
// of x first.
//
// The following option is supported: [editscript.Reuse]
func ScriptFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Op {
	cfg := config.FromOptions(opts, config.Reuse)
	return wu.Run(cfg.ScratchOrNew(), x, y, wu.Func[T](eq))
}

// ScriptEq compares the contents of x and y using the provided [Equaler] and returns a minimal edit
// script to convert from one to the other.
//
// The output has the same format as the output of [Script]. Using a concrete Equaler type instead
// of a function gives the compiler a chance to inline the comparison.
//
// The following option is supported: [editscript.Reuse]
func ScriptEq[T any, E Equaler[T]](x, y []T, eq E, opts ...Option) []Op {
	cfg := config.FromOptions(opts, config.Reuse)
	return wu.Run(cfg.ScratchOrNew(), x, y, eq)
}

// Distance returns the number of deletions and insertions in script, i.e., the edit distance
// between the inputs of a minimal script.
func Distance(script []Op) int {
	d := 0
	for _, op := range script {
		switch op {
		case Sentinel:
			return d
		case Delete, Insert:
			d++
		}
	}
	return d
}
