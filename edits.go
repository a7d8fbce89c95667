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
	"slices"

	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/opstream"
	"znkr.io/editscript/internal/wu"
)

// Edit describes a single edit of an edit script.
//
//   - For Keep, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding context. The amount of context can be configured using
// [Context].
//
// If x and y are identical, the output has length zero.
//
// The following options are supported: [editscript.Context], [editscript.Reuse]
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Reuse)
	script := wu.Run(cfg.ScratchOrNew(), x, y, wu.Comparable[T]{})
	return hunks(x, y, script, cfg)
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
//
// The output is a sequence of hunks that each describe a number of consecutive edits. Hunks include
// a number of matching elements before and after the last delete or insert operation. The number of
// elements can be configured using [Context].
//
// If x and y are identical, the output has length zero.
//
// The following options are supported: [editscript.Context], [editscript.Reuse]
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Reuse)
	script := wu.Run(cfg.ScratchOrNew(), x, y, wu.Func[T](eq))
	return hunks(x, y, script, cfg)
}

func hunks[T any](x, y []T, script []Op, cfg config.Config) []Hunk[T] {
	// Compute the number of hunks and edits, this is relatively cheap and allows us to preallocate
	// the return values.
	var nhunks, nedits int
	for hunk := range opstream.Hunks(script, cfg.Context) {
		nhunks++
		nedits += hunk.Edits()
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for hunk := range opstream.Hunks(script, cfg.Context) {
		eout = appendEdits(eout, x[hunk.S0:hunk.S1], y[hunk.T0:hunk.T1], script[hunk.I0:hunk.I1])
		hout = append(hout, Hunk[T]{
			PosX:  hunk.S0,
			EndX:  hunk.S1,
			PosY:  hunk.T0,
			EndY:  hunk.T1,
			Edits: slices.Clip(eout),
		})
		eout = eout[len(eout):]
	}
	return hout
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Edits returns one edit for every op in the edit script. If x and y are identical, the output
// will consist of a keep edit for every input element.
//
// The following option is supported: [editscript.Reuse]
func Edits[T comparable](x, y []T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Reuse)
	script := wu.Run(cfg.ScratchOrNew(), x, y, wu.Comparable[T]{})
	return edits(x, y, script)
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
//
// EditsFunc returns one edit for every op in the edit script. If both x and y are identical, the
// output will consist of a keep edit for every input element.
//
// The following option is supported: [editscript.Reuse]
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Reuse)
	script := wu.Run(cfg.ScratchOrNew(), x, y, wu.Func[T](eq))
	return edits(x, y, script)
}

func edits[T any](x, y []T, script []Op) []Edit[T] {
	n := opstream.Len(script)
	if n == 0 {
		return nil
	}
	return appendEdits(make([]Edit[T], 0, n), x, y, script[:n])
}

// appendEdits appends the edits of script, which transforms x to y, to out.
func appendEdits[T any](out []Edit[T], x, y []T, script []Op) []Edit[T] {
	s, t := 0, 0
	for _, op := range script {
		switch op {
		case Keep:
			out = append(out, Edit[T]{
				Op: Keep,
				X:  x[s],
				Y:  y[t],
			})
			s++
			t++
		case Delete:
			out = append(out, Edit[T]{
				Op: Delete,
				X:  x[s],
			})
			s++
		case Insert:
			out = append(out, Edit[T]{
				Op: Insert,
				Y:  y[t],
			})
			t++
		default:
			panic("never reached")
		}
	}
	return out
}
