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

// Package textops provides compact, replayable edit scripts for text.
//
// A [Patch] describes how to transform one text into another rune by rune. Unchanged and deleted
// runs are stored as counts and only inserted text is stored literally, which makes patches small
// enough to ship a chain of revisions as a base text followed by one patch per revision.
package textops

import (
	"errors"
	"fmt"
	"math"

	"znkr.io/editscript"
	"znkr.io/editscript/internal/byteview"
	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/wu"
)

// ErrMismatch is returned when a patch can't be applied to a text.
var ErrMismatch = errors.New("patch does not match text")

// Chunk is a single step of a [Patch].
//
//   - N > 0 keeps the next N runes of the source.
//   - N < 0 deletes the next -N runes of the source.
//   - N == 0 inserts Text.
type Chunk struct {
	N    int
	Text string
}

// Keep returns a chunk that keeps n runes.
func Keep(n int) Chunk { return Chunk{N: n} }

// Delete returns a chunk that deletes n runes.
func Delete(n int) Chunk { return Chunk{N: -n} }

// Insert returns a chunk that inserts text.
func Insert(text string) Chunk { return Chunk{Text: text} }

func (c Chunk) validate() error {
	switch {
	case c.N != 0 && c.Text != "":
		return fmt.Errorf("run length %d combined with text %q", c.N, c.Text)
	case c.N == 0 && c.Text == "":
		return errors.New("empty chunk")
	case c.N == math.MinInt:
		return fmt.Errorf("run length %d out of range", c.N)
	}
	return nil
}

// Patch is a compact edit script for text.
type Patch []Chunk

// Compress collapses the edit script script, computed for the runes of some source text and y,
// into a patch. Consecutive ops of the same kind are merged into a single chunk. Compress stops at
// the first [editscript.Sentinel].
func Compress(script []editscript.Op, y []rune) Patch {
	var p Patch
	iy := 0
	for i := 0; i < len(script); {
		op := script[i]
		if op == editscript.Sentinel {
			break
		}
		n := 1
		for i+n < len(script) && script[i+n] == op {
			n++
		}
		switch op {
		case editscript.Keep:
			p = append(p, Keep(n))
			iy += n
		case editscript.Delete:
			p = append(p, Delete(n))
		case editscript.Insert:
			p = append(p, Insert(string(y[iy:iy+n])))
			iy += n
		default:
			panic("invalid op in script: " + op.String())
		}
		i += n
	}
	return p
}

// Diff compares the runes in x and y and returns a patch to convert from one to the other. The
// patch is minimal in the number of deleted and inserted runes. Invalid UTF-8 in y is inserted as
// U+FFFD, so y must be valid UTF-8 for [Apply] to reproduce it exactly.
//
// The following option is supported: [editscript.Reuse]
func Diff[T string | []byte](x, y T, opts ...editscript.Option) Patch {
	cfg := config.FromOptions(opts, config.Reuse)
	yr := byteview.From(y).Runes()
	script := wu.Run(cfg.ScratchOrNew(), byteview.From(x).Runes(), yr, wu.Comparable[rune]{})
	return Compress(script, yr)
}

// Apply replays p on x and returns the result. It returns an error wrapping [ErrMismatch] if p
// doesn't consume x exactly or if it contains an invalid chunk.
func Apply[T string | []byte](x T, p Patch) (T, error) {
	var zero T
	src := byteview.From(x)
	var b byteview.Builder[T]
	b.Grow(src.Len() + p.insertLen())
	for i, c := range p {
		if err := c.validate(); err != nil {
			return zero, fmt.Errorf("chunk %d: %v: %w", i, err, ErrMismatch)
		}
		switch {
		case c.N > 0:
			head, tail, ok := byteview.CutRunes(src, c.N)
			if !ok {
				return zero, fmt.Errorf("chunk %d: keeping %d runes past the end of the text: %w", i, c.N, ErrMismatch)
			}
			b.WriteByteView(head)
			src = tail
		case c.N < 0:
			_, tail, ok := byteview.CutRunes(src, -c.N)
			if !ok {
				return zero, fmt.Errorf("chunk %d: deleting %d runes past the end of the text: %w", i, -c.N, ErrMismatch)
			}
			src = tail
		default:
			b.WriteString(c.Text)
		}
	}
	if src.Len() != 0 {
		return zero, fmt.Errorf("patch ends %d bytes before the end of the text: %w", src.Len(), ErrMismatch)
	}
	return b.Build(), nil
}

func (p Patch) insertLen() int {
	n := 0
	for _, c := range p {
		n += len(c.Text)
	}
	return n
}
