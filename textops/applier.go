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

package textops

import (
	"fmt"

	"znkr.io/editscript/internal/byteview"
)

// Applier replays a chain of patches, one revision after the other. It keeps the current revision
// as runes and alternates between two buffers, so that replaying a long chain doesn't allocate
// once the buffers are large enough.
//
// The zero value holds the empty text.
type Applier struct {
	cur, next []rune
}

// NewApplier returns an applier that starts at text.
func NewApplier[T string | []byte](text T) *Applier {
	return &Applier{cur: byteview.From(text).Runes()}
}

// Apply replays p on the current revision. On error, the current revision is left unchanged.
func (a *Applier) Apply(p Patch) error {
	next := a.next[:0]
	ix := 0
	for i, c := range p {
		if err := c.validate(); err != nil {
			return fmt.Errorf("chunk %d: %v: %w", i, err, ErrMismatch)
		}
		switch {
		case c.N > 0:
			if c.N > len(a.cur)-ix {
				return fmt.Errorf("chunk %d: keeping %d runes past the end of the text: %w", i, c.N, ErrMismatch)
			}
			next = append(next, a.cur[ix:ix+c.N]...)
			ix += c.N
		case c.N < 0:
			if -c.N > len(a.cur)-ix {
				return fmt.Errorf("chunk %d: deleting %d runes past the end of the text: %w", i, -c.N, ErrMismatch)
			}
			ix -= c.N
		default:
			for _, r := range c.Text {
				next = append(next, r)
			}
		}
	}
	if ix != len(a.cur) {
		return fmt.Errorf("patch ends %d runes before the end of the text: %w", len(a.cur)-ix, ErrMismatch)
	}
	a.cur, a.next = next, a.cur
	return nil
}

// Runes returns the current revision. The result is only valid until the next call to Apply.
func (a *Applier) Runes() []rune { return a.cur }

// String returns the current revision.
func (a *Applier) String() string { return string(a.cur) }
