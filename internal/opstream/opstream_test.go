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

package opstream

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/editscript/internal/ops"
)

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		context int
		want    []Hunk
	}{
		{
			name:    "empty",
			script:  ".",
			context: 3,
			want:    nil,
		},
		{
			name:    "identical",
			script:  "KKK....",
			context: 3,
			want:    nil,
		},
		{
			name:    "all-changed",
			script:  "DDI.",
			context: 3,
			want:    []Hunk{{S0: 0, S1: 2, T0: 0, T1: 1, I0: 0, I1: 3}},
		},
		{
			name:    "ABCABBA_to_CBABAC",
			script:  "IDKDKKDKI.....",
			context: 3,
			want:    []Hunk{{S0: 0, S1: 7, T0: 0, T1: 6, I0: 0, I1: 9}},
		},
		{
			name:    "ABCABBA_to_CBABAC_no_context",
			script:  "IDKDKKDKI.....",
			context: 0,
			want: []Hunk{
				{S0: 0, S1: 1, T0: 0, T1: 1, I0: 0, I1: 2},
				{S0: 2, S1: 3, T0: 2, T1: 2, I0: 3, I1: 4},
				{S0: 5, S1: 6, T0: 4, T1: 4, I0: 6, I1: 7},
				{S0: 7, S1: 7, T0: 5, T1: 6, I0: 8, I1: 9},
			},
		},
		{
			name:    "context-is-trimmed",
			script:  "KKKKKDKKKKK",
			context: 2,
			want:    []Hunk{{S0: 3, S1: 8, T0: 3, T1: 7, I0: 3, I1: 8}},
		},
		{
			name:    "two-hunks",
			script:  "IIIKKKKKKKDDDD........",
			context: 3,
			want: []Hunk{
				{S0: 0, S1: 3, T0: 0, T1: 6, I0: 0, I1: 6},
				{S0: 4, S1: 11, T0: 7, T1: 10, I0: 7, I1: 14},
			},
		},
		{
			name:    "overlapping-hunks-are-merged",
			script:  "IIIKKKKKKDDDD",
			context: 3,
			want:    []Hunk{{S0: 0, S1: 10, T0: 0, T1: 9, I0: 0, I1: 13}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := parse(tt.script)
			got := slices.Collect(Hunks(script, tt.context))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestHunksStop(t *testing.T) {
	script := parse("DKKKKKKKDKKKKKKKD.")
	n := 0
	for range Hunks(script, 1) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Hunks(...) yielded %d times after break, want 1", n)
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		script string
		want   int
	}{
		{"", 0},
		{".", 0},
		{"KD..", 2},
		{"KDI", 3},
	}
	for _, tt := range tests {
		if got := Len(parse(tt.script)); got != tt.want {
			t.Errorf("Len(%q) = %d, want %d", tt.script, got, tt.want)
		}
	}
}

func TestEdits(t *testing.T) {
	if got := (Hunk{I0: 3, I1: 8}).Edits(); got != 5 {
		t.Errorf("Edits() = %d, want 5", got)
	}
}

func parse(s string) []ops.Op {
	out := make([]ops.Op, len(s))
	for i, c := range s {
		switch c {
		case '.':
			out[i] = ops.Sentinel
		case 'K':
			out[i] = ops.Keep
		case 'D':
			out[i] = ops.Delete
		case 'I':
			out[i] = ops.Insert
		default:
			panic("invalid op: " + string(c))
		}
	}
	return out
}
