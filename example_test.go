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

package editscript_test

import (
	"fmt"
	"strings"

	"znkr.io/editscript"
)

// Compare to strings line by line and output the difference as a pseudo-unified diff output
// (i.e. it's similar to what diff -u would produce). The format is not a correct unified diff
// though, in particular line endings (esp. at the end of the input) are handled differently.
func ExampleHunks_psudoUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk`

	xlines := strings.Split(x, "\n")
	ylines := strings.Split(y, "\n")
	hunks := editscript.Hunks(xlines, ylines)
	for _, h := range hunks {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosX+1, h.EndX-h.PosX, h.PosY+1, h.EndY-h.PosY)
		for _, edit := range h.Edits {
			switch edit.Op {
			case editscript.Keep:
				fmt.Printf(" %s\n", edit.X)
			case editscript.Delete:
				fmt.Printf("-%s\n", edit.X)
			case editscript.Insert:
				fmt.Printf("+%s\n", edit.Y)
			default:
				panic("never reached")
			}
		}
	}
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

// Compare two strings rune by rune.
func ExampleEdits() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	edits := editscript.Edits(x, y)
	for _, edit := range edits {
		switch edit.Op {
		case editscript.Keep:
			fmt.Printf("%s", string(edit.X))
		case editscript.Delete:
			fmt.Printf("-%s", string(edit.X))
		case editscript.Insert:
			fmt.Printf("+%s", string(edit.Y))
		default:
			panic("never reached")
		}
	}
	// Output:
	// Hello, +世-W-o-r-l+界-d
}

// Print the raw op stream. The script is padded with sentinels to len(x)+len(y)+1 elements.
func ExampleScript() {
	script := editscript.Script([]int{1, 2, 3}, []int{1, 2})
	fmt.Println(script)
	fmt.Println("distance:", editscript.Distance(script))
	// Output:
	// [Keep Keep Delete Sentinel Sentinel Sentinel]
	// distance: 1
}

// Share memory between repeated comparisons. The result of every call is only valid until the
// buffer is used again.
func ExampleReuse() {
	var buf editscript.Buffer
	revisions := []string{"kitten", "sitten", "sittin", "sitting"}
	for i := 1; i < len(revisions); i++ {
		x, y := []byte(revisions[i-1]), []byte(revisions[i])
		script := editscript.Script(x, y, editscript.Reuse(&buf))
		fmt.Printf("%s -> %s: %d\n", x, y, editscript.Distance(script))
	}
	// Output:
	// kitten -> sitten: 2
	// sitten -> sittin: 1
	// sittin -> sitting: 1
}
