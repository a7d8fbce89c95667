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

package textops_test

import (
	"encoding/json"
	"fmt"

	"znkr.io/editscript/textops"
)

func ExampleDiff() {
	p := textops.Diff("Hello, World", "Hello, 世界")
	data, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// [7,"世",-4,"界",-1]
}

func ExampleApply() {
	var p textops.Patch
	if err := json.Unmarshal([]byte(`[-1,"s",3,"i",-1,1,"g"]`), &p); err != nil {
		panic(err)
	}
	out, err := textops.Apply("kitten", p)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// sitting
}

// Replay a chain of revisions from a base text and the patches between consecutive revisions.
func ExampleApplier() {
	revisions := []string{"kitten", "sitten", "sittin", "sitting"}
	var patches []textops.Patch
	for i := 1; i < len(revisions); i++ {
		patches = append(patches, textops.Diff(revisions[i-1], revisions[i]))
	}

	a := textops.NewApplier(revisions[0])
	for _, p := range patches {
		if err := a.Apply(p); err != nil {
			panic(err)
		}
		fmt.Println(a)
	}
	// Output:
	// sitten
	// sittin
	// sitting
}
