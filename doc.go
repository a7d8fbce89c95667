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

// Package editscript computes minimal edit scripts between two slices.
//
// An edit script is a sequence of [Op]s that transforms x into y: [Keep] advances in both x and y,
// [Delete] drops an element from x, and [Insert] adds an element from y. The main function is
// [Script], which returns the raw op stream, padded with [Sentinel] to a length of
// len(x)+len(y)+1. [Edits] and [Hunks] present the same script together with the elements it
// touches.
//
// The scripts are always minimal, i.e., the number of deletions and insertions is the edit
// distance between x and y. The algorithm is Wu's O(NP) algorithm combined with a linear space
// divide-and-conquer strategy. With N = len(x) + len(y) and P the number of deletions in a
// minimal script from the shorter to the longer input, the runtime is O(NP) and the memory use is
// O(N).
//
// Repeated calls can share memory using a [Buffer] and the [Reuse] option.
//
// Note: For compact, replayable scripts over text, please see [znkr.io/editscript/textops].
//
// [znkr.io/editscript/textops]: https://pkg.go.dev/znkr.io/editscript/textops
package editscript
