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

// Package ops defines the operation codes of an edit script. The codes are shared between the
// algorithm in internal/wu and the public API.
package ops

// Op is a single step of an edit script.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op uint8

const (
	Sentinel Op = iota // Padding after the last edit
	Keep               // Both elements are equal, advance in x and y
	Delete             // Remove an element from x
	Insert             // Insert an element from y
)
