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
	"sync"

	"znkr.io/editscript/internal/wu"
)

// Buffer holds memory that can be shared between calls using the [Reuse] option. The buffer grows
// to fit the largest input it has seen.
//
// The zero value is ready to use. A Buffer must not be used by more than one call at a time, use
// one buffer per goroutine or a [sync.Pool].
type Buffer struct {
	_       [0]sync.Mutex // don't copy
	scratch wu.Scratch
}
