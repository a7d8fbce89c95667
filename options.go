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

import "znkr.io/editscript/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Reuse computes edit scripts in the memory held by b instead of allocating new memory for every
// call. The script returned by the call aliases b and is only valid until b is used again.
//
// A nil buffer is ignored.
func Reuse(b *Buffer) Option {
	return func(cfg *config.Config) config.Flag {
		if b != nil {
			cfg.Scratch = &b.scratch
		}
		return config.Reuse
	}
}
