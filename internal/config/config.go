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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// editscript.Option.
package config

import "znkr.io/editscript/internal/wu"

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// If set, the edit script is computed in this scratch space instead of freshly allocated
	// memory.
	Scratch *wu.Scratch
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
	Scratch: nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Reuse
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

// ScratchOrNew returns the configured scratch space or a new one.
func (cfg Config) ScratchOrNew() *wu.Scratch {
	if cfg.Scratch != nil {
		return cfg.Scratch
	}
	return new(wu.Scratch)
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "editscript.Context"
	case Reuse:
		return "editscript.Reuse"
	default:
		panic("never reached")
	}
}
