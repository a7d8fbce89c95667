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
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes p as a JSON array of numbers for kept and deleted runs and strings for
// inserted text, e.g., [3,-2,"abc"].
func (p Patch) MarshalJSON() ([]byte, error) {
	out := make([]any, len(p))
	for i, c := range p {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("chunk %d: %v", i, err)
		}
		if c.N != 0 {
			out[i] = c.N
		} else {
			out[i] = c.Text
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by [Patch.MarshalJSON].
func (p *Patch) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	out := make(Patch, len(raw))
	for i, r := range raw {
		var c Chunk
		var err error
		if bytes.HasPrefix(r, []byte{'"'}) {
			err = json.Unmarshal(r, &c.Text)
		} else {
			err = json.Unmarshal(r, &c.N)
		}
		if err != nil {
			return fmt.Errorf("decoding chunk %d: %w", i, err)
		}
		if err := c.validate(); err != nil {
			return fmt.Errorf("decoding chunk %d: %v", i, err)
		}
		out[i] = c
	}
	*p = out
	return nil
}
