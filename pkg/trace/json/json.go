// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package json

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/turing/machine"
)

// rawSequence is the on-disk form of a sequence.  For example,
// {"halt": "qH", "snapshots": [{"state": "q0", "head": 0, "tape": "110",
// "min": 0, "max": 2}]}.
type rawSequence struct {
	Halt      string        `json:"halt"`
	Snapshots []rawSnapshot `json:"snapshots"`
}

type rawSnapshot struct {
	State string `json:"state"`
	Head  int    `json:"head"`
	Tape  string `json:"tape"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// ToBytes encodes a sequence of snapshots as JSON.
func ToBytes(seq trace.Sequence) ([]byte, error) {
	raw := rawSequence{string(seq.Halt), make([]rawSnapshot, len(seq.Snapshots))}
	//
	for i, s := range seq.Snapshots {
		raw.Snapshots[i] = rawSnapshot{string(s.State), s.Head, s.Tape, s.Min, s.Max}
	}
	//
	return json.MarshalIndent(raw, "", "  ")
}

// FromBytes decodes a sequence of snapshots previously encoded as JSON.  The
// resulting sequence is checked for consistency.
func FromBytes(data []byte) (trace.Sequence, error) {
	var raw rawSequence
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &raw); err != nil {
		return trace.Sequence{}, err
	}
	//
	snapshots := make([]machine.Snapshot, len(raw.Snapshots))
	//
	for i, s := range raw.Snapshots {
		if n := utf8.RuneCountInString(s.Tape); n != s.Max-s.Min+1 {
			return trace.Sequence{}, fmt.Errorf("%w: snapshot %d has %d cells in window [%d,%d]",
				trace.ErrMalformedSequence, i, n, s.Min, s.Max)
		}
		//
		snapshots[i] = machine.Snapshot{
			State: turing.State(s.State),
			Head:  s.Head,
			Tape:  s.Tape,
			Min:   s.Min,
			Max:   s.Max,
		}
	}
	//
	return trace.NewSequence(turing.State(raw.Halt), snapshots)
}
