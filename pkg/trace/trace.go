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
package trace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/turing/machine"
)

// ErrMalformedSequence indicates a sequence of snapshots which is empty, or
// which does not end in the halting state.
var ErrMalformedSequence = errors.New("malformed snapshot sequence")

// FinalResult returns the contents of a tape with any blanks at either end
// removed.  Blanks between non-blank symbols are retained.
func FinalResult(contents string) string {
	return strings.Trim(contents, turing.BLANK.String())
}

// Sequence is the complete record of a run, as handed to anything replaying or
// visualising it.  A sequence always holds at least the initial snapshot, and
// its final snapshot is in the halting state.
type Sequence struct {
	// Halt is the halting state of the machine.
	Halt turing.State
	// Snapshots of the machine, starting from its initial configuration and
	// then one per step.
	Snapshots []machine.Snapshot
}

// NewSequence constructs a sequence, checking it is non-empty and finishes in
// the halting state.
func NewSequence(halt turing.State, snapshots []machine.Snapshot) (Sequence, error) {
	if len(snapshots) == 0 {
		return Sequence{}, fmt.Errorf("%w: no snapshots", ErrMalformedSequence)
	} else if last := snapshots[len(snapshots)-1]; last.State != halt {
		return Sequence{}, fmt.Errorf("%w: final state %s is not halting state %s", ErrMalformedSequence,
			last.State, halt)
	}
	//
	return Sequence{halt, snapshots}, nil
}

// Record runs a machine to completion and returns its sequence of snapshots.
func Record(table *turing.Table, params turing.Parameters) (Sequence, error) {
	snapshots, err := machine.RunTraced(table, params)
	//
	if err != nil {
		return Sequence{}, err
	}
	//
	return NewSequence(params.Halt, snapshots)
}

// Steps returns the number of steps recorded in this sequence.
func (p *Sequence) Steps() uint {
	return uint(len(p.Snapshots) - 1)
}

// Final returns the last snapshot of this sequence.
func (p *Sequence) Final() machine.Snapshot {
	return p.Snapshots[len(p.Snapshots)-1]
}

// Result returns the final tape contents of this sequence, with blanks at
// either end removed.
func (p *Sequence) Result() string {
	return FinalResult(p.Final().Tape)
}
