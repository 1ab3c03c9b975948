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
package machine

import (
	"github.com/consensys/go-turing/pkg/turing"
)

// CHUNK is the number of steps a silent run executes between checks for
// termination.
const CHUNK = 1024

// RunSilent runs a machine from its initial configuration until it halts,
// returning the final (materialised) tape contents.  Every call constructs a
// fresh machine and so repeated calls give identical results.
func RunSilent(table *turing.Table, params turing.Parameters) (string, error) {
	m := New(table, params)
	//
	if _, err := ExecuteAll(m, CHUNK); err != nil {
		return "", err
	}
	//
	return m.Tape().String(), nil
}

// RunTraced runs a machine until it halts, returning a snapshot of the
// initial configuration followed by one snapshot per step.  The final
// snapshot is always in the halting state.
func RunTraced(table *turing.Table, params turing.Parameters) ([]Snapshot, error) {
	var snapshots []Snapshot
	//
	_, err := RunStepwise(table, params, func(s Snapshot) error {
		snapshots = append(snapshots, s)
		return nil
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return snapshots, nil
}

// RunStepwise runs a machine until it halts, passing a snapshot of the
// initial configuration, and of the configuration after every step, to the
// given callback.  The callback may block (e.g. waiting for a user to
// continue).  If it returns an error, the run is aborted with that error.
func RunStepwise(table *turing.Table, params turing.Parameters, onStep func(Snapshot) error) (string, error) {
	m := New(table, params)
	//
	for {
		if err := onStep(m.Snapshot()); err != nil {
			return "", err
		} else if m.Halted() {
			return m.Tape().String(), nil
		} else if err := m.Step(); err != nil {
			return "", err
		}
	}
}
