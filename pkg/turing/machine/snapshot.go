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

import "github.com/consensys/go-turing/pkg/turing"

// Snapshot captures a machine at a single point of its execution.  Snapshots
// are values and are never modified once taken.
type Snapshot struct {
	// State of the machine.
	State turing.State
	// Index of the cell under the head.
	Head int
	// Materialised tape contents, from Min to Max.
	Tape string
	// Index of the first materialised cell.
	Min int
	// Index of the last materialised cell.
	Max int
}

// Read returns the symbol at a given index of the snapshot's tape.
func (p Snapshot) Read(index int) turing.Symbol {
	if index < p.Min || index > p.Max {
		return turing.BLANK
	}
	//
	return turing.Symbol([]rune(p.Tape)[index-p.Min])
}
