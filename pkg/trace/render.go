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
	"strings"

	"github.com/consensys/go-turing/pkg/turing/machine"
)

// Window returns the range of tape indices to display for a snapshot.  This
// covers the materialised cells and the head, even when the head has wandered
// off the materialised region.
func Window(s machine.Snapshot) (int, int) {
	return min(s.Min, s.Head), max(s.Max, s.Head)
}

// Render a snapshot as two lines of text: a marker "H" above the cell under the
// head, and the tape contents (with blanks shown for any unmaterialised cells
// in the window).
func Render(s machine.Snapshot) []string {
	var (
		start, end = Window(s)
		tape       strings.Builder
	)
	//
	for i := start; i <= end; i++ {
		tape.WriteString(s.Read(i).String())
	}
	//
	marker := strings.Repeat(" ", s.Head-start) + "H"
	//
	return []string{marker, tape.String()}
}

// Annotate returns the tape contents of a snapshot with the cell under the head
// enclosed in brackets, e.g. "1[1]0".
func Annotate(s machine.Snapshot) string {
	var (
		start, end = Window(s)
		builder    strings.Builder
	)
	//
	for i := start; i <= end; i++ {
		if i == s.Head {
			builder.WriteString("[" + s.Read(i).String() + "]")
		} else {
			builder.WriteString(s.Read(i).String())
		}
	}
	//
	return builder.String()
}
