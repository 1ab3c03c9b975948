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
	"fmt"
	"io"
	"math"

	"github.com/consensys/go-turing/pkg/util/termio"
)

// Printer encapsulates various configuration options useful for printing out
// sequences in human-readable forms.
type Printer struct {
	// First step to print
	startStep uint
	// Last step to print
	endStep uint
	// Determine maximum width to print
	maxCellWidth uint
	// Enable ANSI
	ansiEscapes bool
}

// NewPrinter constructs a default printer
func NewPrinter() *Printer {
	return &Printer{0, math.MaxUint, math.MaxUint, true}
}

// Start configures the starting step for this printer.
func (p *Printer) Start(start uint) *Printer {
	p.startStep = start
	return p
}

// End configures the ending step (inclusive) for this printer.
func (p *Printer) End(end uint) *Printer {
	p.endStep = end
	return p
}

// AnsiEscapes can be used to enable or disable the use of ANSI escape sequences
// (e.g. for showing colour in a terminal, etc)
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// MaxCellWidth sets the maximum width to use for the cell data.
func (p *Printer) MaxCellWidth(width uint) *Printer {
	p.maxCellWidth = width
	return p
}

// Print a given sequence using the configured printer.  There is one row per
// snapshot, giving the step, state, head position, materialised window and
// tape contents (with the cell under the head in brackets).
func (p *Printer) Print(seq Sequence, out io.Writer) {
	var (
		start = min(p.startStep, uint(len(seq.Snapshots)))
		end   = min(p.endStep, uint(len(seq.Snapshots))-1)
	)
	//
	if start > end {
		return
	}
	//
	tp := termio.NewTablePrinter(5, 2+end-start)
	tp.SetRow(0, "step", "state", "head", "window", "tape")
	//
	header := termio.BoldAnsiEscape()
	haltEscape := termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	//
	for i := range uint(5) {
		tp.SetEscape(i, 0, header)
	}
	//
	for step := start; step <= end; step++ {
		var (
			s   = seq.Snapshots[step]
			row = 1 + step - start
		)
		//
		tp.SetRow(row,
			fmt.Sprintf("%d", step),
			string(s.State),
			fmt.Sprintf("%d", s.Head),
			fmt.Sprintf("[%d,%d]", s.Min, s.Max),
			Annotate(s))
		//
		if s.State == seq.Halt {
			tp.SetEscape(1, row, haltEscape)
		}
	}
	//
	tp.SetMaxWidths(p.maxCellWidth)
	tp.AnsiEscapes(p.ansiEscapes)
	tp.Print(out)
}
