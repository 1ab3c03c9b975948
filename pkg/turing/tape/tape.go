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
package tape

import (
	"errors"
	"fmt"

	"github.com/consensys/go-turing/pkg/turing"
)

// ErrPrecondition signals an attempt to write more than one cell beyond the
// materialised region of a tape.  A machine moves its head by at most one cell
// per step, hence this indicates a bug in the caller.
var ErrPrecondition = errors.New("tape write out of contract")

// Tape is an unbounded sequence of symbols, indexed by (possibly negative)
// integers.  Only a contiguous window [min,max] of the tape is materialised;
// every cell outside of this window holds the blank symbol.  The window
// expands by one cell whenever a cell adjacent to it is written.
type Tape struct {
	// Backing storage.  Materialised cells are cells[offset:], with the
	// leading cells being spare room for growth towards negative indices.
	cells []turing.Symbol
	// Position of the first materialised cell within cells.
	offset int
	// Index of the first materialised cell.
	min int
}

// New constructs a tape whose initial contents are anchored at index 0.  An
// empty string gives a tape with no materialised cells (i.e. min=0, max=-1).
func New(contents string) *Tape {
	var cells []turing.Symbol
	//
	for _, c := range contents {
		cells = append(cells, turing.Symbol(c))
	}
	//
	return &Tape{cells, 0, 0}
}

// Min returns the index of the first materialised cell.
func (p *Tape) Min() int {
	return p.min
}

// Max returns the index of the last materialised cell.  When no cells are
// materialised, this is Min()-1.
func (p *Tape) Max() int {
	return p.min + p.Len() - 1
}

// Len returns the number of materialised cells.
func (p *Tape) Len() int {
	return len(p.cells) - p.offset
}

// Read the symbol at a given index.  Reading outside the materialised window
// returns the blank symbol and leaves the tape unchanged.
func (p *Tape) Read(index int) turing.Symbol {
	if index < p.min || index > p.Max() {
		return turing.BLANK
	}
	//
	return p.cells[p.offset+index-p.min]
}

// Write a symbol at a given index.  Writing immediately before or after the
// materialised window extends it by one cell.  Writing any further out is
// rejected with ErrPrecondition.
func (p *Tape) Write(index int, symbol turing.Symbol) error {
	var max = p.Max()
	//
	switch {
	case index >= p.min && index <= max:
		p.cells[p.offset+index-p.min] = symbol
	case index == max+1:
		p.cells = append(p.cells, symbol)
	case index == p.min-1:
		p.prepend(symbol)
	default:
		return fmt.Errorf("%w: index %d outside [%d,%d]", ErrPrecondition, index, p.min-1, max+1)
	}
	//
	return nil
}

// String returns the materialised cells in order, from min to max.
func (p *Tape) String() string {
	var runes = make([]rune, p.Len())
	//
	for i, c := range p.cells[p.offset:] {
		runes[i] = rune(c)
	}
	//
	return string(runes)
}

func (p *Tape) prepend(symbol turing.Symbol) {
	if p.offset == 0 {
		var (
			n     = p.Len()
			room  = max(n, 4)
			cells = make([]turing.Symbol, room+n, room+2*n)
		)
		// Move materialised cells to the back
		copy(cells[room:], p.cells[p.offset:])
		p.cells, p.offset = cells, room
	}
	//
	p.offset--
	p.min--
	p.cells[p.offset] = symbol
}
