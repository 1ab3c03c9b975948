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
package termio

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]AnsiEscape
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]AnsiEscape, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]AnsiEscape, width)
	}

	return &TablePrinter{widths, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], textWidth(val))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the formatting to use when printing the contents of a given
// cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		escapes := p.escapes[i]
		//
		for j, col := range row {
			jth_width := p.widths[j]
			jth_escape := escapes[j]
			// Clip overly long contents
			if textWidth(col) > jth_width && jth_width > 2 {
				col = string([]rune(col)[0:jth_width-2]) + ".."
			}
			// Right align
			cell := fmt.Sprintf(" %*s", int(jth_width)+len(col)-utf8.RuneCountInString(col), col)
			//
			if p.enableEscapes {
				cell = jth_escape.Apply(cell)
			}
			//
			fmt.Fprintf(out, "%s |", cell)
		}
		//
		fmt.Fprintln(out)
	}
}

func textWidth(text string) uint {
	return uint(utf8.RuneCountInString(text))
}
