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
	"bytes"
	"testing"
)

func Test_TablePrinter_01(t *testing.T) {
	tbl := NewTablePrinter(2, 2)
	tbl.SetRow(0, "state", "head")
	tbl.SetRow(1, "q0", "12")
	tbl.AnsiEscapes(false)
	//
	checkTable(t, tbl, " state | head |\n    q0 |   12 |\n")
}

func Test_TablePrinter_02(t *testing.T) {
	tbl := NewTablePrinter(1, 1)
	tbl.Set(0, 0, "abcdefghij")
	tbl.SetMaxWidths(6)
	tbl.AnsiEscapes(false)
	//
	checkTable(t, tbl, " abcd.. |\n")
}

func Test_TablePrinter_03(t *testing.T) {
	tbl := NewTablePrinter(1, 1)
	tbl.Set(0, 0, "x")
	tbl.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	//
	checkTable(t, tbl, "\033[31m x\033[0m |\n")
}

func Test_AnsiEscape_01(t *testing.T) {
	escape := BoldAnsiEscape().FgColour(TERM_GREEN).BgColour(TERM_BLUE)
	//
	if escape.Build() != "\033[1;32;44m" {
		t.Errorf("unexpected escape %q", escape.Build())
	}
	//
	if NewAnsiEscape().Apply("x") != "x" {
		t.Errorf("empty escape should not change text")
	}
}

func checkTable(t *testing.T, tbl *TablePrinter, expected string) {
	var buf bytes.Buffer
	//
	tbl.Print(&buf)
	//
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}
