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
	"bytes"
	"testing"

	"github.com/consensys/go-turing/pkg/turing/machine"
	"github.com/consensys/go-turing/pkg/turing/parser"
	"github.com/consensys/go-turing/pkg/util/assert"
)

const example = "start: q0\ntape: 110\nhalt: qH\nq0,1 -> q0,1,>\nq0,0 -> qH,0,-\n"

func Test_FinalResult_01(t *testing.T) {
	assert.Equal(t, "110", FinalResult("110"))
	assert.Equal(t, "1_0", FinalResult("__1_0___"))
	assert.Equal(t, "", FinalResult("___"))
	assert.Equal(t, "", FinalResult(""))
}

func Test_Sequence_01(t *testing.T) {
	seq := record(t, example)
	//
	assert.Equal(t, uint(3), seq.Steps())
	assert.Equal(t, "110", seq.Result())
	assert.Equal(t, machine.Snapshot{State: "q0", Head: 0, Tape: "110", Min: 0, Max: 2}, seq.Snapshots[0])
	assert.Equal(t, seq.Halt, seq.Final().State)
}

func Test_Sequence_02(t *testing.T) {
	_, err := NewSequence("qH", nil)
	assert.ErrorIs(t, err, ErrMalformedSequence)
	//
	_, err = NewSequence("qH", []machine.Snapshot{{State: "q0"}})
	assert.ErrorIs(t, err, ErrMalformedSequence)
}

func Test_Sequence_03(t *testing.T) {
	// Blanks written at the edges are stripped from the result
	seq := record(t, "start: a\ntape: 1\nhalt: h\na,1 -> a,1,>\na,_ -> b,_,>\nb,_ -> h,_,-\n")
	//
	assert.Equal(t, "1__", seq.Final().Tape)
	assert.Equal(t, "1", seq.Result())
}

func Test_Render_01(t *testing.T) {
	s := machine.Snapshot{State: "q0", Head: 1, Tape: "110", Min: 0, Max: 2}
	//
	assert.Equal(t, []string{" H", "110"}, Render(s))
	assert.Equal(t, "1[1]0", Annotate(s))
}

func Test_Render_02(t *testing.T) {
	// Head beyond the materialised window
	s := machine.Snapshot{State: "q0", Head: -2, Tape: "ab", Min: 0, Max: 1}
	//
	assert.Equal(t, []string{"H", "__ab"}, Render(s))
	assert.Equal(t, "[_]_ab", Annotate(s))
}

func Test_Printer_01(t *testing.T) {
	var (
		buf bytes.Buffer
		seq = record(t, example)
	)
	//
	NewPrinter().AnsiEscapes(false).Print(seq, &buf)
	//
	expected := "" +
		" step | state | head | window |  tape |\n" +
		"    0 |    q0 |    0 |  [0,2] | [1]10 |\n" +
		"    1 |    q0 |    1 |  [0,2] | 1[1]0 |\n" +
		"    2 |    q0 |    2 |  [0,2] | 11[0] |\n" +
		"    3 |    qH |    2 |  [0,2] | 11[0] |\n"
	assert.Equal(t, expected, buf.String())
}

func Test_Printer_02(t *testing.T) {
	var (
		buf bytes.Buffer
		seq = record(t, example)
	)
	//
	NewPrinter().AnsiEscapes(false).Start(3).End(10).Print(seq, &buf)
	//
	expected := "" +
		" step | state | head | window |  tape |\n" +
		"    3 |    qH |    2 |  [0,2] | 11[0] |\n"
	assert.Equal(t, expected, buf.String())
}

func record(t *testing.T, text string) Sequence {
	table, params, err := parser.ParseString(text)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	seq, err := Record(table, params)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return seq
}
