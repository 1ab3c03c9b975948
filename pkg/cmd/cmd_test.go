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
package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/turing/machine"
	"github.com/consensys/go-turing/pkg/turing/parser"
	"github.com/consensys/go-turing/pkg/util/assert"
	"github.com/consensys/go-turing/pkg/util/termio"
)

const example = "start: q0\ntape: 110\nhalt: qH\nq0,1 -> q0,1,>\nq0,0 -> qH,0,-\n"

// Never halts: runs right forever.
const forever = "start: q0\ntape:\nhalt: qH\nq0,_ -> q0,_,>\n"

func Test_StepLimiter_01(t *testing.T) {
	table, params := load(t, forever)
	//
	_, err := machine.RunStepwise(table, params, stepLimiter(100, params.Halt, nil))
	assert.ErrorIs(t, err, errStepLimit)
}

func Test_StepLimiter_02(t *testing.T) {
	// Halting on exactly the limit is fine
	table, params := load(t, example)
	//
	result, err := machine.RunStepwise(table, params, stepLimiter(3, params.Halt, nil))
	assert.NoError(t, err)
	assert.Equal(t, "110", result)
	//
	_, err = machine.RunStepwise(table, params, stepLimiter(2, params.Halt, nil))
	assert.ErrorIs(t, err, errStepLimit)
}

func Test_StepLimiter_03(t *testing.T) {
	// No limit
	var (
		table, params = load(t, example)
		count         = 0
	)
	//
	_, err := machine.RunStepwise(table, params, stepLimiter(0, params.Halt, func(machine.Snapshot) error {
		count++
		return nil
	}))
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func Test_DeadEnds_01(t *testing.T) {
	table, params := load(t, example)
	assert.Equal(t, 0, len(DeadEnds(table, params)))
}

func Test_DeadEnds_02(t *testing.T) {
	table, params := load(t, "start: q0\ntape: 1\nhalt: qH\nq0,1 -> q1,1,>\n")
	assert.Equal(t, []turing.State{"q1"}, DeadEnds(table, params))
}

func Test_DeadEnds_03(t *testing.T) {
	table, params := load(t, "start: s\ntape: 1\nhalt: qH\nq0,1 -> qH,1,>\n")
	assert.Equal(t, []turing.State{"s"}, DeadEnds(table, params))
}

func Test_LinePrompt_01(t *testing.T) {
	var (
		table, params = load(t, example)
		out           bytes.Buffer
		prompt        = &linePrompt{bufio.NewReader(strings.NewReader("\n\n\n")), &out, params.Halt, 0}
	)
	//
	result, err := machine.RunStepwise(table, params, prompt.Wait)
	assert.NoError(t, err)
	assert.Equal(t, "110", result)
	assert.Equal(t, uint(4), prompt.step)
	assert.True(t, strings.Contains(out.String(), "step 3: halted in state qH"))
	assert.Equal(t, 3, strings.Count(out.String(), "Press enter to continue"))
}

func Test_LinePrompt_02(t *testing.T) {
	var (
		table, params = load(t, example)
		out           bytes.Buffer
		prompt        = &linePrompt{bufio.NewReader(strings.NewReader("\nq\n")), &out, params.Halt, 0}
	)
	//
	_, err := machine.RunStepwise(table, params, prompt.Wait)
	assert.ErrorIs(t, err, errQuit)
	assert.Equal(t, uint(2), prompt.step)
}

func Test_LinePrompt_03(t *testing.T) {
	// Input exhausted, so stop waiting
	var (
		table, params = load(t, example)
		out           bytes.Buffer
		prompt        = &linePrompt{bufio.NewReader(strings.NewReader("")), &out, params.Halt, 0}
	)
	//
	_, err := machine.RunStepwise(table, params, prompt.Wait)
	assert.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "Press enter to continue"))
}

func Test_Replay_01(t *testing.T) {
	table, params := load(t, example)
	seq, err := trace.Record(table, params)
	assert.NoError(t, err)
	//
	replay := NewReplay(seq)
	assert.False(t, replay.KeyPressed(termio.CURSOR_LEFT))
	assert.Equal(t, uint(0), replay.Step())
	assert.False(t, replay.KeyPressed(termio.CURSOR_RIGHT))
	assert.Equal(t, uint(1), replay.Step())
	assert.False(t, replay.KeyPressed(termio.CURSOR_DOWN))
	assert.Equal(t, uint(3), replay.Step())
	assert.Equal(t, "step 3: halted in state qH", replay.Lines()[0])
	assert.False(t, replay.KeyPressed(termio.CURSOR_UP))
	assert.Equal(t, uint(0), replay.Step())
	assert.True(t, replay.KeyPressed('q'))
}

func Test_DescribeSnapshot_01(t *testing.T) {
	s := machine.Snapshot{State: "q0", Head: 1, Tape: "110", Min: 0, Max: 2}
	//
	assert.Equal(t, []string{"step 1: state q0, head 1", " H", "110"}, describeSnapshot(1, s, "qH"))
}

func load(t *testing.T, text string) (*turing.Table, turing.Parameters) {
	table, params, err := parser.ParseString(text)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return table, params
}
