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
	"errors"
	"testing"

	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/turing/parser"
	"github.com/consensys/go-turing/pkg/turing/tape"
	"github.com/consensys/go-turing/pkg/util/assert"
)

const example = "start: q0\ntape: 110\nhalt: qH\nq0,1 -> q0,1,>\nq0,0 -> qH,0,-\n"

// Binary increment: move to the rightmost digit, then carry leftwards.
const increment = `start: right
tape: 1011
halt: done
right,0 -> right,0,>
right,1 -> right,1,>
right,_ -> carry,_,<
carry,1 -> carry,0,<
carry,0 -> done,1,-
carry,_ -> done,1,-
`

func Test_Machine_01(t *testing.T) {
	table, params := load(t, example)
	m := New(table, params)
	//
	assert.Equal(t, turing.State("q0"), m.State())
	assert.Equal(t, 0, m.Head())
	assert.False(t, m.Halted())
	// step 1
	assert.NoError(t, m.Step())
	assert.Equal(t, Snapshot{"q0", 1, "110", 0, 2}, m.Snapshot())
	// step 2
	assert.NoError(t, m.Step())
	assert.Equal(t, Snapshot{"q0", 2, "110", 0, 2}, m.Snapshot())
	// step 3
	assert.NoError(t, m.Step())
	assert.Equal(t, Snapshot{"qH", 2, "110", 0, 2}, m.Snapshot())
	assert.True(t, m.Halted())
	assert.Equal(t, uint(3), m.Steps())
	// Stepping a halted machine does nothing
	assert.NoError(t, m.Step())
	assert.Equal(t, uint(3), m.Steps())
}

func Test_Machine_02(t *testing.T) {
	table, params := load(t, example)
	m := New(table, params)
	//
	n, err := m.Execute(2)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), n)
	//
	n, err = m.Execute(10)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), n)
	assert.True(t, m.Halted())
}

func Test_Machine_03(t *testing.T) {
	// Exactly one chunk
	table, params := load(t, example)
	m := New(table, params)
	//
	n, err := ExecuteAll(m, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), n)
	assert.True(t, m.Halted())
}

func Test_Machine_04(t *testing.T) {
	// Undefined transition mid-run
	table, params := load(t, "start: q0\ntape: 12\nhalt: qH\nq0,1 -> q1,x,>\n")
	m := New(table, params)
	//
	_, err := ExecuteAll(m, CHUNK)
	assert.ErrorIs(t, err, ErrUndefinedTransition)
	//
	var uerr *UndefinedTransitionError
	//
	assert.True(t, errors.As(err, &uerr))
	assert.Equal(t, UndefinedTransitionError{"q1", '2', 1}, *uerr)
	assert.Equal(t, "no transition for (q1, 2) at index 1", err.Error())
}

func Test_Machine_05(t *testing.T) {
	// Start state equals halt state
	table, params := load(t, "start: q0\ntape: 1\nhalt: q0\n")
	m := New(table, params)
	//
	assert.True(t, m.Halted())
	//
	n, err := m.Execute(10)
	assert.NoError(t, err)
	assert.Equal(t, uint(0), n)
}

func Test_Machine_06(t *testing.T) {
	// Moving left off an empty tape
	table, params := load(t, "start: a\ntape:\nhalt: h\na,_ -> b,x,<\nb,_ -> h,y,<\n")
	m := New(table, params)
	//
	_, err := ExecuteAll(m, CHUNK)
	assert.NoError(t, err)
	assert.Equal(t, Snapshot{"h", -2, "yx", -1, 0}, m.Snapshot())
}

func Test_Machine_07(t *testing.T) {
	// The table is never modified by running.
	table, params := load(t, increment)
	rules := table.Rules()
	//
	_, err := RunSilent(table, params)
	assert.NoError(t, err)
	assert.Equal(t, rules, table.Rules())
}

func Test_Machine_08(t *testing.T) {
	// A machine that writes beyond its tape bounds.
	table := turing.NewTable()
	m := New(table, turing.Parameters{Start: "q0", Tape: "1", Halt: "qH"})
	m.head = 5
	table.Add(turing.Rule{From: "q0", Read: turing.BLANK, Action: turing.Action{Next: "qH", Write: '0'}})
	//
	assert.ErrorIs(t, m.Step(), tape.ErrPrecondition)
}

func Test_RunSilent_01(t *testing.T) {
	table, params := load(t, example)
	//
	result, err := RunSilent(table, params)
	assert.NoError(t, err)
	assert.Equal(t, "110", result)
}

func Test_RunSilent_02(t *testing.T) {
	table, params := load(t, increment)
	//
	first, err := RunSilent(table, params)
	assert.NoError(t, err)
	assert.Equal(t, "1100_", first)
	// Runs are independent
	second, err := RunSilent(table, params)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_RunTraced_01(t *testing.T) {
	table, params := load(t, example)
	//
	snapshots, err := RunTraced(table, params)
	assert.NoError(t, err)
	assert.Equal(t, []Snapshot{
		{"q0", 0, "110", 0, 2},
		{"q0", 1, "110", 0, 2},
		{"q0", 2, "110", 0, 2},
		{"qH", 2, "110", 0, 2},
	}, snapshots)
}

func Test_RunTraced_02(t *testing.T) {
	table, params := load(t, "start: q0\ntape: 1\nhalt: q0\n")
	//
	snapshots, err := RunTraced(table, params)
	assert.NoError(t, err)
	assert.Equal(t, []Snapshot{{"q0", 0, "1", 0, 0}}, snapshots)
}

func Test_RunTraced_03(t *testing.T) {
	table, params := load(t, "start: q0\ntape: 1\nhalt: qH\nq0,1 -> q1,1,>\n")
	//
	snapshots, err := RunTraced(table, params)
	assert.ErrorIs(t, err, ErrUndefinedTransition)
	assert.Equal(t, 0, len(snapshots))
}

func Test_RunStepwise_01(t *testing.T) {
	var (
		table, params = load(t, increment)
		count         = 0
	)
	//
	result, err := RunStepwise(table, params, func(s Snapshot) error {
		count++
		return nil
	})
	//
	assert.NoError(t, err)
	assert.Equal(t, "1100_", result)
	// 5 steps right, 3 steps carrying, plus the initial snapshot
	assert.Equal(t, 9, count)
}

func Test_RunStepwise_02(t *testing.T) {
	var (
		table, params = load(t, increment)
		stop          = errors.New("stop")
		count         = 0
	)
	//
	_, err := RunStepwise(table, params, func(s Snapshot) error {
		if count++; count == 3 {
			return stop
		}
		//
		return nil
	})
	//
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, count)
}

func Test_Snapshot_01(t *testing.T) {
	s := Snapshot{"q", 0, "ab", -1, 0}
	//
	assert.Equal(t, turing.Symbol('a'), s.Read(-1))
	assert.Equal(t, turing.Symbol('b'), s.Read(0))
	assert.Equal(t, turing.BLANK, s.Read(1))
	assert.Equal(t, turing.BLANK, s.Read(-2))
}

// ==================================================================
// Framework
// ==================================================================

func load(t *testing.T, text string) (*turing.Table, turing.Parameters) {
	table, params, err := parser.ParseString(text)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return table, params
}
