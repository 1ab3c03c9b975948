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
	"github.com/consensys/go-turing/pkg/turing/tape"
)

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.  A machine
// which never halts is executed forever.
func ExecuteAll(machine *Machine, n uint) (uint, error) {
	var nsteps uint
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n {
			return nsteps, err
		}
	}
}

// Machine is a single-tape deterministic Turing machine in the middle of its
// execution.  The table is shared and never modified, whilst the tape is owned
// by the machine.
type Machine struct {
	table *turing.Table
	halt  turing.State
	// Current state
	state turing.State
	// Current head position
	head int
	tape *tape.Tape
	// Number of steps executed so far
	steps uint
}

// New constructs a machine ready to execute from the start state, with the
// head at index 0 of a fresh tape holding the initial contents.
func New(table *turing.Table, params turing.Parameters) *Machine {
	return &Machine{
		table: table,
		halt:  params.Halt,
		state: params.Start,
		head:  0,
		tape:  tape.New(params.Tape),
	}
}

// State returns the current state of this machine.
func (p *Machine) State() turing.State {
	return p.state
}

// Head returns the current position of the head.
func (p *Machine) Head() int {
	return p.head
}

// Tape returns the tape of this machine.
func (p *Machine) Tape() *tape.Tape {
	return p.tape
}

// Steps returns the number of steps executed so far.
func (p *Machine) Steps() uint {
	return p.steps
}

// Halted determines whether this machine has reached its halting state.
func (p *Machine) Halted() bool {
	return p.state == p.halt
}

// Snapshot captures the current state of this machine.
func (p *Machine) Snapshot() Snapshot {
	return Snapshot{p.state, p.head, p.tape.String(), p.tape.Min(), p.tape.Max()}
}

// Step executes a single transition: the symbol under the head is replaced,
// the state updated and the head moved.  Stepping a halted machine has no
// effect.
func (p *Machine) Step() error {
	if p.Halted() {
		return nil
	}
	//
	symbol := p.tape.Read(p.head)
	action, ok := p.table.Lookup(p.state, symbol)
	//
	if !ok {
		return &UndefinedTransitionError{p.state, symbol, p.head}
	} else if err := p.tape.Write(p.head, action.Write); err != nil {
		return err
	}
	//
	p.state = action.Next
	p.head += int(action.Move)
	p.steps++
	//
	return nil
}

// Execute the machine for upto the given number of steps, returning the actual
// number of steps executed and an error (if execution failed).  Fewer steps
// are executed only when the machine halts or fails.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for ; nsteps < steps && !p.Halted(); nsteps++ {
		if err := p.Step(); err != nil {
			return nsteps, err
		}
	}
	//
	return nsteps, nil
}
