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
package turing

import (
	"maps"
	"slices"
)

// Table maps each (state, symbol) pair onto the action taken by the machine.
// A table is constructed once whilst loading a description, and is treated as
// read-only thereafter.
type Table struct {
	transitions map[State]map[Symbol]Action
}

// NewTable constructs an initially empty table.
func NewTable() *Table {
	return &Table{make(map[State]map[Symbol]Action)}
}

// Add a rule to this table, overwriting any existing rule for the same (state,
// symbol) pair.
func (p *Table) Add(rule Rule) {
	row, ok := p.transitions[rule.From]
	//
	if !ok {
		row = make(map[Symbol]Action)
		p.transitions[rule.From] = row
	}
	//
	row[rule.Read] = rule.Action
}

// Terminate ensures the given state is present in the table with no outgoing
// transitions.  Any rules previously registered for it are discarded.
func (p *Table) Terminate(state State) {
	p.transitions[state] = make(map[Symbol]Action)
}

// Lookup the action for a given state and symbol.
func (p *Table) Lookup(state State, symbol Symbol) (Action, bool) {
	action, ok := p.transitions[state][symbol]
	return action, ok
}

// Has checks whether a given state is a key of this table (possibly with no
// outgoing transitions).
func (p *Table) Has(state State) bool {
	_, ok := p.transitions[state]
	return ok
}

// Transitions returns the outgoing transitions of a given state, keyed by the
// symbol read.  The returned map must not be modified.
func (p *Table) Transitions(state State) map[Symbol]Action {
	return p.transitions[state]
}

// Rules returns every rule in this table, ordered by source state and then by
// symbol read.
func (p *Table) Rules() []Rule {
	var rules []Rule
	//
	for _, state := range slices.Sorted(maps.Keys(p.transitions)) {
		row := p.transitions[state]
		//
		for _, symbol := range slices.Sorted(maps.Keys(row)) {
			rules = append(rules, Rule{state, symbol, row[symbol]})
		}
	}
	//
	return rules
}

// Size returns the number of explicit rules in this table.
func (p *Table) Size() uint {
	var n uint
	//
	for _, row := range p.transitions {
		n += uint(len(row))
	}
	//
	return n
}

// States returns every state mentioned by this table in sorted order.  This
// includes both source and destination states.
func (p *Table) States() []State {
	var states = make(map[State]bool)
	//
	for state, row := range p.transitions {
		states[state] = true
		//
		for _, action := range row {
			states[action.Next] = true
		}
	}
	//
	return slices.Sorted(maps.Keys(states))
}

// Symbols returns every symbol read or written by this table in sorted order.
func (p *Table) Symbols() []Symbol {
	var symbols = make(map[Symbol]bool)
	//
	for _, row := range p.transitions {
		for symbol, action := range row {
			symbols[symbol] = true
			symbols[action.Write] = true
		}
	}
	//
	return slices.Sorted(maps.Keys(symbols))
}
