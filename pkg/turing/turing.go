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

import "fmt"

// BLANK is the symbol held by every tape cell which has never been written.
const BLANK Symbol = '_'

// State is an opaque label identifying a state of the machine.
type State string

// Symbol is a single character of the tape alphabet.
type Symbol rune

// String returns this symbol as a one character string.
func (p Symbol) String() string {
	return string(rune(p))
}

// Direction determines how the head moves after a symbol has been written.
// The value of a direction is the offset applied to the head position.
type Direction int8

// LEFT moves the head one cell towards negative indices.
const LEFT Direction = -1

// STAY leaves the head where it is.
const STAY Direction = 0

// RIGHT moves the head one cell towards positive indices.
const RIGHT Direction = 1

// ParseDirection converts one of the direction markers "<", ">" or "-" into a
// direction.
func ParseDirection(marker string) (Direction, bool) {
	switch marker {
	case "<":
		return LEFT, true
	case ">":
		return RIGHT, true
	case "-":
		return STAY, true
	}
	//
	return STAY, false
}

// String returns the marker used for this direction in a description.
func (p Direction) String() string {
	switch p {
	case LEFT:
		return "<"
	case RIGHT:
		return ">"
	default:
		return "-"
	}
}

// Action is what the machine does when a transition fires: write a symbol,
// enter the next state and move the head.
type Action struct {
	Next  State
	Write Symbol
	Move  Direction
}

// Rule associates an action with the (state, symbol) pair which triggers it.
type Rule struct {
	From   State
	Read   Symbol
	Action Action
}

// String returns this rule in the notation used by machine descriptions.
func (p Rule) String() string {
	return fmt.Sprintf("%s,%s -> %s,%s,%s", p.From, p.Read, p.Action.Next, p.Action.Write, p.Action.Move)
}

// Parameters are the control values every description must provide.
type Parameters struct {
	// Start is the state in which execution begins.
	Start State
	// Tape holds the initial tape contents, anchored at index 0.
	Tape string
	// Halt is the state at which execution terminates.
	Halt State
}
