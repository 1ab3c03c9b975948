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
	"fmt"

	"github.com/consensys/go-turing/pkg/turing"
)

// ErrUndefinedTransition is matched (via errors.Is) by every
// UndefinedTransitionError.
var ErrUndefinedTransition = errors.New("undefined transition")

// UndefinedTransitionError is returned when a machine reaches a (state,
// symbol) pair for which its table has no rule.  This is fatal to the run.
type UndefinedTransitionError struct {
	State  turing.State
	Symbol turing.Symbol
	// Position of the head when the error arose.
	Head int
}

// Error implements the error interface.
func (p *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("no transition for (%s, %s) at index %d", p.State, p.Symbol, p.Head)
}

// Is allows this error to be matched against ErrUndefinedTransition.
func (p *UndefinedTransitionError) Is(target error) bool {
	return target == ErrUndefinedTransition
}
