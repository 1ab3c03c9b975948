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
	"fmt"
	"os"

	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] machine.turing",
	Short: "Check a machine description is well-formed.",
	Long: `Parse a machine description, reporting any syntax errors.  When the description is
	well-formed, its parameters and transition table are printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, params := LoadDescriptionFile(args[0])
		//
		for _, state := range DeadEnds(table, params) {
			log.Warnf("state %s has no transitions, but is not the halting state", state)
		}
		//
		if GetFlag(cmd, "quiet") {
			return
		}
		//
		fmt.Printf("start: %s\ntape: %s\nhalt: %s\n\n", params.Start, params.Tape, params.Halt)
		printRules(table, GetFlag(cmd, "ansi"))
	},
}

// DeadEnds identifies states (other than the halting state) which have no
// outgoing transitions.  A machine entering such a state always fails.
func DeadEnds(table *turing.Table, params turing.Parameters) []turing.State {
	var (
		states    = table.States()
		deadEnds  []turing.State
		hasStart  = false
		startDead = params.Start != params.Halt && len(table.Transitions(params.Start)) == 0
	)
	//
	for _, state := range states {
		hasStart = hasStart || state == params.Start
		//
		if state != params.Halt && len(table.Transitions(state)) == 0 {
			deadEnds = append(deadEnds, state)
		}
	}
	// Start state may not be mentioned by any rule
	if !hasStart && startDead {
		deadEnds = append(deadEnds, params.Start)
	}
	//
	return deadEnds
}

func printRules(table *turing.Table, ansi bool) {
	var (
		rules = table.Rules()
		tp    = termio.NewTablePrinter(5, uint(1+len(rules)))
	)
	//
	tp.SetRow(0, "state", "read", "next", "write", "move")
	//
	for i := range uint(5) {
		tp.SetEscape(i, 0, termio.BoldAnsiEscape())
	}
	//
	for i, r := range rules {
		tp.SetRow(uint(i+1), string(r.From), r.Read.String(), string(r.Action.Next), r.Action.Write.String(),
			r.Action.Move.String())
	}
	//
	tp.AnsiEscapes(ansi)
	tp.Print(os.Stdout)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("quiet", "q", false, "only report errors and warnings")
}
