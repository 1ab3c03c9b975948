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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/turing/machine"
	"github.com/consensys/go-turing/pkg/turing/parser"
	"github.com/consensys/go-turing/pkg/util"
	"github.com/consensys/go-turing/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errStepLimit is reported when a machine fails to halt within the step limit
// given on the command line.
var errStepLimit = errors.New("step limit reached")

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// LoadDescriptionFile reads and parses a machine description, or exits after
// reporting any errors.
func LoadDescriptionFile(filename string) (*turing.Table, turing.Parameters) {
	var serr *source.SyntaxError
	//
	log.Debug(fmt.Sprintf("loading machine description %s", filename))
	// Read source file
	srcfiles, err := source.ReadFiles(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	stats := util.NewPerfStats()
	table, params, err := parser.Parse(srcfiles[0])
	//
	stats.Log("Loading description")
	// Check for errors
	if errors.As(err, &serr) {
		printSyntaxError(serr)
		os.Exit(4)
	} else if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}
	//
	log.Debugf("loaded %d rule(s) over %d state(s)", table.Size(), len(table.States()))
	//
	return table, params
}

// Run a machine to completion, reporting each snapshot to the given callback
// (which may be nil), and subject to the step limit configured on the command
// line (if any).  Exits after reporting any errors.
func runMachine(cmd *cobra.Command, table *turing.Table, params turing.Parameters,
	onStep func(machine.Snapshot) error) string {
	var (
		limit  = GetUint(cmd, "limit")
		stats  = util.NewPerfStats()
		result string
		err    error
	)
	//
	if limit == 0 && onStep == nil {
		result, err = machine.RunSilent(table, params)
	} else {
		result, err = machine.RunStepwise(table, params, stepLimiter(limit, params.Halt, onStep))
	}
	//
	stats.Log("Execution")
	//
	if err != nil {
		reportRunError(err)
	}
	//
	return result
}

// Construct a step callback which fails once the given number of steps have
// been taken without halting.  A limit of zero imposes no limit.
func stepLimiter(limit uint, halt turing.State, onStep func(machine.Snapshot) error) func(machine.Snapshot) error {
	var steps uint
	//
	return func(s machine.Snapshot) error {
		if onStep != nil {
			if err := onStep(s); err != nil {
				return err
			}
		}
		// Snapshots are reported before each step is taken
		if limit != 0 && steps == limit && s.State != halt {
			return fmt.Errorf("%w (%d steps, state %s)", errStepLimit, limit, s.State)
		}
		//
		steps++
		//
		return nil
	}
}

func reportRunError(err error) {
	var uerr *machine.UndefinedTransitionError
	//
	if errors.As(err, &uerr) {
		log.WithFields(log.Fields{
			"state":  uerr.State,
			"symbol": uerr.Symbol.String(),
			"head":   uerr.Head,
		}).Error("undefined transition")
	} else {
		log.Error(err)
	}
	//
	os.Exit(5)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := max(0, span.Start()-line.Start())
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, length)))
}
