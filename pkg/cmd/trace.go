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
	"math"
	"os"

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/consensys/go-turing/pkg/trace/json"
	"github.com/consensys/go-turing/pkg/turing/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace [flags] machine.turing",
	Short: "Run a machine and report every step.",
	Long: `Run a machine until it halts, recording a snapshot of the machine after every step.
	The snapshots are either printed as a table, or written to a JSON file which can be
	replayed later.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			snapshots []machine.Snapshot
			output    = GetString(cmd, "json")
		)
		//
		table, params := LoadDescriptionFile(args[0])
		//
		runMachine(cmd, table, params, func(s machine.Snapshot) error {
			snapshots = append(snapshots, s)
			return nil
		})
		// Package up snapshots
		seq, err := trace.NewSequence(params.Halt, snapshots)
		if err != nil {
			log.Error(err)
			os.Exit(5)
		}
		//
		if output != "" {
			writeSequence(output, seq)
		} else {
			trace.NewPrinter().
				Start(GetUint(cmd, "start")).
				End(GetUint(cmd, "end")).
				MaxCellWidth(GetUint(cmd, "max-width")).
				AnsiEscapes(GetFlag(cmd, "ansi")).
				Print(seq, os.Stdout)
			//
			fmt.Printf("Result: %s (%d steps)\n", seq.Result(), seq.Steps())
		}
	},
}

func writeSequence(filename string, seq trace.Sequence) {
	bytes, err := json.ToBytes(seq)
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote %d snapshot(s) to %s", len(seq.Snapshots), filename)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().String("json", "", "write snapshots to a JSON file instead of printing them")
	traceCmd.Flags().Uint("start", 0, "first step to print")
	traceCmd.Flags().Uint("end", math.MaxUint, "last step to print")
	traceCmd.Flags().Uint("max-width", 80, "maximum width of a printed cell")
}
