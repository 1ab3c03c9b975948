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

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] machine.turing",
	Short: "Run a machine until it halts.",
	Long: `Run a machine from its initial configuration until it reaches the halting state,
	and print the final contents of the tape (without blanks at either end).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, params := LoadDescriptionFile(args[0])
		// Go!
		result := runMachine(cmd, table, params, nil)
		//
		fmt.Printf("Result: %s\n", trace.FinalResult(result))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
