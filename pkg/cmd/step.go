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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/turing/machine"
	"github.com/consensys/go-turing/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errQuit is returned by a step prompt when the user asks to stop.
var errQuit = errors.New("quit")

var stepCmd = &cobra.Command{
	Use:   "step [flags] machine.turing",
	Short: "Run a machine one step at a time.",
	Long: `Run a machine one step at a time, showing the tape and head position and waiting
	for a key press before each step.  Press enter or space to continue, and q to quit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var prompt stepPrompt
		//
		table, params := LoadDescriptionFile(args[0])
		//
		if termio.IsTerminal() && !GetFlag(cmd, "plain") {
			term, err := termio.NewTerminal()
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			prompt = &terminalPrompt{term, params.Halt, 0}
		} else {
			prompt = &linePrompt{bufio.NewReader(os.Stdin), os.Stdout, params.Halt, 0}
		}
		//
		result, err := stepMachine(cmd, table, params, prompt)
		//
		if errors.Is(err, errQuit) {
			log.Debug("stepping abandoned")
			return
		}
		//
		fmt.Printf("Result: %s\n", trace.FinalResult(result))
	},
}

// stepMachine runs a machine, waiting on the prompt before every step.  The
// prompt is closed before any error is reported.
func stepMachine(cmd *cobra.Command, table *turing.Table, params turing.Parameters,
	prompt stepPrompt) (string, error) {
	var stepErr error
	//
	result, err := machine.RunStepwise(table, params, stepLimiter(GetUint(cmd, "limit"), params.Halt,
		func(s machine.Snapshot) error {
			stepErr = prompt.Wait(s)
			return stepErr
		}))
	//
	if cerr := prompt.Close(); cerr != nil {
		log.Error(cerr)
	}
	//
	if err != nil && err != stepErr {
		reportRunError(err)
	} else if err != nil && !errors.Is(err, errQuit) {
		log.Error(err)
		os.Exit(2)
	}
	//
	return result, err
}

// stepPrompt shows a snapshot and then blocks until the user acknowledges it.
type stepPrompt interface {
	Wait(machine.Snapshot) error
	Close() error
}

// Describe a snapshot as a set of lines for display.
func describeSnapshot(step uint, s machine.Snapshot, halt turing.State) []string {
	var status string
	//
	if s.State == halt {
		status = fmt.Sprintf("step %d: halted in state %s", step, s.State)
	} else {
		status = fmt.Sprintf("step %d: state %s, head %d", step, s.State, s.Head)
	}
	//
	return append([]string{status}, trace.Render(s)...)
}

// ============================================================================
// Terminal Prompt
// ============================================================================

// terminalPrompt uses a raw terminal, such that single key presses can be
// read.
type terminalPrompt struct {
	term *termio.Terminal
	halt turing.State
	step uint
}

func (p *terminalPrompt) Wait(s machine.Snapshot) error {
	lines := describeSnapshot(p.step, s, p.halt)
	p.step++
	// No need to wait once halted
	if s.State == p.halt {
		return p.term.Render(lines...)
	}
	//
	lines = append(lines, "", "[enter/space] step  [q] quit")
	//
	if err := p.term.Render(lines...); err != nil {
		return err
	}
	//
	for {
		key, err := p.term.ReadKey()
		//
		switch {
		case err != nil:
			return err
		case key == termio.CARRIAGE_RETURN || key == termio.SPACE:
			return nil
		case key == 'q' || key == termio.ESC || key == termio.CTRL_C:
			return errQuit
		}
	}
}

func (p *terminalPrompt) Close() error {
	return p.term.Restore()
}

// ============================================================================
// Line Prompt
// ============================================================================

// linePrompt is used when no terminal is available.  It prints each snapshot
// and waits for a line of input.  Once input is exhausted, it no longer waits.
type linePrompt struct {
	in   *bufio.Reader
	out  io.Writer
	halt turing.State
	step uint
}

func (p *linePrompt) Wait(s machine.Snapshot) error {
	for _, line := range describeSnapshot(p.step, s, p.halt) {
		fmt.Fprintln(p.out, line)
	}
	//
	p.step++
	//
	if s.State == p.halt || p.in == nil {
		return nil
	}
	//
	fmt.Fprint(p.out, "Press enter to continue... ")
	//
	line, err := p.in.ReadString('\n')
	//
	if errors.Is(err, io.EOF) {
		p.in = nil
	} else if err != nil {
		return err
	} else if strings.TrimSpace(line) == "q" {
		return errQuit
	}
	//
	return nil
}

func (p *linePrompt) Close() error {
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(stepCmd)
	stepCmd.Flags().Bool("plain", false, "prompt on standard input even when attached to a terminal")
}
