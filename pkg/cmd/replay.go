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

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/consensys/go-turing/pkg/trace/json"
	"github.com/consensys/go-turing/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [flags] trace.json",
	Short: "Replay a previously recorded trace.",
	Long: `Replay a trace recorded with "trace --json".  In a terminal, the left and right arrow
	keys move one step backwards or forwards, up and down move ten steps, and q quits.
	Otherwise, the trace is printed as a table.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		seq := readSequence(args[0])
		//
		if !termio.IsTerminal() {
			trace.NewPrinter().AnsiEscapes(false).Print(seq, os.Stdout)
			return
		}
		//
		term, err := termio.NewTerminal()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		err = NewReplay(seq).Run(term)
		// Restore terminal before reporting anything
		if rerr := term.Restore(); rerr != nil {
			log.Error(rerr)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func readSequence(filename string) trace.Sequence {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	seq, err := json.FromBytes(bytes)
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(4)
	}
	//
	return seq
}

// Replay provides a cursor over a recorded sequence of snapshots.
type Replay struct {
	seq  trace.Sequence
	step uint
}

// NewReplay constructs a replay positioned at the initial snapshot.
func NewReplay(seq trace.Sequence) *Replay {
	return &Replay{seq, 0}
}

// Step returns the current position of this replay.
func (p *Replay) Step() uint {
	return p.step
}

// Move the current position by a given (possibly negative) number of steps,
// clamping at either end of the sequence.
func (p *Replay) Move(delta int) {
	var (
		last = int(p.seq.Steps())
		next = max(0, min(last, int(p.step)+delta))
	)
	//
	p.step = uint(next)
}

// Lines returns the text to display for the current position.
func (p *Replay) Lines() []string {
	lines := describeSnapshot(p.step, p.seq.Snapshots[p.step], p.seq.Halt)
	//
	return append(lines, "", fmt.Sprintf("[%d/%d]  [<-/->] step  [up/down] 10 steps  [q] quit",
		p.step, p.seq.Steps()))
}

// KeyPressed updates this replay in response to a key, returning true when the
// replay should finish.
func (p *Replay) KeyPressed(key uint16) bool {
	switch key {
	case termio.CURSOR_LEFT:
		p.Move(-1)
	case termio.CURSOR_RIGHT, termio.SPACE, termio.CARRIAGE_RETURN:
		p.Move(1)
	case termio.CURSOR_UP:
		p.Move(-10)
	case termio.CURSOR_DOWN:
		p.Move(10)
	case 'q', termio.ESC, termio.CTRL_C:
		return true
	}
	//
	return false
}

// Run this replay on a given terminal until the user quits.
func (p *Replay) Run(term *termio.Terminal) error {
	for {
		if err := term.Render(p.Lines()...); err != nil {
			return err
		}
		//
		key, err := term.ReadKey()
		if err != nil {
			return err
		} else if p.KeyPressed(key) {
			return nil
		}
	}
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
