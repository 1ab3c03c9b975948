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
package termio

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ESC is the escape code.
const ESC uint16 = 0x1b

// SPACE is the space bar.
const SPACE uint16 = 0x20

// CARRIAGE_RETURN indicates "enter"
const CARRIAGE_RETURN uint16 = 0x0D

// CTRL_C is the interrupt key, which raw mode delivers as an ordinary key.
const CTRL_C uint16 = 0x03

// CURSOR_UP (up arrow)
const CURSOR_UP uint16 = 0x5b41

// CURSOR_DOWN (down arrow)
const CURSOR_DOWN uint16 = 0x5b42

// CURSOR_RIGHT (right arrow)
const CURSOR_RIGHT uint16 = 0x5b43

// CURSOR_LEFT (left arrow)
const CURSOR_LEFT uint16 = 0x5b44

// UNKNOWN is a fall-back for unknown escape sequences
const UNKNOWN uint16 = 0x5bff

// IsTerminal determines whether both standard input and standard output are
// attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Terminal provides a simple full-screen window onto which lines of text can be
// rendered, and from which keys can be read.
type Terminal struct {
	// file descriptor for output.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewTerminal constructs a new terminal, moving it into raw mode.  The
// terminal must be restored once finished with.
func NewTerminal() (*Terminal, error) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	// Grab terminal screen
	terminal := term.NewTerminal(screen, "")
	//
	return &Terminal{fd, terminal, state}, nil
}

// ReadKey returns a keyevent from the keyboard.  This is either an ASCII
// character, or an extended escape code.
func (t *Terminal) ReadKey() (uint16, error) {
	var key [3]byte
	//
	if n, err := os.Stdin.Read(key[:]); err != nil {
		return 0, err
	} else if n == 1 {
		return uint16(key[0]), nil
	} else if n != 3 || key[1] != '[' {
		// Unknown or malformed escape sequence.
		return UNKNOWN, nil
	}
	// Dispatch escape
	switch key[2] {
	case 'A':
		return CURSOR_UP, nil
	case 'B':
		return CURSOR_DOWN, nil
	case 'C':
		return CURSOR_RIGHT, nil
	case 'D':
		return CURSOR_LEFT, nil
	}
	// unknown key
	return UNKNOWN, nil
}

// GetSize returns the dimensions of the terminal.
func (t *Terminal) GetSize() (uint, uint) {
	w, h, err := term.GetSize(t.fd)
	// Fall back on a conventional size
	if err != nil {
		return 80, 24
	}
	//
	return uint(w), uint(h)
}

// Render a set of lines onto the terminal, replacing whatever was previously
// displayed.  Lines are clipped to the width of the terminal.
func (t *Terminal) Render(lines ...string) error {
	var (
		width, height = t.GetSize()
		builder       strings.Builder
	)
	// Home cursor and clear screen
	builder.WriteString("\033[H\033[2J")
	//
	for i, line := range lines {
		if uint(i) >= height {
			break
		}
		//
		runes := []rune(line)
		if uint(len(runes)) > width {
			runes = runes[:width]
		}
		//
		builder.WriteString(string(runes))
		builder.WriteString("\n")
	}
	//
	_, err := t.xterm.Write([]byte(builder.String()))
	//
	return err
}

// Restore terminal to its original state.
func (t *Terminal) Restore() error {
	return term.Restore(int(os.Stdin.Fd()), t.state)
}
