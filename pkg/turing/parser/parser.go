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
package parser

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/consensys/go-turing/pkg/turing"
	"github.com/consensys/go-turing/pkg/util/source"
)

// START names the parameter declaring the initial state.
const START = "start"

// TAPE names the parameter declaring the initial tape contents.
const TAPE = "tape"

// HALT names the parameter declaring the halting state.
const HALT = "halt"

// RequiredParameters returns the parameters every description must declare, in
// the order in which they are matched against each line.
func RequiredParameters() []string {
	return []string{START, TAPE, HALT}
}

// LineKind classifies a line of a description.
type LineKind uint8

// EMPTY_LINE is a line containing only whitespace.
const EMPTY_LINE LineKind = 0

// PARAMETER_LINE is a line of the form "name: value".
const PARAMETER_LINE LineKind = 1

// TRANSITION_LINE is a line of the form "state,symbol -> state,symbol,direction".
const TRANSITION_LINE LineKind = 2

// Line is the outcome of parsing a single line of a description.
type Line struct {
	Kind LineKind
	// Name and value of a parameter (when Kind is PARAMETER_LINE).
	Name  string
	Value string
	// Rule found (when Kind is TRANSITION_LINE).
	Rule turing.Rule
}

// Parse a machine description from a given source file, producing its
// transition table and control parameters.  Lines are processed in order, and
// parsing stops at the first malformed line.  Errors are reported as syntax
// errors over the offending line.
func Parse(srcfile source.File) (*turing.Table, turing.Parameters, error) {
	p := NewParser(&srcfile)
	//
	for _, line := range srcfile.Lines() {
		if err := p.parseLine(line); err != nil {
			return nil, turing.Parameters{}, err
		}
	}
	//
	return p.finish()
}

// ParseString parses a machine description held in a string.
func ParseString(text string) (*turing.Table, turing.Parameters, error) {
	return Parse(*source.NewSourceFile("<input>", []byte(text)))
}

// Parser accumulates the transition table and parameters of a description as
// its lines are parsed.
type Parser struct {
	srcfile *source.File
	table   *turing.Table
	// Values of parameters found so far.
	values map[string]string
	// Parameters not yet found, in matching order.
	outstanding []string
}

// NewParser constructs a parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	return &Parser{srcfile, turing.NewTable(), make(map[string]string), RequiredParameters()}
}

func (p *Parser) parseLine(line source.Line) error {
	result, err := ParseLine(line.String(), p.table, &p.outstanding)
	//
	if err != nil {
		return p.srcfile.WrappedError(trimmedSpan(line), err)
	} else if result.Kind == PARAMETER_LINE {
		p.values[result.Name] = result.Value
	}
	//
	return nil
}

func (p *Parser) finish() (*turing.Table, turing.Parameters, error) {
	if len(p.outstanding) > 0 {
		var (
			end  = len(p.srcfile.Contents())
			err  = fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(p.outstanding, ", "))
			span = source.NewSpan(end, end)
		)
		//
		return nil, turing.Parameters{}, p.srcfile.WrappedError(span, err)
	}
	//
	params := turing.Parameters{
		Start: turing.State(p.values[START]),
		Tape:  p.values[TAPE],
		Halt:  turing.State(p.values[HALT]),
	}
	// The halting state never has outgoing transitions.
	p.table.Terminate(params.Halt)
	//
	return p.table, params, nil
}

// ParseLine parses a single line of a description.  The line is first tested
// against each outstanding parameter in turn, and a matching parameter is
// removed from the outstanding list.  Otherwise, the line is parsed as a
// transition rule and added to the table.
func ParseLine(line string, table *turing.Table, outstanding *[]string) (Line, error) {
	var (
		text     = strings.TrimSpace(line)
		paramErr error
	)
	//
	if text == "" {
		return Line{Kind: EMPTY_LINE}, nil
	}
	//
	for i, name := range *outstanding {
		value, err := ParseParameter(text, name)
		//
		if err == nil {
			*outstanding = slices.Delete(*outstanding, i, i+1)
			return Line{Kind: PARAMETER_LINE, Name: name, Value: value}, nil
		} else if paramErr == nil && strings.HasPrefix(text, name+":") {
			paramErr = err
		}
	}
	//
	rule, err := ParseRule(text)
	//
	if err != nil && paramErr != nil {
		// Looked like a parameter more than a rule
		return Line{}, paramErr
	} else if err != nil {
		return Line{}, err
	}
	//
	table.Add(rule)
	//
	return Line{Kind: TRANSITION_LINE, Rule: rule}, nil
}

// ParseParameter parses a line of the form "name: value" for a given name,
// returning the (trimmed) value.
func ParseParameter(line string, name string) (string, error) {
	if !strings.HasPrefix(line, name+":") {
		return "", fmt.Errorf("%w: expected \"%s:\"", ErrMalformedParameter, name)
	}
	//
	parts := strings.Split(line, ":")
	//
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: expected \"%s: value\"", ErrMalformedParameter, name)
	}
	//
	return strings.TrimSpace(parts[1]), nil
}

// ParseRule parses a line of the form "state,symbol -> state,symbol,direction".
func ParseRule(line string) (turing.Rule, error) {
	var sides = strings.Split(line, "->")
	//
	if len(sides) != 2 {
		return turing.Rule{}, fmt.Errorf("%w: expected \"state,symbol -> state,symbol,direction\"", ErrMalformedRule)
	}
	//
	left := splitTokens(sides[0])
	right := splitTokens(sides[1])
	//
	if len(left) != 2 {
		return turing.Rule{}, fmt.Errorf("%w: expected \"state,symbol\" before \"->\"", ErrMalformedRule)
	} else if len(right) != 3 {
		return turing.Rule{}, fmt.Errorf("%w: expected \"state,symbol,direction\" after \"->\"", ErrMalformedRule)
	}
	//
	read, ok := parseSymbol(left[1])
	if !ok {
		return turing.Rule{}, fmt.Errorf("%w: invalid symbol \"%s\" read", ErrMalformedRule, left[1])
	}
	//
	write, ok := parseSymbol(right[1])
	if !ok {
		return turing.Rule{}, fmt.Errorf("%w: invalid symbol \"%s\" written", ErrMalformedRule, right[1])
	}
	//
	move, ok := turing.ParseDirection(right[2])
	if !ok {
		return turing.Rule{}, fmt.Errorf("%w: invalid direction \"%s\"", ErrMalformedRule, right[2])
	}
	//
	action := turing.Action{Next: turing.State(right[0]), Write: write, Move: move}
	//
	return turing.Rule{From: turing.State(left[0]), Read: read, Action: action}, nil
}

// Split a comma-separated list, trimming each token.
func splitTokens(text string) []string {
	tokens := strings.Split(text, ",")
	//
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	//
	return tokens
}

func parseSymbol(token string) (turing.Symbol, bool) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, false
	}
	//
	r, _ := utf8.DecodeRuneInString(token)
	//
	return turing.Symbol(r), true
}

// Determine the span of a line, excluding leading and trailing whitespace.
// For a line containing only whitespace, the span is empty.
func trimmedSpan(line source.Line) source.Span {
	var (
		runes = []rune(line.String())
		start = 0
		end   = len(runes)
	)
	//
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	//
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	//
	return source.NewSpan(line.Start()+start, line.Start()+end)
}
