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
package util

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-turing/pkg/trace"
	"github.com/consensys/go-turing/pkg/turing/machine"
	"github.com/consensys/go-turing/pkg/turing/parser"
	"github.com/consensys/go-turing/pkg/util/source"
)

// Expectation records something a valid machine description expects of its run.
type Expectation struct {
	// Name of the attribute, e.g. "result" or "steps".
	Name string
	// Value expected.
	Value string
}

// Extract an expectation of the form ";;name:value" for a known name.
func extractExpectation(lineno int, lines []source.Line, _ *source.File) (bool, Expectation, error) {
	var contents = lines[lineno].String()
	//
	for _, name := range []string{"result", "steps"} {
		prefix := fmt.Sprintf(";;%s:", name)
		//
		if strings.HasPrefix(contents, prefix) {
			value := strings.TrimSpace(strings.TrimPrefix(contents, prefix))
			//
			return true, Expectation{name, value}, nil
		}
	}
	//
	if strings.HasPrefix(contents, ";;") {
		return false, Expectation{}, fmt.Errorf("unknown attribute \"%s\"", contents)
	}
	//
	return false, Expectation{}, nil
}

// CheckValid checks that a given machine description loads, runs to completion
// and meets each of the expectations declared in the file itself.  The machine
// is run both silently and traced, and the two runs must agree.
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/valid/%s.turing", TestDir, test)
		srcfile  = readSourceFile(t, filename)
		name     = path.Base(filename)
		// Extract expectations
		expected, errs = ExtractAttributes(srcfile, extractExpectation)
	)
	// Check test file itself is well-formed
	for _, err := range errs {
		t.Fatalf("%s: %s", name, err)
	}
	//
	table, params, err := parser.Parse(*StripAttributes(srcfile))
	//
	if err != nil {
		t.Fatalf("%s: %s", name, err)
	}
	// Silent run
	contents, err := machine.RunSilent(table, params)
	//
	if err != nil {
		t.Fatalf("%s: %s", name, err)
	}
	// Traced run
	seq, err := trace.Record(table, params)
	//
	if err != nil {
		t.Fatalf("%s: %s", name, err)
	}
	//
	if seq.Final().Tape != contents {
		t.Errorf("%s: traced run ended with \"%s\", silent run with \"%s\"", name, seq.Final().Tape, contents)
	}
	//
	for _, e := range expected {
		switch e.Name {
		case "result":
			if actual := trace.FinalResult(contents); actual != e.Value {
				t.Errorf("%s: expected result \"%s\", got \"%s\"", name, e.Value, actual)
			}
		case "steps":
			steps, err := strconv.ParseUint(e.Value, 10, 64)
			//
			if err != nil {
				t.Fatalf("%s: invalid steps \"%s\"", name, e.Value)
			} else if uint64(seq.Steps()) != steps {
				t.Errorf("%s: expected %d steps, got %d", name, steps, seq.Steps())
			}
		}
	}
}
