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
	"errors"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/consensys/go-turing/pkg/turing/parser"
	"github.com/consensys/go-turing/pkg/util/source"
)

// CheckInvalid checks that a given machine description fails to load, and that
// the errors reported match those expected by the file itself.
func CheckInvalid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/invalid/%s.turing", TestDir, test)
		srcfile  = readSourceFile(t, filename)
		// Extract expected errors
		expected, errs = ExtractAttributes(srcfile, extractSyntaxError)
	)
	// Check test file itself is well-formed
	for _, err := range errs {
		t.Fatalf("%s: %s", path.Base(filename), err)
	}
	//
	if len(expected) == 0 {
		t.Fatalf("%s: no expected errors", path.Base(filename))
	}
	// Parse the description with its attributes blanked out
	_, _, err := parser.Parse(*StripAttributes(srcfile))
	//
	if err == nil {
		t.Fatalf("%s: parsing should have failed", path.Base(filename))
	}
	//
	var actual *source.SyntaxError
	//
	if !errors.As(err, &actual) {
		t.Fatalf("%s: unexpected error (%s)", path.Base(filename), err)
	}
	// Parsing is abandoned at the first error, hence only the first expected
	// error can be reported.
	if !syntaxErrorsEqual(expected[0], *actual) {
		t.Errorf("%s: expected error %s, got %s", path.Base(filename),
			formatSyntaxError(expected[0]), formatSyntaxError(*actual))
	}
}

func syntaxErrorsEqual(expected source.SyntaxError, actual source.SyntaxError) bool {
	var (
		lspan = expected.Span()
		rspan = actual.Span()
	)
	//
	return lspan == rspan && strings.TrimSpace(expected.Message()) == actual.Message()
}

func formatSyntaxError(err source.SyntaxError) string {
	var (
		span = err.Span()
		line = err.FirstEnclosingLine()
		// Columns are numbered from 1
		start = 1 + span.Start() - line.Start()
		end   = 1 + span.End() - line.Start()
	)
	//
	return fmt.Sprintf("%d:%d-%d:%s", line.Number(), start, end, err.Message())
}
