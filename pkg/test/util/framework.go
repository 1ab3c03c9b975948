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
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-turing/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the machine descriptions used for testing are found.
const TestDir = "../../testdata"

// Attribute provides a generic mechanism for extract attributes from the
// beginning of a file.  Parse a given line producing an item (if it has
// matched) or an error.
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// source file.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines = srcfile.Lines()
		// Now construct items
		items []T
		//
		errors []error
		//
		matched = true
	)
	// scan file line-by-line until no more attributes found
	for i := 0; i < len(lines) && matched; i++ {
		matched = false

		for _, attribute := range attributes {
			ok, item, err := attribute(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			} else if ok {
				items = append(items, item)
			}
			//
			matched = matched || ok
		}
	}
	//
	return items, errors
}

// StripAttributes returns a copy of a source file in which every attribute line
// (i.e. starting with ";;") is blanked out.  Blanking preserves the position of
// all other text, so spans computed against either file agree.
func StripAttributes(srcfile *source.File) *source.File {
	contents := []rune(string(srcfile.Contents()))
	//
	for _, line := range srcfile.Lines() {
		if strings.HasPrefix(line.String(), ";;") {
			for i := line.Start(); i < line.Start()+line.Length(); i++ {
				contents[i] = ' '
			}
		}
	}
	//
	return source.NewSourceFile(srcfile.Filename(), []byte(string(contents)))
}

func readSourceFile(t *testing.T, filename string) *source.File {
	// Read machine description
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}
