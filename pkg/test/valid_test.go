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
package test

import (
	"testing"

	"github.com/consensys/go-turing/pkg/test/util"
)

// ===================================================================
// Basic Tests
// ===================================================================

func Test_Valid_Basic_01(t *testing.T) {
	util.CheckValid(t, "basic_01")
}

func Test_Valid_Basic_02(t *testing.T) {
	util.CheckValid(t, "basic_02")
}

func Test_Valid_Basic_03(t *testing.T) {
	util.CheckValid(t, "basic_03")
}

func Test_Valid_Left_01(t *testing.T) {
	util.CheckValid(t, "left_01")
}

func Test_Valid_Unicode_01(t *testing.T) {
	util.CheckValid(t, "unicode_01")
}

func Test_Valid_Crlf_01(t *testing.T) {
	util.CheckValid(t, "crlf_01")
}

// ===================================================================
// Parameter Tests
// ===================================================================

func Test_Valid_Params_01(t *testing.T) {
	util.CheckValid(t, "params_01")
}

func Test_Valid_Params_02(t *testing.T) {
	util.CheckValid(t, "params_02")
}

func Test_Valid_Params_03(t *testing.T) {
	util.CheckValid(t, "params_03")
}

// ===================================================================
// Machine Tests
// ===================================================================

func Test_Valid_Increment_01(t *testing.T) {
	util.CheckValid(t, "increment_01")
}

func Test_Valid_Increment_02(t *testing.T) {
	util.CheckValid(t, "increment_02")
}

func Test_Valid_BusyBeaver_01(t *testing.T) {
	util.CheckValid(t, "busybeaver_01")
}
