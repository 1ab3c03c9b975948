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

import "errors"

// ErrMalformedRule indicates a line which is neither a parameter declaration
// nor a well-formed transition rule.
var ErrMalformedRule = errors.New("malformed rule")

// ErrMalformedParameter indicates a line which begins with the name of an
// outstanding parameter, but is otherwise malformed.
var ErrMalformedParameter = errors.New("malformed parameter")

// ErrMissingParameter indicates that one or more required parameters were not
// declared anywhere in a description.
var ErrMissingParameter = errors.New("missing parameter")
