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
package diagnostic

import (
	"github.com/segmentio/encoding/json"
)

// Result is the envelope in which diagnostics are reported by the command-line
// surface.  Success is determined solely by the absence of errors.
type Result struct {
	Success bool    `json:"success"`
	Result  Payload `json:"result"`
}

// Payload holds the bucketed diagnostics of a result.
type Payload struct {
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// NewResult packages up a set of diagnostics.  Warnings are only retained when
// requested.
func NewResult(errs []ValidationError, warnings bool) Result {
	var payload Payload
	//
	payload.Errors, payload.Warnings = Split(errs)
	//
	if !warnings {
		payload.Warnings = nil
	}
	//
	return Result{len(payload.Errors) == 0, payload}
}

// MarshalIndent renders this result as indented JSON.
func (p Result) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
