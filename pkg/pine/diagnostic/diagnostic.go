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
	"fmt"
)

// Severity determines how a diagnostic affects the outcome of a validation run.
// Only Error blocks a successful outcome.
type Severity uint8

const (
	// Error identifies a diagnostic which makes the document invalid.
	Error Severity = iota
	// Warning identifies a suspicious (but legal) construct.
	Warning
	// Information identifies a purely informative diagnostic.
	Information
	// Hint identifies a suggestion, such as a preferred spelling.
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "info"
	case Hint:
		return "hint"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

// ValidationError is a single positioned diagnostic produced by the validator.
// Lines count from 1, whilst columns count from 0.  Once constructed, a
// validation error is never modified.
type ValidationError struct {
	// Line on which the diagnostic starts (counting from 1).
	Line int `json:"line"`
	// Column at which the diagnostic starts (counting from 0).
	Column int `json:"column"`
	// Number of characters covered (always at least 1).
	Length int `json:"length"`
	// Human readable message.
	Message string `json:"message"`
	// Severity of this diagnostic.
	Severity Severity `json:"severity"`
	// Stable identifier for the kind of diagnostic.
	Code Code `json:"code,omitempty"`
}

// New constructs a validation error whilst ensuring its position is well
// formed.  Specifically, an unknown line is reported on the first line, and the
// length always covers at least one character.
func New(line, column, length int, severity Severity, code Code, msg string) ValidationError {
	if line < 1 {
		line = 1
	}
	//
	if column < 0 {
		column = 0
	}
	//
	if length < 1 {
		length = 1
	}
	//
	return ValidationError{line, column, length, msg, severity, code}
}

// IsError checks whether this diagnostic blocks a successful outcome.
func (e ValidationError) IsError() bool {
	return e.Severity == Error
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column+1, e.Severity, e.Message)
}

// HasErrors checks whether any of the given diagnostics is an Error.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.IsError() {
			return true
		}
	}
	//
	return false
}

// Split partitions diagnostics into errors and warnings, preserving their
// relative order.  Information and hints are dropped.
func Split(errs []ValidationError) (errors []ValidationError, warnings []ValidationError) {
	errors = make([]ValidationError, 0)
	warnings = make([]ValidationError, 0)
	//
	for _, e := range errs {
		switch e.Severity {
		case Error:
			errors = append(errors, e)
		case Warning:
			warnings = append(warnings, e)
		}
	}
	//
	return errors, warnings
}
