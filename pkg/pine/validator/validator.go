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
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/consensys/go-pinecheck/pkg/pine/ast"
	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/pine/registry"
	"github.com/consensys/go-pinecheck/pkg/pine/symbol"
)

// LatestVersion is the language version assumed when none (or an invalid one)
// is given.
const LatestVersion = 6

// Validator checks programs against the built-ins of a given registry.  A
// validator holds no state beyond its (immutable) registry, and hence can be
// used from multiple goroutines at once.
type Validator struct {
	registry *registry.Registry
}

// New constructs a validator for a given registry.
func New(registry *registry.Registry) *Validator {
	return &Validator{registry}
}

// Validate checks a program, returning the diagnostics found in the order they
// were encountered.  The version selects which language features are
// available; when empty, the version declared by the program is used instead.
// Validation never fails: parts of the program which are malformed or missing
// are simply skipped.
func (v *Validator) Validate(program *ast.Program, version string) []diagnostic.ValidationError {
	if program == nil {
		return nil
	}
	//
	c := newChecker(v.registry, languageVersion(version, program.Version))
	// Pass 1: collect declarations
	c.collect(program.Body)
	// Pass 2: resolve references
	return c.checkProgram(program.Body)
}

// languageVersion determines the first valid version from a list of
// candidates, defaulting to the latest version.
func languageVersion(candidates ...string) uint {
	for _, candidate := range candidates {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "v")
		//
		if n, err := strconv.ParseUint(candidate, 10, 32); err == nil && n > 0 {
			return uint(n)
		}
	}
	//
	return LatestVersion
}

// ============================================================================
// Checker
// ============================================================================

// checker holds the state of a single validation run.
type checker struct {
	registry *registry.Registry
	table    *symbol.Table
	version  uint
	// Position of the innermost enclosing node whose position is known.  This
	// is used for any node whose own position is missing.
	fallback ast.Pos
}

func newChecker(registry *registry.Registry, version uint) *checker {
	return &checker{registry, symbol.NewTable(), version, ast.Pos{Line: 1, Column: 0}}
}

// enter makes the position of a node (if known) the fallback position for
// anything nested within it, returning the previous fallback.
func (c *checker) enter(node ast.Node) ast.Pos {
	previous := c.fallback
	//
	if !isNil(node) {
		if pos := node.Position(); pos.IsKnown() {
			c.fallback = pos
		}
	}
	//
	return previous
}

// leave restores a fallback position returned by enter.
func (c *checker) leave(previous ast.Pos) {
	c.fallback = previous
}

// positionOf determines the position to report for a given node.
func (c *checker) positionOf(node ast.Node) ast.Pos {
	if !isNil(node) {
		if pos := node.Position(); pos.IsKnown() {
			return pos
		}
	}
	//
	return c.fallback
}

// isLocal checks whether statements are currently being checked within a
// nested block (or function), rather than at the top level of the script.
func (c *checker) isLocal() bool {
	// The outermost scope holds the declarations collected up front, whilst
	// the next holds those of the top-level statements themselves.
	return c.table.Depth() > 1
}

func (c *checker) errorAt(node ast.Node, length int, code diagnostic.Code, format string,
	args ...any) diagnostic.ValidationError {
	return c.report(node, length, diagnostic.Error, code, fmt.Sprintf(format, args...))
}

func (c *checker) warningAt(node ast.Node, length int, code diagnostic.Code, format string,
	args ...any) diagnostic.ValidationError {
	return c.report(node, length, diagnostic.Warning, code, fmt.Sprintf(format, args...))
}

func (c *checker) report(node ast.Node, length int, severity diagnostic.Severity, code diagnostic.Code,
	msg string) diagnostic.ValidationError {
	pos := c.positionOf(node)
	//
	return diagnostic.New(pos.Line, pos.Column, length, severity, code, msg)
}

// isNil checks whether a node is missing, including the case of a nil pointer
// held in a non-nil interface.
func isNil(node ast.Node) bool {
	if node == nil {
		return true
	}
	//
	v := reflect.ValueOf(node)
	//
	return v.Kind() == reflect.Pointer && v.IsNil()
}
