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

// Code is a stable identifier for each kind of diagnostic.  Codes allow
// downstream surfaces (and tests) to distinguish diagnostics without matching
// on their messages.
type Code string

// =============================================================================
// Resolution
// =============================================================================

const (
	// UndefinedVariable is reported for an identifier which is neither declared
	// nor built-in.
	UndefinedVariable Code = "undefined-variable"
	// UndefinedNamespace is reported for "a.b" where "a" is unknown.
	UndefinedNamespace Code = "undefined-namespace"
	// UnknownMember is reported for "a.b" where "a" is known but "b" is not.
	UnknownMember Code = "unknown-member"
	// IncompleteReference is reported for a dangling "a.".
	IncompleteReference Code = "incomplete-reference"
	// UndefinedFunction is reported for a call to an unknown function.
	UndefinedFunction Code = "undefined-function"
	// TopLevelOnly is reported for a call which is only legal outside blocks.
	TopLevelOnly Code = "top-level-only"
)

// =============================================================================
// Arity
// =============================================================================

const (
	// MissingParameters is reported when required parameters are not supplied.
	MissingParameters Code = "missing-parameters"
	// TooManyArguments is reported when more arguments than parameters are given.
	TooManyArguments Code = "too-many-arguments"
	// UnknownParameter is reported for a named argument matching no parameter.
	UnknownParameter Code = "unknown-parameter"
	// DuplicateArgument is reported when a named argument is given twice.
	DuplicateArgument Code = "duplicate-argument"
	// ParameterRenamed is reported for a parameter known under a different name.
	ParameterRenamed Code = "parameter-renamed"
	// MissingCompanion is reported for a modifier which has no effect alone.
	MissingCompanion Code = "modifier-without-companion"
)

// =============================================================================
// Declarations
// =============================================================================

const (
	// MultiDeclaration is reported for "var a = 1, b = 2".
	MultiDeclaration Code = "multi-declaration"
	// Redeclared is reported when a name is declared twice in the same scope.
	Redeclared Code = "redeclared"
	// ShadowedBuiltin is reported when a declaration hides a built-in variable.
	ShadowedBuiltin Code = "shadowed-builtin"
	// BuiltinAssignment is reported for an attempt to modify a built-in.
	BuiltinAssignment Code = "builtin-assignment"
	// VersionFeature is reported for a construct unavailable in the selected
	// language version.
	VersionFeature Code = "version-feature"
)

// =============================================================================
// Types
// =============================================================================

const (
	// TypeMismatch is reported for an assignment rejected by the type system.
	TypeMismatch Code = "type-mismatch"
	// InvalidOperands is reported for a binary operator with incompatible
	// operands.
	InvalidOperands Code = "invalid-operands"
)
