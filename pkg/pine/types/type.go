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
package types

import (
	"fmt"
	"strings"
)

// Qualifier determines how early the value of an expression is known.  Values
// known at compile time are "const", whilst those which can change on every
// bar are "series".  Qualifiers are totally ordered from least to most
// variable, and a value can always be used where a more variable one is
// expected (but not vice versa).
type Qualifier uint8

const (
	// Const values are known at compile time.
	Const Qualifier = iota
	// Input values are known once script inputs have been set.
	Input
	// Simple values are known on the first bar.
	Simple
	// Series values can change on every bar.
	Series
)

func (q Qualifier) String() string {
	switch q {
	case Const:
		return "const"
	case Input:
		return "input"
	case Simple:
		return "simple"
	default:
		return "series"
	}
}

// Join returns the more variable of two qualifiers.  This is the qualifier of
// any value computed from both.
func Join(lhs Qualifier, rhs Qualifier) Qualifier {
	return max(lhs, rhs)
}

// Meet returns the less variable of two qualifiers.
func Meet(lhs Qualifier, rhs Qualifier) Qualifier {
	return min(lhs, rhs)
}

// BaseType identifies the kind of value, irrespective of its qualifier.
type BaseType uint8

const (
	// Unknown signals the base type could not be determined.  This is never an
	// error in itself, and is compatible with everything.
	Unknown BaseType = iota
	// Int identifies integer values.
	Int
	// Float identifies floating point values.
	Float
	// Bool identifies boolean values.
	Bool
	// String identifies string values.
	String
	// Color identifies color values.
	Color
	// Void identifies the absence of a value (e.g. the return of plot).
	Void
	// Object identifies reference types, such as arrays, labels or user-defined
	// types.  The specific kind is held separately.
	Object
)

func (b BaseType) String() string {
	switch b {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Color:
		return "color"
	case Void:
		return "void"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// IsNumeric checks whether this is either an int or a float.
func (b BaseType) IsNumeric() bool {
	return b == Int || b == Float
}

// PineType combines a qualifier with a base type.  Object types additionally
// carry the name of their kind (e.g. "array" or "label") and, for generic
// kinds, their type parameters (e.g. the element type of an array).
type PineType struct {
	// Qualifier of this type.
	Qualifier Qualifier
	// Base type of this type.
	Base BaseType
	// Kind of object (only meaningful when Base is Object).
	Object string
	// Type parameters for generic objects (e.g. array<float>).
	Params []PineType
}

// New constructs a (non-object) type from a qualifier and base type.
func New(qualifier Qualifier, base BaseType) PineType {
	return PineType{qualifier, base, "", nil}
}

// NewObject constructs an object type of the given kind with zero or more type
// parameters.
func NewObject(qualifier Qualifier, kind string, params ...PineType) PineType {
	return PineType{qualifier, Object, kind, params}
}

// UnknownType constructs the "could not determine" type.  An unknown type is
// given the const qualifier so that it places no constraint on where it can be
// used.
func UnknownType() PineType {
	return New(Const, Unknown)
}

// IsUnknown checks whether the base of this type could not be determined.
func (p PineType) IsUnknown() bool {
	return p.Base == Unknown
}

// IsNumeric checks whether this type is an int or a float.
func (p PineType) IsNumeric() bool {
	return p.Base.IsNumeric()
}

// WithQualifier returns a copy of this type using a different qualifier.
func (p PineType) WithQualifier(qualifier Qualifier) PineType {
	p.Qualifier = qualifier
	return p
}

// WithBase returns a copy of this type using a different (non-object) base.
func (p PineType) WithBase(base BaseType) PineType {
	return New(p.Qualifier, base)
}

// Equals checks whether two types are identical, including their qualifiers.
func (p PineType) Equals(other PineType) bool {
	if p.Qualifier != other.Qualifier || p.Base != other.Base || p.Object != other.Object {
		return false
	} else if len(p.Params) != len(other.Params) {
		return false
	}
	//
	for i := range p.Params {
		if !p.Params[i].Equals(other.Params[i]) {
			return false
		}
	}
	//
	return true
}

// BaseString returns a string representation of this type without its
// qualifier (e.g. "float" or "array<float>").
func (p PineType) BaseString() string {
	if p.Base != Object {
		return p.Base.String()
	} else if len(p.Params) == 0 {
		return p.Object
	}
	//
	params := make([]string, len(p.Params))
	//
	for i, t := range p.Params {
		params[i] = t.BaseString()
	}
	//
	return fmt.Sprintf("%s<%s>", p.Object, strings.Join(params, ", "))
}

func (p PineType) String() string {
	switch p.Base {
	case Unknown:
		return "unknown"
	case Void:
		return "void"
	}
	//
	return fmt.Sprintf("%s %s", p.Qualifier, p.BaseString())
}
