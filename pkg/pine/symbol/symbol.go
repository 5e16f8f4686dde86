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
package symbol

import (
	"fmt"

	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// Kind distinguishes the different categories of declared names.
type Kind uint8

const (
	// Variable identifies a variable (including tuple and loop variables).
	Variable Kind = iota
	// Parameter identifies a parameter of a user-defined function.
	Parameter
	// Function identifies a user-defined function or method.
	Function
	// Type identifies a user-defined type.
	Type
	// Enum identifies a user-defined enumeration.
	Enum
	// Library identifies the alias of an imported library.
	Library
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Parameter:
		return "parameter"
	case Function:
		return "function"
	case Type:
		return "type"
	case Enum:
		return "enum"
	case Library:
		return "library"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Arity records how many arguments a user-defined function accepts.
type Arity struct {
	// Number of parameters without default values.
	Min uint
	// Total number of parameters.
	Max uint
}

// Accepts checks whether a given number of arguments is permitted.
func (a Arity) Accepts(n uint) bool {
	return n >= a.Min && n <= a.Max
}

// Symbol represents a declared name.
type Symbol struct {
	// Name as declared.
	Name string
	// Category of this symbol.
	Kind Kind
	// Declared (or inferred) type.  Unknown if this cannot be determined.
	Type types.PineType
	// Position of the declaration.
	Line   int
	Column int
	// Members of an enumeration, or fields of a user-defined type.
	Members []string
	// Every overload of a user-defined function.
	Arities []Arity
}

// IsCallable checks whether this symbol can be called.
func (s *Symbol) IsCallable() bool {
	return s.Kind == Function
}

// HasMember checks whether an enumeration (or type) declares a given member.
func (s *Symbol) HasMember(name string) bool {
	for _, m := range s.Members {
		if m == name {
			return true
		}
	}
	//
	return false
}

// AcceptsArity checks whether any overload of this function accepts the given
// number of arguments.  Symbols which are not functions accept anything, as
// nothing is known about them.
func (s *Symbol) AcceptsArity(n uint) bool {
	if len(s.Arities) == 0 {
		return true
	}
	//
	for _, a := range s.Arities {
		if a.Accepts(n) {
			return true
		}
	}
	//
	return false
}
