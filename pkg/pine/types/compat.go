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

// OperatorClass groups binary operators by the operand types they accept.
type OperatorClass uint8

const (
	// Arithmetic operators (+, -, *, /, %) require numeric operands, except
	// that + also concatenates strings.
	Arithmetic OperatorClass = iota
	// Comparison operators (<, <=, >, >=) require numeric operands, or two
	// strings.
	Comparison
	// Equality operators (==, !=) require operands of compatible types.
	Equality
	// Logical operators (and, or) require boolean operands.
	Logical
)

var operatorClasses = map[string]OperatorClass{
	"+":   Arithmetic,
	"-":   Arithmetic,
	"*":   Arithmetic,
	"/":   Arithmetic,
	"%":   Arithmetic,
	"<":   Comparison,
	"<=":  Comparison,
	">":   Comparison,
	">=":  Comparison,
	"==":  Equality,
	"!=":  Equality,
	"and": Logical,
	"or":  Logical,
}

// ClassOf determines the class of a given binary operator, or returns false if
// the operator is not recognised.
func ClassOf(op string) (OperatorClass, bool) {
	class, ok := operatorClasses[op]
	return class, ok
}

// Compatible checks whether a value of the rhs type can be used where the lhs
// base type is expected, ignoring qualifiers.  Unknown types are compatible
// with everything, so that imperfect inference never cascades into spurious
// errors.  Ints are implicitly promoted to floats.
func Compatible(lhs PineType, rhs PineType) bool {
	switch {
	case lhs.IsUnknown() || rhs.IsUnknown():
		return true
	case lhs.Base == Float && rhs.Base == Int:
		return true
	case lhs.Base != rhs.Base:
		return false
	case lhs.Base != Object:
		return true
	case lhs.Object != rhs.Object && lhs.Object != "" && rhs.Object != "":
		return false
	case len(lhs.Params) != len(rhs.Params):
		// Treat missing type parameters as unknown.
		return true
	}
	//
	for i := range lhs.Params {
		l, r := lhs.Params[i], rhs.Params[i]
		// Elements are invariant, except where unknown.
		if !l.IsUnknown() && !r.IsUnknown() && l.BaseString() != r.BaseString() {
			return false
		}
	}
	//
	return true
}

// CanAssign checks whether a value of the rhs type can be assigned into a slot
// of the lhs type.  This requires the rhs is no more variable than the lhs, and
// that their base types are compatible.
func CanAssign(lhs PineType, rhs PineType) bool {
	return rhs.Qualifier <= lhs.Qualifier && Compatible(lhs, rhs)
}

// BinaryOperation determines the type resulting from applying a binary
// operator to operands of the given types.  This returns false if the operands
// are not acceptable for the operator.  Unrecognised operators produce an
// unknown result, rather than failing.
func BinaryOperation(op string, lhs PineType, rhs PineType) (PineType, bool) {
	class, ok := ClassOf(op)
	qualifier := Join(lhs.Qualifier, rhs.Qualifier)
	//
	if !ok {
		return UnknownType(), true
	}
	//
	switch class {
	case Arithmetic:
		return arithmetic(op, lhs, rhs, qualifier)
	case Comparison:
		if numericOrUnknown(lhs) && numericOrUnknown(rhs) || stringOrUnknown(lhs) && stringOrUnknown(rhs) {
			return New(qualifier, Bool), true
		}
	case Equality:
		if Compatible(lhs, rhs) || Compatible(rhs, lhs) {
			return New(qualifier, Bool), true
		}
	case Logical:
		if boolOrUnknown(lhs) && boolOrUnknown(rhs) {
			return New(qualifier, Bool), true
		}
	}
	//
	return New(qualifier, Unknown), false
}

// UnaryOperation determines the type resulting from applying a unary operator
// to an operand of the given type.  This returns false if the operand is not
// acceptable for the operator.
func UnaryOperation(op string, operand PineType) (PineType, bool) {
	switch op {
	case "-", "+":
		if numericOrUnknown(operand) {
			return operand, true
		}
	case "not":
		if boolOrUnknown(operand) {
			return operand.WithBase(Bool), true
		}
	default:
		return UnknownType(), true
	}
	//
	return operand.WithBase(Unknown), false
}

// AsCondition converts a numeric type into a boolean one, as happens implicitly
// for conditions in older versions of the language.  Other types are returned
// unchanged.
func AsCondition(t PineType) PineType {
	if t.IsNumeric() {
		return t.WithBase(Bool)
	}
	//
	return t
}

func arithmetic(op string, lhs PineType, rhs PineType, qualifier Qualifier) (PineType, bool) {
	switch {
	case op == "+" && (lhs.Base == String || rhs.Base == String):
		if stringOrUnknown(lhs) && stringOrUnknown(rhs) {
			return New(qualifier, String), true
		}
	case numericOrUnknown(lhs) && numericOrUnknown(rhs):
		switch {
		case lhs.IsUnknown() || rhs.IsUnknown():
			return New(qualifier, Unknown), true
		case lhs.Base == Float || rhs.Base == Float:
			return New(qualifier, Float), true
		default:
			return New(qualifier, Int), true
		}
	}
	//
	return New(qualifier, Unknown), false
}

func numericOrUnknown(t PineType) bool {
	return t.IsNumeric() || t.IsUnknown()
}

func stringOrUnknown(t PineType) bool {
	return t.Base == String || t.IsUnknown()
}

func boolOrUnknown(t PineType) bool {
	return t.Base == Bool || t.IsUnknown()
}
