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
package ast

import "strings"

// LiteralKind identifies the kind of a literal value.
type LiteralKind string

const (
	// IntLit is an integer literal (e.g. 10).
	IntLit LiteralKind = "int"
	// FloatLit is a floating point literal (e.g. 1.5).
	FloatLit LiteralKind = "float"
	// BoolLit is either true or false.
	BoolLit LiteralKind = "bool"
	// StringLit is a string literal.
	StringLit LiteralKind = "string"
	// ColorLit is a color literal (e.g. #ff0000).
	ColorLit LiteralKind = "color"
	// NaLit is the na literal.
	NaLit LiteralKind = "na"
)

// Ident is a reference to a name, such as a variable or function.
type Ident struct {
	Pos
	Name string
}

// Literal represents a constant value appearing in the source.
type Literal struct {
	Pos
	Kind  LiteralKind
	Value string
}

// Member represents an access "Object.Property".  An empty property indicates
// the parser encountered a dangling dot (e.g. "plot.").
type Member struct {
	Pos
	Object   Expr
	Property string
	// Position of the property name (if known).
	PropertyPos Pos
}

// Argument represents a single (possibly named) argument of a call.
type Argument struct {
	Pos
	// Name given for a named argument, or empty for a positional argument.
	Name  string
	Value Expr
}

// Call represents an invocation, such as "ta.sma(close, 14)".
type Call struct {
	Pos
	Callee Expr
	Args   []*Argument
	// Explicit type arguments (e.g. "array.new<float>").
	TypeArgs []string
}

// Binary represents a binary operation, such as "a + b" or "a and b".
type Binary struct {
	Pos
	Op  string
	Lhs Expr
	Rhs Expr
}

// Unary represents a unary operation, such as "-a" or "not a".
type Unary struct {
	Pos
	Op      string
	Operand Expr
}

// Ternary represents a conditional expression "c ? a : b".
type Ternary struct {
	Pos
	Cond Expr
	Then Expr
	Else Expr
}

// Index represents a history reference or element access, as in "close[1]".
type Index struct {
	Pos
	Object Expr
	Index  Expr
}

// ArrayLit represents a tuple or array literal, as in "[a, b]".
type ArrayLit struct {
	Pos
	Elements []Expr
}

func (*Ident) expr()    {}
func (*Literal) expr()  {}
func (*Member) expr()   {}
func (*Call) expr()     {}
func (*Binary) expr()   {}
func (*Unary) expr()    {}
func (*Ternary) expr()  {}
func (*Index) expr()    {}
func (*ArrayLit) expr() {}

// QualifiedName determines the dotted name of an expression built purely from
// identifiers and member accesses (e.g. "strategy.risk.allow_entry_in").  This
// returns false for anything else, including incomplete member accesses.
func QualifiedName(e Expr) (string, bool) {
	switch e := e.(type) {
	case *Ident:
		if e != nil && e.Name != "" {
			return e.Name, true
		}
	case *Member:
		if e == nil || e.Property == "" {
			return "", false
		} else if prefix, ok := QualifiedName(e.Object); ok {
			return prefix + "." + e.Property, true
		}
	}
	//
	return "", false
}

// Root returns the leftmost identifier of a chain of member accesses (e.g.
// "strategy" for "strategy.risk.allow_entry_in"), or nil if there is none.
func Root(e Expr) *Ident {
	for {
		switch x := e.(type) {
		case *Ident:
			return x
		case *Member:
			if x == nil {
				return nil
			}
			//
			e = x.Object
		default:
			return nil
		}
	}
}

// SplitQualified splits a qualified name into its namespace and member.  For
// example, "ta.sma" gives ("ta", "sma"), whilst "close" gives ("", "close").
func SplitQualified(name string) (string, string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	//
	return "", name
}

// Unfold expands an identifier whose name is dotted (e.g. "ta.sma") into the
// equivalent chain of member accesses, such that positions of the properties
// are offset from the identifier.  Any other expression is returned as is.
func Unfold(e Expr) Expr {
	ident, ok := e.(*Ident)
	if !ok || ident == nil || !strings.Contains(ident.Name, ".") {
		return e
	}
	//
	parts := strings.Split(ident.Name, ".")
	offset := ident.Column + len(parts[0]) + 1
	//
	var chain Expr = &Ident{Pos: ident.Pos, Name: parts[0]}
	//
	for _, part := range parts[1:] {
		var pos Pos
		//
		if ident.IsKnown() {
			pos = Pos{ident.Line, offset}
		}
		//
		chain = &Member{Pos: ident.Pos, Object: chain, Property: part, PropertyPos: pos}
		offset += len(part) + 1
	}
	//
	return chain
}
