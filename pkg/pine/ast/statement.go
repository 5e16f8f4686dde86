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

// DeclMode identifies the declaration keyword (if any) preceding a variable
// declaration.
type DeclMode string

const (
	// Plain declarations are re-evaluated on every bar.
	Plain DeclMode = ""
	// Var declarations are initialised once only.
	Var DeclMode = "var"
	// VarIP declarations are initialised once, and persist across intrabar
	// updates.
	VarIP DeclMode = "varip"
)

// ============================================================================
// Declarations
// ============================================================================

// VarDecl declares one or more variables under a single (optional) mode and
// type prefix.  For example, "var float x = 0.0".  The parser records a
// comma-joined declaration, such as "var a = 1, b = 2", as a single VarDecl
// with several declarators.
type VarDecl struct {
	Pos
	// Mode given for this declaration (e.g. "var")
	Mode DeclMode
	// Declared type (e.g. "float", or "simple int").  Empty if not given.
	TypeName string
	// Variables being declared
	Decls []*Declarator
}

// Declarator declares a single variable with its initialiser.
type Declarator struct {
	Pos
	Name string
	Init Expr
}

// TupleDecl destructures the result of a function call, as in "[a, b] = f()".
type TupleDecl struct {
	Pos
	Names []*Ident
	Init  Expr
}

// Parameter represents a parameter of a user-defined function.
type Parameter struct {
	Pos
	Name string
	// Declared type (empty if not given).
	TypeName string
	// Default value (nil if none).
	Default Expr
}

// FuncDecl declares a user-defined function or method.
type FuncDecl struct {
	Pos
	Name   string
	Params []*Parameter
	Body   []Statement
	// Indicates a method (i.e. declared with the "method" keyword).
	Method bool
	// Indicates an exported library function.
	Export bool
}

// Field represents a field of a user-defined type.
type Field struct {
	Pos
	Name     string
	TypeName string
	Default  Expr
}

// TypeDecl declares a user-defined type.
type TypeDecl struct {
	Pos
	Name   string
	Fields []*Field
	Export bool
}

// EnumMember represents a single member of an enumeration.
type EnumMember struct {
	Pos
	Name  string
	Title Expr
}

// EnumDecl declares an enumeration.
type EnumDecl struct {
	Pos
	Name    string
	Members []*EnumMember
	Export  bool
}

// Import brings a library into scope under an alias, as in "import
// user/lib/1 as lib".
type Import struct {
	Pos
	Path  string
	Alias string
}

// ============================================================================
// Statements
// ============================================================================

// Assign updates an existing variable, as in "x := 1" or "x += 1".
type Assign struct {
	Pos
	Op     string
	Target Expr
	Value  Expr
}

// ExprStmt evaluates an expression for its effect (e.g. a call to plot).
type ExprStmt struct {
	Pos
	X Expr
}

// If represents a conditional statement.  Any "else if" chains are nested in
// the Else block.
type If struct {
	Pos
	Cond Expr
	Then []Statement
	Else []Statement
}

// For represents a counting loop, as in "for i = 0 to 10 by 2".
type For struct {
	Pos
	Var  *Ident
	From Expr
	To   Expr
	Step Expr
	Body []Statement
}

// ForIn represents a loop over the elements of a collection, as in "for x in
// xs" or "for [i, x] in xs".
type ForIn struct {
	Pos
	Vars     []*Ident
	Iterable Expr
	Body     []Statement
}

// While represents a conditional loop.
type While struct {
	Pos
	Cond Expr
	Body []Statement
}

// SwitchCase represents a single case of a switch.  A nil condition signals
// the default case.
type SwitchCase struct {
	Pos
	Cond Expr
	Body []Statement
}

// Switch represents a switch statement, either with or without a subject.
type Switch struct {
	Pos
	Subject Expr
	Cases   []*SwitchCase
}

// Break exits the enclosing loop.
type Break struct{ Pos }

// Continue skips to the next iteration of the enclosing loop.
type Continue struct{ Pos }

// Position implementation for Node interface.
func (p Pos) Position() Pos { return p }

func (*VarDecl) statement()   {}
func (*TupleDecl) statement() {}
func (*FuncDecl) statement()  {}
func (*TypeDecl) statement()  {}
func (*EnumDecl) statement()  {}
func (*Import) statement()    {}
func (*Assign) statement()    {}
func (*ExprStmt) statement()  {}
func (*If) statement()        {}
func (*For) statement()       {}
func (*ForIn) statement()     {}
func (*While) statement()     {}
func (*Switch) statement()    {}
func (*Break) statement()     {}
func (*Continue) statement()  {}
