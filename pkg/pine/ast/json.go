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

import (
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// DecodeProgram decodes a program from the JSON form produced by the parser.
// Every node is a JSON object with a "kind" discriminator (e.g. "Call") along
// with its "line" and "column".  Decoding is tolerant: nodes of an unknown kind
// or with malformed fields are dropped (or left zero) rather than failing, such
// that whatever could be decoded can still be validated.  An error is only
// returned when the document itself is not a JSON object.
func DecodeProgram(data []byte) (*Program, error) {
	var root object
	//
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "malformed syntax tree")
	}
	//
	return &Program{root.str("version"), root.statements("body")}, nil
}

// Object is a node which has not been decoded yet.
type object map[string]json.RawMessage

func decodeObject(raw json.RawMessage) object {
	var obj object
	// Anything which is not an object is treated as absent.
	if len(raw) == 0 || json.Unmarshal(raw, &obj) != nil {
		return nil
	}
	//
	return obj
}

func (o object) str(key string) string {
	var s string
	//
	if raw, ok := o[key]; ok && json.Unmarshal(raw, &s) != nil {
		// Allow scalars (e.g. numbers) to be given in their raw form.
		return string(raw)
	}
	//
	return s
}

func (o object) integer(key string) int {
	var n int
	//
	if raw, ok := o[key]; ok {
		_ = json.Unmarshal(raw, &n)
	}
	//
	return n
}

func (o object) boolean(key string) bool {
	var b bool
	//
	if raw, ok := o[key]; ok {
		_ = json.Unmarshal(raw, &b)
	}
	//
	return b
}

func (o object) pos() Pos {
	return Pos{o.integer("line"), o.integer("column")}
}

func (o object) list(key string) []json.RawMessage {
	var items []json.RawMessage
	//
	if raw, ok := o[key]; ok {
		_ = json.Unmarshal(raw, &items)
	}
	//
	return items
}

func (o object) strs(key string) []string {
	var items []string
	//
	if raw, ok := o[key]; ok {
		_ = json.Unmarshal(raw, &items)
	}
	//
	return items
}

func (o object) child(key string) object {
	return decodeObject(o[key])
}

func (o object) expr(key string) Expr {
	return decodeExpr(o.child(key))
}

func (o object) exprs(key string) []Expr {
	var exprs []Expr
	//
	for _, raw := range o.list(key) {
		if e := decodeExpr(decodeObject(raw)); e != nil {
			exprs = append(exprs, e)
		}
	}
	//
	return exprs
}

func (o object) ident(key string) *Ident {
	if e, ok := o.expr(key).(*Ident); ok {
		return e
	}
	//
	return nil
}

func (o object) idents(key string) []*Ident {
	var idents []*Ident
	//
	for _, e := range o.exprs(key) {
		if id, ok := e.(*Ident); ok {
			idents = append(idents, id)
		}
	}
	//
	return idents
}

func (o object) statements(key string) []Statement {
	var stmts []Statement
	//
	for _, raw := range o.list(key) {
		if s := decodeStatement(decodeObject(raw)); s != nil {
			stmts = append(stmts, s)
		}
	}
	//
	return stmts
}

// ============================================================================
// Statements
// ============================================================================

//nolint:gocyclo
func decodeStatement(o object) Statement {
	if o == nil {
		return nil
	}
	//
	switch o.str("kind") {
	case "VarDecl":
		return &VarDecl{o.pos(), DeclMode(o.str("mode")), o.str("typeName"), decodeDeclarators(o)}
	case "TupleDecl":
		return &TupleDecl{o.pos(), o.idents("names"), o.expr("init")}
	case "FuncDecl":
		return &FuncDecl{o.pos(), o.str("name"), decodeParameters(o), o.statements("body"),
			o.boolean("method"), o.boolean("export")}
	case "TypeDecl":
		return &TypeDecl{o.pos(), o.str("name"), decodeFields(o), o.boolean("export")}
	case "EnumDecl":
		return &EnumDecl{o.pos(), o.str("name"), decodeEnumMembers(o), o.boolean("export")}
	case "Import":
		return &Import{o.pos(), o.str("path"), o.str("alias")}
	case "Assign":
		return &Assign{o.pos(), o.str("op"), o.expr("target"), o.expr("value")}
	case "ExprStmt":
		return &ExprStmt{o.pos(), o.expr("expr")}
	case "If":
		return &If{o.pos(), o.expr("cond"), o.statements("then"), o.statements("else")}
	case "For":
		return &For{o.pos(), o.ident("var"), o.expr("from"), o.expr("to"), o.expr("step"), o.statements("body")}
	case "ForIn":
		return &ForIn{o.pos(), o.idents("vars"), o.expr("iterable"), o.statements("body")}
	case "While":
		return &While{o.pos(), o.expr("cond"), o.statements("body")}
	case "Switch":
		return &Switch{o.pos(), o.expr("subject"), decodeSwitchCases(o)}
	case "Break":
		return &Break{o.pos()}
	case "Continue":
		return &Continue{o.pos()}
	}
	// Permit bare expressions in statement position.
	if e := decodeExpr(o); e != nil {
		return &ExprStmt{e.Position(), e}
	}
	//
	return nil
}

func decodeDeclarators(o object) []*Declarator {
	var decls []*Declarator
	//
	for _, raw := range o.list("decls") {
		if d := decodeObject(raw); d != nil {
			decls = append(decls, &Declarator{d.pos(), d.str("name"), d.expr("init")})
		}
	}
	//
	return decls
}

func decodeParameters(o object) []*Parameter {
	var params []*Parameter
	//
	for _, raw := range o.list("params") {
		if p := decodeObject(raw); p != nil {
			params = append(params, &Parameter{p.pos(), p.str("name"), p.str("typeName"), p.expr("default")})
		}
	}
	//
	return params
}

func decodeFields(o object) []*Field {
	var fields []*Field
	//
	for _, raw := range o.list("fields") {
		if f := decodeObject(raw); f != nil {
			fields = append(fields, &Field{f.pos(), f.str("name"), f.str("typeName"), f.expr("default")})
		}
	}
	//
	return fields
}

func decodeEnumMembers(o object) []*EnumMember {
	var members []*EnumMember
	//
	for _, raw := range o.list("members") {
		if m := decodeObject(raw); m != nil {
			members = append(members, &EnumMember{m.pos(), m.str("name"), m.expr("title")})
		}
	}
	//
	return members
}

func decodeSwitchCases(o object) []*SwitchCase {
	var cases []*SwitchCase
	//
	for _, raw := range o.list("cases") {
		if c := decodeObject(raw); c != nil {
			cases = append(cases, &SwitchCase{c.pos(), c.expr("cond"), c.statements("body")})
		}
	}
	//
	return cases
}

// ============================================================================
// Expressions
// ============================================================================

func decodeExpr(o object) Expr {
	if o == nil {
		return nil
	}
	//
	switch o.str("kind") {
	case "Ident":
		return &Ident{o.pos(), o.str("name")}
	case "Literal":
		return &Literal{o.pos(), LiteralKind(o.str("literalKind")), o.str("value")}
	case "Member":
		var propertyPos Pos
		//
		if p := o.child("propertyPos"); p != nil {
			propertyPos = p.pos()
		}
		//
		return &Member{o.pos(), o.expr("object"), o.str("property"), propertyPos}
	case "Call":
		return &Call{o.pos(), o.expr("callee"), decodeArguments(o), o.strs("typeArgs")}
	case "Binary":
		return &Binary{o.pos(), o.str("op"), o.expr("lhs"), o.expr("rhs")}
	case "Unary":
		return &Unary{o.pos(), o.str("op"), o.expr("operand")}
	case "Ternary":
		return &Ternary{o.pos(), o.expr("cond"), o.expr("then"), o.expr("else")}
	case "Index":
		return &Index{o.pos(), o.expr("object"), o.expr("index")}
	case "ArrayLit":
		return &ArrayLit{o.pos(), o.exprs("elements")}
	}
	//
	return nil
}

func decodeArguments(o object) []*Argument {
	var args []*Argument
	//
	for _, raw := range o.list("args") {
		if a := decodeObject(raw); a != nil {
			args = append(args, &Argument{a.pos(), a.str("name"), a.expr("value")})
		}
	}
	//
	return args
}
