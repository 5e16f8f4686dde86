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
	"strings"

	"github.com/consensys/go-pinecheck/pkg/pine/ast"
	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/pine/symbol"
	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// Minimum language versions of version-specific declarations.
const (
	varipVersion  = 4
	typeVersion   = 5
	methodVersion = 5
	enumVersion   = 6
	// Conditions (and logical operands) must be boolean from this version.
	strictConditionVersion = 6
)

// checkProgram checks the top-level statements of a program.
func (c *checker) checkProgram(body []ast.Statement) []diagnostic.ValidationError {
	c.table.PushScope(symbol.Block)
	defer c.table.PopScope()
	//
	return c.checkStatements(body)
}

// checkBlock checks a sequence of statements within their own scope.
func (c *checker) checkBlock(kind symbol.ScopeKind, body []ast.Statement) []diagnostic.ValidationError {
	c.table.PushScope(kind)
	defer c.table.PopScope()
	//
	return c.checkStatements(body)
}

func (c *checker) checkStatements(body []ast.Statement) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	for _, stmt := range body {
		errs := c.checkStatement(stmt)
		errors = append(errors, errs...)
	}
	//
	return errors
}

func (c *checker) checkStatement(stmt ast.Statement) []diagnostic.ValidationError {
	if isNil(stmt) {
		return nil
	}
	//
	defer c.leave(c.enter(stmt))
	//
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return c.checkVarDecl(s)
	case *ast.TupleDecl:
		return c.checkTupleDecl(s)
	case *ast.FuncDecl:
		return c.checkFuncDecl(s)
	case *ast.TypeDecl:
		return c.checkTypeDecl(s)
	case *ast.EnumDecl:
		return c.checkEnumDecl(s)
	case *ast.Import:
		if c.isLocal() {
			c.define(s)
		}
		//
		return nil
	case *ast.Assign:
		return c.checkAssign(s)
	case *ast.ExprStmt:
		_, errors := c.checkExpr(s.X)
		return errors
	case *ast.If:
		_, errors := c.checkCondition(s.Cond)
		errors = append(errors, c.checkBlock(symbol.Block, s.Then)...)
		//
		return append(errors, c.checkBlock(symbol.Block, s.Else)...)
	case *ast.For:
		return c.checkFor(s)
	case *ast.ForIn:
		return c.checkForIn(s)
	case *ast.While:
		_, errors := c.checkCondition(s.Cond)
		return append(errors, c.checkBlock(symbol.Block, s.Body)...)
	case *ast.Switch:
		return c.checkSwitch(s)
	default:
		// break, continue, etc
		return nil
	}
}

// ============================================================================
// Declarations
// ============================================================================

func (c *checker) checkVarDecl(decl *ast.VarDecl) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	if decl.Mode == ast.VarIP && c.version < varipVersion {
		errors = append(errors, c.errorAt(decl, len(ast.VarIP), diagnostic.VersionFeature,
			"'varip' requires version %d or later", varipVersion))
	}
	//
	if prefix := declarationPrefix(decl); prefix != "" && len(decl.Decls) > 1 {
		errors = append(errors, c.errorAt(decl, len(prefix), diagnostic.MultiDeclaration,
			"%s", multiDeclarationMessage(prefix, decl.Decls)))
	}
	//
	for _, d := range decl.Decls {
		if d != nil {
			errs := c.checkDeclarator(decl, d)
			errors = append(errors, errs...)
		}
	}
	//
	return errors
}

func (c *checker) checkDeclarator(decl *ast.VarDecl, d *ast.Declarator) []diagnostic.ValidationError {
	defer c.leave(c.enter(d))
	//
	init, errors := c.checkExpr(d.Init)
	// Slots are series unless stated otherwise
	datatype := init.WithQualifier(types.Series)
	//
	// An explicit type determines the slot, unless it is user-defined
	if declared := types.MapToPineType(decl.TypeName); decl.TypeName != "" && !declared.IsUnknown() {
		if !isNil(d.Init) && !types.CanAssign(declared, init) {
			errors = append(errors, c.errorAt(d, len(d.Name), diagnostic.TypeMismatch,
				"Cannot assign a value of type '%s' to '%s' of type '%s'", init, d.Name, declared))
		}
		//
		datatype = declared
	}
	//
	return append(errors, c.declare(d, d.Name, symbol.Variable, datatype)...)
}

func (c *checker) checkTupleDecl(decl *ast.TupleDecl) []diagnostic.ValidationError {
	_, errors := c.checkExpr(decl.Init)
	//
	for _, name := range decl.Names {
		if name != nil {
			errs := c.declare(name, name.Name, symbol.Variable, types.UnknownType())
			errors = append(errors, errs...)
		}
	}
	//
	return errors
}

func (c *checker) checkFuncDecl(decl *ast.FuncDecl) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	if decl.Method && c.version < methodVersion {
		errors = append(errors, c.errorAt(decl, len("method"), diagnostic.VersionFeature,
			"'method' requires version %d or later", methodVersion))
	}
	//
	if c.isLocal() {
		c.define(decl)
	}
	// Default values are evaluated outside the function
	for _, p := range decl.Params {
		if p != nil {
			_, errs := c.checkExpr(p.Default)
			errors = append(errors, errs...)
		}
	}
	//
	c.table.PushScope(symbol.FunctionBody)
	defer c.table.PopScope()
	//
	for _, p := range decl.Params {
		if p == nil {
			continue
		}
		//
		datatype := types.UnknownType()
		//
		if p.TypeName != "" {
			datatype = types.MapToPineType(p.TypeName)
		}
		//
		errs := c.declare(p, p.Name, symbol.Parameter, datatype)
		errors = append(errors, errs...)
	}
	//
	return append(errors, c.checkStatements(decl.Body)...)
}

func (c *checker) checkTypeDecl(decl *ast.TypeDecl) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	if c.version < typeVersion {
		errors = append(errors, c.errorAt(decl, len("type"), diagnostic.VersionFeature,
			"'type' requires version %d or later", typeVersion))
	}
	//
	if c.isLocal() {
		c.define(decl)
	}
	//
	for _, f := range decl.Fields {
		if f != nil {
			_, errs := c.checkExpr(f.Default)
			errors = append(errors, errs...)
		}
	}
	//
	return errors
}

func (c *checker) checkEnumDecl(decl *ast.EnumDecl) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	if c.version < enumVersion {
		errors = append(errors, c.errorAt(decl, len("enum"), diagnostic.VersionFeature,
			"'enum' requires version %d or later", enumVersion))
	}
	//
	if c.isLocal() {
		c.define(decl)
	}
	//
	seen := make(map[string]bool)
	//
	for _, m := range decl.Members {
		if m == nil {
			continue
		} else if seen[m.Name] {
			errors = append(errors, c.errorAt(m, len(m.Name), diagnostic.Redeclared,
				"Enum member '%s' is already declared in '%s'", m.Name, decl.Name))
		}
		//
		seen[m.Name] = true
		_, errs := c.checkExpr(m.Title)
		errors = append(errors, errs...)
	}
	//
	return errors
}

// declare records a variable or parameter in the current scope.  Declaring a
// name twice within the same scope is an error, whilst hiding a built-in
// variable is only a warning.
func (c *checker) declare(node ast.Node, name string, kind symbol.Kind,
	datatype types.PineType) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	if name == "" {
		return nil
	}
	//
	pos := c.positionOf(node)
	//
	if _, ok := c.registry.ResolveVariable(name); ok {
		errors = append(errors, c.warningAt(node, len(name), diagnostic.ShadowedBuiltin,
			"Declaration of '%s' shadows a built-in variable", name))
	}
	//
	if _, previous := c.table.Declare(name, kind, datatype, pos.Line, pos.Column); previous != nil {
		errors = append(errors, c.errorAt(node, len(name), diagnostic.Redeclared,
			"'%s' is already declared in this scope (line %d)", name, previous.Line))
	}
	//
	return errors
}

// declarationPrefix returns the prefix shared by all variables of a
// declaration (e.g. "var float"), or the empty string if there is none.
func declarationPrefix(decl *ast.VarDecl) string {
	var words []string
	//
	if decl.Mode != ast.Plain {
		words = append(words, string(decl.Mode))
	}
	//
	if decl.TypeName != "" {
		words = append(words, decl.TypeName)
	}
	//
	return strings.Join(words, " ")
}

func multiDeclarationMessage(prefix string, decls []*ast.Declarator) string {
	var rewrites []string
	//
	for _, d := range decls {
		if d != nil && d.Name != "" && len(rewrites) < 2 {
			rewrites = append(rewrites, fmt.Sprintf("'%s %s = ...'", prefix, d.Name))
		}
	}
	//
	msg := fmt.Sprintf("Cannot declare multiple variables with a single '%s' prefix", prefix)
	//
	if len(rewrites) == 2 {
		msg = fmt.Sprintf("%s; declare each in its own statement, e.g. %s and %s", msg, rewrites[0], rewrites[1])
	}
	//
	return msg
}

// ============================================================================
// Assignments
// ============================================================================

func (c *checker) checkAssign(stmt *ast.Assign) []diagnostic.ValidationError {
	target, ok := stmt.Target.(*ast.Ident)
	if !ok || target == nil || target.Name == "" {
		// Fields, elements, etc
		_, errors := c.checkExpr(stmt.Target)
		_, errs := c.checkExpr(stmt.Value)
		//
		return append(errors, errs...)
	}
	//
	var errors []diagnostic.ValidationError
	//
	sym, declared := c.table.Resolve(target.Name)
	value, errs := c.checkExpr(stmt.Value)
	//
	switch {
	case !declared && c.isBuiltinVariable(target.Name):
		errors = append(errors, c.errorAt(target, len(target.Name), diagnostic.BuiltinAssignment,
			"Cannot assign to built-in variable '%s'", target.Name))
	case !declared:
		errors = append(errors, c.errorAt(target, len(target.Name), diagnostic.UndefinedVariable,
			"Undefined variable '%s'", target.Name))
	case sym.Kind == symbol.Variable || sym.Kind == symbol.Parameter:
		errors = c.checkAssignable(stmt, target, sym, value)
	}
	//
	return append(errors, errs...)
}

// checkAssignable checks that a value can be assigned into a variable.
// Compound assignments (e.g. "+=") apply their operator first.
func (c *checker) checkAssignable(stmt *ast.Assign, target *ast.Ident, sym *symbol.Symbol,
	value types.PineType) []diagnostic.ValidationError {
	result := value
	//
	if op := strings.TrimSuffix(stmt.Op, "="); op != "" && op != ":" {
		var valid bool
		//
		if result, valid = types.BinaryOperation(op, sym.Type, value); !valid {
			return []diagnostic.ValidationError{c.errorAt(stmt, len(stmt.Op), diagnostic.InvalidOperands,
				"Operator '%s' cannot be applied to '%s' and '%s'", stmt.Op, sym.Type, value)}
		}
	}
	//
	if !types.CanAssign(sym.Type, result) {
		return []diagnostic.ValidationError{c.errorAt(target, len(target.Name), diagnostic.TypeMismatch,
			"Cannot assign a value of type '%s' to '%s' of type '%s'", result, target.Name, sym.Type)}
	}
	//
	return nil
}

func (c *checker) isBuiltinVariable(name string) bool {
	_, ok := c.registry.ResolveVariable(name)
	return ok
}

// ============================================================================
// Control flow
// ============================================================================

// checkCondition checks an expression used as a condition.  Numeric
// conditions are accepted only by older versions of the language.
func (c *checker) checkCondition(expr ast.Expr) (types.PineType, []diagnostic.ValidationError) {
	t, errors := c.checkExpr(expr)
	//
	if c.version < strictConditionVersion {
		t = types.AsCondition(t)
	}
	//
	if !isNil(expr) && !t.IsUnknown() && t.Base != types.Bool {
		errors = append(errors, c.errorAt(expr, spanOf(expr), diagnostic.TypeMismatch,
			"Condition must be of type 'bool', found '%s'", t))
	}
	//
	return t, errors
}

func (c *checker) checkFor(stmt *ast.For) []diagnostic.ValidationError {
	from, errors := c.checkExpr(stmt.From)
	//
	for _, e := range []ast.Expr{stmt.To, stmt.Step} {
		_, errs := c.checkExpr(e)
		errors = append(errors, errs...)
	}
	//
	c.table.PushScope(symbol.Block)
	defer c.table.PopScope()
	//
	if stmt.Var != nil {
		errs := c.declare(stmt.Var, stmt.Var.Name, symbol.Variable, from.WithQualifier(types.Series))
		errors = append(errors, errs...)
	}
	//
	return append(errors, c.checkStatements(stmt.Body)...)
}

func (c *checker) checkForIn(stmt *ast.ForIn) []diagnostic.ValidationError {
	_, errors := c.checkExpr(stmt.Iterable)
	//
	c.table.PushScope(symbol.Block)
	defer c.table.PopScope()
	//
	for _, v := range stmt.Vars {
		if v != nil {
			errs := c.declare(v, v.Name, symbol.Variable, types.UnknownType())
			errors = append(errors, errs...)
		}
	}
	//
	return append(errors, c.checkStatements(stmt.Body)...)
}

func (c *checker) checkSwitch(stmt *ast.Switch) []diagnostic.ValidationError {
	_, errors := c.checkExpr(stmt.Subject)
	//
	for _, sc := range stmt.Cases {
		if sc == nil {
			continue
		}
		//
		var errs []diagnostic.ValidationError
		// Without a subject, each case is a condition
		if isNil(stmt.Subject) {
			_, errs = c.checkCondition(sc.Cond)
		} else {
			_, errs = c.checkExpr(sc.Cond)
		}
		//
		errors = append(errors, errs...)
		errors = append(errors, c.checkBlock(symbol.Block, sc.Body)...)
	}
	//
	return errors
}
