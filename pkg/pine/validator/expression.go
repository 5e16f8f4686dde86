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
	"strings"

	"github.com/consensys/go-pinecheck/pkg/pine/ast"
	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/pine/registry"
	"github.com/consensys/go-pinecheck/pkg/pine/symbol"
	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// checkExpr checks an expression and determines its type.  A missing
// expression has the unknown type.
func (c *checker) checkExpr(expr ast.Expr) (types.PineType, []diagnostic.ValidationError) {
	if isNil(expr) {
		return types.UnknownType(), nil
	}
	//
	defer c.leave(c.enter(expr))
	//
	switch e := expr.(type) {
	case *ast.Literal:
		return literalType(e.Kind), nil
	case *ast.Ident:
		return c.checkIdent(e)
	case *ast.Member:
		return c.checkMember(e)
	case *ast.Call:
		return c.checkCall(e)
	case *ast.Binary:
		return c.checkBinary(e)
	case *ast.Unary:
		return c.checkUnary(e)
	case *ast.Ternary:
		return c.checkTernary(e)
	case *ast.Index:
		object, errors := c.checkExpr(e.Object)
		_, errs := c.checkExpr(e.Index)
		// History references preserve the type of a series
		if object.Base == types.Object {
			object = types.UnknownType()
		}
		//
		return object.WithQualifier(types.Series), append(errors, errs...)
	case *ast.ArrayLit:
		var errors []diagnostic.ValidationError
		//
		for _, element := range e.Elements {
			_, errs := c.checkExpr(element)
			errors = append(errors, errs...)
		}
		//
		return types.UnknownType(), errors
	default:
		return types.UnknownType(), nil
	}
}

func literalType(kind ast.LiteralKind) types.PineType {
	switch kind {
	case ast.IntLit:
		return types.New(types.Const, types.Int)
	case ast.FloatLit:
		return types.New(types.Const, types.Float)
	case ast.BoolLit:
		return types.New(types.Const, types.Bool)
	case ast.StringLit:
		return types.New(types.Const, types.String)
	case ast.ColorLit:
		return types.New(types.Const, types.Color)
	default:
		return types.UnknownType()
	}
}

// ============================================================================
// Names
// ============================================================================

func (c *checker) checkIdent(e *ast.Ident) (types.PineType, []diagnostic.ValidationError) {
	if e.Name == "" {
		return types.UnknownType(), nil
	} else if strings.Contains(e.Name, ".") {
		// Qualified name given as a single identifier
		return c.checkExpr(ast.Unfold(e))
	} else if t, ok := c.resolveName(e.Name); ok {
		return t, nil
	}
	//
	return types.UnknownType(), []diagnostic.ValidationError{
		c.errorAt(e, len(e.Name), diagnostic.UndefinedVariable, "Undefined variable '%s'", e.Name),
	}
}

// resolveName determines the type of an unqualified name, which may be
// declared or built-in.
func (c *checker) resolveName(name string) (types.PineType, bool) {
	if sym, ok := c.table.Resolve(name); ok {
		return sym.Type, true
	} else if t, ok := c.registry.ResolveVariable(name); ok {
		return t, true
	} else if t, ok := c.registry.ResolveConstant(name); ok {
		return t, true
	} else if c.registry.IsNamespace(name) {
		return types.UnknownType(), true
	} else if _, ok := c.registry.ResolveFunction(name); ok {
		return types.UnknownType(), true
	}
	//
	return types.UnknownType(), false
}

func (c *checker) checkMember(e *ast.Member) (types.PineType, []diagnostic.ValidationError) {
	if e.Property == "" {
		return c.checkIncomplete(e)
	} else if name, ok := ast.QualifiedName(e); ok {
		return c.checkQualified(e, name)
	}
	// Field of some other value (e.g. "f().x"), which cannot be checked.
	_, errors := c.checkExpr(e.Object)
	//
	return types.UnknownType(), errors
}

// checkIncomplete reports a dangling member access, such as "plot.".
func (c *checker) checkIncomplete(e *ast.Member) (types.PineType, []diagnostic.ValidationError) {
	name, ok := ast.QualifiedName(e.Object)
	if !ok {
		_, errors := c.checkExpr(e.Object)
		//
		return types.UnknownType(), append(errors, c.errorAt(e, 1, diagnostic.IncompleteReference,
			"Incomplete member access"))
	}
	//
	return types.UnknownType(), []diagnostic.ValidationError{
		c.errorAt(e, len(name)+1, diagnostic.IncompleteReference, "Incomplete reference '%s.'", name),
	}
}

// checkQualified checks a chain of member accesses, such as "color.red" or
// "strategy.direction.long".
func (c *checker) checkQualified(e *ast.Member, name string) (types.PineType, []diagnostic.ValidationError) {
	root := ast.Root(e)
	// Declared names take precedence
	if sym, ok := c.table.Resolve(root.Name); ok {
		return c.checkDeclaredMember(e, sym, name)
	} else if t, ok := c.registry.ResolveVariable(name); ok {
		return t, nil
	} else if t, ok := c.registry.ResolveConstant(name); ok {
		return t, nil
	}
	//
	parts := strings.Split(name, ".")
	namespace := parts[0]
	//
	if !c.registry.IsNamespace(namespace) {
		if c.isBuiltinVariable(namespace) {
			// Field of a built-in value
			return types.UnknownType(), nil
		}
		//
		return types.UnknownType(), []diagnostic.ValidationError{
			c.errorAt(root, len(root.Name), diagnostic.UndefinedNamespace,
				"Undefined namespace or variable '%s'", root.Name),
		}
	}
	//
	for i := 1; i < len(parts); i++ {
		t, membership := c.registry.ResolveNamespaceMember(namespace, parts[i])
		//
		switch {
		case membership == registry.MemberNamespace:
			namespace = namespace + "." + parts[i]
		case membership.Found() && i == len(parts)-1:
			return t, nil
		case membership.Found():
			// Field of a built-in value, which cannot be checked.
			return types.UnknownType(), nil
		default:
			node := propertyNode(e, i, len(parts))
			//
			return types.UnknownType(), []diagnostic.ValidationError{
				c.warningAt(node, len(parts[i]), diagnostic.UnknownMember,
					"Unknown member '%s' of namespace '%s'", parts[i], namespace),
			}
		}
	}
	// A namespace on its own
	return types.UnknownType(), nil
}

// checkDeclaredMember checks a member access whose root is declared.  Only
// the members of enumerations can be checked.
func (c *checker) checkDeclaredMember(e *ast.Member, sym *symbol.Symbol,
	name string) (types.PineType, []diagnostic.ValidationError) {
	parts := strings.Split(name, ".")
	//
	if sym.Kind == symbol.Enum && len(parts) == 2 && !sym.HasMember(parts[1]) {
		return types.UnknownType(), []diagnostic.ValidationError{
			c.warningAt(propertyNode(e, 1, 2), len(parts[1]), diagnostic.UnknownMember,
				"Unknown member '%s' of enum '%s'", parts[1], sym.Name),
		}
	}
	//
	return types.UnknownType(), nil
}

// propertyNode identifies the node for the ith part of a chain of count member
// accesses, where the last part is given by e.
func propertyNode(e *ast.Member, i int, count int) ast.Node {
	for n := count - 1; n > i; n-- {
		if object, ok := e.Object.(*ast.Member); ok && object != nil {
			e = object
		}
	}
	//
	if e.PropertyPos.IsKnown() {
		return e.PropertyPos
	}
	//
	return e
}

// spanOf estimates the length of the source text highlighted for an
// expression, which is its name or operator where known.
func spanOf(expr ast.Expr) int {
	switch e := ast.Unfold(expr).(type) {
	case *ast.Ident, *ast.Member:
		if name, ok := ast.QualifiedName(e); ok {
			return len(name)
		}
	case *ast.Literal:
		if e != nil && e.Value != "" {
			return len(e.Value)
		}
	case *ast.Call:
		if e != nil {
			return spanOf(e.Callee)
		}
	case *ast.Binary:
		if e != nil && e.Op != "" {
			return len(e.Op)
		}
	case *ast.Unary:
		if e != nil && e.Op != "" {
			return len(e.Op)
		}
	}
	//
	return 1
}

// ============================================================================
// Operators
// ============================================================================

func (c *checker) checkBinary(e *ast.Binary) (types.PineType, []diagnostic.ValidationError) {
	lhs, errors := c.checkExpr(e.Lhs)
	rhs, errs := c.checkExpr(e.Rhs)
	errors = append(errors, errs...)
	//
	if class, ok := types.ClassOf(e.Op); ok && class == types.Logical && c.version < strictConditionVersion {
		lhs, rhs = types.AsCondition(lhs), types.AsCondition(rhs)
	}
	//
	t, ok := types.BinaryOperation(e.Op, lhs, rhs)
	if !ok {
		errors = append(errors, c.errorAt(e, len(e.Op), diagnostic.InvalidOperands,
			"Operator '%s' cannot be applied to '%s' and '%s'", e.Op, lhs, rhs))
	}
	//
	return t, errors
}

func (c *checker) checkUnary(e *ast.Unary) (types.PineType, []diagnostic.ValidationError) {
	operand, errors := c.checkExpr(e.Operand)
	//
	if e.Op == "not" && c.version < strictConditionVersion {
		operand = types.AsCondition(operand)
	}
	//
	t, ok := types.UnaryOperation(e.Op, operand)
	if !ok {
		errors = append(errors, c.errorAt(e, len(e.Op), diagnostic.InvalidOperands,
			"Operator '%s' cannot be applied to '%s'", e.Op, operand))
	}
	//
	return t, errors
}

func (c *checker) checkTernary(e *ast.Ternary) (types.PineType, []diagnostic.ValidationError) {
	cond, errors := c.checkCondition(e.Cond)
	lhs, errs1 := c.checkExpr(e.Then)
	rhs, errs2 := c.checkExpr(e.Else)
	errors = append(append(errors, errs1...), errs2...)
	//
	var t types.PineType
	//
	switch {
	case lhs.IsUnknown():
		t = rhs
	case rhs.IsUnknown():
		t = lhs
	case lhs.IsNumeric() && rhs.IsNumeric() && rhs.Base == types.Float:
		t = rhs
	default:
		t = lhs
	}
	//
	qualifier := types.Join(cond.Qualifier, types.Join(lhs.Qualifier, rhs.Qualifier))
	//
	return t.WithQualifier(qualifier), errors
}
