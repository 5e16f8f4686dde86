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

func (c *checker) checkCall(e *ast.Call) (types.PineType, []diagnostic.ValidationError) {
	var (
		t      types.PineType
		errors []diagnostic.ValidationError
	)
	//
	callee := ast.Unfold(e.Callee)
	//
	if name, ok := ast.QualifiedName(callee); ok {
		t, errors = c.checkCallee(e, callee, name)
	} else {
		// Calls of arbitrary expressions (e.g. "a.get(0).f()")
		_, errors = c.checkExpr(callee)
		t = types.UnknownType()
	}
	//
	for _, arg := range e.Args {
		if arg != nil {
			errs := c.checkArgument(arg)
			errors = append(errors, errs...)
		}
	}
	//
	return t, errors
}

func (c *checker) checkArgument(arg *ast.Argument) []diagnostic.ValidationError {
	defer c.leave(c.enter(arg))
	//
	_, errors := c.checkExpr(arg.Value)
	//
	return errors
}

// checkCallee resolves the function being called, and checks the arguments
// given against its parameters.  The callee is either an identifier or a chain
// of member accesses.
func (c *checker) checkCallee(e *ast.Call, callee ast.Expr, name string) (types.PineType,
	[]diagnostic.ValidationError) {
	root := ast.Root(callee)
	//
	if sym, ok := c.table.Resolve(root.Name); ok {
		return types.UnknownType(), c.checkUserCall(e, sym, name)
	} else if fn, ok := c.registry.ResolveFunction(name); ok {
		return c.checkBuiltinCall(e, fn)
	} else if replacement, ok := c.registry.Deprecated(name); ok {
		return types.UnknownType(), []diagnostic.ValidationError{
			c.errorAt(callee, len(name), diagnostic.UndefinedFunction,
				"Undefined function '%s'; use '%s' instead", name, replacement),
		}
	}
	//
	namespace, member := ast.SplitQualified(name)
	access, ok := callee.(*ast.Member)
	//
	switch {
	case namespace == "" || !ok || access == nil:
		return types.UnknownType(), []diagnostic.ValidationError{
			c.errorAt(callee, len(name), diagnostic.UndefinedFunction, "Undefined function '%s'", name),
		}
	case c.registry.IsNamespace(namespace):
		return types.UnknownType(), []diagnostic.ValidationError{
			c.warningAt(propertyNode(access, 1, 2), len(member), diagnostic.UnknownMember,
				"Unknown member '%s' of namespace '%s'", member, namespace),
		}
	}
	// Either a method of some value, or an unknown namespace.
	if ident, ok := access.Object.(*ast.Ident); ok && ident != nil {
		if _, ok := c.resolveName(ident.Name); !ok {
			return types.UnknownType(), []diagnostic.ValidationError{
				c.errorAt(ident, len(ident.Name), diagnostic.UndefinedNamespace,
					"Undefined namespace or variable '%s'", ident.Name),
			}
		}
		//
		return types.UnknownType(), nil
	}
	//
	_, errors := c.checkExpr(access.Object)
	//
	return types.UnknownType(), errors
}

// checkUserCall checks a call of a user-defined function, a method or a
// function of an imported library.  Only plain calls of functions without
// overloads can be checked.
func (c *checker) checkUserCall(e *ast.Call, sym *symbol.Symbol, name string) []diagnostic.ValidationError {
	if sym.Kind != symbol.Function || name != sym.Name || len(sym.Arities) != 1 {
		return nil
	}
	//
	positional, named := countArguments(e.Args)
	arity := sym.Arities[0]
	total := positional + uint(len(named))
	//
	if total > arity.Max {
		return []diagnostic.ValidationError{c.errorAt(e.Callee, len(name), diagnostic.TooManyArguments,
			"Too many arguments for '%s': expected at most %d, got %d", name, arity.Max, total)}
	}
	// Required parameters always come first
	var missing []string
	//
	for i, param := range sym.Members {
		if uint(i) >= positional && !named[param] {
			missing = append(missing, param)
		}
	}
	//
	if len(missing) > 0 {
		return []diagnostic.ValidationError{c.errorAt(e.Callee, len(name), diagnostic.MissingParameters,
			"Missing required parameter(s) for '%s': %s", name, strings.Join(missing, ", "))}
	}
	//
	return nil
}

// checkBuiltinCall checks a call of a built-in function, returning the type of
// its result.
func (c *checker) checkBuiltinCall(e *ast.Call, fn *registry.Function) (types.PineType, []diagnostic.ValidationError) {
	var (
		errors  []diagnostic.ValidationError
		name    = fn.Name()
		checked = c.registry.IsReliable(name) && !c.registry.IsVariadic(name)
	)
	//
	if c.registry.IsTopLevelOnly(name) && c.table.InFunction() {
		errors = append(errors, c.errorAt(e.Callee, len(name), diagnostic.TopLevelOnly,
			"'%s' cannot be called from within a function", name))
	} else if c.registry.IsTopLevelOnly(name) && c.isLocal() {
		errors = append(errors, c.errorAt(e.Callee, len(name), diagnostic.TopLevelOnly,
			"'%s' cannot be called from a local scope", name))
	}
	//
	errors = append(errors, c.checkNamedArguments(e, fn, checked)...)
	//
	positional, named := countArguments(e.Args)
	sig, fits := selectSignature(fn, positional, named)
	//
	if checked && !fits {
		errors = append(errors, c.arityError(e, fn, positional, named))
	}
	//
	return sig.Returns, errors
}

// checkNamedArguments checks named arguments for duplicates, renamed
// parameters, unknown parameters and modifiers lacking their companions.
func (c *checker) checkNamedArguments(e *ast.Call, fn *registry.Function,
	checked bool) []diagnostic.ValidationError {
	var (
		errors []diagnostic.ValidationError
		seen   = make(map[string]bool)
		name   = fn.Name()
	)
	//
	for _, arg := range e.Args {
		if arg == nil || arg.Name == "" {
			continue
		}
		//
		if seen[arg.Name] {
			errors = append(errors, c.errorAt(arg, len(arg.Name), diagnostic.DuplicateArgument,
				"Duplicate argument '%s' in call to '%s'", arg.Name, name))
			//
			continue
		}
		//
		seen[arg.Name] = true
		//
		if hint, ok := renamedParameter(name, arg.Name); ok {
			errors = append(errors, c.errorAt(arg, len(arg.Name), diagnostic.ParameterRenamed, "%s", hint))
		} else if checked && !fn.HasParameter(arg.Name) {
			errors = append(errors, c.warningAt(arg, len(arg.Name), diagnostic.UnknownParameter,
				"Unknown parameter '%s' for '%s'", arg.Name, name))
		}
	}
	//
	return append(errors, c.checkCompanions(e, fn)...)
}

// checkCompanions checks for modifiers which have no effect unless some
// companion parameter is also given.
func (c *checker) checkCompanions(e *ast.Call, fn *registry.Function) []diagnostic.ValidationError {
	var errors []diagnostic.ValidationError
	//
	for _, rule := range companionRules {
		if rule.function != fn.Name() {
			continue
		}
		//
		arg := namedArgument(e.Args, rule.modifier)
		//
		if arg != nil && !hasAnyArgument(e.Args, &fn.Signature, rule.companions) {
			errors = append(errors, c.warningAt(arg, len(arg.Name), diagnostic.MissingCompanion,
				"'%s' has no effect without '%s'", rule.modifier, strings.Join(rule.companions, "' or '")))
		}
	}
	//
	return errors
}

// arityError constructs the error for a call which fits none of the signatures
// of a function.  Calls with more arguments than any signature accepts have
// too many arguments, otherwise the first signature accepting that many is
// missing some.
func (c *checker) arityError(e *ast.Call, fn *registry.Function, positional uint,
	named map[string]bool) diagnostic.ValidationError {
	var (
		name  = fn.Name()
		total = positional + uint(len(named))
		most  uint
	)
	//
	for _, sig := range fn.Signatures() {
		if total <= sig.MaxArity() {
			missing := missingParameters(&sig, positional, named)
			//
			return c.errorAt(e.Callee, len(name), diagnostic.MissingParameters,
				"Missing required parameter(s) for '%s': %s", name, strings.Join(missing, ", "))
		}
		//
		most = max(most, sig.MaxArity())
	}
	//
	return c.errorAt(e.Callee, len(name), diagnostic.TooManyArguments,
		"Too many arguments for '%s': expected at most %d, got %d", name, most, total)
}

// selectSignature finds the first signature of a function which accepts the
// given arguments, or returns the primary signature if there is none.
func selectSignature(fn *registry.Function, positional uint,
	named map[string]bool) (registry.FunctionSignature, bool) {
	total := positional + uint(len(named))
	//
	for _, sig := range fn.Signatures() {
		if total <= sig.MaxArity() && len(missingParameters(&sig, positional, named)) == 0 {
			return sig, true
		}
	}
	//
	return fn.Signature, false
}

// missingParameters determines which required parameters of a signature are
// given neither positionally nor by name.
func missingParameters(sig *registry.FunctionSignature, positional uint, named map[string]bool) []string {
	var missing []string
	//
	for i, param := range sig.Parameters {
		if !param.Optional && uint(i) >= positional && !named[param.Name] {
			missing = append(missing, param.Name)
		}
	}
	//
	return missing
}

// countArguments determines the number of positional arguments, and the set
// of distinct named arguments, of a call.
func countArguments(args []*ast.Argument) (uint, map[string]bool) {
	var (
		positional uint
		named      = make(map[string]bool)
	)
	//
	for _, arg := range args {
		switch {
		case arg == nil:
			continue
		case arg.Name == "":
			positional++
		default:
			named[arg.Name] = true
		}
	}
	//
	return positional, named
}

func namedArgument(args []*ast.Argument, name string) *ast.Argument {
	for _, arg := range args {
		if arg != nil && arg.Name == name {
			return arg
		}
	}
	//
	return nil
}

// hasAnyArgument checks whether any of the given parameters is supplied,
// either by name or by position.
func hasAnyArgument(args []*ast.Argument, sig *registry.FunctionSignature, params []string) bool {
	positional, named := countArguments(args)
	//
	for _, param := range params {
		if named[param] {
			return true
		}
		//
		for i, p := range sig.Parameters {
			if p.Name == param && uint(i) < positional {
				return true
			}
		}
	}
	//
	return false
}
