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
	"github.com/consensys/go-pinecheck/pkg/pine/symbol"
	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// collect records every top-level declaration in the global scope, such that
// references to them can be resolved regardless of where they occur.  Nothing
// is reported during collection.
func (c *checker) collect(body []ast.Statement) {
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			c.collectVarDecl(s)
		case *ast.TupleDecl:
			if s != nil {
				for _, name := range s.Names {
					if name != nil && name.Name != "" {
						c.table.DeclareSymbol(&symbol.Symbol{
							Name: name.Name, Kind: symbol.Variable, Type: types.UnknownType(),
							Line: name.Line, Column: name.Column,
						})
					}
				}
			}
		default:
			c.define(stmt)
		}
	}
}

func (c *checker) collectVarDecl(decl *ast.VarDecl) {
	if decl == nil {
		return
	}
	// The types of initialisers are only determined later on.
	datatype := types.UnknownType()
	//
	if decl.TypeName != "" {
		datatype = types.MapToPineType(decl.TypeName)
	}
	//
	for _, d := range decl.Decls {
		if d != nil && d.Name != "" {
			c.table.DeclareSymbol(&symbol.Symbol{
				Name: d.Name, Kind: symbol.Variable, Type: datatype, Line: d.Line, Column: d.Column,
			})
		}
	}
}

// define records a function, type, enum or import in the current scope.
// Repeated declarations of a function are treated as overloads.  Other
// statements are ignored.
func (c *checker) define(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FuncDecl:
		if s == nil || s.Name == "" {
			return
		}
		//
		arity, required := functionArity(s)
		// Overload of an earlier declaration?
		if sym, ok := c.table.LookupLocal(s.Name); ok && sym.Kind == symbol.Function {
			sym.Arities = append(sym.Arities, arity)
			return
		}
		//
		c.table.DeclareSymbol(&symbol.Symbol{
			Name: s.Name, Kind: symbol.Function, Type: types.UnknownType(), Line: s.Line, Column: s.Column,
			Members: required, Arities: []symbol.Arity{arity},
		})
	case *ast.TypeDecl:
		if s == nil || s.Name == "" {
			return
		}
		//
		var fields []string
		//
		for _, f := range s.Fields {
			if f != nil {
				fields = append(fields, f.Name)
			}
		}
		//
		c.table.DeclareSymbol(&symbol.Symbol{
			Name: s.Name, Kind: symbol.Type, Type: types.NewObject(types.Series, s.Name), Line: s.Line,
			Column: s.Column, Members: fields,
		})
	case *ast.EnumDecl:
		if s == nil || s.Name == "" {
			return
		}
		//
		var members []string
		//
		for _, m := range s.Members {
			if m != nil {
				members = append(members, m.Name)
			}
		}
		//
		c.table.DeclareSymbol(&symbol.Symbol{
			Name: s.Name, Kind: symbol.Enum, Type: types.UnknownType(), Line: s.Line, Column: s.Column,
			Members: members,
		})
	case *ast.Import:
		if s == nil {
			return
		}
		//
		if alias := importAlias(s); alias != "" {
			c.table.DeclareSymbol(&symbol.Symbol{
				Name: alias, Kind: symbol.Library, Type: types.UnknownType(), Line: s.Line, Column: s.Column,
			})
		}
	}
}

// functionArity determines the number of arguments a user-defined function
// accepts, along with the names of its required parameters.
func functionArity(decl *ast.FuncDecl) (symbol.Arity, []string) {
	var (
		arity    symbol.Arity
		required []string
	)
	//
	for _, p := range decl.Params {
		if p == nil {
			continue
		}
		//
		arity.Max++
		//
		if p.Default == nil {
			arity.Min++
			required = append(required, p.Name)
		}
	}
	//
	return arity, required
}

// importAlias determines the name under which an imported library is known.
// Without an explicit alias, this is the library name (e.g. "lib" for
// "user/lib/1").
func importAlias(imp *ast.Import) string {
	if imp.Alias != "" {
		return imp.Alias
	}
	//
	parts := strings.Split(imp.Path, "/")
	//
	if len(parts) >= 2 {
		return parts[1]
	}
	//
	return ""
}
