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
	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// Table is a stack of lexical scopes.  A table always has a global scope at
// the bottom, onto which nested scopes are pushed when entering a block, and
// from which they are popped when leaving it.  A table is owned by a single
// validation run and is discarded afterwards.
type Table struct {
	current *Scope
	depth   uint
}

// NewTable constructs a table containing only an empty global scope.
func NewTable() *Table {
	return &Table{newScope(Global, nil), 0}
}

// PushScope enters a new innermost scope.
func (p *Table) PushScope(kind ScopeKind) {
	p.current = newScope(kind, p.current)
	p.depth++
}

// PopScope leaves the innermost scope, discarding its symbols.  Scopes are
// strictly nested, hence popping the global scope is an internal error.
func (p *Table) PopScope() {
	if p.current.parent == nil {
		panic("cannot pop global scope")
	}
	//
	p.current = p.current.parent
	p.depth--
}

// Depth returns the number of scopes pushed on top of the global scope.
func (p *Table) Depth() uint {
	return p.depth
}

// Current returns the innermost scope.
func (p *Table) Current() *Scope {
	return p.current
}

// InFunction checks whether the innermost scope is (nested within) the body of
// a user-defined function.
func (p *Table) InFunction() bool {
	for s := p.current; s != nil; s = s.parent {
		if s.kind == FunctionBody {
			return true
		}
	}
	//
	return false
}

// Declare records a symbol in the innermost scope, returning any previous
// declaration of the same name in that scope.  Redeclaration is not prevented
// here; whether it is acceptable is for the caller to decide.
func (p *Table) Declare(name string, kind Kind, datatype types.PineType, line int, column int) (*Symbol, *Symbol) {
	symbol := &Symbol{Name: name, Kind: kind, Type: datatype, Line: line, Column: column}
	//
	return symbol, p.current.declare(symbol)
}

// DeclareSymbol records a fully constructed symbol in the innermost scope,
// returning any previous declaration of the same name in that scope.
func (p *Table) DeclareSymbol(symbol *Symbol) *Symbol {
	return p.current.declare(symbol)
}

// Resolve finds the innermost declaration of a given name, searching outwards
// from the innermost scope.
func (p *Table) Resolve(name string) (*Symbol, bool) {
	for s := p.current; s != nil; s = s.parent {
		if symbol, ok := s.Lookup(name); ok {
			return symbol, true
		}
	}
	//
	return nil, false
}

// LookupLocal finds a declaration of a given name in the innermost scope only.
func (p *Table) LookupLocal(name string) (*Symbol, bool) {
	return p.current.Lookup(name)
}

// IsDeclared checks whether a given name is declared in any enclosing scope.
func (p *Table) IsDeclared(name string) bool {
	_, ok := p.Resolve(name)
	return ok
}
