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

// ScopeKind identifies the construct which introduced a scope.
type ScopeKind uint8

const (
	// Global is the outermost scope of a document.
	Global ScopeKind = iota
	// FunctionBody is the scope of a user-defined function.
	FunctionBody
	// Block is the scope of a nested block (e.g. an if or a loop).
	Block
)

// Scope is an ordered set of symbols, along with a reference to its enclosing
// scope.  Symbols are kept in declaration order so that anything derived from
// them is deterministic.
type Scope struct {
	kind ScopeKind
	// Maps names to indices in the symbols array.
	ids map[string]uint
	// Symbols in order of declaration.
	symbols []*Symbol
	// Enclosing scope (nil for the global scope).
	parent *Scope
}

func newScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{kind, make(map[string]uint), nil, parent}
}

// Kind returns the kind of construct which introduced this scope.
func (p *Scope) Kind() ScopeKind {
	return p.kind
}

// Parent returns the enclosing scope, or nil if this is the global scope.
func (p *Scope) Parent() *Scope {
	return p.parent
}

// Symbols returns the symbols declared in this scope, in declaration order.
func (p *Scope) Symbols() []*Symbol {
	return p.symbols
}

// Lookup finds a symbol declared directly within this scope.
func (p *Scope) Lookup(name string) (*Symbol, bool) {
	if index, ok := p.ids[name]; ok {
		return p.symbols[index], true
	}
	//
	return nil, false
}

// Declare a symbol in this scope.  If a symbol of the same name was already
// declared in this scope, then it is replaced (such that subsequent lookups see
// the latest declaration) and the previous declaration is returned.
func (p *Scope) declare(symbol *Symbol) *Symbol {
	if index, ok := p.ids[symbol.Name]; ok {
		previous := p.symbols[index]
		p.symbols[index] = symbol
		//
		return previous
	}
	//
	p.ids[symbol.Name] = uint(len(p.symbols))
	p.symbols = append(p.symbols, symbol)
	//
	return nil
}
