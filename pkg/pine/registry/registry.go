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
package registry

import (
	"strings"

	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// Membership classifies the outcome of resolving a namespace member.
type Membership uint8

const (
	// UnknownNamespace indicates the namespace itself is not known.
	UnknownNamespace Membership = iota
	// UnknownMember indicates the namespace is known, but the member is not.
	UnknownMember
	// MemberVariable indicates the member is a built-in variable.
	MemberVariable
	// MemberConstant indicates the member is a built-in constant.
	MemberConstant
	// MemberFunction indicates the member is a built-in function.
	MemberFunction
	// MemberNamespace indicates the member is itself a namespace (e.g.
	// "chart.point").
	MemberNamespace
)

// Found checks whether a member was actually resolved.
func (m Membership) Found() bool {
	return m >= MemberVariable
}

type value struct {
	datatype    types.PineType
	description string
}

// Registry provides read-only access to the built-in functions, variables,
// constants and namespaces of a single language version.  A registry is never
// modified after construction, and hence can be shared freely between
// goroutines.
type Registry struct {
	version    string
	functions  map[string]*Function
	variables  map[string]value
	constants  map[string]value
	namespaces map[string]bool
}

func newRegistry(version string) *Registry {
	return &Registry{
		version:    version,
		functions:  make(map[string]*Function),
		variables:  make(map[string]value),
		constants:  make(map[string]value),
		namespaces: make(map[string]bool),
	}
}

// Version returns the language version described by this registry.
func (r *Registry) Version() string {
	return r.version
}

// ResolveFunction looks up a built-in function by its (possibly qualified)
// name.
func (r *Registry) ResolveFunction(name string) (*Function, bool) {
	fn, ok := r.functions[r.Canonical(name)]
	return fn, ok
}

// ResolveVariable looks up the type of a built-in variable, such as "close" or
// "barstate.isconfirmed".
func (r *Registry) ResolveVariable(name string) (types.PineType, bool) {
	v, ok := r.variables[r.Canonical(name)]
	return v.datatype, ok
}

// ResolveConstant looks up the type of a built-in constant, such as
// "color.red".
func (r *Registry) ResolveConstant(name string) (types.PineType, bool) {
	v, ok := r.constants[r.Canonical(name)]
	return v.datatype, ok
}

// Describe returns the description of a built-in function, variable or
// constant, or the empty string if there is none.
func (r *Registry) Describe(name string) string {
	name = r.Canonical(name)
	//
	if fn, ok := r.functions[name]; ok {
		return fn.Description
	} else if v, ok := r.variables[name]; ok {
		return v.description
	}
	//
	return r.constants[name].description
}

// IsNamespace checks whether a given (possibly qualified) name is a known
// namespace.
func (r *Registry) IsNamespace(name string) bool {
	return r.namespaces[r.Canonical(name)]
}

// ResolveNamespaceMember resolves a member of a namespace, distinguishing an
// unknown namespace from an unknown member of a known namespace.  The type
// returned for a function member is its return type.
func (r *Registry) ResolveNamespaceMember(namespace string, member string) (types.PineType, Membership) {
	namespace = r.Canonical(namespace)
	//
	if !r.namespaces[namespace] {
		return types.UnknownType(), UnknownNamespace
	}
	//
	name := r.Canonical(namespace + "." + member)
	//
	if v, ok := r.variables[name]; ok {
		return v.datatype, MemberVariable
	} else if v, ok := r.constants[name]; ok {
		return v.datatype, MemberConstant
	} else if fn, ok := r.functions[name]; ok {
		return fn.Signature.Returns, MemberFunction
	} else if r.namespaces[name] {
		return types.UnknownType(), MemberNamespace
	}
	//
	return types.UnknownType(), UnknownMember
}

// IsVariadic checks whether a function accepts an arbitrary number of
// arguments.
func (r *Registry) IsVariadic(name string) bool {
	name = r.Canonical(name)
	//
	if _, ok := variadicMinimums[name]; ok {
		return true
	} else if fn, ok := r.functions[name]; ok {
		return fn.variadic
	}
	//
	return false
}

// MinArgsForVariadic returns the minimum number of arguments a variadic
// function requires.
func (r *Registry) MinArgsForVariadic(name string) uint {
	if n, ok := variadicMinimums[r.Canonical(name)]; ok {
		return n
	}
	//
	return 1
}

// IsTopLevelOnly checks whether a function can only be called from the global
// scope.
func (r *Registry) IsTopLevelOnly(name string) bool {
	return topLevelOnly[r.Canonical(name)]
}

// IsReliable checks whether the parameter metadata of a function can be
// trusted for arity checking.  Unknown functions are not reliable.
func (r *Registry) IsReliable(name string) bool {
	if fn, ok := r.functions[r.Canonical(name)]; ok {
		return fn.reliable
	}
	//
	return false
}

// Deprecated returns the replacement for a deprecated name (if it is one).
func (r *Registry) Deprecated(name string) (string, bool) {
	replacement, ok := deprecations[name]
	return replacement, ok
}

// Canonical maps an alternate spelling onto its canonical name, or returns the
// name unchanged.  Aliases of a namespace apply to its members.
func (r *Registry) Canonical(name string) string {
	if alias, ok := aliases[name]; ok {
		return alias
	} else if i := strings.IndexByte(name, '.'); i > 0 {
		if alias, ok := aliases[name[:i]]; ok {
			return r.Canonical(alias + name[i:])
		}
	}
	//
	return name
}

// FunctionNames returns the names of all built-in functions in sorted order.
func (r *Registry) FunctionNames() []string {
	return sortedKeys(r.functions)
}

// Namespaces returns the names of all known namespaces in sorted order.
func (r *Registry) Namespaces() []string {
	return sortedKeys(r.namespaces)
}

func (r *Registry) addNamespace(name string) {
	if name = strings.TrimSpace(name); name != "" {
		r.namespaces[name] = true
	}
}

// addNamespacesOf registers every proper prefix of a qualified name as a
// namespace.  For example, "strategy.risk.allow_entry_in" registers "strategy"
// and "strategy.risk".
func (r *Registry) addNamespacesOf(name string) {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			r.addNamespace(name[:i])
		}
	}
}

func (r *Registry) applyOverrides() {
	for name, t := range runtimeVariables {
		if _, ok := r.variables[name]; !ok {
			r.variables[name] = value{datatype: types.MapToPineType(t)}
			r.addNamespacesOf(name)
		}
	}
	//
	for name, t := range literalConstants {
		if _, ok := r.constants[name]; !ok {
			r.constants[name] = value{datatype: types.MapToPineType(t)}
		}
	}
}

func splitName(name string) (string, string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	//
	return "", name
}
