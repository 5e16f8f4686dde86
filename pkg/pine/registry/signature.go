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
	"fmt"
	"strings"

	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// ParameterInfo describes a single parameter of a built-in function.
type ParameterInfo struct {
	// Name of the parameter, as used for named arguments.
	Name string
	// Canonical type of the parameter.
	Type types.PineType
	// Type text as given in the data file (e.g. "series int/float").
	TypeText string
	// Indicates whether this parameter can be omitted.
	Optional bool
	// Default value (if known).
	DefaultValue string
	// Human-readable description.
	Description string
}

// FunctionSignature describes one way of calling a built-in function.
type FunctionSignature struct {
	// Fully qualified name of the function (e.g. "ta.sma").
	Name string
	// Parameters in declaration order.
	Parameters []ParameterInfo
	// Return type of the function.
	Returns types.PineType
}

// Required returns the parameters which must be supplied.
func (p *FunctionSignature) Required() []ParameterInfo {
	var params []ParameterInfo
	//
	for _, param := range p.Parameters {
		if !param.Optional {
			params = append(params, param)
		}
	}
	//
	return params
}

// Optional returns the parameters which may be omitted.
func (p *FunctionSignature) Optional() []ParameterInfo {
	var params []ParameterInfo
	//
	for _, param := range p.Parameters {
		if param.Optional {
			params = append(params, param)
		}
	}
	//
	return params
}

// MinArity returns the number of required parameters.
func (p *FunctionSignature) MinArity() uint {
	return uint(len(p.Required()))
}

// MaxArity returns the total number of parameters.
func (p *FunctionSignature) MaxArity() uint {
	return uint(len(p.Parameters))
}

// Parameter looks up a parameter by name.
func (p *FunctionSignature) Parameter(name string) (ParameterInfo, bool) {
	for _, param := range p.Parameters {
		if param.Name == name {
			return param, true
		}
	}
	//
	return ParameterInfo{}, false
}

// HasOptionalSuffix checks that every optional parameter follows every
// required parameter.  Positional arguments can only be matched against a
// signature for which this holds.
func (p *FunctionSignature) HasOptionalSuffix() bool {
	optional := false
	//
	for _, param := range p.Parameters {
		if param.Optional {
			optional = true
		} else if optional {
			return false
		}
	}
	//
	return true
}

func (p *FunctionSignature) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name)
	builder.WriteString("(")
	//
	for i, param := range p.Parameters {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(param.Name)
		//
		if param.Optional && param.DefaultValue != "" {
			builder.WriteString(fmt.Sprintf(" = %s", param.DefaultValue))
		} else if param.Optional {
			builder.WriteString("?")
		}
	}
	//
	builder.WriteString(") → ")
	builder.WriteString(p.Returns.String())
	//
	return builder.String()
}

// Function describes a built-in function, which may be overloaded.
type Function struct {
	// Primary signature.
	Signature FunctionSignature
	// Alternative signatures (if any).
	Overloads []FunctionSignature
	// Enclosing namespace, or empty for a global function.
	Namespace string
	// Human-readable description.
	Description string
	// Syntax line as given in the data file.
	Syntax string
	// Indicates the function accepts an arbitrary number of trailing
	// arguments.
	variadic bool
	// Indicates the parameter metadata can be trusted for arity checking.
	reliable bool
}

// Name returns the fully qualified name of this function.
func (p *Function) Name() string {
	return p.Signature.Name
}

// Signatures returns the primary signature followed by any overloads.
func (p *Function) Signatures() []FunctionSignature {
	signatures := make([]FunctionSignature, 0, 1+len(p.Overloads))
	signatures = append(signatures, p.Signature)
	//
	return append(signatures, p.Overloads...)
}

// Accepts checks whether some signature of this function accepts the given
// number of arguments.
func (p *Function) Accepts(n uint) bool {
	for _, sig := range p.Signatures() {
		if n >= sig.MinArity() && n <= sig.MaxArity() {
			return true
		}
	}
	//
	return false
}

// HasParameter checks whether some signature of this function declares a
// parameter of the given name.
func (p *Function) HasParameter(name string) bool {
	for _, sig := range p.Signatures() {
		if _, ok := sig.Parameter(name); ok {
			return true
		}
	}
	//
	return false
}
