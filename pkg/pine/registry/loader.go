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
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

// ============================================================================
// Data file schema
// ============================================================================

type functionEntry struct {
	Name        text              `json:"name"`
	Syntax      text              `json:"syntax"`
	Description text              `json:"description"`
	Parameters  []json.RawMessage `json:"parameters"`
	Returns     text              `json:"returns"`
	Namespace   text              `json:"namespace"`
	Overloads   []json.RawMessage `json:"overloads"`
	Variadic    flag              `json:"variadic"`
}

type overloadEntry struct {
	Syntax     text              `json:"syntax"`
	Parameters []json.RawMessage `json:"parameters"`
	Returns    text              `json:"returns"`
}

type parameterEntry struct {
	Name        text  `json:"name"`
	Type        text  `json:"type"`
	Description text  `json:"description"`
	Optional    *flag `json:"optional"`
	Required    *flag `json:"required"`
	Default     text  `json:"default"`
}

type valueEntry struct {
	Name        text `json:"name"`
	Type        text `json:"type"`
	Description text `json:"description"`
}

// text accepts a string, and treats any other JSON value as empty.
type text string

func (p *text) UnmarshalJSON(data []byte) error {
	var s string
	//
	if json.Unmarshal(data, &s) == nil {
		*p = text(s)
	} else {
		*p = ""
	}
	//
	return nil
}

// flag accepts a boolean, or a string spelling of one, and treats any other
// JSON value as false.
type flag bool

func (p *flag) UnmarshalJSON(data []byte) error {
	var (
		b bool
		s string
	)
	//
	switch {
	case json.Unmarshal(data, &b) == nil:
		*p = flag(b)
	case json.Unmarshal(data, &s) == nil:
		s = strings.ToLower(strings.TrimSpace(s))
		*p = flag(s == "true" || s == "yes")
	default:
		*p = false
	}
	//
	return nil
}

// ============================================================================
// Loading
// ============================================================================

// Load constructs the registry for a given language version from a data
// document, merged with the built-in override tables.  Malformed entries are
// skipped or degraded to unknown types.  An error is returned only when the
// document is not a JSON object.
func Load(version string, data []byte) (*Registry, error) {
	var root map[string]json.RawMessage
	//
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(err, "invalid built-in data for version %s", version)
	} else if root == nil {
		return nil, errors.Errorf("invalid built-in data for version %s: not an object", version)
	}
	// Every section is decoded entry by entry, so that a single malformed
	// entry never prevents the remainder from loading.
	var (
		functions  map[string]json.RawMessage
		variables  map[string]json.RawMessage
		constants  map[string]json.RawMessage
		namespaces []string
	)
	//
	section(version, root, "functions", &functions)
	section(version, root, "variables", &variables)
	section(version, root, "constants", &constants)
	section(version, root, "namespaces", &namespaces)
	//
	r := newRegistry(version)
	// Functions
	for _, name := range sortedKeys(functions) {
		if fn, ok := loadFunction(name, functions[name]); ok {
			r.functions[name] = fn
			r.addNamespacesOf(name)
		}
	}
	// Variables and constants
	loadValues("variable", variables, r.variables)
	loadValues("constant", constants, r.constants)
	//
	for name := range r.variables {
		r.addNamespacesOf(name)
	}
	//
	for name := range r.constants {
		r.addNamespacesOf(name)
	}
	//
	for _, ns := range namespaces {
		r.addNamespace(ns)
	}
	// Overrides
	r.applyOverrides()
	//
	log.Debugf("loaded %d functions, %d variables and %d constants (version %s)",
		len(r.functions), len(r.variables), len(r.constants), version)
	//
	return r, nil
}

// section decodes one top-level section of a data document, leaving it empty
// when missing or malformed.
func section(version string, root map[string]json.RawMessage, key string, into any) {
	if raw, ok := root[key]; ok {
		if err := json.Unmarshal(raw, into); err != nil {
			log.Debugf("ignoring malformed %s section (version %s): %s", key, version, err)
		}
	}
}

func loadFunction(name string, data json.RawMessage) (*Function, bool) {
	var entry functionEntry
	//
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Debugf("skipping malformed function %s: %s", name, err)
		return nil, false
	}
	//
	fn := &Function{
		Namespace:   string(entry.Namespace),
		Description: string(entry.Description),
		Syntax:      string(entry.Syntax),
		variadic:    bool(entry.Variadic),
		reliable:    !unreliable[name],
	}
	//
	if fn.Namespace == "" {
		fn.Namespace, _ = splitName(name)
	}
	//
	sig, ok := loadSignature(name, entry.Parameters, string(entry.Syntax), string(entry.Returns))
	if !ok {
		// Nothing is known about how this function is called.
		fn.reliable = false
	} else if sig.variadic {
		fn.variadic = true
	}
	//
	fn.Signature = sig.FunctionSignature
	//
	for i, raw := range entry.Overloads {
		var overload overloadEntry
		//
		if err := json.Unmarshal(raw, &overload); err != nil {
			log.Debugf("skipping malformed overload %d of %s: %s", i, name, err)
			continue
		}
		//
		if osig, ok := loadSignature(name, overload.Parameters, string(overload.Syntax), string(overload.Returns)); ok {
			fn.Overloads = append(fn.Overloads, osig.FunctionSignature)
		}
	}
	// Optional parameters must form a suffix for arity checking to make
	// sense.
	for _, s := range fn.Signatures() {
		if !s.HasOptionalSuffix() {
			fn.reliable = false
		}
	}
	//
	return fn, true
}

type loadedSignature struct {
	FunctionSignature
	variadic bool
}

// loadSignature constructs a signature from a parameter list, falling back to
// the syntax line when no parameters are given.  This returns false when
// neither yields anything.
func loadSignature(name string, params []json.RawMessage, syntax string, returns string) (loadedSignature, bool) {
	sig := loadedSignature{FunctionSignature: FunctionSignature{Name: name}}
	line, parsed := parseSyntax(syntax)
	//
	if returns == "" && parsed {
		returns = line.returns
	}
	//
	sig.Returns = types.MapReturnType(returns)
	sig.variadic = parsed && line.variadic
	//
	if len(params) > 0 {
		for i, raw := range params {
			sig.Parameters = append(sig.Parameters, loadParameter(name, i, raw))
		}
		//
		return sig, true
	} else if !parsed {
		return sig, false
	}
	//
	for _, p := range line.parameters {
		sig.Parameters = append(sig.Parameters, ParameterInfo{
			Name:         p.name,
			Type:         types.UnknownType(),
			Optional:     p.defaultValue != "",
			DefaultValue: p.defaultValue,
		})
	}
	//
	return sig, true
}

func loadParameter(fn string, index int, data json.RawMessage) ParameterInfo {
	var entry parameterEntry
	//
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Debugf("degrading malformed parameter %d of %s: %s", index, fn, err)
		return ParameterInfo{Type: types.UnknownType(), Optional: true}
	}
	//
	optional := entry.Default != ""
	//
	switch {
	case entry.Optional != nil:
		optional = bool(*entry.Optional)
	case entry.Required != nil:
		optional = !bool(*entry.Required)
	}
	//
	return ParameterInfo{
		Name:         string(entry.Name),
		Type:         types.MapToPineType(string(entry.Type)),
		TypeText:     string(entry.Type),
		Optional:     optional,
		DefaultValue: string(entry.Default),
		Description:  string(entry.Description),
	}
}

func loadValues(kind string, entries map[string]json.RawMessage, into map[string]value) {
	for _, name := range sortedKeys(entries) {
		var entry valueEntry
		//
		if err := json.Unmarshal(entries[name], &entry); err != nil {
			log.Debugf("degrading malformed %s %s: %s", kind, name, err)
		}
		//
		into[name] = value{types.MapToPineType(string(entry.Type)), string(entry.Description)}
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	//
	for k := range m {
		keys = append(keys, k)
	}
	//
	sort.Strings(keys)
	//
	return keys
}
