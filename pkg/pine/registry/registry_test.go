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
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-pinecheck/pkg/pine/types"
)

func Test_Catalog_01(t *testing.T) {
	catalog := check_DefaultCatalog(t)
	assert.Equal(t, []string{"5", "6"}, catalog.Versions())
	assert.Equal(t, "6", catalog.Latest())
	assert.Equal(t, "5", catalog.ForVersion("5").Version())
	assert.Equal(t, "6", catalog.ForVersion("v6").Version())
}

func Test_Catalog_02(t *testing.T) {
	catalog := check_DefaultCatalog(t)
	// Unsupported versions fall back to the latest
	assert.Equal(t, "6", catalog.ForVersion("").Version())
	assert.Equal(t, "6", catalog.ForVersion("4").Version())
	assert.Equal(t, "6", catalog.ForVersion("banana").Version())
}

func Test_Catalog_03(t *testing.T) {
	catalog := check_DefaultCatalog(t)
	// Only available from version 6
	_, ok5 := catalog.ForVersion("5").ResolveFunction("input.enum")
	_, ok6 := catalog.ForVersion("6").ResolveFunction("input.enum")
	assert.False(t, ok5)
	assert.True(t, ok6)
}

func Test_Catalog_04(t *testing.T) {
	fsys := fstest.MapFS{
		"v3.json":    {Data: []byte(`{"functions": {"f": {"syntax": "f(x) → int"}}}`)},
		"v10.json":   {Data: []byte(`{}`)},
		"notes.json": {Data: []byte(`not json`)},
		"vbeta.json": {Data: []byte(`not json`)},
		"README.md":  {Data: []byte(`# nothing`)},
	}
	catalog, err := LoadCatalog(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "10"}, catalog.Versions())
	assert.Equal(t, "10", catalog.Latest())
	//
	_, ok := catalog.ForVersion("3").ResolveFunction("f")
	assert.True(t, ok)
}

func Test_Catalog_05(t *testing.T) {
	_, err := LoadCatalog(fstest.MapFS{"v6.json": {Data: []byte(`[1, 2, 3]`)}})
	assert.Error(t, err)
	//
	_, err = LoadCatalog(fstest.MapFS{})
	assert.Error(t, err)
}

func Test_Function_01(t *testing.T) {
	fn := check_Function(t, "ta.sma")
	assert.Equal(t, "ta", fn.Namespace)
	assert.Equal(t, uint(2), fn.Signature.MinArity())
	assert.Equal(t, uint(2), fn.Signature.MaxArity())
	assert.Equal(t, types.New(types.Series, types.Float), fn.Signature.Returns)
	assert.True(t, check_Registry(t).IsReliable("ta.sma"))
}

func Test_Function_02(t *testing.T) {
	fn := check_Function(t, "plot")
	required := fn.Signature.Required()
	//
	require.Len(t, required, 1)
	assert.Equal(t, "series", required[0].Name)
	assert.True(t, fn.HasParameter("title"))
	assert.True(t, fn.HasParameter("color"))
	assert.False(t, fn.HasParameter("transp"))
	assert.True(t, fn.Signature.HasOptionalSuffix())
}

func Test_Function_03(t *testing.T) {
	fn := check_Function(t, "timestamp")
	// Three ways of calling this function
	assert.Len(t, fn.Signatures(), 3)
	assert.True(t, fn.Accepts(1))
	assert.True(t, fn.Accepts(3))
	assert.True(t, fn.Accepts(7))
	assert.False(t, fn.Accepts(0))
	assert.False(t, fn.Accepts(8))
}

func Test_Function_04(t *testing.T) {
	// Parameters recovered from the syntax line
	fn := check_Function(t, "math.pow")
	require.Len(t, fn.Signature.Parameters, 2)
	assert.Equal(t, "base", fn.Signature.Parameters[0].Name)
	assert.Equal(t, "exponent", fn.Signature.Parameters[1].Name)
	assert.Equal(t, uint(2), fn.Signature.MinArity())
	assert.True(t, check_Registry(t).IsReliable("math.pow"))
}

func Test_Function_05(t *testing.T) {
	fn := check_Function(t, "map.new")
	assert.Empty(t, fn.Signature.Parameters)
	assert.Equal(t, "map", fn.Signature.Returns.Object)
}

func Test_Reliable_01(t *testing.T) {
	r := check_Registry(t)
	// Known incomplete metadata
	assert.False(t, r.IsReliable("indicator"))
	assert.False(t, r.IsReliable("request.security"))
	assert.False(t, r.IsReliable("label.new"))
	// Optional parameters do not form a suffix
	assert.False(t, r.IsReliable("ta.pivothigh"))
	// Unknown
	assert.False(t, r.IsReliable("ta.nothing"))
}

func Test_Variadic_01(t *testing.T) {
	r := check_Registry(t)
	//
	assert.True(t, r.IsVariadic("math.max"))
	assert.Equal(t, uint(2), r.MinArgsForVariadic("math.max"))
	assert.True(t, r.IsVariadic("str.format"))
	assert.Equal(t, uint(1), r.MinArgsForVariadic("str.format"))
	assert.True(t, r.IsVariadic("log.info"))
	assert.False(t, r.IsVariadic("plot"))
	assert.False(t, r.IsVariadic("ta.sma"))
}

func Test_TopLevel_01(t *testing.T) {
	r := check_Registry(t)
	//
	for _, name := range []string{"indicator", "strategy", "plot", "plotshape", "hline", "fill", "bgcolor"} {
		assert.True(t, r.IsTopLevelOnly(name), name)
	}
	//
	for _, name := range []string{"ta.sma", "label.new", "alert", "strategy.entry"} {
		assert.False(t, r.IsTopLevelOnly(name), name)
	}
}

func Test_Namespace_01(t *testing.T) {
	r := check_Registry(t)
	//
	check_Member(t, r, "color", "red", MemberConstant)
	check_Member(t, r, "ta", "sma", MemberFunction)
	check_Member(t, r, "ta", "tr", MemberVariable)
	check_Member(t, r, "chart", "point", MemberNamespace)
	check_Member(t, r, "chart.point", "new", MemberFunction)
	check_Member(t, r, "color", "blurple", UnknownMember)
	check_Member(t, r, "colr", "red", UnknownNamespace)
	check_Member(t, r, "close", "x", UnknownNamespace)
}

func Test_Namespace_02(t *testing.T) {
	r := check_Registry(t)
	// Runtime-only members
	check_Member(t, r, "barstate", "isconfirmed", MemberVariable)
	check_Member(t, r, "syminfo", "mintick", MemberVariable)
	check_Member(t, r, "timeframe", "isintraday", MemberVariable)
	check_Member(t, r, "strategy", "opentrades", MemberVariable)
	// Derived from qualified names
	assert.True(t, r.IsNamespace("strategy.direction"))
	assert.True(t, r.IsNamespace("dayofweek"))
	assert.False(t, r.IsNamespace("close"))
}

func Test_Namespace_03(t *testing.T) {
	r := check_Registry(t)
	datatype, membership := r.ResolveNamespaceMember("color", "red")
	//
	assert.True(t, membership.Found())
	assert.Equal(t, types.New(types.Const, types.Color), datatype)
}

func Test_Alias_01(t *testing.T) {
	r := check_Registry(t)
	//
	assert.Equal(t, "color.gray", r.Canonical("color.grey"))
	assert.Equal(t, "color.gray", r.Canonical("colour.grey"))
	assert.Equal(t, "color.red", r.Canonical("colour.red"))
	assert.Equal(t, "close", r.Canonical("close"))
	check_Member(t, r, "color", "grey", MemberConstant)
}

func Test_Deprecated_01(t *testing.T) {
	r := check_Registry(t)
	//
	replacement, ok := r.Deprecated("study")
	assert.True(t, ok)
	assert.Equal(t, "indicator", replacement)
	//
	_, ok = r.Deprecated("indicator")
	assert.False(t, ok)
	//
	_, ok = r.ResolveFunction("study")
	assert.False(t, ok)
}

func Test_Values_01(t *testing.T) {
	r := check_Registry(t)
	//
	close, ok := r.ResolveVariable("close")
	assert.True(t, ok)
	assert.Equal(t, types.New(types.Series, types.Float), close)
	//
	_, ok = r.ResolveVariable("closed")
	assert.False(t, ok)
	//
	_, ok = r.ResolveConstant("true")
	assert.True(t, ok)
	_, ok = r.ResolveConstant("na")
	assert.True(t, ok)
}

func Test_Names_01(t *testing.T) {
	names := check_Registry(t).FunctionNames()
	//
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "plot")
	assert.Contains(t, names, "ta.sma")
}

// ============================================================================
// Tolerance
// ============================================================================

func Test_Load_01(t *testing.T) {
	_, err := Load("6", []byte(`"hello"`))
	assert.Error(t, err)
	_, err = Load("6", []byte(`null`))
	assert.Error(t, err)
	_, err = Load("6", []byte(`{`))
	assert.Error(t, err)
}

func Test_Load_02(t *testing.T) {
	r, err := Load("6", []byte(`{
		"functions": {
			"good":  {"parameters": [{"name": "x", "type": "series float", "required": true}], "returns": "series float"},
			"bad":   42,
			"loose": {"parameters": [{"name": "x", "optional": "yes"}, 5, {"name": 7}], "returns": {"type": "int"}},
			"bare": {"description": "nothing known"}
		},
		"variables": {"v": "oops", "w": {"type": 12}},
		"constants": [1, 2],
		"namespaces": "ta"
	}`))
	require.NoError(t, err)
	//
	_, ok := r.ResolveFunction("bad")
	assert.False(t, ok)
	// Degraded
	fn := check_Resolve(t, r, "loose")
	assert.Len(t, fn.Signature.Parameters, 3)
	assert.True(t, fn.Signature.Parameters[0].Optional)
	assert.True(t, fn.Signature.Returns.IsUnknown())
	// No signature information
	check_Resolve(t, r, "bare")
	assert.False(t, r.IsReliable("bare"))
	assert.True(t, r.IsReliable("good"))
	// Degraded variables
	v, ok := r.ResolveVariable("v")
	assert.True(t, ok)
	assert.True(t, v.IsUnknown())
	// Overrides still applied
	_, ok = r.ResolveVariable("barstate.isconfirmed")
	assert.True(t, ok)
}

func Test_Load_03(t *testing.T) {
	r, err := Load("6", []byte(`{
		"functions": {
			"f": {
				"syntax": "f(a, b) → series int",
				"overloads": [{"syntax": "f(a) → series int"}, "junk"]
			},
			"g": {"syntax": "g(x, y = 1, ...) → void"}
		}
	}`))
	require.NoError(t, err)
	//
	f := check_Resolve(t, r, "f")
	assert.Len(t, f.Overloads, 1)
	assert.True(t, f.Accepts(1))
	assert.True(t, f.Accepts(2))
	assert.Equal(t, types.New(types.Series, types.Int), f.Signature.Returns)
	//
	g := check_Resolve(t, r, "g")
	assert.True(t, r.IsVariadic("g"))
	assert.Equal(t, uint(1), r.MinArgsForVariadic("g"))
	require.Len(t, g.Signature.Parameters, 2)
	assert.Equal(t, "1", g.Signature.Parameters[1].DefaultValue)
	assert.True(t, g.Signature.Parameters[1].Optional)
}

// ============================================================================
// Syntax lines
// ============================================================================

func Test_Syntax_01(t *testing.T) {
	check_Syntax(t, "ta.sma(source, length) → series float", "ta.sma", "series float", "source", "length")
	check_Syntax(t, "math.max(number0, number1, ...) -> series int/float", "math.max", "series int/float",
		"number0", "number1")
	check_Syntax(t, "map.new<keyType, valueType>() → map<keyType, valueType>", "map.new",
		"map<keyType, valueType>")
	check_Syntax(t, "color.new(series color color, series int transp = 0)", "color.new", "", "color", "transp")
	check_Syntax(t, "f(x = color.new(color.red, 50), y)", "f", "", "x", "y")
}

func Test_Syntax_02(t *testing.T) {
	for _, input := range []string{"", "plot", "(x, y)", "f(1x)"} {
		_, ok := parseSyntax(input)
		assert.False(t, ok, input)
	}
}

func Test_Syntax_03(t *testing.T) {
	line, ok := parseSyntax("f(a, b = 2, ...)")
	require.True(t, ok)
	assert.True(t, line.variadic)
	assert.Equal(t, "", line.parameters[0].defaultValue)
	assert.Equal(t, "2", line.parameters[1].defaultValue)
}

func Test_Signature_01(t *testing.T) {
	sig := FunctionSignature{
		Name: "f",
		Parameters: []ParameterInfo{
			{Name: "a"},
			{Name: "b", Optional: true, DefaultValue: "1"},
			{Name: "c", Optional: true},
		},
		Returns: types.New(types.Series, types.Float),
	}
	assert.Equal(t, "f(a, b = 1, c?) → series float", sig.String())
	assert.True(t, sig.HasOptionalSuffix())
	//
	sig.Parameters[2].Optional = false
	assert.False(t, sig.HasOptionalSuffix())
}

// ============================================================================
// Test Helpers
// ============================================================================

func check_DefaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	//
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	//
	return catalog
}

func check_Registry(t *testing.T) *Registry {
	t.Helper()
	return check_DefaultCatalog(t).ForVersion("6")
}

func check_Function(t *testing.T, name string) *Function {
	t.Helper()
	return check_Resolve(t, check_Registry(t), name)
}

func check_Resolve(t *testing.T, r *Registry, name string) *Function {
	t.Helper()
	//
	fn, ok := r.ResolveFunction(name)
	require.True(t, ok, "function %s not found", name)
	//
	return fn
}

func check_Member(t *testing.T, r *Registry, namespace string, member string, expected Membership) {
	t.Helper()
	//
	_, actual := r.ResolveNamespaceMember(namespace, member)
	assert.Equal(t, expected, actual, "%s.%s", namespace, member)
}

func check_Syntax(t *testing.T, input string, name string, returns string, params ...string) {
	t.Helper()
	//
	line, ok := parseSyntax(input)
	require.True(t, ok, input)
	assert.Equal(t, name, line.name)
	assert.Equal(t, returns, line.returns)
	//
	var actual []string
	for _, p := range line.parameters {
		actual = append(actual, p.name)
	}
	//
	assert.Equal(t, params, actual, input)
}
