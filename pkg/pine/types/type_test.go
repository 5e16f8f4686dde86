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
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ===================================================================
// Mapping
// ===================================================================

func Test_Mapping_01(t *testing.T) {
	check_Mapping(t, "series float", New(Series, Float))
	check_Mapping(t, "input int", New(Input, Int))
	check_Mapping(t, "const string", New(Const, String))
	check_Mapping(t, "simple bool", New(Simple, Bool))
	check_Mapping(t, "literal string", New(Const, String))
}

func Test_Mapping_02(t *testing.T) {
	// Case insensitive, unqualified defaults to series
	check_Mapping(t, "Series FLOAT", New(Series, Float))
	check_Mapping(t, "color", New(Series, Color))
	check_Mapping(t, "  int ", New(Series, Int))
}

func Test_Mapping_03(t *testing.T) {
	check_Mapping(t, "series int/float", New(Series, Float))
	check_Mapping(t, "simple float|int", New(Simple, Float))
	check_Mapping(t, "int/string", UnknownType())
}

func Test_Mapping_04(t *testing.T) {
	check_Mapping(t, "array<float>", NewObject(Series, "array", New(Series, Float)))
	check_Mapping(t, "float[]", NewObject(Series, "array", New(Series, Float)))
	check_Mapping(t, "map<string, int>", NewObject(Series, "map", New(Series, String), New(Series, Int)))
	check_Mapping(t, "series label", NewObject(Series, "label"))
	check_Mapping(t, "chart.point", NewObject(Series, "chart.point"))
}

func Test_Mapping_05(t *testing.T) {
	check_Mapping(t, "", UnknownType())
	check_Mapping(t, "series", UnknownType())
	check_Mapping(t, "whatever", UnknownType())
	check_Mapping(t, "set<int>", UnknownType())
	check_Mapping(t, "void", New(Const, Void))
}

func Test_ReturnType_01(t *testing.T) {
	assert.Equal(t, New(Series, Float), MapReturnType("series float"))
	assert.Equal(t, New(Series, Float), MapReturnType("→ series float"))
	assert.Equal(t, New(Const, Int), MapReturnType("const int"))
	assert.Equal(t, New(Const, String), MapReturnType("literal string"))
	assert.Equal(t, New(Series, Bool), MapReturnType("bool"))
}

func Test_StripQualifier_01(t *testing.T) {
	assert.Equal(t, "float", StripQualifier("series float"))
	assert.Equal(t, "int", StripQualifier("INPUT int"))
	assert.Equal(t, "color", StripQualifier("color"))
	assert.Equal(t, Int, BaseOf("simple int"))
	assert.Equal(t, Unknown, BaseOf("nonsense"))
}

// ===================================================================
// Compatibility
// ===================================================================

func Test_Assign_01(t *testing.T) {
	// Less variable values can always be used in more variable slots.
	assert.True(t, CanAssign(New(Series, Int), New(Const, Int)))
	assert.True(t, CanAssign(New(Simple, Int), New(Input, Int)))
	assert.True(t, CanAssign(New(Const, Int), New(Const, Int)))
	// But not vice versa
	assert.False(t, CanAssign(New(Const, Int), New(Series, Int)))
	assert.False(t, CanAssign(New(Simple, Float), New(Series, Float)))
}

func Test_Assign_02(t *testing.T) {
	assert.True(t, CanAssign(New(Series, Float), New(Series, Int)))
	assert.False(t, CanAssign(New(Series, Int), New(Series, Float)))
	assert.False(t, CanAssign(New(Series, String), New(Const, Int)))
	assert.True(t, CanAssign(New(Series, String), UnknownType()))
	assert.True(t, CanAssign(New(Series, Unknown), New(Series, Color)))
}

func Test_Assign_03(t *testing.T) {
	floats := NewObject(Series, "array", New(Series, Float))
	ints := NewObject(Series, "array", New(Series, Int))
	unknown := NewObject(Series, "array", UnknownType())
	//
	assert.True(t, CanAssign(floats, floats))
	assert.False(t, CanAssign(floats, ints))
	assert.True(t, CanAssign(floats, unknown))
	assert.False(t, CanAssign(floats, NewObject(Series, "label")))
}

func Test_Binary_01(t *testing.T) {
	check_Binary(t, "+", New(Const, Int), New(Series, Int), New(Series, Int))
	check_Binary(t, "*", New(Const, Int), New(Simple, Float), New(Simple, Float))
	check_Binary(t, "+", New(Const, String), New(Input, String), New(Input, String))
	check_Binary(t, "-", New(Const, Int), UnknownType(), New(Const, Unknown))
}

func Test_Binary_02(t *testing.T) {
	check_Binary(t, ">", New(Series, Float), New(Const, Int), New(Series, Bool))
	check_Binary(t, "<", New(Const, String), New(Const, String), New(Const, Bool))
	check_Binary(t, "==", New(Series, Color), New(Const, Color), New(Series, Bool))
	check_Binary(t, "and", New(Series, Bool), New(Const, Bool), New(Series, Bool))
}

func Test_Binary_03(t *testing.T) {
	check_InvalidBinary(t, "-", New(Const, String), New(Const, Int))
	check_InvalidBinary(t, "+", New(Const, String), New(Const, Int))
	check_InvalidBinary(t, "<", New(Const, String), New(Const, Int))
	check_InvalidBinary(t, "and", New(Series, Float), New(Const, Bool))
	check_InvalidBinary(t, "==", New(Series, Color), New(Const, String))
}

func Test_Unary_01(t *testing.T) {
	r, ok := UnaryOperation("not", New(Series, Bool))
	assert.True(t, ok)
	assert.Equal(t, New(Series, Bool), r)
	//
	_, ok = UnaryOperation("-", New(Const, String))
	assert.False(t, ok)
	//
	assert.Equal(t, New(Simple, Bool), AsCondition(New(Simple, Int)))
}

func Test_Join_01(t *testing.T) {
	assert.Equal(t, Series, Join(Const, Series))
	assert.Equal(t, Input, Join(Input, Const))
	assert.Equal(t, Const, Meet(Const, Series))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Mapping(t *testing.T, text string, expected PineType) {
	actual := MapToPineType(text)
	//
	if !actual.Equals(expected) {
		t.Errorf("mapping \"%s\" gave %s, expected %s", text, actual, expected)
	}
}

func check_Binary(t *testing.T, op string, lhs, rhs, expected PineType) {
	actual, ok := BinaryOperation(op, lhs, rhs)
	//
	if !ok {
		t.Errorf("%s %s %s rejected", lhs, op, rhs)
	} else if !actual.Equals(expected) {
		t.Errorf("%s %s %s gave %s, expected %s", lhs, op, rhs, actual, expected)
	}
}

func check_InvalidBinary(t *testing.T, op string, lhs, rhs PineType) {
	if _, ok := BinaryOperation(op, lhs, rhs); ok {
		t.Errorf("%s %s %s accepted", lhs, op, rhs)
	}
}
