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
	"strings"

	"golang.org/x/text/cases"
)

// Recognised qualifier prefixes.  The "literal" prefix is used by some return
// annotations and behaves as const.
var qualifierNames = map[string]Qualifier{
	"const":   Const,
	"literal": Const,
	"input":   Input,
	"simple":  Simple,
	"series":  Series,
}

// Recognised (non-object) base type names.
var baseNames = map[string]BaseType{
	"int":    Int,
	"float":  Float,
	"bool":   Bool,
	"string": String,
	"color":  Color,
	"void":   Void,
}

// Recognised built-in object kinds.  Generic kinds take type parameters.
var objectKinds = map[string]bool{
	"label":       false,
	"line":        false,
	"box":         false,
	"table":       false,
	"linefill":    false,
	"polyline":    false,
	"chart.point": false,
	"array":       true,
	"matrix":      true,
	"map":         true,
}

// MapToPineType maps a textual type descriptor (e.g. "series float" or "input
// int") into a type.  The mapping is case-insensitive.  Any qualifier prefix is
// retained, and a descriptor without one is assumed to be series (i.e. the most
// permissive slot).  Text which cannot be understood is mapped to the unknown
// type, rather than failing.
func MapToPineType(text string) PineType {
	return mapType(text, Series)
}

// MapReturnType maps a textual return annotation into a type.  Return
// annotations are sometimes preceded by an arrow, which is ignored.  Literal
// and const returns are given the const qualifier, whilst an unqualified return
// is assumed to be series.
func MapReturnType(text string) PineType {
	text = strings.TrimSpace(text)
	//
	for _, prefix := range []string{"→", "->", "returns"} {
		text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	}
	//
	return mapType(text, Series)
}

// StripQualifier removes any known qualifier prefix from a type descriptor,
// leaving the (case-folded) text of the base type.
func StripQualifier(text string) string {
	words := strings.Fields(fold(text))
	//
	if len(words) > 0 {
		if _, ok := qualifierNames[words[0]]; ok {
			words = words[1:]
		}
	}
	//
	return strings.Join(words, " ")
}

// BaseOf determines the base type of a descriptor, ignoring its qualifier.
func BaseOf(text string) BaseType {
	return mapType(text, Series).Base
}

func mapType(text string, qualifier Qualifier) PineType {
	words := strings.Fields(fold(text))
	// Extract qualifier (if present)
	if len(words) > 0 {
		if q, ok := qualifierNames[words[0]]; ok {
			qualifier = q
			words = words[1:]
		}
	}
	//
	if len(words) == 0 {
		return UnknownType()
	}
	// Spaces only matter for separating the qualifier.
	return mapBase(strings.Join(words, ""), qualifier)
}

func mapBase(text string, qualifier Qualifier) PineType {
	// Legacy array notation (e.g. "float[]")
	if elem, ok := strings.CutSuffix(text, "[]"); ok {
		return NewObject(qualifier, "array", mapBase(elem, Series))
	}
	// Generic notation (e.g. "array<float>")
	if i := strings.IndexByte(text, '<'); i > 0 && strings.HasSuffix(text, ">") {
		return mapGeneric(text[:i], text[i+1:len(text)-1], qualifier)
	}
	// Unions (e.g. "int/float")
	if strings.ContainsAny(text, "/|") {
		return mapUnion(strings.FieldsFunc(text, isUnionSeparator), qualifier)
	}
	//
	if base, ok := baseNames[text]; ok {
		if base == Void {
			return New(Const, Void)
		}
		//
		return New(qualifier, base)
	} else if _, ok := objectKinds[text]; ok {
		return NewObject(qualifier, text)
	}
	//
	return UnknownType()
}

func mapGeneric(kind string, params string, qualifier Qualifier) PineType {
	if generic, ok := objectKinds[kind]; !ok || !generic {
		return UnknownType()
	}
	//
	var types []PineType
	//
	for _, p := range splitParams(params) {
		types = append(types, mapBase(p, Series))
	}
	//
	return NewObject(qualifier, kind, types...)
}

// Map a union of base types.  A union of numeric types is treated as float,
// since ints are implicitly promoted to floats.  Anything else which is not
// uniform cannot be represented.
func mapUnion(parts []string, qualifier Qualifier) PineType {
	var result PineType
	//
	for i, p := range parts {
		ith := mapBase(p, qualifier)
		//
		switch {
		case i == 0:
			result = ith
		case result.IsNumeric() && ith.IsNumeric():
			if ith.Base == Float {
				result = ith
			}
		case !result.Equals(ith):
			return UnknownType()
		}
	}
	//
	if len(parts) == 0 {
		return UnknownType()
	}
	//
	return result
}

// Split type parameters on commas which are not nested within angle brackets.
func splitParams(text string) []string {
	var (
		params []string
		depth  int
		start  int
	)
	//
	for i, c := range text {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, text[start:i])
				start = i + 1
			}
		}
	}
	//
	return append(params, text[start:])
}

func isUnionSeparator(c rune) bool {
	return c == '/' || c == '|'
}

// Case folding is done with a fresh caser each time, since casers are stateful
// and cannot be shared between goroutines.
func fold(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}
