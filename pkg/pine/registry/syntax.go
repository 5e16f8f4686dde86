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

	"github.com/dlclark/regexp2"
)

// Matches a syntax line, such as "ta.sma(source, length) → series float" or
// "map.new<keyType, valueType>() → map<keyType, valueType>".
var syntaxPattern = regexp2.MustCompile(
	`^\s*(?<name>[A-Za-z_][\w.]*)\s*(?:<[^>]*>)?\s*\((?<params>.*)\)\s*(?:(?:→|->)\s*(?<returns>.+?))?\s*$`,
	regexp2.None)

// Matches a single parameter of a syntax line, such as "length", "series int
// length" or "transp = 0".
var parameterPattern = regexp2.MustCompile(
	`^\s*(?:[\w<>/\[\]. ]+\s+)?(?<name>[A-Za-z_]\w*)\s*(?:=\s*(?<default>.+?))?\s*$`,
	regexp2.None)

// syntaxLine captures what can be recovered from a function's syntax line.
type syntaxLine struct {
	name       string
	parameters []syntaxParameter
	returns    string
	// Indicates the parameter list ends with an ellipsis.
	variadic bool
}

type syntaxParameter struct {
	name         string
	defaultValue string
}

// parseSyntax recovers the parameter names (and return type) from a syntax
// line.  Parameters are required unless written with a default value.  This
// returns false if the line cannot be understood.
func parseSyntax(text string) (syntaxLine, bool) {
	var line syntaxLine
	//
	match, err := syntaxPattern.FindStringMatch(text)
	if err != nil || match == nil {
		return line, false
	}
	//
	line.name = match.GroupByName("name").String()
	line.returns = strings.TrimSpace(match.GroupByName("returns").String())
	//
	for _, item := range splitTopLevel(match.GroupByName("params").String()) {
		item = strings.TrimSpace(item)
		//
		switch {
		case item == "":
			continue
		case item == "..." || strings.HasSuffix(item, "..."):
			line.variadic = true
			continue
		}
		//
		param, err := parameterPattern.FindStringMatch(item)
		if err != nil || param == nil {
			return line, false
		}
		//
		line.parameters = append(line.parameters, syntaxParameter{
			param.GroupByName("name").String(),
			strings.TrimSpace(param.GroupByName("default").String()),
		})
	}
	//
	return line, true
}

// splitTopLevel splits a comma-separated list, ignoring commas nested within
// brackets or quotes.
func splitTopLevel(text string) []string {
	var (
		items []string
		depth int
		quote rune
		start int
	)
	//
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[' || r == '<':
			depth++
		case r == ')' || r == ']' || r == '>':
			depth--
		case r == ',' && depth == 0:
			items = append(items, text[start:i])
			start = i + 1
		}
	}
	//
	if strings.TrimSpace(text[start:]) != "" || len(items) > 0 {
		items = append(items, text[start:])
	}
	//
	return items
}
