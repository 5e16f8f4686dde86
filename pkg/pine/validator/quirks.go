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

import "fmt"

// Parameters which are known under a different name, or are no longer
// supported, keyed by function and parameter.
var renamedParameters = map[string]string{
	"plot.transp":         transparencyHint("plot"),
	"plotshape.transp":    transparencyHint("plotshape"),
	"plotchar.transp":     transparencyHint("plotchar"),
	"bgcolor.transp":      transparencyHint("bgcolor"),
	"fill.transp":         transparencyHint("fill"),
	"hline.style":         "'hline' has no parameter 'style'; use 'linestyle' instead",
	"strategy.entry.long": "'long' was replaced by 'direction' in 'strategy.entry'; use strategy.long or strategy.short",
}

func transparencyHint(function string) string {
	return fmt.Sprintf("'%s' has no parameter 'transp'; use color.new() to set transparency", function)
}

// renamedParameter returns the hint for a parameter known under a different
// name (if it is one).
func renamedParameter(function string, param string) (string, bool) {
	hint, ok := renamedParameters[function+"."+param]
	return hint, ok
}

// companionRule describes a modifier which has no effect unless one of its
// companions is also given.
type companionRule struct {
	function   string
	modifier   string
	companions []string
}

var companionRules = []companionRule{
	{"plotshape", "textcolor", []string{"text"}},
	{"plotchar", "textcolor", []string{"text"}},
	{"strategy.exit", "trail_offset", []string{"trail_price", "trail_points"}},
}
