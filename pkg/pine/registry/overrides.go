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

// Namespace variables which are only known at runtime, and therefore never
// appear in generated data.
var runtimeVariables = map[string]string{
	"barstate.isconfirmed":  "series bool",
	"syminfo.mintick":       "simple float",
	"syminfo.pointvalue":    "simple float",
	"syminfo.basecurrency":  "simple string",
	"syminfo.session":       "simple string",
	"timeframe.isintraday":  "simple bool",
	"timeframe.isticks":     "simple bool",
	"chart.bg_color":        "input color",
	"chart.fg_color":        "input color",
	"session.ismarket":      "series bool",
	"session.ispremarket":   "series bool",
	"session.ispostmarket":  "series bool",
	"strategy.opentrades":   "series int",
	"strategy.wintrades":    "series int",
	"strategy.losstrades":   "series int",
	"strategy.grossprofit":  "series float",
	"strategy.grossloss":    "series float",
	"strategy.max_drawdown": "series float",
}

// Constants of the language proper, which the data omits.
var literalConstants = map[string]string{
	"true":  "const bool",
	"false": "const bool",
	"na":    "const unknown",
}

// Alternate spellings mapped to their canonical names.  An alias for a
// namespace applies to every member of that namespace.
var aliases = map[string]string{
	"color.grey":     "color.gray",
	"color.darkgrey": "color.darkgray",
	"colour":         "color",
}

// Deprecated names mapped to their replacements.
var deprecations = map[string]string{
	"study":      "indicator",
	"security":   "request.security",
	"sma":        "ta.sma",
	"ema":        "ta.ema",
	"rsi":        "ta.rsi",
	"crossover":  "ta.crossover",
	"crossunder": "ta.crossunder",
	"tostring":   "str.tostring",
	"iff":        "the ?: operator",
}

// Minimum argument counts for variadic functions.  Functions flagged variadic
// by the data, but not listed here, require at least one argument.
var variadicMinimums = map[string]uint{
	"math.max":    2,
	"math.min":    2,
	"math.avg":    2,
	"max":         2,
	"min":         2,
	"avg":         2,
	"str.format":  1,
	"array.from":  1,
	"log.info":    1,
	"log.warning": 1,
	"log.error":   1,
}

// Functions which can only be called from the global scope.
var topLevelOnly = map[string]bool{
	"indicator":      true,
	"strategy":       true,
	"library":        true,
	"plot":           true,
	"plotshape":      true,
	"plotchar":       true,
	"plotcandle":     true,
	"plotbar":        true,
	"plotarrow":      true,
	"hline":          true,
	"fill":           true,
	"bgcolor":        true,
	"barcolor":       true,
	"alertcondition": true,
}

// Functions whose parameter metadata is known to be incomplete.
var unreliable = map[string]bool{
	"indicator":        true,
	"strategy":         true,
	"library":          true,
	"input":            true,
	"request.security": true,
	"label.new":        true,
	"line.new":         true,
	"box.new":          true,
	"table.cell":       true,
	"str.format":       true,
}
