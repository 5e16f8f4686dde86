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
package check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/util/source"
)

var testSource = source.NewSourceFile("test.pine", []byte("//@version=6\nplot(undefinedVar)\nx = color.blurple\n"))

var testDiagnostics = []diagnostic.ValidationError{
	diagnostic.New(2, 5, 12, diagnostic.Error, diagnostic.UndefinedVariable, "Undefined variable 'undefinedVar'"),
	diagnostic.New(3, 10, 7, diagnostic.Warning, diagnostic.UnknownMember,
		"Unknown member 'blurple' of namespace 'color'"),
}

func Test_Printer_01(t *testing.T) {
	check_Print(t, NewPrinter(nil).AnsiEscapes(false), nil,
		"test.pine:2:6: error: Undefined variable 'undefinedVar' [undefined-variable]\n"+
			"test.pine:3:11: warning: Unknown member 'blurple' of namespace 'color' [unknown-member]\n")
}

func Test_Printer_02(t *testing.T) {
	check_Print(t, NewPrinter(nil).AnsiEscapes(false), testSource,
		"test.pine:2:6: error: Undefined variable 'undefinedVar' [undefined-variable]\n"+
			"plot(undefinedVar)\n"+
			"     ^^^^^^^^^^^^\n"+
			"test.pine:3:11: warning: Unknown member 'blurple' of namespace 'color' [unknown-member]\n"+
			"x = color.blurple\n"+
			"          ^^^^^^^\n")
}

func Test_Printer_03(t *testing.T) {
	check_Print(t, NewPrinter(nil).AnsiEscapes(false).Warnings(false), testSource,
		"test.pine:2:6: error: Undefined variable 'undefinedVar' [undefined-variable]\n"+
			"plot(undefinedVar)\n"+
			"     ^^^^^^^^^^^^\n")
}

func Test_Printer_04(t *testing.T) {
	var buf bytes.Buffer
	//
	printer := NewPrinter(&buf)
	require.NoError(t, printer.Print("test.pine", nil, testDiagnostics[:1]))
	assert.Contains(t, buf.String(), "\033[1;31merror\033[0m")
}

func Test_Summary_01(t *testing.T) {
	var buf bytes.Buffer
	//
	require.NoError(t, NewPrinter(&buf).Summarise(testDiagnostics))
	require.NoError(t, NewPrinter(&buf).Warnings(false).Summarise(testDiagnostics))
	assert.Equal(t, "1 error(s), 1 warning(s)\n1 error(s)\n", buf.String())
}

// ============================================================================
// Test Helpers
// ============================================================================

func check_Print(t *testing.T, printer *Printer, src *source.File, expected string) {
	t.Helper()
	//
	var buf bytes.Buffer
	//
	printer.out = &buf
	//
	require.NoError(t, printer.Print("test.pine", src, testDiagnostics))
	assert.Equal(t, expected, buf.String())
}
