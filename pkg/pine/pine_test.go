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
package pine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-pinecheck/pkg/pine/ast"
	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
)

// Determines the (relative) location of the test directory.
const TestDir = "../../testdata/pine"

func Test_Fixture_UndefinedVariable(t *testing.T) {
	check_Fixture(t, "undefined_variable")
}

func Test_Fixture_NamespaceConstant(t *testing.T) {
	check_Fixture(t, "namespace_constant")
}

func Test_Fixture_MissingParameters(t *testing.T) {
	check_Fixture(t, "missing_parameters")
}

func Test_Fixture_Redeclared(t *testing.T) {
	check_Fixture(t, "redeclared")
}

func Test_Fixture_UnknownMember(t *testing.T) {
	check_Fixture(t, "unknown_member")
}

func Test_Fixture_SoundScript(t *testing.T) {
	check_Fixture(t, "sound_script")
}

func Test_Fixture_Strategy(t *testing.T) {
	check_Fixture(t, "strategy")
}

func Test_Fixture_DottedNames(t *testing.T) {
	check_Fixture(t, "dotted_names")
}

func Test_Fixture_Version5(t *testing.T) {
	check_Fixture(t, "version5")
}

func Test_Check_01(t *testing.T) {
	// The configured version takes precedence over that of the program.
	program := &ast.Program{Version: "5", Body: []ast.Statement{
		&ast.EnumDecl{Pos: ast.Pos{Line: 1}, Name: "Mode"},
	}}
	//
	errs, err := Check(program, Config{Version: "6"})
	require.NoError(t, err)
	assert.Empty(t, errs)
	//
	errs, err = Check(program, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostic.VersionFeature, errs[0].Code)
}

func Test_Check_02(t *testing.T) {
	errs, err := Check(nil, DefaultConfig())
	assert.NoError(t, err)
	assert.Empty(t, errs)
	//
	_, err = CheckBytes([]byte(`"not a program"`), DefaultConfig())
	assert.Error(t, err)
}

// ============================================================================
// Test Helpers
// ============================================================================

type expectation struct {
	Line     int                 `json:"line"`
	Column   int                 `json:"column"`
	Code     diagnostic.Code     `json:"code"`
	Severity diagnostic.Severity `json:"severity"`
}

// check_Fixture validates a given fixture, and checks the diagnostics produced
// match those expected by the fixture (in order).
func check_Fixture(t *testing.T, test string) {
	t.Helper()
	//
	filename := filepath.Join(TestDir, test+".json")
	//
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	//
	var fixture struct {
		Expect []expectation `json:"expect"`
	}
	//
	require.NoError(t, json.Unmarshal(bytes, &fixture))
	//
	errs, err := CheckBytes(bytes, DefaultConfig())
	require.NoError(t, err)
	//
	actual := make([]expectation, len(errs))
	//
	for i, e := range errs {
		actual[i] = expectation{e.Line, e.Column, e.Code, e.Severity}
	}
	//
	if fixture.Expect == nil {
		fixture.Expect = make([]expectation, 0)
	}
	//
	assert.Equal(t, fixture.Expect, actual, "%s\n%s", filename, describe(errs))
}

func describe(errs []diagnostic.ValidationError) string {
	var builder strings.Builder
	//
	for _, e := range errs {
		builder.WriteString(e.Error())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
