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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SourceFile_01(t *testing.T) {
	file := NewSourceFile("test.pine", []byte("//@version=6\nplot(close)\r\n\tx = 1"))
	//
	assert.Equal(t, "test.pine", file.Filename())
	assert.Equal(t, 3, file.NumberOfLines())
	check_Line(t, file, 1, "//@version=6")
	check_Line(t, file, 2, "plot(close)")
	check_Line(t, file, 3, "\tx = 1")
	//
	_, ok := file.Line(0)
	assert.False(t, ok)
	_, ok = file.Line(4)
	assert.False(t, ok)
}

func Test_SourceFile_02(t *testing.T) {
	file := NewSourceFile("empty.pine", nil)
	//
	assert.Equal(t, 1, file.NumberOfLines())
	check_Line(t, file, 1, "")
}

func Test_Highlight_01(t *testing.T) {
	file := NewSourceFile("test.pine", []byte("plot(undefinedVar)\n\tx = foo"))
	//
	line := check_Line(t, file, 1, "plot(undefinedVar)")
	assert.Equal(t, "     ^^^^^^^^^^^^", line.Highlight(5, 12))
	// Clipped to the line
	assert.Equal(t, "     ^^^^^^^^^^^^^", line.Highlight(5, 100))
	assert.Equal(t, "^", line.Highlight(-1, 0))
	// Tabs are preserved
	line = check_Line(t, file, 2, "\tx = foo")
	assert.Equal(t, "\t    ^^^", line.Highlight(5, 3))
}

// ============================================================================
// Test Helpers
// ============================================================================

func check_Line(t *testing.T, file *File, number int, expected string) Line {
	t.Helper()
	//
	line, ok := file.Line(number)
	require.True(t, ok)
	assert.Equal(t, number, line.Number())
	assert.Equal(t, expected, line.String())
	assert.Equal(t, len([]rune(expected)), line.Length())
	//
	return line
}
