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
package symbol

import (
	"testing"

	"github.com/consensys/go-pinecheck/pkg/pine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Table_01(t *testing.T) {
	table := NewTable()
	_, prev := table.Declare("x", Variable, types.New(types.Const, types.Int), 1, 0)
	//
	assert.Nil(t, prev)
	assert.True(t, table.IsDeclared("x"))
	assert.False(t, table.IsDeclared("y"))
	assert.Equal(t, uint(0), table.Depth())
}

func Test_Table_02(t *testing.T) {
	table := NewTable()
	table.Declare("x", Variable, types.New(types.Const, types.Int), 1, 0)
	// Shadow in nested scope
	table.PushScope(Block)
	table.Declare("x", Variable, types.New(types.Series, types.Float), 2, 4)
	//
	sym, ok := table.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, types.Float, sym.Type.Base)
	assert.Equal(t, uint(1), table.Depth())
	// Leaving scope reveals outer declaration
	table.PopScope()
	//
	sym, ok = table.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, types.Int, sym.Type.Base)
}

func Test_Table_03(t *testing.T) {
	table := NewTable()
	table.PushScope(FunctionBody)
	table.Declare("a", Parameter, types.UnknownType(), 1, 0)
	table.PushScope(Block)
	// Outer names visible, but not local
	assert.True(t, table.IsDeclared("a"))
	_, local := table.LookupLocal("a")
	assert.False(t, local)
	assert.True(t, table.InFunction())
	//
	table.PopScope()
	table.PopScope()
	assert.False(t, table.IsDeclared("a"))
	assert.False(t, table.InFunction())
}

func Test_Table_04(t *testing.T) {
	table := NewTable()
	first, _ := table.Declare("x", Variable, types.UnknownType(), 1, 0)
	second, prev := table.Declare("x", Variable, types.UnknownType(), 2, 0)
	// Redeclaration reports previous, and latest wins.
	assert.Same(t, first, prev)
	//
	sym, _ := table.Resolve("x")
	assert.Same(t, second, sym)
	assert.Len(t, table.Current().Symbols(), 1)
}

func Test_Table_05(t *testing.T) {
	table := NewTable()
	//
	assert.Panics(t, func() { table.PopScope() })
}

func Test_Symbol_01(t *testing.T) {
	fn := &Symbol{Name: "f", Kind: Function, Arities: []Arity{{1, 2}, {3, 3}}}
	//
	assert.True(t, fn.IsCallable())
	assert.False(t, fn.AcceptsArity(0))
	assert.True(t, fn.AcceptsArity(1))
	assert.True(t, fn.AcceptsArity(2))
	assert.True(t, fn.AcceptsArity(3))
	assert.False(t, fn.AcceptsArity(4))
	//
	enum := &Symbol{Name: "Mode", Kind: Enum, Members: []string{"fast", "slow"}}
	assert.True(t, enum.HasMember("slow"))
	assert.False(t, enum.HasMember("medium"))
}
