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
package ast

import "fmt"

// Pos identifies a position within the original source text.  Lines count from
// 1, whilst columns count from 0.  A zero line indicates the position is not
// known (e.g. because the parser did not provide it).
type Pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsKnown checks whether this position was actually provided.
func (p Pos) IsKnown() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by every element of the syntax tree.
type Node interface {
	// Position returns the position at which this node starts.
	Position() Pos
}

// Statement represents a single statement in a script, or within a block.
type Statement interface {
	Node
	statement()
}

// Expr represents an expression.
type Expr interface {
	Node
	expr()
}

// Program is the root of the syntax tree for a single document, consisting of
// its top-level statements in source order.
type Program struct {
	// Version declared by the "//@version=" annotation (if any).
	Version string
	// Top-level statements.
	Body []Statement
}

// Position returns the position of the start of the program.
func (p *Program) Position() Pos {
	return Pos{1, 0}
}
