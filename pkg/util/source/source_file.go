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
	"os"
	"strings"
)

// Span represents a contiguous slice of the original text.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.
type Span struct {
	// The first character of this span in the original text.
	start int
	// One past the final character of this span in the original text.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original text.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original text.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p *Span) Length() int {
	return p.end - p.start
}

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line has line
// number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// Highlight constructs a marker for the given columns of this line, suitable
// for printing directly beneath it.  Columns count from 0, and the marker is
// clipped to the end of the line (though always covers at least one
// character).
func (p *Line) Highlight(column int, length int) string {
	var builder strings.Builder
	//
	column = max(0, min(column, p.Length()))
	length = max(1, min(length, p.Length()-column))
	// Preserve tabs so the marker lines up with the text above.
	for _, r := range p.text[p.span.start : p.span.start+column] {
		if r == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	builder.WriteString(strings.Repeat("^", length))
	//
	return builder.String()
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Spans of each line in this file.
	lines []Span
}

// ReadFile reads a given source file from disk.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes, so columns count characters
	contents := []rune(string(bytes))
	lines := make([]Span, 0)
	start := 0
	//
	for i, r := range contents {
		if r == '\n' {
			lines = append(lines, Span{start, trimCarriageReturn(contents, start, i)})
			start = i + 1
		}
	}
	//
	lines = append(lines, Span{start, trimCarriageReturn(contents, start, len(contents))})
	//
	return &File{filename, contents, lines}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// NumberOfLines returns the number of physical lines in this file.
func (s *File) NumberOfLines() int {
	return len(s.lines)
}

// Line returns a given line of this file, where lines count from 1.  This
// returns false if no such line exists.
func (s *File) Line(number int) (Line, bool) {
	if number < 1 || number > len(s.lines) {
		return Line{}, false
	}
	//
	return Line{s.contents, s.lines[number-1], number}, true
}

func trimCarriageReturn(text []rune, start int, end int) int {
	if end > start && text[end-1] == '\r' {
		return end - 1
	}
	//
	return end
}
