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
	"fmt"
	"io"

	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/util/source"
	"github.com/consensys/go-pinecheck/pkg/util/termio"
)

// Printer encapsulates various configuration options useful for printing out
// diagnostics in human-readable form.
type Printer struct {
	out io.Writer
	// Enable ANSI
	ansiEscapes bool
	// Include warnings (and other non-errors)
	warnings bool
}

// NewPrinter constructs a default printer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out, true, true}
}

// AnsiEscapes can be used to enable or disable the use of ANSI escape sequences
// (e.g. for showing colour in a terminal, etc)
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// Warnings can be used to include or exclude diagnostics which are not errors.
func (p *Printer) Warnings(enable bool) *Printer {
	p.warnings = enable
	return p
}

// Print the diagnostics of a given file.  When the source text is available,
// each diagnostic is followed by the offending line with its span highlighted.
func (p *Printer) Print(filename string, src *source.File, errs []diagnostic.ValidationError) error {
	for _, e := range errs {
		if !p.warnings && !e.IsError() {
			continue
		}
		//
		if err := p.printDiagnostic(filename, src, e); err != nil {
			return err
		}
	}
	//
	return nil
}

// Summarise prints the number of errors and warnings reported.
func (p *Printer) Summarise(errs []diagnostic.ValidationError) error {
	errors, warnings := diagnostic.Split(errs)
	//
	msg := fmt.Sprintf("%d error(s)", len(errors))
	//
	if p.warnings {
		msg = fmt.Sprintf("%s, %d warning(s)", msg, len(warnings))
	}
	//
	_, err := fmt.Fprintln(p.out, msg)
	//
	return err
}

func (p *Printer) printDiagnostic(filename string, src *source.File, e diagnostic.ValidationError) error {
	severity := e.Severity.String()
	//
	if p.ansiEscapes {
		severity = severityEscape(e.Severity).Wrap(severity)
	}
	// Print error + line number
	msg := fmt.Sprintf("%s:%d:%d: %s: %s", filename, e.Line, e.Column+1, severity, e.Message)
	//
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	//
	if _, err := fmt.Fprintln(p.out, msg); err != nil || src == nil {
		return err
	}
	// Print line (if it exists)
	line, ok := src.Line(e.Line)
	if !ok {
		return nil
	}
	//
	highlight := line.Highlight(e.Column, e.Length)
	//
	if p.ansiEscapes {
		highlight = severityEscape(e.Severity).Wrap(highlight)
	}
	//
	_, err := fmt.Fprintf(p.out, "%s\n%s\n", line.String(), highlight)
	//
	return err
}

func severityEscape(severity diagnostic.Severity) termio.AnsiEscape {
	switch severity {
	case diagnostic.Error:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	case diagnostic.Warning:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW)
	default:
		return termio.NewAnsiEscape().FgColour(termio.TERM_CYAN)
	}
}
