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
package diagnostic

import (
	"go.lsp.dev/protocol"
)

// Source identifies diagnostics originating from this checker when they are
// handed over to a language client.
const Source = "pinecheck"

// ToProtocol converts validation errors into language server diagnostics.  The
// protocol counts both lines and characters from 0, hence the line is shifted
// whilst the column is kept as is.  The order of diagnostics is preserved.
func ToProtocol(errs []ValidationError) []protocol.Diagnostic {
	diags := make([]protocol.Diagnostic, len(errs))
	//
	for i, e := range errs {
		line := uint32(max(e.Line-1, 0))
		start := uint32(max(e.Column, 0))
		end := start + uint32(max(e.Length, 1))
		//
		diags[i] = protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: end},
			},
			Severity: toProtocolSeverity(e.Severity),
			Source:   Source,
			Message:  e.Message,
		}
		//
		if e.Code != "" {
			diags[i].Code = string(e.Code)
		}
	}
	//
	return diags
}

func toProtocolSeverity(s Severity) protocol.DiagnosticSeverity {
	switch s {
	case Error:
		return protocol.DiagnosticSeverityError
	case Warning:
		return protocol.DiagnosticSeverityWarning
	case Information:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}
