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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/consensys/go-pinecheck/pkg/cmd/check"
	"github.com/consensys/go-pinecheck/pkg/pine"
	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/pine/registry"
	"github.com/consensys/go-pinecheck/pkg/util/source"
	"github.com/consensys/go-pinecheck/pkg/util/termio"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] ast_file...",
	Short: "Check one or more syntax trees for semantic errors.",
	Long: `Check one or more syntax trees for semantic errors.
	Syntax trees are given in the JSON form produced by the parser.  Diagnostics
	are printed as text when writing to a terminal, and as JSON otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		cfg.version = GetString(cmd, "version")
		cfg.format = GetString(cmd, "format")
		cfg.warnings = GetFlag(cmd, "warnings")
		cfg.ansiEscapes = termio.IsTerminal(os.Stdout) && !GetFlag(cmd, "no-color")
		//
		if cfg.format == "auto" && termio.IsTerminal(os.Stdout) {
			cfg.format = "text"
		} else if cfg.format == "auto" {
			cfg.format = "json"
		}
		// Read source text (if given)
		if filename := GetString(cmd, "source"); filename != "" {
			if len(args) != 1 {
				fmt.Println("--source requires exactly one syntax tree")
				os.Exit(2)
			}
			//
			src, err := source.ReadFile(filename)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			cfg.source = src
		}
		//
		ok, err := checkFiles(os.Stdout, readCatalog(cmd), cfg, args...)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if !ok {
			os.Exit(1)
		}
	},
}

// check config encapsulates the parameters used when checking files.
type checkConfig struct {
	// Language version to check against.  When empty, the version declared by
	// each program is used.
	version string
	// Output format (text, json or lsp).
	format string
	// Specifies whether or not to report warnings.
	warnings bool
	// Enable ANSI escapes in text output.
	ansiEscapes bool
	// Source text from which the (only) syntax tree was parsed.
	source *source.File
}

// fileResult associates the diagnostics of a file with its name.
type fileResult struct {
	File string `json:"file"`
	diagnostic.Result
}

// checkFiles checks the given syntax trees, and writes diagnostics in the
// configured format.  This returns true if no errors were reported.
func checkFiles(out io.Writer, catalog *registry.Catalog, cfg checkConfig,
	filenames ...string) (bool, error) {
	var (
		ok      = true
		results = make([][]diagnostic.ValidationError, len(filenames))
		config  = pine.Config{Version: cfg.version, Catalog: catalog}
	)
	//
	for i, filename := range filenames {
		program, err := readProgram(filename)
		if err != nil {
			return false, err
		}
		//
		if results[i], err = pine.Check(program, config); err != nil {
			return false, err
		}
		//
		log.Debugf("%s: %d diagnostic(s)", filename, len(results[i]))
		ok = ok && !diagnostic.HasErrors(results[i])
	}
	//
	switch cfg.format {
	case "text":
		return ok, writeText(out, cfg, filenames, results)
	case "json":
		return ok, writeJson(out, cfg, filenames, results)
	case "lsp":
		return ok, writeLsp(out, cfg, filenames, results)
	default:
		return false, fmt.Errorf("unknown output format \"%s\"", cfg.format)
	}
}

func writeText(out io.Writer, cfg checkConfig, filenames []string, results [][]diagnostic.ValidationError) error {
	var (
		printer = check.NewPrinter(out).AnsiEscapes(cfg.ansiEscapes).Warnings(cfg.warnings)
		all     []diagnostic.ValidationError
	)
	//
	for i, filename := range filenames {
		if err := printer.Print(filename, cfg.source, results[i]); err != nil {
			return err
		}
		//
		all = append(all, results[i]...)
	}
	//
	return printer.Summarise(all)
}

func writeJson(out io.Writer, cfg checkConfig, filenames []string, results [][]diagnostic.ValidationError) error {
	var (
		bytes []byte
		err   error
	)
	//
	if len(filenames) == 1 {
		bytes, err = diagnostic.NewResult(results[0], cfg.warnings).MarshalIndent()
	} else {
		files := make([]fileResult, len(filenames))
		//
		for i, filename := range filenames {
			files[i] = fileResult{filename, diagnostic.NewResult(results[i], cfg.warnings)}
		}
		//
		bytes, err = json.MarshalIndent(files, "", "  ")
	}
	//
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintln(out, string(bytes))
	//
	return err
}

// writeLsp writes diagnostics in the form of "textDocument/publishDiagnostics"
// notification parameters, one per file.
func writeLsp(out io.Writer, cfg checkConfig, filenames []string, results [][]diagnostic.ValidationError) error {
	params := make([]protocol.PublishDiagnosticsParams, len(filenames))
	//
	for i, filename := range filenames {
		errs := results[i]
		//
		if !cfg.warnings {
			errs, _ = diagnostic.Split(errs)
		}
		//
		params[i] = protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri.File(filename)),
			Diagnostics: diagnostic.ToProtocol(errs),
		}
	}
	//
	bytes, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintln(out, string(bytes))
	//
	return err
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("version", "V", "", "language version to check against (e.g. 5 or 6)")
	checkCmd.Flags().String("format", "auto", "output format (auto, text, json or lsp)")
	checkCmd.Flags().String("source", "", "source file from which the syntax tree was parsed (for highlighting)")
	checkCmd.Flags().Bool("warnings", true, "report warnings as well as errors")
	checkCmd.Flags().Bool("no-color", false, "disable coloured output")
}
