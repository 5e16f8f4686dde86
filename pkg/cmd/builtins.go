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
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-pinecheck/pkg/pine/registry"
	"github.com/consensys/go-pinecheck/pkg/util/termio"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins [flags] [name...]",
	Short: "print built-in functions and their signatures.",
	Long: `Print the signatures of built-in functions for a given language version,
	along with their arity and any restrictions (e.g. top-level only).  When
	no names are given, every built-in function is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog := readCatalog(cmd)
		builtins := catalog.ForVersion(GetString(cmd, "version"))
		//
		if GetFlag(cmd, "namespaces") {
			for _, ns := range builtins.Namespaces() {
				fmt.Println(ns)
			}
			//
			return
		}
		//
		cfg := builtinsConfig{
			ansiEscapes: termio.IsTerminal(os.Stdout),
			maxWidth:    GetUint(cmd, "textwidth"),
			describe:    GetFlag(cmd, "describe"),
		}
		//
		if width, ok := termio.Width(os.Stdout); ok && cfg.maxWidth == 0 {
			cfg.maxWidth = width
		}
		//
		if !printBuiltins(os.Stdout, builtins, cfg, args...) {
			os.Exit(1)
		}
	},
}

type builtinsConfig struct {
	// Enable ANSI escapes
	ansiEscapes bool
	// Maximum width of a line, or zero for no limit.
	maxWidth uint
	// Print the description of each function after the table.
	describe bool
}

// printBuiltins prints a table describing the given built-in functions, or all
// of them when none are given.  This returns false if any name is not a
// built-in function.
func printBuiltins(out io.Writer, r *registry.Registry, cfg builtinsConfig, names ...string) bool {
	var (
		ok    = true
		found []*registry.Function
	)
	//
	if len(names) == 0 {
		names = r.FunctionNames()
	}
	//
	for _, name := range names {
		if fn, exists := r.ResolveFunction(name); exists {
			found = append(found, fn)
		} else if replacement, deprecated := r.Deprecated(name); deprecated {
			fmt.Fprintf(out, "%s: not a built-in function (use %s)\n", name, replacement)
			//
			ok = false
		} else {
			fmt.Fprintf(out, "%s: not a built-in function\n", name)
			//
			ok = false
		}
	}
	//
	if len(found) > 0 {
		table := builtinsTable(r, found)
		table.AnsiEscapes(cfg.ansiEscapes)
		// Signatures are truncated to fit
		if cfg.maxWidth > 0 {
			used := uint(0)
			//
			for col := uint(0); col < 3; col++ {
				used += columnWidth(table, col) + 2
			}
			//
			table.SetMaxWidth(3, cfg.maxWidth-min(used, cfg.maxWidth))
		}
		//
		if err := table.Print(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		//
		if cfg.describe {
			printDescriptions(out, r, found)
		}
	}
	//
	return ok
}

func builtinsTable(r *registry.Registry, fns []*registry.Function) *termio.TablePrinter {
	var rows uint
	//
	for _, fn := range fns {
		rows += uint(len(fn.Signatures()))
	}
	//
	var (
		table  = termio.NewTablePrinter(4, rows)
		row    = uint(0)
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_WHITE)
	)
	//
	for _, fn := range fns {
		name := fn.Name()
		//
		for i, sig := range fn.Signatures() {
			if i == 0 {
				table.SetRow(row, name, arityOf(r, name, &sig), strings.Join(flagsOf(r, name), ","), sig.String())
				table.SetEscape(0, row, escape)
			} else {
				// Overloads
				table.SetRow(row, "", arityOf(r, name, &sig), "", sig.String())
			}
			//
			row++
		}
	}
	//
	return table
}

// printDescriptions prints the description of each function given which has
// one, indented beneath its name.
func printDescriptions(out io.Writer, r *registry.Registry, fns []*registry.Function) {
	for _, fn := range fns {
		if text := strings.TrimSpace(r.Describe(fn.Name())); text != "" {
			fmt.Fprintf(out, "\n%s\n    %s\n", fn.Name(), text)
		}
	}
}

func columnWidth(table *termio.TablePrinter, col uint) uint {
	var width uint
	//
	for row := uint(0); row < table.Height(); row++ {
		width = max(width, uint(len(table.Get(col, row))))
	}
	//
	return width
}

// arityOf summarises the number of arguments accepted by a signature.
func arityOf(r *registry.Registry, name string, sig *registry.FunctionSignature) string {
	switch {
	case r.IsVariadic(name):
		return fmt.Sprintf("%d+", r.MinArgsForVariadic(name))
	case sig.MinArity() == sig.MaxArity():
		return fmt.Sprintf("%d", sig.MinArity())
	default:
		return fmt.Sprintf("%d..%d", sig.MinArity(), sig.MaxArity())
	}
}

func flagsOf(r *registry.Registry, name string) []string {
	var flags []string
	//
	if r.IsVariadic(name) {
		flags = append(flags, "variadic")
	}
	//
	if !r.IsReliable(name) {
		flags = append(flags, "unchecked")
	}
	//
	if r.IsTopLevelOnly(name) {
		flags = append(flags, "top-level")
	}
	//
	return flags
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
	builtinsCmd.Flags().StringP("version", "V", "", "language version (e.g. 5 or 6)")
	builtinsCmd.Flags().Bool("namespaces", false, "print namespaces instead of functions")
	builtinsCmd.Flags().Bool("describe", false, "print the description of each function")
	builtinsCmd.Flags().Uint("textwidth", 0, "maximum width of each line (0 fits the terminal, if any)")
}
