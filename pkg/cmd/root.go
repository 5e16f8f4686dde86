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
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-pinecheck/pkg/pine/registry"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pinecheck",
	Short: "A semantic checker for Pine-like trading scripts.",
	Long: `A semantic checker for Pine-like trading scripts.  Syntax trees produced
	by the parser are checked for undefined names, calls with incorrect
	arguments, type errors and version-specific mistakes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			writeVersion(os.Stdout, buildVersion(), readCatalog(cmd))
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// buildVersion determines the version of this executable.
func buildVersion() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

// writeVersion reports the version of this executable, along with the language
// versions its built-ins cover.  The latest is used when none is requested.
func writeVersion(out io.Writer, version string, catalog *registry.Catalog) {
	fmt.Fprintf(out, "pinecheck %s\n", version)
	fmt.Fprintf(out, "language versions: %s (default %s)\n", strings.Join(catalog.Versions(), ", "),
		catalog.Latest())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("builtins", "",
		"directory of built-in data files (v5.json, v6.json, etc) to use instead of those embedded")
}
