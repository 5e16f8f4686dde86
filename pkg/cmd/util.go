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
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-pinecheck/pkg/pine/ast"
	"github.com/consensys/go-pinecheck/pkg/pine/registry"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging sets the log level according to the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// readCatalog constructs the catalog of built-ins, either from the embedded
// data files or from those in the directory given by the builtins flag.
func readCatalog(cmd *cobra.Command) *registry.Catalog {
	catalog, err := loadCatalog(GetString(cmd, "builtins"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return catalog
}

func loadCatalog(dir string) (*registry.Catalog, error) {
	if dir == "" {
		return registry.DefaultCatalog()
	}
	//
	log.Debugf("loading built-ins from %s", dir)
	//
	catalog, err := registry.LoadCatalog(os.DirFS(dir))
	//
	return catalog, errors.Wrapf(err, "loading built-ins from %s", dir)
}

// readProgram reads a syntax tree in its JSON form from a given file.
func readProgram(filename string) (*ast.Program, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	program, err := ast.DecodeProgram(bytes)
	//
	return program, errors.Wrapf(err, "%s", filename)
}
