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
package pine

import (
	"github.com/pkg/errors"

	"github.com/consensys/go-pinecheck/pkg/pine/ast"
	"github.com/consensys/go-pinecheck/pkg/pine/diagnostic"
	"github.com/consensys/go-pinecheck/pkg/pine/registry"
	"github.com/consensys/go-pinecheck/pkg/pine/validator"
)

// Config determines how programs are checked.
type Config struct {
	// Language version to check against (e.g. "5" or "6").  When empty, the
	// version declared by the program itself is used, otherwise the latest.
	Version string
	// Catalog of built-in registries.  When nil, the built-in catalog is used.
	Catalog *registry.Catalog
}

// DefaultConfig checks programs against the latest language version using the
// built-in registries.
func DefaultConfig() Config {
	return Config{}
}

// Check validates a program according to a given configuration.  An error is
// only returned if the registry of built-ins cannot be constructed; problems
// with the program itself are reported as diagnostics.
func Check(program *ast.Program, config Config) ([]diagnostic.ValidationError, error) {
	catalog := config.Catalog
	//
	if catalog == nil {
		var err error
		//
		if catalog, err = registry.DefaultCatalog(); err != nil {
			return nil, err
		}
	}
	//
	version := config.Version
	//
	if version == "" && program != nil {
		version = program.Version
	}
	//
	v := validator.New(catalog.ForVersion(version))
	//
	return v.Validate(program, version), nil
}

// CheckBytes decodes a program from the JSON form produced by the parser, and
// then validates it.
func CheckBytes(data []byte, config Config) ([]diagnostic.ValidationError, error) {
	program, err := ast.DecodeProgram(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding program")
	}
	//
	return Check(program, config)
}
