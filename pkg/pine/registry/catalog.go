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
package registry

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed data/*.json
var embedded embed.FS

// Catalog holds the registry of every supported language version.
type Catalog struct {
	registries map[string]*Registry
	// Supported versions in ascending order.
	versions []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the catalog constructed from the built-in data files.
// This is loaded once on first use, and shared thereafter.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err == nil {
			defaultCatalog, err = LoadCatalog(sub)
		}
		//
		defaultErr = errors.Wrap(err, "loading built-in registry")
	})
	//
	return defaultCatalog, defaultErr
}

// LoadCatalog constructs a catalog from a directory of data files, such as
// "v5.json" and "v6.json".  Files not following this naming convention are
// ignored.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "v*.json")
	if err != nil {
		return nil, errors.Wrap(err, "listing built-in data")
	}
	//
	catalog := &Catalog{registries: make(map[string]*Registry)}
	//
	for _, file := range files {
		version := strings.TrimSuffix(strings.TrimPrefix(path.Base(file), "v"), ".json")
		//
		if _, err := strconv.Atoi(version); err != nil {
			log.Debugf("ignoring data file %s", file)
			continue
		}
		//
		bytes, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		//
		registry, err := Load(version, bytes)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", file)
		}
		//
		catalog.registries[version] = registry
		catalog.versions = append(catalog.versions, version)
	}
	//
	if len(catalog.versions) == 0 {
		return nil, errors.New("no built-in data found")
	}
	//
	sort.Slice(catalog.versions, func(i, j int) bool {
		l, _ := strconv.Atoi(catalog.versions[i])
		r, _ := strconv.Atoi(catalog.versions[j])
		//
		return l < r
	})
	//
	return catalog, nil
}

// Versions returns the supported language versions in ascending order.
func (c *Catalog) Versions() []string {
	return append([]string(nil), c.versions...)
}

// Latest returns the most recent supported language version.
func (c *Catalog) Latest() string {
	return c.versions[len(c.versions)-1]
}

// ForVersion returns the registry of a given language version.  An unsupported
// (or empty) version falls back to the latest version.
func (c *Catalog) ForVersion(version string) *Registry {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	//
	if r, ok := c.registries[version]; ok {
		return r
	} else if version != "" {
		log.Warnf("unsupported language version %q, using version %s", version, c.Latest())
	}
	//
	return c.registries[c.Latest()]
}
