// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vantablack-ld/jsonld/internal/config"
	"github.com/vantablack-ld/jsonld/internal/doccache"
	"github.com/vantablack-ld/jsonld/internal/logging"
	"github.com/vantablack-ld/jsonld/jsonld"
)

// readInput reads a JSON-LD document from path, or from stdin when path is
// "" or "-".
func readInput(path string) (interface{}, error) {
	if path == "" || path == "-" {
		return jsonld.DocumentFromReader(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return jsonld.DocumentFromReader(f)
}

// readRaw reads the raw bytes of path, or stdin when path is "" or "-".
func readRaw(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes v to stdout as indented JSON.
func writeOutput(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newOptions builds a jsonld.Options from the loaded config defaults and
// this invocation's persistent flags, wiring in a cached document loader
// unless disabled.
func newOptions(cmdName string) (*jsonld.Options, error) {
	defaults, err := config.Load(cfgFile, nil)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logging.SetLevel(logLevel)
	logging.SetJSON(logJSON)
	log := logging.WithInvocation(cmdName)

	opts := jsonld.NewOptions("")
	defaults.ApplyTo(opts)
	if baseURI != "" {
		opts.Base = baseURI
	}

	if cacheDocs {
		cached, err := doccache.New(opts.DocumentLoader, doccache.DefaultConfig())
		if err != nil {
			log.WithError(err).Warn("failed to initialize document cache, falling back to uncached loader")
		} else {
			opts.DocumentLoader = cached
		}
	}

	log.Debug("options initialized")
	return opts, nil
}
