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

// Command jsonld is a thin driver over the jsonld package: one subcommand
// per processor entry point, reading a document from a file argument or
// stdin and writing the result to stdout. It never duplicates algorithmic
// logic from the jsonld package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	baseURI    string
	logLevel   string
	logJSON    bool
	cacheDocs  bool
)

func main() {
	root := &cobra.Command{
		Use:     "jsonld",
		Short:   "Process JSON-LD 1.1 documents",
		Version: "0.1.0",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.jsonld.yaml or $HOME/.jsonld.yaml)")
	root.PersistentFlags().StringVar(&baseURI, "base", "", "base IRI for resolving relative references")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	root.PersistentFlags().BoolVar(&cacheDocs, "cache", true, "cache dereferenced remote contexts")

	root.AddCommand(
		expandCmd(),
		compactCmd(),
		flattenCmd(),
		frameCmd(),
		toRDFCmd(),
		fromRDFCmd(),
		normalizeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
