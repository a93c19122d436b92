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
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vantablack-ld/jsonld/internal/cayleyrdf"
	"github.com/vantablack-ld/jsonld/jsonld"
)

func expandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand a JSON-LD document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(arg(args))
			if err != nil {
				return err
			}
			opts, err := newOptions("expand")
			if err != nil {
				return err
			}
			expanded, err := jsonld.NewProcessor().Expand(doc, opts)
			if err != nil {
				return err
			}
			return writeOutput(expanded)
		},
	}
	return cmd
}

func compactCmd() *cobra.Command {
	var contextPath string
	cmd := &cobra.Command{
		Use:   "compact [file]",
		Short: "Compact a JSON-LD document against a context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if contextPath == "" {
				return fmt.Errorf("--context is required")
			}
			doc, err := readInput(arg(args))
			if err != nil {
				return err
			}
			context, err := readInput(contextPath)
			if err != nil {
				return fmt.Errorf("reading context: %w", err)
			}
			opts, err := newOptions("compact")
			if err != nil {
				return err
			}
			compacted, err := jsonld.NewProcessor().Compact(doc, context, opts)
			if err != nil {
				return err
			}
			return writeOutput(compacted)
		},
	}
	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "context document (file path)")
	return cmd
}

func flattenCmd() *cobra.Command {
	var contextPath string
	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a JSON-LD document, optionally compacting the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(arg(args))
			if err != nil {
				return err
			}
			var context interface{}
			if contextPath != "" {
				context, err = readInput(contextPath)
				if err != nil {
					return fmt.Errorf("reading context: %w", err)
				}
			}
			opts, err := newOptions("flatten")
			if err != nil {
				return err
			}
			flattened, err := jsonld.NewProcessor().Flatten(doc, context, opts)
			if err != nil {
				return err
			}
			return writeOutput(flattened)
		},
	}
	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "context document to compact against (optional)")
	return cmd
}

func frameCmd() *cobra.Command {
	var framePath string
	var embed string
	cmd := &cobra.Command{
		Use:   "frame [file]",
		Short: "Frame a JSON-LD document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if framePath == "" {
				return fmt.Errorf("--frame is required")
			}
			doc, err := readInput(arg(args))
			if err != nil {
				return err
			}
			frame, err := readInput(framePath)
			if err != nil {
				return fmt.Errorf("reading frame: %w", err)
			}
			opts, err := newOptions("frame")
			if err != nil {
				return err
			}
			if embed != "" {
				opts.Embed = jsonld.Embed(embed)
			}
			framed, err := jsonld.NewProcessor().Frame(doc, frame, opts)
			if err != nil {
				return err
			}
			return writeOutput(framed)
		},
	}
	cmd.Flags().StringVarP(&framePath, "frame", "f", "", "frame document (file path)")
	cmd.Flags().StringVar(&embed, "embed", "", "default @embed policy (@always, @once, @never, @link)")
	return cmd
}

func toRDFCmd() *cobra.Command {
	var quadsOut bool
	cmd := &cobra.Command{
		Use:   "to-rdf [file]",
		Short: "Convert a JSON-LD document to N-Quads",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(arg(args))
			if err != nil {
				return err
			}
			opts, err := newOptions("to_rdf")
			if err != nil {
				return err
			}
			dataset, err := jsonld.NewProcessor().ToRDF(doc, opts)
			if err != nil {
				return err
			}
			rdfDataset := dataset.(*jsonld.RDFDataset)

			if quadsOut {
				// route the dataset through the Cayley quad.Quad bridge
				// instead of the processor's own N-Quads serializer, for
				// callers that want to hand the result straight to a
				// Cayley-backed graph store.
				for _, q := range cayleyrdf.FromDataset(rdfDataset) {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", q); err != nil {
						return err
					}
				}
				return nil
			}

			var buf bytes.Buffer
			if err := (&jsonld.NQuadRDFSerializer{}).SerializeTo(&buf, rdfDataset); err != nil {
				return err
			}
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&quadsOut, "quads", false, "emit github.com/cayleygraph/quad.Quad values instead of raw N-Quads")
	return cmd
}

func fromRDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-rdf [file]",
		Short: "Convert N-Quads to an expanded JSON-LD document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readRaw(arg(args))
			if err != nil {
				return err
			}
			opts, err := newOptions("from_rdf")
			if err != nil {
				return err
			}
			opts.Format = "application/nquads"
			doc, err := jsonld.NewProcessor().FromRDF(string(data), opts)
			if err != nil {
				return err
			}
			return writeOutput(doc)
		},
	}
	return cmd
}

func normalizeCmd() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Canonicalize a JSON-LD document's RDF dataset to N-Quads",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(arg(args))
			if err != nil {
				return err
			}
			opts, err := newOptions("normalize")
			if err != nil {
				return err
			}
			if algorithm != "" {
				opts.Algorithm = algorithm
			}
			opts.Format = "application/nquads"
			normalized, err := jsonld.NewProcessor().Normalize(doc, opts)
			if err != nil {
				return err
			}
			fmt.Print(normalized)
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "normalization algorithm (URGNA2012, URDNA2015)")
	return cmd
}

func arg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
