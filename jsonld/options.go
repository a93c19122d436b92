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

package jsonld

// Embed is the JSON-LD 1.1 framing @embed policy.
type Embed string

const (
	Mode10      = "json-ld-1.0"              //nolint:stylecheck
	Mode11      = "json-ld-1.1"              //nolint:stylecheck
	Mode11Frame = "json-ld-1.1-expand-frame" //nolint:stylecheck

	EmbedAlways Embed = "@always"
	EmbedOnce   Embed = "@once"
	EmbedNever  Embed = "@never"
	EmbedLink   Embed = "@link"
)

// Options type as specified in the JSON-LD-API specification:
// http://www.w3.org/TR/json-ld-api/#the-jsonldoptions-type
type Options struct { //nolint:stylecheck

	// Base options: http://www.w3.org/TR/json-ld-api/#idl-def-Options

	// http://www.w3.org/TR/json-ld-api/#widl-Options-base
	Base string
	// http://www.w3.org/TR/json-ld-api/#widl-Options-compactArrays
	CompactArrays bool
	// http://www.w3.org/TR/json-ld-api/#widl-Options-expandContext
	ExpandContext interface{}
	// http://www.w3.org/TR/json-ld-api/#widl-Options-processingMode
	ProcessingMode string
	// http://www.w3.org/TR/json-ld-api/#widl-Options-documentLoader
	DocumentLoader DocumentLoader

	// Frame options: http://json-ld.org/spec/latest/json-ld-framing/

	Embed        Embed
	Explicit     bool
	RequireAll   bool
	FrameDefault bool
	OmitDefault  bool
	OmitGraph    bool

	// RDF conversion options: http://www.w3.org/TR/json-ld-api/#serialize-rdf-as-json-ld-algorithm

	UseRdfType            bool
	UseNativeTypes        bool
	ProduceGeneralizedRdf bool

	// The following properties aren't in the spec

	InputFormat   string
	Format        string
	Algorithm     string
	UseNamespaces bool
	OutputForm    string
	SafeMode      bool
}

// NewOptions creates and returns new instance of Options with the given base.
func NewOptions(base string) *Options { //nolint:stylecheck
	return &Options{
		Base:                  base,
		CompactArrays:         true,
		ProcessingMode:        Mode11,
		DocumentLoader:        NewDefaultDocumentLoader(nil),
		Embed:                 EmbedOnce,
		Explicit:              false,
		RequireAll:            true,
		FrameDefault:          false,
		OmitDefault:           false,
		OmitGraph:             false,
		UseRdfType:            false,
		UseNativeTypes:        false,
		ProduceGeneralizedRdf: false,
		InputFormat:           "",
		Format:                "",
		Algorithm:             AlgorithmURGNA2012,
		UseNamespaces:         false,
		OutputForm:            "",
		SafeMode:              false,
	}
}

// Copy creates a deep copy of Options object.
func (opt *Options) Copy() *Options {
	return &Options{
		Base:                  opt.Base,
		CompactArrays:         opt.CompactArrays,
		ExpandContext:         opt.ExpandContext,
		ProcessingMode:        opt.ProcessingMode,
		DocumentLoader:        opt.DocumentLoader,
		Embed:                 opt.Embed,
		Explicit:              opt.Explicit,
		RequireAll:            opt.RequireAll,
		FrameDefault:          opt.FrameDefault,
		OmitDefault:           opt.OmitDefault,
		OmitGraph:             opt.OmitGraph,
		UseRdfType:            opt.UseRdfType,
		UseNativeTypes:        opt.UseNativeTypes,
		ProduceGeneralizedRdf: opt.ProduceGeneralizedRdf,
		InputFormat:           opt.InputFormat,
		Format:                opt.Format,
		Algorithm:             opt.Algorithm,
		UseNamespaces:         opt.UseNamespaces,
		OutputForm:            opt.OutputForm,
		SafeMode:              opt.SafeMode,
	}
}
