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

package cayleyrdf

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"

	"github.com/vantablack-ld/jsonld/jsonld"
)

func buildSampleDataset() *jsonld.RDFDataset {
	ds := jsonld.NewRDFDataset()
	ds.Graphs[DefaultGraph] = append(ds.Graphs[DefaultGraph], jsonld.NewQuad(
		jsonld.NewIRI("http://example.com/s"),
		jsonld.NewIRI("http://example.com/p"),
		jsonld.NewLiteral("hello", "", "en"),
		DefaultGraph,
	))
	ds.Graphs["http://example.com/g"] = append(ds.Graphs["http://example.com/g"], jsonld.NewQuad(
		jsonld.NewIRI("http://example.com/s2"),
		jsonld.NewIRI("http://example.com/p2"),
		jsonld.NewIRI("http://example.com/o2"),
		"http://example.com/g",
	))
	return ds
}

func TestFromDataset(t *testing.T) {
	quads := FromDataset(buildSampleDataset())
	assert.Len(t, quads, 2)

	byPredicate := make(map[quad.Value]quad.Quad)
	for _, q := range quads {
		byPredicate[q.Predicate] = q
	}

	defaultQuad, ok := byPredicate[quad.IRI("http://example.com/p")]
	assert.True(t, ok)
	assert.Nil(t, defaultQuad.Label)
	langVal, ok := defaultQuad.Object.(quad.LangString)
	assert.True(t, ok)
	assert.Equal(t, "hello", string(langVal.Value))
	assert.Equal(t, "en", langVal.Lang)

	namedQuad, ok := byPredicate[quad.IRI("http://example.com/p2")]
	assert.True(t, ok)
	assert.Equal(t, quad.IRI("http://example.com/g"), namedQuad.Label)
	assert.Equal(t, quad.IRI("http://example.com/o2"), namedQuad.Object)
}

func TestToDataset(t *testing.T) {
	quads := []quad.Quad{
		{
			Subject:   quad.IRI("http://example.com/s"),
			Predicate: quad.IRI("http://example.com/p"),
			Object:    quad.String("plain"),
			Label:     nil,
		},
		{
			Subject:   quad.BNode("b0"),
			Predicate: quad.IRI("http://example.com/p2"),
			Object:    quad.TypedString{Value: "42", Type: quad.IRI(jsonld.XSDInteger)},
			Label:     quad.IRI("http://example.com/g"),
		},
	}

	ds := ToDataset(quads)
	assert.Len(t, ds.Graphs[DefaultGraph], 1)
	assert.Len(t, ds.Graphs["http://example.com/g"], 1)

	defaultQuad := ds.Graphs[DefaultGraph][0]
	assert.Equal(t, "http://example.com/s", defaultQuad.Subject.GetValue())
	literal, ok := defaultQuad.Object.(*jsonld.Literal)
	assert.True(t, ok)
	assert.Equal(t, "plain", literal.Value)
	assert.Equal(t, jsonld.XSDString, literal.Datatype)

	namedQuad := ds.Graphs["http://example.com/g"][0]
	blank, ok := namedQuad.Subject.(*jsonld.BlankNode)
	assert.True(t, ok)
	assert.Equal(t, "b0", blank.Attribute)
	typedLiteral, ok := namedQuad.Object.(*jsonld.Literal)
	assert.True(t, ok)
	assert.Equal(t, jsonld.XSDInteger, typedLiteral.Datatype)
}

func TestRoundTrip(t *testing.T) {
	original := buildSampleDataset()
	roundTripped := ToDataset(FromDataset(original))
	assert.Len(t, roundTripped.Graphs[DefaultGraph], 1)
	assert.Len(t, roundTripped.Graphs["http://example.com/g"], 1)
}
