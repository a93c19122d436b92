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

// Package cayleyrdf adapts the processor's internal RDFDataset to and from
// github.com/cayleygraph/quad, so a caller that already speaks Cayley's quad
// model can consume to_rdf output, or feed a Cayley-sourced graph into
// from_rdf, without hand-rolling a second triple representation.
package cayleyrdf

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/vantablack-ld/jsonld/jsonld"
)

// DefaultGraph is the label used for the default graph's quads, mirroring
// the processor's own "@default" graph key.
const DefaultGraph = "@default"

// FromDataset flattens an RDFDataset into a slice of quad.Quad, one per
// triple in every named graph. The graph name becomes the quad's Label,
// except for the default graph, whose quads carry a nil Label.
func FromDataset(ds *jsonld.RDFDataset) []quad.Quad {
	var out []quad.Quad
	for graphName, quads := range ds.Graphs {
		var label quad.Value
		if graphName != DefaultGraph {
			label = graphFromName(graphName)
		}
		for _, q := range quads {
			out = append(out, quad.Quad{
				Subject:   nodeToValue(q.Subject),
				Predicate: nodeToValue(q.Predicate),
				Object:    nodeToValue(q.Object),
				Label:     label,
			})
		}
	}
	return out
}

// ToDataset rebuilds an RDFDataset from a slice of quad.Quad, grouping by
// Label into named graphs (quads with no Label land in the default graph).
func ToDataset(quads []quad.Quad) *jsonld.RDFDataset {
	ds := jsonld.NewRDFDataset()
	for _, q := range quads {
		graphName := DefaultGraph
		switch label := q.Label.(type) {
		case nil:
		case quad.IRI:
			graphName = string(label)
		case quad.BNode:
			graphName = string(label)
		default:
			graphName = quad.StringOf(label)
		}
		rq := jsonld.NewQuad(
			valueToNode(q.Subject),
			valueToNode(q.Predicate),
			valueToNode(q.Object),
			graphName,
		)
		ds.Graphs[graphName] = append(ds.Graphs[graphName], rq)
	}
	return ds
}

func graphFromName(name string) quad.Value {
	if strings.HasPrefix(name, "_:") {
		return quad.BNode(name)
	}
	return quad.IRI(name)
}

// nodeToValue converts one of the processor's three Node kinds (IRI,
// BlankNode, Literal) into the corresponding quad.Value.
func nodeToValue(n jsonld.Node) quad.Value {
	switch v := n.(type) {
	case *jsonld.IRI:
		return quad.IRI(v.Value)
	case *jsonld.BlankNode:
		return quad.BNode(v.Attribute)
	case *jsonld.Literal:
		if v.Language != "" {
			return quad.LangString{Value: quad.String(v.Value), Lang: v.Language}
		}
		if v.Datatype != "" && v.Datatype != jsonld.XSDString {
			return quad.TypedString{Value: quad.String(v.Value), Type: quad.IRI(v.Datatype)}
		}
		return quad.String(v.Value)
	default:
		return quad.String(n.GetValue())
	}
}

// valueToNode is the inverse of nodeToValue.
func valueToNode(v quad.Value) jsonld.Node {
	switch val := v.(type) {
	case quad.IRI:
		return jsonld.NewIRI(string(val))
	case quad.BNode:
		return jsonld.NewBlankNode(string(val))
	case quad.LangString:
		return jsonld.NewLiteral(string(val.Value), "", val.Lang)
	case quad.TypedString:
		return jsonld.NewLiteral(string(val.Value), string(val.Type), "")
	case quad.String:
		return jsonld.NewLiteral(string(val), jsonld.XSDString, "")
	default:
		return jsonld.NewLiteral(quad.StringOf(v), jsonld.XSDString, "")
	}
}
