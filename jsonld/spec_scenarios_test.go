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

package jsonld_test

import (
	"testing"

	. "github.com/vantablack-ld/jsonld/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: expansion of a simple document.
func TestExpand_SimpleDocument(t *testing.T) {
	proc := NewProcessor()
	opts := NewOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"name": "http://x/n",
		},
		"name": "A",
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)

	want := []interface{}{
		map[string]interface{}{
			"http://x/n": []interface{}{
				map[string]interface{}{"@value": "A"},
			},
		},
	}

	assert.True(t, DeepCompare(want, toGeneric(expanded), false))
}

// Scenario 2: compaction with a typed value.
func TestCompact_TypedValue(t *testing.T) {
	proc := NewProcessor()
	opts := NewOptions("")

	expanded := []interface{}{
		map[string]interface{}{
			"http://x/h": []interface{}{
				map[string]interface{}{"@id": "http://u/"},
			},
		},
	}

	context := map[string]interface{}{
		"@context": map[string]interface{}{
			"h": map[string]interface{}{
				"@id":   "http://x/h",
				"@type": "@id",
			},
		},
	}

	compacted, err := proc.Compact(expanded, context, opts)
	require.NoError(t, err)

	assert.Equal(t, "http://u/", compacted["h"])
}

// Scenario 3: reverse properties expand into a @reverse block and
// produce the inverted triple when converted to RDF.
func TestExpand_ReverseProperty(t *testing.T) {
	proc := NewProcessor()
	opts := NewOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"parent": map[string]interface{}{"@reverse": "http://x/child"},
		},
		"@id":    "http://x/B",
		"parent": map[string]interface{}{"@id": "http://x/A"},
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)
	require.Len(t, expanded, 1)

	node := expanded[0].(map[string]interface{})
	assert.Equal(t, "http://x/B", node["@id"])
	reverse := node["@reverse"].(map[string]interface{})
	require.Contains(t, reverse, "http://x/child")

	dataset, err := proc.ToRDF(doc, opts)
	require.NoError(t, err)
	rdf := dataset.(*RDFDataset)
	quads := rdf.Graphs["@default"]
	require.Len(t, quads, 1)
	assert.Equal(t, "http://x/A", quads[0].Subject.GetValue())
	assert.Equal(t, "http://x/child", quads[0].Predicate.GetValue())
	assert.Equal(t, "http://x/B", quads[0].Object.GetValue())
}

// Scenario 4: a @list container serializes as an rdf:first/rdf:rest chain.
func TestToRDF_ListContainer(t *testing.T) {
	proc := NewProcessor()
	opts := NewOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"lst": map[string]interface{}{
				"@id":        "http://x/l",
				"@container": "@list",
			},
		},
		"lst": []interface{}{1, 2, 3},
	}

	dataset, err := proc.ToRDF(doc, opts)
	require.NoError(t, err)
	rdf := dataset.(*RDFDataset)
	quads := rdf.Graphs["@default"]

	// one http://x/l triple pointing at the list head, plus 3 rdf:first
	// and 3 rdf:rest triples (the last rdf:rest points at rdf:nil)
	assert.Len(t, quads, 7)

	firstCount, restCount, headCount := 0, 0, 0
	for _, q := range quads {
		switch q.Predicate.GetValue() {
		case RDFFirst:
			firstCount++
		case RDFRest:
			restCount++
		case "http://x/l":
			headCount++
		}
	}
	assert.Equal(t, 3, firstCount)
	assert.Equal(t, 3, restCount)
	assert.Equal(t, 1, headCount)
}

// Scenario 5: framing with a wildcard type pattern is deterministic
// across repeated invocations (stable blank-node/embedding behavior).
func TestFrame_Wildcard(t *testing.T) {
	proc := NewProcessor()
	opts := NewOptions("")
	opts.Embed = EmbedOnce

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"ex": "http://example.org/vocab#",
		},
		"@graph": []interface{}{
			map[string]interface{}{
				"@id":       "http://example.org/book1",
				"@type":     "ex:Book",
				"ex:title":  "T",
			},
		},
	}

	frame := map[string]interface{}{
		"@context": map[string]interface{}{
			"ex": "http://example.org/vocab#",
		},
		"@type": "ex:Book",
	}

	first, err := proc.Frame(doc, frame, opts)
	require.NoError(t, err)
	second, err := proc.Frame(doc, frame, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	graph := first["@graph"].([]interface{})
	require.Len(t, graph, 1)
	node := graph[0].(map[string]interface{})
	assert.Equal(t, "T", node["ex:title"])
}

// Scenario 6: protected-term redefinition is rejected unless the new
// mapping is identical to the old one.
func TestContext_ProtectedTermRedefinition(t *testing.T) {
	opts := NewOptions("")

	ctx := NewActiveContext(nil, opts)
	ctx, err := ctx.Parse(map[string]interface{}{
		"name": map[string]interface{}{
			"@id":        "http://x/name",
			"@protected": true,
		},
	})
	require.NoError(t, err)

	_, err = ctx.Parse(map[string]interface{}{
		"name": "http://x/other-name",
	})
	require.Error(t, err)
	jsonLDErr := new(ProcessingError)
	require.ErrorAs(t, err, &jsonLDErr)
	assert.Equal(t, ProtectedTermRedefinition, jsonLDErr.Code)

	// identical redefinition succeeds
	_, err = ctx.Parse(map[string]interface{}{
		"name": map[string]interface{}{
			"@id":        "http://x/name",
			"@protected": true,
		},
	})
	assert.NoError(t, err)
}

func toGeneric(v []interface{}) interface{} {
	return v
}
