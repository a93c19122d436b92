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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/vantablack-ld/jsonld/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(tb testing.TB, name, contents string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	require.NoError(tb, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDocument(t *testing.T) {
	path := writeFixture(t, "0002-in.jsonld", `{"@type": "t1"}`)

	dl := NewDefaultDocumentLoader(nil)

	rd, err := dl.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "t1", rd.Document.(map[string]interface{})["@type"])
}

func loadBenchData(tb testing.TB) *RDFDataset {
	tb.Helper()

	path := writeFixture(tb, "bench.jsonld", `{
		"@context": {"name": "http://example.org/name"},
		"@id": "http://example.org/subject",
		"name": "benchmark node"
	}`)

	dl := NewDefaultDocumentLoader(nil)
	rd, err := dl.LoadDocument(path)
	require.NoError(tb, err)
	proc := NewProcessor()
	triples, err := proc.ToRDF(rd.Document, NewOptions(""))
	require.NoError(tb, err)
	return triples.(*RDFDataset)
}

func BenchmarkLoadNQuads(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	err := (&NQuadRDFSerializer{}).SerializeTo(buf, loadBenchData(b))
	require.NoError(b, err)

	data := buf.Bytes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err = ParseNQuadsFrom(data)
		require.NoError(b, err)
	}
}

func TestParseLinkHeader(t *testing.T) {
	rval := ParseLinkHeader("<remote-doc/0010-context.jsonld>; rel=\"http://www.w3.org/ns/json-ld#context\"")

	assert.Equal(
		t,
		map[string][]map[string]string{
			"http://www.w3.org/ns/json-ld#context": {{
				"target": "remote-doc/0010-context.jsonld",
				"rel":    "http://www.w3.org/ns/json-ld#context",
			}},
		},
		rval,
	)
}

func TestCachingDocumentLoaderLoadDocument(t *testing.T) {
	path := writeFixture(t, "0002-in.jsonld", `{"@type": "t1"}`)

	cl := NewCachingDocumentLoader(NewDefaultDocumentLoader(nil))

	err := cl.PreloadWithMapping(map[string]string{
		"http://www.example.com/expand/0002-in.jsonld": path,
	})
	require.NoError(t, err)

	rd, err := cl.LoadDocument("http://www.example.com/expand/0002-in.jsonld")
	require.NoError(t, err)
	assert.Equal(t, "t1", rd.Document.(map[string]interface{})["@type"])
}
