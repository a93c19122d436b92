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

// apiRuntime is the shared receiver for the five recursive algorithms
// that make up the processing core: expansion, compaction, node map
// generation, framing and the RDF bridge (to/from RDF, normalization).
// Each lives in its own api_*.go file and calls back into the others by
// name (framing and to-RDF conversion both drive node map generation), so
// they share one receiver type rather than five free-function sets.
//
// A run carries no shared mutable state across these algorithms —
// recursion state (the active context, the identifier issuer, the node
// map being built) is threaded through explicit parameters instead, so
// apiRuntime itself stays side-effect-free and safe to construct fresh
// per call.
type apiRuntime struct{}

func newAPIRuntime() *apiRuntime {
	return &apiRuntime{}
}
