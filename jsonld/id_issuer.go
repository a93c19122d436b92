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

import "strconv"

// IdentifierIssuer hands out deterministic blank node identifiers of the
// form <prefix><n>, remembering the mapping from whatever label a node
// arrived with (a document-supplied blank node name, or "" for a fresh
// one) to the label it was issued. Node map generation and RDF dataset
// normalization both need this: the same input label must always resolve
// to the same issued label within one run, and canonicalization needs to
// replay the issuance order deterministically.
type IdentifierIssuer struct {
	prefix string
	next   int

	issued   map[string]string // old label -> issued label
	order    []string          // old labels, in the order they were first issued
}

// NewIdentifierIssuer starts a fresh issuer that mints labels "<prefix>0",
// "<prefix>1", and so on.
func NewIdentifierIssuer(prefix string) *IdentifierIssuer {
	return &IdentifierIssuer{
		prefix: prefix,
		issued: make(map[string]string),
		order:  make([]string, 0),
	}
}

// Clone returns an independent copy of the issuer's current state, so a
// caller can explore an issuance path (e.g. while hashing related blank
// nodes during canonicalization) without mutating the original counter.
func (ii *IdentifierIssuer) Clone() *IdentifierIssuer {
	cloned := &IdentifierIssuer{
		prefix: ii.prefix,
		next:   ii.next,
		issued: make(map[string]string, len(ii.issued)),
		order:  append([]string(nil), ii.order...),
	}
	for label, issuedLabel := range ii.issued {
		cloned.issued[label] = issuedLabel
	}
	return cloned
}

// Issue returns the label previously issued for oldLabel, if any;
// otherwise it mints, records, and returns the next label in sequence.
// Passing "" always mints a brand new label without recording it under
// any old label (used when a node has no identifier to preserve).
func (ii *IdentifierIssuer) Issue(oldLabel string) string {
	if oldLabel != "" {
		if issuedLabel, ok := ii.issued[oldLabel]; ok {
			return issuedLabel
		}
	}

	minted := ii.prefix + strconv.Itoa(ii.next)
	ii.next++

	if oldLabel != "" {
		ii.issued[oldLabel] = minted
		ii.order = append(ii.order, oldLabel)
	}

	return minted
}

// HasIssued reports whether oldLabel has already been assigned a label.
func (ii *IdentifierIssuer) HasIssued(oldLabel string) bool {
	_, ok := ii.issued[oldLabel]
	return ok
}
