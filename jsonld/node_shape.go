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

import (
	"net/url"
	"strings"
)

// This file groups the predicates expansion, compaction and framing use to
// classify a raw map[string]interface{}/[]interface{} node as one of the
// handful of shapes the JSON-LD data model recognizes: a keyword, a plain
// subject, a subject reference, a @list, a @graph, a @value, or a blank
// node. None of these inspect an active context; they only look at the
// shape of the value itself.

// IsKeyword returns whether or not the given value is a keyword.
func IsKeyword(key interface{}) bool {
	if _, isString := key.(string); !isString {
		return false
	}
	return key == "@base" || key == "@container" || key == "@context" || key == "@default" || key == "@direction" ||
		key == "@embed" || key == "@explicit" || key == "@json" || key == "@id" || key == "@included" ||
		key == "@index" || key == "@first" || key == "@graph" || key == "@import" || key == "@language" ||
		key == "@list" || key == "@nest" || key == "@none" || key == "@omitDefault" || key == "@prefix" ||
		key == "@preserve" || key == "@propagate" || key == "@protected" || key == "@requireAll" ||
		key == "@reverse" || key == "@set" || key == "@type" || key == "@value" || key == "@version" ||
		key == "@vocab"
}

// IsAbsoluteIri returns true if the given value is an absolute IRI, or a
// blank node identifier (which, for mapping purposes, counts as absolute).
func IsAbsoluteIri(value string) bool {
	if strings.HasPrefix(value, "_:") {
		return true
	}
	u, err := url.Parse(value)
	return err == nil && u.IsAbs()
}

// IsRelativeIri returns true if the given value is a relative IRI, false if not.
func IsRelativeIri(value string) bool {
	return !(IsKeyword(value) || IsAbsoluteIri(value))
}

// IsSubject returns true if the given value is a subject with properties.
//
// A value is a subject if all of these hold true:
//  1. It is an Object.
//  2. It is not a @value, @set, or @list.
//  3. It has more than 1 key OR any existing key is not @id.
func IsSubject(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	_, containsValue := vMap["@value"]
	_, containsSet := vMap["@set"]
	_, containsList := vMap["@list"]
	_, containsID := vMap["@id"]
	if isMap && !(containsValue || containsSet || containsList) {
		return len(vMap) > 1 || !containsID
	}
	return false
}

// IsSubjectReference returns true if the given value is a subject reference:
// an object whose only key is @id.
func IsSubjectReference(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	_, containsID := vMap["@id"]
	return isMap && len(vMap) == 1 && containsID
}

// IsList returns true if the given value is a @list.
func IsList(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	_, hasList := vMap["@list"]
	return isMap && hasList
}

// IsGraph returns true if the given value is a graph: an object with an
// @graph key and no keys besides @id, @index and @graph.
func IsGraph(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	_, containsGraph := vMap["@graph"]
	hasOtherKeys := false
	if isMap {
		for k := range vMap {
			if k != "@id" && k != "@index" && k != "@graph" {
				hasOtherKeys = true
				break
			}
		}
	}
	return isMap && containsGraph && !hasOtherKeys
}

// IsSimpleGraph returns true if the given value is a graph with no @id.
func IsSimpleGraph(v interface{}) bool {
	vMap, _ := v.(map[string]interface{})
	_, containsID := vMap["@id"]
	return IsGraph(v) && !containsID
}

// IsValue returns true if the given value is a JSON-LD @value object.
func IsValue(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	_, containsValue := vMap["@value"]
	return isMap && containsValue
}

// IsBlankNodeValue returns true if the given value is a blank node.
//
// A value is a blank node if all of these hold true:
//  1. It is an Object.
//  2. If it has an @id key, that key's value begins with '_:'.
//  3. It has no keys, or is not a @value, @set, or @list.
func IsBlankNodeValue(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	if !isMap {
		return false
	}
	id, containsID := vMap["@id"]
	if containsID {
		return strings.HasPrefix(id.(string), "_:")
	}
	_, containsValue := vMap["@value"]
	_, containsSet := vMap["@set"]
	_, containsList := vMap["@list"]
	return len(vMap) == 0 || !(containsValue || containsSet || containsList)
}

func isEmptyObject(v interface{}) bool {
	vMap, isMap := v.(map[string]interface{})
	return isMap && len(vMap) == 0
}
