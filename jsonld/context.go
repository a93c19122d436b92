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
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// maxRemoteContexts caps how many remote contexts can be dereferenced while
// processing a single @context value, guarding against runaway chains of
// remote context references. @import entries do not count toward it.
const maxRemoteContexts = 50

var (
	ignoredKeywordPattern = regexp.MustCompile("^@[a-zA-Z]+$")
	invalidPrefixPattern  = regexp.MustCompile("[:/]")
	iriLikeTermPattern    = regexp.MustCompile(`(?::[^:])|/`)

	nonTermDefKeys = map[string]bool{
		"@base":      true,
		"@direction": true,
		"@import":    true,
		"@language":  true,
		"@protected": true,
		"@version":   true,
		"@vocab":     true,
	}
)

// ActiveContext represents a JSON-LD context and provides easy access to specific
// keys and operations.
type ActiveContext struct {
	values          map[string]interface{}
	options         *Options
	termDefinitions map[string]interface{}
	inverse         map[string]interface{}
	protected       map[string]bool
	previousContext *ActiveContext
}

// NewActiveContext creates and returns a new ActiveContext object.
func NewActiveContext(values map[string]interface{}, options *Options) *ActiveContext {
	if options == nil {
		options = NewOptions("")
	}

	context := &ActiveContext{
		values:          make(map[string]interface{}),
		options:         options,
		termDefinitions: make(map[string]interface{}),
		protected:       make(map[string]bool),
	}

	context.values["@base"] = options.Base

	for k, v := range values {
		context.values[k] = v
	}

	context.values["processingMode"] = options.ProcessingMode

	return context
}

func (c *ActiveContext) AsMap() map[string]interface{} {
	res := map[string]interface{}{
		"values":          c.values,
		"termDefinitions": c.termDefinitions,
		"inverse":         c.inverse,
		"protected":       c.protected,
	}
	if c.previousContext != nil {
		res["previousContext"] = c.previousContext.AsMap()
	}
	return res
}

// CopyContext creates a full copy of the given context.
func CopyContext(ctx *ActiveContext) *ActiveContext {
	context := NewActiveContext(ctx.values, ctx.options)

	for k, v := range ctx.termDefinitions {
		context.termDefinitions[k] = v
	}

	for k, v := range ctx.protected {
		context.protected[k] = v
	}

	// do not copy c.inverse, because it will be regenerated

	if ctx.previousContext != nil {
		context.previousContext = CopyContext(ctx.previousContext)
	}

	return context
}

// Parse processes a local context, retrieving any URLs as necessary, and
// returns a new active context.
// Refer to http://www.w3.org/TR/json-ld-api/#context-processing-algorithms for details
// TODO pyLD is doing a fair bit more in process_context(self, active_ctx, local_ctx, options)
// than just parsing the context. In particular, we need to check if additional logic is required
// to load remote scoped contexts.
func (c *ActiveContext) Parse(localContext interface{}) (*ActiveContext, error) {
	return c.parse(localContext, make([]string, 0), false, true, false, false)
}

// parse processes a local context, retrieving any URLs as necessary, and
// returns a new active context.
//
// If parsingARemoteContext is true, localContext represents a remote context
// that has been parsed and sent into this method. This must be set to know
// whether to propagate the @base key from the context to the result.
func (c *ActiveContext) parse(localContext interface{}, remoteContexts []string, parsingARemoteContext, propagate,
	protected, overrideProtected bool) (*ActiveContext, error) { //nolint:unparam

	entries := Arrayify(localContext)
	if len(entries) == 0 {
		return c, nil
	}

	propagate = effectivePropagate(entries, propagate)

	result := CopyContext(c)
	if !propagate && result.previousContext == nil {
		result.previousContext = c
	}

	for _, entry := range entries {
		if entry == nil {
			nulled, err := c.nullifyContext(result, propagate, overrideProtected)
			if err != nil {
				return nil, err
			}
			result = nulled
			continue
		}

		var contextMap map[string]interface{}

		switch typed := entry.(type) {
		case *ActiveContext:
			result = typed
			continue
		case string:
			next, advancedRemotes, err := c.resolveRemoteContextEntry(result, typed, remoteContexts, overrideProtected)
			if err != nil {
				return nil, err
			}
			result = next
			remoteContexts = advancedRemotes
			continue
		case map[string]interface{}:
			contextMap = typed
		default:
			return nil, NewProcessingError(InvalidLocalContext, entry)
		}

		if nested := contextMap["@context"]; nested != nil {
			nestedMap, isMap := nested.(map[string]interface{})
			if !isMap {
				return nil, NewProcessingError(InvalidLocalContext, nested)
			}
			contextMap = nestedMap
		}

		if err := applyProcessingModeEntry(c, result, contextMap); err != nil {
			return nil, err
		}

		mergedMap, err := c.resolveImportEntry(result, contextMap)
		if err != nil {
			return nil, err
		}
		contextMap = mergedMap

		if err := applyBaseEntry(result, contextMap, parsingARemoteContext); err != nil {
			return nil, err
		}
		if err := applyLanguageEntry(result, contextMap); err != nil {
			return nil, err
		}
		if err := applyDirectionEntry(result, contextMap); err != nil {
			return nil, err
		}

		defined, err := c.definePropagateAndProtectedFlags(contextMap, protected)
		if err != nil {
			return nil, err
		}

		if err := applyVocabEntry(c, result, contextMap); err != nil {
			return nil, err
		}

		for term := range contextMap {
			if _, skip := nonTermDefKeys[term]; skip {
				continue
			}
			if err := result.createTermDefinition(contextMap, term, defined, overrideProtected); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// effectivePropagate lets the first resolved entry's @propagate value
// override the caller-supplied default, per the context processing
// algorithm's step for determining propagation up front.
func effectivePropagate(entries []interface{}, propagate bool) bool {
	firstMap, isMap := entries[0].(map[string]interface{})
	if !isMap {
		return propagate
	}
	if propagateVal, found := firstMap["@propagate"]; found {
		if propagateBool, isBool := propagateVal.(bool); isBool {
			return propagateBool
		}
	}
	return propagate
}

// nullifyContext handles a null entry in a @context array: it resets to a
// fresh, empty active context, unless protected terms are present and the
// caller isn't allowed to override them (e.g. a property-scoped context).
func (c *ActiveContext) nullifyContext(result *ActiveContext, propagate, overrideProtected bool) (*ActiveContext, error) {
	if !overrideProtected && len(result.protected) != 0 {
		return nil, NewProcessingError(InvalidContextNullification,
			"tried to nullify a context with protected terms outside of a term definition.")
	}
	nullCtx := NewActiveContext(nil, c.options)
	if !propagate {
		nullCtx.previousContext = result
	}
	return nullCtx, nil
}

// resolveRemoteContextEntry dereferences a string @context entry, guarding
// against both a cycle (the same URI appearing twice in the chain) and an
// unbounded remote-context chain via maxRemoteContexts, then
// recursively parses the fetched document's own @context against result.
// It returns the advanced active context and the remote-contexts trail
// the caller should carry into subsequent entries.
func (c *ActiveContext) resolveRemoteContextEntry(result *ActiveContext, ref string, remoteContexts []string,
	overrideProtected bool) (*ActiveContext, []string, error) {

	uri := Resolve(result.values["@base"].(string), ref)

	for _, seen := range remoteContexts {
		if seen == uri {
			return nil, nil, NewProcessingError(ContextOverflow, uri)
		}
	}
	if len(remoteContexts) >= maxRemoteContexts {
		return nil, nil, NewProcessingError(ContextOverflow, uri)
	}
	remoteContexts = append(remoteContexts, uri)

	remoteContext, err := c.loadContextDocument(uri)
	if err != nil {
		return nil, nil, err
	}

	trail := make([]string, len(remoteContexts))
	copy(trail, remoteContexts)
	next, err := result.parse(remoteContext, trail, true, true, false, overrideProtected)
	if err != nil {
		return nil, nil, err
	}
	return next, remoteContexts, nil
}

// loadContextDocument dereferences uri and returns the value of its
// top-level @context member, failing if the document has none.
func (c *ActiveContext) loadContextDocument(uri string) (interface{}, error) {
	rd, err := c.options.DocumentLoader.LoadDocument(uri)
	if err != nil {
		return nil, NewProcessingError(LoadingRemoteContextFailed,
			fmt.Errorf("dereferencing a URL did not result in a valid JSON-LD context (%s): %w", uri, err))
	}
	docMap, isMap := rd.Document.(map[string]interface{})
	remoteContext, hasContextKey := docMap["@context"]
	if !isMap || !hasContextKey {
		return nil, NewProcessingError(InvalidRemoteContext, remoteContext)
	}
	return remoteContext, nil
}

// applyProcessingModeEntry resolves the effective processingMode for this
// context entry from an explicit @version (1.1 only, and only if it
// doesn't conflict with an already-1.0 base context) or the base
// context's own processingMode, recording the result on result.
func applyProcessingModeEntry(base, result *ActiveContext, contextMap map[string]interface{}) error {
	pm, hasProcessingMode := base.values["processingMode"]

	versionValue, versionPresent := contextMap["@version"]
	if versionPresent {
		if versionValue != 1.1 {
			return NewProcessingError(InvalidVersionValue, fmt.Sprintf("unsupported JSON-LD version: %s", versionValue))
		}
		if hasProcessingMode && pm.(string) == Mode10 {
			return NewProcessingError(ProcessingModeConflict, fmt.Sprintf("@version: %v not compatible with %s", versionValue, pm))
		}
		result.values["processingMode"] = Mode11
		result.values["@version"] = versionValue
	} else if !hasProcessingMode {
		result.values["processingMode"] = Mode10
	} else {
		result.values["processingMode"] = pm
	}
	return nil
}

// resolveImportEntry handles @import: when present, it dereferences the
// referenced context document and merges contextMap's own entries over
// top of it (the local entries win), returning the merged map to process
// in place of contextMap. It is a no-op when @import is absent.
func (c *ActiveContext) resolveImportEntry(result *ActiveContext, contextMap map[string]interface{}) (map[string]interface{}, error) {
	importValue, importFound := contextMap["@import"]
	if !importFound {
		return contextMap, nil
	}

	if result.processingMode(1.0) {
		return nil, NewProcessingError(InvalidContextEntry, "@import may only be used in 1.1 mode")
	}
	importStr, isString := importValue.(string)
	if !isString {
		return nil, NewProcessingError(InvalidImportValue, "@import must be a string")
	}
	uri := Resolve(result.values["@base"].(string), importStr)

	importedContext, err := c.loadContextDocument(uri)
	if err != nil {
		return nil, err
	}

	importedMap, isMap := importedContext.(map[string]interface{})
	if !isMap {
		return nil, NewProcessingError(InvalidRemoteContext, fmt.Sprintf("%s must be an object", importStr))
	}
	if _, found := importedMap["@import"]; found {
		return nil, NewProcessingError(InvalidContextEntry,
			fmt.Sprintf("%s must not include @import entry", importStr))
	}

	for k, v := range contextMap {
		importedMap[k] = v
	}
	return importedMap, nil
}

// applyBaseEntry resolves @base against the current base IRI, unless this
// call is processing a remote context, whose @base entry is ignored.
func applyBaseEntry(result *ActiveContext, contextMap map[string]interface{}, parsingARemoteContext bool) error {
	baseValue, basePresent := contextMap["@base"]
	if parsingARemoteContext || !basePresent {
		return nil
	}

	if baseValue == nil {
		delete(result.values, "@base")
		return nil
	}
	baseString, isString := baseValue.(string)
	if !isString {
		return NewProcessingError(InvalidBaseIRI, "the value of @base in a @context must be a string or null")
	}
	if IsAbsoluteIri(baseString) {
		result.values["@base"] = baseValue
		return nil
	}
	baseURI := result.values["@base"].(string)
	if !IsAbsoluteIri(baseURI) {
		return NewProcessingError(InvalidBaseIRI, baseURI)
	}
	result.values["@base"] = Resolve(baseURI, baseString)
	return nil
}

func applyLanguageEntry(result *ActiveContext, contextMap map[string]interface{}) error {
	languageValue, languagePresent := contextMap["@language"]
	if !languagePresent {
		return nil
	}
	if languageValue == nil {
		delete(result.values, "@language")
		return nil
	}
	languageString, isString := languageValue.(string)
	if !isString {
		return NewProcessingError(InvalidDefaultLanguage, languageValue)
	}
	result.values["@language"] = strings.ToLower(languageString)
	return nil
}

func applyDirectionEntry(result *ActiveContext, contextMap map[string]interface{}) error {
	directionValue, directionPresent := contextMap["@direction"]
	if !directionPresent {
		return nil
	}
	if directionValue == nil {
		delete(result.values, "@direction")
		return nil
	}
	directionString, isString := directionValue.(string)
	if !isString || (directionString != "rtl" && directionString != "ltr") {
		return NewProcessingError(InvalidBaseDirection, directionValue)
	}
	result.values["@direction"] = strings.ToLower(directionString)
	return nil
}

// definePropagateAndProtectedFlags validates @propagate (error-checking
// only; the value itself was already consulted by effectivePropagate) and
// determines whether this context entry marks all of its term
// definitions @protected, returning the "defined" bookkeeping map that
// createTermDefinition uses to detect cycles and re-entrant definitions.
func (c *ActiveContext) definePropagateAndProtectedFlags(contextMap map[string]interface{}, protected bool) (map[string]bool, error) {
	defined := make(map[string]bool)

	if propagateValue, propagatePresent := contextMap["@propagate"]; propagatePresent {
		if c.processingMode(1.0) {
			return nil, NewProcessingError(InvalidContextEntry,
				fmt.Sprintf("@propagate not compatible with %s", c.values["processingMode"]))
		}
		if _, isBool := propagateValue.(bool); !isBool {
			return nil, NewProcessingError(InvalidPropagateValue, "@propagate value must be a boolean")
		}
		defined["@propagate"] = true
	}

	if protectedVal, protectedPresent := contextMap["@protected"]; protectedPresent {
		defined["@protected"] = protectedVal.(bool)
	} else if protected {
		defined["@protected"] = true
	}

	return defined, nil
}

func applyVocabEntry(base, result *ActiveContext, contextMap map[string]interface{}) error {
	vocabValue, vocabPresent := contextMap["@vocab"]
	if !vocabPresent {
		return nil
	}
	if vocabValue == nil {
		delete(result.values, "@vocab")
		return nil
	}
	vocabString, isString := vocabValue.(string)
	if !isString {
		return NewProcessingError(InvalidVocabMapping, "@vocab must be a string or null")
	}
	if !IsAbsoluteIri(vocabString) && base.processingMode(1.0) {
		return NewProcessingError(InvalidVocabMapping, "@vocab must be an absolute IRI in 1.0 mode")
	}
	expandedVocab, err := result.ExpandIri(vocabString, true, true, nil, nil)
	if err != nil {
		return err
	}
	result.values["@vocab"] = expandedVocab
	return nil
}

// CompactValue performs value compaction on an object with @value or @id as the only property.
// See https://www.w3.org/TR/2019/CR-json-ld11-api-20191212/#value-compaction
func (c *ActiveContext) CompactValue(activeProperty string, value map[string]interface{}) (interface{}, error) {

	// 1
	var result interface{} = value

	// 2
	language := c.GetLanguageMapping(activeProperty)

	// 3
	direction := c.GetDirectionMapping(activeProperty)

	isIndexContainer := c.HasContainerMapping(activeProperty, "@index")
	// whether or not the value has an @index that must be preserved
	_, hasIndex := value["@index"]
	idVal, hasID := value["@id"]
	typeVal, hasType := value["@type"]
	//preserveIndex := hasIndex && !isIndexContainer

	idOrIndex := true
	for k := range value {
		if k != "@id" && k != "@index" {
			idOrIndex = false
			break
		}
	}

	propType := c.GetTermDefinition(activeProperty)["@type"]

	languageVal := value["@language"]
	directionVal := value["@direction"]
	var err error

	if hasID && idOrIndex { // 4
		if propType == "@id" { // 4.1
			result, err = c.CompactIri(idVal.(string), nil, false, false)
			if err != nil {
				return nil, err
			}
		} else if propType == "@vocab" { // 4.2
			result, err = c.CompactIri(idVal.(string), nil, true, false)
			if err != nil {
				return nil, err
			}
		} else {
			compactedID, err := c.CompactIri("@id", nil, true, false)
			if err != nil {
				return nil, err
			}
			compactedValue, err := c.CompactIri(idVal.(string), nil, false, false)
			if err != nil {
				return nil, err
			}
			result = map[string]interface{}{
				compactedID: compactedValue,
			}
		}
	} else if hasType && typeVal == propType { // 5
		// compact common datatype
		result = value["@value"]
	} else if propType == "@none" || (hasType && typeVal != propType) { // 6
		// use original expanded value
		result = value
	} else if _, isString := value["@value"].(string); !isString && ((hasIndex && isIndexContainer) || !hasIndex) { // 7   // && hasIndex && isIndexContainer
		result = value["@value"]
		//if hasIndex && isIndexContainer {
		//	result = value["@value"]
		//}
	} else if (languageVal == language) && directionVal == direction { // 8
		// compact language and direction
		if (hasIndex && isIndexContainer) || !hasIndex {
			result = value["@value"]

			return result, nil
		}
	}

	resultMap, isMap := result.(map[string]interface{})
	if isMap && resultMap["@type"] != nil && value["@type"] != "@json" { // 6.1

		// create a copy of result (because it can be the same map as 'value'
		newMap := make(map[string]interface{}, len(resultMap))
		for k, v := range resultMap {
			newMap[k] = v
		}

		// compact values of @type
		if tt, isArray := newMap["@type"].([]interface{}); isArray {
			newTT := make([]interface{}, len(tt))
			for i, t := range tt {
				newTT[i], err = c.CompactIri(t.(string), nil, true, false)
				if err != nil {
					return nil, err
				}
			}
			newMap["@type"] = newTT
		} else {
			newMap["@type"], err = c.CompactIri(newMap["@type"].(string), nil, true, false)
			if err != nil {
				return nil, err
			}
		}

		result = newMap
	}

	// 9
	resultMap, isMap = result.(map[string]interface{})
	if isMap {
		newMap := make(map[string]interface{}, len(resultMap))
		for k, v := range resultMap {
			if k == "@index" && !(hasIndex && !isIndexContainer) {
				//// don't preserve @index
				continue
			}
			keyAlias, err := c.CompactIri(k, nil, true, false)
			if err != nil {
				return nil, err
			}
			newMap[keyAlias] = v
		}

		result = newMap
	}

	return result, nil
}

// processingMode returns true if the given version is compatible with the current processing mode
func (c *ActiveContext) processingMode(version float64) bool {
	mode, hasMode := c.values["processingMode"]
	if version >= 1.1 {
		if hasMode {
			return mode.(string) >= fmt.Sprintf("json-ld-%v", version)
		} else {
			return false
		}
	} else {
		if hasMode {
			return mode.(string) == Mode10
		} else {
			return true
		}
	}
}

// termSpec is the normalized form of a raw @context entry for one term:
// always a map, with simpleTerm recording whether the raw entry was a bare
// string shorthand for {"@id": ...} (which affects the later _prefix
// heuristic).
type termSpec struct {
	raw        map[string]interface{}
	simpleTerm bool
}

// normalizeTermEntry coerces a raw context entry (string shorthand, explicit
// map, or null/{"@id":null} removal marker) into a termSpec, or reports that
// term should be removed from the active context outright.
func normalizeTermEntry(value interface{}) (spec termSpec, remove bool, err error) {
	mapValue, isMap := value.(map[string]interface{})
	idValue, hasID := mapValue["@id"]
	if value == nil || (isMap && hasID && idValue == nil) {
		return termSpec{}, true, nil
	}
	if _, isString := value.(string); isString {
		return termSpec{raw: map[string]interface{}{"@id": value}, simpleTerm: true}, false, nil
	}
	if !isMap {
		return termSpec{}, false, NewProcessingError(InvalidTermDefinition, value)
	}
	return termSpec{raw: mapValue, simpleTerm: false}, false, nil
}

// rejectKeywordRedefinition enforces that only @type, and only in its
// narrow @container:@set/@protected-only form, may be redefined by a
// context; every other keyword redefinition is an error, and terms that
// merely look like reserved keywords (leading '@' but not a real one) are
// silently ignored rather than defined.
func (c *ActiveContext) rejectKeywordRedefinition(term string, value interface{}) (ignore bool, err error) {
	if !IsKeyword(term) {
		if ignoredKeywordPattern.MatchString(term) {
			return true, nil
		}
		return false, nil
	}
	vmap, isMap := value.(map[string]interface{})
	hasAllowedKeysOnly := true
	for k := range vmap {
		if k != "@container" && k != "@protected" {
			hasAllowedKeysOnly = false
			break
		}
	}
	isSet := isMap && (vmap["@container"] == "@set" || vmap["@container"] == nil)
	if c.processingMode(1.1) && term == "@type" && hasAllowedKeysOnly && isSet {
		return false, nil
	}
	return false, NewProcessingError(KeywordRedefinition, term)
}

// rejectUnknownDefinitionKeys validates that a term definition map contains
// only the keywords its processing mode allows.
func (c *ActiveContext) rejectUnknownDefinitionKeys(val map[string]interface{}) error {
	validKeys := map[string]bool{
		"@container": true,
		"@id":        true,
		"@language":  true,
		"@reverse":   true,
		"@type":      true,
	}
	if c.processingMode(1.1) {
		validKeys["@context"] = true
		validKeys["@direction"] = true
		validKeys["@index"] = true
		validKeys["@nest"] = true
		validKeys["@prefix"] = true
		validKeys["@protected"] = true
	}
	for k := range val {
		if _, isValid := validKeys[k]; !isValid {
			return NewProcessingError(InvalidTermDefinition, fmt.Sprintf("a term definition must not contain %s", k))
		}
	}
	return nil
}

// mapReverseProperty builds the IRI mapping for a term defined via
// @reverse, rejecting any @reverse term that also carries @id or @nest.
// A stop=true return (nil definition, no error) signals that reverseStr matched
// the "ignored, reserved for future use" pattern, so the caller should
// leave this term undefined and return from createTermDefinition early.
func (c *ActiveContext) mapReverseProperty(context map[string]interface{}, val map[string]interface{},
	defined map[string]bool) (definition map[string]interface{}, stop bool, err error) {

	reverseValue := val["@reverse"]
	if _, idPresent := val["@id"]; idPresent {
		return nil, false, NewProcessingError(InvalidReverseProperty, "an @reverse term definition must not contain @id.")
	}
	if _, nestPresent := val["@nest"]; nestPresent {
		return nil, false, NewProcessingError(InvalidReverseProperty, "an @reverse term definition must not contain @nest.")
	}
	reverseStr, isString := reverseValue.(string)
	if !isString {
		return nil, false, NewProcessingError(InvalidIRIMapping,
			fmt.Sprintf("expected string for @reverse value. got %v", reverseValue))
	}
	id, err := c.ExpandIri(reverseStr, false, true, context, defined)
	if err != nil {
		return nil, false, err
	}
	if !IsAbsoluteIri(id) {
		return nil, false, NewProcessingError(InvalidIRIMapping, fmt.Sprintf(
			"@context @reverse value must be an absolute IRI or a blank node identifier, got %s", id))
	}
	if ignoredKeywordPattern.MatchString(reverseStr) {
		return nil, true, nil
	}
	return map[string]interface{}{"@id": id, "@reverse": true}, false, nil
}

// mapExplicitID builds the IRI mapping for a term defined via @id (the
// common case), expanding idStr against context and computing the
// _prefix heuristic used later by CompactIri. It mutates defined to mark
// term as (temporarily) resolved while checking the term-as-IRI round trip,
// matching createTermDefinition's own re-entrant bookkeeping.
func (c *ActiveContext) mapExplicitID(context map[string]interface{}, term string, idValue interface{},
	termHasColon, simpleTerm bool, defined map[string]bool) (definition map[string]interface{}, stop bool, err error) {

	idStr, isString := idValue.(string)
	if !isString {
		return nil, false, NewProcessingError(InvalidIRIMapping, "expected value of @id to be a string")
	}
	if term == idStr {
		return map[string]interface{}{}, false, nil
	}
	if !IsKeyword(idStr) && ignoredKeywordPattern.MatchString(idStr) {
		return nil, true, nil
	}
	res, err := c.ExpandIri(idStr, false, true, context, defined)
	if err != nil {
		return nil, false, err
	}
	if !IsKeyword(res) && !IsAbsoluteIri(res) {
		return nil, false, NewProcessingError(InvalidIRIMapping,
			"resulting IRI mapping should be a keyword, absolute IRI or blank node")
	}
	if res == "@context" {
		return nil, false, NewProcessingError(InvalidKeywordAlias, "cannot alias @context")
	}
	definition = map[string]interface{}{"@id": res}

	if iriLikeTermPattern.MatchString(term) {
		defined[term] = true
		termIRI, err := c.ExpandIri(term, false, true, context, defined)
		if err != nil {
			return nil, false, err
		}
		if termIRI != res {
			return nil, false, NewProcessingError(InvalidIRIMapping,
				fmt.Sprintf("term %s expands to %s, not %s", term, termIRI, res))
		}
		delete(defined, term)
	}

	// NOTE: other JSON-LD implementations compute _prefix as
	// !termHasColon && regexExp.MatchString(res) && (simpleTerm || c.processingMode(1.0)),
	// but that form fails test https://json-ld.org/test-suite/tests/compact-manifest.jsonld#t0038.
	termHasSuffix := false
	if len(res) > 0 {
		switch res[len(res)-1] {
		case ':', '/', '?', '#', '[', ']', '@':
			termHasSuffix = true
		}
	}
	definition["_prefix"] = !termHasColon && termHasSuffix && (simpleTerm || c.processingMode(1.0))
	return definition, false, nil
}

// mapVocabOrPrefixID fills in definition["@id"] for a term whose spec gave
// no explicit @id/@reverse mapping, by expanding against a colon-prefix
// term (recursively defining the prefix first if needed), or the active
// @vocab, in that order.
func (c *ActiveContext) mapVocabOrPrefixID(context map[string]interface{}, term string, termHasColon bool,
	colIndex int, definition map[string]interface{}, defined map[string]bool, overrideProtected bool) error {

	if termHasColon {
		prefix := term[0:colIndex]
		if _, containsPrefix := context[prefix]; containsPrefix {
			if err := c.createTermDefinition(context, prefix, defined, overrideProtected); err != nil {
				return err
			}
		}
		if termDef, hasTermDef := c.termDefinitions[prefix]; hasTermDef {
			termDefMap, _ := termDef.(map[string]interface{})
			suffix := term[colIndex+1:]
			definition["@id"] = termDefMap["@id"].(string) + suffix
		} else {
			definition["@id"] = term
		}
		return nil
	}
	if vocabValue, containsVocab := c.values["@vocab"]; containsVocab {
		definition["@id"] = vocabValue.(string) + term
		return nil
	}
	if term != "@type" {
		return NewProcessingError(InvalidIRIMapping, "relative term definition without vocab mapping")
	}
	return nil
}

// mapTypeMapping resolves a term's @type entry to a full IRI (or one of the
// @id/@vocab/@json/@none keyword sentinels), enforcing that @json/@none
// require 1.1 processing mode.
func (c *ActiveContext) mapTypeMapping(context map[string]interface{}, term string, typeValue interface{},
	defined map[string]bool) (string, error) {

	typeStr, isString := typeValue.(string)
	if !isString {
		return "", NewProcessingError(InvalidTypeMapping, typeValue)
	}
	if (typeStr == "@json" || typeStr == "@none") && c.processingMode(1.0) {
		return "", NewProcessingError(InvalidTypeMapping,
			fmt.Sprintf("unknown mapping for @type: %s on term %s", typeStr, term))
	}
	if typeStr == "@id" || typeStr == "@vocab" || typeStr == "@json" || typeStr == "@none" {
		return typeStr, nil
	}
	expanded, err := c.ExpandIri(typeStr, false, true, context, defined)
	if err != nil {
		var procErr *ProcessingError
		if ok := errors.As(err, &procErr); !ok || procErr.Code != InvalidIRIMapping {
			return "", err
		}
		return "", NewProcessingError(InvalidTypeMapping, typeStr)
	}
	if !IsAbsoluteIri(expanded) {
		return "", NewProcessingError(InvalidTypeMapping, "an @context @type value must be an absolute IRI")
	}
	if strings.HasPrefix(expanded, "_:") {
		return "", NewProcessingError(InvalidTypeMapping, "an @context @type values must be an IRI, not a blank node identifier")
	}
	return expanded, nil
}

// mapContainerMapping validates and normalizes a term's @container entry,
// checking the combination rules (@set/@list exclusivity, @graph/@type
// companion restrictions, 1.0 vs 1.1 allowed values) and writing
// definition["@container"] (and, for @type, forcing definition["@id"]).
func (c *ActiveContext) mapContainerMapping(term string, containerVal interface{}, definition map[string]interface{}) error {
	containerArray, isArray := containerVal.([]interface{})
	var container []interface{}
	containerValueMap := make(map[string]bool)
	if isArray {
		container = make([]interface{}, 0)
		for _, v := range containerArray {
			container = append(container, v)
			containerValueMap[v.(string)] = true
		}
	} else {
		container = []interface{}{containerVal}
		containerValueMap[containerVal.(string)] = true
	}

	validContainers := map[string]bool{
		"@list":     true,
		"@set":      true,
		"@index":    true,
		"@language": true,
	}
	if c.processingMode(1.1) {
		validContainers["@graph"] = true
		validContainers["@id"] = true
		validContainers["@type"] = true

		if _, hasList := containerValueMap["@list"]; hasList && len(container) != 1 {
			return NewProcessingError(InvalidContainerMapping,
				"@context @container with @list must have no other values.")
		}

		if _, hasGraph := containerValueMap["@graph"]; hasGraph {
			validKeys := map[string]bool{"@graph": true, "@id": true, "@index": true, "@set": true}
			for key := range containerValueMap {
				if _, found := validKeys[key]; !found {
					return NewProcessingError(InvalidContainerMapping,
						"@context @container with @graph must have no other values other than @id, @index, and @set")
				}
			}
		} else {
			maxLen := 1
			if _, hasSet := containerValueMap["@set"]; hasSet {
				maxLen = 2
			}
			if len(container) > maxLen {
				return NewProcessingError(InvalidContainerMapping, "@set can only be combined with one more type")
			}
		}

		if _, hasType := containerValueMap["@type"]; hasType {
			if _, tdHasType := definition["@type"]; !tdHasType {
				definition["@type"] = "@id"
			}
			if definition["@type"] != "@id" && definition["@type"] != "@vocab" {
				return NewProcessingError(InvalidTypeMapping, "container: @type requires @type to be @id or @vocab")
			}
		}
	} else if _, isString := containerVal.(string); !isString {
		return NewProcessingError(InvalidContainerMapping, "@container must be a string")
	}

	for _, v := range container {
		if _, isValidContainer := validContainers[v.(string)]; !isValidContainer {
			allowedValues := make([]string, 0)
			for k := range validContainers {
				allowedValues = append(allowedValues, k)
			}
			return NewProcessingError(InvalidContainerMapping, fmt.Sprintf(
				"@context @container value must be one of the following: %q", allowedValues))
		}
	}

	_, hasSet := containerValueMap["@set"]
	_, hasList := containerValueMap["@list"]
	if hasSet && hasList {
		return NewProcessingError(InvalidContainerMapping, "@set not allowed with @list")
	}

	if reverseVal, hasReverse := definition["@reverse"]; hasReverse && reverseVal.(bool) {
		for key := range containerValueMap {
			if key != "@index" && key != "@set" {
				return NewProcessingError(InvalidReverseProperty,
					"@context @container value for an @reverse type definition must be @index or @set")
			}
		}
	}

	definition["@container"] = container
	if term == "@type" {
		definition["@id"] = "@type"
	}
	return nil
}

// mapRemainingEntries fills in the term definition's smaller, independent
// entries: @index, scoped @context, @language, @prefix, @direction and
// @nest, then rejects an @id that would alias @context or @preserve.
func mapRemainingEntries(term string, val map[string]interface{}, definition map[string]interface{}) error {
	if indexVal, hasIndex := val["@index"]; hasIndex {
		_, hasContainer := val["@container"]
		hasIndexContainer := false
		if containers, isArray := definition["@container"].([]interface{}); isArray {
			for _, ct := range containers {
				if ct == "@index" {
					hasIndexContainer = true
				}
			}
		}
		if !hasContainer || !hasIndexContainer {
			return NewProcessingError(InvalidTermDefinition,
				fmt.Sprintf("@index without @index in @container: %s on term %s", indexVal, term))
		}
		if indexStr, isString := indexVal.(string); !isString || strings.HasPrefix(indexStr, "@") {
			return NewProcessingError(InvalidTermDefinition,
				fmt.Sprintf("@index must expand to an IRI: %s on term %s", indexVal, term))
		}
		definition["@index"] = indexVal
	}

	if ctxVal, hasCtx := val["@context"]; hasCtx {
		definition["@context"] = ctxVal
	}

	_, hasType := val["@type"]
	if languageVal, hasLanguage := val["@language"]; hasLanguage && !hasType {
		if language, isString := languageVal.(string); isString {
			definition["@language"] = strings.ToLower(language)
		} else if languageVal == nil {
			definition["@language"] = nil
		} else {
			return NewProcessingError(InvalidLanguageMapping, "@language must be a string or null")
		}
	}

	if prefixVal, hasPrefix := val["@prefix"]; hasPrefix {
		if invalidPrefixPattern.MatchString(term) {
			return NewProcessingError(InvalidTermDefinition, "@prefix used on compact or relative IRI term")
		}
		prefix, isBool := prefixVal.(bool)
		if !isBool {
			return NewProcessingError(InvalidPrefixValue, "@context value for @prefix must be boolean")
		}
		if idVal, hasID := definition["@id"]; hasID && IsKeyword(idVal) {
			return NewProcessingError(InvalidTermDefinition, "keywords may not be used as prefixes")
		}
		definition["_prefix"] = prefix
	}

	if directionVal, hasDirection := val["@direction"]; hasDirection {
		if dir, isString := directionVal.(string); isString {
			definition["@direction"] = strings.ToLower(dir)
		} else if directionVal == nil {
			definition["@direction"] = nil
		} else {
			return NewProcessingError(InvalidBaseDirection,
				fmt.Sprintf("direction must be null, 'ltr', or 'rtl', was %s on term %s", directionVal, term))
		}
	}

	if nestVal, hasNest := val["@nest"]; hasNest {
		nest, isString := nestVal.(string)
		if !isString || (nest != "@nest" && nest[0] == '@') {
			return NewProcessingError(InvalidNestValue,
				"@context @nest value must be a string which is not a keyword other than @nest")
		}
		definition["@nest"] = nest
	}

	if id := definition["@id"]; id == "@context" || id == "@preserve" {
		return NewProcessingError(InvalidKeywordAlias, "@context and @preserve cannot be aliased")
	}
	return nil
}

// guardProtectedRedefinition enforces that a @protected term definition
// cannot be silently replaced: if the previous definition was protected and
// the caller isn't overriding that, the new definition must be identical to
// the old one, and is itself re-marked protected either way.
func (c *ActiveContext) guardProtectedRedefinition(term string, prevDefinition interface{}, definition map[string]interface{},
	overrideProtected bool) error {

	if prevDefinition == nil {
		return nil
	}
	prevDefMap := prevDefinition.(map[string]interface{})
	protectedVal, found := prevDefMap["protected"]
	if !found || !protectedVal.(bool) || overrideProtected {
		return nil
	}
	c.protected[term] = true
	definition["protected"] = true
	if !DeepCompare(prevDefinition, definition, false) {
		return NewProcessingError(ProtectedTermRedefinition, "invalid JSON-LD syntax; tried to redefine a protected term")
	}
	return nil
}

// createTermDefinition implements term definition creation: given a raw
// @context entry for term, it resolves the term's IRI mapping (via @id,
// @reverse, a colon prefix, or @vocab) plus its @type/@container/@language/
// @direction/@index/@nest/@prefix facets, and installs the result in
// c.termDefinitions. defined tracks which terms in this pass are fully
// resolved, partially resolved (re-entrant, for cycle detection) or not yet
// visited; protected term definitions may only be replaced with an
// identical definition unless overrideProtected is set.
func (c *ActiveContext) createTermDefinition(context map[string]interface{}, term string,
	defined map[string]bool, overrideProtected bool) error {

	if definedValue, inDefined := defined[term]; inDefined {
		if definedValue {
			return nil
		}
		return NewProcessingError(CyclicIRIMapping, term)
	}
	defined[term] = false

	spec, remove, err := normalizeTermEntry(context[term])
	if err != nil {
		return err
	}
	if remove {
		c.termDefinitions[term] = nil
		defined[term] = true
		return nil
	}

	if ignore, err := c.rejectKeywordRedefinition(term, context[term]); err != nil {
		return err
	} else if ignore {
		return nil
	}

	prevDefinition := c.termDefinitions[term]
	delete(c.termDefinitions, term)

	val := spec.raw
	if err := c.rejectUnknownDefinitionKeys(val); err != nil {
		return err
	}

	colIndex := strings.Index(term, ":")
	termHasColon := colIndex > 0

	var definition map[string]interface{}
	if _, hasReverse := val["@reverse"]; hasReverse {
		def, stop, err := c.mapReverseProperty(context, val, defined)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		definition = def
		definition["@reverse"] = true
	} else {
		definition = map[string]interface{}{"@reverse": false}
		if idValue, hasID := val["@id"]; hasID {
			def, stop, err := c.mapExplicitID(context, term, idValue, termHasColon, spec.simpleTerm, defined)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
			for k, v := range def {
				definition[k] = v
			}
		}
	}

	if _, hasID := definition["@id"]; !hasID {
		if err := c.mapVocabOrPrefixID(context, term, termHasColon, colIndex, definition, defined, overrideProtected); err != nil {
			return err
		}
	}

	valProtected, protectedFound := val["@protected"]
	if (protectedFound && valProtected.(bool)) || (defined["@protected"] && !(protectedFound && !valProtected.(bool))) {
		c.protected[term] = true
		definition["protected"] = true
	}
	defined[term] = true

	if typeValue, present := val["@type"]; present {
		typeStr, err := c.mapTypeMapping(context, term, typeValue, defined)
		if err != nil {
			return err
		}
		definition["@type"] = typeStr
	}

	if containerVal, hasContainer := val["@container"]; hasContainer {
		if err := c.mapContainerMapping(term, containerVal, definition); err != nil {
			return err
		}
	}

	if err := mapRemainingEntries(term, val, definition); err != nil {
		return err
	}

	if err := c.guardProtectedRedefinition(term, prevDefinition, definition, overrideProtected); err != nil {
		return err
	}

	c.termDefinitions[term] = definition
	return nil
}

// RevertToPreviousContext reverts any type-scoped context in this active context to the previous context.
func (c *ActiveContext) RevertToPreviousContext() *ActiveContext {
	if c.previousContext == nil {
		return c
	} else {
		return CopyContext(c.previousContext)
	}
}

// ExpandIri expands a string value to a full IRI.
//
// The string may be a term, a prefix, a relative IRI, or an absolute IRI.
// The associated absolute IRI will be returned.
//
// value: the string value to expand.
// relative: true to resolve IRIs against the base IRI, false not to.
// vocab: true to concatenate after @vocab, false not to.
// context: the local context being processed (only given if called during context processing).
// defined: a map for tracking cycles in context definitions (only given if called during context processing).
func (c *ActiveContext) ExpandIri(value string, relative bool, vocab bool, context map[string]interface{},
	defined map[string]bool) (string, error) {
	// 1)
	if IsKeyword(value) {
		return value, nil
	}

	if !IsKeyword(value) && ignoredKeywordPattern.MatchString(value) {
		return "", nil
	}

	// 2)
	if context != nil {
		if _, containsKey := context[value]; containsKey && !defined[value] {
			if err := c.createTermDefinition(context, value, defined, false); err != nil {
				return "", err
			}
		}
	}
	// 3)
	if termDef, hasTermDef := c.termDefinitions[value]; vocab && hasTermDef {
		termDefMap, isMap := termDef.(map[string]interface{})
		if isMap && termDefMap != nil {
			return termDefMap["@id"].(string), nil
		}

		return "", nil
	}

	// 4)
	// check if value contains a colon (`:`) anywhere but as the first character
	colIndex := strings.Index(value, ":")
	if colIndex > 0 {
		// 4.1)
		prefix := value[0:colIndex]
		suffix := value[colIndex+1:]
		// 4.2)
		if prefix == "_" || strings.HasPrefix(suffix, "//") {
			return value, nil
		}
		// 4.3)
		if context != nil {
			if _, containsPrefix := context[prefix]; containsPrefix && !defined[prefix] {
				if err := c.createTermDefinition(context, prefix, defined, false); err != nil {
					return "", err
				}
			}
		}
		// 4.4)
		// If active context contains a term definition for prefix, return the result of concatenating
		// the IRI mapping associated with prefix and suffix.
		termDef, hasPrefix := c.termDefinitions[prefix]
		if hasPrefix && termDef.(map[string]interface{})["@id"] != "" && termDef.(map[string]interface{})["_prefix"].(bool) {
			termDefMap := termDef.(map[string]interface{})
			return termDefMap["@id"].(string) + suffix, nil
		} else if IsAbsoluteIri(value) {
			// Otherwise, if the value has the form of an absolute IRI, return it
			return value, nil
		}
		// Otherwise, it is a relative IRI
	}

	// 5)
	if vocabValue, containsVocab := c.values["@vocab"]; vocab && containsVocab {
		return vocabValue.(string) + value, nil
	} else if relative {
		// 6)
		baseValue, hasBase := c.values["@base"]
		var base string
		if hasBase {
			base = baseValue.(string)
		} else {
			base = ""
		}
		return Resolve(base, value), nil
	} else if context != nil && IsRelativeIri(value) {
		return "", NewProcessingError(InvalidIRIMapping, "not an absolute IRI: "+value)
	}
	// 7)
	return value, nil
}

// CompactIri compacts an IRI or keyword into a term or CURIE if it can be.
// If the IRI has an associated value it may be passed.
//
// iri: the IRI to compact.
// value: the value to check or None.
// relativeToVocab: true to compact using @vocab if available, false not to.
// reverse: true if a reverse property is being compacted, false if not.
//
// Returns the compacted term, prefix, keyword alias, or original IRI.
func (c *ActiveContext) CompactIri(iri string, value interface{}, relativeToVocab bool, reverse bool) (string, error) {
	// 1)
	if iri == "" {
		return "", nil
	}

	inverseCtx := c.GetInverse()

	// term is a keyword, force relativeToVocab to True
	if IsKeyword(iri) {
		// look for an alias
		if v, found := inverseCtx[iri]; found {
			if v, found = v.(map[string]interface{})["@none"]; found {
				if v, found = v.(map[string]interface{})["@type"]; found {
					if v, found = v.(map[string]interface{})["@none"]; found {
						return v.(string), nil
					}
				}
			}
		}
		relativeToVocab = true
	}

	// 2)
	if relativeToVocab {
		if _, containsIRI := inverseCtx[iri]; containsIRI {
			var defaultLanguage string
			langVal, hasLang := c.values["@language"]
			if dir, dirFound := c.values["@direction"]; dirFound {
				defaultLanguage = fmt.Sprintf("%s_%s", langVal, dir)
			} else {
				if hasLang {
					defaultLanguage = langVal.(string)
				} else {
					defaultLanguage = "@none"
				}
			}

			// 2.2)

			// prefer @index if available in value
			containers := make([]string, 0)

			valueMap, isObject := value.(map[string]interface{})
			if isObject {

				_, hasIndex := valueMap["@index"]
				_, hasGraph := valueMap["@graph"]
				if hasIndex && !hasGraph {
					containers = append(containers, "@index", "@index@set")
				}

				// if value is a preserve object, use its value
				if pv, hasPreserve := valueMap["@preserve"]; hasPreserve {
					value = pv.([]interface{})[0]
					valueMap, isObject = value.(map[string]interface{})
				}
			}

			// prefer most specific container including @graph
			if IsGraph(value) {

				_, hasIndex := valueMap["@index"]
				_, hasID := valueMap["@id"]

				if hasIndex {
					containers = append(containers, "@graph@index", "@graph@index@set", "@index", "@index@set")
				}
				if hasID {
					containers = append(containers, "@graph@id", "@graph@id@set")
				}
				containers = append(containers, "@graph", "@graph@set", "@set")
				if !hasIndex {
					containers = append(containers, "@graph@index", "@graph@index@set", "@index", "@index@set")
				}
				if !hasID {
					containers = append(containers, "@graph@id", "@graph@id@set")
				}
			} else if isObject && !IsValue(value) {
				containers = append(containers, "@id", "@id@set", "@type", "@set@type")
			}

			// 2.3)

			// defaults for term selection based on type/language
			typeLanguage := "@language"
			typeLanguageValue := "@null"

			// 2.5)
			if reverse {
				typeLanguage = "@type"
				typeLanguageValue = "@reverse"
				containers = append(containers, "@set")
			} else if valueList, containsList := valueMap["@list"]; containsList {

				if _, containsIndex := valueMap["@index"]; !containsIndex {
					containers = append(containers, "@list")
				}

				list := valueList.([]interface{})

				var commonType string
				var commonLanguage string
				if len(list) == 0 {
					commonLanguage = defaultLanguage
					commonType = "@id"
				}

				for _, item := range list {
					// 2.6.4.1)
					itemLanguage := "@none"
					itemType := "@none"
					// 2.6.4.2)
					if IsValue(item) {
						// 2.6.4.2.1)
						itemMap := item.(map[string]interface{})
						dirVal, hasDir := itemMap["@direction"]
						langVal, hasLang := itemMap["@language"]
						if hasDir {
							if hasLang {
								itemLanguage = fmt.Sprintf("%s_%s", itemMap["@language"], dirVal)
							} else {
								itemLanguage = fmt.Sprintf("_%s", dirVal)
							}
						} else if hasLang {
							itemLanguage = langVal.(string)
						} else if typeVal, hasType := itemMap["@type"]; hasType {
							itemType = typeVal.(string)
						} else {
							itemLanguage = "@null"
						}
					} else {
						itemType = "@id"
					}

					if commonLanguage == "" {
						commonLanguage = itemLanguage
					} else if commonLanguage != itemLanguage && IsValue(item) {
						commonLanguage = "@none"
					}

					if commonType == "" {
						commonType = itemType
					} else if commonType != itemType {
						commonType = "@none"
					}

					if commonLanguage == "@none" && commonType == "@none" {
						break
					}
				}

				if commonLanguage == "" {
					commonLanguage = "@none"
				}

				if commonType == "" {
					commonType = "@none"
				}

				if commonType != "@none" {
					typeLanguage = "@type"
					typeLanguageValue = commonType
				} else {
					typeLanguageValue = commonLanguage
				}
			} else {
				// 2.7)
				// 2.7.1)
				if IsValue(value) {

					// 2.7.1.1)
					langVal, hasLang := valueMap["@language"]
					_, hasIndex := valueMap["@index"]
					if hasLang && !hasIndex {
						containers = append(containers, "@language", "@language@set")
						if dir, hasDir := valueMap["@direction"]; hasDir {
							typeLanguageValue = fmt.Sprintf("%s_%s", langVal, dir)
						} else {
							typeLanguageValue = langVal.(string)
						}
					} else if dir, hasDir := valueMap["@direction"]; hasDir && !hasIndex {
						typeLanguageValue = fmt.Sprintf("_%s", dir)
					} else if typeVal, hasType := valueMap["@type"]; hasType {
						// 2.7.1.2)
						typeLanguage = "@type"
						typeLanguageValue = typeVal.(string)
					}
				} else {
					// 2.7.2)
					typeLanguage = "@type"
					typeLanguageValue = "@id"
				}
				// 2.7.3)
				containers = append(containers, "@set")
			}
			// 2.8)
			containers = append(containers, "@none")

			// an index map can be used to index values using @none, so add as
			// a low priority
			if isObject {
				if _, hasIndex := valueMap["@index"]; !hasIndex {
					containers = append(containers, "@index", "@index@set")
				}
			}

			// values without type or language can use @language map
			if IsValue(value) && len(value.(map[string]interface{})) == 1 {
				containers = append(containers, "@language", "@language@set")
			}

			// 2.9)
			if typeLanguageValue == "" {
				typeLanguageValue = "@null"
			}
			// 2.10)
			preferredValues := make([]string, 0)
			// 2.11)

			// 2.12)
			idVal, hasID := valueMap["@id"]
			if (typeLanguageValue == "@reverse" || typeLanguageValue == "@id") && isObject && hasID {

				if typeLanguageValue == "@reverse" {
					preferredValues = append(preferredValues, "@reverse")
				}

				// 2.12.1)
				result, err := c.CompactIri(idVal.(string), nil, true, false)
				if err != nil {
					return "", err
				}
				resultVal, hasResult := c.termDefinitions[result]
				check := false
				if hasResult {
					resultIDVal, hasResultID := resultVal.(map[string]interface{})["@id"]
					check = hasResultID && idVal == resultIDVal
				}
				if check {
					preferredValues = append(preferredValues, "@vocab", "@id", "@none")
				} else {
					preferredValues = append(preferredValues, "@id", "@vocab", "@none")
				}
			} else {
				if valueList, containsList := valueMap["@list"]; containsList && valueList == nil {
					typeLanguage = "@any"
				}
				preferredValues = append(preferredValues, typeLanguageValue, "@none")
			}

			preferredValues = append(preferredValues, "@any")

			// if containers included `@language` and preferred_values includes something
			// of the form language-tag_direction, add just the _direction part, to select
			//terms that have that direction.
			for _, pv := range preferredValues {
				if idx := strings.LastIndex(pv, "_"); idx != -1 {
					preferredValues = append(preferredValues, pv[idx:])
				}
			}

			// 2.14)
			term := c.SelectTerm(iri, containers, typeLanguage, preferredValues)

			// 2.15)
			if term != "" {
				return term, nil
			}
		}

		// 3)
		if vocabVal, containsVocab := c.values["@vocab"]; containsVocab {
			// determine if vocab is a prefix of the iri
			vocab := vocabVal.(string)
			// 3.1)
			if strings.HasPrefix(iri, vocab) && iri != vocab {
				// use suffix as relative iri if it is not a term in the
				// active context
				suffix := iri[len(vocab):]
				if _, hasSuffix := c.termDefinitions[suffix]; !hasSuffix {
					return suffix, nil
				}
			}
		}
	}

	// 4)
	compactIRI := ""

	// 5)
	for term, termDefinitionVal := range c.termDefinitions {
		if termDefinitionVal == nil {
			continue
		}

		// 5.1)
		if strings.Contains(term, ":") {
			continue
		}

		// 5.2)
		termDefinition := termDefinitionVal.(map[string]interface{})
		idStr := termDefinition["@id"].(string)
		if iri == idStr || !strings.HasPrefix(iri, idStr) {
			continue
		}

		// 5.3)
		candidate := term + ":" + iri[len(idStr):]
		// 5.4)
		candidateVal, containsCandidate := c.termDefinitions[candidate]
		prefix, hasPrefix := termDefinition["_prefix"]
		if (compactIRI == "" || CompareShortestLeast(candidate, compactIRI)) && hasPrefix && prefix.(bool) &&
			(!containsCandidate ||
				(iri == candidateVal.(map[string]interface{})["@id"] && value == nil)) {
			compactIRI = candidate
		}
	}

	if compactIRI != "" {
		return compactIRI, nil
	}

	for term, td := range c.termDefinitions {
		if tdMap, isMap := td.(map[string]interface{}); isMap {
			prefix, hasPrefix := tdMap["_prefix"]
			if hasPrefix && prefix.(bool) && strings.HasPrefix(iri, term+":") {
				return "", NewProcessingError(IRIConfusedWithPrefix, fmt.Sprintf("Absolute IRI %s confused with prefix %s", iri, term))
			}
		}
	}

	if !relativeToVocab {
		return RemoveBase(c.values["@base"], iri), nil
	}

	return iri, nil
}

// GetPrefixes returns a map of potential RDF prefixes based on the JSON-LD Term Definitions
// in this context. No guarantees of the prefixes are given, beyond that it will not contain ":".
//
// onlyCommonPrefixes: If true, the result will not include "not so useful" prefixes, such as
// "term1": "http://example.com/term1", e.g. all IRIs will end with "/" or "#".
// If false, all potential prefixes are returned.
//
// Returns a map from prefix string to IRI string
func (c *ActiveContext) GetPrefixes(onlyCommonPrefixes bool) map[string]string {
	prefixes := make(map[string]string)

	for term, termDefinition := range c.termDefinitions {
		if strings.Contains(term, ":") {
			continue
		}
		if termDefinition == nil {
			continue
		}
		termDefinitionMap := termDefinition.(map[string]interface{})
		id := termDefinitionMap["@id"].(string)
		if id == "" {
			continue
		}
		if strings.HasPrefix(term, "@") || strings.HasPrefix(id, "@") {
			continue
		}
		if !onlyCommonPrefixes || strings.HasSuffix(id, "/") || strings.HasSuffix(id, "#") {
			prefixes[term] = id
		}
	}

	return prefixes
}

// GetInverse generates an inverse context for use in the compaction algorithm,
// if not already generated for the given active context.
// See http://www.w3.org/TR/json-ld-api/#inverse-context-creation for further details.
func (c *ActiveContext) GetInverse() map[string]interface{} {

	// lazily create inverse
	if c.inverse != nil {
		return c.inverse
	}

	// 1)
	c.inverse = make(map[string]interface{})

	// 2)
	defaultLanguage := "@none"
	langVal, hasLang := c.values["@language"]
	if hasLang {
		defaultLanguage = langVal.(string)
	}

	// create term selections for each mapping in the context, ordered by
	// shortest and then lexicographically least
	terms := GetKeys(c.termDefinitions)
	sort.Sort(ShortestLeast(terms))

	for _, term := range terms {
		definitionVal := c.termDefinitions[term]
		// 3.1)
		if definitionVal == nil {
			continue
		}
		definition := definitionVal.(map[string]interface{})

		// 3.2)
		var containerJoin string // this implementation was adapted from pyLD
		containerVal, present := definition["@container"]
		if !present {
			containerJoin = "@none" // see Ruby, as_set?
		} else {
			container := containerVal.([]interface{})
			strList := make([]string, 0, len(container))
			for _, c := range container {
				strList = append(strList, c.(string))
			}
			sort.Strings(strList)
			containerJoin = strings.Join(strList, "")
		}

		// 3.3)
		iri := definition["@id"].(string)

		// 3.4 + 3.5)
		var containerMap map[string]interface{}
		containerMapVal, present := c.inverse[iri]
		if !present {
			containerMap = make(map[string]interface{})
			c.inverse[iri] = containerMap
		} else {
			containerMap = containerMapVal.(map[string]interface{})
		}

		// 3.6 + 3.7)
		var typeLanguageMap map[string]interface{}
		typeLanguageMapVal, present := containerMap[containerJoin]
		if !present {
			typeLanguageMap = make(map[string]interface{})
			typeLanguageMap["@language"] = make(map[string]interface{})
			typeLanguageMap["@type"] = make(map[string]interface{})
			typeLanguageMap["@any"] = map[string]interface{}{
				"@none": term,
			}
			containerMap[containerJoin] = typeLanguageMap
		} else {
			typeLanguageMap = typeLanguageMapVal.(map[string]interface{})
		}

		langVal, hasLang := definition["@language"]
		dirVal, hasDir := definition["@direction"]
		typeVal, hasType := definition["@type"]

		// 3.8)
		if reverseVal, hasValue := definition["@reverse"]; hasValue && reverseVal.(bool) {
			typeMap := typeLanguageMap["@type"].(map[string]interface{})
			if _, hasValue := typeMap["@reverse"]; !hasValue {
				typeMap["@reverse"] = term
			}
		} else if hasType && typeVal == "@none" {
			typeMap := typeLanguageMap["@type"].(map[string]interface{})
			if _, hasAny := typeMap["@any"]; !hasAny {
				typeMap["@any"] = term
			}
			languageMap := typeLanguageMap["@language"].(map[string]interface{})
			if _, hasAny := languageMap["@any"]; !hasAny {
				languageMap["@any"] = term
			}
			anyMap := typeLanguageMap["@any"].(map[string]interface{})
			if _, hasAny := anyMap["@any"]; !hasAny {
				anyMap["@any"] = term
			}
		} else if hasType {
			typeMap := typeLanguageMap["@type"].(map[string]interface{})
			if _, hasValue := typeMap["@type"]; !hasValue {
				typeMap[typeVal.(string)] = term
			}
		} else if hasLang && hasDir {
			languageMap := typeLanguageMap["@language"].(map[string]interface{})
			langDir := "@null"

			if langVal != nil && dirVal != nil {
				langDir = fmt.Sprintf("%s_%s", langVal.(string), dirVal.(string))
			} else if langVal != nil {
				langDir = langVal.(string)
			} else if dirVal != nil {
				langDir = "_" + dirVal.(string)
			}
			if _, hasLang := languageMap[langDir]; !hasLang {
				languageMap[langDir] = term
			}
		} else if hasLang {
			languageMap := typeLanguageMap["@language"].(map[string]interface{})
			language := "@null"
			if langVal != nil {
				language = langVal.(string)
			}
			if _, hasLang := languageMap[language]; !hasLang {
				languageMap[language] = term
			}
		} else if hasDir {
			languageMap := typeLanguageMap["@language"].(map[string]interface{})
			dir := "@none"
			if dirVal != nil {
				dir = "_" + dirVal.(string)
			}
			if _, hasLang := languageMap[dir]; !hasLang {
				languageMap[dir] = term
			}
		} else if defDir, found := c.values["@direction"]; found {
			languageMap := typeLanguageMap["@language"].(map[string]interface{})
			typeMap := typeLanguageMap["@type"].(map[string]interface{})
			var langDir string
			if hasLang {
				// does this ever happen? There is a check above for hasLang
				langDir = fmt.Sprintf("%s_%s", langVal.(string), defDir.(string))
			} else {
				langDir = "_" + defDir.(string)
			}
			if _, hasLang := languageMap[langDir]; !hasLang {
				languageMap[langDir] = term
			}
			if _, found := languageMap["@none"]; !found {
				languageMap["@none"] = term
			}
			if _, found := typeMap["@none"]; !found {
				typeMap["@none"] = term
			}
		} else {
			// 3.11.1)
			languageMap := typeLanguageMap["@language"].(map[string]interface{})
			// 3.11.2)
			if _, hasLang := languageMap[defaultLanguage]; !hasLang {
				languageMap[defaultLanguage] = term
			}
			// 3.11.3)
			if _, hasNone := languageMap["@none"]; !hasNone {
				languageMap["@none"] = term
			}
			// 3.11.4)
			typeMap := typeLanguageMap["@type"].(map[string]interface{})
			// 3.11.5)
			if _, hasNone := typeMap["@none"]; !hasNone {
				typeMap["@none"] = term
			}
		}
	}

	// 4)
	return c.inverse
}

// SelectTerm picks the preferred compaction term from the inverse context entry.
// See http://www.w3.org/TR/json-ld-api/#term-selection
//
// This algorithm, invoked via the IRI Compaction algorithm, makes use of an
// active context's inverse context to find the term that is best used to
// compact an IRI. Other information about a value associated with the IRI
// is given, including which container mappings and which type mapping or
// language mapping would be best used to express the value.
func (c *ActiveContext) SelectTerm(iri string, containers []string, typeLanguage string, preferredValues []string) string {
	inv := c.GetInverse()
	// 1)
	containerMap := inv[iri].(map[string]interface{})
	// 2)
	for _, container := range containers {
		// 2.1)
		containerVal, hasContainer := containerMap[container]
		if !hasContainer {
			continue
		}
		// 2.2)
		typeLanguageMap := containerVal.(map[string]interface{})
		// 2.3)
		valueMap := typeLanguageMap[typeLanguage].(map[string]interface{})

		// 2.4 )
		for _, item := range preferredValues {
			// 2.4.1
			itemVal, containsItem := valueMap[item]
			if !containsItem {
				continue
			}
			// 2.4.2
			return itemVal.(string)
		}
	}
	// 3)
	return ""
}

// GetContainer retrieves container mapping for the given property.
func (c *ActiveContext) GetContainer(property string) []interface{} {
	propertyMap, isMap := c.termDefinitions[property].(map[string]interface{})
	if isMap {
		if container, hasContainer := propertyMap["@container"]; hasContainer {
			return container.([]interface{})
		}
	}

	return []interface{}{}
}

// HasContainerMapping reports whether the container mapping for the given
// property includes val.
func (c *ActiveContext) HasContainerMapping(property string, val string) bool {
	propertyMap, isMap := c.termDefinitions[property].(map[string]interface{})
	if isMap {
		if container, hasContainer := propertyMap["@container"]; hasContainer {
			for _, container := range container.([]interface{}) {
				if container == val {
					return true
				}
			}
		}
	}

	return false
}

// IsReverseProperty returns true if the given property is a reverse property
func (c *ActiveContext) IsReverseProperty(property string) bool {
	td := c.GetTermDefinition(property)
	if td == nil {
		return false
	}
	reverse, containsReverse := td["@reverse"]
	return containsReverse && reverse.(bool)
}

// GetTypeMapping returns type mapping for the given property
func (c *ActiveContext) GetTypeMapping(property string) string {
	rval := ""
	if defaultLang, hasDefault := c.values["@type"]; hasDefault {
		rval = defaultLang.(string)
	}

	td := c.GetTermDefinition(property)
	if td != nil {
		if val, contains := td["@type"]; contains && val != nil {
			return val.(string)
		}
	}

	return rval
}

// GetLanguageMapping returns language mapping for the given property
func (c *ActiveContext) GetLanguageMapping(property string) interface{} {
	td := c.GetTermDefinition(property)
	if td != nil {
		if val, found := td["@language"]; found {
			return val
		}
	}

	if defaultLang, hasDefault := c.values["@language"]; hasDefault {
		return defaultLang
	}

	return nil
}

// GetDirectionMapping returns direction mapping for the given property
func (c *ActiveContext) GetDirectionMapping(property string) interface{} {
	td := c.GetTermDefinition(property)
	if td != nil {
		if val, found := td["@direction"]; found {
			return val
		}
	}

	if defaultDir, hasDefault := c.values["@direction"]; hasDefault {
		return defaultDir
	}

	return nil
}

// GetTermDefinition returns a term definition for the given key
func (c *ActiveContext) GetTermDefinition(key string) map[string]interface{} {
	value, _ := c.termDefinitions[key].(map[string]interface{})
	return value
}

// ExpandValue expands the given value by using the coercion and keyword rules in the context.
func (c *ActiveContext) ExpandValue(activeProperty string, value interface{}) (interface{}, error) {
	var rval = make(map[string]interface{})
	td := c.GetTermDefinition(activeProperty)

	// If the active property has a type mapping in active context that is @id, return a new JSON object
	// containing a single key-value pair where the key is @id and the value is the result of using
	// the IRI Expansion algorithm, passing active context, value, and true for document relative.
	if td != nil && td["@type"] == "@id" {
		if strVal, isString := value.(string); isString {
			var err error
			rval["@id"], err = c.ExpandIri(strVal, true, false, nil, nil)
			if err != nil {
				return nil, err
			}
		} else {
			rval["@value"] = value
		}
		return rval, nil
	}
	// If active property has a type mapping in active context that is @vocab, return a new JSON object
	// containing a single key-value pair where the key is @id and the value is the result of using
	// the IRI Expansion algorithm, passing active context, value, true for vocab, and true for document relative.
	if td != nil && td["@type"] == "@vocab" {
		if strVal, isString := value.(string); isString {
			var err error
			rval["@id"], err = c.ExpandIri(strVal, true, true, nil, nil)
			if err != nil {
				return nil, err
			}
		} else {
			rval["@value"] = value
		}
		return rval, nil
	}

	// 3)
	rval["@value"] = value
	// 4)
	if typeVal, containsType := td["@type"]; td != nil && containsType && typeVal != "@id" && typeVal != "@vocab" &&
		typeVal != "@none" {
		rval["@type"] = typeVal
	} else if _, isString := value.(string); isString {
		// 5.1)
		langVal, containsLang := td["@language"]
		if containsLang {
			if langVal != nil {
				rval["@language"] = langVal.(string)
			}
		} else if defaultLangVal, hasDefaultLang := c.values["@language"]; hasDefaultLang {
			rval["@language"] = defaultLangVal
		}
		dirVal, containsDir := td["@direction"]
		if containsDir {
			if dirVal != nil {
				rval["@direction"] = dirVal.(string)
			}
		} else if dirVal := c.values["@direction"]; dirVal != nil {
			rval["@direction"] = dirVal
		}
	}
	return rval, nil
}

// Serialize transforms the context back into JSON form.
func (c *ActiveContext) Serialize() (map[string]interface{}, error) {
	ctx := make(map[string]interface{})

	baseVal, hasBase := c.values["@base"]
	if hasBase && baseVal != c.options.Base {
		ctx["@base"] = baseVal
	}
	if versionVal, hasVersion := c.values["@version"]; hasVersion {
		ctx["@version"] = versionVal
	}
	if langVal, hasLang := c.values["@language"]; hasLang {
		ctx["@language"] = langVal
	}
	if dirVal, hasDir := c.values["@direction"]; hasDir {
		ctx["@direction"] = dirVal
	}
	if vocabVal, hasVocab := c.values["@vocab"]; hasVocab {
		ctx["@vocab"] = vocabVal
	}
	for term, definitionVal := range c.termDefinitions {
		// Note: definitionVal may be nil for terms which are set to be ignored
		// (see the definition for null value in JSON-LD spec)
		definition, _ := definitionVal.(map[string]interface{})
		langVal, hasLang := definition["@language"]
		containerVal, hasContainer := definition["@container"]
		typeMappingVal, hasType := definition["@type"]
		reverseVal, hasReverse := definition["@reverse"]
		if !hasLang && !hasContainer && !hasType && (!hasReverse || reverseVal == false) {
			var cid interface{}
			id, hasID := definition["@id"]
			if !hasID {
				cid = nil
				ctx[term] = cid
			} else if IsKeyword(id) {
				ctx[term] = id
			} else {
				var err error
				cid, err = c.CompactIri(id.(string), nil, false, false)
				if err != nil {
					return nil, err
				}
				if term == cid {
					ctx[term] = id
				} else {
					ctx[term] = cid
				}
				ctx[term] = cid
			}
		} else {
			defn := make(map[string]interface{})
			cid, err := c.CompactIri(definition["@id"].(string), nil, false, false)
			if err != nil {
				return nil, err
			}
			reverseProperty := reverseVal.(bool)
			if !(term == cid && !reverseProperty) {
				if reverseProperty {
					defn["@reverse"] = cid
				} else {
					defn["@id"] = cid
				}
			}
			if hasType {
				typeMapping := typeMappingVal.(string)
				if IsKeyword(typeMapping) {
					defn["@type"] = typeMapping
				} else {
					defn["@type"], err = c.CompactIri(typeMapping, nil, true, false)
					if err != nil {
						return nil, err
					}
				}
			}
			if hasContainer {
				if av, isArray := containerVal.([]string); isArray && len(av) == 1 {
					defn["@container"] = av[0]
				} else {
					defn["@container"] = containerVal
				}
			}
			if hasLang {
				if langVal == false {
					defn["@language"] = nil
				} else {
					defn["@language"] = langVal
				}
			}
			ctx[term] = defn
		}
	}

	rval := make(map[string]interface{})
	if len(ctx) != 0 {
		rval["@context"] = ctx
	}
	return rval, nil
}
