package rdf

import (
	"sort"
	"strings"
)

// Node is an expanded JSON-LD node object: a mapping whose keys are
// absolute IRIs, blank node identifiers, or JSON-LD keywords.
type Node = map[string]interface{}

// Expand runs the JSON-LD 1.0 Expansion Algorithm over input: it
// returns a (possibly empty) sequence of node objects, never mutates
// input, and fails with an *ExpansionError carrying one of the
// ExpansionErrorCode values on malformed JSON-LD. An invalid @context
// and a done Options.Context produce plain errors without a code.
func Expand(input interface{}, opts Options) ([]Node, error) {
	active := NewActiveContext(opts)
	result, err := expandElement(active, "", input, opts, 0)
	if err != nil {
		return nil, err
	}
	switch v := result.(type) {
	case nil:
		return []Node{}, nil
	case []interface{}:
		return toNodeSlice(v), nil
	case map[string]interface{}:
		if len(v) == 1 {
			if g, ok := v["@graph"]; ok {
				if arr, ok := g.([]interface{}); ok {
					return toNodeSlice(arr), nil
				}
			}
		}
		return []Node{v}, nil
	default:
		return []Node{}, nil
	}
}

func toNodeSlice(items []interface{}) []Node {
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// expandElement is the single recursive function that drives
// expansion: it dispatches on element's Go type, covering the generic
// JSON value cases (null, scalar, array, object).
func expandElement(ctx ActiveContext, activeProperty string, element interface{}, opts Options, depth int) (interface{}, error) {
	select {
	case <-opts.ctx().Done():
		return nil, opts.ctx().Err()
	default:
	}

	switch v := element.(type) {
	case nil:
		return nil, nil
	case string, float64, bool, int, int64:
		if activeProperty == "" || activeProperty == "@graph" {
			return nil, nil
		}
		return ExpandValue(ctx, activeProperty, v)
	case []interface{}:
		return expandArray(ctx, activeProperty, v, opts, depth)
	case map[string]interface{}:
		return expandMap(ctx, activeProperty, v, opts, depth)
	default:
		return nil, nil
	}
}

func expandArray(ctx ActiveContext, activeProperty string, items []interface{}, opts Options, depth int) (interface{}, error) {
	def := ctx.TermDefs[activeProperty]
	listActive := activeProperty == "@list" || def.ContainerMapping == "@list"

	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		expandedItem, err := expandElement(ctx, activeProperty, item, opts, depth+1)
		if err != nil {
			return nil, err
		}
		if listActive {
			if _, ok := expandedItem.([]interface{}); ok {
				return nil, newExpansionError(ErrCodeListOfLists, activeProperty, item)
			}
			if isListObject(expandedItem) {
				return nil, newExpansionError(ErrCodeListOfLists, activeProperty, item)
			}
		}
		if expandedItem == nil {
			continue
		}
		if arr, ok := expandedItem.([]interface{}); ok {
			out = append(out, arr...)
		} else {
			out = append(out, expandedItem)
		}
	}
	return out, nil
}

func expandMap(ctx ActiveContext, activeProperty string, element map[string]interface{}, opts Options, depth int) (interface{}, error) {
	activeCtx := ctx
	if rawCtx, hasCtx := element["@context"]; hasCtx {
		updated, err := UpdateContext(ctx, rawCtx, opts, 0)
		if err != nil {
			return nil, err
		}
		activeCtx = updated
	}

	result := map[string]interface{}{}

	for _, key := range sortedKeys(element) {
		if key == "@context" {
			continue
		}
		rawValue := element[key]

		expandedProperty, ok := ExpandIRI(key, activeCtx, false, true)
		if !ok {
			continue
		}
		if !isKeyword(expandedProperty) && !blankNodeID(expandedProperty) && !strings.Contains(expandedProperty, ":") {
			continue
		}

		if isKeyword(expandedProperty) {
			if err := expandKeyword(activeCtx, activeProperty, expandedProperty, rawValue, opts, depth, result); err != nil {
				if err == errSkipKey {
					continue
				}
				return nil, err
			}
			continue
		}

		if err := expandTermProperty(activeCtx, activeProperty, key, expandedProperty, rawValue, opts, depth, result); err != nil {
			return nil, err
		}
	}

	return postProcessNode(activeProperty, result)
}

// errSkipKey is an internal sentinel meaning "this keyword produced
// nothing to record" (e.g. a free-floating @list), distinct from an
// error. It never escapes expandMap.
var errSkipKey = newSkipSentinel()

type skipSentinel struct{}

func (skipSentinel) Error() string { return "jsonld: internal skip sentinel" }

func newSkipSentinel() error { return skipSentinel{} }

func expandKeyword(ctx ActiveContext, activeProperty, expandedProperty string, rawValue interface{}, opts Options, depth int, result map[string]interface{}) error {
	if activeProperty == "@reverse" && expandedProperty != "@context" {
		return newExpansionError(ErrCodeInvalidReversePropertyMap, activeProperty, expandedProperty)
	}
	if _, exists := result[expandedProperty]; exists {
		return newExpansionError(ErrCodeCollidingKeywords, activeProperty, expandedProperty)
	}

	switch expandedProperty {
	case "@id":
		idStr, ok := rawValue.(string)
		if !ok {
			return newExpansionError(ErrCodeInvalidIdValue, activeProperty, rawValue)
		}
		expandedID, _ := ExpandIRI(idStr, ctx, true, false)
		result["@id"] = expandedID
		return nil

	case "@type":
		types, err := expandTypeValue(ctx, rawValue)
		if err != nil {
			return err
		}
		result["@type"] = types
		return nil

	case "@graph":
		expanded, err := expandElement(ctx, "@graph", rawValue, opts, depth+1)
		if err != nil {
			return err
		}
		result["@graph"] = wrapArray(expanded)
		return nil

	case "@value":
		if rawValue == nil {
			result["@value"] = nil
			return nil
		}
		if !scalar(rawValue) {
			return newExpansionError(ErrCodeInvalidValueObjectValue, activeProperty, rawValue)
		}
		result["@value"] = rawValue
		return nil

	case "@language":
		s, ok := rawValue.(string)
		if !ok {
			return newExpansionError(ErrCodeInvalidLanguageTaggedString, activeProperty, rawValue)
		}
		result["@language"] = strings.ToLower(s)
		return nil

	case "@index":
		s, ok := rawValue.(string)
		if !ok {
			return newExpansionError(ErrCodeInvalidIndexValue, activeProperty, rawValue)
		}
		result["@index"] = s
		return nil

	case "@list":
		if activeProperty == "" || activeProperty == "@graph" {
			return errSkipKey
		}
		expanded, err := expandElement(ctx, "@list", rawValue, opts, depth+1)
		if err != nil {
			return err
		}
		items := wrapArray(expanded)
		for _, item := range items {
			if isListObject(item) {
				return newExpansionError(ErrCodeListOfLists, activeProperty, item)
			}
		}
		result["@list"] = items
		return nil

	case "@set":
		expanded, err := expandElement(ctx, activeProperty, rawValue, opts, depth+1)
		if err != nil {
			return err
		}
		result["@set"] = wrapArray(expanded)
		return nil

	case "@reverse":
		m, ok := rawValue.(map[string]interface{})
		if !ok {
			return newExpansionError(ErrCodeInvalidReverseValue, activeProperty, rawValue)
		}
		expandedReverse, err := expandElement(ctx, "@reverse", m, opts, depth+1)
		if err != nil {
			return err
		}
		reverseObj, _ := expandedReverse.(map[string]interface{})
		if reverseObj == nil {
			return nil
		}
		if nested, hasNested := reverseObj["@reverse"]; hasNested {
			if nestedMap, ok := nested.(map[string]interface{}); ok {
				for _, k := range sortedKeys(nestedMap) {
					mergeProperty(result, k, wrapArray(nestedMap[k]))
				}
			}
		}
		for _, k := range sortedKeys(reverseObj) {
			if k == "@reverse" {
				continue
			}
			items := wrapArray(reverseObj[k])
			for _, item := range items {
				if isValueObject(item) || isListObject(item) {
					return newExpansionError(ErrCodeInvalidReversePropertyValue, activeProperty, item)
				}
			}
			mergeReverse(result, k, items)
		}
		return nil

	default:
		return errSkipKey
	}
}

func expandTermProperty(ctx ActiveContext, activeProperty, term, expandedProperty string, rawValue interface{}, opts Options, depth int, result map[string]interface{}) error {
	def := ctx.TermDefs[term]

	var expandedValue interface{}

	switch {
	case def.ContainerMapping == "@language":
		m, isMap := rawValue.(map[string]interface{})
		if !isMap {
			inner, err := expandElement(ctx, term, rawValue, opts, depth+1)
			if err != nil {
				return err
			}
			expandedValue = inner
			break
		}
		var items []interface{}
		for _, lang := range sortedKeys(m) {
			s, ok := m[lang].(string)
			if !ok {
				return newExpansionError(ErrCodeInvalidLanguageMapValue, activeProperty, m[lang])
			}
			items = append(items, map[string]interface{}{"@value": s, "@language": strings.ToLower(lang)})
		}
		expandedValue = items

	case def.ContainerMapping == "@index":
		m, isMap := rawValue.(map[string]interface{})
		if !isMap {
			inner, err := expandElement(ctx, term, rawValue, opts, depth+1)
			if err != nil {
				return err
			}
			expandedValue = inner
			break
		}
		var items []interface{}
		for _, idx := range sortedKeys(m) {
			expandedItem, err := expandElement(ctx, term, m[idx], opts, depth+1)
			if err != nil {
				return err
			}
			for _, it := range wrapArray(expandedItem) {
				if obj, ok := it.(map[string]interface{}); ok {
					if _, has := obj["@index"]; !has {
						obj["@index"] = idx
					}
				}
				items = append(items, it)
			}
		}
		expandedValue = items

	default:
		inner, err := expandElement(ctx, term, rawValue, opts, depth+1)
		if err != nil {
			return err
		}
		expandedValue = inner
	}

	if expandedValue == nil {
		return nil
	}

	if def.ContainerMapping == "@list" && !isListObject(expandedValue) {
		expandedValue = map[string]interface{}{"@list": wrapArray(expandedValue)}
	}

	items := wrapArray(expandedValue)

	if def.Reverse {
		for _, item := range items {
			if isValueObject(item) || isListObject(item) {
				return newExpansionError(ErrCodeInvalidReversePropertyValue, activeProperty, item)
			}
		}
		mergeReverse(result, expandedProperty, items)
	} else {
		mergeProperty(result, expandedProperty, items)
	}
	return nil
}

func expandTypeValue(ctx ActiveContext, raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case string:
		expanded, ok := ExpandIRI(v, ctx, true, true)
		if !ok {
			return nil, newExpansionError(ErrCodeInvalidTypeValue, "@type", raw)
		}
		return expanded, nil
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, newExpansionError(ErrCodeInvalidTypeValue, "@type", raw)
			}
			expanded, ok := ExpandIRI(s, ctx, true, true)
			if !ok {
				return nil, newExpansionError(ErrCodeInvalidTypeValue, "@type", raw)
			}
			out = append(out, expanded)
		}
		return out, nil
	default:
		return nil, newExpansionError(ErrCodeInvalidTypeValue, "@type", raw)
	}
}

func postProcessNode(activeProperty string, result map[string]interface{}) (interface{}, error) {
	if v, hasValue := result["@value"]; hasValue {
		for k := range result {
			switch k {
			case "@value", "@language", "@type", "@index":
			default:
				return nil, newExpansionError(ErrCodeInvalidValueObject, activeProperty, result)
			}
		}
		_, hasLang := result["@language"]
		_, hasType := result["@type"]
		if hasLang && hasType {
			return nil, newExpansionError(ErrCodeInvalidValueObject, activeProperty, result)
		}
		if v == nil {
			return nil, nil
		}
		if hasLang {
			if _, ok := v.(string); !ok {
				return nil, newExpansionError(ErrCodeInvalidLanguageTaggedValue, activeProperty, v)
			}
		}
		if hasType {
			typStr, ok := result["@type"].(string)
			if !ok || !absoluteIRI(typStr) {
				return nil, newExpansionError(ErrCodeInvalidTypedValue, activeProperty, result["@type"])
			}
		}
	} else if typ, hasType := result["@type"]; hasType {
		if _, ok := typ.([]interface{}); !ok {
			result["@type"] = []interface{}{typ}
		}
	} else if setVal, hasSet := result["@set"]; hasSet {
		for k := range result {
			if k != "@set" && k != "@index" {
				return nil, newExpansionError(ErrCodeInvalidSetOrListObject, activeProperty, result)
			}
		}
		return setVal, nil
	} else if _, hasList := result["@list"]; hasList {
		for k := range result {
			if k != "@list" && k != "@index" {
				return nil, newExpansionError(ErrCodeInvalidSetOrListObject, activeProperty, result)
			}
		}
	}

	if len(result) == 1 {
		if _, hasLangOnly := result["@language"]; hasLangOnly {
			return nil, nil
		}
	}

	if activeProperty == "" || activeProperty == "@graph" {
		if len(result) == 0 {
			return nil, nil
		}
		if _, hasValue := result["@value"]; hasValue {
			return nil, nil
		}
		if _, hasList := result["@list"]; hasList {
			return nil, nil
		}
		if len(result) == 1 {
			if _, hasID := result["@id"]; hasID {
				return nil, nil
			}
		}
	}

	return result, nil
}

// sortedKeys returns m's keys in lexicographic order, which expansion
// relies on for deterministic, reproducible output.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func wrapArray(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	if arr, ok := v.([]interface{}); ok {
		return arr
	}
	return []interface{}{v}
}

func isListObject(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	_, has := m["@list"]
	return has
}

func isValueObject(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	_, has := m["@value"]
	return has
}

func mergeProperty(result map[string]interface{}, key string, items []interface{}) {
	existing, _ := result[key].([]interface{})
	result[key] = append(existing, items...)
}

func mergeReverse(result map[string]interface{}, key string, items []interface{}) {
	reverse, _ := result["@reverse"].(map[string]interface{})
	if reverse == nil {
		reverse = map[string]interface{}{}
		result["@reverse"] = reverse
	}
	existing, _ := reverse[key].([]interface{})
	reverse[key] = append(existing, items...)
}
