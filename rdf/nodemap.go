package rdf

// GenerateNodeMap implements the JSON-LD 1.0 Generate Node Map
// algorithm to a degree that is functionally sufficient for ToRDF
// materialization, not normatively exhaustive. It flattens expanded
// node objects into a map keyed by graph name, then by subject id,
// merging multiple occurrences of the same subject and replacing
// embedded node objects with @id references.
//
// This is hand-implemented rather than delegated to the third-party
// json-gold processor, because ToRDF must walk a concrete Go value
// that this package's own expansion produced.
func GenerateNodeMap(elements []Node, gen *BlankNodeGenerator) (map[string]map[string]Node, error) {
	nodeMap := map[string]map[string]Node{"@default": {}}
	for _, el := range elements {
		if err := nodeMapElement(nodeMap, "@default", el, "", "", nil, gen); err != nil {
			return nil, err
		}
	}
	return nodeMap, nil
}

func ensureGraph(nodeMap map[string]map[string]Node, graph string) map[string]Node {
	g, ok := nodeMap[graph]
	if !ok {
		g = map[string]Node{}
		nodeMap[graph] = g
	}
	return g
}

func ensureSubjectNode(graph map[string]Node, id string) Node {
	n, ok := graph[id]
	if !ok {
		n = Node{"@id": id}
		graph[id] = n
	}
	return n
}

func addPropertyValue(nodeMap map[string]map[string]Node, activeGraph, subject, property string, value interface{}) {
	graph := ensureGraph(nodeMap, activeGraph)
	node := ensureSubjectNode(graph, subject)
	existing, _ := node[property].([]interface{})
	node[property] = append(existing, value)
}

func appendUniqueType(arr []interface{}, v interface{}) []interface{} {
	for _, item := range arr {
		if item == v {
			return arr
		}
	}
	return append(arr, v)
}

// nodeMapElement processes a single expanded element, mirroring the
// real algorithm's case split on value object / list object / node
// object, with activeSubject == "" standing in for "no active
// subject" (the top-level call).
func nodeMapElement(nodeMap map[string]map[string]Node, activeGraph string, element interface{}, activeSubject, activeProperty string, listPtr *[]interface{}, gen *BlankNodeGenerator) error {
	switch v := element.(type) {
	case []interface{}:
		for _, item := range v {
			if err := nodeMapElement(nodeMap, activeGraph, item, activeSubject, activeProperty, listPtr, gen); err != nil {
				return err
			}
		}
		return nil

	case map[string]interface{}:
		if isValueObject(v) {
			if listPtr != nil {
				*listPtr = append(*listPtr, v)
				return nil
			}
			addPropertyValue(nodeMap, activeGraph, activeSubject, activeProperty, v)
			return nil
		}

		if isListObject(v) {
			items, _ := v["@list"].([]interface{})
			var result []interface{}
			for _, item := range items {
				if err := nodeMapElement(nodeMap, activeGraph, item, activeSubject, activeProperty, &result, gen); err != nil {
					return err
				}
			}
			listNode := map[string]interface{}{"@list": result}
			if listPtr != nil {
				*listPtr = append(*listPtr, listNode)
			} else {
				addPropertyValue(nodeMap, activeGraph, activeSubject, activeProperty, listNode)
			}
			return nil
		}

		return nodeMapNodeObject(nodeMap, activeGraph, v, activeSubject, activeProperty, listPtr, gen)

	default:
		return nil
	}
}

func nodeMapNodeObject(nodeMap map[string]map[string]Node, activeGraph string, v map[string]interface{}, activeSubject, activeProperty string, listPtr *[]interface{}, gen *BlankNodeGenerator) error {
	var id string
	if raw, ok := v["@id"]; ok {
		s, _ := raw.(string)
		if blankNodeID(s) {
			id = gen.IdentifierFor(s)
		} else {
			id = s
		}
	} else {
		id = gen.Next()
	}

	graph := ensureGraph(nodeMap, activeGraph)
	node := ensureSubjectNode(graph, id)

	if activeSubject != "" {
		ref := map[string]interface{}{"@id": id}
		if listPtr != nil {
			*listPtr = append(*listPtr, ref)
		} else {
			addPropertyValue(nodeMap, activeGraph, activeSubject, activeProperty, ref)
		}
	}

	if types, ok := v["@type"]; ok {
		existing, _ := node["@type"].([]interface{})
		for _, t := range wrapArray(types) {
			existing = appendUniqueType(existing, t)
		}
		node["@type"] = existing
	}

	if idxVal, ok := v["@index"]; ok {
		node["@index"] = idxVal
	}

	if rev, ok := v["@reverse"].(map[string]interface{}); ok {
		for _, property := range sortedKeys(rev) {
			for _, value := range wrapArray(rev[property]) {
				refMap, ok := value.(map[string]interface{})
				if !ok {
					continue
				}
				if err := nodeMapElement(nodeMap, activeGraph, refMap, "", "", nil, gen); err != nil {
					return err
				}
				referencedID, _ := refMap["@id"].(string)
				if referencedID == "" {
					continue
				}
				if blankNodeID(referencedID) {
					referencedID = gen.IdentifierFor(referencedID)
				}
				addPropertyValue(nodeMap, activeGraph, referencedID, property, map[string]interface{}{"@id": id})
			}
		}
	}

	if graphVal, ok := v["@graph"]; ok {
		for _, item := range wrapArray(graphVal) {
			if err := nodeMapElement(nodeMap, id, item, "", "", nil, gen); err != nil {
				return err
			}
		}
	}

	for _, property := range sortedKeys(v) {
		switch property {
		case "@id", "@type", "@reverse", "@graph", "@index":
			continue
		}
		for _, value := range wrapArray(v[property]) {
			if err := nodeMapElement(nodeMap, activeGraph, value, id, property, nil, gen); err != nil {
				return err
			}
		}
	}
	return nil
}
