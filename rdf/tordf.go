package rdf

import (
	"fmt"
	"sort"

	ld "github.com/piprate/json-gold/ld"
)

const rdfTypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
const rdfFirstIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
const rdfRestIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
const rdfNilIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
const rdfLangStringIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
const xsdStringIRI = "http://www.w3.org/2001/XMLSchema#string"
const xsdBooleanIRI = "http://www.w3.org/2001/XMLSchema#boolean"
const xsdIntegerIRI = "http://www.w3.org/2001/XMLSchema#integer"
const xsdDoubleIRI = "http://www.w3.org/2001/XMLSchema#double"

// ToRDF implements the Deserialize JSON-LD to RDF Algorithm: expand,
// generate a node map, then materialize the node map into an RDF
// dataset using json-gold's Quad/IRI/BlankNode/Literal types as the
// graph library. The dataset is built directly from the hand-written
// expansion and node map above, rather than delegated to json-gold's
// own processor.
func ToRDF(input interface{}, opts Options) (*ld.RDFDataset, error) {
	expanded, err := Expand(input, opts)
	if err != nil {
		return nil, err
	}

	gen := NewBlankNodeGenerator()
	nodeMap, err := GenerateNodeMap(expanded, gen)
	if err != nil {
		return nil, err
	}

	dataset := ld.NewRDFDataset()

	graphNames := make([]string, 0, len(nodeMap))
	for name := range nodeMap {
		graphNames = append(graphNames, name)
	}
	sort.Strings(graphNames)

	for _, graphName := range graphNames {
		if graphName != "@default" && relativeIRI(graphName) {
			continue
		}
		if err := graphToRDF(dataset, graphName, nodeMap[graphName], opts, gen); err != nil {
			return nil, err
		}
	}

	return dataset, nil
}

func graphToRDF(dataset *ld.RDFDataset, graphName string, subjects map[string]Node, opts Options, gen *BlankNodeGenerator) error {
	subjectIDs := make([]string, 0, len(subjects))
	for id := range subjects {
		subjectIDs = append(subjectIDs, id)
	}
	sort.Strings(subjectIDs)

	graphTerm := graphNodeFor(graphName)

	for _, subjectID := range subjectIDs {
		if relativeIRI(subjectID) {
			continue
		}
		node := subjects[subjectID]
		subjectTerm := subjectNodeFor(subjectID)

		for _, property := range sortedKeys(node) {
			switch property {
			case "@id", "@index":
				continue
			case "@type":
				for _, t := range wrapArray(node["@type"]) {
					typeIRI, ok := t.(string)
					if !ok {
						continue
					}
					addQuad(dataset, graphName, subjectTerm, ld.NewIRI(rdfTypeIRI), ld.NewIRI(typeIRI), graphTerm)
				}
				continue
			}

			if blankNodeID(property) && !opts.ProduceGeneralizedRdf {
				continue
			}
			if relativeIRI(property) {
				continue
			}
			predicateTerm := predicateNodeFor(property)

			values, _ := node[property].([]interface{})
			for _, value := range values {
				objTerm, err := objectToRDF(dataset, graphName, graphTerm, value, gen)
				if err != nil {
					return err
				}
				if objTerm == nil {
					continue
				}
				addQuad(dataset, graphName, subjectTerm, predicateTerm, objTerm, graphTerm)
			}
		}
	}
	return nil
}

func objectToRDF(dataset *ld.RDFDataset, graphName string, graphTerm ld.Node, value interface{}, gen *BlankNodeGenerator) (ld.Node, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	if id, ok := m["@id"].(string); ok {
		if relativeIRI(id) {
			return nil, nil
		}
		return subjectNodeFor(id), nil
	}

	if raw, hasValue := m["@value"]; hasValue {
		return literalToRDF(m, raw)
	}

	if items, hasList := m["@list"].([]interface{}); hasList {
		return listToRDF(dataset, graphName, graphTerm, items, gen)
	}

	return nil, nil
}

func literalToRDF(m map[string]interface{}, raw interface{}) (ld.Node, error) {
	if lang, hasLang := m["@language"].(string); hasLang {
		s, ok := raw.(string)
		if !ok {
			return nil, newExpansionError(ErrCodeInvalidLanguageTaggedValue, "", raw)
		}
		return ld.NewLiteral(s, rdfLangStringIRI, lang), nil
	}

	if datatype, hasType := m["@type"].(string); hasType {
		lexical, err := lexicalForm(raw, datatype)
		if err != nil {
			return nil, err
		}
		return ld.NewLiteral(lexical, datatype, ""), nil
	}

	switch v := raw.(type) {
	case string:
		return ld.NewLiteral(v, xsdStringIRI, ""), nil
	case bool:
		return ld.NewLiteral(CanonicalBoolean(v), xsdBooleanIRI, ""), nil
	case float64:
		if IsIntegerNumber(v) {
			return ld.NewLiteral(CanonicalInteger(v), xsdIntegerIRI, ""), nil
		}
		return ld.NewLiteral(CanonicalDouble(v), xsdDoubleIRI, ""), nil
	default:
		return ld.NewLiteral(fmt.Sprintf("%v", v), xsdStringIRI, ""), nil
	}
}

func lexicalForm(raw interface{}, datatype string) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return CanonicalBoolean(v), nil
	case float64:
		if datatype != xsdDoubleIRI && IsIntegerNumber(v) {
			return CanonicalInteger(v), nil
		}
		return CanonicalDouble(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// listToRDF builds the linked rdf:first/rdf:rest blank node chain an
// @list materializes to, returning the head term. Items that convert
// to no RDF term (such as relative IRIs) are dropped first; a list
// left empty materializes to rdf:nil with no triples.
func listToRDF(dataset *ld.RDFDataset, graphName string, graphTerm ld.Node, items []interface{}, gen *BlankNodeGenerator) (ld.Node, error) {
	var objects []ld.Node
	for _, item := range items {
		obj, err := objectToRDF(dataset, graphName, graphTerm, item, gen)
		if err != nil {
			return nil, err
		}
		if obj != nil {
			objects = append(objects, obj)
		}
	}
	if len(objects) == 0 {
		return ld.NewIRI(rdfNilIRI), nil
	}

	nodeIDs := make([]string, len(objects))
	for i := range objects {
		nodeIDs[i] = gen.Next()
	}

	for i, firstTerm := range objects {
		current := subjectNodeFor(nodeIDs[i])
		addQuad(dataset, graphName, current, ld.NewIRI(rdfFirstIRI), firstTerm, graphTerm)

		var restTerm ld.Node
		if i+1 < len(nodeIDs) {
			restTerm = subjectNodeFor(nodeIDs[i+1])
		} else {
			restTerm = ld.NewIRI(rdfNilIRI)
		}
		addQuad(dataset, graphName, current, ld.NewIRI(rdfRestIRI), restTerm, graphTerm)
	}

	return subjectNodeFor(nodeIDs[0]), nil
}

func subjectNodeFor(id string) ld.Node {
	if blankNodeID(id) {
		return ld.NewBlankNode(id[2:])
	}
	return ld.NewIRI(id)
}

func predicateNodeFor(id string) ld.Node {
	if blankNodeID(id) {
		return ld.NewBlankNode(id[2:])
	}
	return ld.NewIRI(id)
}

func graphNodeFor(name string) ld.Node {
	if name == "@default" {
		return nil
	}
	return subjectNodeFor(name)
}

func addQuad(dataset *ld.RDFDataset, graphName string, s, p, o, g ld.Node) {
	quad := ld.NewQuad(s, p, o, graphName)
	dataset.Graphs[graphName] = append(dataset.Graphs[graphName], quad)
}
