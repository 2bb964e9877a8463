package rdf

import (
	"fmt"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// DedupeQuads removes duplicate quads from dataset, per graph. Two
// quads are duplicates when subject, predicate, object, and graph all
// compare equal.
//
func DedupeQuads(dataset *ld.RDFDataset) {
	if dataset == nil {
		return
	}
	for graphName, quads := range dataset.Graphs {
		seen := map[string]struct{}{}
		out := make([]*ld.Quad, 0, len(quads))
		for _, quad := range quads {
			if quad == nil {
				continue
			}
			key := quadKey(quad, graphName)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, quad)
		}
		dataset.Graphs[graphName] = out
	}
}

func quadKey(quad *ld.Quad, graphName string) string {
	return strings.Join([]string{
		nodeKey(quad.Subject),
		nodeKey(quad.Predicate),
		nodeKey(quad.Object),
		graphName,
	}, "|")
}

func nodeKey(node ld.Node) string {
	if node == nil {
		return ""
	}
	if lit, ok := node.(ld.Literal); ok {
		return strings.Join([]string{lit.Value, lit.Datatype, lit.Language}, "::")
	}
	return node.GetValue()
}

// RelabelBlankNodes rewrites every blank node identifier in dataset to
// a dense _:b0, _:b1, … sequence assigned in lexicographic order of
// the identifiers ToRDF originally produced, for reproducible test
// fixtures.
func RelabelBlankNodes(dataset *ld.RDFDataset) {
	if dataset == nil {
		return
	}
	ids := map[string]struct{}{}
	for _, quads := range dataset.Graphs {
		for _, quad := range quads {
			collectBlankNodeID(ids, quad.Subject)
			collectBlankNodeID(ids, quad.Predicate)
			collectBlankNodeID(ids, quad.Object)
			collectBlankNodeID(ids, quad.Graph)
		}
	}
	if len(ids) == 0 {
		return
	}
	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)
	mapping := make(map[string]string, len(ordered))
	for i, id := range ordered {
		mapping[id] = fmt.Sprintf("b%d", i)
	}
	for _, quads := range dataset.Graphs {
		for _, quad := range quads {
			quad.Subject = remapBlankNode(quad.Subject, mapping)
			quad.Predicate = remapBlankNode(quad.Predicate, mapping)
			quad.Object = remapBlankNode(quad.Object, mapping)
			quad.Graph = remapBlankNode(quad.Graph, mapping)
		}
	}
}

func collectBlankNodeID(ids map[string]struct{}, node ld.Node) {
	if node == nil {
		return
	}
	if bnode, ok := node.(ld.BlankNode); ok {
		ids[bnode.Attribute] = struct{}{}
	}
}

func remapBlankNode(node ld.Node, mapping map[string]string) ld.Node {
	bnode, ok := node.(ld.BlankNode)
	if !ok {
		return node
	}
	if mapped, ok := mapping[bnode.Attribute]; ok {
		return ld.NewBlankNode(mapped)
	}
	return node
}

// Canonicalize serializes dataset to its URDNA2015-canonical N-Quads
// form, for dataset-equality comparisons in tests and fixtures.
func Canonicalize(dataset *ld.RDFDataset) (string, error) {
	if dataset == nil {
		return "", nil
	}
	DedupeQuads(dataset)

	api := ld.NewJsonLdApi()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	opts.Algorithm = ld.AlgorithmURDNA2015

	normalized, err := api.Normalize(dataset, opts)
	if err != nil {
		return "", err
	}
	value, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("jsonld: unexpected normalization result %T", normalized)
	}
	return value, nil
}
