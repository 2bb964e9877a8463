// Package rdf implements the core of a JSON-LD 1.0 to RDF conversion
// engine.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// The package covers three of the W3C JSON-LD 1.0 algorithms:
//
//   - Expand: the Expansion Algorithm, a recursive rewrite of a parsed
//     JSON tree into expanded form.
//   - ExpandValue: the Value Expansion Algorithm used by Expand for
//     scalar values.
//   - ToRDF: the Deserialize JSON-LD to RDF Algorithm, producing an
//     RDF dataset from a JSON-LD document.
//
// Active context construction, IRI expansion, and node map generation
// are treated as collaborators with a narrow input/output contract;
// this package ships working implementations of each, but fidelity
// effort is concentrated on Expand/ExpandValue/ToRDF, which is where
// the JSON-LD 1.0 specification's ~30 numbered clauses and error
// taxonomy live.
//
// RDF output is produced using github.com/piprate/json-gold's node
// types (ld.IRI, ld.BlankNode, ld.Literal) and dataset type
// (ld.RDFDataset), so the result of ToRDF composes directly with any
// code already built around that library (N-Quads serialization,
// normalization, etc.).
//
// Example:
//
//	var doc interface{}
//	json.Unmarshal(data, &doc)
//	dataset, err := rdf.ToRDF(doc, rdf.Options{})
//	if err != nil {
//	    // handle error
//	}
//	for graphName, quads := range dataset.Graphs {
//	    for _, q := range quads {
//	        // q.Subject, q.Predicate, q.Object
//	    }
//	}
//
// JSON-LD 1.1 features (framing, nested properties, @protected,
// @nest) are out of scope, as is producing compacted or framed
// output.
package rdf
