package rdf

import (
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear as the subject, predicate, or object
// of a triple produced by ToRDF.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier, without the "_:" prefix.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the canonical lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Triple is an RDF triple.
type Triple struct {
	S Term
	P IRI
	O Term
}

// Quad is an RDF triple plus the name of the graph it belongs to. G is
// nil for the default graph.
type Quad struct {
	S Term
	P IRI
	O Term
	G Term
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// ToTriple drops the graph name from a quad.
func (q Quad) ToTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// termFromLDNode converts a json-gold RDF node into this package's
// dependency-light Term representation.
func termFromLDNode(node ld.Node) Term {
	switch n := node.(type) {
	case ld.IRI:
		return IRI{Value: n.Value}
	case ld.BlankNode:
		return BlankNode{ID: n.Attribute}
	case ld.Literal:
		lit := Literal{Lexical: n.Value, Datatype: IRI{Value: n.Datatype}}
		if n.Language != "" {
			lit.Lang = n.Language
		}
		return lit
	default:
		return nil
	}
}

// Quads flattens a json-gold RDF dataset produced by ToRDF into a
// slice of Quad values, for callers that would rather not take a
// direct dependency on json-gold's node types. The default graph is
// reported with a nil G; named graphs carry their graph name as an
// IRI or BlankNode.
func Quads(dataset *ld.RDFDataset) []Quad {
	if dataset == nil {
		return nil
	}
	var out []Quad
	for graphName, quads := range dataset.Graphs {
		var graphTerm Term
		if graphName != "@default" {
			graphTerm = graphNameTerm(graphName)
		}
		for _, q := range quads {
			if q == nil {
				continue
			}
			out = append(out, Quad{
				S: termFromLDNode(q.Subject),
				P: IRI{Value: q.Predicate.GetValue()},
				O: termFromLDNode(q.Object),
				G: graphTerm,
			})
		}
	}
	return out
}

func graphNameTerm(name string) Term {
	if blankNodeID(name) {
		return BlankNode{ID: name[2:]}
	}
	return IRI{Value: name}
}
