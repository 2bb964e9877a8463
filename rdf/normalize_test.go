package rdf

import (
	"strings"
	"testing"

	ld "github.com/piprate/json-gold/ld"
)

func TestDedupeQuadsRemovesExactDuplicates(t *testing.T) {
	dataset := ld.NewRDFDataset()
	s := ld.NewIRI("http://example.org/s")
	p := ld.NewIRI("http://example.org/p")
	o := ld.NewLiteral("v", xsdStringIRI, "")
	dataset.Graphs["@default"] = []*ld.Quad{
		ld.NewQuad(s, p, o, ""),
		ld.NewQuad(s, p, o, ""),
	}
	DedupeQuads(dataset)
	if len(dataset.Graphs["@default"]) != 1 {
		t.Fatalf("expected duplicates to collapse to 1 quad, got %d", len(dataset.Graphs["@default"]))
	}
}

func TestDedupeQuadsKeepsDistinctQuads(t *testing.T) {
	dataset := ld.NewRDFDataset()
	s := ld.NewIRI("http://example.org/s")
	p := ld.NewIRI("http://example.org/p")
	dataset.Graphs["@default"] = []*ld.Quad{
		ld.NewQuad(s, p, ld.NewLiteral("a", xsdStringIRI, ""), ""),
		ld.NewQuad(s, p, ld.NewLiteral("b", xsdStringIRI, ""), ""),
	}
	DedupeQuads(dataset)
	if len(dataset.Graphs["@default"]) != 2 {
		t.Fatalf("expected 2 distinct quads to survive, got %d", len(dataset.Graphs["@default"]))
	}
}

func TestRelabelBlankNodesProducesDenseSequence(t *testing.T) {
	dataset := ld.NewRDFDataset()
	p := ld.NewIRI("http://example.org/p")
	dataset.Graphs["@default"] = []*ld.Quad{
		ld.NewQuad(ld.NewBlankNode("original7"), p, ld.NewLiteral("a", xsdStringIRI, ""), ""),
		ld.NewQuad(ld.NewBlankNode("original2"), p, ld.NewLiteral("b", xsdStringIRI, ""), ""),
	}
	RelabelBlankNodes(dataset)

	seen := map[string]bool{}
	for _, q := range dataset.Graphs["@default"] {
		bnode, ok := q.Subject.(ld.BlankNode)
		if !ok {
			t.Fatalf("expected subject to remain a blank node, got %T", q.Subject)
		}
		if !strings.HasPrefix(bnode.Attribute, "b") {
			t.Fatalf("expected relabeled id to start with 'b', got %q", bnode.Attribute)
		}
		seen[bnode.Attribute] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 distinct relabeled ids, got %d", len(seen))
	}
	if !seen["b0"] || !seen["b1"] {
		t.Fatalf("expected dense b0/b1 sequence, got %v", seen)
	}
}

func TestCanonicalizeProducesNQuads(t *testing.T) {
	dataset := ld.NewRDFDataset()
	dataset.Graphs["@default"] = []*ld.Quad{
		ld.NewQuad(
			ld.NewIRI("http://example.org/s"),
			ld.NewIRI("http://example.org/p"),
			ld.NewLiteral("v", xsdStringIRI, ""),
			"",
		),
	}
	out, err := Canonicalize(dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "http://example.org/s") {
		t.Fatalf("expected canonicalized output to mention the subject IRI, got %q", out)
	}
}

func TestCanonicalizeNilDataset(t *testing.T) {
	out, err := Canonicalize(nil)
	if err != nil {
		t.Fatalf("unexpected error for nil dataset: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty output for nil dataset, got %q", out)
	}
}
