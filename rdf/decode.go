package rdf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// DecodeGraph reads a JSON-LD document from r and returns its
// expanded node sequence. It does not materialize RDF; use Decode for
// that.
func DecodeGraph(ctx context.Context, r io.Reader, opts Options) ([]Node, error) {
	doc, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	if opts.Context == nil {
		opts.Context = ctx
	}
	return Expand(doc, opts)
}

// Decode reads a JSON-LD document from r and materializes it directly
// into an RDF dataset: parse JSON, expand, generate the node map, and
// deserialize to RDF.
func Decode(ctx context.Context, r io.Reader, opts Options) (*ld.RDFDataset, error) {
	doc, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	if opts.Context == nil {
		opts.Context = ctx
	}
	return ToRDF(doc, opts)
}

func decodeJSON(r io.Reader) (interface{}, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("jsonld: failed to parse JSON document: %w", err)
	}
	return doc, nil
}
