package rdf

import (
	"bytes"
	"context"
	"testing"
)

const fuzzMaxJSONLDBytes = 64 << 10

func FuzzExpand(f *testing.F) {
	f.Add([]byte(`{"@id":"http://example.org/s","http://example.org/p":{"@value":"v"}}`))
	f.Add([]byte(`{"@context":{"ex":"http://example.org/"},"@id":"ex:s","ex:p":["a","b"]}`))
	f.Add([]byte(`{"@graph":[{"@id":"http://example.org/s"}]}`))
	f.Add([]byte(`null`))
	f.Add([]byte(`[]`))
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxJSONLDBytes {
			return
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_, _ = DecodeGraph(ctx, bytes.NewReader(data), Options{})
	})
}

func FuzzToRDF(f *testing.F) {
	f.Add([]byte(`{"@context":{"ex":"http://example.org/"},"@id":"ex:s","ex:p":"v"}`))
	f.Add([]byte(`{"@id":"http://example.org/s","@type":"http://example.org/T"}`))
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxJSONLDBytes {
			return
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_, _ = Decode(ctx, bytes.NewReader(data), Options{})
	})
}
