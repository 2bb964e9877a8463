package rdf

import "context"

// Options configures expansion and RDF materialization. Zero value is
// valid and selects JSON-LD 1.0 defaults.
type Options struct {
	// Context cancels expansion, including the expansion step of
	// ToRDF and Decode; node map generation and RDF materialization do
	// not check it. If nil, context.Background is used.
	Context context.Context

	// Base is the document base IRI used to resolve relative IRIs
	// encountered via @id, @type, and @base. A @vocab value is used
	// as given, not resolved against it.
	Base string

	// ExpandContext supplies an external context to seed expansion
	// with, applied before the document's own @context.
	ExpandContext interface{}

	// ProduceGeneralizedRdf, when true, allows triples whose predicate
	// is a blank node identifier to be emitted. Default false.
	ProduceGeneralizedRdf bool

	// DocumentLoader resolves string-valued @context references and
	// other remote documents. If nil, a default HTTP-backed loader
	// from json-gold is used.
	DocumentLoader DocumentLoader

	// MaxRemoteContexts bounds how many remote @context documents may
	// be chased while processing one context update, guarding against
	// cyclic or runaway @context chains. Zero selects a safe default.
	MaxRemoteContexts int
}

// DocumentLoader resolves a remote document (typically a @context
// value given as a string IRI) to its JSON content.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, iri string) (RemoteDocument, error)
}

// RemoteDocument is a document fetched by a DocumentLoader.
type RemoteDocument struct {
	DocumentURL string
	Document    interface{}
	ContextURL  string
}

func (o Options) ctx() context.Context {
	if o.Context != nil {
		return o.Context
	}
	return context.Background()
}

const defaultMaxRemoteContexts = 10

func (o Options) maxRemoteContexts() int {
	if o.MaxRemoteContexts > 0 {
		return o.MaxRemoteContexts
	}
	return defaultMaxRemoteContexts
}
