package rdf

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// languageMappingState is a tri-state: a term's language mapping is
// either unset (inherit the context default), explicitly false
// (suppress the default language entirely), or an explicit language
// tag.
type languageMappingState int

const (
	languageUnset languageMappingState = iota
	languageNone
	languageExplicit
)

// LanguageMapping models a term's @language mapping, which needs three
// states (unset / explicitly-false / explicit tag) that a bare string
// cannot represent.
type LanguageMapping struct {
	state languageMappingState
	tag   string
}

// IsUnset reports whether no @language was specified for this term.
func (m LanguageMapping) IsUnset() bool { return m.state == languageUnset }

// IsNone reports whether @language was explicitly set to false.
func (m LanguageMapping) IsNone() bool { return m.state == languageNone }

// Tag returns the explicit language tag, if any.
func (m LanguageMapping) Tag() (string, bool) {
	if m.state == languageExplicit {
		return m.tag, true
	}
	return "", false
}

// TermDefinition is a single entry of an active context's term
// definitions.
type TermDefinition struct {
	IRIMapping      string
	TypeMapping     string // "", "@id", "@vocab", or an absolute IRI
	LanguageMapping LanguageMapping
	ContainerMapping string // "", "@list", "@set", "@language", "@index"
	Reverse          bool
}

// ActiveContext is the immutable value the expansion core reads to
// resolve terms, types, and languages while walking a document. See
// SPEC_FULL.md §4.1 for how construction and update are scoped here.
type ActiveContext struct {
	TermDefs          map[string]TermDefinition
	DefaultLanguage    string
	HasDefaultLanguage bool
	BaseIRI            string
	VocabularyMapping  string
}

// NewActiveContext returns the initial active context for opts.
func NewActiveContext(opts Options) ActiveContext {
	ctx := ActiveContext{
		TermDefs: map[string]TermDefinition{},
		BaseIRI:  opts.Base,
	}
	if opts.ExpandContext != nil {
		updated, err := UpdateContext(ctx, opts.ExpandContext, opts, 0)
		if err == nil {
			ctx = updated
		}
	}
	return ctx
}

// clone returns a deep-enough copy of ctx so callers can add/override
// term definitions without mutating the original: a @context update
// always produces a new context rather than mutating the active one.
func (ctx ActiveContext) clone() ActiveContext {
	out := ctx
	out.TermDefs = make(map[string]TermDefinition, len(ctx.TermDefs))
	for k, v := range ctx.TermDefs {
		out.TermDefs[k] = v
	}
	return out
}

// UpdateContext produces a new active context from active and a
// @context value. depth guards against cyclic remote @context chains.
func UpdateContext(active ActiveContext, raw interface{}, opts Options, depth int) (ActiveContext, error) {
	if depth > opts.maxRemoteContexts() {
		return active, fmt.Errorf("jsonld: too many nested/remote @context references")
	}
	switch v := raw.(type) {
	case nil:
		return active, nil
	case string:
		doc, err := loadRemoteContext(active, v, opts)
		if err != nil {
			return active, err
		}
		return UpdateContext(active, doc, opts, depth+1)
	case []interface{}:
		result := active
		for _, item := range v {
			updated, err := UpdateContext(result, item, opts, depth)
			if err != nil {
				return active, err
			}
			result = updated
		}
		return result, nil
	case map[string]interface{}:
		return updateContextFromMap(active, v, opts, depth)
	default:
		return active, fmt.Errorf("jsonld: invalid @context value %T", raw)
	}
}

func updateContextFromMap(active ActiveContext, m map[string]interface{}, opts Options, depth int) (ActiveContext, error) {
	result := active.clone()

	if base, ok := m["@base"]; ok {
		if s, ok := base.(string); ok {
			result.BaseIRI = resolveAgainstBase(result.BaseIRI, s)
		}
	}
	if vocab, ok := m["@vocab"]; ok {
		switch s := vocab.(type) {
		case string:
			result.VocabularyMapping = s
		case nil:
			result.VocabularyMapping = ""
		}
	}
	if lang, ok := m["@language"]; ok {
		switch s := lang.(type) {
		case string:
			result.DefaultLanguage = strings.ToLower(s)
			result.HasDefaultLanguage = true
		case nil:
			result.HasDefaultLanguage = false
			result.DefaultLanguage = ""
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "@base" || key == "@vocab" || key == "@language" {
			continue
		}
		if err := defineTerm(&result, key, m[key], m); err != nil {
			return active, err
		}
	}
	return result, nil
}

func defineTerm(ctx *ActiveContext, term string, value interface{}, localContext map[string]interface{}) error {
	switch v := value.(type) {
	case string:
		ctx.TermDefs[term] = TermDefinition{IRIMapping: expandIRIAgainstVocab(v, *ctx)}
		return nil
	case nil:
		delete(ctx.TermDefs, term)
		return nil
	case map[string]interface{}:
		def := TermDefinition{}
		if id, ok := v["@id"].(string); ok {
			def.IRIMapping = expandIRIAgainstVocab(id, *ctx)
		} else {
			def.IRIMapping = expandIRIAgainstVocab(term, *ctx)
		}
		if typ, ok := v["@type"].(string); ok {
			switch typ {
			case "@id", "@vocab":
				def.TypeMapping = typ
			default:
				expanded, _ := ExpandIRI(typ, *ctx, false, true)
				def.TypeMapping = expanded
			}
		}
		switch lang := v["@language"].(type) {
		case string:
			def.LanguageMapping = LanguageMapping{state: languageExplicit, tag: strings.ToLower(lang)}
		case bool:
			if !lang {
				def.LanguageMapping = LanguageMapping{state: languageNone}
			}
		}
		if container, ok := v["@container"].(string); ok {
			switch container {
			case "@list", "@set", "@language", "@index":
				def.ContainerMapping = container
			}
		}
		if rev, ok := v["@reverse"]; ok {
			def.Reverse = true
			if s, ok := rev.(string); ok {
				def.IRIMapping = expandIRIAgainstVocab(s, *ctx)
			}
		}
		ctx.TermDefs[term] = def
		return nil
	default:
		return fmt.Errorf("jsonld: invalid term definition for %q", term)
	}
}

// expandIRIAgainstVocab resolves a term definition's own IRI mapping:
// an absolute IRI or blank node id is used as-is; a compact IRI is
// resolved against a known prefix; otherwise it is resolved against
// @vocab, falling back to the literal value.
func expandIRIAgainstVocab(value string, ctx ActiveContext) string {
	if value == "" {
		return value
	}
	if blankNodeID(value) {
		return value
	}
	if idx := strings.Index(value, ":"); idx > 0 {
		prefix, suffix := value[:idx], value[idx+1:]
		if def, ok := ctx.TermDefs[prefix]; ok && def.IRIMapping != "" {
			return def.IRIMapping + suffix
		}
		if absoluteIRI(value) {
			return value
		}
	}
	if ctx.VocabularyMapping != "" {
		return ctx.VocabularyMapping + value
	}
	return value
}

func resolveAgainstBase(base, ref string) string {
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// loadRemoteContext resolves a string-valued @context via the
// configured DocumentLoader (defaulting to json-gold's HTTP loader),
// extracting the "@context" member of the fetched document.
func loadRemoteContext(active ActiveContext, iri string, opts Options) (interface{}, error) {
	resolved := resolveAgainstBase(active.BaseIRI, iri)
	loader := opts.DocumentLoader
	if loader == nil {
		loader = defaultDocumentLoader{}
	}
	doc, err := loader.LoadDocument(opts.ctx(), resolved)
	if err != nil {
		return nil, fmt.Errorf("jsonld: failed to load remote context %s: %w", resolved, err)
	}
	if m, ok := doc.Document.(map[string]interface{}); ok {
		return m["@context"], nil
	}
	return nil, fmt.Errorf("jsonld: remote context %s is not a JSON object", resolved)
}

// defaultDocumentLoader adapts json-gold's default HTTP document
// loader to this package's DocumentLoader contract.
type defaultDocumentLoader struct{}

func (defaultDocumentLoader) LoadDocument(ctx context.Context, iri string) (RemoteDocument, error) {
	remote, err := ld.NewDefaultDocumentLoader(nil).LoadDocument(iri)
	if err != nil {
		return RemoteDocument{}, err
	}
	return RemoteDocument{
		DocumentURL: remote.DocumentURL,
		Document:    remote.Document,
		ContextURL:  remote.ContextURL,
	}, nil
}
