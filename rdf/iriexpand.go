package rdf

import "strings"

// ExpandIRI resolves a term, compact IRI (CURIE), or relative IRI
// against the active context. documentRelative controls whether an
// unresolved relative value is resolved against the document base;
// vocab controls whether @vocab applies.
//
// Returns ok=false when value cannot be resolved to anything (the
// caller should treat this as "drop").
func ExpandIRI(value string, ctx ActiveContext, documentRelative, vocab bool) (string, bool) {
	if value == "" {
		return "", false
	}
	if isKeyword(value) {
		return value, true
	}
	if def, ok := ctx.TermDefs[value]; ok && def.IRIMapping != "" {
		return def.IRIMapping, true
	}
	if blankNodeID(value) {
		return value, true
	}

	if idx := strings.Index(value, ":"); idx > 0 {
		prefix, suffix := value[:idx], value[idx+1:]
		if prefix == "_" {
			return value, true
		}
		if def, ok := ctx.TermDefs[prefix]; ok && def.IRIMapping != "" && !def.Reverse {
			return def.IRIMapping + suffix, true
		}
		if absoluteIRI(value) {
			return value, true
		}
	}

	if vocab && ctx.VocabularyMapping != "" {
		return ctx.VocabularyMapping + value, true
	}

	if documentRelative {
		return resolveAgainstBase(ctx.BaseIRI, value), true
	}

	return value, false
}
