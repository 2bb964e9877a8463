package rdf

import "strings"

// keywords is the fixed JSON-LD 1.0 keyword set.
var keywords = map[string]bool{
	"@context":  true,
	"@id":       true,
	"@value":    true,
	"@language": true,
	"@type":     true,
	"@container": true,
	"@list":     true,
	"@set":      true,
	"@reverse":  true,
	"@index":    true,
	"@base":     true,
	"@vocab":    true,
	"@graph":    true,
	"@none":     true,
}

// isKeyword reports whether s is a JSON-LD keyword: a fixed set plus
// any reserved token made of "@" followed by one or more ASCII letters
// and nothing else.
func isKeyword(s string) bool {
	if keywords[s] {
		return true
	}
	if len(s) < 2 || s[0] != '@' {
		return false
	}
	for _, r := range s[1:] {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// blankNodeID reports whether s is a blank node identifier ("_:"
// prefix).
func blankNodeID(s string) bool {
	return strings.HasPrefix(s, "_:")
}

// absoluteIRI reports whether s looks like an absolute IRI: it
// contains a ":" and is not a blank node identifier or a keyword. A
// colon signals an absolute or prefixed IRI; full RFC 3987 grammar
// validation is left to the IRI-expand collaborator upstream.
func absoluteIRI(s string) bool {
	if blankNodeID(s) || isKeyword(s) {
		return false
	}
	return strings.Contains(s, ":")
}

// relativeIRI reports whether s is neither a valid absolute IRI nor a
// blank node identifier.
func relativeIRI(s string) bool {
	return !absoluteIRI(s) && !blankNodeID(s)
}

// scalar reports whether v is a JSON-LD scalar: string, number, or
// boolean.
func scalar(v interface{}) bool {
	switch v.(type) {
	case string, float64, bool, int, int64:
		return true
	default:
		return false
	}
}
