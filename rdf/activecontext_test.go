package rdf

import "testing"

func TestUpdateContextSimpleTermAndVocab(t *testing.T) {
	active := NewActiveContext(Options{})
	raw := map[string]interface{}{
		"@vocab": "http://example.org/",
		"ex":     "http://example.org/",
		"name":   map[string]interface{}{"@id": "http://example.org/name"},
	}
	updated, err := UpdateContext(active, raw, Options{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.VocabularyMapping != "http://example.org/" {
		t.Fatalf("unexpected vocab mapping: %q", updated.VocabularyMapping)
	}
	if updated.TermDefs["ex"].IRIMapping != "http://example.org/" {
		t.Fatalf("unexpected prefix mapping: %+v", updated.TermDefs["ex"])
	}
	if updated.TermDefs["name"].IRIMapping != "http://example.org/name" {
		t.Fatalf("unexpected term mapping: %+v", updated.TermDefs["name"])
	}
}

func TestUpdateContextDefaultLanguage(t *testing.T) {
	active := NewActiveContext(Options{})
	updated, err := UpdateContext(active, map[string]interface{}{"@language": "EN"}, Options{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.HasDefaultLanguage || updated.DefaultLanguage != "en" {
		t.Fatalf("expected lowercased default language 'en', got %+v", updated)
	}

	cleared, err := UpdateContext(updated, map[string]interface{}{"@language": nil}, Options{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared.HasDefaultLanguage {
		t.Fatalf("expected default language to be cleared")
	}
}

func TestUpdateContextTermWithTypeAndContainer(t *testing.T) {
	active := NewActiveContext(Options{})
	raw := map[string]interface{}{
		"age": map[string]interface{}{
			"@id":   "http://example.org/age",
			"@type": "http://www.w3.org/2001/XMLSchema#integer",
		},
		"tags": map[string]interface{}{
			"@id":        "http://example.org/tags",
			"@container": "@set",
		},
	}
	updated, err := UpdateContext(active, raw, Options{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TermDefs["age"].TypeMapping != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Fatalf("unexpected type mapping: %+v", updated.TermDefs["age"])
	}
	if updated.TermDefs["tags"].ContainerMapping != "@set" {
		t.Fatalf("unexpected container mapping: %+v", updated.TermDefs["tags"])
	}
}

func TestUpdateContextNullTermRemovesDefinition(t *testing.T) {
	active := NewActiveContext(Options{})
	withTerm, err := UpdateContext(active, map[string]interface{}{"name": "http://example.org/name"}, Options{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := withTerm.TermDefs["name"]; !ok {
		t.Fatalf("expected term to be defined")
	}
	cleared, err := UpdateContext(withTerm, map[string]interface{}{"name": nil}, Options{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cleared.TermDefs["name"]; ok {
		t.Fatalf("expected term definition to be removed")
	}
}

func TestUpdateContextRejectsExcessiveNesting(t *testing.T) {
	active := NewActiveContext(Options{})
	opts := Options{MaxRemoteContexts: 2}
	_, err := UpdateContext(active, map[string]interface{}{"@vocab": "http://example.org/"}, opts, 3)
	if err == nil {
		t.Fatalf("expected an error when depth exceeds MaxRemoteContexts")
	}
}
