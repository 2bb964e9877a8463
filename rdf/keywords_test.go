package rdf

import "testing"

func TestIsKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"@id", true},
		{"@type", true},
		{"@none", true},
		{"@custom", true},
		{"@", false},
		{"@1", false},
		{"ex:p", false},
		{"plain", false},
	}
	for _, tt := range tests {
		if got := isKeyword(tt.in); got != tt.want {
			t.Fatalf("isKeyword(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBlankNodeIDPredicate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"_:b0", true},
		{"_:", true},
		{"http://example.org/s", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := blankNodeID(tt.in); got != tt.want {
			t.Fatalf("blankNodeID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAbsoluteIRIPredicate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"http://example.org/s", true},
		{"ex:s", true},
		{"_:b0", false},
		{"@id", false},
		{"plain", false},
	}
	for _, tt := range tests {
		if got := absoluteIRI(tt.in); got != tt.want {
			t.Fatalf("absoluteIRI(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRelativeIRIPredicate(t *testing.T) {
	if relativeIRI("http://example.org/s") {
		t.Fatalf("expected absolute IRI to not be relative")
	}
	if relativeIRI("_:b0") {
		t.Fatalf("expected blank node id to not be relative")
	}
	if !relativeIRI("plain") {
		t.Fatalf("expected bare term to be relative")
	}
}

func TestScalarPredicate(t *testing.T) {
	tests := []struct {
		in   interface{}
		want bool
	}{
		{"s", true},
		{float64(1), true},
		{true, true},
		{nil, false},
		{[]interface{}{}, false},
		{map[string]interface{}{}, false},
	}
	for _, tt := range tests {
		if got := scalar(tt.in); got != tt.want {
			t.Fatalf("scalar(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
