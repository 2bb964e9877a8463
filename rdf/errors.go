package rdf

import (
	"context"
	"errors"
	"fmt"
)

// ExpansionErrorCode identifies one of the JSON-LD 1.0 Expansion
// Algorithm's error conditions.
type ExpansionErrorCode string

const (
	ErrCodeListOfLists                   ExpansionErrorCode = "LIST_OF_LISTS"
	ErrCodeInvalidReversePropertyMap      ExpansionErrorCode = "INVALID_REVERSE_PROPERTY_MAP"
	ErrCodeCollidingKeywords              ExpansionErrorCode = "COLLIDING_KEYWORDS"
	ErrCodeInvalidIdValue                 ExpansionErrorCode = "INVALID_ID_VALUE"
	ErrCodeInvalidTypeValue               ExpansionErrorCode = "INVALID_TYPE_VALUE"
	ErrCodeInvalidValueObjectValue        ExpansionErrorCode = "INVALID_VALUE_OBJECT_VALUE"
	ErrCodeInvalidLanguageTaggedString    ExpansionErrorCode = "INVALID_LANGUAGE_TAGGED_STRING"
	ErrCodeInvalidIndexValue              ExpansionErrorCode = "INVALID_INDEX_VALUE"
	ErrCodeInvalidReverseValue            ExpansionErrorCode = "INVALID_REVERSE_VALUE"
	ErrCodeInvalidReversePropertyValue    ExpansionErrorCode = "INVALID_REVERSE_PROPERTY_VALUE"
	ErrCodeInvalidLanguageMapValue        ExpansionErrorCode = "INVALID_LANGUAGE_MAP_VALUE"
	ErrCodeInvalidValueObject             ExpansionErrorCode = "INVALID_VALUE_OBJECT"
	ErrCodeInvalidLanguageTaggedValue     ExpansionErrorCode = "INVALID_LANGUAGE_TAGGED_VALUE"
	ErrCodeInvalidTypedValue              ExpansionErrorCode = "INVALID_TYPED_VALUE"
	ErrCodeInvalidSetOrListObject         ExpansionErrorCode = "INVALID_SET_OR_LIST_OBJECT"
)

// ExpansionError carries the offending JSON-LD fragment alongside the
// error code, for diagnostic rendering: one struct with a code field
// and an offending-fragment field, rather than one Go type per error
// kind.
type ExpansionError struct {
	// Code identifies which clause of the algorithm failed.
	Code ExpansionErrorCode
	// ActiveProperty is the property under expansion when the error
	// occurred, if any.
	ActiveProperty string
	// Fragment is the offending value, rendered for diagnostics.
	Fragment interface{}
	// Err is an optional wrapped cause.
	Err error
}

func (e *ExpansionError) Error() string {
	if e.ActiveProperty != "" {
		return fmt.Sprintf("jsonld: %s (active property %q): %v", e.Code, e.ActiveProperty, e.Fragment)
	}
	return fmt.Sprintf("jsonld: %s: %v", e.Code, e.Fragment)
}

func (e *ExpansionError) Unwrap() error { return e.Err }

func newExpansionError(code ExpansionErrorCode, activeProperty string, fragment interface{}) error {
	return &ExpansionError{Code: code, ActiveProperty: activeProperty, Fragment: fragment}
}

// ExpansionCode returns the ExpansionErrorCode carried by err, or
// empty string if err is nil or carries no code. Mirrors the
// teacher's Code(err) ErrorCode helper.
func ExpansionCode(err error) ExpansionErrorCode {
	if err == nil {
		return ""
	}
	var expErr *ExpansionError
	if errors.As(err, &expErr) {
		return expErr.Code
	}
	return ""
}

// Sentinel errors for conditions that are not JSON-LD clause
// violations but still abort a conversion.
var (
	// ErrContextCanceled is returned when the caller's context is
	// canceled mid-expansion; a context whose deadline passed yields
	// context.DeadlineExceeded instead.
	ErrContextCanceled = context.Canceled
	// ErrMissingSubject describes a node object with no usable
	// identifier where one is required. No function in this package
	// returns it.
	ErrMissingSubject = errors.New("rdf: node object has no subject")
)
