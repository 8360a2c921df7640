/*
Package field extracts the value of a named field from an arbitrary value.

Field lookup works uniformly across three representations of records:

	mappings     any map with string keys, e.g. map[string]interface{}
	documents    semi-structured documents, i.e. raw JSON or values exposing
	             UnstructuredContent() (as Kubernetes' unstructured.Unstructured does)
	structs      structs and pointers to structs

For structs, a field is first searched among the fields declared on the
struct type itself. If it is not found there, the fields declared directly
on embedded structs are searched. This fallback is exactly one level deep:
fields of structs embedded in embedded structs are not found.

Lookups never panic. Failures are returned as errors wrapped into a
result.Result, or, for Value, traced and turned into maybe.Nothing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package field

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'collect.field'.
func tracer() tracing.Trace {
	return tracing.Select("collect.field")
}

// Errors reported by field lookup. Errors returned from this package wrap one
// of these; test with errors.Is or errors.Cause.
var (
	ErrNoSuchField  = errors.New("no such field")
	ErrTypeMismatch = errors.New("field type mismatch")
	ErrInaccessible = errors.New("field not accessible")
	ErrAmbiguous    = errors.New("field ambiguous")
	ErrUnsupported  = errors.New("unsupported record type")
	ErrNilObject    = errors.New("record is nil")
	ErrMalformed    = errors.New("malformed document")
)
