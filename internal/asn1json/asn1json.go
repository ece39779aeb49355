// Package asn1json decodes the JSON-encoded expression tree the CLI reads
// from disk into internal/asn1 types. An upstream lexer/parser/fixer pass,
// out of scope for this module, is expected to emit this JSON already
// reference-resolved; this package only validates shape and reports where
// decoding failed.
//
// encoding/json is used directly rather than a schema-validation library:
// the ingestion boundary is a single fixed Go type graph with no versioning
// or cross-language contract to enforce, so a validating decoder would add
// a dependency without a concern for it to serve.
package asn1json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cmmoran/asn1proto/internal/asn1"
)

// Document is the top-level shape read from an input file: one module and
// its top-level expressions in declaration order.
type Document struct {
	Module *asn1.Module `json:"module"`
	Exprs  []*asn1.Expr `json:"exprs"`
}

// Decode reads a Document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("asn1json: decode: %w", err)
	}
	if doc.Module == nil {
		return nil, fmt.Errorf("asn1json: document has no module")
	}
	for _, e := range doc.Exprs {
		attachModule(doc.Module, e)
	}
	return &doc, nil
}

// attachModule stamps Module on e and recursively on every descendant,
// mirroring how a real parser associates every node with its owning module.
func attachModule(mod *asn1.Module, e *asn1.Expr) {
	if e == nil {
		return
	}
	e.Module = mod
	for _, m := range e.Members {
		attachModule(mod, m)
	}
	for _, s := range e.Specializations {
		attachModule(mod, s)
	}
}
