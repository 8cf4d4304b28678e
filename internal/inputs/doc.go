// Package inputs resolves the flat, stringly-typed step inputs supplied by a
// workflow runner into a single typed Inputs record. Every recognised key has
// a static FieldSpec describing its kind and default; Resolve applies the
// per-kind coercion rules against an injected Source.
package inputs
