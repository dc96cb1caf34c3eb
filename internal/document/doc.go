// Package document models a typed ASS/SSA script and owns the semantic half
// of the load pipeline.
//
// Ingest consumes the structural scanner's RawDocument and produces a
// Document: ordered script metadata with original key casing and comments,
// a case-insensitive style table backed by a fixed field schema, the event
// list with centisecond timecodes and lazily-parsed text, verbatim custom
// records, and opaque passthrough sections. Dump is the inverse and is
// idempotent: dumping a reloaded dump reproduces itself byte-for-byte.
//
// Field conversion is schema-driven. Every standard style and event column
// has a typed default, a converter, and a formatter; conversion failures
// become WARNING diagnostics and fall back to the default, never a refusal
// to load. Columns outside the schema land in an extra-fields side map that
// re-emits under the original spelling.
package document
