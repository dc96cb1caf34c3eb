// Package diagnostics defines the two-tier issue taxonomy shared by the
// structural scanner and the semantic ingestor.
//
// A Diagnostic is a non-fatal observation (error, warning, or info) attached
// to the document that produced it; it is collected, never raised. A
// StructuralError is the fatal case: the file skeleton is too damaged to
// model, so the load aborts and the error carries the whole diagnostic batch
// gathered up to that point.
//
// Keep new issue codes in the package that emits them; this package only owns
// the container types and level semantics.
package diagnostics
