// Package fields normalizes ASS/SSA descriptor and field names.
//
// Script Info keys and Format-line field names are matched case-insensitively
// and with interior whitespace ignored, while the original casing must survive
// round-trips. This package owns the normalization rule, the SSA-to-ASS field
// aliases, and the canonical casing used when a field has to be emitted
// without an observed original spelling.
package fields
