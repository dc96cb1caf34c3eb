// Package extract resolves override-tag conflicts into a flat event-tag set
// plus ordered text segments, and composes an AST back from that shape.
//
// One forward pass walks the AST applying one of two policies per tag.
// Event-level tags scope to the whole line: first-wins tags keep their first
// occurrence and drop later duplicates and mutually-exclusive siblings;
// last-wins tags overwrite earlier values and evict exclusive partners.
// Inline tags accumulate in a pending set that is snapshotted into a segment
// whenever visible text precedes the next block boundary.
//
// Strict mode turns the silently-resolved conflicts into ErrTagConflict so
// tools that prefer hard failure over auto-resolution can get one.
package extract
