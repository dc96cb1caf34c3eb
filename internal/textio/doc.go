// Package textio reads and writes subtitle files at the byte/encoding level.
//
// ASS files in the wild arrive as UTF-8 with or without a byte-order mark, or
// occasionally as UTF-16 written by Windows tools. Decode normalizes all of
// those to plain UTF-8 text and remembers whether a BOM was present so a
// save can reproduce it. No line splitting or format interpretation happens
// here; the structural scanner owns that.
package textio
