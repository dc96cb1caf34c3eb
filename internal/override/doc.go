// Package override parses dialogue text into an AST of plain text, special
// characters, and {...} override blocks, and renders it back.
//
// Parsing is a single forward scan with no backtracking. Inside a block,
// tag-name matching tries every registered name longest-first so a short
// name never wins as the prefix of a longer one; function tags must be
// followed by an opening parenthesis and their argument span is found by
// parenthesis-depth counting, which makes nested function tags such as
// \t(\clip(...)) work. In-block text that matches no known tag is kept as a
// Comment node instead of being dropped, so unknown and vendor tags survive
// a round-trip byte-exact.
//
// The renderer is the literal inverse: nodes that still carry the raw
// substring they were parsed from re-emit it verbatim; synthesized nodes go
// through the tag's formatter.
package override
