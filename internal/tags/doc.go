// Package tags catalogs the ASS override-tag micro-language.
//
// The registry is one static, immutable table mapping a tag name to its
// Definition: whether it is a function tag, whether it scopes to the whole
// event or only to following text, its conflict policy (first-wins versus
// last-wins plus mutual-exclusion partners), and the parse/format pair for
// its value syntax. The table is built once at package initialization and is
// safe for concurrent read-only use.
//
// Nine value syntaxes live here: booleans, integers, floats, free strings,
// font weights, six-digit inline colours, two-digit alphas, numpad/legacy
// alignments, and the structured function arguments (position, movement,
// clips with rectangle/drawing disambiguation, simple and complex fades, and
// the four call shapes of the animation transform).
package tags
