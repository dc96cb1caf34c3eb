// Command substation is the CLI for working with ASS/SSA subtitle scripts:
// checking them for structural and semantic problems, inspecting their
// contents, extracting override tags, rewriting them in canonical form, and
// maintaining a local catalog.
package main
