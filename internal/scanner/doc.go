// Package scanner tokenizes raw ASS/SSA text into sections, Format lines,
// and records without interpreting any of it.
//
// The scanner is the structural half of the load pipeline: it classifies
// every line (blank, section header, comment, Format line, descriptor
// record, opaque passthrough), collects the structural diagnostic catalog,
// and hands a RawDocument to the semantic ingestor. Sections other than
// Script Info, the style sections, and Events are captured verbatim so
// fonts, graphics, and vendor sections survive a round-trip byte-exact.
//
// Any ERROR-level diagnostic from this stage makes the whole load fail; the
// ingestor never sees a skeleton the scanner flagged as unsafe.
package scanner
