package scanner

import "substation/internal/fields"

// Well-known section names, compared after fields.Normalize.
const (
	SectionScriptInfo = "scriptinfo"
	SectionV4Styles   = "v4styles"
	SectionV4Plus     = "v4+styles"
	SectionEvents     = "events"
	SectionFonts      = "fonts"
	SectionGraphics   = "graphics"
)

// RawDocument is the transient output of Scan, consumed by the ingestor.
type RawDocument struct {
	Preamble []RawLine
	Sections []*RawSection
}

// Section returns the first section whose normalized name matches, or nil.
func (d *RawDocument) Section(normalized string) *RawSection {
	for _, s := range d.Sections {
		if s.Normalized == normalized {
			return s
		}
	}
	return nil
}

// RawSection is one bracketed section and its body.
type RawSection struct {
	Name       string // as written, without brackets
	Normalized string
	Line       int

	// Structured body (Script Info, styles, Events).
	Format  *RawFormat
	Records []RawRecord
	Stray   []RawLine // non-record, non-comment lines kept for re-emission

	// Verbatim body (Fonts, Graphics, vendor sections).
	Opaque bool
	Lines  []string

	trailing []string // comments not yet attached to a record
}

// TrailingComments returns comment lines that follow the last record.
func (s *RawSection) TrailingComments() []string { return s.trailing }

// RawFormat is a section's Format line.
type RawFormat struct {
	Fields []string // trimmed, original casing
	Line   int
}

// RawRecord is one "Descriptor: Value" line.
type RawRecord struct {
	Descriptor string
	Value      string
	Line       int
	Comments   []string // ';' lines immediately preceding this record
}

// RawLine is a verbatim source line with its position.
type RawLine struct {
	Text string
	Line int
}

func isStandardSection(normalized string) bool {
	switch normalized {
	case SectionScriptInfo, SectionV4Styles, SectionV4Plus, SectionEvents, SectionFonts, SectionGraphics:
		return true
	}
	return false
}

// sectionRank orders sections canonically: Script Info, styles, Events,
// Fonts, Graphics, then custom sections.
func sectionRank(normalized string) int {
	switch normalized {
	case SectionScriptInfo:
		return 0
	case SectionV4Styles, SectionV4Plus:
		return 1
	case SectionEvents:
		return 2
	case SectionFonts:
		return 3
	case SectionGraphics:
		return 4
	default:
		return 5
	}
}

func normalizeSection(name string) string {
	return fields.Normalize(name)
}
