package document

import (
	"substation/internal/diagnostics"
)

// CustomRecord is a structured-section record whose descriptor falls
// outside the schema, kept verbatim for re-emission.
type CustomRecord struct {
	Descriptor string
	Value      string
}

// OpaqueSection is a section carried as raw lines: [Fonts], [Graphics],
// and anything vendor-specific.
type OpaqueSection struct {
	Name  string
	Lines []string
}

// SectionMeta carries the re-emission details of a structured section: the
// header as written, the Format columns in their source casing, and the
// comment and stray lines the section held.
type SectionMeta struct {
	Name       string
	Present    bool
	FieldNames []string
	Comments   []string
	Stray      []string
}

// Document is a fully typed script.
type Document struct {
	Version Version
	Info    *ScriptInfo
	Styles  *StyleTable
	Events  []*Event

	// Records in the styles and events sections that are not styles or
	// events. Re-emitted after the schema records.
	StyleCustom []CustomRecord
	EventCustom []CustomRecord

	Opaque   []OpaqueSection
	Preamble []string

	InfoMeta  SectionMeta
	StyleMeta SectionMeta
	EventMeta SectionMeta

	// Diagnostics collected while loading. Empty for documents built in
	// memory.
	Diagnostics diagnostics.List

	hadBOM bool
}

// New returns an empty V4+ document with the standard metadata seeded.
func New() *Document {
	doc := &Document{
		Version: V4Plus,
		Info:    NewScriptInfo(),
		Styles:  NewStyleTable(),
	}
	doc.Info.Set("ScriptType", "v4.00+")
	doc.Styles.Add(NewStyle("Default"))
	return doc
}

// HadBOM reports whether the source file began with a byte order mark.
func (d *Document) HadBOM() bool { return d.hadBOM }
