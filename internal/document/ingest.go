package document

import (
	"strings"

	"substation/internal/diagnostics"
	"substation/internal/fields"
	"substation/internal/scanner"
)

// Semantic diagnostic codes.
const (
	CodeScriptTypeMissing = "script-type-missing"
	CodeScriptTypeUnknown = "script-type-unknown"
	CodeStyleVersionSkew  = "style-version-skew"
	CodeBadFieldValue     = "bad-field-value"
	CodeDuplicateStyle    = "dup-style"
	CodeUndeclaredStyle   = "undeclared-style"
)

// IngestOptions narrows which columns the ingestor reads. Empty slices mean
// every declared column.
type IngestOptions struct {
	StyleFields []string
	EventFields []string
}

func allowSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[fields.Canonical(name)] = true
	}
	return set
}

// Ingest converts a scanned document into a typed one. Conversion problems
// surface as WARNING diagnostics with the schema default substituted; Ingest
// itself never fails.
func Ingest(raw *scanner.RawDocument, opts IngestOptions) (*Document, diagnostics.List) {
	var diags diagnostics.List
	doc := &Document{
		Version: V4Plus,
		Info:    NewScriptInfo(),
		Styles:  NewStyleTable(),
	}
	for _, line := range raw.Preamble {
		doc.Preamble = append(doc.Preamble, line.Text)
	}

	if info := raw.Section(scanner.SectionScriptInfo); info != nil {
		ingestInfo(doc, info, &diags)
	}

	styles := raw.Section(scanner.SectionV4Plus)
	legacy := styles == nil
	if legacy {
		styles = raw.Section(scanner.SectionV4Styles)
	}
	doc.Version = detectVersion(doc, legacy && styles != nil, &diags)
	if styles != nil {
		if legacy != (doc.Version == V4) {
			diags.Warnf(CodeStyleVersionSkew, styles.Line,
				"declared %s but styles section is [%s]", doc.Version, styles.Name)
		}
		ingestStyles(doc, styles, allowSet(opts.StyleFields), &diags)
	}

	if events := raw.Section(scanner.SectionEvents); events != nil {
		ingestEvents(doc, events, allowSet(opts.EventFields), &diags)
	}

	for _, section := range raw.Sections {
		if section.Opaque {
			doc.Opaque = append(doc.Opaque, OpaqueSection{Name: section.Name, Lines: section.Lines})
		}
	}

	checkStyleReferences(doc, &diags)
	return doc, diags
}

// detectVersion reads ScriptType, falling back to the style-section flavour
// when the key is absent.
func detectVersion(doc *Document, legacyStyles bool, diags *diagnostics.List) Version {
	raw := doc.Info.GetString("ScriptType")
	if raw == "" {
		if legacyStyles {
			return V4
		}
		if doc.InfoMeta.Present {
			diags.Warnf(CodeScriptTypeMissing, 0, "no ScriptType in [Script Info]; assuming v4.00+")
		}
		return V4Plus
	}
	version, err := ParseVersion(raw)
	if err != nil {
		diags.Warnf(CodeScriptTypeUnknown, 0, "unknown ScriptType %q; assuming v4.00+", raw)
	}
	return version
}

func ingestInfo(doc *Document, section *scanner.RawSection, diags *diagnostics.List) {
	// Comments and stray lines live on the pairs and the ScriptInfo itself;
	// the meta only records presence and the header spelling.
	doc.InfoMeta = SectionMeta{Name: section.Name, Present: true}
	for _, record := range section.Records {
		if !doc.Info.add(record.Descriptor, record.Value, record.Comments) {
			diags.Warnf(CodeBadFieldValue, record.Line,
				"cannot parse %s value %q; kept as text", record.Descriptor, record.Value)
		}
	}
	doc.Info.trailing = section.TrailingComments()
	for _, stray := range section.Stray {
		doc.Info.stray = append(doc.Info.stray, stray.Text)
	}
}

func ingestStyles(doc *Document, section *scanner.RawSection, allowed map[string]bool, diags *diagnostics.List) {
	doc.StyleMeta = sectionMeta(section)
	columns := formatColumns(section)

	for _, record := range section.Records {
		if fields.Normalize(record.Descriptor) != "style" {
			doc.StyleCustom = append(doc.StyleCustom, CustomRecord{record.Descriptor, record.Value})
			continue
		}
		style := NewStyle("")
		assignColumns(columns, record.Value, allowed,
			func(name, part string) bool {
				field, ok := styleFieldByName[fields.Canonical(name)]
				if !ok {
					return false
				}
				if err := field.assign(style, part); err != nil {
					diags.Warnf(CodeBadFieldValue, record.Line,
						"style %s: %v; using default", name, err)
				}
				return true
			},
			func(name, part string) {
				if style.Extra == nil {
					style.Extra = NewExtraFields()
				}
				style.Extra.Set(name, strings.TrimSpace(part))
			})
		if doc.Styles.Add(style) {
			diags.Warnf(CodeDuplicateStyle, record.Line, "duplicate style %q replaces the earlier one", style.Name)
		}
	}
}

func ingestEvents(doc *Document, section *scanner.RawSection, allowed map[string]bool, diags *diagnostics.List) {
	doc.EventMeta = sectionMeta(section)
	columns := formatColumns(section)

	for _, record := range section.Records {
		kind, ok := ParseEventKind(record.Descriptor)
		if !ok {
			doc.EventCustom = append(doc.EventCustom, CustomRecord{record.Descriptor, record.Value})
			continue
		}
		event := &Event{Kind: kind}
		assignColumns(columns, record.Value, allowed,
			func(name, part string) bool {
				field, ok := eventFieldByName[fields.Canonical(name)]
				if !ok {
					return false
				}
				if err := field.assign(event, part); err != nil {
					diags.Warnf(CodeBadFieldValue, record.Line,
						"event %s: %v; using default", name, err)
				}
				return true
			},
			func(name, part string) {
				if event.Extra == nil {
					event.Extra = NewExtraFields()
				}
				event.Extra.Set(name, strings.TrimSpace(part))
			})
		doc.Events = append(doc.Events, event)
	}
}

// assignColumns splits a record value into the declared columns and routes
// each part to the schema or the extra-field fallback. The final column
// absorbs any remaining commas.
func assignColumns(columns []string, value string, allowed map[string]bool,
	schema func(name, part string) bool, extra func(name, part string)) {
	parts := strings.SplitN(value, ",", len(columns))
	for i, part := range parts {
		if i >= len(columns) {
			break
		}
		name := columns[i]
		if allowed != nil && !allowed[fields.Canonical(name)] {
			continue
		}
		if !schema(name, part) {
			extra(name, part)
		}
	}
}

// formatColumns returns the section's declared columns, trimmed.
func formatColumns(section *scanner.RawSection) []string {
	if section.Format == nil {
		return nil
	}
	return section.Format.Fields
}

func sectionMeta(section *scanner.RawSection) SectionMeta {
	meta := SectionMeta{Name: section.Name, Present: true}
	if section.Format != nil {
		meta.FieldNames = section.Format.Fields
	}
	for _, record := range section.Records {
		meta.Comments = append(meta.Comments, record.Comments...)
	}
	meta.Comments = append(meta.Comments, section.TrailingComments()...)
	for _, stray := range section.Stray {
		meta.Stray = append(meta.Stray, stray.Text)
	}
	return meta
}

// checkStyleReferences reports events bound to styles the document never
// declares.
func checkStyleReferences(doc *Document, diags *diagnostics.List) {
	reported := map[string]bool{}
	for _, event := range doc.Events {
		if event.Style == "" {
			continue
		}
		if _, ok := doc.Styles.Get(event.Style); ok {
			continue
		}
		key := fields.Normalize(event.Style)
		if reported[key] {
			continue
		}
		reported[key] = true
		diags.Warnf(CodeUndeclaredStyle, 0, "event references undeclared style %q", event.Style)
	}
}
