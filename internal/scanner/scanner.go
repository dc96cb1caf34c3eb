package scanner

import (
	"strings"

	"substation/internal/diagnostics"
	"substation/internal/fields"
)

// Structural diagnostic codes.
const (
	CodeDuplicateSection     = "dup-section"
	CodeMixedStyleVersions   = "mixed-style-versions"
	CodeContentBeforeSection = "content-before-section"
	CodeMissingColon         = "missing-colon"
	CodeRecordBeforeFormat   = "record-before-format"
	CodeShortRecord          = "short-record"
	CodeDuplicateFormat      = "dup-format"
	CodeDuplicateField       = "dup-field"
	CodeFormatTextLast       = "format-text-last"
	CodeMissingSection       = "missing-section"
	CodeSectionOrder         = "section-order"
	CodeCustomSectionOrder   = "custom-section-order"
)

// Scan tokenizes subtitle text into a RawDocument, collecting structural
// diagnostics along the way. Scan itself never fails; callers treat any
// ERROR-level diagnostic as fatal for the load.
func Scan(content string) (*RawDocument, diagnostics.List) {
	var diags diagnostics.List
	doc := &RawDocument{}

	seen := map[string]bool{}
	var current *RawSection
	warnedPreamble := false

	lines := splitLines(content)
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)

		// Section header.
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && len(trimmed) > 2 {
			name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			norm := normalizeSection(name)
			if seen[norm] {
				diags.Errorf(CodeDuplicateSection, lineNo, "duplicate section [%s]", name)
			}
			seen[norm] = true
			current = &RawSection{
				Name:       name,
				Normalized: norm,
				Line:       lineNo,
				Opaque:     !structuredSection(norm),
			}
			doc.Sections = append(doc.Sections, current)
			continue
		}

		if current == nil {
			if trimmed == "" {
				continue
			}
			if !warnedPreamble {
				diags.Warnf(CodeContentBeforeSection, lineNo, "content before any section header")
				warnedPreamble = true
			}
			doc.Preamble = append(doc.Preamble, RawLine{Text: line, Line: lineNo})
			continue
		}

		if current.Opaque {
			// Byte-preserving passthrough, blanks and all.
			current.Lines = append(current.Lines, line)
			continue
		}

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ";") {
			current.trailing = append(current.trailing, trimmed)
			continue
		}

		colon := strings.Index(line, ":")
		if colon < 0 {
			diags.Warnf(CodeMissingColon, lineNo, "record line without a colon in [%s]", current.Name)
			current.Stray = append(current.Stray, RawLine{Text: line, Line: lineNo})
			continue
		}

		descriptor := strings.TrimSpace(line[:colon])
		value := strings.TrimLeft(line[colon+1:], " \t")
		scanRecord(current, descriptor, value, lineNo, &diags)
	}

	checkDocumentShape(doc, seen, &diags)
	return doc, diags
}

// scanRecord classifies one "Descriptor: Value" line within a structured
// section, handling Format lines and the record-shape checks that only need
// the declared field count.
func scanRecord(section *RawSection, descriptor, value string, lineNo int, diags *diagnostics.List) {
	tabular := section.Normalized != SectionScriptInfo

	if tabular && fields.Normalize(descriptor) == "format" {
		if section.Format != nil {
			diags.Errorf(CodeDuplicateFormat, lineNo, "multiple Format lines in [%s]; extra ignored", section.Name)
			return
		}
		format := &RawFormat{Line: lineNo}
		seenField := map[string]bool{}
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			format.Fields = append(format.Fields, field)
			norm := fields.Normalize(field)
			if seenField[norm] {
				diags.Errorf(CodeDuplicateField, lineNo, "duplicate field %q in [%s] Format line", field, section.Name)
			}
			seenField[norm] = true
		}
		if section.Normalized == SectionEvents {
			last := format.Fields[len(format.Fields)-1]
			if fields.Normalize(last) != "text" {
				diags.Errorf(CodeFormatTextLast, lineNo, "[Events] Format line must end in Text, got %q", last)
			}
		}
		section.Format = format
		return
	}

	if tabular {
		if section.Format == nil {
			diags.Errorf(CodeRecordBeforeFormat, lineNo, "%s record before [%s] Format line", descriptor, section.Name)
		} else if declared := len(section.Format.Fields); strings.Count(value, ",") < declared-1 {
			diags.Errorf(CodeShortRecord, lineNo, "%s record has fewer than the %d declared fields", descriptor, declared)
		}
	}

	record := RawRecord{
		Descriptor: descriptor,
		Value:      value,
		Line:       lineNo,
		Comments:   section.trailing,
	}
	section.trailing = nil
	section.Records = append(section.Records, record)
}

// checkDocumentShape runs the whole-document checks: required sections,
// style-section version mixing, and canonical ordering.
func checkDocumentShape(doc *RawDocument, seen map[string]bool, diags *diagnostics.List) {
	if !seen[SectionScriptInfo] {
		diags.Warnf(CodeMissingSection, 0, "missing [Script Info] section")
	}
	if !seen[SectionEvents] {
		diags.Warnf(CodeMissingSection, 0, "missing [Events] section")
	}
	if seen[SectionV4Styles] && seen[SectionV4Plus] {
		diags.Errorf(CodeMixedStyleVersions, 0, "both [V4 Styles] and [V4+ Styles] present")
	}

	maxRank := -1
	customSeen := false
	for _, section := range doc.Sections {
		rank := sectionRank(section.Normalized)
		standard := isStandardSection(section.Normalized)
		if standard && customSeen {
			diags.Warnf(CodeCustomSectionOrder, section.Line, "custom section precedes standard section [%s]", section.Name)
		}
		if rank < maxRank {
			diags.Warnf(CodeSectionOrder, section.Line, "section [%s] out of canonical order", section.Name)
		}
		if rank > maxRank {
			maxRank = rank
		}
		if !standard {
			customSeen = true
		}
	}
}

func structuredSection(normalized string) bool {
	switch normalized {
	case SectionScriptInfo, SectionV4Styles, SectionV4Plus, SectionEvents:
		return true
	}
	return false
}

// splitLines splits on \n without discarding a trailing empty segment caused
// by a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
