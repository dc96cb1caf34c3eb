package scanner

import (
	"strings"
	"testing"

	"substation/internal/diagnostics"
)

const minimal = `[Script Info]
; generated by test
Title: Sample
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize
Style: Default,Arial,20

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:03.50,Default,,0,0,0,,Hello, world
`

func hasCode(diags diagnostics.List, code string) bool {
	for _, d := range diags.All() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestScanMinimalDocument(t *testing.T) {
	doc, diags := Scan(minimal)
	if diags.HasErrors() {
		t.Fatalf("expected clean scan, got %v", diags.Errors())
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(doc.Sections))
	}

	info := doc.Section(SectionScriptInfo)
	if info == nil {
		t.Fatal("expected [Script Info] section")
	}
	if len(info.Records) != 2 {
		t.Fatalf("expected 2 script info records, got %d", len(info.Records))
	}
	if len(info.Records[0].Comments) != 1 {
		t.Fatalf("expected leading comment attached to first record, got %v", info.Records[0].Comments)
	}

	events := doc.Section(SectionEvents)
	if events == nil || events.Format == nil {
		t.Fatal("expected [Events] with Format line")
	}
	if len(events.Format.Fields) != 10 {
		t.Fatalf("expected 10 event fields, got %d", len(events.Format.Fields))
	}
	if events.Records[0].Value != "0,0:00:01.00,0:00:03.50,Default,,0,0,0,,Hello, world" {
		t.Fatalf("unexpected record value %q", events.Records[0].Value)
	}
}

func TestScanDuplicateSection(t *testing.T) {
	content := "[Events]\nFormat: Start, End, Text\n\n[Events]\nFormat: Start, End, Text\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeDuplicateSection) {
		t.Fatalf("expected %s, got %v", CodeDuplicateSection, diags.All())
	}
}

func TestScanMixedStyleVersions(t *testing.T) {
	content := "[V4 Styles]\nFormat: Name\n\n[V4+ Styles]\nFormat: Name\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeMixedStyleVersions) {
		t.Fatalf("expected %s, got %v", CodeMixedStyleVersions, diags.All())
	}
}

func TestScanRecordBeforeFormat(t *testing.T) {
	content := "[Events]\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hi\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeRecordBeforeFormat) {
		t.Fatalf("expected %s, got %v", CodeRecordBeforeFormat, diags.All())
	}
	if !diags.HasErrors() {
		t.Fatal("expected ERROR severity")
	}
}

func TestScanFormatMustEndInText(t *testing.T) {
	content := "[Events]\nFormat: Start, End, Style\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeFormatTextLast) {
		t.Fatalf("expected %s, got %v", CodeFormatTextLast, diags.All())
	}
}

func TestScanShortRecord(t *testing.T) {
	content := "[Events]\nFormat: Layer, Start, End, Text\nDialogue: 0,0:00:01.00\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeShortRecord) {
		t.Fatalf("expected %s, got %v", CodeShortRecord, diags.All())
	}
}

func TestScanDuplicateFormatAndFields(t *testing.T) {
	content := "[V4+ Styles]\nFormat: Name, Name\nFormat: Name, Fontname\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeDuplicateField) {
		t.Fatalf("expected %s, got %v", CodeDuplicateField, diags.All())
	}
	if !hasCode(diags, CodeDuplicateFormat) {
		t.Fatalf("expected %s, got %v", CodeDuplicateFormat, diags.All())
	}
}

func TestScanMissingColonAndPreamble(t *testing.T) {
	content := "stray preamble\n[Script Info]\nTitle Sample\n"
	doc, diags := Scan(content)
	if !hasCode(diags, CodeContentBeforeSection) {
		t.Fatalf("expected %s, got %v", CodeContentBeforeSection, diags.All())
	}
	if !hasCode(diags, CodeMissingColon) {
		t.Fatalf("expected %s, got %v", CodeMissingColon, diags.All())
	}
	if len(doc.Preamble) != 1 || doc.Preamble[0].Text != "stray preamble" {
		t.Fatalf("expected preamble preserved, got %v", doc.Preamble)
	}
	info := doc.Section(SectionScriptInfo)
	if len(info.Stray) != 1 {
		t.Fatalf("expected stray line preserved, got %v", info.Stray)
	}
}

func TestScanOpaqueSectionPreservedVerbatim(t *testing.T) {
	content := "[Script Info]\nTitle: X\n\n[Events]\nFormat: Start, End, Text\n\n[Fonts]\nfontname: arial.ttf\nAAAABBBB==\n\nCCCC\n"
	doc, diags := Scan(content)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors %v", diags.Errors())
	}
	fonts := doc.Section(SectionFonts)
	if fonts == nil || !fonts.Opaque {
		t.Fatal("expected opaque [Fonts] section")
	}
	want := []string{"fontname: arial.ttf", "AAAABBBB==", "", "CCCC"}
	if len(fonts.Lines) != len(want) {
		t.Fatalf("expected %d opaque lines, got %d (%v)", len(want), len(fonts.Lines), fonts.Lines)
	}
	for i, line := range want {
		if fonts.Lines[i] != line {
			t.Fatalf("opaque line %d: expected %q, got %q", i, line, fonts.Lines[i])
		}
	}
}

func TestScanSectionOrderWarnings(t *testing.T) {
	content := "[Events]\nFormat: Start, End, Text\n\n[Script Info]\nTitle: X\n"
	_, diags := Scan(content)
	if !hasCode(diags, CodeSectionOrder) {
		t.Fatalf("expected %s, got %v", CodeSectionOrder, diags.All())
	}

	content = "[Script Info]\nTitle: X\n\n[Aegisub Project Garbage]\nzoom: 6\n\n[Events]\nFormat: Start, End, Text\n"
	_, diags = Scan(content)
	if !hasCode(diags, CodeCustomSectionOrder) {
		t.Fatalf("expected %s, got %v", CodeCustomSectionOrder, diags.All())
	}
}

func TestScanMissingSections(t *testing.T) {
	_, diags := Scan("[V4+ Styles]\nFormat: Name\n")
	var codes []string
	for _, d := range diags.Warnings() {
		codes = append(codes, d.Code)
	}
	if strings.Count(strings.Join(codes, " "), CodeMissingSection) != 2 {
		t.Fatalf("expected missing-section warnings for Script Info and Events, got %v", diags.All())
	}
}

func TestScanCRLF(t *testing.T) {
	content := strings.ReplaceAll(minimal, "\n", "\r\n")
	doc, diags := Scan(content)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors %v", diags.Errors())
	}
	info := doc.Section(SectionScriptInfo)
	if info.Records[1].Value != "v4.00+" {
		t.Fatalf("expected CR stripped, got %q", info.Records[1].Value)
	}
}
