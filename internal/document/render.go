package document

import (
	"strings"

	"substation/internal/fields"
)

// DumpOptions controls rendering. Zero-valued field lists mean the source
// columns (or the standard schema for documents built in memory).
type DumpOptions struct {
	// StyleFields and EventFields restrict the emitted columns. Any casing
	// is accepted; the Text column is always kept last in events.
	StyleFields []string
	EventFields []string

	// AutoFill widens a source column subset back to the full standard
	// schema, emitting defaults for the columns the source omitted.
	AutoFill bool
}

// Dump renders the document with auto-fill enabled.
func (d *Document) Dump() string {
	return d.DumpWith(DumpOptions{AutoFill: true})
}

// DumpWith renders the document to subtitle text. The output always ends
// with a newline and dumping a reloaded dump reproduces itself exactly.
func (d *Document) DumpWith(opts DumpOptions) string {
	var b strings.Builder
	first := true
	section := func(lines []string) {
		if len(lines) == 0 {
			return
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	section(d.Preamble)
	section(d.renderInfo())
	section(d.renderStyles(opts))
	section(d.renderEvents(opts))
	for _, opaque := range d.Opaque {
		lines := append([]string{"[" + opaque.Name + "]"}, opaque.Lines...)
		section(lines)
	}
	return b.String()
}

func (d *Document) renderInfo() []string {
	if !d.InfoMeta.Present && d.Info.Len() == 0 {
		return nil
	}
	header := d.InfoMeta.Name
	if header == "" {
		header = "Script Info"
	}
	lines := []string{"[" + header + "]"}
	for _, pair := range d.Info.Pairs() {
		lines = append(lines, pair.Comments...)
		lines = append(lines, pair.Key+": "+pair.Raw())
	}
	lines = append(lines, d.Info.trailing...)
	lines = append(lines, d.Info.stray...)
	return lines
}

func (d *Document) renderStyles(opts DumpOptions) []string {
	if !d.StyleMeta.Present && d.Styles.Len() == 0 && len(d.StyleCustom) == 0 {
		return nil
	}
	header := d.StyleMeta.Name
	if header == "" {
		header = d.Version.StyleSectionName()
	}
	columns := chooseColumns(opts.StyleFields, d.StyleMeta.FieldNames,
		standardStyleFields(d.Version), opts.AutoFill)

	lines := []string{"[" + header + "]"}
	lines = append(lines, d.StyleMeta.Comments...)
	lines = append(lines, "Format: "+strings.Join(columns, ", "))
	for _, style := range d.Styles.All() {
		values := make([]string, len(columns))
		for i, column := range columns {
			values[i] = styleColumnValue(style, column)
		}
		lines = append(lines, "Style: "+strings.Join(values, ","))
	}
	for _, record := range d.StyleCustom {
		lines = append(lines, record.Descriptor+": "+record.Value)
	}
	lines = append(lines, d.StyleMeta.Stray...)
	return lines
}

func (d *Document) renderEvents(opts DumpOptions) []string {
	if !d.EventMeta.Present && len(d.Events) == 0 && len(d.EventCustom) == 0 {
		return nil
	}
	header := d.EventMeta.Name
	if header == "" {
		header = "Events"
	}
	columns := chooseColumns(opts.EventFields, d.EventMeta.FieldNames,
		standardEventFields(d.Version), opts.AutoFill)
	columns = forceTextLast(columns)

	lines := []string{"[" + header + "]"}
	lines = append(lines, d.EventMeta.Comments...)
	lines = append(lines, "Format: "+strings.Join(columns, ", "))
	for _, event := range d.Events {
		values := make([]string, len(columns))
		for i, column := range columns {
			values[i] = eventColumnValue(event, column)
		}
		lines = append(lines, event.Kind.String()+": "+strings.Join(values, ","))
	}
	for _, record := range d.EventCustom {
		lines = append(lines, record.Descriptor+": "+record.Value)
	}
	lines = append(lines, d.EventMeta.Stray...)
	return lines
}

// chooseColumns picks the emitted column list: an explicit request wins,
// then the source Format when it already covers the standard schema (or
// auto-fill is off), then the standard schema itself.
func chooseColumns(explicit, source, standard []string, autoFill bool) []string {
	if len(explicit) > 0 {
		out := make([]string, len(explicit))
		for i, name := range explicit {
			out[i] = fields.Casing(fields.Canonical(name))
		}
		return out
	}
	if len(source) > 0 {
		if !autoFill || coversAll(source, standard) {
			return source
		}
	}
	out := make([]string, len(standard))
	for i, name := range standard {
		out[i] = fields.Casing(name)
	}
	return out
}

func coversAll(source, standard []string) bool {
	have := make(map[string]bool, len(source))
	for _, name := range source {
		have[fields.Canonical(name)] = true
	}
	for _, name := range standard {
		if !have[name] {
			return false
		}
	}
	return true
}

// forceTextLast keeps the event text column present and final so the output
// stays structurally valid.
func forceTextLast(columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	text := ""
	for _, column := range columns {
		if fields.Canonical(column) == "text" {
			text = column
			continue
		}
		out = append(out, column)
	}
	if text == "" {
		text = "Text"
	}
	return append(out, text)
}

func styleColumnValue(style *Style, column string) string {
	if field, ok := styleFieldByName[fields.Canonical(column)]; ok {
		return field.read(style)
	}
	if value, ok := style.Extra.Get(column); ok {
		return value
	}
	// Unknown columns with no stored value, such as legacy AlphaLevel.
	return "0"
}

func eventColumnValue(event *Event, column string) string {
	if field, ok := eventFieldByName[fields.Canonical(column)]; ok {
		return field.read(event)
	}
	if value, ok := event.Extra.Get(column); ok {
		return value
	}
	return ""
}
