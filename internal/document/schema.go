package document

import (
	"fmt"
	"strconv"
	"strings"
)

// styleField binds one schema column to its converter and formatter.
// Names are normalized canonical forms; display casing comes from the
// fields package at render time.
type styleField struct {
	name   string
	assign func(*Style, string) error
	read   func(*Style) string
}

// styleSchema lists the standard V4+ columns in declaration order.
var styleSchema = []styleField{
	{"name", func(s *Style, v string) error { s.Name = strings.TrimSpace(v); return nil }, func(s *Style) string { return s.Name }},
	{"fontname", func(s *Style, v string) error { s.Fontname = strings.TrimSpace(v); return nil }, func(s *Style) string { return s.Fontname }},
	{"fontsize", assignStyleFloat(func(s *Style) *float64 { return &s.Fontsize }), readStyleFloat(func(s *Style) float64 { return s.Fontsize })},
	{"primarycolour", assignStyleColour(func(s *Style) *Colour { return &s.PrimaryColour }), readStyleColour(func(s *Style) Colour { return s.PrimaryColour })},
	{"secondarycolour", assignStyleColour(func(s *Style) *Colour { return &s.SecondaryColour }), readStyleColour(func(s *Style) Colour { return s.SecondaryColour })},
	{"outlinecolour", assignStyleColour(func(s *Style) *Colour { return &s.OutlineColour }), readStyleColour(func(s *Style) Colour { return s.OutlineColour })},
	{"backcolour", assignStyleColour(func(s *Style) *Colour { return &s.BackColour }), readStyleColour(func(s *Style) Colour { return s.BackColour })},
	{"bold", assignStyleBool(func(s *Style) *bool { return &s.Bold }), readStyleBool(func(s *Style) bool { return s.Bold })},
	{"italic", assignStyleBool(func(s *Style) *bool { return &s.Italic }), readStyleBool(func(s *Style) bool { return s.Italic })},
	{"underline", assignStyleBool(func(s *Style) *bool { return &s.Underline }), readStyleBool(func(s *Style) bool { return s.Underline })},
	{"strikeout", assignStyleBool(func(s *Style) *bool { return &s.StrikeOut }), readStyleBool(func(s *Style) bool { return s.StrikeOut })},
	{"scalex", assignStyleFloat(func(s *Style) *float64 { return &s.ScaleX }), readStyleFloat(func(s *Style) float64 { return s.ScaleX })},
	{"scaley", assignStyleFloat(func(s *Style) *float64 { return &s.ScaleY }), readStyleFloat(func(s *Style) float64 { return s.ScaleY })},
	{"spacing", assignStyleFloat(func(s *Style) *float64 { return &s.Spacing }), readStyleFloat(func(s *Style) float64 { return s.Spacing })},
	{"angle", assignStyleFloat(func(s *Style) *float64 { return &s.Angle }), readStyleFloat(func(s *Style) float64 { return s.Angle })},
	{"borderstyle", assignStyleInt(func(s *Style) *int { return &s.BorderStyle }), readStyleInt(func(s *Style) int { return s.BorderStyle })},
	{"outline", assignStyleFloat(func(s *Style) *float64 { return &s.Outline }), readStyleFloat(func(s *Style) float64 { return s.Outline })},
	{"shadow", assignStyleFloat(func(s *Style) *float64 { return &s.Shadow }), readStyleFloat(func(s *Style) float64 { return s.Shadow })},
	{"alignment", assignStyleInt(func(s *Style) *int { return &s.Alignment }), readStyleInt(func(s *Style) int { return s.Alignment })},
	{"marginl", assignStyleInt(func(s *Style) *int { return &s.MarginL }), readStyleInt(func(s *Style) int { return s.MarginL })},
	{"marginr", assignStyleInt(func(s *Style) *int { return &s.MarginR }), readStyleInt(func(s *Style) int { return s.MarginR })},
	{"marginv", assignStyleInt(func(s *Style) *int { return &s.MarginV }), readStyleInt(func(s *Style) int { return s.MarginV })},
	{"encoding", assignStyleInt(func(s *Style) *int { return &s.Encoding }), readStyleInt(func(s *Style) int { return s.Encoding })},
}

var styleFieldByName = map[string]styleField{}

// eventField is the event-record counterpart of styleField.
type eventField struct {
	name   string
	assign func(*Event, string) error
	read   func(*Event) string
}

var eventSchema = []eventField{
	{"layer", assignEventInt(func(e *Event) *int { return &e.Layer }), readEventInt(func(e *Event) int { return e.Layer })},
	{"marked", assignMarked, readMarked},
	{"start", assignEventTime(func(e *Event) *Timecode { return &e.Start }), readEventTime(func(e *Event) Timecode { return e.Start })},
	{"end", assignEventTime(func(e *Event) *Timecode { return &e.End }), readEventTime(func(e *Event) Timecode { return e.End })},
	{"style", assignEventString(func(e *Event) *string { return &e.Style }), readEventString(func(e *Event) string { return e.Style })},
	{"name", assignEventString(func(e *Event) *string { return &e.Name }), readEventString(func(e *Event) string { return e.Name })},
	{"marginl", assignEventInt(func(e *Event) *int { return &e.MarginL }), readEventInt(func(e *Event) int { return e.MarginL })},
	{"marginr", assignEventInt(func(e *Event) *int { return &e.MarginR }), readEventInt(func(e *Event) int { return e.MarginR })},
	{"marginv", assignEventInt(func(e *Event) *int { return &e.MarginV }), readEventInt(func(e *Event) int { return e.MarginV })},
	{"effect", assignEventString(func(e *Event) *string { return &e.Effect }), readEventString(func(e *Event) string { return e.Effect })},
	{"text", func(e *Event, v string) error { e.SetText(v); return nil }, func(e *Event) string { return e.Text() }},
}

var eventFieldByName = map[string]eventField{}

func init() {
	for _, f := range styleSchema {
		styleFieldByName[f.name] = f
	}
	for _, f := range eventSchema {
		eventFieldByName[f.name] = f
	}
}

// standardStyleFields returns the canonical column list for a version, in
// normalized form.
func standardStyleFields(v Version) []string {
	if v == V4 {
		return []string{
			"name", "fontname", "fontsize",
			"primarycolour", "secondarycolour", "outlinecolour", "backcolour",
			"bold", "italic",
			"borderstyle", "outline", "shadow", "alignment",
			"marginl", "marginr", "marginv", "alphalevel", "encoding",
		}
	}
	fields := make([]string, len(styleSchema))
	for i, f := range styleSchema {
		fields[i] = f.name
	}
	return fields
}

// standardEventFields returns the canonical event columns for a version, in
// normalized form. The text column is always last.
func standardEventFields(v Version) []string {
	first := "layer"
	if v == V4 {
		first = "marked"
	}
	return []string{
		first, "start", "end", "style", "name",
		"marginl", "marginr", "marginv", "effect", "text",
	}
}

func assignStyleFloat(field func(*Style) *float64) func(*Style, string) error {
	return func(s *Style, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*field(s) = f
		return nil
	}
}

func readStyleFloat(field func(*Style) float64) func(*Style) string {
	return func(s *Style) string {
		return strconv.FormatFloat(field(s), 'f', -1, 64)
	}
}

func assignStyleInt(field func(*Style) *int) func(*Style, string) error {
	return func(s *Style, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(s) = n
		return nil
	}
}

func readStyleInt(field func(*Style) int) func(*Style) string {
	return func(s *Style) string { return strconv.Itoa(field(s)) }
}

// Style booleans are written -1 for true and 0 for false; any nonzero
// integer parses as true.
func assignStyleBool(field func(*Style) *bool) func(*Style, string) error {
	return func(s *Style, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(s) = n != 0
		return nil
	}
}

func readStyleBool(field func(*Style) bool) func(*Style) string {
	return func(s *Style) string {
		if field(s) {
			return "-1"
		}
		return "0"
	}
}

func assignStyleColour(field func(*Style) *Colour) func(*Style, string) error {
	return func(s *Style, v string) error {
		c, err := ParseStyleColour(v)
		if err != nil {
			return err
		}
		*field(s) = c
		return nil
	}
}

func readStyleColour(field func(*Style) Colour) func(*Style) string {
	return func(s *Style) string { return field(s).String() }
}

func assignEventInt(field func(*Event) *int) func(*Event, string) error {
	return func(e *Event, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(e) = n
		return nil
	}
}

func readEventInt(field func(*Event) int) func(*Event) string {
	return func(e *Event) string { return strconv.Itoa(field(e)) }
}

func assignEventString(field func(*Event) *string) func(*Event, string) error {
	return func(e *Event, v string) error {
		*field(e) = strings.TrimSpace(v)
		return nil
	}
}

func readEventString(field func(*Event) string) func(*Event) string {
	return func(e *Event) string { return field(e) }
}

func assignEventTime(field func(*Event) *Timecode) func(*Event, string) error {
	return func(e *Event, v string) error {
		t, err := ParseTimecode(v)
		if err != nil {
			return err
		}
		*field(e) = t
		return nil
	}
}

func readEventTime(field func(*Event) Timecode) func(*Event) string {
	return func(e *Event) string { return field(e).String() }
}

// The legacy Marked column is written "Marked=N"; a bare integer is also
// accepted.
func assignMarked(e *Event, v string) error {
	v = strings.TrimSpace(v)
	if rest, ok := strings.CutPrefix(strings.ToLower(v), "marked="); ok {
		v = rest
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid marked value %q", v)
	}
	e.Marked = n
	return nil
}

func readMarked(e *Event) string {
	return fmt.Sprintf("Marked=%d", e.Marked)
}
