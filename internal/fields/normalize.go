package fields

import "strings"

// Normalize lowercases a key and strips spaces, tabs, and underscores so
// "Play ResX", "PlayResX", and "playresx" address the same field.
func Normalize(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch r {
		case ' ', '\t', '_':
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// aliases maps normalized legacy (SSA v4.00) field names to their modern
// v4.00+ equivalents. Lookups happen after Normalize.
var aliases = map[string]string{
	"tertiarycolour": "outlinecolour",
	"tertiarycolor":  "outlinecolour",
	"actor":          "name",
	// US spellings used by some muxers.
	"primarycolor":   "primarycolour",
	"secondarycolor": "secondarycolour",
	"outlinecolor":   "outlinecolour",
	"backcolor":      "backcolour",
}

// Canonical resolves a raw key to its canonical normalized name, applying
// legacy aliases.
func Canonical(key string) string {
	norm := Normalize(key)
	if alias, ok := aliases[norm]; ok {
		return alias
	}
	return norm
}

// canonicalCasing records the spelling used when a field must be emitted and
// no original casing was captured from the source file.
var canonicalCasing = map[string]string{
	"name":                  "Name",
	"fontname":              "Fontname",
	"fontsize":              "Fontsize",
	"primarycolour":         "PrimaryColour",
	"secondarycolour":       "SecondaryColour",
	"outlinecolour":         "OutlineColour",
	"backcolour":            "BackColour",
	"bold":                  "Bold",
	"italic":                "Italic",
	"underline":             "Underline",
	"strikeout":             "StrikeOut",
	"scalex":                "ScaleX",
	"scaley":                "ScaleY",
	"spacing":               "Spacing",
	"angle":                 "Angle",
	"borderstyle":           "BorderStyle",
	"outline":               "Outline",
	"shadow":                "Shadow",
	"alignment":             "Alignment",
	"marginl":               "MarginL",
	"marginr":               "MarginR",
	"marginv":               "MarginV",
	"encoding":              "Encoding",
	"layer":                 "Layer",
	"marked":                "Marked",
	"start":                 "Start",
	"end":                   "End",
	"style":                 "Style",
	"effect":                "Effect",
	"text":                  "Text",
	"title":                 "Title",
	"scripttype":            "ScriptType",
	"wrapstyle":             "WrapStyle",
	"playresx":              "PlayResX",
	"playresy":              "PlayResY",
	"playdepth":             "PlayDepth",
	"timer":                 "Timer",
	"scaledborderandshadow": "ScaledBorderAndShadow",
	"collisions":            "Collisions",
	"originalscript":        "Original Script",
	"originaltranslation":   "Original Translation",
	"originalediting":       "Original Editing",
	"originaltiming":        "Original Timing",
	"synchpoint":            "Synch Point",
	"scriptupdatedby":       "Script Updated By",
	"updatedetails":         "Update Details",
	"ycbcrmatrix":           "YCbCr Matrix",
}

// Casing returns the canonical display spelling for a normalized field name.
// Unknown fields fall back to the input unchanged.
func Casing(normalized string) string {
	if cased, ok := canonicalCasing[normalized]; ok {
		return cased
	}
	return normalized
}
