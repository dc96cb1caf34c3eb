package document

import "substation/internal/fields"

// Style is one style record under the V4+ schema. Legacy V4 scripts are
// widened into this shape at ingest; fields the legacy schema lacks keep
// their defaults. Extra holds columns outside the schema.
type Style struct {
	Name            string
	Fontname        string
	Fontsize        float64
	PrimaryColour   Colour
	SecondaryColour Colour
	OutlineColour   Colour
	BackColour      Colour
	Bold            bool
	Italic          bool
	Underline       bool
	StrikeOut       bool
	ScaleX          float64
	ScaleY          float64
	Spacing         float64
	Angle           float64
	BorderStyle     int
	Outline         float64
	Shadow          float64
	Alignment       int
	MarginL         int
	MarginR         int
	MarginV         int
	Encoding        int

	Extra *ExtraFields
}

// NewStyle returns a style with the conventional authoring defaults.
func NewStyle(name string) *Style {
	return &Style{
		Name:            name,
		Fontname:        "Arial",
		Fontsize:        20,
		PrimaryColour:   Colour{R: 0xFF, G: 0xFF, B: 0xFF},
		SecondaryColour: Colour{R: 0xFF},
		OutlineColour:   Colour{},
		BackColour:      Colour{},
		ScaleX:          100,
		ScaleY:          100,
		BorderStyle:     1,
		Outline:         2,
		Shadow:          2,
		Alignment:       2,
		MarginL:         10,
		MarginR:         10,
		MarginV:         10,
		Encoding:        1,
	}
}

// StyleTable holds a document's styles. Names are unique case-insensitively
// and iteration follows insertion order.
type StyleTable struct {
	order  []string
	styles map[string]*Style
}

// NewStyleTable returns an empty table.
func NewStyleTable() *StyleTable {
	return &StyleTable{styles: map[string]*Style{}}
}

// Get looks a style up by any casing of its name.
func (t *StyleTable) Get(name string) (*Style, bool) {
	s, ok := t.styles[fields.Normalize(name)]
	return s, ok
}

// Add inserts a style. A style whose name collides case-insensitively
// replaces the existing one in place; the return reports whether that
// happened.
func (t *StyleTable) Add(style *Style) (replaced bool) {
	key := fields.Normalize(style.Name)
	if _, ok := t.styles[key]; ok {
		t.styles[key] = style
		return true
	}
	t.order = append(t.order, key)
	t.styles[key] = style
	return false
}

// Delete removes a style by name.
func (t *StyleTable) Delete(name string) {
	key := fields.Normalize(name)
	if _, ok := t.styles[key]; !ok {
		return
	}
	delete(t.styles, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// All returns the styles in insertion order.
func (t *StyleTable) All() []*Style {
	out := make([]*Style, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.styles[key])
	}
	return out
}

// Len reports the number of styles.
func (t *StyleTable) Len() int { return len(t.order) }
