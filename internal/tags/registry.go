package tags

import (
	"fmt"
	"sort"
)

// Tag categories, informational only.
const (
	CategoryFont      = "font"
	CategoryColour    = "colour"
	CategoryBorder    = "border"
	CategoryPosition  = "position"
	CategoryRotation  = "rotation"
	CategoryKaraoke   = "karaoke"
	CategoryAnimation = "animation"
	CategoryDrawing   = "drawing"
	CategoryLayout    = "layout"
)

var (
	registry     map[string]*Definition
	orderedNames []string // longest-first for prefix matching
)

func init() {
	registry = make(map[string]*Definition, len(definitions))
	for i := range definitions {
		def := &definitions[i]
		if _, dup := registry[def.Name]; dup {
			panic(fmt.Sprintf("tags: duplicate definition %q", def.Name))
		}
		registry[def.Name] = def
	}
	orderedNames = make([]string, 0, len(registry))
	for name := range registry {
		orderedNames = append(orderedNames, name)
	}
	// Longest-first so a short tag never false-matches as the prefix of a
	// longer one (1c vs 1, fr vs frz). Ties break lexicographically for
	// deterministic matching.
	sort.Slice(orderedNames, func(i, j int) bool {
		if len(orderedNames[i]) != len(orderedNames[j]) {
			return len(orderedNames[i]) > len(orderedNames[j])
		}
		return orderedNames[i] < orderedNames[j]
	})
}

// Lookup returns the definition for a tag name. Names are case-sensitive:
// \k and \K are distinct tags.
func Lookup(name string) (*Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

// Names returns every registered tag name, longest-first.
func Names() []string {
	out := make([]string, len(orderedNames))
	copy(out, orderedNames)
	return out
}

// Format renders a typed value back to its wire form via the tag's
// formatter.
func Format(name string, value any) (string, error) {
	def, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("unknown tag %q", name)
	}
	return def.Format(value)
}

// definitions is the single static table. Order here is cosmetic; matching
// order is rebuilt longest-first at init.
var definitions = []Definition{
	// Font and text shape.
	{Name: "b", Category: CategoryFont, Parse: parseBoldValue, Format: formatBoldAny},
	{Name: "i", Category: CategoryFont, Parse: parseBoolAny, Format: formatBoolAny},
	{Name: "u", Category: CategoryFont, Parse: parseBoolAny, Format: formatBoolAny},
	{Name: "s", Category: CategoryFont, Parse: parseBoolAny, Format: formatBoolAny},
	{Name: "fn", Category: CategoryFont, Parse: parseStringAny, Format: formatStringAny},
	{Name: "fs", Category: CategoryFont, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fscx", Category: CategoryFont, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fscy", Category: CategoryFont, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fsp", Category: CategoryFont, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fe", Category: CategoryFont, Parse: parseIntAny, Format: formatIntAny},

	// Borders and shadows.
	{Name: "bord", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "xbord", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "ybord", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "shad", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "xshad", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "yshad", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "be", Category: CategoryBorder, Parse: parseIntAny, Format: formatIntAny},
	{Name: "blur", Category: CategoryBorder, Parse: parseFloatAny, Format: formatFloatAny},

	// Rotation and shear.
	{Name: "frx", Category: CategoryRotation, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fry", Category: CategoryRotation, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "frz", Category: CategoryRotation, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fr", Category: CategoryRotation, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fax", Category: CategoryRotation, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "fay", Category: CategoryRotation, Parse: parseFloatAny, Format: formatFloatAny},

	// Colours and alphas.
	{Name: "c", Category: CategoryColour, Parse: parseColourAny, Format: formatColourAny},
	{Name: "1c", Category: CategoryColour, Parse: parseColourAny, Format: formatColourAny},
	{Name: "2c", Category: CategoryColour, Parse: parseColourAny, Format: formatColourAny},
	{Name: "3c", Category: CategoryColour, Parse: parseColourAny, Format: formatColourAny},
	{Name: "4c", Category: CategoryColour, Parse: parseColourAny, Format: formatColourAny},
	{Name: "alpha", Category: CategoryColour, Parse: parseAlphaAny, Format: formatAlphaAny},
	{Name: "1a", Category: CategoryColour, Parse: parseAlphaAny, Format: formatAlphaAny},
	{Name: "2a", Category: CategoryColour, Parse: parseAlphaAny, Format: formatAlphaAny},
	{Name: "3a", Category: CategoryColour, Parse: parseAlphaAny, Format: formatAlphaAny},
	{Name: "4a", Category: CategoryColour, Parse: parseAlphaAny, Format: formatAlphaAny},

	// Alignment: whole-line scope, first occurrence wins.
	{Name: "an", Category: CategoryLayout, EventLevel: true, FirstWins: true, Excludes: []string{"a"}, Parse: parseNumpadAlignment, Format: formatAlignmentAny},
	{Name: "a", Category: CategoryLayout, EventLevel: true, FirstWins: true, Excludes: []string{"an"}, Parse: parseLegacyAlignment, Format: formatAlignmentAny},

	// Karaoke timing (centiseconds). Case-sensitive: \k and \K differ.
	{Name: "k", Category: CategoryKaraoke, Parse: parseIntAny, Format: formatIntAny},
	{Name: "K", Category: CategoryKaraoke, Parse: parseIntAny, Format: formatIntAny},
	{Name: "kf", Category: CategoryKaraoke, Parse: parseIntAny, Format: formatIntAny},
	{Name: "ko", Category: CategoryKaraoke, Parse: parseIntAny, Format: formatIntAny},

	// Wrapping and style reset.
	{Name: "q", Category: CategoryLayout, EventLevel: true, Parse: parseIntAny, Format: formatIntAny},
	{Name: "r", Category: CategoryFont, Parse: parseStringAny, Format: formatStringAny},

	// Vector drawing mode.
	{Name: "p", Category: CategoryDrawing, Parse: parseFloatAny, Format: formatFloatAny},
	{Name: "pbo", Category: CategoryDrawing, Parse: parseIntAny, Format: formatIntAny},

	// Positioning functions: whole-line scope, first occurrence wins,
	// pos and move evict each other.
	{Name: "pos", Category: CategoryPosition, Function: true, EventLevel: true, FirstWins: true, Excludes: []string{"move"}, Parse: parsePositionArgs, Format: formatPositionAny},
	{Name: "move", Category: CategoryPosition, Function: true, EventLevel: true, FirstWins: true, Excludes: []string{"pos"}, Parse: parseMoveArgs, Format: formatMoveAny},
	{Name: "org", Category: CategoryPosition, Function: true, EventLevel: true, FirstWins: true, Parse: parsePositionArgs, Format: formatPositionAny},

	// Fades: fad and fade evict each other.
	{Name: "fad", Category: CategoryAnimation, Function: true, EventLevel: true, FirstWins: true, Excludes: []string{"fade"}, Parse: parseFadeArgs, Format: formatFadeAny},
	{Name: "fade", Category: CategoryAnimation, Function: true, EventLevel: true, FirstWins: true, Excludes: []string{"fad"}, Parse: parseComplexFadeArgs, Format: formatComplexFadeAny},

	// Clips: rectangle or drawing, normal and inverse forms exclusive.
	{Name: "clip", Category: CategoryPosition, Function: true, EventLevel: true, Excludes: []string{"iclip"}, Parse: parseClipArgs, Format: formatClipAny},
	{Name: "iclip", Category: CategoryPosition, Function: true, EventLevel: true, Excludes: []string{"clip"}, Parse: parseClipArgs, Format: formatClipAny},

	// Animation transform, inline scope.
	{Name: "t", Category: CategoryAnimation, Function: true, Parse: parseTransformArgs, Format: formatTransformAny},
}
