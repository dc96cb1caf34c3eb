package document

import (
	"fmt"

	"substation/internal/fields"
)

// Version selects between the legacy SSA schema and the extended ASS one.
type Version int

const (
	V4 Version = iota
	V4Plus
)

// ParseVersion reads a ScriptType value such as "v4.00+" or "V4.00".
func ParseVersion(s string) (Version, error) {
	switch fields.Normalize(s) {
	case "v4.00", "v4.0", "v4":
		return V4, nil
	case "v4.00+", "v4.0+", "v4+":
		return V4Plus, nil
	}
	return V4Plus, fmt.Errorf("unknown script type %q", s)
}

// String renders the ScriptType value.
func (v Version) String() string {
	if v == V4 {
		return "v4.00"
	}
	return "v4.00+"
}

// StyleSectionName returns the canonical styles header for the version.
func (v Version) StyleSectionName() string {
	if v == V4 {
		return "V4 Styles"
	}
	return "V4+ Styles"
}
