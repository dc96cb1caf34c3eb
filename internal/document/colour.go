package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is a style colour with alpha, stored in the file as &HAABBGGRR.
// Alpha 0x00 is fully opaque. SSA scripts may also carry plain decimal
// values, including negative ones from signed 32-bit writers; both parse.
type Colour struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// ParseStyleColour accepts &HAABBGGRR, &HBBGGRR, bare hex, and decimal
// forms. A trailing & from the inline-tag spelling is tolerated.
func ParseStyleColour(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	raw := strings.TrimSuffix(s, "&")

	if rest, ok := strings.CutPrefix(raw, "&H"); ok {
		raw = rest
	} else if rest, ok := strings.CutPrefix(raw, "&h"); ok {
		raw = rest
	} else if rest, ok := strings.CutPrefix(raw, "H"); ok {
		raw = rest
	} else if !strings.ContainsAny(raw, "abcdefABCDEF") {
		// Decimal, possibly negative from a signed writer.
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid colour %q", s)
		}
		return colourFromUint32(uint32(n)), nil
	}

	if raw == "" || len(raw) > 8 {
		return Colour{}, fmt.Errorf("invalid colour %q", s)
	}
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("invalid colour %q", s)
	}
	return colourFromUint32(uint32(n)), nil
}

func colourFromUint32(v uint32) Colour {
	return Colour{
		A: uint8(v >> 24),
		B: uint8(v >> 16),
		G: uint8(v >> 8),
		R: uint8(v),
	}
}

// String renders the V4+ style form &HAABBGGRR.
func (c Colour) String() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", c.A, c.B, c.G, c.R)
}
