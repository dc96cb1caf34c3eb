package tags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadValue = errors.New("malformed tag value")

func parseFloatValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errBadValue, raw)
	}
	return f, nil
}

func parseIntValue(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errBadValue, raw)
	}
	return n, nil
}

func parseBoolValue(raw string) (bool, error) {
	switch strings.TrimSpace(raw) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q is not 0 or 1", errBadValue, raw)
}

func isNumber(raw string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil
}

// splitTopLevel splits on commas at parenthesis depth zero, so nested
// function tags inside \t(...) arguments stay intact.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseColour reads the inline form &HBBGGRR&. The leading &H and trailing &
// are each tolerated when missing; shorter hex runs are zero-extended from
// the left the way renderers treat them.
func parseColour(raw string) (Colour, error) {
	hexDigits, err := stripColourDecoration(raw)
	if err != nil {
		return Colour{}, err
	}
	if len(hexDigits) > 6 {
		// Style-table colours carry alpha in the top byte; inline values
		// must not.
		return Colour{}, fmt.Errorf("%w: colour %q has more than 6 hex digits", errBadValue, raw)
	}
	v, err := strconv.ParseUint(hexDigits, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: colour %q is not hexadecimal", errBadValue, raw)
	}
	return Colour{
		B: uint8(v >> 16),
		G: uint8(v >> 8),
		R: uint8(v),
	}, nil
}

func parseAlpha(raw string) (Alpha, error) {
	hexDigits, err := stripColourDecoration(raw)
	if err != nil {
		return 0, err
	}
	if len(hexDigits) > 2 {
		return 0, fmt.Errorf("%w: alpha %q has more than 2 hex digits", errBadValue, raw)
	}
	v, err := strconv.ParseUint(hexDigits, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: alpha %q is not hexadecimal", errBadValue, raw)
	}
	return Alpha(v), nil
}

func stripColourDecoration(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "&")
	s = strings.TrimPrefix(s, "&")
	if len(s) >= 1 && (s[0] == 'H' || s[0] == 'h') {
		s = s[1:]
	}
	if s == "" {
		return "", fmt.Errorf("%w: empty colour value", errBadValue)
	}
	return s, nil
}

func parsePositionArgs(raw string) (any, error) {
	parts := splitTopLevel(raw)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected 2 arguments, got %d", errBadValue, len(parts))
	}
	x, err := parseFloatValue(parts[0])
	if err != nil {
		return nil, err
	}
	y, err := parseFloatValue(parts[1])
	if err != nil {
		return nil, err
	}
	return Position{X: x, Y: y}, nil
}

func parseMoveArgs(raw string) (any, error) {
	parts := splitTopLevel(raw)
	if len(parts) != 4 && len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 4 or 6 arguments, got %d", errBadValue, len(parts))
	}
	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		f, err := parseFloatValue(parts[i])
		if err != nil {
			return nil, err
		}
		coords[i] = f
	}
	move := Move{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}
	if len(parts) == 6 {
		t1, err := parseIntValue(parts[4])
		if err != nil {
			return nil, err
		}
		t2, err := parseIntValue(parts[5])
		if err != nil {
			return nil, err
		}
		move.T1, move.T2, move.Timed = t1, t2, true
	}
	return move, nil
}

// parseClipArgs disambiguates the rectangle form (four integers) from the
// drawing form (optional integer scale plus an opaque drawing string).
func parseClipArgs(raw string) (any, error) {
	parts := splitTopLevel(raw)
	switch len(parts) {
	case 4:
		coords := make([]int, 4)
		rect := true
		for i, part := range parts {
			n, err := parseIntValue(part)
			if err != nil {
				rect = false
				break
			}
			coords[i] = n
		}
		if rect {
			return Clip{Rect: &Rect{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}}, nil
		}
		return nil, fmt.Errorf("%w: 4-argument clip must be integers", errBadValue)
	case 2:
		scale, err := parseIntValue(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: clip scale %q is not an integer", errBadValue, parts[0])
		}
		drawing := strings.TrimSpace(parts[1])
		if drawing == "" {
			return nil, fmt.Errorf("%w: empty clip drawing", errBadValue)
		}
		return Clip{Scale: scale, HasScale: true, Drawing: drawing}, nil
	case 1:
		drawing := strings.TrimSpace(parts[0])
		if drawing == "" {
			return nil, fmt.Errorf("%w: empty clip", errBadValue)
		}
		return Clip{Drawing: drawing}, nil
	default:
		return nil, fmt.Errorf("%w: expected 1, 2, or 4 clip arguments, got %d", errBadValue, len(parts))
	}
}

func parseFadeArgs(raw string) (any, error) {
	parts := splitTopLevel(raw)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected 2 fade arguments, got %d", errBadValue, len(parts))
	}
	in, err := parseIntValue(parts[0])
	if err != nil {
		return nil, err
	}
	out, err := parseIntValue(parts[1])
	if err != nil {
		return nil, err
	}
	return Fade{In: in, Out: out}, nil
}

func parseComplexFadeArgs(raw string) (any, error) {
	parts := splitTopLevel(raw)
	if len(parts) != 7 {
		return nil, fmt.Errorf("%w: expected 7 fade arguments, got %d", errBadValue, len(parts))
	}
	values := make([]int, 7)
	for i, part := range parts {
		n, err := parseIntValue(part)
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return ComplexFade{
		A1: values[0], A2: values[1], A3: values[2],
		T1: values[3], T2: values[4], T3: values[5], T4: values[6],
	}, nil
}

// parseTransformArgs handles the four call shapes of \t:
// (tags), (accel,tags), (t1,t2,tags), and (t1,t2,accel,tags), telling them
// apart by the top-level comma count and whether the leading segments parse
// as numbers.
func parseTransformArgs(raw string) (any, error) {
	parts := splitTopLevel(raw)
	joinTags := func(from int) string { return strings.Join(parts[from:], ",") }

	switch {
	case len(parts) == 1:
		return Transform{Tags: parts[0]}, nil
	case len(parts) == 2 && isNumber(parts[0]):
		accel, err := parseFloatValue(parts[0])
		if err != nil {
			return nil, err
		}
		return Transform{Accel: accel, HasAccel: true, Tags: parts[1]}, nil
	case len(parts) == 3 && isNumber(parts[0]) && isNumber(parts[1]):
		t1, err := parseIntValue(parts[0])
		if err != nil {
			return nil, err
		}
		t2, err := parseIntValue(parts[1])
		if err != nil {
			return nil, err
		}
		return Transform{T1: t1, T2: t2, HasWindow: true, Tags: parts[2]}, nil
	case len(parts) >= 4 && isNumber(parts[0]) && isNumber(parts[1]) && isNumber(parts[2]):
		t1, err := parseIntValue(parts[0])
		if err != nil {
			return nil, err
		}
		t2, err := parseIntValue(parts[1])
		if err != nil {
			return nil, err
		}
		accel, err := parseFloatValue(parts[2])
		if err != nil {
			return nil, err
		}
		return Transform{T1: t1, T2: t2, HasWindow: true, Accel: accel, HasAccel: true, Tags: joinTags(3)}, nil
	default:
		// Leading segment is not numeric: the whole payload is tags even if
		// it contains top-level commas.
		return Transform{Tags: raw}, nil
	}
}

func parseBoldValue(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: bold %q is not 0, 1, or a weight", errBadValue, raw)
	}
	switch {
	case n == 0:
		return Bold{On: false}, nil
	case n == 1:
		return Bold{On: true}, nil
	case n >= 100 && n <= 900 && n%100 == 0:
		return Bold{On: true, Weight: n}, nil
	}
	return nil, fmt.Errorf("%w: bold weight %d not in 100..900", errBadValue, n)
}

func parseNumpadAlignment(raw string) (any, error) {
	n, err := parseIntValue(raw)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > 9 {
		return nil, fmt.Errorf("%w: alignment %d not in 1..9", errBadValue, n)
	}
	return Alignment{Value: n}, nil
}

var legacyAlignments = map[int]bool{
	1: true, 2: true, 3: true,
	5: true, 6: true, 7: true,
	9: true, 10: true, 11: true,
}

func parseLegacyAlignment(raw string) (any, error) {
	n, err := parseIntValue(raw)
	if err != nil {
		return nil, err
	}
	if !legacyAlignments[n] {
		return nil, fmt.Errorf("%w: legacy alignment %d not valid", errBadValue, n)
	}
	return Alignment{Value: n, Legacy: true}, nil
}
