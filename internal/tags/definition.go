package tags

import (
	"fmt"
	"strconv"
)

// ParseFunc converts the raw value text after a tag name into a typed value.
type ParseFunc func(raw string) (any, error)

// FormatFunc is the inverse of ParseFunc. For function tags the result
// includes the surrounding parentheses.
type FormatFunc func(value any) (string, error)

// Definition describes one override tag: its syntax class, scoping and
// conflict policy, and the parse/format pair for its value.
type Definition struct {
	Name       string
	Category   string
	Function   bool
	EventLevel bool
	FirstWins  bool
	Excludes   []string
	Parse      ParseFunc
	Format     FormatFunc
}

// ExcludedBy reports whether other is in this tag's mutual-exclusion set.
func (d *Definition) ExcludedBy(other string) bool {
	for _, name := range d.Excludes {
		if name == other {
			return true
		}
	}
	return false
}

func parseFloatAny(raw string) (any, error) { return parseFloatValue(raw) }
func parseIntAny(raw string) (any, error)   { return parseIntValue(raw) }
func parseBoolAny(raw string) (any, error)  { return parseBoolValue(raw) }

func parseStringAny(raw string) (any, error) { return raw, nil }

func parseColourAny(raw string) (any, error) { return parseColour(raw) }
func parseAlphaAny(raw string) (any, error)  { return parseAlpha(raw) }

func formatFloatAny(value any) (string, error) {
	f, ok := value.(float64)
	if !ok {
		return "", fmt.Errorf("expected float value, got %T", value)
	}
	return formatFloat(f), nil
}

func formatIntAny(value any) (string, error) {
	n, ok := value.(int)
	if !ok {
		return "", fmt.Errorf("expected int value, got %T", value)
	}
	return strconv.Itoa(n), nil
}

func formatBoolAny(value any) (string, error) {
	b, ok := value.(bool)
	if !ok {
		return "", fmt.Errorf("expected bool value, got %T", value)
	}
	if b {
		return "1", nil
	}
	return "0", nil
}

func formatStringAny(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string value, got %T", value)
	}
	return s, nil
}

func formatColourAny(value any) (string, error) {
	c, ok := value.(Colour)
	if !ok {
		return "", fmt.Errorf("expected colour value, got %T", value)
	}
	return c.String(), nil
}

func formatAlphaAny(value any) (string, error) {
	a, ok := value.(Alpha)
	if !ok {
		return "", fmt.Errorf("expected alpha value, got %T", value)
	}
	return a.String(), nil
}

func formatBoldAny(value any) (string, error) {
	b, ok := value.(Bold)
	if !ok {
		return "", fmt.Errorf("expected bold value, got %T", value)
	}
	return b.String(), nil
}

func formatAlignmentAny(value any) (string, error) {
	a, ok := value.(Alignment)
	if !ok {
		return "", fmt.Errorf("expected alignment value, got %T", value)
	}
	return strconv.Itoa(a.Value), nil
}

func formatPositionAny(value any) (string, error) {
	p, ok := value.(Position)
	if !ok {
		return "", fmt.Errorf("expected position value, got %T", value)
	}
	return "(" + p.args() + ")", nil
}

func formatMoveAny(value any) (string, error) {
	m, ok := value.(Move)
	if !ok {
		return "", fmt.Errorf("expected move value, got %T", value)
	}
	return "(" + m.args() + ")", nil
}

func formatClipAny(value any) (string, error) {
	c, ok := value.(Clip)
	if !ok {
		return "", fmt.Errorf("expected clip value, got %T", value)
	}
	return "(" + c.args() + ")", nil
}

func formatFadeAny(value any) (string, error) {
	f, ok := value.(Fade)
	if !ok {
		return "", fmt.Errorf("expected fade value, got %T", value)
	}
	return fmt.Sprintf("(%d,%d)", f.In, f.Out), nil
}

func formatComplexFadeAny(value any) (string, error) {
	f, ok := value.(ComplexFade)
	if !ok {
		return "", fmt.Errorf("expected complex fade value, got %T", value)
	}
	return fmt.Sprintf("(%d,%d,%d,%d,%d,%d,%d)", f.A1, f.A2, f.A3, f.T1, f.T2, f.T3, f.T4), nil
}

func formatTransformAny(value any) (string, error) {
	t, ok := value.(Transform)
	if !ok {
		return "", fmt.Errorf("expected transform value, got %T", value)
	}
	return "(" + t.args() + ")", nil
}
