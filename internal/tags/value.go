package tags

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is the argument pair of \pos and \org.
type Position struct {
	X, Y float64
}

func (p Position) args() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}

// Move is the 4- or 6-argument form of \move. T1/T2 are milliseconds and
// only meaningful when Timed is set.
type Move struct {
	X1, Y1, X2, Y2 float64
	T1, T2         int
	Timed          bool
}

func (m Move) args() string {
	base := fmt.Sprintf("%s,%s,%s,%s", formatFloat(m.X1), formatFloat(m.Y1), formatFloat(m.X2), formatFloat(m.Y2))
	if !m.Timed {
		return base
	}
	return fmt.Sprintf("%s,%d,%d", base, m.T1, m.T2)
}

// Rect is the rectangle form of \clip and \iclip.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Clip is either a rectangle or a vector drawing with an optional
// coordinate scale. Exactly one of Rect and Drawing is populated.
type Clip struct {
	Rect     *Rect
	Scale    int
	HasScale bool
	Drawing  string
}

func (c Clip) args() string {
	if c.Rect != nil {
		return fmt.Sprintf("%d,%d,%d,%d", c.Rect.X1, c.Rect.Y1, c.Rect.X2, c.Rect.Y2)
	}
	if c.HasScale {
		return fmt.Sprintf("%d,%s", c.Scale, c.Drawing)
	}
	return c.Drawing
}

// Fade is the two-argument \fad form, durations in milliseconds.
type Fade struct {
	In, Out int
}

// ComplexFade is the seven-argument \fade form: three alpha stops and four
// timestamps.
type ComplexFade struct {
	A1, A2, A3     int
	T1, T2, T3, T4 int
}

// Transform is the \t animation tag. Tags holds the raw override-tag payload
// verbatim; nested function tags inside it keep their parentheses.
type Transform struct {
	T1, T2    int
	HasWindow bool
	Accel     float64
	HasAccel  bool
	Tags      string
}

func (t Transform) args() string {
	var parts []string
	if t.HasWindow {
		parts = append(parts, strconv.Itoa(t.T1), strconv.Itoa(t.T2))
	}
	if t.HasAccel {
		parts = append(parts, formatFloat(t.Accel))
	}
	parts = append(parts, t.Tags)
	return strings.Join(parts, ",")
}

// Colour is the inline colour payload (&HBBGGRR& on the wire, no alpha).
type Colour struct {
	R, G, B uint8
}

// String renders the wire form.
func (c Colour) String() string {
	return fmt.Sprintf("&H%02X%02X%02X&", c.B, c.G, c.R)
}

// Alpha is the inline alpha payload (&HAA&), 0 opaque, 255 transparent.
type Alpha uint8

// String renders the wire form.
func (a Alpha) String() string {
	return fmt.Sprintf("&H%02X&", uint8(a))
}

// Alignment is a numpad (\an1-9) or legacy (\a) alignment value.
type Alignment struct {
	Value  int
	Legacy bool
}

// Bold is the \b payload: boolean toggle or an explicit font weight.
// Weight zero means the boolean form is in effect.
type Bold struct {
	On     bool
	Weight int
}

func (b Bold) String() string {
	if b.Weight != 0 {
		return strconv.Itoa(b.Weight)
	}
	if b.On {
		return "1"
	}
	return "0"
}

// formatFloat renders a float the way ASS files write them: no exponent,
// no trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
