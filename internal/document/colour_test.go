package document

import "testing"

func TestParseStyleColour(t *testing.T) {
	cases := []struct {
		in   string
		want Colour
	}{
		{"&H00FFFFFF", Colour{A: 0x00, R: 0xFF, G: 0xFF, B: 0xFF}},
		{"&H80FF0000", Colour{A: 0x80, B: 0xFF}},
		{"&H0000FF&", Colour{R: 0xFF}},
		{"&HFFFFFF", Colour{R: 0xFF, G: 0xFF, B: 0xFF}},
		{"16777215", Colour{R: 0xFF, G: 0xFF, B: 0xFF}},
		{"255", Colour{R: 0xFF}},
		{"-2147483640", Colour{A: 0x80, R: 0x08}},
		{"0", Colour{}},
	}
	for _, c := range cases {
		got, err := ParseStyleColour(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parse %q: expected %+v, got %+v", c.in, c.want, got)
		}
	}
}

func TestParseStyleColourRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "&H", "&HGG0000", "&H123456789", "red"} {
		if _, err := ParseStyleColour(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestColourString(t *testing.T) {
	c := Colour{A: 0x00, R: 0x12, G: 0x34, B: 0x56}
	if c.String() != "&H00563412" {
		t.Fatalf("unexpected rendering %q", c.String())
	}
}
