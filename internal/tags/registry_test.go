package tags

import (
	"testing"
)

func mustParse(t *testing.T, name, raw string) any {
	t.Helper()
	def, ok := Lookup(name)
	if !ok {
		t.Fatalf("tag %q not registered", name)
	}
	value, err := def.Parse(raw)
	if err != nil {
		t.Fatalf("parse \\%s%s: %v", name, raw, err)
	}
	return value
}

func TestLookupCaseSensitive(t *testing.T) {
	lower, ok := Lookup("k")
	if !ok {
		t.Fatal("expected \\k registered")
	}
	upper, ok := Lookup("K")
	if !ok {
		t.Fatal("expected \\K registered")
	}
	if lower == upper {
		t.Fatal("expected \\k and \\K to be distinct definitions")
	}
}

func TestNamesLongestFirst(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if len(names[i]) > len(names[i-1]) {
			t.Fatalf("names not longest-first: %q after %q", names[i], names[i-1])
		}
	}
}

func TestClipRectangle(t *testing.T) {
	value := mustParse(t, "clip", "10,20,30,40")
	clip, ok := value.(Clip)
	if !ok || clip.Rect == nil {
		t.Fatalf("expected rectangle clip, got %#v", value)
	}
	if *clip.Rect != (Rect{X1: 10, Y1: 20, X2: 30, Y2: 40}) {
		t.Fatalf("unexpected rectangle %+v", *clip.Rect)
	}
	out, err := Format("clip", clip)
	if err != nil || out != "(10,20,30,40)" {
		t.Fatalf("expected (10,20,30,40), got %q (%v)", out, err)
	}
}

func TestClipScaledDrawing(t *testing.T) {
	value := mustParse(t, "clip", "2,m 0 0 l 100 0 100 100 0 100")
	clip := value.(Clip)
	if clip.Rect != nil {
		t.Fatalf("expected drawing clip, got rectangle %+v", clip.Rect)
	}
	if !clip.HasScale || clip.Scale != 2 {
		t.Fatalf("expected scale 2, got %+v", clip)
	}
	if clip.Drawing != "m 0 0 l 100 0 100 100 0 100" {
		t.Fatalf("unexpected drawing %q", clip.Drawing)
	}
}

func TestClipBareDrawing(t *testing.T) {
	value := mustParse(t, "clip", "m 0 0 l 10 0 10 10")
	clip := value.(Clip)
	if clip.HasScale || clip.Rect != nil {
		t.Fatalf("expected bare drawing, got %+v", clip)
	}
}

func TestMoveShapes(t *testing.T) {
	plain := mustParse(t, "move", "0,0,10,10").(Move)
	if plain.Timed {
		t.Fatalf("expected untimed move, got %+v", plain)
	}
	timed := mustParse(t, "move", "0,0,10,10,250,500").(Move)
	if !timed.Timed || timed.T1 != 250 || timed.T2 != 500 {
		t.Fatalf("expected timed move, got %+v", timed)
	}
	if _, err := registry["move"].Parse("1,2,3"); err == nil {
		t.Fatal("expected error for 3-argument move")
	}
}

func TestTransformShapes(t *testing.T) {
	cases := []struct {
		raw  string
		want Transform
	}{
		{`\fs20`, Transform{Tags: `\fs20`}},
		{`0.5,\fs20`, Transform{Accel: 0.5, HasAccel: true, Tags: `\fs20`}},
		{`100,300,\fs20`, Transform{T1: 100, T2: 300, HasWindow: true, Tags: `\fs20`}},
		{`100,300,0.8,\fs20\c&HFF0000&`, Transform{T1: 100, T2: 300, HasWindow: true, Accel: 0.8, HasAccel: true, Tags: `\fs20\c&HFF0000&`}},
		// Nested function tag: the inner comma sits at paren depth > 0.
		{`\clip(0,0,10,10)`, Transform{Tags: `\clip(0,0,10,10)`}},
	}
	for _, tc := range cases {
		got := mustParse(t, "t", tc.raw).(Transform)
		if got != tc.want {
			t.Fatalf("transform %q: expected %+v, got %+v", tc.raw, tc.want, got)
		}
		out, err := Format("t", got)
		if err != nil {
			t.Fatalf("format transform: %v", err)
		}
		if out != "("+tc.raw+")" {
			t.Fatalf("transform round trip: expected %q, got %q", "("+tc.raw+")", out)
		}
	}
}

func TestBoldForms(t *testing.T) {
	if b := mustParse(t, "b", "1").(Bold); !b.On || b.Weight != 0 {
		t.Fatalf("expected boolean bold on, got %+v", b)
	}
	if b := mustParse(t, "b", "0").(Bold); b.On {
		t.Fatalf("expected boolean bold off, got %+v", b)
	}
	if b := mustParse(t, "b", "700").(Bold); b.Weight != 700 {
		t.Fatalf("expected weight 700, got %+v", b)
	}
	if _, err := registry["b"].Parse("350"); err == nil {
		t.Fatal("expected error for weight 350")
	}
	if _, err := registry["b"].Parse("2"); err == nil {
		t.Fatal("expected error for bold 2")
	}
}

func TestAlignmentForms(t *testing.T) {
	an := mustParse(t, "an", "8").(Alignment)
	if an.Legacy || an.Value != 8 {
		t.Fatalf("expected numpad 8, got %+v", an)
	}
	legacy := mustParse(t, "a", "10").(Alignment)
	if !legacy.Legacy || legacy.Value != 10 {
		t.Fatalf("expected legacy 10, got %+v", legacy)
	}
	if _, err := registry["a"].Parse("4"); err == nil {
		t.Fatal("expected error for legacy alignment 4")
	}
	if _, err := registry["an"].Parse("0"); err == nil {
		t.Fatal("expected error for numpad alignment 0")
	}
}

func TestColourParsing(t *testing.T) {
	c := mustParse(t, "c", "&H0000FF&").(Colour)
	if c != (Colour{R: 0xFF}) {
		t.Fatalf("expected pure red, got %+v", c)
	}
	if c.String() != "&H0000FF&" {
		t.Fatalf("unexpected colour formatting %q", c.String())
	}
	// Trailing & is tolerated when missing.
	c = mustParse(t, "c", "&HFF0000").(Colour)
	if c != (Colour{B: 0xFF}) {
		t.Fatalf("expected pure blue, got %+v", c)
	}
	if _, err := registry["c"].Parse("&HAABBCCDD&"); err == nil {
		t.Fatal("expected error for 8-digit inline colour")
	}
}

func TestAlphaParsing(t *testing.T) {
	a := mustParse(t, "alpha", "&H80&").(Alpha)
	if a != 0x80 {
		t.Fatalf("expected 0x80, got %02X", uint8(a))
	}
	if a.String() != "&H80&" {
		t.Fatalf("unexpected alpha formatting %q", a.String())
	}
}

func TestFadeForms(t *testing.T) {
	fad := mustParse(t, "fad", "200,300").(Fade)
	if fad != (Fade{In: 200, Out: 300}) {
		t.Fatalf("unexpected fade %+v", fad)
	}
	fade := mustParse(t, "fade", "255,0,255,0,500,2000,2500").(ComplexFade)
	if fade.A1 != 255 || fade.T4 != 2500 {
		t.Fatalf("unexpected complex fade %+v", fade)
	}
	if _, err := registry["fade"].Parse("1,2,3"); err == nil {
		t.Fatal("expected error for short complex fade")
	}
}

func TestExclusionSets(t *testing.T) {
	pos, _ := Lookup("pos")
	if !pos.ExcludedBy("move") {
		t.Fatal("expected pos to exclude move")
	}
	fad, _ := Lookup("fad")
	if !fad.ExcludedBy("fade") {
		t.Fatal("expected fad to exclude fade")
	}
	clip, _ := Lookup("clip")
	if !clip.ExcludedBy("iclip") {
		t.Fatal("expected clip to exclude iclip")
	}
}

func TestEventLevelFlags(t *testing.T) {
	for _, name := range []string{"pos", "move", "org", "fad", "fade", "an", "a", "clip", "iclip", "q"} {
		def, ok := Lookup(name)
		if !ok || !def.EventLevel {
			t.Fatalf("expected %q to be event-level", name)
		}
	}
	for _, name := range []string{"b", "i", "c", "t", "fs", "r"} {
		def, ok := Lookup(name)
		if !ok || def.EventLevel {
			t.Fatalf("expected %q to be inline", name)
		}
	}
}
