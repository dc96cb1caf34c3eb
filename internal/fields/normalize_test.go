package fields

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PlayResX", "playresx"},
		{"Play ResX", "playresx"},
		{"play_res_x", "playresx"},
		{"ScriptType", "scripttype"},
		{"Original Script", "originalscript"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCanonicalAliases(t *testing.T) {
	if got := Canonical("TertiaryColour"); got != "outlinecolour" {
		t.Fatalf("expected outlinecolour, got %q", got)
	}
	if got := Canonical("Actor"); got != "name" {
		t.Fatalf("expected name, got %q", got)
	}
	if got := Canonical("PrimaryColor"); got != "primarycolour" {
		t.Fatalf("expected primarycolour, got %q", got)
	}
	if got := Canonical("Effect"); got != "effect" {
		t.Fatalf("expected effect, got %q", got)
	}
}

func TestCasingFallback(t *testing.T) {
	if got := Casing("outlinecolour"); got != "OutlineColour" {
		t.Fatalf("expected OutlineColour, got %q", got)
	}
	if got := Casing("vendorfield"); got != "vendorfield" {
		t.Fatalf("expected passthrough for unknown field, got %q", got)
	}
}
