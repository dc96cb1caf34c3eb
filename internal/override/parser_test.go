package override

import (
	"testing"

	"substation/internal/tags"
)

func TestParsePlainAndSpecials(t *testing.T) {
	elements := Parse(`first\Nsecond\hline\nsoft`)
	want := []TextElement{
		PlainText{Text: "first"},
		SpecialChar{Kind: HardNewline},
		PlainText{Text: "second"},
		SpecialChar{Kind: HardSpace},
		PlainText{Text: "line"},
		SpecialChar{Kind: SoftNewline},
		PlainText{Text: "soft"},
	}
	if len(elements) != len(want) {
		t.Fatalf("expected %d elements, got %d: %#v", len(want), len(elements), elements)
	}
	for i := range want {
		if elements[i] != want[i] {
			t.Fatalf("element %d: expected %#v, got %#v", i, want[i], elements[i])
		}
	}
}

func TestParseSimpleBlock(t *testing.T) {
	elements := Parse(`{\b1\i1}Hello`)
	if len(elements) != 2 {
		t.Fatalf("expected block + text, got %#v", elements)
	}
	block, ok := elements[0].(OverrideBlock)
	if !ok {
		t.Fatalf("expected OverrideBlock, got %#v", elements[0])
	}
	if len(block.Items) != 2 {
		t.Fatalf("expected 2 tags, got %#v", block.Items)
	}
	b := block.Items[0].(OverrideTag)
	if b.Name != "b" || b.Raw != `\b1` {
		t.Fatalf("unexpected bold tag %#v", b)
	}
	if bold := b.Value.(tags.Bold); !bold.On {
		t.Fatalf("expected bold on, got %#v", bold)
	}
}

func TestParseLongestFirstMatching(t *testing.T) {
	elements := Parse(`{\1c&HFF0000&\1a&H80&\fscx120\fr30}x`)
	block := elements[0].(OverrideBlock)
	names := []string{}
	for _, item := range block.Items {
		tag, ok := item.(OverrideTag)
		if !ok {
			t.Fatalf("expected all tags, got %#v", item)
		}
		names = append(names, tag.Name)
	}
	want := []string{"1c", "1a", "fscx", "fr"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, names)
		}
	}
}

func TestParseFunctionTagNested(t *testing.T) {
	elements := Parse(`{\t(0,500,\clip(0,0,100,100))}x`)
	block := elements[0].(OverrideBlock)
	if len(block.Items) != 1 {
		t.Fatalf("expected single transform, got %#v", block.Items)
	}
	tag := block.Items[0].(OverrideTag)
	if tag.Name != "t" || !tag.Function {
		t.Fatalf("unexpected tag %#v", tag)
	}
	tr := tag.Value.(tags.Transform)
	if !tr.HasWindow || tr.T1 != 0 || tr.T2 != 500 {
		t.Fatalf("unexpected transform window %#v", tr)
	}
	if tr.Tags != `\clip(0,0,100,100)` {
		t.Fatalf("unexpected nested payload %q", tr.Tags)
	}
	if tag.Raw != `\t(0,500,\clip(0,0,100,100))` {
		t.Fatalf("unexpected raw %q", tag.Raw)
	}
}

func TestParseUnknownTagBecomesComment(t *testing.T) {
	elements := Parse(`{\zzz123}Text`)
	block := elements[0].(OverrideBlock)
	if len(block.Items) != 1 {
		t.Fatalf("expected one item, got %#v", block.Items)
	}
	comment, ok := block.Items[0].(Comment)
	if !ok {
		t.Fatalf("expected Comment, got %#v", block.Items[0])
	}
	if comment.Text != `\zzz123` {
		t.Fatalf("expected verbatim comment, got %q", comment.Text)
	}
}

func TestParseFreeTextComment(t *testing.T) {
	elements := Parse(`{this is a note\b1}x`)
	block := elements[0].(OverrideBlock)
	if len(block.Items) != 2 {
		t.Fatalf("expected comment + tag, got %#v", block.Items)
	}
	if c := block.Items[0].(Comment); c.Text != "this is a note" {
		t.Fatalf("unexpected comment %q", c.Text)
	}
	if tag := block.Items[1].(OverrideTag); tag.Name != "b" {
		t.Fatalf("unexpected tag %#v", tag)
	}
}

func TestParseMalformedValueKeptAsComment(t *testing.T) {
	elements := Parse(`{\b9}x`)
	block := elements[0].(OverrideBlock)
	if _, ok := block.Items[0].(Comment); !ok {
		t.Fatalf("expected malformed bold preserved as comment, got %#v", block.Items[0])
	}
}

func TestParseUnterminatedBlockIsPlainText(t *testing.T) {
	elements := Parse(`before{\b1 and no close`)
	if len(elements) != 1 {
		t.Fatalf("expected single plain run, got %#v", elements)
	}
	plain := elements[0].(PlainText)
	if plain.Text != `before{\b1 and no close` {
		t.Fatalf("unexpected text %q", plain.Text)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		`plain text only`,
		`line one\Nline two`,
		`{\b1}Hello{\b0} world`,
		`{\pos(100,200)\b1}Hello`,
		`{\an8\fad(200,300)}top`,
		`{\t(0,500,0.5,\fs40\c&H00FF00&)}grow`,
		`{\clip(2,m 0 0 l 100 0 100 100 0 100)}drawn`,
		`{\zzz123}unknown`,
		`{vendor note\b1\unknown}mixed`,
		`a\hb\nc`,
		`{\k25}ka{\k30}ra{\k45}o{\k20}ke`,
		`{\1c&HFF0000&\3c&H000000&}coloured`,
		`{\move(0,0,100,100,250,750)}slide`,
		`{\fade(255,0,255,0,500,2000,2500)}fade`,
		`{\r}reset{\rAlt}styled`,
	}
	for _, tc := range cases {
		if got := Render(Parse(tc)); got != tc {
			t.Fatalf("round trip failed:\n in %q\nout %q", tc, got)
		}
	}
}

func TestRenderSynthesizedTag(t *testing.T) {
	block := OverrideBlock{Items: []BlockItem{
		OverrideTag{Name: "pos", Value: tags.Position{X: 10, Y: 20}, Function: true},
		OverrideTag{Name: "b", Value: tags.Bold{On: true}},
	}}
	got := Render([]TextElement{block, PlainText{Text: "hi"}})
	if got != `{\pos(10,20)\b1}hi` {
		t.Fatalf("unexpected render %q", got)
	}
}
