package textio

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func TestDecodePlainUTF8(t *testing.T) {
	src, err := Decode([]byte("[Script Info]\nTitle: Test\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if src.HadBOM {
		t.Fatal("expected no BOM")
	}
	if src.Text != "[Script Info]\nTitle: Test\n" {
		t.Fatalf("unexpected text %q", src.Text)
	}
}

func TestDecodeStripsUTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[Script Info]\r\n")...)
	src, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !src.HadBOM {
		t.Fatal("expected BOM flag")
	}
	if src.Text != "[Script Info]\r\n" {
		t.Fatalf("expected BOM stripped, got %q", src.Text)
	}
}

func TestDecodeUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, _, err := transform.Bytes(enc, []byte("Dialogue: 0"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	src, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !src.HadBOM {
		t.Fatal("expected BOM flag for UTF-16 input")
	}
	if src.Text != "Dialogue: 0" {
		t.Fatalf("expected UTF-16 text decoded, got %q", src.Text)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	out := Encode("abc", true)
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("expected BOM prefix, got % x", out[:3])
	}
	src, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if src.Text != "abc" || !src.HadBOM {
		t.Fatalf("round trip mismatch: %+v", src)
	}
}
