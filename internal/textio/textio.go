package textio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source is decoded subtitle text plus the encoding facts needed to write it
// back the way it arrived.
type Source struct {
	Text   string
	HadBOM bool
}

// Decode converts raw file bytes to UTF-8 text. UTF-16 (either byte order,
// BOM required) and BOM-prefixed UTF-8 are accepted; anything else is passed
// through as UTF-8.
func Decode(raw []byte) (Source, error) {
	hadBOM := detectBOM(raw)

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return Source{}, fmt.Errorf("decode subtitle text: %w", err)
	}
	return Source{Text: string(decoded), HadBOM: hadBOM}, nil
}

// ReadFile loads and decodes a subtitle file.
func ReadFile(path string) (Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read subtitle file: %w", err)
	}
	src, err := Decode(raw)
	if err != nil {
		return Source{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return src, nil
}

// ReadAll decodes a whole stream.
func ReadAll(r io.Reader) (Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("read subtitle stream: %w", err)
	}
	return Decode(raw)
}

// Encode renders text as UTF-8 bytes, prefixing a BOM when requested.
func Encode(text string, withBOM bool) []byte {
	if !withBOM {
		return []byte(text)
	}
	out := make([]byte, 0, len(utf8BOM)+len(text))
	out = append(out, utf8BOM...)
	return append(out, text...)
}

// WriteFile writes UTF-8 subtitle text to disk.
func WriteFile(path, text string, withBOM bool) error {
	if err := os.WriteFile(path, Encode(text, withBOM), 0o644); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	return nil
}

func detectBOM(raw []byte) bool {
	if bytes.HasPrefix(raw, utf8BOM) {
		return true
	}
	if len(raw) >= 2 {
		if (raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF) {
			return true
		}
	}
	return false
}
