package document

import (
	"fmt"

	"substation/internal/diagnostics"
	"substation/internal/scanner"
	"substation/internal/textio"
)

// LoadOptions bundles the knobs of a load.
type LoadOptions struct {
	Ingest IngestOptions
}

// Loads parses subtitle text into a Document. Structural errors abort the
// load with a *diagnostics.StructuralError; everything milder lands in the
// document's Diagnostics list.
func Loads(content string, opts LoadOptions) (*Document, error) {
	raw, diags := scanner.Scan(content)
	if diags.HasErrors() {
		return nil, &diagnostics.StructuralError{Diagnostics: diags}
	}
	doc, semantic := Ingest(raw, opts.Ingest)
	doc.Diagnostics.Extend(diags)
	doc.Diagnostics.Extend(semantic)
	return doc, nil
}

// LoadFile reads and parses a subtitle file, handling byte order marks and
// UTF-16 transparently.
func LoadFile(path string, opts LoadOptions) (*Document, error) {
	source, err := textio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := Loads(source.Text, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.hadBOM = source.HadBOM
	return doc, nil
}

// SaveFile renders the document and writes it as UTF-8, restoring the byte
// order mark if the source carried one.
func (d *Document) SaveFile(path string) error {
	if err := textio.WriteFile(path, d.Dump(), d.hadBOM); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
