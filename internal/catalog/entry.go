package catalog

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"substation/internal/document"
)

// Entry is one cataloged script.
type Entry struct {
	ID         string
	Path       string
	Title      string
	ScriptType string
	Styles     int
	Events     int
	Warnings   int
	Duration   document.Timecode
	AddedAt    time.Time
	UpdatedAt  time.Time
}

// summarize derives the catalog facts from a loaded document.
func summarize(path string, doc *document.Document) Entry {
	entry := Entry{
		Path:       path,
		Title:      strings.TrimSpace(doc.Info.GetString("Title")),
		ScriptType: doc.Version.String(),
		Styles:     doc.Styles.Len(),
		Events:     len(doc.Events),
		Warnings:   len(doc.Diagnostics.Warnings()),
	}
	if entry.Title == "" {
		entry.Title = titleFromPath(path)
	}
	for _, event := range doc.Events {
		if event.End > entry.Duration {
			entry.Duration = event.End
		}
	}
	return entry
}

var titleCaser = cases.Title(language.English)

// titleFromPath turns "some_show-final.ass" into "Some Show Final".
func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", ".", " ", "-", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled"
	}
	return titleCaser.String(base)
}
