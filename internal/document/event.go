package document

import (
	"substation/internal/extract"
	"substation/internal/fields"
	"substation/internal/override"
)

// EventKind is the record descriptor of an event line.
type EventKind int

const (
	Dialogue EventKind = iota
	CommentEvent
	Picture
	Sound
	Movie
	Command
)

var eventKindNames = map[string]EventKind{
	"dialogue": Dialogue,
	"comment":  CommentEvent,
	"picture":  Picture,
	"sound":    Sound,
	"movie":    Movie,
	"command":  Command,
}

// ParseEventKind matches a record descriptor case-insensitively.
func ParseEventKind(descriptor string) (EventKind, bool) {
	kind, ok := eventKindNames[fields.Normalize(descriptor)]
	return kind, ok
}

// String returns the canonical descriptor spelling.
func (k EventKind) String() string {
	switch k {
	case Dialogue:
		return "Dialogue"
	case CommentEvent:
		return "Comment"
	case Picture:
		return "Picture"
	case Sound:
		return "Sound"
	case Movie:
		return "Movie"
	case Command:
		return "Command"
	}
	return "Dialogue"
}

// Event is one timed record. Text lives in one of two states: the raw
// source string, or a parsed element tree. Parsing happens on first access
// and rendering collapses the tree back to a string, so untouched events
// round-trip without ever being tokenized.
type Event struct {
	Kind    EventKind
	Layer   int
	Marked  int
	Start   Timecode
	End     Timecode
	Style   string
	Name    string
	MarginL int
	MarginR int
	MarginV int
	Effect  string

	Extra *ExtraFields

	raw    string
	tree   []override.TextElement
	parsed bool
}

// NewEvent returns a Dialogue event bound to the Default style.
func NewEvent() *Event {
	return &Event{Kind: Dialogue, Style: "Default"}
}

// Text returns the event text, rendering the element tree if one exists.
func (e *Event) Text() string {
	if e.parsed {
		return override.Render(e.tree)
	}
	return e.raw
}

// SetText replaces the text with a raw string, discarding any parsed tree.
func (e *Event) SetText(text string) {
	e.raw = text
	e.tree = nil
	e.parsed = false
}

// Elements returns the parsed element tree, tokenizing the raw text on
// first call. The returned slice is the live tree; mutating it mutates the
// event.
func (e *Event) Elements() []override.TextElement {
	if !e.parsed {
		e.tree = override.Parse(e.raw)
		e.parsed = true
		e.raw = ""
	}
	return e.tree
}

// SetElements replaces the text with an element tree.
func (e *Event) SetElements(elements []override.TextElement) {
	e.tree = elements
	e.parsed = true
	e.raw = ""
}

// ExtractTags flattens the event text into event-level tags and styled
// segments.
func (e *Event) ExtractTags(opts extract.Options) (extract.Result, error) {
	return extract.Extract(e.Elements(), opts)
}

// Duration returns End minus Start, which may be negative for malformed
// events.
func (e *Event) Duration() Timecode {
	return e.End - e.Start
}
