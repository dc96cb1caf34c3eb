package diagnostics

import (
	"fmt"
	"strings"
)

// Level classifies the severity of a diagnostic.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String returns the canonical upper-case label for the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	default:
		return "INFO"
	}
}

// Diagnostic is a single immutable observation about the input. Line is
// 1-based in the source file; zero means the issue is not tied to a line.
type Diagnostic struct {
	Level   Level
	Code    string
	Message string
	Line    int
}

// String renders the diagnostic in "LEVEL code line: message" form.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Level.String())
	if d.Code != "" {
		b.WriteByte(' ')
		b.WriteString(d.Code)
	}
	if d.Line > 0 {
		fmt.Fprintf(&b, " line %d", d.Line)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// List is an appendable collection of diagnostics with filtered views.
type List struct {
	items []Diagnostic
}

// Append adds a diagnostic to the list.
func (l *List) Append(d Diagnostic) {
	l.items = append(l.items, d)
}

// Add constructs and appends a diagnostic in one call.
func (l *List) Add(level Level, code string, line int, format string, args ...any) {
	l.Append(Diagnostic{Level: level, Code: code, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Errorf appends an ERROR diagnostic.
func (l *List) Errorf(code string, line int, format string, args ...any) {
	l.Add(LevelError, code, line, format, args...)
}

// Warnf appends a WARNING diagnostic.
func (l *List) Warnf(code string, line int, format string, args ...any) {
	l.Add(LevelWarning, code, line, format, args...)
}

// Infof appends an INFO diagnostic.
func (l *List) Infof(code string, line int, format string, args ...any) {
	l.Add(LevelInfo, code, line, format, args...)
}

// Extend appends every diagnostic from other.
func (l *List) Extend(other List) {
	l.items = append(l.items, other.items...)
}

// All returns the diagnostics in emission order.
func (l List) All() []Diagnostic {
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the number of collected diagnostics.
func (l List) Len() int { return len(l.items) }

// Errors returns only ERROR-level diagnostics.
func (l List) Errors() []Diagnostic { return l.filter(LevelError) }

// Warnings returns only WARNING-level diagnostics.
func (l List) Warnings() []Diagnostic { return l.filter(LevelWarning) }

// Infos returns only INFO-level diagnostics.
func (l List) Infos() []Diagnostic { return l.filter(LevelInfo) }

// HasErrors reports whether any ERROR-level diagnostic was collected.
func (l List) HasErrors() bool {
	for _, d := range l.items {
		if d.Level == LevelError {
			return true
		}
	}
	return false
}

func (l List) filter(level Level) []Diagnostic {
	var out []Diagnostic
	for _, d := range l.items {
		if d.Level == level {
			out = append(out, d)
		}
	}
	return out
}

// StructuralError aborts a load when the file skeleton cannot be modelled.
// It carries every diagnostic collected during the failed pass, not just the
// first fatal one, so callers can surface the complete picture.
type StructuralError struct {
	Diagnostics List
}

// Error summarizes the batch with the first error message.
func (e *StructuralError) Error() string {
	errs := e.Diagnostics.Errors()
	switch len(errs) {
	case 0:
		return "structural error"
	case 1:
		return fmt.Sprintf("structural error: %s", errs[0].Message)
	default:
		return fmt.Sprintf("structural error: %s (and %d more)", errs[0].Message, len(errs)-1)
	}
}
