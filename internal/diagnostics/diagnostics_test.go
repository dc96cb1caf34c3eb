package diagnostics

import (
	"strings"
	"testing"
)

func TestListFilters(t *testing.T) {
	var list List
	list.Errorf("E1", 3, "bad record")
	list.Warnf("W1", 5, "odd field")
	list.Warnf("W2", 0, "missing section")
	list.Infof("I1", 0, "note")

	if list.Len() != 4 {
		t.Fatalf("expected 4 diagnostics, got %d", list.Len())
	}
	if got := len(list.Errors()); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := len(list.Warnings()); got != 2 {
		t.Fatalf("expected 2 warnings, got %d", got)
	}
	if got := len(list.Infos()); got != 1 {
		t.Fatalf("expected 1 info, got %d", got)
	}
	if !list.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Level: LevelError, Code: "dup-section", Line: 12, Message: "duplicate section [Events]"}
	got := d.String()
	if !strings.Contains(got, "ERROR") || !strings.Contains(got, "line 12") || !strings.Contains(got, "dup-section") {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestStructuralErrorMessage(t *testing.T) {
	var list List
	list.Errorf("E1", 1, "first failure")
	list.Errorf("E2", 2, "second failure")
	err := &StructuralError{Diagnostics: list}
	msg := err.Error()
	if !strings.Contains(msg, "first failure") {
		t.Fatalf("expected first error in message, got %q", msg)
	}
	if !strings.Contains(msg, "1 more") {
		t.Fatalf("expected remaining-count suffix, got %q", msg)
	}
}
