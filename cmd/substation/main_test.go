package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScript = `[Script Info]
Title: CLI Test
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:03.50,Default,,0,0,0,,{\pos(100,200)\b1}Hello{\b0} world
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ass")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestCheckCommandPasses(t *testing.T) {
	path := writeScript(t, testScript)
	out, err := runCommand(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, ": ok") {
		t.Fatalf("expected ok status, got:\n%s", out)
	}
}

func TestCheckCommandFailsOnStructuralError(t *testing.T) {
	path := writeScript(t, "[Events]\nDialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,hi\n")
	out, err := runCommand(t, "check", path)
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if !strings.Contains(out, "record-before-format") {
		t.Fatalf("expected structural code in output, got:\n%s", out)
	}
}

func TestNormalizeWritesCanonicalForm(t *testing.T) {
	path := writeScript(t, testScript)
	out, err := runCommand(t, "normalize", path)
	if err != nil {
		t.Fatalf("normalize failed: %v\n%s", err, out)
	}
	if out != testScript {
		t.Fatalf("expected canonical output to match input:\n%s", out)
	}
}

func TestTagsShowExtractsEventTags(t *testing.T) {
	path := writeScript(t, testScript)
	out, err := runCommand(t, "tags", "show", path)
	if err != nil {
		t.Fatalf("tags show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `\pos(100,200)`) {
		t.Fatalf("expected pos event tag, got:\n%s", out)
	}
}

func TestTagsListRunsWithoutConfig(t *testing.T) {
	out, err := runCommand(t, "tags", "list")
	if err != nil {
		t.Fatalf("tags list failed: %v", err)
	}
	if !strings.Contains(out, `\pos`) || !strings.Contains(out, `\iclip`) {
		t.Fatalf("expected registry entries, got:\n%s", out)
	}
}

func TestInspectJSON(t *testing.T) {
	path := writeScript(t, testScript)
	out, err := runCommand(t, "inspect", path, "--json")
	if err != nil {
		t.Fatalf("inspect failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"script_type": "v4.00+"`) {
		t.Fatalf("expected script type in JSON, got:\n%s", out)
	}
}

func TestCatalogAddAndList(t *testing.T) {
	path := writeScript(t, testScript)
	out, err := runCommand(t, "catalog", "add", path)
	if err != nil {
		t.Fatalf("catalog add failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "added CLI Test") {
		t.Fatalf("expected add confirmation, got:\n%s", out)
	}
}
