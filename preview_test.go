package notesheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestPreviewBoringLayout(t *testing.T) {
	boring, _ := ThemeByName("boring")
	elements := []Element{
		MainTitle("Notes"),
		SubTitle("Intro"),
		Point("-", "one two three four five six seven"),
		Box("inside\nsecond line"),
		ColumnBreak(),
		PageBreak(),
	}
	var out bytes.Buffer
	if err := Preview(PreviewRequest{Writer: &out, Elements: elements, Width: 24, Theme: boring}); err != nil {
		t.Fatalf("preview: %v", err)
	}
	text := out.String()
	if strings.Contains(text, "\x1b[") {
		t.Fatalf("boring preview should not contain ANSI codes: %q", text)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if lines[0] != "         Notes" {
		t.Fatalf("expected centered title, got %q", lines[0])
	}
	if lines[2] != " Intro " {
		t.Fatalf("expected padded sub-title, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "- one two") {
		t.Fatalf("expected bullet line, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "  ") {
		t.Fatalf("expected hanging indent on continuation, got %q", lines[4])
	}
	for _, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w > 24 {
			t.Fatalf("line %q exceeds width (%d)", line, w)
		}
	}
	if !strings.Contains(text, "│ inside               │") {
		t.Fatalf("expected padded box line, got:\n%s", text)
	}
	if !strings.Contains(text, "page break") || !strings.Contains(text, "column break") {
		t.Fatalf("expected break markers, got:\n%s", text)
	}
}

func TestPreviewStyledUsesTheme(t *testing.T) {
	var out bytes.Buffer
	err := Preview(PreviewRequest{Writer: &out, Elements: []Element{SubTitle("S")}, Width: 40})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(out.String(), DefaultTheme().Styles().SubTitle.Prefix) {
		t.Fatalf("expected sub-title style prefix in %q", out.String())
	}
}

func TestPreviewRequiresWriter(t *testing.T) {
	if err := Preview(PreviewRequest{}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}
