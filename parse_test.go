package notesheet

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestParseScenario(t *testing.T) {
	src := "[MAIN_TITLE]Notes[/MAIN_TITLE]\n[SUB_TITLE]Intro[/SUB_TITLE]\n[POINT:-] First point\n[BOX]\nImportant\n[/BOX]"
	got := Parse(src)
	want := []Element{
		MainTitle("Notes"),
		SubTitle("Intro"),
		Point("-", "First point"),
		Box("Important"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestParseEveryTagMapsToOneElement(t *testing.T) {
	src := strings.Join([]string{
		"[MAIN_TITLE]  Title  [/MAIN_TITLE]",
		"",
		"[SUB_TITLE]Sub[/SUB_TITLE]",
		"   [POINT: * ]   spaced text  ",
		"[POINT:->] a]b",
		"[COLUMN_BREAK]",
		"[PAGE_BREAK]",
		"[BOX]",
		"[/BOX]",
	}, "\n")
	got := Parse(src)
	want := []Element{
		MainTitle("Title"),
		SubTitle("Sub"),
		Point("*", "spaced text"),
		Point("->", "a]b"),
		ColumnBreak(),
		PageBreak(),
		Box(""),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestParseBoxKeepsRawLinesAndDropsBlanks(t *testing.T) {
	got := Parse("[BOX]\na\n\n   \n  b  \n[/BOX]\n")
	want := []Element{Box("a\n  b  ")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestParseBoxRoundTrip(t *testing.T) {
	got := Parse("[BOX]\na\nb\n[/BOX]")
	if len(got) != 1 || got[0] != Box("a\nb") {
		t.Fatalf("expected Box(\"a\\nb\"), got %v", got)
	}
}

func TestParseBoxTagsInsideBoxAreContent(t *testing.T) {
	got := Parse("[BOX]\n[POINT:-] not a point\n[PAGE_BREAK]\n[/BOX]")
	want := []Element{Box("[POINT:-] not a point\n[PAGE_BREAK]")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestParseUnterminatedBoxIsFlushed(t *testing.T) {
	logger, logs := captureLogger()
	got := Parse("[SUB_TITLE]S[/SUB_TITLE]\n[BOX]\nfirst\nsecond\n", WithLogger(logger))
	want := []Element{SubTitle("S"), Box("first\nsecond")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "unterminated box") {
		t.Fatalf("expected unterminated box warning, got %q", logs.String())
	}
}

func TestParseEmptyUnterminatedBoxEmitsNothing(t *testing.T) {
	logger, logs := captureLogger()
	got := Parse("[BOX]\n\n", WithLogger(logger))
	if len(got) != 0 {
		t.Fatalf("expected no elements, got %v", got)
	}
	if !strings.Contains(logs.String(), "unterminated box") {
		t.Fatalf("expected unterminated box warning, got %q", logs.String())
	}
}

func TestParseWarnsAndSkips(t *testing.T) {
	logger, logs := captureLogger()
	got := Parse("hello there\n[POINT:- missing close\n[MAIN_TITLE]open only\n[POINT:-] kept", WithLogger(logger))
	want := []Element{Point("-", "kept")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
	out := logs.String()
	if strings.Count(out, "unrecognized line") != 2 {
		t.Fatalf("expected two unrecognized line warnings, got %q", out)
	}
	if !strings.Contains(out, "malformed point tag") {
		t.Fatalf("expected malformed point warning, got %q", out)
	}
	if !strings.Contains(out, "line=2") {
		t.Fatalf("expected line number in warning, got %q", out)
	}
}

func TestParseHandlesCRLF(t *testing.T) {
	got := Parse("[BOX]\r\nx\r\n[/BOX]\r\n[PAGE_BREAK]\r\n")
	want := []Element{Box("x"), PageBreak()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestParseReaderNormalizes(t *testing.T) {
	src := "\xEF\xBB\xBF[SUB_TITLE]Cafe\u0301[/SUB_TITLE]\n"
	got, err := ParseReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse reader: %v", err)
	}
	want := []Element{SubTitle("Caf\u00e9")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestParseReaderRejectsInvalidInput(t *testing.T) {
	if _, err := ParseReader(bytes.NewReader([]byte{0xff, 0xfe})); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if _, err := ParseReader(bytes.NewReader([]byte("[BOX]\x00"))); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if _, err := ParseReader(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestElementString(t *testing.T) {
	cases := map[string]Element{
		`POINT("-", "x")`: Point("-", "x"),
		`BOX("a\nb")`:     Box("a\nb"),
		"PAGE_BREAK":      PageBreak(),
	}
	for want, el := range cases {
		if got := el.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
	if Kind(42).String() != "Kind(42)" {
		t.Fatalf("unexpected unknown kind string %q", Kind(42).String())
	}
}

func TestElementIsBreak(t *testing.T) {
	for _, el := range []Element{ColumnBreak(), PageBreak()} {
		if !el.IsBreak() {
			t.Fatalf("%v should be a break", el)
		}
	}
	for _, el := range []Element{MainTitle("t"), SubTitle("s"), Point("-", "p"), Box("b")} {
		if el.IsBreak() {
			t.Fatalf("%v should not be a break", el)
		}
	}
}
