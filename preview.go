package notesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const minPreviewWidth = 20

// PreviewRequest contains inputs for a terminal preview.
type PreviewRequest struct {
	Writer   io.Writer
	Elements []Element
	Width    int
	Theme    Theme
}

// Preview writes an ANSI outline of the elements, wrapped to Width columns.
// It shows content and break placement, not the PDF column flow.
func Preview(req PreviewRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("preview: writer is nil")
	}
	width := req.Width
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	t := req.Theme
	if t == nil {
		t = DefaultTheme()
	}
	st := t.Styles()

	var b strings.Builder
	for _, el := range req.Elements {
		switch el.Kind {
		case KindMainTitle:
			for _, line := range wrapLines(el.Text, width) {
				b.WriteString(center(st.MainTitle.apply(line), width))
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		case KindSubTitle:
			for _, line := range wrapLines(el.Text, width-2) {
				b.WriteString(st.SubTitle.apply(" " + line + " "))
				b.WriteByte('\n')
			}
		case KindPoint:
			previewPoint(&b, el, width, st)
		case KindBox:
			previewBox(&b, el.Text, width, st)
		case KindColumnBreak:
			b.WriteString(center(st.Break.apply("── column break ──"), width))
			b.WriteByte('\n')
		case KindPageBreak:
			b.WriteString(center(st.Break.apply("══ page break ══"), width))
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(req.Writer, b.String())
	return err
}

func previewPoint(b *strings.Builder, el Element, width int, st Styles) {
	prefix := ""
	if el.Symbol != "" {
		prefix = el.Symbol + " "
	}
	pw := ansi.PrintableRuneWidth(prefix)
	lines := wrapLines(el.Text, width-pw)
	b.WriteString(st.Bullet.apply(prefix))
	b.WriteString(st.Text.apply(lines[0]))
	b.WriteByte('\n')
	if len(lines) > 1 {
		rest := make([]string, len(lines)-1)
		for i, line := range lines[1:] {
			rest[i] = st.Text.apply(line)
		}
		b.WriteString(indent.String(strings.Join(rest, "\n"), uint(pw)))
		b.WriteByte('\n')
	}
}

func previewBox(b *strings.Builder, text string, width int, st Styles) {
	inner := width - 4
	rule := strings.Repeat("─", inner+2)
	b.WriteString(st.BoxBorder.apply("┌" + rule + "┐"))
	b.WriteByte('\n')
	for _, para := range strings.Split(text, "\n") {
		for _, line := range wrapLines(strings.TrimSpace(para), inner) {
			b.WriteString(st.BoxBorder.apply("│"))
			b.WriteString(st.Box.apply(" " + padding.String(line, uint(inner)) + " "))
			b.WriteString(st.BoxBorder.apply("│"))
			b.WriteByte('\n')
		}
	}
	b.WriteString(st.BoxBorder.apply("└" + rule + "┘"))
	b.WriteByte('\n')
}

// wrapLines word-wraps text to width, hard-wrapping words that do not fit.
// It always returns at least one line.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
}

func center(text string, width int) string {
	pad := (width - ansi.PrintableRuneWidth(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
