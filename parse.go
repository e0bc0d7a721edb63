package notesheet

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	tagMainTitleOpen  = "[MAIN_TITLE]"
	tagMainTitleClose = "[/MAIN_TITLE]"
	tagSubTitleOpen   = "[SUB_TITLE]"
	tagSubTitleClose  = "[/SUB_TITLE]"
	tagPointOpen      = "[POINT:"
	tagBoxOpen        = "[BOX]"
	tagBoxClose       = "[/BOX]"
	tagColumnBreak    = "[COLUMN_BREAK]"
	tagPageBreak      = "[PAGE_BREAK]"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse tokenizes markup into a flat, ordered element list. It never fails:
// malformed or unrecognized lines are logged as warnings and skipped, and a
// box left open at the end of input is flushed with whatever it collected.
func Parse(markup string, opts ...ParseOption) []Element {
	cfg := newParseConfig(opts)
	p := parser{log: cfg.logger}
	for i, line := range strings.Split(markup, "\n") {
		p.line(i+1, strings.TrimSuffix(line, "\r"))
	}
	p.finish()
	return p.elements
}

// ParseReader reads all markup from r, validates and NFC-normalizes it, then
// parses it with Parse.
func ParseReader(r io.Reader, opts ...ParseOption) ([]Element, error) {
	if r == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	src = bytes.TrimPrefix(src, utf8BOM)
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Parse(norm.NFC.String(string(src)), opts...), nil
}

type parser struct {
	log      *slog.Logger
	elements []Element
	inBox    bool
	boxStart int
	boxLines []string
}

func (p *parser) line(n int, raw string) {
	stripped := strings.TrimSpace(raw)
	if stripped == "" {
		return
	}
	if p.inBox {
		if stripped == tagBoxClose {
			p.closeBox()
			return
		}
		p.boxLines = append(p.boxLines, raw)
		return
	}
	switch {
	case isWrapped(stripped, tagMainTitleOpen, tagMainTitleClose):
		p.emit(MainTitle(unwrap(stripped, tagMainTitleOpen, tagMainTitleClose)))
	case isWrapped(stripped, tagSubTitleOpen, tagSubTitleClose):
		p.emit(SubTitle(unwrap(stripped, tagSubTitleOpen, tagSubTitleClose)))
	case strings.HasPrefix(stripped, tagPointOpen):
		head, body, ok := strings.Cut(stripped, "]")
		if !ok {
			p.log.Warn("malformed point tag", "line", n, "text", stripped)
			return
		}
		symbol := strings.TrimSpace(head[len(tagPointOpen):])
		p.emit(Point(symbol, strings.TrimSpace(body)))
	case stripped == tagBoxOpen:
		p.inBox = true
		p.boxStart = n
		p.boxLines = p.boxLines[:0]
	case stripped == tagColumnBreak:
		p.emit(ColumnBreak())
	case stripped == tagPageBreak:
		p.emit(PageBreak())
	default:
		p.log.Warn("unrecognized line", "line", n, "text", stripped)
	}
}

func (p *parser) finish() {
	if !p.inBox {
		return
	}
	p.log.Warn("unterminated box", "line", p.boxStart, "collected", len(p.boxLines))
	if len(p.boxLines) > 0 {
		p.closeBox()
		return
	}
	p.inBox = false
}

func (p *parser) closeBox() {
	p.emit(Box(strings.Join(p.boxLines, "\n")))
	p.inBox = false
	p.boxLines = p.boxLines[:0]
}

func (p *parser) emit(el Element) {
	p.elements = append(p.elements, el)
}

func isWrapped(s, open, close string) bool {
	return len(s) >= len(open)+len(close) && strings.HasPrefix(s, open) && strings.HasSuffix(s, close)
}

func unwrap(s, open, close string) string {
	return strings.TrimSpace(s[len(open) : len(s)-len(close)])
}
