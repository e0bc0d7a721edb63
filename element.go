package notesheet

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of an Element.
type Kind uint8

// Element kinds produced by the parser.
const (
	KindMainTitle Kind = iota + 1
	KindSubTitle
	KindPoint
	KindBox
	KindColumnBreak
	KindPageBreak
)

// String returns the markup tag name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMainTitle:
		return "MAIN_TITLE"
	case KindSubTitle:
		return "SUB_TITLE"
	case KindPoint:
		return "POINT"
	case KindBox:
		return "BOX"
	case KindColumnBreak:
		return "COLUMN_BREAK"
	case KindPageBreak:
		return "PAGE_BREAK"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Element is one parsed unit of markup. Symbol is only set for points; Text
// holds the title, point body or box content (box lines joined by "\n").
// Break elements carry no payload.
type Element struct {
	Kind   Kind
	Symbol string
	Text   string
}

// MainTitle returns a main title element.
func MainTitle(text string) Element { return Element{Kind: KindMainTitle, Text: text} }

// SubTitle returns a sub-title element.
func SubTitle(text string) Element { return Element{Kind: KindSubTitle, Text: text} }

// Point returns a bulleted point element.
func Point(symbol, text string) Element {
	return Element{Kind: KindPoint, Symbol: symbol, Text: text}
}

// Box returns a highlighted box element.
func Box(text string) Element { return Element{Kind: KindBox, Text: text} }

// ColumnBreak returns a manual column break.
func ColumnBreak() Element { return Element{Kind: KindColumnBreak} }

// PageBreak returns a manual page break.
func PageBreak() Element { return Element{Kind: KindPageBreak} }

// IsBreak reports whether the element is a column or page break.
func (e Element) IsBreak() bool {
	return e.Kind == KindColumnBreak || e.Kind == KindPageBreak
}

func (e Element) String() string {
	switch e.Kind {
	case KindPoint:
		return fmt.Sprintf("%s(%q, %q)", e.Kind, e.Symbol, e.Text)
	case KindColumnBreak, KindPageBreak:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	}
}
