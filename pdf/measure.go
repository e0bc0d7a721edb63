package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// Measurer reports the rendered width of a single line of text. The estimator
// and the renderer wrap text through the same Measurer.
type Measurer interface {
	StringWidth(text string, st Style) float64
}

// fpdfMeasurer measures with a private, page-less fpdf instance so nothing
// reaches the output document.
type fpdfMeasurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newMeasurer(fonts *Fonts) (*fpdfMeasurer, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	if err := fonts.install(pdf); err != nil {
		return nil, err
	}
	return &fpdfMeasurer{pdf: pdf, tr: fonts.translator(pdf)}, nil
}

func (m *fpdfMeasurer) StringWidth(text string, st Style) float64 {
	m.pdf.SetFont(st.Family, st.FontStyle, st.Size)
	return m.pdf.GetStringWidth(m.tr(text))
}

func (m *fpdfMeasurer) Err() error {
	if err := m.pdf.Error(); err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	return nil
}

// wrapText splits text into lines no wider than width. Newlines force a
// break, runs of whitespace collapse to one space, and a word wider than
// width is split between runes. Blank paragraphs produce no lines.
func wrapText(m Measurer, text string, st Style, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line != "" {
				if candidate := line + " " + word; m.StringWidth(candidate, st) <= width {
					line = candidate
					continue
				}
				lines = append(lines, line)
				line = ""
			}
			if m.StringWidth(word, st) <= width {
				line = word
				continue
			}
			pieces := splitWord(m, word, st, width)
			lines = append(lines, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitWord breaks an overlong word into pieces that fit width, keeping at
// least one rune per piece.
func splitWord(m Measurer, word string, st Style, width float64) []string {
	var pieces []string
	start := 0
	for start < len(word) {
		end := start
		for end < len(word) {
			_, size := utf8.DecodeRuneInString(word[end:])
			if end > start && m.StringWidth(word[start:end+size], st) > width {
				break
			}
			end += size
		}
		pieces = append(pieces, word[start:end])
		start = end
	}
	return pieces
}

func linesHeight(lines []string, st Style) float64 {
	return float64(len(lines)) * st.Leading
}

func widestLine(m Measurer, lines []string, st Style) float64 {
	widest := 0.0
	for _, line := range lines {
		if w := m.StringWidth(line, st); w > widest {
			widest = w
		}
	}
	return widest
}
