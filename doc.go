// Package notesheet parses a small line-oriented notes markup into a flat
// stream of elements.
//
// The markup has one tag per line: titles, bulleted points, multi-line boxes
// and manual column or page breaks. Parsing never fails; lines that cannot be
// understood are reported through log/slog and skipped, so a document with a
// typo still renders everything else.
//
// Example:
//
//	elements := notesheet.Parse("[MAIN_TITLE]Notes[/MAIN_TITLE]\n[POINT:-] First\n")
//	out, err := pdf.Generate(pdf.GenerateRequest{Elements: elements})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The pdf subpackage lays the elements out on two-column A4 pages. Preview
// renders the same elements as ANSI text for a terminal.
package notesheet
