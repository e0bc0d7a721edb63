// Package pdf lays notes elements out on two-column A4 pages and writes them
// as PDF.
//
// Layout runs in one pass. For each element the flow controller first
// estimates its height with the same text metrics the renderer uses, moves to
// the second column or a new page when it would cross the bottom margin, and
// only then draws it, advancing by the height actually consumed. Geometry,
// sizes and colors are fixed; Config only selects fonts, an optional
// decoration layer and document metadata.
//
// Example:
//
//	elements := notesheet.Parse(markup)
//	data, err := pdf.Generate(pdf.GenerateRequest{Elements: elements})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Custom fonts are loaded once and can be shared between runs:
//
//	fonts, err := pdf.LoadFonts(pdf.Config{MainFont: "main.ttf", SubFont: "sub.ttf"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := pdf.Generate(pdf.GenerateRequest{Elements: elements, Fonts: fonts})
package pdf
