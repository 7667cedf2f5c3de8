// Package pipeline turns generated slide text into display structures.
//
// It covers two stages that sit on either side of deck rendering:
//   - Inline Markdown parsing of bullets into formatted spans via goldmark,
//     so emphasis becomes bold and italic runs instead of literal asterisks
//   - HTML preview generation via html/template, mirroring the layout
//     decisions of the rendered deck for review in a browser or for
//     printing to a PDF handout
//
// PDF generation is handled separately by the root autodeck package using
// headless Chrome (go-rod).
package pipeline
