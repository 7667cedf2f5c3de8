// Package pptx assembles PresentationML packages (.pptx) from the part
// templates provided by internal/assets.
//
// A Presentation is a plain value: slides, shapes, paragraphs and runs with
// explicit geometry in EMU. Writer executes the part templates against it and
// streams a zip archive whose entries appear in a fixed order with a fixed
// modification time, so the same Presentation always produces the same bytes.
package pptx
