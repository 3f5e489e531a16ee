// Package render produces the downloadable forms of a response.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"techiehelp/internal/logging"
)

// Download names and content types.
const (
	PDFName         = "response.pdf"
	PDFMIME         = "application/pdf"
	SpreadsheetName = "response.xlsx"
	SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Spreadsheet column headers.
const (
	HeaderQuery    = "User Query"
	HeaderResponse = "AI Response"
)

// Artifact is a rendered file ready for one download.
type Artifact struct {
	Name string
	MIME string
	Data []byte
}

// ToPDF lays text out on A4 pages in 12pt Arial with a 10mm line height.
// Characters outside cp1252 cannot be drawn with the core font and are dropped
// by the translator.
func ToPDF(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()
	doc.SetFont("Arial", "", 12)
	doc.MultiCell(0, 10, tr(text), "", "", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	logging.RenderDebug("Rendered PDF: text_len=%d bytes=%d pages=%d", len(text), buf.Len(), doc.PageCount())
	return buf.Bytes(), nil
}

// ToSpreadsheet writes one sheet with a header row and a single data row.
func ToSpreadsheet(query, response string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{HeaderQuery, HeaderResponse}); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{query, response}); err != nil {
		return nil, fmt.Errorf("write data row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	logging.RenderDebug("Rendered spreadsheet: bytes=%d", buf.Len())
	return buf.Bytes(), nil
}

// PDFArtifact renders text as a downloadable PDF.
func PDFArtifact(text string) (Artifact, error) {
	data, err := ToPDF(text)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Name: PDFName, MIME: PDFMIME, Data: data}, nil
}

// SpreadsheetArtifact renders the pair as a downloadable spreadsheet.
func SpreadsheetArtifact(query, response string) (Artifact, error) {
	data, err := ToSpreadsheet(query, response)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Name: SpreadsheetName, MIME: SpreadsheetMIME, Data: data}, nil
}
