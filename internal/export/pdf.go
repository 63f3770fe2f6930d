package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

var pdfColumnWidths = []float64{70, 30, 35, 40}

// RenderPDF writes the report as a paginated A4 document with a repeated
// table header on each page.
func RenderPDF(report Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(report.Title, false)

	writeHeader := func() {
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 10, report.Title, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(0, 6, "Generated "+report.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
		doc.Ln(2)

		doc.SetFont("Helvetica", "B", 10)
		for i, h := range columnHeaders {
			doc.CellFormat(pdfColumnWidths[i], 8, h, "1", 0, "C", false, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 10)
	}

	doc.SetHeaderFunc(writeHeader)
	doc.AddPage()

	for _, row := range report.Rows {
		doc.CellFormat(pdfColumnWidths[0], 8, row.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(pdfColumnWidths[1], 8, strconv.Itoa(row.JerseyNumber), "1", 0, "C", false, 0, "")
		doc.CellFormat(pdfColumnWidths[2], 8, strconv.Itoa(row.TotalPasses), "1", 0, "C", false, 0, "")
		doc.CellFormat(pdfColumnWidths[3], 8, row.AverageCell(), "1", 0, "C", false, 0, "")
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
