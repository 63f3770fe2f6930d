// Package export renders a finished aggregate snapshot as a downloadable
// artifact. It never touches the store: callers hand it a fully-built
// Report and pick a format.
package export

import (
	"fmt"
	"time"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

// Row is one player line in the rendered table.
type Row struct {
	Name          string
	JerseyNumber  int
	TotalPasses   int
	AverageRating float64
}

// AverageCell formats the average with two decimals, showing 0.00 when the
// player has no recorded passes.
func (r Row) AverageCell() string {
	if r.TotalPasses == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", r.AverageRating)
}

type Report struct {
	Title       string
	GeneratedAt time.Time
	Rows        []Row
}

var columnHeaders = []string{"Player", "Jersey #", "Total Passes", "Average Rating"}

// Render dispatches to the writer for the chosen format.
func Render(report Report, format Format) ([]byte, error) {
	switch format {
	case FormatPDF:
		return RenderPDF(report)
	case FormatXLSX:
		return RenderXLSX(report)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
