package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() Report {
	return Report{
		Title:       "Tuesday Practice",
		GeneratedAt: time.Date(2026, time.March, 3, 18, 30, 0, 0, time.UTC),
		Rows: []Row{
			{Name: "Ana", JerseyNumber: 7, TotalPasses: 3, AverageRating: 2},
			{Name: "Bo", JerseyNumber: 12, TotalPasses: 0, AverageRating: 0},
		},
	}
}

func TestAverageCell(t *testing.T) {
	require.Equal(t, "2.00", Row{TotalPasses: 3, AverageRating: 2}.AverageCell())
	require.Equal(t, "2.33", Row{TotalPasses: 3, AverageRating: 7.0 / 3.0}.AverageCell())
	require.Equal(t, "0.00", Row{TotalPasses: 0, AverageRating: 0}.AverageCell())
}

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"xlsx", "pdf"} {
		format, err := ParseFormat(raw)
		require.NoError(t, err)
		require.Equal(t, raw, string(format))
	}

	_, err := ParseFormat("csv")
	require.Error(t, err)
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Session Stats", "A1")
	require.NoError(t, err)
	require.Equal(t, "Tuesday Practice", title)

	name, err := f.GetCellValue("Session Stats", "A5")
	require.NoError(t, err)
	require.Equal(t, "Ana", name)

	avg, err := f.GetCellValue("Session Stats", "D5")
	require.NoError(t, err)
	require.Equal(t, "2.00", avg)

	zeroAvg, err := f.GetCellValue("Session Stats", "D6")
	require.NoError(t, err)
	require.Equal(t, "0.00", zeroAvg)
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sampleReport())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "expected a PDF header")
}

func TestRenderDispatch(t *testing.T) {
	_, err := Render(sampleReport(), Format("csv"))
	require.Error(t, err)

	data, err := Render(sampleReport(), FormatXLSX)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
