package export

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// pdfMaxRows keeps the one-page report readable; exports beyond this size
// belong in CSV.
const pdfMaxRows = 25

func WritePDF(w io.Writer, table Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "FleetFlow Report - "+table.Name)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 7, strings.Join(table.Headers, " | "))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 9)
	rows := table.Rows
	if len(rows) > pdfMaxRows {
		rows = rows[:pdfMaxRows]
	}
	for _, row := range rows {
		pdf.Cell(0, 6, strings.Join(row, " | "))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
