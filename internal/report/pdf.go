package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const ContentTypePDF = "application/pdf"

const (
	pdfMargin    = 50
	pdfRowHeight = 18
	pdfFooter    = 40
)

var pdfColumns = [5]float64{70, 100, 170, 60, 80}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	s   Statement
}

// WritePDF renders the statement as a PDF document on A4 paper.
//
// The table continues on new pages when it does not fit, the column
// headers are repeated on every page.
func WritePDF(w io.Writer, s Statement) error {
	pdf, err := renderPDF(s)
	if err != nil {
		return err
	}

	return pdf.Output(w)
}

func renderPDF(s Statement) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfFooter)
	pdf.SetCreationDate(s.Generated)
	pdf.SetTitle(s.Locale.Title, true)
	pdf.SetAuthor(s.Username, true)
	pdf.SetCreator("FinanceFlow", true)
	pdf.AliasNbPages("")

	p := pdfWriter{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		s:   s,
	}

	pdf.SetFooterFunc(p.footer)
	pdf.AddPage()
	p.title()
	p.tableHeader()

	for _, row := range s.Rows {
		p.breakIfNeeded()
		p.cells(false, row.Date.Format(s.Locale.DateFormat), row.Category, row.Description, s.Locale.Type(row.Type), s.Locale.Amount(row.Amount))
	}

	// The totals stay together
	p.breakIfNeeded(3)
	pdf.SetFont("Helvetica", "B", 10)
	p.total(s.Locale.TotalIncome, s.Locale.Amount(s.Income))
	p.total(s.Locale.TotalExpenses, s.Locale.Amount(s.Expenses))
	p.total(s.Locale.Balance, s.Locale.Amount(s.Balance()))

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	return pdf, nil
}

func (p pdfWriter) title() {
	p.pdf.SetFont("Helvetica", "B", 16)
	p.pdf.CellFormat(0, 20, p.tr(p.s.Locale.Title), "", 1, "L", false, 0, "")

	p.pdf.SetFont("Helvetica", "", 12)
	for _, line := range [][2]string{
		{p.s.Locale.UserLabel, p.s.Username},
		{p.s.Locale.PeriodLabel, p.s.PeriodText()},
		{p.s.Locale.GeneratedLabel, p.s.Generated.Format(p.s.Locale.TimestampFormat)},
	} {
		p.pdf.CellFormat(0, 15, p.tr(fmt.Sprintf("%s: %s", line[0], line[1])), "", 1, "L", false, 0, "")
	}

	p.pdf.Ln(20)
}

func (p pdfWriter) tableHeader() {
	p.pdf.SetFont("Helvetica", "B", 10)
	p.pdf.SetFillColor(128, 128, 128)
	p.pdf.SetTextColor(245, 245, 245)
	p.cells(true, p.s.Locale.Headers[:]...)

	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.SetTextColor(0, 0, 0)
}

func (p pdfWriter) cells(fill bool, values ...string) {
	for i, value := range values {
		align := "L"
		if i == len(values)-1 {
			align = "R"
		}

		p.pdf.CellFormat(pdfColumns[i], pdfRowHeight, p.tr(value), "1", 0, align, fill, 0, "")
	}
	p.pdf.Ln(-1)
}

func (p pdfWriter) total(label, value string) {
	p.pdf.CellFormat(pdfColumns[0]+pdfColumns[1], pdfRowHeight, "", "T", 0, "L", false, 0, "")
	p.pdf.CellFormat(pdfColumns[2]+pdfColumns[3], pdfRowHeight, p.tr(label), "T", 0, "L", false, 0, "")
	p.pdf.CellFormat(pdfColumns[4], pdfRowHeight, p.tr(value), "T", 1, "R", false, 0, "")
}

// breakIfNeeded starts a new page when the next rows do not fit on
// the current one.
func (p pdfWriter) breakIfNeeded(rows ...int) {
	n := 1
	if len(rows) > 0 {
		n = rows[0]
	}

	_, height := p.pdf.GetPageSize()
	if p.pdf.GetY()+float64(n)*pdfRowHeight <= height-pdfFooter {
		return
	}

	p.pdf.AddPage()
	p.tableHeader()
}

func (p pdfWriter) footer() {
	p.pdf.SetY(-pdfFooter + 10)
	p.pdf.SetFont("Helvetica", "I", 8)
	p.pdf.SetTextColor(96, 96, 96)
	p.pdf.CellFormat(0, 10, p.tr(fmt.Sprintf("%s %d/{nb}", p.s.Locale.PageLabel, p.pdf.PageNo())), "", 0, "C", false, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
}
