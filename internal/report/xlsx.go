package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName is the name of the worksheet containing the statement.
const SheetName = "FinanceFlow"

// firstTableRow is the row of the column headers.
const firstTableRow = 6

// WriteXLSX renders the statement as a spreadsheet with the same rows
// and totals as the PDF document.
//
// Amounts are written as numbers so that they can be used in formulas.
func WriteXLSX(w io.Writer, s Statement) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#F5F5F5"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#808080"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	amount, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}

	totalAmount, err := f.NewStyle(&excelize.Style{NumFmt: 2, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sw := sheetWriter{f: f}
	sw.row(1, bold, s.Locale.Title)
	sw.row(2, 0, s.Locale.UserLabel, s.Username)
	sw.row(3, 0, s.Locale.PeriodLabel, s.PeriodText())
	sw.row(4, 0, s.Locale.GeneratedLabel, s.Generated.Format(s.Locale.TimestampFormat))

	headers := make([]any, 0, len(s.Locale.Headers))
	for _, h := range s.Locale.Headers {
		headers = append(headers, h)
	}
	sw.row(firstTableRow, header, headers...)

	r := firstTableRow + 1
	for _, row := range s.Rows {
		sw.row(r, 0, row.Date.Format(s.Locale.DateFormat), row.Category, row.Description, s.Locale.Type(row.Type), row.Amount.Round(2).InexactFloat64())
		sw.style(r, 5, amount)
		r++
	}

	for _, total := range []struct {
		label string
		value float64
	}{
		{s.Locale.TotalIncome, s.Income.Round(2).InexactFloat64()},
		{s.Locale.TotalExpenses, s.Expenses.Round(2).InexactFloat64()},
		{s.Locale.Balance, s.Balance().Round(2).InexactFloat64()},
	} {
		sw.row(r, bold, "", "", total.label, "", total.value)
		sw.style(r, 5, totalAmount)
		r++
	}

	for col, width := range map[string]float64{"A": 12, "B": 18, "C": 30, "D": 10, "E": 14} {
		if sw.err == nil {
			sw.err = f.SetColWidth(SheetName, col, col, width)
		}
	}

	if sw.err != nil {
		return fmt.Errorf("rendering spreadsheet: %w", sw.err)
	}

	return f.Write(w)
}

// sheetWriter writes cells and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (sw *sheetWriter) row(r, style int, values ...any) {
	for i, v := range values {
		if sw.err != nil {
			return
		}

		var cell string
		cell, sw.err = excelize.CoordinatesToCellName(i+1, r)
		if sw.err != nil {
			return
		}

		sw.err = sw.f.SetCellValue(SheetName, cell, v)
		if sw.err == nil && style != 0 {
			sw.err = sw.f.SetCellStyle(SheetName, cell, cell, style)
		}
	}
}

func (sw *sheetWriter) style(r, col, style int) {
	if sw.err != nil {
		return
	}

	var cell string
	cell, sw.err = excelize.CoordinatesToCellName(col, r)
	if sw.err == nil {
		sw.err = sw.f.SetCellStyle(SheetName, cell, cell, style)
	}
}
