package controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/financeflow/backend/internal/controllers"
	"github.com/financeflow/backend/internal/report"
	"github.com/financeflow/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportPDF() {
	s := test.Login(suite.T())
	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{Name: "Mercado"})
	createTestTransaction(suite.T(), s, transactionBody{Amount: "100", Type: "IN", Description: "Salário"})
	createTestTransaction(suite.T(), s, transactionBody{Amount: "40", Category: &category.Data.ID})
	createTestTransaction(suite.T(), s, transactionBody{Amount: "10", Date: "2023-01-01"})

	tests := []struct {
		name     string
		query    string
		filename string
	}{
		{"Default", "", "extrato_todas.pdf"},
		{"Portuguese month", "?month=3&year=2024", "extrato_3-2024.pdf"},
		{"English month", "?lang=en&month=3&year=2024", "statement_3-2024.pdf"},
		{"English all", "?lang=en", "statement_all.pdf"},
		{"Unknown language", "?lang=de", "extrato_todas.pdf"},
		{"Empty period", "?month=12&year=1999", "extrato_12-1999.pdf"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, api+"/export-pdf/"+tt.query, "", s.Header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, report.ContentTypePDF, r.Header().Get("Content-Type"))
			assert.Equal(t, `attachment; filename="`+tt.filename+`"`, r.Header().Get("Content-Disposition"))
			assert.True(t, bytes.HasPrefix(r.Body.Bytes(), []byte("%PDF-")), "Response must be a PDF document")
		})
	}
}

// TestExportXLSXTotals verifies that the totals are computed over
// exactly the filtered transactions.
func (suite *TestSuiteStandard) TestExportXLSXTotals() {
	s := test.Login(suite.T())
	other := test.Login(suite.T())

	createTestTransaction(suite.T(), s, transactionBody{Amount: "100", Type: "IN"})
	createTestTransaction(suite.T(), s, transactionBody{Amount: "40"})
	createTestTransaction(suite.T(), s, transactionBody{Amount: "10"})
	createTestTransaction(suite.T(), s, transactionBody{Amount: "999", Date: "2024-04-01"})
	createTestTransaction(suite.T(), other, transactionBody{Amount: "500", Type: "IN"})

	r := test.Request(suite.T(), http.MethodGet, api+"/export-xlsx/?lang=en&month=3&year=2024", "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(report.ContentTypeXLSX, r.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="statement_3-2024.xlsx"`, r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 12)

	suite.Assert().Equal([]string{"User", s.Username}, rows[1])
	suite.Assert().Equal([]string{"Period", "3/2024"}, rows[2])

	for i, total := range [][2]string{{"TOTAL INCOME", "100.00"}, {"TOTAL EXPENSES", "50.00"}, {"NET BALANCE", "50.00"}} {
		suite.Assert().Equal(total[0], rows[9+i][2])
		suite.Assert().Equal(total[1], rows[9+i][4])
	}
}

func (suite *TestSuiteStandard) TestExportXLSXEmpty() {
	s := test.Login(suite.T())

	r := test.Request(suite.T(), http.MethodGet, api+"/export-xlsx/", "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(`attachment; filename="extrato_todas.xlsx"`, r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	for _, cell := range []string{"E7", "E8", "E9"} {
		value, err := f.GetCellValue(report.SheetName, cell)
		suite.Require().Nil(err)
		suite.Assert().Equal("0.00", value, cell)
	}
}

func (suite *TestSuiteStandard) TestExportFails() {
	s := test.Login(suite.T())

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
	}{
		{"PDF invalid month", "/export-pdf/?month=13&year=2024", s.Header(), http.StatusBadRequest},
		{"XLSX invalid year", "/export-xlsx/?month=1&year=0", s.Header(), http.StatusBadRequest},
		{"PDF unauthenticated", "/export-pdf/", nil, http.StatusUnauthorized},
		{"XLSX unauthenticated", "/export-xlsx/", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, api+tt.path, "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			require.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
			assert.Empty(t, r.Header().Get("Content-Disposition"))
		})
	}
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	s := test.Login(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, api+"/export-pdf/", "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
