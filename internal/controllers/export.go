package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/internal/report"
	"github.com/financeflow/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// ExportQueryFilter contains the parameters for statement exports.
type ExportQueryFilter struct {
	QueryPeriod
	Lang string `form:"lang" example:"pt"` // Language of the statement, pt or en. Defaults to pt.
}

// RegisterExportRoutes registers the statement export routes with the
// RouterGroup that is passed. The group must authenticate requests.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/export-pdf/", OptionsExport)
	r.GET("/export-pdf/", ExportPDF)

	r.OPTIONS("/export-xlsx/", OptionsExport)
	r.GET("/export-xlsx/", ExportXLSX)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Security		BearerAuth
// @Router			/export-pdf/ [options]
// @Router			/export-xlsx/ [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		PDF statement
// @Description	Returns the statement of the authenticated user as PDF document. The month and year filters are only applied if both are set.
// @Tags			Export
// @Produce		application/pdf
// @Success		200
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	query		int		false	"Month (1-12)"
// @Param			year	query		int		false	"Year"
// @Param			lang	query		string	false	"Language, pt or en"
// @Security		BearerAuth
// @Router			/export-pdf/ [get]
func ExportPDF(c *gin.Context) {
	export(c, "pdf", report.ContentTypePDF, report.WritePDF)
}

// @Summary		Spreadsheet statement
// @Description	Returns the statement of the authenticated user as XLSX workbook. The month and year filters are only applied if both are set.
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	query		int		false	"Month (1-12)"
// @Param			year	query		int		false	"Year"
// @Param			lang	query		string	false	"Language, pt or en"
// @Security		BearerAuth
// @Router			/export-xlsx/ [get]
func ExportXLSX(c *gin.Context) {
	export(c, "xlsx", report.ContentTypeXLSX, report.WriteXLSX)
}

// export renders the statement for the request with the writer and sends
// it as attachment.
//
// The document is rendered completely before anything is written, a
// rendering error never results in a partial document.
func export(c *gin.Context, extension, contentType string, write func(io.Writer, report.Statement) error) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var filter ExportQueryFilter
	_ = c.ShouldBindQuery(&filter)

	period, err := types.ParsePeriod(filter.Month, filter.Year)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var transactions []models.Transaction
	err = transactionQuery(user.ID, period).Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	statement := report.NewStatement(report.LocaleFor(filter.Lang), user.Username, period, transactions, time.Now())

	var buf bytes.Buffer
	err = write(&buf, statement)
	if err != nil {
		err = general(c, err)
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, statement.Filename(extension)))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
