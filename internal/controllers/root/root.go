package root

import (
	"net/http"

	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the API
}

type Links struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`        // Swagger API documentation
	Version      string `json:"version" example:"https://example.com/api/version"`             // Endpoint returning the version of the backend
	Register     string `json:"register" example:"https://example.com/api/register/"`          // Account registration
	Token        string `json:"token" example:"https://example.com/api/token/"`                // Token pair for username and password
	TokenRefresh string `json:"tokenRefresh" example:"https://example.com/api/token/refresh/"` // New access token for a refresh token
	Profile      string `json:"profile" example:"https://example.com/api/profile/"`            // Profile of the authenticated user
	Categories   string `json:"categories" example:"https://example.com/api/categories/"`      // URL of Category collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/transactions/"`  // URL of Transaction collection endpoint
	ExportPDF    string `json:"exportPdf" example:"https://example.com/api/export-pdf/"`       // Statement as PDF document
	ExportXLSX   string `json:"exportXlsx" example:"https://example.com/api/export-xlsx/"`     // Statement as spreadsheet
}

// Get returns the link list for the API
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	Response
//	@Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:         url + "/docs/index.html",
			Version:      url + "/version",
			Register:     url + "/register/",
			Token:        url + "/token/",
			TokenRefresh: url + "/token/refresh/",
			Profile:      url + "/profile/",
			Categories:   url + "/categories/",
			Transactions: url + "/transactions/",
			ExportPDF:    url + "/export-pdf/",
			ExportXLSX:   url + "/export-xlsx/",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
