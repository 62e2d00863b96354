package controllers_test

import (
	"net/http"
	"testing"

	"github.com/financeflow/backend/internal/controllers"
	"github.com/financeflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptions() {
	s := test.Login(suite.T())
	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{})
	transaction := createTestTransaction(suite.T(), s, transactionBody{})

	tests := []struct {
		url      string
		response string
	}{
		{api + "/register/", "OPTIONS, POST"},
		{api + "/token/", "OPTIONS, POST"},
		{api + "/token/refresh/", "OPTIONS, POST"},
		{api + "/profile/", "OPTIONS, GET, PATCH"},
		{api + "/categories/", "OPTIONS, GET, POST"},
		{category.Data.Links.Self, "OPTIONS, GET, PUT, PATCH, DELETE"},
		{api + "/transactions/", "OPTIONS, GET, POST"},
		{transaction.Data.Links.Self, "OPTIONS, GET, PUT, PATCH, DELETE"},
		{api + "/export-pdf/", "OPTIONS, GET"},
		{api + "/export-xlsx/", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "", s.Header())
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.response, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	s := test.Login(suite.T())

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, api + "/register/"},
		{http.MethodDelete, api + "/token/"},
		{http.MethodPost, api + "/profile/"},
		{http.MethodDelete, api + "/categories/"},
		{http.MethodPut, api + "/transactions/"},
		{http.MethodPost, api + "/export-pdf/"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.url, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, "", s.Header())
			test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
		})
	}
}
