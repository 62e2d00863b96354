package controllers_test

import (
	"net/http"

	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/test"
)

func (suite *TestSuiteStandard) TestHealthzSuccess() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzFail() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, api, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `"transactions":"`+api+`/transactions/"`)
}
