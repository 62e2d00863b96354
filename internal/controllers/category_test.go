package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/financeflow/backend/internal/controllers"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesDefault() {
	s := test.Login(suite.T())

	categories := listCategories(suite.T(), s)
	suite.Require().Len(categories, len(models.DefaultCategories))

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
		suite.Assert().Equal(s.UserID, c.User)
		suite.Assert().Equal(fmt.Sprintf("%s/categories/%s/", api, c.ID), c.Links.Self)
		suite.Assert().Equal(fmt.Sprintf("%s/transactions/?category=%s", api, c.ID), c.Links.Transactions)
	}

	suite.Assert().ElementsMatch(models.DefaultCategories, names)
	suite.Assert().IsNonDecreasing(names, "Categories must be sorted by name")
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	s := test.Login(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, api+"/categories/", "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestCategoriesUnauthenticated() {
	tests := []struct {
		name    string
		method  string
		headers map[string]string
	}{
		{"No header", http.MethodGet, nil},
		{"Wrong scheme", http.MethodGet, map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"Invalid token", http.MethodPost, map[string]string{"Authorization": "Bearer invalid"}},
		{"Options", http.MethodOptions, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var r = test.Request(t, tt.method, api+"/categories/", `{"name": "Viagem"}`, tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.NotEmpty(t, r.Header().Get("WWW-Authenticate"))
		})
	}

	// Refresh tokens cannot be used for authentication
	s := test.Login(suite.T())
	r := test.Request(suite.T(), http.MethodGet, api+"/categories/", "", map[string]string{"Authorization": "Bearer " + s.Refresh})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	s := test.Login(suite.T())

	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{Name: "  Viagem  "})
	suite.Assert().Equal("Viagem", category.Data.Name)
	suite.Assert().Equal(s.UserID, category.Data.User)

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Len(listCategories(suite.T(), s), len(models.DefaultCategories)+1)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	s := test.Login(suite.T())

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{"Empty body", "", ""},
		{"Broken JSON", `{ "name": 2`, ""},
		{"Wrong type", `{ "name": 2 }`, "name"},
		{"No name", map[string]string{}, "name"},
		{"Whitespace name", map[string]string{"name": "   "}, ""},
		{"Name too long", map[string]string{"name": strings.Repeat("x", 101)}, "name"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, api+"/categories/", tt.body, s.Header())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var category controllers.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			assert.Nil(t, category.Data)
			assert.NotNil(t, category.Error)

			if tt.field != "" {
				assert.Contains(t, category.Fields, tt.field)
			}
		})
	}
}

// TestCategoriesIsolation verifies that users can neither see nor
// modify the categories of other users.
func (suite *TestSuiteStandard) TestCategoriesIsolation() {
	a := test.Login(suite.T())
	b := test.Login(suite.T())

	category := createTestCategory(suite.T(), a, controllers.CategoryEditable{Name: "Private"})

	for _, c := range listCategories(suite.T(), b) {
		suite.Assert().NotEqual(category.Data.ID, c.ID)
		suite.Assert().Equal(b.UserID, c.User)
	}

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, category.Data.Links.Self, `{"name": "Stolen"}`, b.Header())
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", a.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &got)
	suite.Assert().Equal("Private", got.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetInvalid() {
	s := test.Login(suite.T())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Nil UUID", uuid.Nil.String(), http.StatusNotFound},
		{"Unknown", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
				r := test.Request(t, method, fmt.Sprintf("%s/categories/%s/", api, tt.id), `{"name": "x"}`, s.Header())
				test.AssertHTTPStatus(t, &r, tt.status)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	s := test.Login(suite.T())
	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{Name: "Viagem"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{"name": "Férias"}, s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Férias", updated.Data.Name)
	suite.Assert().Equal(category.Data.ID, updated.Data.ID)

	// A PATCH without name keeps it
	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{}, s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Férias", updated.Data.Name)

	// PUT requires all fields
	r = test.Request(suite.T(), http.MethodPut, category.Data.Links.Self, map[string]any{}, s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPut, category.Data.Links.Self, map[string]any{"name": "Viagens"}, s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Viagens", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	s := test.Login(suite.T())
	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": 2`},
		{"Empty name", map[string]string{"name": ""}},
		{"Name too long", map[string]string{"name": strings.Repeat("x", 101)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, category.Data.Links.Self, tt.body, s.Header())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestCategoriesDelete verifies that transactions survive the deletion
// of their category.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	s := test.Login(suite.T())
	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{Name: "Viagem"})
	transaction := createTestTransaction(suite.T(), s, transactionBody{Category: &category.Data.ID})
	suite.Require().NotNil(transaction.Data.CategoryID)

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Empty(r.Body.String())

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var kept controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &kept)
	suite.Assert().Nil(kept.Data.CategoryID)
	suite.Assert().Nil(kept.Data.CategoryName)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteDBClosed() {
	s := test.Login(suite.T())
	category := createTestCategory(suite.T(), s, controllers.CategoryEditable{})
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", s.Header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
