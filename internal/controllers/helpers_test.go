package controllers_test

import (
	"net/http"
	"testing"

	"github.com/financeflow/backend/internal/controllers"
	"github.com/financeflow/backend/test"
	"github.com/google/uuid"
)

func createTestCategory(t *testing.T, s test.Session, c controllers.CategoryEditable, expectedStatus ...int) controllers.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, api+"/categories/", c, s.Header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category controllers.CategoryResponse
	test.DecodeResponse(t, &r, &category)

	return category
}

// transactionBody is the request body for transactions. Amounts are
// sent as strings, the way API clients do.
type transactionBody struct {
	Description string     `json:"description,omitempty"`
	Amount      string     `json:"amount,omitempty"`
	Date        string     `json:"date,omitempty"`
	Type        string     `json:"type,omitempty"`
	Category    *uuid.UUID `json:"category,omitempty"`
}

func createTestTransaction(t *testing.T, s test.Session, b transactionBody, expectedStatus ...int) controllers.TransactionResponse {
	if b.Description == "" {
		b.Description = "Padaria"
	}

	if b.Amount == "" {
		b.Amount = "10"
	}

	if b.Date == "" {
		b.Date = "2024-03-05"
	}

	if b.Type == "" {
		b.Type = "OUT"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, api+"/transactions/", b, s.Header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction controllers.TransactionResponse
	test.DecodeResponse(t, &r, &transaction)

	return transaction
}

func listTransactions(t *testing.T, s test.Session, query string) []controllers.Transaction {
	r := test.Request(t, http.MethodGet, api+"/transactions/"+query, "", s.Header())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list controllers.TransactionListResponse
	test.DecodeResponse(t, &r, &list)

	return list.Data
}

func listCategories(t *testing.T, s test.Session) []controllers.Category {
	r := test.Request(t, http.MethodGet, api+"/categories/", "", s.Header())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list controllers.CategoryListResponse
	test.DecodeResponse(t, &r, &list)

	return list.Data
}
