package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Description string                 `json:"description" binding:"required,max=255" example:"Padaria"`          // Description of the transaction
	Amount      *decimal.Decimal       `json:"amount" binding:"required" swaggertype:"string" example:"12.50"`    // Amount, at most 8 digits before and 2 after the decimal point
	Date        *types.Date            `json:"date" binding:"required" swaggertype:"string" example:"2024-03-05"` // Day of the transaction
	Type        models.TransactionType `json:"type" binding:"required,oneof=IN OUT" example:"OUT"`                // IN for income, OUT for expenses
	CategoryID  *uuid.UUID             `json:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`           // Category, must belong to the user
}

// validate checks the values the binding tags cannot express.
func (editable TransactionEditable) validate() error {
	if strings.TrimSpace(editable.Description) == "" {
		return httputil.ValidationError{Fields: map[string]string{
			"description": models.ErrDescriptionEmpty.Error(),
		}}
	}

	if err := models.ValidateAmount(*editable.Amount); err != nil {
		return httputil.ValidationError{Fields: map[string]string{
			"amount": err.Error(),
		}}
	}

	return nil
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Description: editable.Description,
		Amount:      *editable.Amount,
		Date:        *editable.Date,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
	}
}

// editableFrom returns the editable values of a stored transaction.
func editableFrom(model models.Transaction) TransactionEditable {
	amount := model.Amount
	date := model.Date

	return TransactionEditable{
		Description: model.Description,
		Amount:      &amount,
		Date:        &date,
		Type:        model.Type,
		CategoryID:  model.CategoryID,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	ID           uuid.UUID              `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`       // UUID of the transaction
	Description  string                 `json:"description" example:"Padaria"`                           // Description of the transaction
	Amount       string                 `json:"amount" example:"12.50"`                                  // Amount with two decimal places
	Date         types.Date             `json:"date" swaggertype:"string" example:"2024-03-05"`          // Day of the transaction
	Type         models.TransactionType `json:"type" example:"OUT"`                                      // IN for income, OUT for expenses
	CategoryID   *uuid.UUID             `json:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // UUID of the category, null if there is none
	CategoryName *string                `json:"category_name" example:"Alimentação"`                     // Name of the category, null if there is none
	User         uuid.UUID              `json:"user" example:"65392deb-5e92-4268-b114-297faad6cdce"`     // UUID of the owner
	CreatedAt    time.Time              `json:"created_at" example:"2024-03-05T18:43:00.271152Z"`        // Time the transaction was created
	Links        TransactionLinks       `json:"links"`
}

// newTransaction returns the API representation. The category of the
// model must be preloaded.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		ID:          model.ID,
		Description: model.Description,
		Amount:      model.Amount.StringFixed(2),
		Date:        model.Date,
		Type:        model.Type,
		CategoryID:  model.CategoryID,
		User:        model.UserID,
		CreatedAt:   model.CreatedAt,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/transactions/%s/", url, model.ID),
		},
	}

	if model.Category != nil {
		name := model.Category.Name
		t.CategoryName = &name
	}

	return t
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                                          // List of transactions
	Error *string       `json:"error" example:"the month query parameter must be an integer between 1 and 12"` // The error, if any occurred
}

type TransactionResponse struct {
	Data   *Transaction      `json:"data"`                                                          // Data for the transaction
	Error  *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Fields map[string]string `json:"fields,omitempty"`                                              // Errors per field of the request body
}

// TransactionQueryFilter contains the fields that transactions can be filtered with.
type TransactionQueryFilter struct {
	QueryPeriod
	Category    string `form:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // By ID of the category
	Description string `form:"description" example:"*Padaria*"`                         // By description, glob pattern
}
