package controllers

import (
	"fmt"

	"github.com/financeflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" binding:"required,max=100" example:"Alimentação"` // Name of the category
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/categories/3b1ea324-d438-4419-882a-2fc91d71772f/"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/transactions/?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
}

type Category struct {
	ID    uuid.UUID     `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`   // UUID of the category
	Name  string        `json:"name" example:"Alimentação"`                          // Name of the category
	User  uuid.UUID     `json:"user" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the owner
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		ID:   model.ID,
		Name: model.Name,
		User: model.UserID,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/categories/%s/", url, model.ID),
			Transactions: fmt.Sprintf("%s/transactions/?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data   *Category         `json:"data"`                                                          // Data for the Category
	Error  *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Fields map[string]string `json:"fields,omitempty"`                                              // Errors per field of the request body
}
