package controllers

import (
	"github.com/financeflow/backend/internal/auth"
	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// QueryPeriod is the optional period filter for transactions and statements.
type QueryPeriod struct {
	Month string `form:"month" example:"3"`   // Month, only applied together with year
	Year  string `form:"year" example:"2024"` // Year, only applied together with month
}

// requestUser returns the authenticated user of the request.
//
// Routes using it are registered behind auth.Middleware, a request
// without a user is answered with a 401 here.
func requestUser(c *gin.Context) (models.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		httperror.Unauthorized(c, auth.ErrNoCredentials)
	}

	return user, ok
}
