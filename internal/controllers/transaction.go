package controllers

import (
	"net/http"

	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed. The group must authenticate requests.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("/", OptionsTransactionList)
		r.GET("/", GetTransactions)
		r.POST("/", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id/", OptionsTransactionDetail)
		r.GET("/:id/", GetTransaction)
		r.PUT("/:id/", ReplaceTransaction)
		r.PATCH("/:id/", UpdateTransaction)
		r.DELETE("/:id/", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Security		BearerAuth
// @Router			/transactions/ [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/transactions/{id}/ [options]
func OptionsTransactionDetail(c *gin.Context) {
	_, ok := ownedTransaction(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions of the authenticated user, newest first. The month and year filters are only applied if both are set.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	TransactionListResponse
// @Param			month		query		int		false	"Filter by month (1-12)"
// @Param			year		query		int		false	"Filter by year"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			description	query		string	false	"Filter by description. This is a glob pattern, e.g. *market*"
// @Security		BearerAuth
// @Router			/transactions/ [get]
func GetTransactions(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var filter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	period, err := types.ParsePeriod(filter.Month, filter.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	categoryID, err := httputil.UUIDFromString(filter.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	q := transactionQuery(user.ID, period)
	if categoryID != uuid.Nil {
		q = q.Where("category_id = ?", categoryID)
	}

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.Description != "" && !glob.Glob(filter.Description, transaction.Description) {
			continue
		}

		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the authenticated user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Security		BearerAuth
// @Router			/transactions/ [post]
func CreateTransaction(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err == nil {
		err = editable.validate()
	}
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), TransactionResponse{Error: e, Fields: fields})
		return
	}

	transaction := editable.model(user.ID)
	err = models.DB.Omit(clause.Associations).Create(&transaction).Error
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), TransactionResponse{Error: e, Fields: fields})
		return
	}

	transaction, err = models.OwnedTransaction(models.DB, user.ID, transaction.ID)
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), TransactionResponse{Error: e, Fields: fields})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/transactions/{id}/ [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := ownedTransaction(c)
	if !ok {
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Replace transaction
// @Description	Replaces all values of a transaction. A missing category removes the category from the transaction.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Security		BearerAuth
// @Router			/transactions/{id}/ [put]
func ReplaceTransaction(c *gin.Context) {
	saveTransaction(c, false)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Security		BearerAuth
// @Router			/transactions/{id}/ [patch]
func UpdateTransaction(c *gin.Context) {
	saveTransaction(c, true)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/transactions/{id}/ [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, ok := ownedTransaction(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// saveTransaction updates the transaction from the request body. For
// partial updates, values missing in the body are kept.
func saveTransaction(c *gin.Context, partial bool) {
	transaction, ok := ownedTransaction(c)
	if !ok {
		return
	}

	var editable TransactionEditable
	if partial {
		editable = editableFrom(transaction)
	}

	err := httputil.BindData(c, &editable)
	if err == nil {
		err = editable.validate()
	}
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), TransactionResponse{Error: e, Fields: fields})
		return
	}

	updated := editable.model(transaction.UserID)
	updated.DefaultModel = transaction.DefaultModel

	err = models.DB.Omit(clause.Associations).Save(&updated).Error
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), TransactionResponse{Error: e, Fields: fields})
		return
	}

	updated, err = models.OwnedTransaction(models.DB, updated.UserID, updated.ID)
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), TransactionResponse{Error: e, Fields: fields})
		return
	}

	data := newTransaction(c, updated)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// ownedTransaction returns the transaction from the request URI with its
// category. Transactions of other users are reported as not existing.
//
// If the second return value is false, the response has been written.
func ownedTransaction(c *gin.Context) (models.Transaction, bool) {
	user, ok := requestUser(c)
	if !ok {
		return models.Transaction{}, false
	}

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Transaction{}, false
	}

	transaction, err := models.OwnedTransaction(models.DB, user.ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Transaction{}, false
	}

	return transaction, true
}

// transactionQuery returns the query for all transactions of a user in
// the period, newest first. The zero period does not filter.
func transactionQuery(userID uuid.UUID, period types.Period) *gorm.DB {
	q := models.DB.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC")

	if !period.IsZero() {
		q = q.Where("date >= ? AND date < ?", types.DateOf(period.Start()), types.DateOf(period.End()))
	}

	return q
}
