package controllers

import (
	"net/http"

	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed. The group must authenticate requests.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("/", OptionsCategoryList)
		r.GET("/", GetCategories)
		r.POST("/", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id/", OptionsCategoryDetail)
		r.GET("/:id/", GetCategory)
		r.PUT("/:id/", ReplaceCategory)
		r.PATCH("/:id/", UpdateCategory)
		r.DELETE("/:id/", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Security		BearerAuth
// @Router			/categories/ [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/categories/{id}/ [options]
func OptionsCategoryDetail(c *gin.Context) {
	_, ok := ownedCategory(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Get categories
// @Description	Returns all categories of the authenticated user
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	CategoryListResponse
// @Security		BearerAuth
// @Router			/categories/ [get]
func GetCategories(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var categories []models.Category
	err := models.DB.Where("user_id = ?", user.ID).Order("name ASC").Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Create category
// @Description	Creates a new category for the authenticated user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Security		BearerAuth
// @Router			/categories/ [post]
func CreateCategory(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), CategoryResponse{Error: e, Fields: fields})
		return
	}

	category := editable.model(user.ID)
	err = models.DB.Omit(clause.Associations).Create(&category).Error
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), CategoryResponse{Error: e, Fields: fields})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/categories/{id}/ [get]
func GetCategory(c *gin.Context) {
	category, ok := ownedCategory(c)
	if !ok {
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Replace category
// @Description	Replaces all values of a category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Security		BearerAuth
// @Router			/categories/{id}/ [put]
func ReplaceCategory(c *gin.Context) {
	saveCategory(c, false)
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Security		BearerAuth
// @Router			/categories/{id}/ [patch]
func UpdateCategory(c *gin.Context) {
	saveCategory(c, true)
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions in the category are kept without a category.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/categories/{id}/ [delete]
func DeleteCategory(c *gin.Context) {
	category, ok := ownedCategory(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// saveCategory updates the category from the request body. For partial
// updates, values missing in the body are kept.
func saveCategory(c *gin.Context, partial bool) {
	category, ok := ownedCategory(c)
	if !ok {
		return
	}

	var editable CategoryEditable
	if partial {
		editable.Name = category.Name
	}

	err := httputil.BindData(c, &editable)
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), CategoryResponse{Error: e, Fields: fields})
		return
	}

	category.Name = editable.Name
	err = models.DB.Omit(clause.Associations).Save(&category).Error
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), CategoryResponse{Error: e, Fields: fields})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// ownedCategory returns the category from the request URI. Categories of
// other users are reported as not existing.
//
// If the second return value is false, the response has been written.
func ownedCategory(c *gin.Context) (models.Category, bool) {
	user, ok := requestUser(c)
	if !ok {
		return models.Category{}, false
	}

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Category{}, false
	}

	category, err := models.OwnedCategory(models.DB, user.ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Category{}, false
	}

	return category, true
}
