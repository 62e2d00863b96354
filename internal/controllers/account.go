package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/financeflow/backend/internal/auth"
	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// RegisterAccountRoutes registers the routes for registration and
// token issuance with the RouterGroup that is passed. None of them
// require authentication.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register/", OptionsRegister)
	r.POST("/register/", Register)

	r.OPTIONS("/token/", OptionsToken)
	r.POST("/token/", CreateToken)

	r.OPTIONS("/token/refresh/", OptionsToken)
	r.POST("/token/refresh/", RefreshToken)
}

// RegisterProfileRoutes registers the routes for the profile of the
// authenticated user.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/", OptionsProfile)
	r.GET("/", GetProfile)
	r.PATCH("/", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/register/ [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user together with the default categories
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/register/ [post]
func Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err == nil {
		err = validatePassword(editable.Password)
	}
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), UserResponse{Error: e, Fields: fields})
		return
	}

	user := editable.model()
	user.PasswordHash, err = auth.HashPassword(editable.Password)
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), UserResponse{Error: e, Fields: fields})
		return
	}

	err = models.CreateUser(models.DB, &user)
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), UserResponse{Error: e, Fields: fields})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/token/ [options]
// @Router			/token/refresh/ [options]
func OptionsToken(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Obtain tokens
// @Description	Exchanges username and password for an access and a refresh token
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200			{object}	auth.Pair
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			credentials	body		TokenEditable	true	"Credentials"
// @Router			/token/ [post]
func CreateToken(c *gin.Context) {
	var editable TokenEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httperror.WithFields(err, httputil.FieldErrors(err)))
		return
	}

	var user models.User
	err = models.DB.First(&user, "username = ?", strings.TrimSpace(editable.Username)).Error
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && !auth.CheckPassword(user.PasswordHash, editable.Password)) {
		httperror.Unauthorized(c, auth.ErrInvalidCredentials)
		return
	} else if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	pair, err := auth.IssuePair(user.ID)
	if err != nil {
		err = general(c, err)
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, pair)
}

// @Summary		Refresh token
// @Description	Exchanges a refresh token for a new access token
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccessToken
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Param			token	body		RefreshEditable	true	"Refresh token"
// @Router			/token/refresh/ [post]
func RefreshToken(c *gin.Context) {
	var editable RefreshEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httperror.WithFields(err, httputil.FieldErrors(err)))
		return
	}

	access, err := auth.Refresh(editable.Refresh)
	if errors.Is(err, auth.ErrNotConfigured) {
		err = general(c, err)
		c.JSON(status(err), httperror.New(err))
		return
	} else if err != nil {
		httperror.Unauthorized(c, auth.ErrTokenInvalid)
		return
	}

	c.JSON(http.StatusOK, AccessToken{Access: access})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Security		BearerAuth
// @Router			/profile/ [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the authenticated user
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httperror.Error
// @Security		BearerAuth
// @Router			/profile/ [get]
func GetProfile(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates the authenticated user. Only values to be updated need to be specified. An empty password keeps the current password.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	UserResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Security		BearerAuth
// @Router			/profile/ [patch]
func UpdateProfile(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), UserResponse{Error: e, Fields: fields})
		return
	}

	editable := ProfileEditable{
		Username: user.Username,
		Email:    user.Email,
	}
	err = httputil.BindData(c, &editable)
	if err == nil {
		err = validatePassword(editable.Password)
	}
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), UserResponse{Error: e, Fields: fields})
		return
	}

	user.Username = editable.Username
	user.Email = editable.Email

	if slices.Contains(updateFields, "Password") && editable.Password != "" {
		user.PasswordHash, err = auth.HashPassword(editable.Password)
		if err != nil {
			e, fields := errorText(err)
			c.JSON(status(err), UserResponse{Error: e, Fields: fields})
			return
		}
	}

	err = models.DB.Omit(clause.Associations).Save(&user).Error
	if err != nil {
		e, fields := errorText(err)
		c.JSON(status(err), UserResponse{Error: e, Fields: fields})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
