package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const contextUser = "financeflow-user"

var (
	ErrNoCredentials = errors.New("authentication credentials were not provided")
	ErrUserInactive  = errors.New("the user for this token does not exist")
)

// Middleware authenticates the request with the bearer token in the
// Authorization header and stores the user in the context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			httperror.Unauthorized(c, ErrNoCredentials)
			return
		}

		userID, err := Verify(strings.TrimSpace(token), TokenTypeAccess)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Authentication")
			httperror.Unauthorized(c, ErrTokenInvalid)
			return
		}

		var user models.User
		err = models.DB.First(&user, "id = ?", userID).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			httperror.Unauthorized(c, ErrUserInactive)
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user. The second return value
// is false when the request did not pass through Middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(contextUser)
	if !ok {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}
