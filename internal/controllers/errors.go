package controllers

import (
	"errors"
	"net/http"

	"github.com/financeflow/backend/internal/httputil"
	"github.com/financeflow/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// errorText returns the message and the field errors for a response.
func errorText(err error) (*string, map[string]string) {
	s := err.Error()
	return &s, httputil.FieldErrors(err)
}

// general logs an unexpected error and replaces it with models.ErrGeneral.
func general(c *gin.Context, err error) error {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return models.ErrGeneral
}
