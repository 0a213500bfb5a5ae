// Package httperror maps errors to HTTP responses.
package httperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/auth"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/rs/zerolog/log"
)

type Error struct {
	Message string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func New(e error) Error {
	return Error{
		Message: auth.Message(e),
	}
}

func NewFromString(msg string) Error {
	return Error{
		Message: msg,
	}
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, gateway.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, session.ErrNoPrincipal):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Handler writes the error response for err.
//
// Server errors are logged with the request ID. Their message is replaced
// so that no internals are sent to clients.
func Handler(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(status, NewFromString(fmt.Sprintf("%s. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c))))
		return
	}

	c.JSON(status, New(err))
}
