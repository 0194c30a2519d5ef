package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/internal/application"
	"github.com/oksasatya/go-notes-api/internal/interface/middleware"
	"github.com/oksasatya/go-notes-api/pkg/response"
	"github.com/oksasatya/go-notes-api/pkg/validation"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInternal      = "Internal Server Error"
	msgMissingAccess = "Access token missing"
)

// writeError maps service errors onto the HTTP envelope. Unknown errors are
// logged and reported as 500 without detail.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, application.ErrPasswordMismatch):
		response.Error(c, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, application.ErrConflict):
		response.Error(c, http.StatusConflict, "User already exists")
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, application.ErrNoteNotFound):
		response.Error(c, http.StatusNotFound, "Note not found")
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Not found")
	default:
		if logger != nil {
			logger.WithError(err).
				WithFields(logrus.Fields{
					"request_id": middleware.RequestID(c),
					"path":       c.FullPath(),
				}).
				Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, msgInternal)
	}
}

// bindJSON decodes the body into dst. An empty body leaves dst zeroed so the
// service can report the first missing field.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(err).SetType(gin.ErrorTypeBind).SetMeta(validation.ToDetails(err))
		response.Error(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// identity returns the caller resolved by middleware.Auth, writing a 401
// when the route was registered without it.
func identity(c *gin.Context) (middleware.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, msgMissingAccess)
	}
	return id, ok
}
