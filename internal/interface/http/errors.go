package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recetario-api/internal/application"
	"github.com/oksasatya/recetario-api/internal/interface/middleware"
	"github.com/oksasatya/recetario-api/pkg/helpers"
	"github.com/oksasatya/recetario-api/pkg/response"
	"github.com/oksasatya/recetario-api/pkg/validation"
)

// statusFor maps application errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrUnknownUser):
		return http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrRecipeNotFound),
		errors.Is(err, application.ErrRecipeUnavailable):
		return http.StatusNotFound
	case errors.Is(err, application.ErrImagesUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"message": ...}. Internal errors are logged and
// replaced by a generic message.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString(middleware.CtxRequestIDKey),
			"path":       c.FullPath(),
			"user_id":    middleware.UserID(c),
		})
		response.Error(c, status, "internal server error", nil)
		return
	}
	response.Error(c, status, err.Error(), nil)
}

func writeBindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
