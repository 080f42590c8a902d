package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
)

const internalErrorMessage = "internal server error"

func currentAdmin(c *gin.Context) string {
	return c.GetString(middleware.AdminContextKey)
}

// audit records an admin change to the menu or an order.
func audit(c *gin.Context, action string, attrs ...any) {
	attrs = append([]any{slog.String("admin", currentAdmin(c))}, attrs...)
	middleware.LoggerFrom(c).Info(action, attrs...)
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// writeError maps domain failures onto HTTP statuses. stockStatus is used for
// insufficient stock since checkout and inventory adjustment report it differently.
func writeError(c *gin.Context, err error, stockStatus int) {
	switch {
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		abortWithError(c, stockStatus, err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrTotalMismatch),
		errors.Is(err, domainErrors.ErrOutOfStock):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "invalid credentials")
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}
