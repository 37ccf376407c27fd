package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stickynotes/internal/middleware"
	"stickynotes/internal/model"
	appErr "stickynotes/internal/pkg/errors"
	"stickynotes/internal/pkg/logger"
	"stickynotes/internal/pkg/response"
)

func currentAccount(c *gin.Context) *model.Account {
	value, _ := c.Get(middleware.ContextAccountKey)
	account, _ := value.(*model.Account)
	return account
}

// handleError translates a domain error into a status code once, at the
// boundary. Store and internal failures are logged in full and surfaced
// with a generic body.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	case errors.Is(err, appErr.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "email_taken", "email already registered")
	case errors.Is(err, appErr.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid_credentials", "incorrect email or password")
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, appErr.ErrUnavailable):
		logFailure(c, err)
		response.Error(c, http.StatusServiceUnavailable, "unavailable", "service unavailable")
	default:
		logFailure(c, err)
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

func logFailure(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	userID, _ := c.Get(middleware.ContextUserIDKey)
	logger.L().Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Any("user_id", userID),
		zap.Error(err),
	)
}
