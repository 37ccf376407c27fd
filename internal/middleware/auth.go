package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"stickynotes/internal/model"
	appErr "stickynotes/internal/pkg/errors"
	"stickynotes/internal/pkg/jwt"
	"stickynotes/internal/pkg/response"
)

const (
	ContextUserIDKey  = "user_id"
	ContextAccountKey = "account"
)

const (
	accountCacheSize = 1024
	accountCacheTTL  = 30 * time.Second
)

// AccountResolver loads the account a verified token points at.
type AccountResolver interface {
	GetByID(ctx context.Context, userID string) (*model.Account, error)
}

// Auth extracts a bearer token, verifies it and resolves the account into
// the request context. Resolved accounts are cached briefly so every
// authenticated request does not cost a store round trip.
func Auth(secret []byte, accounts AccountResolver) gin.HandlerFunc {
	cache := expirable.NewLRU[string, *model.Account](accountCacheSize, nil, accountCacheTTL)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "missing authorization")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid authorization")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid token")
			c.Abort()
			return
		}
		account, ok := cache.Get(claims.UserID)
		if !ok {
			account, err = accounts.GetByID(c.Request.Context(), claims.UserID)
			if err != nil {
				switch {
				case appErr.IsNotFound(err):
					response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid token")
				case appErr.IsUnavailable(err):
					response.Error(c, http.StatusServiceUnavailable, "unavailable", "service unavailable")
				default:
					response.Error(c, http.StatusInternalServerError, "internal", "internal error")
				}
				c.Abort()
				return
			}
			cache.Add(claims.UserID, account)
		}
		c.Set(ContextUserIDKey, account.UserID)
		c.Set(ContextAccountKey, account)
		c.Next()
	}
}
