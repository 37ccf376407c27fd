package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"stickynotes/internal/middleware"
	"stickynotes/internal/model"
	appErr "stickynotes/internal/pkg/errors"
	"stickynotes/internal/pkg/jwt"
)

var testSecret = []byte("test-secret")

type fakeResolver struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
	err      error
	calls    int
}

func (r *fakeResolver) GetByID(ctx context.Context, userID string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	account, ok := r.accounts[userID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return account, nil
}

func newAuthRouter(resolver *fakeResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/whoami", middleware.Auth(testSecret, resolver), func(c *gin.Context) {
		userID, _ := c.Get(middleware.ContextUserIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return engine
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuthMissingHeader(t *testing.T) {
	router := newAuthRouter(&fakeResolver{})
	resp := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthWrongScheme(t *testing.T) {
	router := newAuthRouter(&fakeResolver{})
	resp := doRequest(router, "Basic abc")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	router := newAuthRouter(&fakeResolver{})
	resp := doRequest(router, "Bearer not-a-token")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthWrongSecret(t *testing.T) {
	token, err := jwt.GenerateToken("u1", []byte("other"), time.Hour)
	require.NoError(t, err)
	router := newAuthRouter(&fakeResolver{})
	resp := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthUnknownUser(t *testing.T) {
	token, err := jwt.GenerateToken("ghost", testSecret, time.Hour)
	require.NoError(t, err)
	router := newAuthRouter(&fakeResolver{accounts: map[string]*model.Account{}})
	resp := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthStoreUnavailable(t *testing.T) {
	token, err := jwt.GenerateToken("u1", testSecret, time.Hour)
	require.NoError(t, err)
	router := newAuthRouter(&fakeResolver{err: appErr.ErrUnavailable})
	resp := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestAuthSuccessAndCache(t *testing.T) {
	resolver := &fakeResolver{accounts: map[string]*model.Account{
		"u1": {UserID: "u1", UserName: "Al", UserEmail: "a@x.com"},
	}}
	router := newAuthRouter(resolver)

	token, err := jwt.GenerateToken("u1", testSecret, time.Hour)
	require.NoError(t, err)

	resp := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "u1")

	// second request hits the account cache
	resp = doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, 1, resolver.calls)
}
