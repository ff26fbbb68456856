package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/internal/auth"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "middleware-secret"
	cfg.Auth.TokenTTL = time.Hour
	tokens := auth.NewTokenManager(cfg)

	r := gin.New()
	r.Use(OptionalAuth(tokens))
	r.GET("/whoami", func(ctx *gin.Context) {
		owner := Owner(ctx)
		if id, ok := owner.UserID(); ok {
			ctx.String(http.StatusOK, id.String())
			return
		}
		ctx.String(http.StatusOK, "anonymous")
	})
	r.GET("/private", RequireAuth(), func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	r.GET("/admin", RequireRole(model.RoleAdmin), func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	return r, tokens
}

func bearer(t *testing.T, tokens *auth.TokenManager, user *model.User) string {
	t.Helper()
	tok, _, err := tokens.Sign(user)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth(t *testing.T) {
	r, tokens := setup(t)
	user := &model.User{ID: uuid.New(), Role: model.RoleUser}

	w := do(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = do(r, "/whoami", bearer(t, tokens, user))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID.String(), w.Body.String())

	w = do(r, "/whoami", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "/whoami", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth(t *testing.T) {
	r, tokens := setup(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "").Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/private", bearer(t, tokens, &model.User{ID: uuid.New(), Role: model.RoleUser})).Code)
}

func TestRequireRole(t *testing.T) {
	r, tokens := setup(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", bearer(t, tokens, &model.User{ID: uuid.New(), Role: model.RoleProfessional})).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/admin", bearer(t, tokens, &model.User{ID: uuid.New(), Role: model.RoleAdmin})).Code)
}
