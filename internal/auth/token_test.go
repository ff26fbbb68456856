package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(secret string) *TokenManager {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenTTL = time.Hour
	return NewTokenManager(cfg)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := newManager("test-secret")
	user := &model.User{ID: uuid.New(), Email: "ana@example.com", Role: model.RoleProfessional}

	tok, expiresAt, err := m.Sign(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, model.RoleProfessional, claims.Role)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	tok, _, err := newManager("one").Sign(&model.User{ID: uuid.New(), Role: model.RoleUser})
	require.NoError(t, err)

	_, err = newManager("two").Parse(tok)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := newManager("test-secret")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, err := m.Sign(&model.User{ID: uuid.New(), Role: model.RoleUser})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(tok)
	assert.Error(t, err)
}

func TestTokenManager_NoSecret(t *testing.T) {
	m := newManager("")
	_, _, err := m.Sign(&model.User{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrNoSecret)
	_, err = m.Parse("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}
