//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	refresh, err := time.ParseDuration(h.cfg.RefreshDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refresh)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	access, err := time.ParseDuration(h.cfg.AccessDuration)
	require.NoError(t, err)
	token, err := h.service(t, access).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Hour).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
