//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pricewatch/internal/domain/user"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p user.Principal) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(p)
	require.NoError(t, err)
	return token
}

// NewPrincipalToken creates a fresh identity with role and returns it with its token.
func (h *JWTHelper) NewPrincipalToken(t *testing.T, name string, role user.Role) (user.Principal, string) {
	t.Helper()
	p, err := user.NewPrincipal(uuid.New(), name, role)
	require.NoError(t, err)
	return p, h.GenerateToken(t, p)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, p user.Principal) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(p)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
