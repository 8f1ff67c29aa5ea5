package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamhub/internal/model"
	"teamhub/internal/pkg/config"
	pkgErrors "teamhub/pkg/errors"
)

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Username:  "alice",
		Role:      model.RoleAdmin,
	}
}

func TestSignAndValidate(t *testing.T) {
	issuer := NewIssuer(&config.JWTConfig{Secret: "test-secret", Expire: 3600})

	token, err := issuer.Sign(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewIssuer(&config.JWTConfig{Secret: "test-secret", Expire: 3600})
	other := NewIssuer(&config.JWTConfig{Secret: "other-secret", Expire: 3600})

	token, err := issuer.Sign(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeUnauthenticated, pkgErrors.CodeOf(err))
}

func TestValidateGarbage(t *testing.T) {
	issuer := NewIssuer(&config.JWTConfig{Secret: "test-secret", Expire: 3600})

	_, err := issuer.Validate("not.a.token")
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeUnauthenticated, pkgErrors.CodeOf(err))
}

func TestValidateExpired(t *testing.T) {
	issuer := NewIssuer(&config.JWTConfig{Secret: "test-secret", Expire: -60})

	token, err := issuer.Sign(testUser())
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeUnauthenticated, pkgErrors.CodeOf(err))
}
