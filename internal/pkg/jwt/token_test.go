package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montirku/montirku/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "montirku",
	}

	user := &models.User{
		ID:    uuid.New().String(),
		Name:  "Budi Santoso",
		Phone: "+6281234567890",
		Role:  models.RoleMechanic,
	}

	tokenString, expiresAt, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	identity, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Name, identity.Name)
	assert.Equal(t, user.Phone, identity.Phone)
	assert.Equal(t, models.RoleMechanic, identity.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "montirku"}
	user := &models.User{ID: uuid.New().String(), Role: models.RoleUser}

	tokenString, _, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
