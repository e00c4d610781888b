package jwt

import (
	"testing"

	"rotasol-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()
	userID := uuid.NewString()

	token := service.GenerateTokenUser(userID, domain.RoleDonor)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.Equal(t, domain.RoleDonor, role)
}

func TestAdminRoleClaim(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser(uuid.NewString(), domain.RoleAdmin)

	_, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestGarbageTokenRejected(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
