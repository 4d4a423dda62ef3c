package auth_test

import (
	"testing"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		DisplayName: "Dana",
		Email:       "dana@example.com",
	}
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc := auth.NewAuthService("test-secret")
	user := testUser()

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "Dana", claims.DisplayName)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "wishlist-backend", claims.Issuer)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := auth.NewAuthService("secret-a").GenerateJWT(testUser())
	require.NoError(t, err)

	_, err = auth.NewAuthService("secret-b").ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := auth.NewAuthService("test-secret").ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWT_RejectsNonHMACAlgorithm(t *testing.T) {
	// alg=none tokens must never validate
	claims := &auth.AuthClaims{UserID: uuid.New().String()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewAuthService("test-secret").ValidateJWT(signed)
	assert.Error(t, err)
}

func TestValidateJWT_RejectsNonUUIDUserID(t *testing.T) {
	secret := "test-secret"
	claims := &auth.AuthClaims{UserID: "admin"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = auth.NewAuthService(secret).ValidateJWT(signed)
	assert.Error(t, err)
}
