package auth

import (
	"testing"
	"time"

	"vehicle-service/models/account"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testAccount() *account.Account {
	return &account.Account{
		ID:       1,
		Uuid:     uuid.NewString(),
		Username: "testuser",
		Email:    "test@example.com",
	}
}

func TestNewService(t *testing.T) {
	service := NewService()
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 8*time.Hour, service.tokenExp)
}

func TestService_HashPassword(t *testing.T) {
	service := NewService()

	password := "testpassword123"
	hash, err := service.HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestService_CheckPassword(t *testing.T) {
	service := NewService()

	password := "testpassword123"
	hash, _ := service.HashPassword(password)

	assert.True(t, service.CheckPassword(password, hash))
	assert.False(t, service.CheckPassword("wrongpassword", hash))
}

func TestService_GenerateToken(t *testing.T) {
	service := NewService()

	token, err := service.GenerateToken(testAccount(), account.RoleCustomer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService()
	acc := testAccount()

	token, _ := service.GenerateToken(acc, account.RoleServiceCenter)

	// Valid token round trip
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, acc.Uuid, claims.AccountUUID)
	assert.Equal(t, acc.Username, claims.Username)
	assert.Equal(t, account.RoleServiceCenter, claims.Role)

	// Invalid token
	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	// Token with Bearer prefix
	_, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
}

func TestService_ValidateToken_RejectsUnknownRole(t *testing.T) {
	service := NewService()

	token, _ := service.GenerateToken(testAccount(), account.Role("superadmin"))

	_, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service := NewService()

	token := "valid-token"
	extracted, err := service.ExtractTokenFromHeader("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, token, extracted)

	_, err = service.ExtractTokenFromHeader("")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("InvalidFormat")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_TokenExpiration(t *testing.T) {
	service := NewService()

	token, _ := service.GenerateToken(testAccount(), account.RoleCustomer)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	now := time.Now().Unix()
	assert.Greater(t, claims.Exp, now)
	assert.LessOrEqual(t, claims.Exp, now+int64(service.tokenExp.Seconds())+1)
}
