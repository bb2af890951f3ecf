package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/search-insights-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		SecretKey: "test-secret",
		Auth: config.Auth{
			UserEmail:        "owner@example.com",
			UserPasswordHash: string(hash),
		},
	}
}

func TestService_LoginUser(t *testing.T) {
	service := NewService(authTestConfig(t))

	tests := []struct {
		name     string
		email    string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "valid credentials",
			email:    "owner@example.com",
			password: "correct horse",
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "email is normalized before comparison",
			email:    "  Owner@Example.COM ",
			password: "correct horse",
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "unknown email",
			email:    "intruder@example.com",
			password: "correct horse",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Empty(t, token)
			},
		},
		{
			name:     "wrong password",
			email:    "owner@example.com",
			password: "incorrect horse",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "missing fields",
			email:    "",
			password: "",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := authTestConfig(t)
	service := NewService(cfg)

	token, err := service.LoginUser("owner@example.com", "correct horse")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.UserEmail)

	// Tokens signed with a different key are rejected.
	other := NewService(&config.Config{
		SecretKey: "another-secret",
		Auth:      cfg.Auth,
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = service.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestService_GetUserProfile(t *testing.T) {
	service := NewService(authTestConfig(t))

	user, err := service.GetUserProfile("owner@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)

	_, err = service.GetUserProfile("someone@else.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
