package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"labelmedix/internal/config"
	"labelmedix/internal/domain"
	"labelmedix/internal/service"
)

func newAuthFixture(t *testing.T) (service.AuthService, *domain.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	user := &domain.User{
		Email:        "editor@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleEditor,
		IsActive:     true,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	svc := service.NewAuthService(userRepo, config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "labelmedix-test",
	})
	return svc, user
}

func TestAuthService_Login(t *testing.T) {
	svc, user := newAuthFixture(t)

	t.Run("valid", func(t *testing.T) {
		pair, err := svc.Login(context.Background(), service.LoginInput{
			Email: "editor@example.com", Password: "correct-horse1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleEditor, claims.Role)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email: "editor@example.com", Password: "wrong-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email: "nobody@example.com", Password: "correct-horse1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email: "editor@example.com", Password: "correct-horse1",
	})
	require.NoError(t, err)

	t.Run("valid_refresh", func(t *testing.T) {
		refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("access_token_is_not_a_refresh_token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("garbage_token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAuthService_ValidateToken_RejectsRefreshAudience(t *testing.T) {
	svc, _ := newAuthFixture(t)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email: "editor@example.com", Password: "correct-horse1",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &domain.User{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleEditor,
		IsActive:     false,
	}))

	svc := service.NewAuthService(userRepo, config.JWTConfig{
		Secret:            "test-secret",
		AccessTokenExpiry: time.Minute,
	})

	_, err = svc.Login(context.Background(), service.LoginInput{
		Email: "gone@example.com", Password: "correct-horse1",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}
