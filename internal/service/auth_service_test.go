package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"agencyhub/internal/config"
	"agencyhub/internal/domain"
	"agencyhub/internal/service"
	"agencyhub/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-at-least-32-characters",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "agencyhub-test",
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		Role:         domain.RoleClient,
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, got, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, user, got)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("GetByEmail", mock.Anything, "nobody@test.com").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@test.com",
		Password: "whatever-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "gone@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		IsActive:     false,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_Register_AlwaysClientRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "new@test.com",
		Password: "securepassword",
		FullName: "New Client",
		Company:  "Acme",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "securepassword", user.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateEmail)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "existing@test.com",
		Password: "securepassword",
		FullName: "Dup",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		Role:         domain.RoleClient,
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)

	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleClient, claims.Role)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	// a refresh token must not pass as an access token
	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig())

	_, err := svc.ValidateToken("not-a-token")

	assert.Error(t, err)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		Role:         domain.RoleClient,
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	deactivated := *user
	deactivated.IsActive = false
	repo.On("GetByID", mock.Anything, user.ID).Return(&deactivated, nil)

	_, err = svc.RefreshToken(context.Background(), pair.RefreshToken)

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "client@test.com",
		PasswordHash: hashPassword(t, "correct-password"),
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
