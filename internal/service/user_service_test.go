package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/service"
	"agencyhub/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "new@test.com",
		Password: "securepassword",
		FullName: "New Client",
		Role:     domain.RoleClient,
		Company:  "Acme",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "new@test.com",
		Password: "securepassword",
		FullName: "x",
		Role:     "superuser",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	existing := &domain.User{
		ID:       uuid.New(),
		Email:    "client@test.com",
		FullName: "Old Name",
		Company:  "Old Co",
		IsActive: true,
	}
	newName := "New Name"

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Update(context.Background(), existing.ID, service.UpdateUserInput{
		FullName: &newName,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
	assert.Equal(t, "Old Co", user.Company)
	assert.True(t, user.IsActive)
}

func TestUserService_Update_PasswordRehashed(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	existing := &domain.User{ID: uuid.New(), PasswordHash: "old-hash"}
	newPassword := "brand-new-password"

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Update(context.Background(), existing.ID, service.UpdateUserInput{
		Password: &newPassword,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "old-hash", user.PasswordHash)
	assert.NotEqual(t, newPassword, user.PasswordHash)
}

func TestUserService_Deactivate(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	existing := &domain.User{ID: uuid.New(), IsActive: true}

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return !u.IsActive
	})).Return(nil)

	err := svc.Deactivate(context.Background(), existing.ID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_Deactivate_NotFound(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	err := svc.Deactivate(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
