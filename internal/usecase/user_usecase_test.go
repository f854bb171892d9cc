package usecase

import (
	"context"
	"testing"

	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreateHashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Password != "secret123" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(nil)

	uc := NewUserUsecase(nil, logrus.New(), userRepo, noopAudit{})

	result, err := uc.Create(context.Background(), uuid.New(), &dto.CreateUserRequest{
		Username: "nurse1",
		Password: "secret123",
		Email:    "nurse1@clinic.test",
		FullName: "Nurse One",
		Role:     "nurse",
	})
	assert.NoError(t, err)
	assert.Equal(t, "nurse", result.Role)
	assert.True(t, result.IsActive)
	userRepo.AssertExpectations(t)
}

func TestUserCreateInvalidRole(t *testing.T) {
	uc := NewUserUsecase(nil, logrus.New(), new(MockUserRepository), noopAudit{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateUserRequest{
		Username: "x",
		Password: "secret123",
		Email:    "x@clinic.test",
		FullName: "X",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserDeactivateSelf(t *testing.T) {
	actorID := uuid.New()

	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(nil, logrus.New(), userRepo, noopAudit{})

	err := uc.Deactivate(context.Background(), actorID, actorID)
	assert.ErrorIs(t, err, ErrCannotDeactivate)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserResetPassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Password: "old-hash", IsActive: true}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("fresh-password")) == nil
	})).Return(nil)

	uc := NewUserUsecase(nil, logrus.New(), userRepo, noopAudit{})

	err := uc.ResetPassword(context.Background(), uuid.New(), user.ID, &dto.ResetPasswordRequest{
		NewPassword: "fresh-password",
	})
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserGetByIDIncludesInactive(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "former", IsActive: false}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	uc := NewUserUsecase(nil, logrus.New(), userRepo, noopAudit{})

	result, err := uc.GetByID(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.False(t, result.IsActive)
}
