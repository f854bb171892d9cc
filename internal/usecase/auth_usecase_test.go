package usecase

import (
	"context"
	"testing"
	"time"

	"gdm-clinic/config"
	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	uc := NewAuthUsecase(nil, logrus.New(), userRepo, newTestJWTService(), nil, noopAudit{})

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	user := &entity.User{
		ID:       uuid.New(),
		Username: "nurse1",
		Password: string(hash),
		Role:     entity.RoleNurse,
		IsActive: true,
	}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByUsername", mock.Anything, "nurse1").Return(user, nil)

	uc := NewAuthUsecase(nil, logrus.New(), userRepo, newTestJWTService(), nil, noopAudit{})

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "nurse1", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	user := &entity.User{
		ID:       uuid.New(),
		Username: "former",
		Password: string(hash),
		Role:     entity.RoleStaff,
		IsActive: false,
	}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByUsername", mock.Anything, "former").Return(user, nil)

	uc := NewAuthUsecase(nil, logrus.New(), userRepo, newTestJWTService(), nil, noopAudit{})

	// A deactivated account fails with the same error as a bad password.
	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "former", Password: "correct-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	user := &entity.User{ID: uuid.New(), Password: string(hash), IsActive: true}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	uc := NewAuthUsecase(nil, logrus.New(), userRepo, newTestJWTService(), nil, noopAudit{})

	err := uc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		OldPassword: "not-the-old-one",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, ErrInvalidPassword)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	jwtService := newTestJWTService()
	accessToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "nurse1", entity.RoleNurse)
	assert.NoError(t, err)

	uc := NewAuthUsecase(nil, logrus.New(), new(MockUserRepository), jwtService, nil, noopAudit{})

	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	uc := NewAuthUsecase(nil, logrus.New(), new(MockUserRepository), newTestJWTService(), nil, noopAudit{})

	_, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
