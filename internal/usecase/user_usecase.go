package usecase

import (
	"context"

	"gdm-clinic/internal/delivery/converter"
	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/internal/domain/repository"
	"gdm-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, actorID, id uuid.UUID) error
	ResetPassword(ctx context.Context, actorID, id uuid.UUID, req *dto.ResetPasswordRequest) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	audit    service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	audit service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		audit:    audit,
	}
}

func (u *userUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		IsActive: true,
	}

	if err := u.userRepo.Create(u.db, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionUserCreate, "user", user.ID.String(), map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	})

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		if !entity.IsValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		if !*req.IsActive && id == actorID {
			return nil, ErrCannotDeactivate
		}
		user.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(u.db, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionUserUpdate, "user", user.ID.String(), nil)

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	if id == actorID {
		return ErrCannotDeactivate
	}

	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.IsActive = false
	if err := u.userRepo.Update(u.db, user); err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionUserDeactivate, "user", user.ID.String(), nil)

	return nil
}

func (u *userUsecase) ResetPassword(ctx context.Context, actorID, id uuid.UUID, req *dto.ResetPasswordRequest) error {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user.Password = string(hashedPassword)
	if err := u.userRepo.Update(u.db, user); err != nil {
		u.log.Warnf("Failed to reset password: %+v", err)
		return err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionUserResetPassword, "user", user.ID.String(), nil)

	return nil
}
