package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// UserService orchestrates user CRUD against the store.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the fields for account creation.
type CreateUserInput struct {
	ID       string
	Password string
	Nickname *string
	Role     string
}

// UpdateUserInput is the partial-update payload for a user. Password doubles
// as the credential: it must equal the stored password for the update to be
// authorized. Nil pointer fields are left untouched.
type UpdateUserInput struct {
	Password string
	Nickname *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser validates the payload, applies the password policy, and inserts
// the row. A policy violation surfaces as CREATION_FAILED, not as a plain
// validation error.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.ID == "" || in.Password == "" {
		return nil, models.NewValidationError("id and password are required")
	}
	if in.Nickname != nil {
		if err := validation.ValidateNickname(*in.Nickname); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewCreationFailedError("user", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleMember && role != models.RoleAdmin {
		return nil, models.NewValidationError("role must be member or admin")
	}

	user := &models.User{
		ID:       in.ID,
		Password: in.Password,
		Nickname: in.Nickname,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.NewCreationFailedError("user", err)
	}
	return user, nil
}

// ListUsers returns a page of users in insertion order.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// GetUser returns a single user by identifier.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeLookupError(err, "User", id)
	}
	return user, nil
}

// UpdateUser applies a partial update after the password check. Only fields
// present in the input change; the password field is both the credential and
// an applied value, which makes it a no-op by construction.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeLookupError(err, "User", id)
	}
	if err := authorizeUser(user, in.Password); err != nil {
		return nil, err
	}

	user.Password = in.Password
	if in.Nickname != nil {
		if err := validation.ValidateNickname(*in.Nickname); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Nickname = in.Nickname
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// DeleteUser removes the account after the password check. The user's posts
// and comments are left behind with dangling author references; deletion
// does not cascade.
func (s *UserService) DeleteUser(ctx context.Context, id, password string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return storeLookupError(err, "User", id)
	}
	if err := authorizeUser(user, password); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
