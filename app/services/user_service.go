package services

import (
	"errors"
	"fmt"

	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

// UserService handles registration and credential checks. Password
// change and reset flows are outside this system.
type UserService struct {
	users repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// SignUp registers a new user. A taken handle fails with ErrConflict.
func (s *UserService) SignUp(handle, password string) (*models.User, error) {
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrWeakPassword, MinPasswordLength)
	}

	user := &models.User{Handle: handle}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a handle/password pair. Unknown handles and
// wrong passwords both fail with ErrInvalidCredentials.
func (s *UserService) Authenticate(handle, password string) (*models.User, error) {
	user, err := s.users.GetByHandle(handle)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
