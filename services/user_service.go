package services

import (
	"esantiye/models"
	"esantiye/validator"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

// AdminRequest carries the bootstrap account read from configuration
type AdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserService manages accounts stored in the users table
type UserService struct {
	repo      UserRepository
	validator *validator.Validator
}

func NewUserService(repo UserRepository, v *validator.Validator) *UserService {
	return &UserService{repo: repo, validator: v}
}

// EnsureAdmin creates the admin account unless the username is taken.
// It reports whether a user was created.
func (s *UserService) EnsureAdmin(req AdminRequest) (bool, error) {
	if err := s.validator.Validate(&req); err != nil {
		return false, err
	}

	existing, err := s.repo.GetUserByUsername(req.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     RoleAdmin,
	}
	if err := s.repo.CreateUser(user, string(hash)); err != nil {
		return false, err
	}

	return true, nil
}
