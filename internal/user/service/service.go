// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/auth"
	"github.com/festy23/travel_together/internal/user/model"
	"github.com/festy23/travel_together/internal/user/repository"
	"github.com/festy23/travel_together/internal/validation"
)

// MsgPasswordsDoNotMatch is reported when the confirmation differs from the password.
const MsgPasswordsDoNotMatch = "Passwords do not match"

// MsgMissingCredentials is reported when the login form is incomplete.
const MsgMissingCredentials = "Please enter both username and password"

// Service defines the interface for user business logic operations.
type Service interface {
	// Register validates the registration form and creates the account.
	// Violations are returned as *validation.Error.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login checks credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error)

	// ValidateUsername reports format violations and availability of a username.
	ValidateUsername(ctx context.Context, username string) (*model.ValidationResponse, error)

	// ValidateEmail reports format violations and availability of an email.
	ValidateEmail(ctx context.Context, email string) (*model.ValidationResponse, error)
}

type service struct {
	repo         repository.Repository
	availability *validation.Availability
	hasher       *auth.PasswordHasher
	tokens       *auth.TokenManager
	logger       *zap.SugaredLogger
}

// New creates a new user service instance.
func New(
	repo repository.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:         repo,
		availability: validation.NewAvailability(repo),
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register validates the registration form and creates the account.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	s.logger.Debugw("Register called", "username", username)

	usernameErrs, err := s.availability.Username(ctx, username)
	if err != nil {
		s.logger.Errorw("Register failed", "username", username, "error", err)
		return nil, err
	}
	emailErrs, err := s.availability.Email(ctx, req.Email)
	if err != nil {
		s.logger.Errorw("Register failed", "username", username, "error", err)
		return nil, err
	}

	var violations []string
	violations = append(violations, validation.Prefix("Username", usernameErrs)...)
	violations = append(violations, validation.Prefix("Email", emailErrs)...)
	violations = append(violations, validation.Name(firstName, "First name")...)
	violations = append(violations, validation.Name(lastName, "Last name")...)
	violations = append(violations, validation.Prefix("Password", validation.Password(req.Password))...)
	if req.Password != req.ConfirmPassword {
		violations = append(violations, MsgPasswordsDoNotMatch)
	}
	if len(violations) > 0 {
		s.logger.Debugw("Register validation failed", "username", username, "violations", len(violations))
		return nil, validation.NewError(violations)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Errorw("Register failed", "username", username, "error", err)
		return nil, err
	}

	user := &model.User{
		Username:        username,
		Email:           validation.NormalizeEmail(req.Email),
		PasswordHash:    hash,
		FirstName:       titleCase(firstName),
		LastName:        titleCase(lastName),
		Bio:             optional(req.Bio),
		TravelInterests: optional(req.TravelInterests),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUserExists) {
			s.logger.Debugw("Register lost uniqueness race", "username", username)
		} else {
			s.logger.Errorw("Register failed", "username", username, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("Register completed", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login checks credentials and issues a session token.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error) {
	username := strings.TrimSpace(req.Username)
	s.logger.Debugw("Login called", "username", username)

	if username == "" || req.Password == "" {
		return nil, validation.NewError([]string{MsgMissingCredentials})
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Debugw("Login unknown username", "username", username)
			return nil, model.ErrInvalidCredentials
		}
		s.logger.Errorw("Login failed", "username", username, "error", err)
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Debugw("Login wrong password", "user_id", user.ID)
			return nil, model.ErrInvalidCredentials
		}
		s.logger.Errorw("Login failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		s.logger.Errorw("Login failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Infow("Login completed", "user_id", user.ID)
	return &model.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateUsername reports format violations and availability of a username.
func (s *service) ValidateUsername(ctx context.Context, username string) (*model.ValidationResponse, error) {
	s.logger.Debugw("ValidateUsername called", "username", username)

	errs, err := s.availability.Username(ctx, strings.TrimSpace(username))
	if err != nil {
		s.logger.Errorw("ValidateUsername failed", "username", username, "error", err)
		return nil, err
	}
	return model.NewValidationResponse(errs), nil
}

// ValidateEmail reports format violations and availability of an email.
func (s *service) ValidateEmail(ctx context.Context, email string) (*model.ValidationResponse, error) {
	s.logger.Debugw("ValidateEmail called", "email", email)

	errs, err := s.availability.Email(ctx, email)
	if err != nil {
		s.logger.Errorw("ValidateEmail failed", "email", email, "error", err)
		return nil, err
	}
	return model.NewValidationResponse(errs), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
