package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login. The same error
// covers unknown emails and wrong passwords so accounts cannot be
// enumerated through the login endpoint.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when creating a user with an email already in use.
var ErrEmailTaken = errors.New("email already in use")

// ErrMissingFields is returned when a user is missing required fields.
var ErrMissingFields = errors.New("name, email and password are required")

// ErrInvalidRole is returned for a role outside ADMIN/PARTNER.
var ErrInvalidRole = errors.New("invalid user role")

// Service provides account management and credential checks on a Storage
// backend. Passwords are verified server-side against bcrypt hashes; the
// credential list never leaves the service.
type Service struct {
	storage  Storage
	logger   *zap.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth Service.
func NewService(storage Storage, logger *zap.Logger, secret []byte, tokenTTL time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:  storage,
		logger:   logger,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login checks credentials and returns a signed token plus the account.
func (s *Service) Login(email, password string) (string, *User, error) {
	u, err := s.findByEmail(email)
	if err != nil {
		s.logger.Warn("login failed", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(u)
	if err != nil {
		s.logger.Error("failed to issue token", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("login succeeded", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return token, u, nil
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *Service) CreateUser(name, email, password string, role Role, partnerID string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if role != RoleAdmin && role != RolePartner {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if _, err := s.findByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		PartnerID:    partnerID,
		CreatedAt:    time.Now(),
	}

	if err := s.storage.Set(u); err != nil {
		s.logger.Error("failed to save user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user created", zap.String("user_id", u.ID), zap.String("role", string(role)))
	return u, nil
}

// UpdateUser replaces an account's profile. An empty password keeps the
// existing hash.
func (s *Service) UpdateUser(id, name, email, password string, role Role, partnerID string) (*User, error) {
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}
	if role != RoleAdmin && role != RolePartner {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	u, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}
	if other, err := s.findByEmail(email); err == nil && other.ID != id {
		return nil, ErrEmailTaken
	}

	u.Name = name
	u.Email = email
	u.Role = role
	u.PartnerID = partnerID
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.storage.Set(u); err != nil {
		s.logger.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes one account.
func (s *Service) DeleteUser(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

// ListUsers returns all accounts, newest first. Hashes are excluded from
// JSON serialization at the type level.
func (s *Service) ListUsers() ([]*User, error) {
	return s.storage.GetAll()
}

// Bootstrap seeds the admin account from configuration when no users
// exist yet. This replaces the original system's hardcoded master
// credential: the bootstrap password arrives via config and is hashed
// like any other.
func (s *Service) Bootstrap(name, email, password string) error {
	if password == "" {
		return nil
	}
	users, err := s.storage.GetAll()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	if _, err := s.CreateUser(name, email, password, RoleAdmin, ""); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	s.logger.Info("bootstrap admin seeded", zap.String("email", email))
	return nil
}

func (s *Service) findByEmail(email string) (*User, error) {
	users, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, ErrNotFound
}
