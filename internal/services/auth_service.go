package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"health-records-service/internal/auth"
	"health-records-service/internal/domain/dtos"
	"health-records-service/internal/domain/entities"
	"health-records-service/internal/domain/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl implements AuthServiceContract: bcrypt password hashes on
// registration, HS256 bearer tokens on login.
type AuthServiceImpl struct {
	userRepo repositories.UserRepositoryContract
	tokens   *auth.TokenVerifier
	tokenTTL time.Duration
	logger   *log.Logger
}

// NewAuthService creates a new instance of AuthServiceImpl.
func NewAuthService(
	userRepo repositories.UserRepositoryContract,
	tokens *auth.TokenVerifier,
	tokenTTL time.Duration,
	logger *log.Logger,
) AuthServiceContract {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.UserDTO, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = entities.RoleDoctor
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Printf("user %s registered with role %s", user.ID, user.Role)
	return &dtos.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidLogin
	}

	token, err := s.tokens.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dtos.LoginResponse{
		Token: token,
		User: dtos.UserDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
