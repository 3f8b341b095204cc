package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
	TTL() time.Duration
}

// Service contains all business logic for authentication
type Service struct {
	users  UserRepository
	tokens TokenRevoker
	jwt    jwtService
}

func NewService(users UserRepository, tokens TokenRevoker, jwt jwtService) *Service {
	return &Service{users: users, tokens: tokens, jwt: jwt}
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Register creates a customer account. Self-registration never grants any
// other role.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	taken, err := s.users.UsernameOrEmailTaken(ctx, req.Username, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         domain.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Logout denylists the presented token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, jti string, userID int64) error {
	if jti == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, jti, userID, time.Now().Add(s.jwt.TTL()))
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
