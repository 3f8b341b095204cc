package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, username, email, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	args := m.Called(ctx, jti, userID, expiresAt)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) { return "token", nil }
func (stubJWT) TTL() time.Duration                                      { return time.Hour }

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenRevoker)
	service := NewService(users, tokens, stubJWT{})

	users.On("UsernameOrEmailTaken", mock.Anything, "aigerim", "aigerim@mail.kz", int64(0)).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := RegisterRequest{
		Username:             "aigerim",
		Email:                "Aigerim@Mail.kz",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		FullName:             "Aigerim S.",
	}

	result, err := service.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Equal(t, domain.RoleCustomer, result.User.Role)
	assert.Equal(t, "aigerim@mail.kz", result.User.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret123")))
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockTokenRevoker), stubJWT{})

	users.On("UsernameOrEmailTaken", mock.Anything, "aigerim", "aigerim@mail.kz", int64(0)).Return(true, nil)

	req := RegisterRequest{
		Username:             "aigerim",
		Email:                "aigerim@mail.kz",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	_, err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockTokenRevoker), stubJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "aigerim@mail.kz").Return(&domain.User{
		ID:           42,
		Email:        "aigerim@mail.kz",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}, nil)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "aigerim@mail.kz",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Equal(t, int64(42), result.User.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockTokenRevoker), stubJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "aigerim@mail.kz").Return(&domain.User{
		Email:        "aigerim@mail.kz",
		PasswordHash: string(hash),
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "aigerim@mail.kz",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockTokenRevoker), stubJWT{})

	users.On("GetByEmail", mock.Anything, "nobody@mail.kz").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@mail.kz",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Logout_RevokesToken(t *testing.T) {
	tokens := new(MockTokenRevoker)
	service := NewService(new(MockUserRepository), tokens, stubJWT{})

	tokens.On("Revoke", mock.Anything, "jti-1", int64(42), mock.Anything).Return(nil)

	err := service.Logout(context.Background(), "jti-1", 42)
	assert.NoError(t, err)
	tokens.AssertExpectations(t)
}

func TestService_Logout_NoJTIIsNoop(t *testing.T) {
	tokens := new(MockTokenRevoker)
	service := NewService(new(MockUserRepository), tokens, stubJWT{})

	err := service.Logout(context.Background(), "", 42)
	assert.NoError(t, err)
	tokens.AssertNotCalled(t, "Revoke")
}
