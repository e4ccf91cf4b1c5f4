package user

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodbridge/domain"
	"foodbridge/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateTokenUser(userID string, role string) string {
	args := m.Called(userID, role)
	return args.String(0)
}

func (m *mockJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *mockJWTService) GetUserIDByToken(token string) (string, string, error) {
	args := m.Called(token)
	return args.String(0), args.String(1), args.Error(2)
}

func TestRegister_HashesPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	jwtService := new(mockJWTService)
	service := NewUserService(userRepo, jwtService)

	userRepo.On("CheckEmailExists", mock.Anything, "owner@cairokitchen.example").Return(false, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Password != "plaintext-password" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("plaintext-password")) == nil
	})).Return(nil)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Cairo Kitchen",
		Email:    "owner@cairokitchen.example",
		Password: "plaintext-password",
		Role:     domain.RoleRestaurant,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleRestaurant, res.Role)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	jwtService := new(mockJWTService)
	service := NewUserService(userRepo, jwtService)

	userRepo.On("CheckEmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Second Kitchen",
		Email:    "taken@example.com",
		Password: "plaintext-password",
		Role:     domain.RoleCharity,
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	jwtService := new(mockJWTService)
	service := NewUserService(userRepo, jwtService)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &entities.User{
		ID:       uuid.New(),
		Email:    "owner@cairokitchen.example",
		Password: string(hashed),
		Role:     domain.RoleRestaurant,
	}

	userRepo.On("GetUserByEmail", mock.Anything, stored.Email).Return(stored, nil)
	jwtService.On("GenerateTokenUser", stored.ID.String(), domain.RoleRestaurant).Return("signed-token")

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    stored.Email,
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, stored.ID.String(), res.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	jwtService := new(mockJWTService)
	service := NewUserService(userRepo, jwtService)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo.On("GetUserByEmail", mock.Anything, "owner@cairokitchen.example").Return(&entities.User{
		ID:       uuid.New(),
		Email:    "owner@cairokitchen.example",
		Password: string(hashed),
	}, nil)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "owner@cairokitchen.example",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	userRepo := new(mockUserRepository)
	jwtService := new(mockJWTService)
	service := NewUserService(userRepo, jwtService)

	userRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
