package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/core/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
	"github.com/sdbuildbox/building_management_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserSvc ---
type MockUserSvc struct {
	mock.Mock
}

func (m *MockUserSvc) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) EnsureUser(ctx context.Context, email string, name string) (*domain.User, bool, error) {
	args := m.Called(ctx, email, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Bool(1), args.Error(2)
}

func (m *MockUserSvc) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserSvc) UpdateUserRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserSvc) PromoteToMember(ctx context.Context, req dto.PromoteUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserSvc) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	cfg         *config.Config
	mockUserSvc *MockUserSvc
	service     portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "bma-test",
	}
	suite.mockUserSvc = new(MockUserSvc)
	suite.service = services.NewTokenService(suite.cfg, suite.mockUserSvc)
}

func (suite *TokenServiceTestSuite) TestIssueToken_EnsuresUserAndSigns() {
	ctx := context.Background()
	email := "tenant@example.com"
	user := &domain.User{UserID: uuid.NewString(), Email: email, Role: domain.RoleUser}

	suite.mockUserSvc.On("EnsureUser", ctx, email, "Test Tenant").Return(user, true, nil).Once()

	token, err := suite.service.IssueToken(ctx, dto.TokenRequest{Email: email, Name: "Test Tenant"})

	suite.Require().NoError(err)
	suite.Require().NotEmpty(token)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(email, claims.Subject)
	suite.Equal("bma-test", claims.Issuer)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestIssueToken_ExistingUserNotRecreated() {
	ctx := context.Background()
	email := "existing@example.com"
	user := &domain.User{UserID: uuid.NewString(), Email: email, Role: domain.RoleMember}

	suite.mockUserSvc.On("EnsureUser", ctx, email, "").Return(user, false, nil).Once()

	token, err := suite.service.IssueToken(ctx, dto.TokenRequest{Email: email})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestIssueToken_EnsureFailureBlocksIssuance() {
	ctx := context.Background()
	email := "broken@example.com"
	expectedErr := assert.AnError

	suite.mockUserSvc.On("EnsureUser", ctx, email, "").Return(nil, false, expectedErr).Once()

	token, err := suite.service.IssueToken(ctx, dto.TokenRequest{Email: email})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Contains(err.Error(), expectedErr.Error())
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
