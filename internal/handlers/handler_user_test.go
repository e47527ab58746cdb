package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/handlers"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) EnsureUser(ctx context.Context, email string, name string) (*domain.User, bool, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUserRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}
func (m *MockUserService) PromoteToMember(ctx context.Context, req dto.PromoteUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		TokenCookieName:   "token",
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User: suite.mockUserService,
	})
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateIs409() {
	suite.mockUserService.On("CreateUser", mock.Anything, mock.AnythingOfType("dto.CreateUserRequest")).
		Return(nil, fmt.Errorf("user with email taken@example.com: %w", apperrors.ErrDuplicate)).Once()

	body := `{"email":"taken@example.com","name":"Taken"}`
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already exists")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser_InvalidRoleIs400() {
	// The role enum is enforced at binding, before the service is reached.
	body := `{"email":"new@example.com","role":"landlord"}`
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestEnsureUser_ExistingIs200() {
	existing := &domain.User{UserID: uuid.NewString(), Email: "existing@example.com", Role: domain.RoleUser}
	suite.mockUserService.On("EnsureUser", mock.Anything, "existing@example.com", "").
		Return(existing, false, nil).Once()

	body := `{"email":"existing@example.com"}`
	req := httptest.NewRequest(http.MethodPut, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Contains(resp.Message, "already exists")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestEnsureUser_AbsentIs201() {
	created := &domain.User{UserID: uuid.NewString(), Email: "new@example.com", Role: domain.RoleUser}
	suite.mockUserService.On("EnsureUser", mock.Anything, "new@example.com", "New Tenant").
		Return(created, true, nil).Once()

	body := `{"email":"new@example.com","name":"New Tenant"}`
	req := httptest.NewRequest(http.MethodPut, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreatedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(created.UserID, resp.InsertedID)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestLoginUser_FirstLoginIs201() {
	created := &domain.User{UserID: uuid.NewString(), Email: "first@example.com", Role: domain.RoleUser}
	suite.mockUserService.On("EnsureUser", mock.Anything, "first@example.com", "First Timer").
		Return(created, true, nil).Once()

	body := `{"email":"first@example.com","name":"First Timer"}`
	req := httptest.NewRequest(http.MethodPost, "/usersLogin", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreatedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(created.UserID, resp.InsertedID)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestLoginUser_KnownEmailIs200() {
	existing := &domain.User{UserID: uuid.NewString(), Email: "regular@example.com", Role: domain.RoleMember}
	suite.mockUserService.On("EnsureUser", mock.Anything, "regular@example.com", "").
		Return(existing, false, nil).Once()

	body := `{"email":"regular@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/usersLogin", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Contains(resp.Message, "already exists")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateUserRole_MissingRoleIs400() {
	req := httptest.NewRequest(http.MethodPut, "/updateUsers/"+uuid.NewString(), bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestPromoteToMember_UnknownUserIs404() {
	suite.mockUserService.On("PromoteToMember", mock.Anything, mock.MatchedBy(func(req dto.PromoteUserRequest) bool {
		return req.Email == "ghost@example.com" && req.Role == "member"
	})).Return(fmt.Errorf("promote: %w", apperrors.ErrNotFound)).Once()

	body := `{"email":"ghost@example.com","role":"member"}`
	req := httptest.NewRequest(http.MethodPut, "/usersToMember", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteUser_MalformedIDIs400() {
	suite.mockUserService.On("DeleteUser", mock.Anything, "not-a-uuid").
		Return(fmt.Errorf("user id: %w", apperrors.ErrInvalidID)).Once()

	req := httptest.NewRequest(http.MethodDelete, "/users/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUserByEmail_Success() {
	user := &domain.User{UserID: uuid.NewString(), Email: "tenant@example.com", Role: domain.RoleMember}
	suite.mockUserService.On("GetUserByEmail", mock.Anything, "tenant@example.com").Return(user, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/user/tenant@example.com", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tenant@example.com", resp.Email)
	suite.Equal("member", resp.Role)
	suite.mockUserService.AssertExpectations(suite.T())
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
