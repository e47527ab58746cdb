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
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/handlers"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CouponService ---
type MockCouponService struct {
	mock.Mock
}

func (m *MockCouponService) CreateCoupon(ctx context.Context, req dto.CreateCouponRequest) (*domain.Coupon, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}
func (m *MockCouponService) ListCoupons(ctx context.Context, limit int, offset int) ([]domain.Coupon, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coupon), args.Error(1)
}
func (m *MockCouponService) ListCouponsByOwnerEmail(ctx context.Context, email string) ([]domain.Coupon, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coupon), args.Error(1)
}
func (m *MockCouponService) GetCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error) {
	args := m.Called(ctx, couponID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}
func (m *MockCouponService) UpdateCoupon(ctx context.Context, couponID string, req dto.UpdateCouponRequest) (*domain.Coupon, error) {
	args := m.Called(ctx, couponID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}
func (m *MockCouponService) DeleteCoupon(ctx context.Context, couponID string) error {
	args := m.Called(ctx, couponID)
	return args.Error(0)
}

var _ portssvc.CouponSvcFacade = (*MockCouponService)(nil)

// --- Test Suite ---
type CouponHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	jwtSecret         string
	mockCouponService *MockCouponService
}

func (suite *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockCouponService = new(MockCouponService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		TokenCookieName:   "token",
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Coupon: suite.mockCouponService,
	})
}

// generateTestToken creates a signed JWT for the given email.
func (suite *CouponHandlerTestSuite) generateTestToken(email string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bma-test",
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// --- Guarded listing tests ---
func (suite *CouponHandlerTestSuite) TestListMyCoupons_MissingTokenIs401() {
	req := httptest.NewRequest(http.MethodGet, "/myCoupons/tenant@example.com", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCouponService.AssertNotCalled(suite.T(), "ListCouponsByOwnerEmail", mock.Anything, mock.Anything)
}

func (suite *CouponHandlerTestSuite) TestListMyCoupons_InvalidTokenIs403() {
	req := httptest.NewRequest(http.MethodGet, "/myCoupons/tenant@example.com", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockCouponService.AssertNotCalled(suite.T(), "ListCouponsByOwnerEmail", mock.Anything, mock.Anything)
}

func (suite *CouponHandlerTestSuite) TestListMyCoupons_ExpiredTokenIs403() {
	claims := jwt.RegisteredClaims{
		Subject:   "tenant@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/myCoupons/tenant@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *CouponHandlerTestSuite) TestListMyCoupons_OwnershipMismatchIs403() {
	token := suite.generateTestToken("someone-else@example.com")

	req := httptest.NewRequest(http.MethodGet, "/myCoupons/tenant@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	// The mismatch is decided before any lookup, so existence is not leaked.
	suite.mockCouponService.AssertNotCalled(suite.T(), "ListCouponsByOwnerEmail", mock.Anything, mock.Anything)
}

func (suite *CouponHandlerTestSuite) TestListMyCoupons_OwnerMatchReturnsCoupons() {
	email := "tenant@example.com"
	token := suite.generateTestToken(email)
	coupons := []domain.Coupon{{
		CouponID:           uuid.NewString(),
		CouponCode:         "SPRING20",
		DiscountPercentage: decimal.NewFromInt(20),
		OwnerEmail:         email,
	}}

	suite.mockCouponService.On("ListCouponsByOwnerEmail", mock.Anything, email).Return(coupons, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/myCoupons/"+email, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCouponsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Coupons, 1)
	suite.Equal("SPRING20", resp.Coupons[0].CouponCode)
	suite.mockCouponService.AssertExpectations(suite.T())
}

// --- Unguarded CRUD tests ---
func (suite *CouponHandlerTestSuite) TestCreateCoupon_Success() {
	created := &domain.Coupon{
		CouponID:           uuid.NewString(),
		CouponCode:         "WELCOME10",
		DiscountPercentage: decimal.NewFromInt(10),
		OwnerEmail:         "owner@example.com",
	}
	suite.mockCouponService.On("CreateCoupon", mock.Anything, mock.MatchedBy(func(req dto.CreateCouponRequest) bool {
		return req.CouponCode == "WELCOME10" && req.OwnerEmail == "owner@example.com"
	})).Return(created, nil).Once()

	body := `{"couponCode":"WELCOME10","discountPercentage":10,"owner_email":"owner@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/coupons", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockCouponService.AssertExpectations(suite.T())
}

func (suite *CouponHandlerTestSuite) TestCreateCoupon_MissingOwnerIs400() {
	body := `{"couponCode":"WELCOME10","discountPercentage":10}`
	req := httptest.NewRequest(http.MethodPost, "/coupons", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCouponService.AssertNotCalled(suite.T(), "CreateCoupon", mock.Anything, mock.Anything)
}

func (suite *CouponHandlerTestSuite) TestGetCoupon_NotFoundIs404() {
	couponID := uuid.NewString()
	suite.mockCouponService.On("GetCouponByID", mock.Anything, couponID).
		Return(nil, fmt.Errorf("coupon: %w", apperrors.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodGet, "/coupon/"+couponID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCouponService.AssertExpectations(suite.T())
}

func (suite *CouponHandlerTestSuite) TestDeleteCoupon_MalformedIDIs400() {
	suite.mockCouponService.On("DeleteCoupon", mock.Anything, "not-a-uuid").
		Return(fmt.Errorf("coupon id: %w", apperrors.ErrInvalidID)).Once()

	req := httptest.NewRequest(http.MethodDelete, "/coupon/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCouponService.AssertExpectations(suite.T())
}

func TestCouponHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}
