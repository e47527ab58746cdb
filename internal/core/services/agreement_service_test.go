package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/core/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AgreementRepository ---
type MockAgreementRepository struct {
	mock.Mock
}

func (m *MockAgreementRepository) FindAgreementByID(ctx context.Context, agreementID string) (*domain.Agreement, error) {
	args := m.Called(ctx, agreementID)
	var agreement *domain.Agreement
	if args.Get(0) != nil {
		agreement = args.Get(0).(*domain.Agreement)
	}
	return agreement, args.Error(1)
}

func (m *MockAgreementRepository) FindAgreements(ctx context.Context, limit, offset int) ([]domain.Agreement, error) {
	args := m.Called(ctx, limit, offset)
	var agreements []domain.Agreement
	if args.Get(0) != nil {
		agreements = args.Get(0).([]domain.Agreement)
	}
	return agreements, args.Error(1)
}

func (m *MockAgreementRepository) FindAgreementsByUserEmail(ctx context.Context, email string) ([]domain.Agreement, error) {
	args := m.Called(ctx, email)
	var agreements []domain.Agreement
	if args.Get(0) != nil {
		agreements = args.Get(0).([]domain.Agreement)
	}
	return agreements, args.Error(1)
}

func (m *MockAgreementRepository) SaveAgreement(ctx context.Context, agreement domain.Agreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockAgreementRepository) UpdateAgreementStatus(ctx context.Context, agreementID string, status domain.AgreementStatus, billStatus domain.BillStatus, updatedAt time.Time) error {
	args := m.Called(ctx, agreementID, status, billStatus, updatedAt)
	return args.Error(0)
}

func (m *MockAgreementRepository) AcceptAgreement(ctx context.Context, agreement domain.Agreement, billStatus domain.BillStatus, acceptedAt time.Time) error {
	args := m.Called(ctx, agreement, billStatus, acceptedAt)
	return args.Error(0)
}

// --- Mock ApartmentRepository ---
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	args := m.Called(ctx, apartmentID)
	var apartment *domain.Apartment
	if args.Get(0) != nil {
		apartment = args.Get(0).(*domain.Apartment)
	}
	return apartment, args.Error(1)
}

func (m *MockApartmentRepository) FindApartments(ctx context.Context, limit, offset int) ([]domain.Apartment, error) {
	args := m.Called(ctx, limit, offset)
	var apartments []domain.Apartment
	if args.Get(0) != nil {
		apartments = args.Get(0).([]domain.Apartment)
	}
	return apartments, args.Error(1)
}

func (m *MockApartmentRepository) SaveApartment(ctx context.Context, apartment domain.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) UpdateBookingStatus(ctx context.Context, apartmentID string, status domain.BookingStatus, updatedAt time.Time) error {
	args := m.Called(ctx, apartmentID, status, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type AgreementServiceTestSuite struct {
	suite.Suite
	mockAgreementRepo *MockAgreementRepository
	mockApartmentRepo *MockApartmentRepository
	service           portssvc.AgreementSvcFacade
}

func (suite *AgreementServiceTestSuite) SetupTest() {
	suite.mockAgreementRepo = new(MockAgreementRepository)
	suite.mockApartmentRepo = new(MockApartmentRepository)
	suite.service = services.NewAgreementService(suite.mockAgreementRepo, suite.mockApartmentRepo)
}

func (suite *AgreementServiceTestSuite) pendingAgreement() *domain.Agreement {
	return &domain.Agreement{
		AgreementID: uuid.NewString(),
		UserEmail:   "tenant@example.com",
		ApartmentID: uuid.NewString(),
		BlockName:   "A",
		FloorNo:     3,
		ApartmentNo: "A3-07",
		Rent:        decimal.NewFromInt(12500),
		Status:      domain.AgreementPending,
		BillStatus:  domain.BillDue,
		RequestDate: time.Now().Add(-24 * time.Hour),
	}
}

// --- CreateAgreement Tests ---
func (suite *AgreementServiceTestSuite) TestCreateAgreement_SnapshotsApartmentFields() {
	ctx := context.Background()
	apartment := &domain.Apartment{
		ApartmentID:   uuid.NewString(),
		ApartmentNo:   "B1-04",
		BlockName:     "B",
		FloorNo:       1,
		Rent:          decimal.NewFromInt(9800),
		BookingStatus: domain.BookingAvailable,
	}

	suite.mockApartmentRepo.On("FindApartmentByID", ctx, apartment.ApartmentID).Return(apartment, nil).Once()
	suite.mockAgreementRepo.On("SaveAgreement", ctx, mock.MatchedBy(func(a domain.Agreement) bool {
		return a.ApartmentID == apartment.ApartmentID &&
			a.BlockName == apartment.BlockName &&
			a.ApartmentNo == apartment.ApartmentNo &&
			a.Rent.Equal(apartment.Rent) &&
			a.Status == domain.AgreementPending &&
			a.BillStatus == domain.BillDue
	})).Return(nil).Once()

	agreement, err := suite.service.CreateAgreement(ctx, dto.CreateAgreementRequest{
		UserEmail:   "tenant@example.com",
		ApartmentID: apartment.ApartmentID,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(agreement)
	suite.Equal(domain.AgreementPending, agreement.Status)
	suite.NotEmpty(agreement.AgreementID)
	suite.False(agreement.RequestDate.IsZero())
	suite.mockAgreementRepo.AssertExpectations(suite.T())
	suite.mockApartmentRepo.AssertExpectations(suite.T())
}

func (suite *AgreementServiceTestSuite) TestCreateAgreement_ApartmentNotFound() {
	ctx := context.Background()
	apartmentID := uuid.NewString()

	suite.mockApartmentRepo.On("FindApartmentByID", ctx, apartmentID).Return(nil, apperrors.ErrNotFound).Once()

	agreement, err := suite.service.CreateAgreement(ctx, dto.CreateAgreementRequest{
		UserEmail:   "tenant@example.com",
		ApartmentID: apartmentID,
	})

	suite.Require().Error(err)
	suite.Nil(agreement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAgreementRepo.AssertNotCalled(suite.T(), "SaveAgreement", mock.Anything, mock.Anything)
}

func (suite *AgreementServiceTestSuite) TestCreateAgreement_ActiveConflict() {
	ctx := context.Background()
	apartment := &domain.Apartment{ApartmentID: uuid.NewString(), Rent: decimal.NewFromInt(100)}

	suite.mockApartmentRepo.On("FindApartmentByID", ctx, apartment.ApartmentID).Return(apartment, nil).Once()
	suite.mockAgreementRepo.On("SaveAgreement", ctx, mock.AnythingOfType("domain.Agreement")).Return(apperrors.ErrDuplicate).Once()

	agreement, err := suite.service.CreateAgreement(ctx, dto.CreateAgreementRequest{
		UserEmail:   "tenant@example.com",
		ApartmentID: apartment.ApartmentID,
	})

	suite.Require().Error(err)
	suite.Nil(agreement)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAgreementRepo.AssertExpectations(suite.T())
}

// --- UpdateAgreementStatus Tests ---
func (suite *AgreementServiceTestSuite) TestUpdateAgreementStatus_AcceptRunsCoupledWrites() {
	ctx := context.Background()
	pending := suite.pendingAgreement()

	suite.mockAgreementRepo.On("FindAgreementByID", ctx, pending.AgreementID).Return(pending, nil).Once()
	suite.mockAgreementRepo.On("AcceptAgreement", ctx, mock.MatchedBy(func(a domain.Agreement) bool {
		return a.AgreementID == pending.AgreementID
	}), domain.BillDue, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateAgreementStatus(ctx, pending.AgreementID, domain.AgreementAccepted, domain.BillDue)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(domain.AgreementAccepted, updated.Status)
	// The accept path must never go through the plain status patch.
	suite.mockAgreementRepo.AssertNotCalled(suite.T(), "UpdateAgreementStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAgreementRepo.AssertExpectations(suite.T())
}

func (suite *AgreementServiceTestSuite) TestUpdateAgreementStatus_RejectIsPlainWrite() {
	ctx := context.Background()
	pending := suite.pendingAgreement()

	suite.mockAgreementRepo.On("FindAgreementByID", ctx, pending.AgreementID).Return(pending, nil).Once()
	suite.mockAgreementRepo.On("UpdateAgreementStatus", ctx, pending.AgreementID,
		domain.AgreementRejected, domain.BillDue, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateAgreementStatus(ctx, pending.AgreementID, domain.AgreementRejected, domain.BillDue)

	suite.Require().NoError(err)
	suite.Equal(domain.AgreementRejected, updated.Status)
	// Rejection leaves the apartment and user untouched.
	suite.mockAgreementRepo.AssertNotCalled(suite.T(), "AcceptAgreement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockApartmentRepo.AssertNotCalled(suite.T(), "UpdateBookingStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAgreementRepo.AssertExpectations(suite.T())
}

func (suite *AgreementServiceTestSuite) TestUpdateAgreementStatus_BillOnlyChangeOnAccepted() {
	ctx := context.Background()
	accepted := suite.pendingAgreement()
	accepted.Status = domain.AgreementAccepted

	suite.mockAgreementRepo.On("FindAgreementByID", ctx, accepted.AgreementID).Return(accepted, nil).Once()
	suite.mockAgreementRepo.On("UpdateAgreementStatus", ctx, accepted.AgreementID,
		domain.AgreementAccepted, domain.BillPaid, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateAgreementStatus(ctx, accepted.AgreementID, domain.AgreementAccepted, domain.BillPaid)

	suite.Require().NoError(err)
	suite.Equal(domain.BillPaid, updated.BillStatus)
	// Staying in accepted is a bill-state patch, not a re-run of the coupled writes.
	suite.mockAgreementRepo.AssertNotCalled(suite.T(), "AcceptAgreement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAgreementRepo.AssertExpectations(suite.T())
}

func (suite *AgreementServiceTestSuite) TestUpdateAgreementStatus_TerminalStatusRejectsTransition() {
	ctx := context.Background()
	rejected := suite.pendingAgreement()
	rejected.Status = domain.AgreementRejected

	suite.mockAgreementRepo.On("FindAgreementByID", ctx, rejected.AgreementID).Return(rejected, nil).Once()

	updated, err := suite.service.UpdateAgreementStatus(ctx, rejected.AgreementID, domain.AgreementAccepted, domain.BillDue)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAgreementRepo.AssertNotCalled(suite.T(), "AcceptAgreement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAgreementRepo.AssertNotCalled(suite.T(), "UpdateAgreementStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AgreementServiceTestSuite) TestUpdateAgreementStatus_NotFound() {
	ctx := context.Background()
	agreementID := uuid.NewString()

	suite.mockAgreementRepo.On("FindAgreementByID", ctx, agreementID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateAgreementStatus(ctx, agreementID, domain.AgreementAccepted, domain.BillDue)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AgreementServiceTestSuite) TestUpdateAgreementStatus_AcceptTxFailureSurfaces() {
	ctx := context.Background()
	pending := suite.pendingAgreement()

	suite.mockAgreementRepo.On("FindAgreementByID", ctx, pending.AgreementID).Return(pending, nil).Once()
	suite.mockAgreementRepo.On("AcceptAgreement", ctx, mock.AnythingOfType("domain.Agreement"),
		domain.BillDue, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateAgreementStatus(ctx, pending.AgreementID, domain.AgreementAccepted, domain.BillDue)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAgreementRepo.AssertExpectations(suite.T())
}

// --- List Tests ---
func (suite *AgreementServiceTestSuite) TestListAgreementsByUserEmail() {
	ctx := context.Background()
	email := "tenant@example.com"
	expected := []domain.Agreement{*suite.pendingAgreement()}

	suite.mockAgreementRepo.On("FindAgreementsByUserEmail", ctx, email).Return(expected, nil).Once()

	agreements, err := suite.service.ListAgreementsByUserEmail(ctx, email)

	suite.Require().NoError(err)
	suite.Equal(expected, agreements)
	suite.mockAgreementRepo.AssertExpectations(suite.T())
}

func TestAgreementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgreementServiceTestSuite))
}
