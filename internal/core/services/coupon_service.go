package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

type couponService struct {
	couponRepo portsrepo.CouponRepositoryFacade
}

// NewCouponService creates the coupon service.
func NewCouponService(couponRepo portsrepo.CouponRepositoryFacade) portssvc.CouponSvcFacade {
	return &couponService{couponRepo: couponRepo}
}

var _ portssvc.CouponSvcFacade = (*couponService)(nil)

func (s *couponService) CreateCoupon(ctx context.Context, req dto.CreateCouponRequest) (*domain.Coupon, error) {
	now := time.Now()
	coupon := domain.Coupon{
		CouponID:           uuid.NewString(),
		CouponCode:         req.CouponCode,
		DiscountPercentage: req.DiscountPercentage,
		CouponDescription:  req.CouponDescription,
		OwnerEmail:         req.OwnerEmail,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.couponRepo.SaveCoupon(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return &coupon, nil
}

func (s *couponService) ListCoupons(ctx context.Context, limit int, offset int) ([]domain.Coupon, error) {
	coupons, err := s.couponRepo.FindCoupons(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

func (s *couponService) ListCouponsByOwnerEmail(ctx context.Context, email string) ([]domain.Coupon, error) {
	coupons, err := s.couponRepo.FindCouponsByOwnerEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons for owner: %w", err)
	}
	return coupons, nil
}

func (s *couponService) GetCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.FindCouponByID(ctx, couponID)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return coupon, nil
}

// UpdateCoupon replaces the mutable fields of an existing coupon. The owner
// is fixed at creation and never changes on update.
func (s *couponService) UpdateCoupon(ctx context.Context, couponID string, req dto.UpdateCouponRequest) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.FindCouponByID(ctx, couponID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupon for update: %w", err)
	}

	coupon.CouponCode = req.CouponCode
	coupon.DiscountPercentage = req.DiscountPercentage
	coupon.CouponDescription = req.CouponDescription
	coupon.UpdatedAt = time.Now()

	if err := s.couponRepo.UpdateCoupon(ctx, *coupon); err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}
	return coupon, nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, couponID string) error {
	if err := s.couponRepo.DeleteCoupon(ctx, couponID); err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	return nil
}
