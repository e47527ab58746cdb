package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// CouponSvcFacade defines the coupon service contract.
type CouponSvcFacade interface {
	CreateCoupon(ctx context.Context, req dto.CreateCouponRequest) (*domain.Coupon, error)
	ListCoupons(ctx context.Context, limit int, offset int) ([]domain.Coupon, error)
	ListCouponsByOwnerEmail(ctx context.Context, email string) ([]domain.Coupon, error)
	GetCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, couponID string, req dto.UpdateCouponRequest) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}
