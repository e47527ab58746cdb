package repositories

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// CouponRepositoryFacade defines the full coupon store contract. Coupons are
// a simple record store with no cross-entity invariants, so the facade is not
// split into reader/writer halves.
type CouponRepositoryFacade interface {
	SaveCoupon(ctx context.Context, coupon domain.Coupon) error
	FindCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error)
	FindCoupons(ctx context.Context, limit int, offset int) ([]domain.Coupon, error)
	FindCouponsByOwnerEmail(ctx context.Context, email string) ([]domain.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon domain.Coupon) error
	DeleteCoupon(ctx context.Context, couponID string) error
}
