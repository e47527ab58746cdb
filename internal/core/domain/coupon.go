package domain

import "github.com/shopspring/decimal"

// Coupon is a discount code scoped to an owner by email. Coupons have an
// independent lifecycle with no cross-entity invariants.
type Coupon struct {
	CouponID           string          `json:"couponID"` // Primary Key (UUID)
	CouponCode         string          `json:"couponCode"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	CouponDescription  string          `json:"couponDescription"`
	OwnerEmail         string          `json:"ownerEmail"`
	AuditFields
}
