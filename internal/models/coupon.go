package models

import "github.com/shopspring/decimal"

// Coupon is the database row for a discount coupon.
type Coupon struct {
	CouponID           string          `db:"coupon_id"`
	CouponCode         string          `db:"coupon_code"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage"`
	CouponDescription  string          `db:"coupon_description"`
	OwnerEmail         string          `db:"owner_email"`
	AuditFields
}
