package dto

import (
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCouponRequest defines the payload for creating a discount coupon.
type CreateCouponRequest struct {
	CouponCode         string          `json:"couponCode" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage" binding:"required"`
	CouponDescription  string          `json:"couponDescription"`
	OwnerEmail         string          `json:"owner_email" binding:"required,email"`
}

// UpdateCouponRequest defines the coupon patch (code, percentage, description).
type UpdateCouponRequest struct {
	CouponCode         string          `json:"couponCode" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage" binding:"required"`
	CouponDescription  string          `json:"couponDescription"`
}

// CouponResponse is the coupon representation returned to clients.
type CouponResponse struct {
	CouponID           string          `json:"couponID"`
	CouponCode         string          `json:"couponCode"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	CouponDescription  string          `json:"couponDescription,omitempty"`
	OwnerEmail         string          `json:"owner_email"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ListCouponsResponse wraps the list of coupons.
type ListCouponsResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

// ToCouponResponse converts a domain.Coupon to a CouponResponse DTO.
func ToCouponResponse(c *domain.Coupon) CouponResponse {
	return CouponResponse{
		CouponID:           c.CouponID,
		CouponCode:         c.CouponCode,
		DiscountPercentage: c.DiscountPercentage,
		CouponDescription:  c.CouponDescription,
		OwnerEmail:         c.OwnerEmail,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToListCouponsResponse converts a slice of domain.Coupon to ListCouponsResponse.
func ToListCouponsResponse(coupons []domain.Coupon) ListCouponsResponse {
	responses := make([]CouponResponse, len(coupons))
	for i := range coupons {
		responses[i] = ToCouponResponse(&coupons[i])
	}
	return ListCouponsResponse{Coupons: responses}
}
