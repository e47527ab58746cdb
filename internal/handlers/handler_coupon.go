package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
)

// couponHandler handles HTTP requests for discount coupons.
type couponHandler struct {
	couponService portssvc.CouponSvcFacade
}

func newCouponHandler(cs portssvc.CouponSvcFacade) *couponHandler {
	return &couponHandler{couponService: cs}
}

// registerCouponRoutes registers coupon routes. The per-owner listing sits
// behind the access guard with an ownership check.
func registerCouponRoutes(r *gin.Engine, couponService portssvc.CouponSvcFacade, authGuard gin.HandlerFunc) {
	h := newCouponHandler(couponService)

	r.POST("/coupons", h.createCoupon)
	r.GET("/coupons", h.listCoupons)
	r.GET("/coupon/:id", h.getCouponByID)
	r.PUT("/updateCoupon/:id", h.updateCoupon)
	r.DELETE("/coupon/:id", h.deleteCoupon)
	r.GET("/myCoupons/:email", authGuard, h.listMyCoupons)
}

// createCoupon godoc
// @Summary Create a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param coupon body dto.CreateCouponRequest true "Coupon details"
// @Success 201 {object} dto.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coupons [post]
func (h *couponHandler) createCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCoupon", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create coupon")
		return
	}

	logger.Info("Coupon created", slog.String("coupon_id", coupon.CouponID))
	c.JSON(http.StatusCreated, dto.ToCouponResponse(coupon))
}

// listCoupons godoc
// @Summary List coupons
// @Tags coupons
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListCouponsResponse
// @Failure 500 {object} ErrorResponse
// @Router /coupons [get]
func (h *couponHandler) listCoupons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	coupons, err := h.couponService.ListCoupons(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list coupons")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCouponsResponse(coupons))
}

// getCouponByID godoc
// @Summary Get a coupon by ID
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} dto.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coupon/{id} [get]
func (h *couponHandler) getCouponByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	couponID := c.Param("id")

	coupon, err := h.couponService.GetCouponByID(c.Request.Context(), couponID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get coupon")
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// updateCoupon godoc
// @Summary Update a coupon
// @Description Replaces the code, percentage and description. The owner never changes.
// @Tags coupons
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param coupon body dto.UpdateCouponRequest true "New coupon fields"
// @Success 200 {object} dto.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /updateCoupon/{id} [put]
func (h *couponHandler) updateCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	couponID := c.Param("id")

	var req dto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCoupon", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	coupon, err := h.couponService.UpdateCoupon(c.Request.Context(), couponID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update coupon")
		return
	}

	logger.Info("Coupon updated", slog.String("coupon_id", couponID))
	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// deleteCoupon godoc
// @Summary Delete a coupon
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coupon/{id} [delete]
func (h *couponHandler) deleteCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	couponID := c.Param("id")

	if err := h.couponService.DeleteCoupon(c.Request.Context(), couponID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete coupon")
		return
	}

	logger.Info("Coupon deleted", slog.String("coupon_id", couponID))
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "coupon deleted"})
}

// listMyCoupons godoc
// @Summary List the caller's coupons
// @Description Returns coupons owned by the path email. The authenticated identity must match the path email.
// @Tags coupons
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {object} dto.ListCouponsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /myCoupons/{email} [get]
func (h *couponHandler) listMyCoupons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Param("email")

	authedEmail, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		logger.Error("Authenticated email missing from context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	// Ownership check runs before any lookup, so a mismatch is always 403
	// regardless of whether the target email exists.
	if authedEmail != email {
		logger.Warn("Ownership mismatch on coupon listing", slog.String("requested_email", email))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden: access denied"})
		return
	}

	coupons, err := h.couponService.ListCouponsByOwnerEmail(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list coupons")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCouponsResponse(coupons))
}
