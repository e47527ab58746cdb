package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
)

// paymentHandler handles HTTP requests for the payment ledger.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(r *gin.Engine, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	r.POST("/paymentHistory", h.recordPayment)
	r.GET("/paymentHistory", h.listPayments)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends a payment fact to the ledger with a server-stamped date.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /paymentHistory [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("user_email", payment.UserEmail),
		slog.String("month", payment.Month))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payment records
// @Tags payments
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Router /paymentHistory [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	payments, err := h.paymentService.ListPayments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
