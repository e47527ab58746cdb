package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
)

// agreementHandler handles HTTP requests for rental agreements and the
// membership workflow.
type agreementHandler struct {
	agreementService portssvc.AgreementSvcFacade
}

func newAgreementHandler(as portssvc.AgreementSvcFacade) *agreementHandler {
	return &agreementHandler{agreementService: as}
}

// registerAgreementRoutes registers agreement routes. The per-user listing
// sits behind the access guard with an ownership check.
func registerAgreementRoutes(r *gin.Engine, agreementService portssvc.AgreementSvcFacade, authGuard gin.HandlerFunc) {
	h := newAgreementHandler(agreementService)

	r.POST("/agreements", h.createAgreement)
	r.GET("/agreements", h.listAgreements)
	r.GET("/agreements/:id", h.getAgreementByID)
	r.PUT("/updateAgreement/:id", h.updateAgreementStatus)
	r.GET("/myAgreements/:email", authGuard, h.listMyAgreements)
}

// createAgreement godoc
// @Summary Request an apartment
// @Description Creates a pending agreement snapshotting the apartment's current listing fields.
// @Tags agreements
// @Accept json
// @Produce json
// @Param agreement body dto.CreateAgreementRequest true "Agreement request"
// @Success 201 {object} dto.AgreementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Apartment already has an active agreement"
// @Failure 500 {object} ErrorResponse
// @Router /agreements [post]
func (h *agreementHandler) createAgreement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAgreement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	agreement, err := h.agreementService.CreateAgreement(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create agreement")
		return
	}

	logger.Info("Agreement created",
		slog.String("agreement_id", agreement.AgreementID),
		slog.String("apartment_id", agreement.ApartmentID))
	c.JSON(http.StatusCreated, dto.ToAgreementResponse(agreement))
}

// listAgreements godoc
// @Summary List agreements
// @Tags agreements
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAgreementsResponse
// @Failure 500 {object} ErrorResponse
// @Router /agreements [get]
func (h *agreementHandler) listAgreements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	agreements, err := h.agreementService.ListAgreements(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list agreements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAgreementsResponse(agreements))
}

// getAgreementByID godoc
// @Summary Get an agreement by ID
// @Tags agreements
// @Produce json
// @Param id path string true "Agreement ID"
// @Success 200 {object} dto.AgreementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /agreements/{id} [get]
func (h *agreementHandler) getAgreementByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agreementID := c.Param("id")

	agreement, err := h.agreementService.GetAgreementByID(c.Request.Context(), agreementID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get agreement")
		return
	}

	c.JSON(http.StatusOK, dto.ToAgreementResponse(agreement))
}

// updateAgreementStatus godoc
// @Summary Update an agreement's status
// @Description Drives the pending to accepted/rejected workflow. Accepting also books the apartment and promotes the owner to member, atomically.
// @Tags agreements
// @Accept json
// @Produce json
// @Param id path string true "Agreement ID"
// @Param update body dto.UpdateAgreementRequest true "New status and bill status"
// @Success 200 {object} dto.AgreementResponse
// @Failure 400 {object} ErrorResponse "Invalid transition or malformed input"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /updateAgreement/{id} [put]
func (h *agreementHandler) updateAgreementStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agreementID := c.Param("id")

	var req dto.UpdateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAgreementStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	agreement, err := h.agreementService.UpdateAgreementStatus(c.Request.Context(), agreementID,
		domain.AgreementStatus(req.Status), domain.BillStatus(req.BillStatus))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update agreement")
		return
	}

	logger.Info("Agreement status updated",
		slog.String("agreement_id", agreementID),
		slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToAgreementResponse(agreement))
}

// listMyAgreements godoc
// @Summary List the caller's agreements
// @Description Returns agreements owned by the path email. The authenticated identity must match the path email.
// @Tags agreements
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {object} dto.ListAgreementsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /myAgreements/{email} [get]
func (h *agreementHandler) listMyAgreements(c *gin.Context) {
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
		logger.Warn("Ownership mismatch on agreement listing", slog.String("requested_email", email))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden: access denied"})
		return
	}

	agreements, err := h.agreementService.ListAgreementsByUserEmail(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list agreements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAgreementsResponse(agreements))
}
