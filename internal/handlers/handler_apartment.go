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

// apartmentHandler handles HTTP requests for unit listings.
type apartmentHandler struct {
	apartmentService portssvc.ApartmentSvcFacade
}

func newApartmentHandler(as portssvc.ApartmentSvcFacade) *apartmentHandler {
	return &apartmentHandler{apartmentService: as}
}

func registerApartmentRoutes(r *gin.Engine, apartmentService portssvc.ApartmentSvcFacade) {
	h := newApartmentHandler(apartmentService)

	r.POST("/apartments", h.createApartment)
	r.GET("/apartments", h.listApartments)
	r.GET("/apartments/:id", h.getApartmentByID)
	r.PUT("/updateApartment/:id", h.updateBookingStatus)
}

// createApartment godoc
// @Summary List a new apartment
// @Tags apartments
// @Accept json
// @Produce json
// @Param apartment body dto.CreateApartmentRequest true "Apartment details"
// @Success 201 {object} dto.ApartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments [post]
func (h *apartmentHandler) createApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createApartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	apartment, err := h.apartmentService.CreateApartment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create apartment")
		return
	}

	logger.Info("Apartment created", slog.String("apartment_id", apartment.ApartmentID))
	c.JSON(http.StatusCreated, dto.ToApartmentResponse(apartment))
}

// listApartments godoc
// @Summary List apartments
// @Tags apartments
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListApartmentsResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments [get]
func (h *apartmentHandler) listApartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	apartments, err := h.apartmentService.ListApartments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list apartments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListApartmentsResponse(apartments))
}

// getApartmentByID godoc
// @Summary Get an apartment by ID
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} dto.ApartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments/{id} [get]
func (h *apartmentHandler) getApartmentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	apartmentID := c.Param("id")

	apartment, err := h.apartmentService.GetApartmentByID(c.Request.Context(), apartmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get apartment")
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}

// updateBookingStatus godoc
// @Summary Update an apartment's booking status
// @Tags apartments
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Param status body dto.UpdateApartmentRequest true "New booking status"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /updateApartment/{id} [put]
func (h *apartmentHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	apartmentID := c.Param("id")

	var req dto.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateBookingStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.apartmentService.UpdateBookingStatus(c.Request.Context(), apartmentID, domain.BookingStatus(req.BookingStatus)); err != nil {
		respondServiceError(c, logger, err, "Failed to update booking status")
		return
	}

	logger.Info("Booking status updated", slog.String("apartment_id", apartmentID), slog.String("status", req.BookingStatus))
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "apartment updated"})
}
