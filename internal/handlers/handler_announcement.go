package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
)

// announcementHandler handles HTTP requests for building announcements.
type announcementHandler struct {
	announcementService portssvc.AnnouncementSvcFacade
}

func newAnnouncementHandler(as portssvc.AnnouncementSvcFacade) *announcementHandler {
	return &announcementHandler{announcementService: as}
}

func registerAnnouncementRoutes(r *gin.Engine, announcementService portssvc.AnnouncementSvcFacade) {
	h := newAnnouncementHandler(announcementService)

	r.POST("/announcements", h.createAnnouncement)
	r.GET("/announcements", h.listAnnouncements)
}

// createAnnouncement godoc
// @Summary Post an announcement
// @Description Creates an announcement with a server-stamped date.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /announcements [post]
func (h *announcementHandler) createAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAnnouncement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create announcement")
		return
	}

	logger.Info("Announcement created", slog.String("announcement_id", announcement.AnnouncementID))
	c.JSON(http.StatusCreated, dto.CreatedResponse{Success: true, InsertedID: announcement.AnnouncementID})
}

// listAnnouncements godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAnnouncementsResponse
// @Failure 500 {object} ErrorResponse
// @Router /announcements [get]
func (h *announcementHandler) listAnnouncements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	announcements, err := h.announcementService.ListAnnouncements(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list announcements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAnnouncementsResponse(announcements))
}
