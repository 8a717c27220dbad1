package api

import (
	"errors"
	"net/http"

	reqdto "festserve/internal/handler/dto/request"
	resdto "festserve/internal/handler/dto/response"
	"festserve/internal/handler/httperr"
	"festserve/internal/handler/middleware"
	"festserve/internal/usecase/commands"
	"festserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	scanCommands commands.ScanCommands
	scanQueries  queries.ScanQueries
}

func NewScanHandler(scanCommands commands.ScanCommands, scanQueries queries.ScanQueries) *ScanHandler {
	return &ScanHandler{
		scanCommands: scanCommands,
		scanQueries:  scanQueries,
	}
}

// @Summary Record scan event
// @Description Record a scan against a campaign; scanned_at is server-assigned
// @Tags scan-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScanEventRequest true "Scan event"
// @Success 201 {object} resdto.ScanEventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /scan-events [post]
func (h *ScanHandler) Record(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateScanEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.scanCommands.Record(c.Request.Context(), actor.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromScanEventView(view))
}

// @Summary List own scan events
// @Description List scan events recorded by the authenticated scanner
// @Tags scan-events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScanEventResponse
// @Router /scan-events [get]
func (h *ScanHandler) ListOwn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.scanQueries.ListOwn(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanEventViews(views))
}
