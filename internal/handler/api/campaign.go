package api

import (
	"errors"
	"net/http"

	"festserve/internal/domain/identity"
	reqdto "festserve/internal/handler/dto/request"
	resdto "festserve/internal/handler/dto/response"
	"festserve/internal/handler/httperr"
	"festserve/internal/handler/middleware"
	"festserve/internal/usecase/commands"
	"festserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignHandler struct {
	campaignCommands commands.CampaignCommands
	snapshotCommands commands.SnapshotCommands
	campaignQueries  queries.CampaignQueries
	scanQueries      queries.ScanQueries
	snapshotQueries  queries.SnapshotQueries
}

func NewCampaignHandler(
	campaignCommands commands.CampaignCommands,
	snapshotCommands commands.SnapshotCommands,
	campaignQueries queries.CampaignQueries,
	scanQueries queries.ScanQueries,
	snapshotQueries queries.SnapshotQueries,
) *CampaignHandler {
	return &CampaignHandler{
		campaignCommands: campaignCommands,
		snapshotCommands: snapshotCommands,
		campaignQueries:  campaignQueries,
		scanQueries:      scanQueries,
		snapshotQueries:  snapshotQueries,
	}
}

// @Summary Create campaign
// @Description Create a scheduled campaign owned by the authenticated advertiser
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCampaignRequest true "Campaign"
// @Success 201 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.campaignCommands.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCampaignView(view))
}

// @Summary List campaigns
// @Description List campaigns owned by the authenticated advertiser
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CampaignResponse
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.campaignQueries.ListOwned(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignViews(views))
}

// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	view, err := h.campaignQueries.GetOwned(c.Request.Context(), actor.ID, campaignID)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Update campaign
// @Description Apply a partial update to an owned campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param request body reqdto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.campaignCommands.Update(c.Request.Context(), actor.ID, campaignID, req)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Delete campaign
// @Description Delete an owned campaign with its scan events and snapshots
// @Tags campaigns
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	if err := h.campaignCommands.Delete(c.Request.Context(), actor.ID, campaignID); err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List campaign scans
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {array} resdto.ScanEventResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id}/scans [get]
func (h *CampaignHandler) ListScans(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	views, err := h.scanQueries.ListForCampaign(c.Request.Context(), actor.ID, campaignID)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanEventViews(views))
}

// @Summary Count campaign scans
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.ScanCountResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id}/scans/count [get]
func (h *CampaignHandler) CountScans(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	view, err := h.scanQueries.CountForCampaign(c.Request.Context(), actor.ID, campaignID)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanCountView(view))
}

// @Summary Take snapshot
// @Description Snapshot current scan totals and remaining units for an owned campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 201 {object} resdto.SnapshotResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id}/snapshots [post]
func (h *CampaignHandler) TakeSnapshot(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	view, err := h.snapshotCommands.Take(c.Request.Context(), actor.ID, campaignID)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSnapshotView(view))
}

// @Summary List snapshots
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {array} resdto.SnapshotResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id}/snapshots [get]
func (h *CampaignHandler) ListSnapshots(c *gin.Context) {
	actor, campaignID, ok := h.actorAndCampaignID(c)
	if !ok {
		return
	}

	views, err := h.snapshotQueries.ListForCampaign(c.Request.Context(), actor.ID, campaignID)
	if err != nil {
		h.respondCampaignError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshotViews(views))
}

// Malformed campaign ids respond 404 rather than 400: they can never name
// an existing campaign, and the not-found shape leaks nothing.
func (h *CampaignHandler) actorAndCampaignID(c *gin.Context) (identity.Actor, uuid.UUID, bool) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return identity.Actor{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Campaign not found",
		})
		return identity.Actor{}, uuid.Nil, false
	}

	return actor, id, true
}

func (h *CampaignHandler) respondCampaignError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCampaignNotFound), errors.Is(err, queries.ErrCampaignNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Campaign not found",
		})
	case errors.Is(err, commands.ErrStallNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Stall not found",
		})
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrDuplicateCampaign):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Campaign already exists for this stall, product and start time",
		})
	case errors.Is(err, commands.ErrCampaignValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Campaign validation failed",
		})
	default:
		httperr.Internal(c, err)
	}
}
