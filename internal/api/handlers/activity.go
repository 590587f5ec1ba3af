package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub-backend/internal/service"
)

// ActivityHandler handles HTTP requests for the activity feed
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetRecentActivities handles GET /activities/recent
// @Summary Recent activity
// @Description Returns the newest feed entries, optionally scoped to a project or user
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum entries" default(10)
// @Param projectId query int false "Project filter"
// @Param userId query int false "User filter"
// @Success 200 {array} models.Activity
// @Router /api/v1/activities/recent [get]
func (h *ActivityHandler) GetRecentActivities(c *gin.Context) {
	activities, err := h.activityService.GetRecent(
		queryInt(c, "limit", 0),
		queryInt(c, "projectId", 0),
		queryInt(c, "userId", 0),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetProjectActivities handles GET /activities/project/:projectId
func (h *ActivityHandler) GetProjectActivities(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	page, pageSize := pageArgs(c)
	resp, err := h.activityService.GetProjectActivities(projectID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchActivities handles GET /activities/search
func (h *ActivityHandler) SearchActivities(c *gin.Context) {
	page, pageSize := pageArgs(c)
	resp, err := h.activityService.Search(c.Query("q"), page, pageSize, queryInt(c, "projectId", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordActivity handles POST /activities
func (h *ActivityHandler) RecordActivity(c *gin.Context) {
	var req service.RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	activity, err := h.activityService.Record(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// GetActivityStats handles GET /activities/stats
func (h *ActivityHandler) GetActivityStats(c *gin.Context) {
	stats, err := h.activityService.Stats(queryInt(c, "projectId", 0), queryInt(c, "userId", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
