package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
)

const workingHoursCacheKey = "catalog:working-hours"

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, c *cache.Cache, auditDispatcher *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: c, audit: auditDispatcher}
}

type UpdateWorkingHoursRequest struct {
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// List returns every row, active or not; the admin screen toggles days
// in place.
func (h *WorkingHoursHandler) List(c *gin.Context) {
	var hours []models.WorkingHours
	if h.cache.GetJSON(c.Request.Context(), workingHoursCacheKey, &hours) {
		httpresp.OK(c, hours)
		return
	}

	if err := h.db.
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Failed to fetch working hours.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), workingHoursCacheKey, hours)
	httpresp.OK(c, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid working hours id.")
		return
	}
	hoursID := uint(id)

	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.IsActive != nil {
		updates["active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_updates", "No updates provided.")
		return
	}

	res := h.db.Model(&models.WorkingHours{}).Where("id = ?", hoursID).Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Failed to update working hours.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "working_hours_not_found", "Working hours not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), workingHoursCacheKey)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "working_hours_updated",
		Entity:   "working_hours",
		EntityID: &hoursID,
	})

	httpresp.Message(c, "Working hours updated successfully")
}
