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

const servicesCacheKey = "catalog:services"

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, c *cache.Cache, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if h.cache.GetJSON(c.Request.Context(), servicesCacheKey, &services) {
		httpresp.OK(c, services)
		return
	}

	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to fetch services.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), servicesCacheKey, services)
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, price, and duration are required.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.Duration,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, gin.H{
		"message":   "Service created successfully",
		"serviceId": svc.ID,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}
	serviceID := uint(id)

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Duration != nil {
		updates["duration_min"] = *req.Duration
	}
	if req.IsActive != nil {
		updates["active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_updates", "No updates provided.")
		return
	}

	res := h.db.Model(&models.Service{}).Where("id = ?", serviceID).Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &serviceID,
	})

	httpresp.Message(c, "Service updated successfully")
}
