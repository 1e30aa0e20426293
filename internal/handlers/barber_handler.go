package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/imaging"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/storage"
)

const barbersCacheKey = "catalog:barbers"

// Uploads larger than this are rejected before decoding.
const maxImageBytes = 8 << 20

type BarberHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	store *storage.ObjectStore
	audit *audit.Dispatcher
}

func NewBarberHandler(
	db *gorm.DB,
	c *cache.Cache,
	store *storage.ObjectStore,
	auditDispatcher *audit.Dispatcher,
) *BarberHandler {
	return &BarberHandler{db: db, cache: c, store: store, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	ImageURL  string `json:"imageUrl"`
	Specialty string `json:"specialty"`
}

type UpdateBarberRequest struct {
	Name      *string `json:"name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if h.cache.GetJSON(c.Request.Context(), barbersCacheKey, &barbers) {
		httpresp.OK(c, barbers)
		return
	}

	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to fetch barbers.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), barbersCacheKey, barbers)
	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	barber := models.Barber{
		Name:      req.Name,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
		Specialty: req.Specialty,
		Active:    true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Failed to create barber.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), barbersCacheKey)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, gin.H{
		"message":  "Barber created successfully",
		"barberId": barber.ID,
	})
}

func (h *BarberHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}
	barberID := uint(id)

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Specialty != nil {
		updates["specialty"] = *req.Specialty
	}
	if req.IsActive != nil {
		updates["active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_updates", "No updates provided.")
		return
	}

	res := h.db.Model(&models.Barber{}).Where("id = ?", barberID).Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_barber", "Failed to update barber.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), barbersCacheKey)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &barberID,
	})

	httpresp.Message(c, "Barber updated successfully")
}

// UploadImage accepts a multipart "image" file, normalizes it to webp
// and stores it, then points the barber at the stored object.
func (h *BarberHandler) UploadImage(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.store.Enabled() {
		httperr.NotFound(c, "uploads_disabled", "Image uploads are not configured.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}
	barberID := uint(id)

	var barber models.Barber
	if err := h.db.First(&barber, barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the size limit.")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil || len(data) > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the size limit.")
		return
	}

	encoded, err := imaging.NormalizeToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file is not a supported image.")
		return
	}

	key := "barbers/" + uuid.New().String() + ".webp"
	url, err := h.store.Put(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store the image.")
		return
	}

	if err := h.db.Model(&barber).Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Failed to update barber.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), barbersCacheKey)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_image_uploaded",
		Entity:   "barber",
		EntityID: &barberID,
	})

	httpresp.OK(c, gin.H{
		"message":  "Barber image updated successfully",
		"imageUrl": url,
	})
}
