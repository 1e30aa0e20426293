package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/middleware"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	statusUC     *ucAppointment.UpdateStatus
	slotsUC      *ucAppointment.GetAvailableSlots
	listClientUC *ucAppointment.ListClientAppointments
	listAdminUC  *ucAppointment.ListAdminAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	statusUC *ucAppointment.UpdateStatus,
	slotsUC *ucAppointment.GetAvailableSlots,
	listClientUC *ucAppointment.ListClientAppointments,
	listAdminUC *ucAppointment.ListAdminAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		statusUC:     statusUC,
		slotsUC:      slotsUC,
		listClientUC: listClientUC,
		listAdminUC:  listAdminUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID       uint   `json:"serviceId" binding:"required"`
	BarberID        *uint  `json:"barberId"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Service, date, and time are required.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:  clientID,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "This time slot is no longer available.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Service not found.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Barber not found.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"message":       "Appointment booked successfully",
		"appointmentId": ap.ID,
	})
}

// ======================================================
// STATUS UPDATE (admin)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	_, err = h.statusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: uint(id),
		AdminID:       adminID,
		Status:        req.Status,
		AdminNotes:    req.AdminNotes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Invalid status.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		}
		return
	}

	httpresp.Message(c, "Appointment status updated successfully")
}

// ======================================================
// AVAILABLE SLOTS (public)
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var barberID *uint
	if raw := c.Query("barberId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
			return
		}
		id := uint(parsed)
		barberID = &id
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:     date,
		BarberID: barberID,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_fetch_slots", "Failed to fetch available slots.")
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	appointments, err := h.listClientUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to fetch appointments.")
		return
	}

	httpresp.OK(c, appointments)
}

func (h *AppointmentHandler) ListForAdmin(c *gin.Context) {
	filter := domain.AdminListFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	appointments, err := h.listAdminUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to fetch appointments.")
		return
	}

	httpresp.OK(c, appointments)
}
