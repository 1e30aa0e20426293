package dto

import (
	"time"

	"github.com/barberbook/barbershop-api/internal/models"
)

// AppointmentListDTO is the flattened row shape both listing endpoints
// return: appointment fields plus the joined service/barber/client names.
type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	AdminNotes      string    `json:"admin_notes"`
	CreatedAt       time.Time `json:"created_at"`

	ServiceName     string  `json:"service_name"`
	ServiceDuration int     `json:"service_duration"`
	ServicePrice    float64 `json:"service_price"`

	BarberID   *uint  `json:"barber_id"`
	BarberName string `json:"barber_name"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
}

// FromAppointment flattens a preloaded appointment. withClient controls
// whether client contact fields appear (admin listings only).
func FromAppointment(ap models.Appointment, withClient bool) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		Notes:           ap.Notes,
		AdminNotes:      ap.AdminNotes,
		CreatedAt:       ap.CreatedAt,
		ServiceName:     ap.Service.Name,
		ServiceDuration: ap.Service.DurationMin,
		ServicePrice:    ap.Service.Price,
		BarberID:        ap.BarberID,
		ClientID:        ap.ClientID,
	}

	if ap.Barber != nil {
		out.BarberName = ap.Barber.Name
	}

	if withClient {
		out.ClientName = ap.Client.FullName
		out.ClientEmail = ap.Client.Email
		out.ClientPhone = ap.Client.Phone
	}

	return out
}
