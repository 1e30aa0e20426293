package appointment

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Working hours --------
	GetActiveWorkingHours(
		ctx context.Context,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Slot occupancy --------
	HasBarberBooking(
		ctx context.Context,
		date string,
		timeSlot string,
		barberID uint,
	) (bool, error)

	CountActiveBarbers(ctx context.Context) (int64, error)

	CountDistinctBookedBarbers(
		ctx context.Context,
		date string,
		timeSlot string,
	) (int64, error)

	CountAnyBarberBookings(
		ctx context.Context,
		date string,
		timeSlot string,
	) (int64, error)

	// -------- Catalog lookups --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status string,
		adminNotes string,
	) error

	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListForAdmin(
		ctx context.Context,
		filter AdminListFilter,
	) ([]models.Appointment, error)
}
