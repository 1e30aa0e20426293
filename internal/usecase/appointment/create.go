package appointment

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	ServiceID uint
	BarberID  *uint // nil = any barber

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier Notifier,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if in.BarberID != nil {
		if _, err := uc.repo.GetBarber(ctx, *in.BarberID); err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
	}

	// Same two-branch rule the availability listing uses; a slot that
	// filled up since the client last looked gets a conflict here.
	taken, err := isSlotTaken(ctx, uc.repo, in.Date, in.Time, in.BarberID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		ClientID:        in.ClientID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAdminsNewBooking(ctx, in.Date, in.Time)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
