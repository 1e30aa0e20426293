package appointment

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID uint
	AdminID       uint
	Status        string
	AdminNotes    string
}

type UpdateStatus struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier Notifier,
	auditDispatcher *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

// Execute sets any member of the status enumeration regardless of the
// current value; there is deliberately no transition guard.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if !domain.ValidStatus(in.Status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.UpdateAppointmentStatus(
		ctx,
		in.AppointmentID,
		in.Status,
		in.AdminNotes,
	); err != nil {
		return nil, err
	}

	uc.notifier.NotifyClientStatus(
		ctx,
		ap.ClientID,
		in.Status,
		ap.AppointmentDate,
		ap.AppointmentTime,
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "appointment_status_" + in.Status,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Status = in.Status
	ap.AdminNotes = in.AdminNotes
	return ap, nil
}
