package appointment_test

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
	"github.com/barberbook/barbershop-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository. It reimplements the
// counting queries over a slice so the use cases can be exercised
// without a database.
type fakeRepo struct {
	workingHours []models.WorkingHours
	services     map[uint]models.Service
	barbers      map[uint]models.Barber
	appointments []models.Appointment

	nextID    uint
	createErr error
	hoursErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]models.Service{},
		barbers:  map[uint]models.Barber{},
		nextID:   1,
	}
}

func (f *fakeRepo) GetActiveWorkingHours(_ context.Context, weekday int) (*models.WorkingHours, error) {
	if f.hoursErr != nil {
		return nil, f.hoursErr
	}
	for _, wh := range f.workingHours {
		if wh.Weekday == weekday && wh.Active {
			out := wh
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func occupying(status string) bool {
	return status == "pending" || status == "accepted"
}

func (f *fakeRepo) HasBarberBooking(_ context.Context, date, timeSlot string, barberID uint) (bool, error) {
	for _, ap := range f.appointments {
		if ap.AppointmentDate == date && ap.AppointmentTime == timeSlot &&
			ap.BarberID != nil && *ap.BarberID == barberID && occupying(ap.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CountActiveBarbers(context.Context) (int64, error) {
	var n int64
	for _, b := range f.barbers {
		if b.Active {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountDistinctBookedBarbers(_ context.Context, date, timeSlot string) (int64, error) {
	seen := map[uint]bool{}
	for _, ap := range f.appointments {
		if ap.AppointmentDate == date && ap.AppointmentTime == timeSlot &&
			ap.BarberID != nil && occupying(ap.Status) {
			seen[*ap.BarberID] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeRepo) CountAnyBarberBookings(_ context.Context, date, timeSlot string) (int64, error) {
	var n int64
	for _, ap := range f.appointments {
		if ap.AppointmentDate == date && ap.AppointmentTime == timeSlot &&
			ap.BarberID == nil && occupying(ap.Status) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &svc, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			out := ap
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, id uint, status, adminNotes string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = status
			f.appointments[i].AdminNotes = adminNotes
			return nil
		}
	}
	return fmt.Errorf("appointment %d not found", id)
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForAdmin(_ context.Context, filter domain.AdminListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		if filter.Date != "" && ap.AppointmentDate != filter.Date {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier records notification calls.
type fakeNotifier struct {
	adminBookings []string // "date time"
	clientCalls   []clientNotification
}

type clientNotification struct {
	clientID uint
	status   string
	date     string
	timeSlot string
}

func (f *fakeNotifier) NotifyAdminsNewBooking(_ context.Context, date, timeSlot string) {
	f.adminBookings = append(f.adminBookings, date+" "+timeSlot)
}

func (f *fakeNotifier) NotifyClientStatus(_ context.Context, clientID uint, status, date, timeSlot string) {
	f.clientCalls = append(f.clientCalls, clientNotification{
		clientID: clientID,
		status:   status,
		date:     date,
		timeSlot: timeSlot,
	})
}
