package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
)

func repoWithCatalog() *fakeRepo {
	repo := repoWithHours()
	repo.services[1] = models.Service{ID: 1, Name: "Classic Haircut", Price: 15, DurationMin: 30, Active: true}
	return repo
}

func TestCreateAppointment(t *testing.T) {
	t.Parallel()

	t.Run("booking succeeds and notifies admins once", func(t *testing.T) {
		t.Parallel()
		repo := repoWithCatalog()
		notifier := &fakeNotifier{}
		uc := ucAppointment.NewCreateAppointment(repo, notifier, nil)

		ap, err := uc.Execute(context.Background(), ucAppointment.CreateAppointmentInput{
			ClientID:  10,
			ServiceID: 1,
			BarberID:  ptr(1),
			Date:      monday,
			Time:      "09:00",
			Notes:     "first visit",
		})
		require.NoError(t, err)
		assert.NotZero(t, ap.ID)
		assert.Equal(t, "pending", ap.Status)

		require.Len(t, notifier.adminBookings, 1)
		assert.Equal(t, monday+" 09:00", notifier.adminBookings[0])
	})

	t.Run("double booking same barber conflicts", func(t *testing.T) {
		t.Parallel()
		repo := repoWithCatalog()
		notifier := &fakeNotifier{}
		uc := ucAppointment.NewCreateAppointment(repo, notifier, nil)

		in := ucAppointment.CreateAppointmentInput{
			ClientID:  10,
			ServiceID: 1,
			BarberID:  ptr(1),
			Date:      monday,
			Time:      "09:00",
		}

		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)

		in.ClientID = 11
		_, err = uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "slot_taken"))

		// The failed attempt must not notify.
		assert.Len(t, notifier.adminBookings, 1)
	})

	t.Run("same slot different barber is fine", func(t *testing.T) {
		t.Parallel()
		repo := repoWithCatalog()
		uc := ucAppointment.NewCreateAppointment(repo, &fakeNotifier{}, nil)

		in := ucAppointment.CreateAppointmentInput{
			ClientID: 10, ServiceID: 1, BarberID: ptr(1), Date: monday, Time: "09:00",
		}
		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)

		in.BarberID = ptr(2)
		_, err = uc.Execute(context.Background(), in)
		assert.NoError(t, err)
	})

	t.Run("any-barber booking rejected when pool is full", func(t *testing.T) {
		t.Parallel()
		repo := repoWithCatalog()
		repo.appointments = append(repo.appointments,
			models.Appointment{
				ID: 1, ClientID: 11, BarberID: nil, ServiceID: 1,
				AppointmentDate: monday, AppointmentTime: "09:00", Status: "pending",
			},
			models.Appointment{
				ID: 2, ClientID: 12, BarberID: ptr(1), ServiceID: 1,
				AppointmentDate: monday, AppointmentTime: "09:00", Status: "accepted",
			},
		)
		uc := ucAppointment.NewCreateAppointment(repo, &fakeNotifier{}, nil)

		_, err := uc.Execute(context.Background(), ucAppointment.CreateAppointmentInput{
			ClientID: 13, ServiceID: 1, Date: monday, Time: "09:00",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	})

	t.Run("unknown service", func(t *testing.T) {
		t.Parallel()
		repo := repoWithCatalog()
		uc := ucAppointment.NewCreateAppointment(repo, &fakeNotifier{}, nil)

		_, err := uc.Execute(context.Background(), ucAppointment.CreateAppointmentInput{
			ClientID: 10, ServiceID: 99, Date: monday, Time: "09:00",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})

	t.Run("unknown barber", func(t *testing.T) {
		t.Parallel()
		repo := repoWithCatalog()
		uc := ucAppointment.NewCreateAppointment(repo, &fakeNotifier{}, nil)

		_, err := uc.Execute(context.Background(), ucAppointment.CreateAppointmentInput{
			ClientID: 10, ServiceID: 1, BarberID: ptr(99), Date: monday, Time: "09:00",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})
}
