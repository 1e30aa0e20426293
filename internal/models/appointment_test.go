package models_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barbershop-api/internal/models"
)

// A not-null FK column cannot carry an ON DELETE SET NULL action; the
// delete would violate the column constraint. Pin the pairings so a
// tag edit cannot reintroduce that mismatch.
func TestAppointmentForeignKeyActions(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(models.Appointment{})
	tag := func(name string) string {
		f, ok := typ.FieldByName(name)
		require.True(t, ok, name)
		return f.Tag.Get("gorm")
	}

	// client_id is not null: deleting the user takes their bookings
	// with it, same as notifications.
	assert.Contains(t, tag("ClientID"), "not null")
	assert.Contains(t, tag("Client"), "OnDelete:CASCADE")

	// service_id is not null: services with history are retired via
	// the active flag, never hard-deleted.
	assert.Contains(t, tag("ServiceID"), "not null")
	assert.Contains(t, tag("Service"), "OnDelete:RESTRICT")

	// barber_id is nullable (any-barber bookings), so nulling it on
	// barber deletion is valid.
	assert.NotContains(t, tag("BarberID"), "not null")
	assert.Contains(t, tag("Barber"), "OnDelete:SET NULL")
}
