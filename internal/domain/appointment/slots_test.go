package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
)

func TestEnumerateSlots(t *testing.T) {
	t.Parallel()

	t.Run("full day window", func(t *testing.T) {
		t.Parallel()
		slots := domain.EnumerateSlots("09:00", "19:00")

		// Enumeration stops at the closing hour's minute mark, so the
		// 18:00 and 18:30 slots are never offered for a 19:00 close.
		require.Len(t, slots, 18)
		assert.Equal(t, "09:00", slots[0])
		assert.Equal(t, "17:30", slots[len(slots)-1])
	})

	t.Run("offset start minute", func(t *testing.T) {
		t.Parallel()
		slots := domain.EnumerateSlots("09:30", "12:00")

		require.NotEmpty(t, slots)
		assert.Equal(t, "09:30", slots[0])
		assert.NotContains(t, slots, "09:00")
	})

	t.Run("half hour close", func(t *testing.T) {
		t.Parallel()
		slots := domain.EnumerateSlots("10:00", "12:30")

		require.NotEmpty(t, slots)
		assert.Equal(t, "11:00", slots[len(slots)-1])
		assert.NotContains(t, slots, "11:30")
	})

	t.Run("slots are ordered", func(t *testing.T) {
		t.Parallel()
		slots := domain.EnumerateSlots("09:00", "19:00")
		for i := 1; i < len(slots); i++ {
			assert.Less(t, slots[i-1], slots[i])
		}
	})

	t.Run("malformed window", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, domain.EnumerateSlots("nine", "19:00"))
		assert.Empty(t, domain.EnumerateSlots("09:00", ""))
	})
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	// 2026-08-24 is a Monday.
	day, err := domain.Weekday("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 1, day)

	day, err = domain.Weekday("2026-08-23")
	require.NoError(t, err)
	assert.Equal(t, 0, day)

	_, err = domain.Weekday("24/08/2026")
	assert.Error(t, err)
}

func TestPoolFull(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.PoolFull(0, 0, 2))
	assert.False(t, domain.PoolFull(1, 0, 2))
	assert.True(t, domain.PoolFull(1, 1, 2))
	assert.True(t, domain.PoolFull(2, 0, 2))

	// The approximation can over-fill: three "any" bookings saturate a
	// two-barber pool even though no chair is specifically taken.
	assert.True(t, domain.PoolFull(0, 3, 2))

	// Zero active barbers means nothing is ever bookable.
	assert.True(t, domain.PoolFull(0, 0, 0))
}

func TestValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pending", "accepted", "rejected", "completed", "cancelled"} {
		assert.True(t, domain.ValidStatus(s), s)
	}

	assert.False(t, domain.ValidStatus("scheduled"))
	assert.False(t, domain.ValidStatus("ACCEPTED"))
	assert.False(t, domain.ValidStatus(""))
}
