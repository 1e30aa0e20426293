package appointment

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
)

// isSlotTaken applies the two-branch occupancy rule. It runs at read
// time (available-slots) and again at write time (booking), with no
// coordination between the two; the check-then-insert window is a
// known race.
func isSlotTaken(
	ctx context.Context,
	repo domain.Repository,
	date string,
	timeSlot string,
	barberID *uint,
) (bool, error) {

	if barberID != nil {
		return repo.HasBarberBooking(ctx, date, timeSlot, *barberID)
	}

	activeBarbers, err := repo.CountActiveBarbers(ctx)
	if err != nil {
		return false, err
	}

	distinctBooked, err := repo.CountDistinctBookedBarbers(ctx, date, timeSlot)
	if err != nil {
		return false, err
	}

	anyBookings, err := repo.CountAnyBarberBookings(ctx, date, timeSlot)
	if err != nil {
		return false, err
	}

	return domain.PoolFull(distinctBooked, anyBookings, activeBarbers), nil
}
