package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
	"github.com/barberbook/barbershop-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute returns the ordered bookable HH:MM slots for a date. A weekday
// with no active working-hours record yields an empty (non-nil) list.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	weekday, err := domain.Weekday(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	wh, err := uc.repo.GetActiveWorkingHours(ctx, weekday)
	if err != nil {
		// Only a missing record means "closed that day"; anything else
		// is a real failure and must not masquerade as an empty day.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	available := []string{}
	for _, slot := range domain.EnumerateSlots(wh.StartTime, wh.EndTime) {
		taken, err := isSlotTaken(ctx, uc.repo, in.Date, slot, in.BarberID)
		if err != nil {
			return nil, err
		}
		if !taken {
			available = append(available, slot)
		}
	}

	return available, nil
}
