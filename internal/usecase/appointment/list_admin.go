package appointment

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/appointment"
	"github.com/barberbook/barbershop-api/internal/dto"
)

type ListAdminAppointments struct {
	repo domain.Repository
}

func NewListAdminAppointments(repo domain.Repository) *ListAdminAppointments {
	return &ListAdminAppointments{repo: repo}
}

func (uc *ListAdminAppointments) Execute(
	ctx context.Context,
	filter domain.AdminListFilter,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListForAdmin(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap, true))
	}
	return out, nil
}
