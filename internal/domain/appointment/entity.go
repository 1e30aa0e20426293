package appointment

type AvailabilityInput struct {
	Date     string // YYYY-MM-DD
	BarberID *uint  // nil = any barber
}

type AdminListFilter struct {
	Status string
	Date   string
}
