package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Nil means "any barber": the booking draws from the shared pool
	// of active barbers instead of occupying a specific chair.
	BarberID *uint   `json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Services are retired via the active flag; rows with booking
	// history cannot be hard-deleted.
	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Naive wall-clock strings, exactly as booked: "2006-01-02" / "15:04".
	AppointmentDate string `gorm:"size:10;not null;index:idx_appointments_slot" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null;index:idx_appointments_slot" json:"appointment_time"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Notes      string `gorm:"size:500" json:"notes"`
	AdminNotes string `gorm:"size:500" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
