package models

// UnavailableSlot is part of the schema but exposed by no route; it is
// migrated for compatibility with existing databases only.
type UnavailableSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID *uint   `json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartDatetime string `gorm:"size:16;not null" json:"start_datetime"`
	EndDatetime   string `gorm:"size:16;not null" json:"end_datetime"`
	Reason        string `gorm:"size:255" json:"reason"`
}
